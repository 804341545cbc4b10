package core

import (
	"context"
	"deepdetect/internal/repository"
	"errors"
	"fmt"
	"math"
	"strings"
)

// CreateHistory stores an analysis outcome for the owner of token.
func (d *DeepDetect) CreateHistory(ctx context.Context, token string, msg HistoryMessage) (HistoryRecord, error) {
	userID, err := d.Authorize(token)
	if err != nil {
		return HistoryRecord{}, err
	}

	label, err := resolveLabel(msg.Result, msg.IsAI)
	if err != nil {
		return HistoryRecord{}, err
	}

	confidence := int(math.Round(msg.Confidence))
	if confidence < 0 || confidence > 100 {
		return HistoryRecord{}, fmt.Errorf("%w: confidence %d out of range", ErrInvalidRecord, confidence)
	}

	history, err := d.repo.CreateHistory(ctx, repository.History{
		UserID:             userID,
		ImageName:          msg.ImageName,
		ImageURL:           msg.ImageURL,
		Result:             label,
		Confidence:         confidence,
		PixelAnomalies:     msg.AnalysisDetails.PixelAnomalies,
		TextureConsistency: msg.AnalysisDetails.TextureConsistency,
		LightingRealism:    msg.AnalysisDetails.LightingRealism,
		EdgeQuality:        msg.AnalysisDetails.EdgeQuality,
		Timestamp:          msg.Timestamp,
	})
	if err != nil {
		return HistoryRecord{}, fmt.Errorf("save history: %w", err)
	}

	d.logs.Infow("history saved", "userId", userID, "historyId", history.ID, "result", label)
	return toHistoryRecord(history), nil
}

// ListHistory returns the caller's records, newest first.
func (d *DeepDetect) ListHistory(ctx context.Context, token string) ([]HistoryRecord, error) {
	userID, err := d.Authorize(token)
	if err != nil {
		return nil, err
	}

	histories, err := d.repo.ListHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	records := make([]HistoryRecord, 0, len(histories))
	for _, h := range histories {
		records = append(records, toHistoryRecord(h))
	}
	return records, nil
}

// DeleteHistory removes one of the caller's records. Records owned by other users
// are reported as not found.
func (d *DeepDetect) DeleteHistory(ctx context.Context, token, historyID string) error {
	userID, err := d.Authorize(token)
	if err != nil {
		return err
	}

	err = d.repo.DeleteHistory(ctx, userID, historyID)
	if err != nil {
		if errors.Is(err, repository.ErrHistoryNotFound) {
			return ErrHistoryNotFound
		}
		return fmt.Errorf("delete history: %w", err)
	}

	d.logs.Infow("history deleted", "userId", userID, "historyId", historyID)
	return nil
}

// IsAILabel reports whether a result label marks an AI generated image.
func IsAILabel(label string) bool {
	return label == LabelAI
}

func resolveLabel(result string, isAI *bool) (string, error) {
	result = strings.TrimSpace(result)

	if result == "" {
		if isAI == nil {
			return "", fmt.Errorf("%w: result or isAI is required", ErrInvalidRecord)
		}
		if *isAI {
			return LabelAI, nil
		}
		return LabelReal, nil
	}

	var label string
	switch {
	case strings.EqualFold(result, LabelAI):
		label = LabelAI
	case strings.EqualFold(result, LabelReal):
		label = LabelReal
	default:
		return "", fmt.Errorf("%w: unknown result %q", ErrInvalidRecord, result)
	}

	if isAI != nil && *isAI != IsAILabel(label) {
		return "", fmt.Errorf("%w: isAI contradicts result %q", ErrInvalidRecord, label)
	}
	return label, nil
}

func toHistoryRecord(h repository.History) HistoryRecord {
	return HistoryRecord{
		ID:         h.ID,
		UserID:     h.UserID,
		ImageName:  h.ImageName,
		ImageURL:   h.ImageURL,
		Result:     h.Result,
		IsAI:       IsAILabel(h.Result),
		Confidence: h.Confidence,
		AnalysisDetails: AnalysisDetails{
			PixelAnomalies:     h.PixelAnomalies,
			TextureConsistency: h.TextureConsistency,
			LightingRealism:    h.LightingRealism,
			EdgeQuality:        h.EdgeQuality,
		},
		Timestamp: h.Timestamp,
	}
}
