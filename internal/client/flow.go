package client

import (
	"context"
	"deepdetect/internal/core"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

type Step int

const (
	StepUpload Step = iota
	StepReview
	StepResults
)

func (s Step) String() string {
	switch s {
	case StepUpload:
		return "upload"
	case StepReview:
		return "review"
	case StepResults:
		return "results"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	ErrInvalidTransition = errors.New("invalid step transition")
	ErrNotAnImage        = errors.New("selected file is not an image")
	ErrEmptyFile         = errors.New("selected file is empty")
	ErrInvalidURL        = errors.New("image url must be an absolute http(s) url")
)

var TimeNow = time.Now

// Backend is the part of the API the analysis flow drives.
type Backend interface {
	PredictFile(ctx context.Context, name string, data []byte) (Verdict, string, error)
	PredictURL(ctx context.Context, imageURL string) (Verdict, string, error)
	SaveHistory(ctx context.Context, entry HistoryEntry) (core.HistoryRecord, error)
}

// Image is the input selected in the upload step. Either Data or URL is set.
type Image struct {
	Name string
	Data []byte
	URL  string
}

type Result struct {
	Verdict
	Label    string
	ImageURL string
	Record   core.HistoryRecord
}

// Flow walks one image through upload, review and results.
type Flow struct {
	backend Backend
	step    Step
	image   *Image
	result  *Result
}

func NewFlow(backend Backend) *Flow {
	return &Flow{backend: backend, step: StepUpload}
}

func (f *Flow) Step() Step {
	return f.step
}

// Image returns the selected image or nil before selection.
func (f *Flow) Image() *Image {
	return f.image
}

// Result returns the analysis result or nil before analysis.
func (f *Flow) Result() *Result {
	return f.result
}

func (f *Flow) SelectFile(name string, data []byte) error {
	if f.step != StepUpload {
		return fmt.Errorf("%w: select file in %s", ErrInvalidTransition, f.step)
	}
	if len(data) == 0 {
		return ErrEmptyFile
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return ErrNotAnImage
	}

	f.image = &Image{Name: name, Data: data}
	f.step = StepReview
	return nil
}

func (f *Flow) SelectURL(rawURL string) error {
	if f.step != StepUpload {
		return fmt.Errorf("%w: select url in %s", ErrInvalidTransition, f.step)
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" {
		name = u.Host
	}
	f.image = &Image{Name: name, URL: rawURL}
	f.step = StepReview
	return nil
}

// Analyze predicts the selected image and saves the verdict to history.
// Any failure leaves the flow in review with no result.
func (f *Flow) Analyze(ctx context.Context) error {
	if f.step != StepReview {
		return fmt.Errorf("%w: analyze in %s", ErrInvalidTransition, f.step)
	}

	var (
		verdict  Verdict
		imageURL string
		err      error
	)
	if f.image.URL != "" {
		verdict, imageURL, err = f.backend.PredictURL(ctx, f.image.URL)
		if imageURL == "" {
			imageURL = f.image.URL
		}
	} else {
		verdict, imageURL, err = f.backend.PredictFile(ctx, f.image.Name, f.image.Data)
	}
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}

	label := core.LabelReal
	if verdict.IsAI {
		label = core.LabelAI
	}

	record, err := f.backend.SaveHistory(ctx, HistoryEntry{
		ImageName:       f.image.Name,
		ImageURL:        imageURL,
		Result:          label,
		IsAI:            verdict.IsAI,
		Confidence:      verdict.Confidence,
		AnalysisDetails: verdict.AnalysisDetails,
		Timestamp:       TimeNow().UTC(),
	})
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	f.result = &Result{
		Verdict:  verdict,
		Label:    label,
		ImageURL: imageURL,
		Record:   record,
	}
	f.step = StepResults
	return nil
}

// Back moves one step back. Leaving results keeps the image for another try.
func (f *Flow) Back() error {
	switch f.step {
	case StepReview:
		f.image = nil
		f.step = StepUpload
	case StepResults:
		f.result = nil
		f.step = StepReview
	default:
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, f.step)
	}
	return nil
}

func (f *Flow) Reset() {
	f.image = nil
	f.result = nil
	f.step = StepUpload
}
