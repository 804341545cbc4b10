package payload

import (
	"bytes"
	"deepdetect/internal/core"
	"encoding/json"
	"strconv"
	"time"

	"github.com/jellydator/validation"
)

type AnalysisDetails struct {
	PixelAnomalies     string `json:"pixelAnomalies"`
	TextureConsistency string `json:"textureConsistency"`
	LightingRealism    string `json:"lightingRealism"`
	EdgeQuality        string `json:"edgeQuality"`
}

type HistoryRequest struct {
	ImageName       string          `json:"imageName"`
	ImageURL        string          `json:"imageUrl"`
	Result          string          `json:"result"`
	IsAI            OptionalBool    `json:"isAI"`
	Confidence      Percentage      `json:"confidence"`
	AnalysisDetails AnalysisDetails `json:"analysisDetails"`
	Timestamp       *time.Time      `json:"timestamp"`
}

func (h *HistoryRequest) Validate() error {
	return validation.ValidateStruct(h,
		validation.Field(&h.ImageName, validation.Required, validation.Length(1, 512)),
		validation.Field(&h.Result, validation.When(h.IsAI.Value == nil, validation.Required)),
		validation.Field(&h.Confidence, validation.Min(Percentage(0)), validation.Max(Percentage(100))),
	)
}

func (h HistoryRequest) ToMessage() core.HistoryMessage {
	msg := core.HistoryMessage{
		ImageName:  h.ImageName,
		ImageURL:   h.ImageURL,
		Result:     h.Result,
		IsAI:       h.IsAI.Value,
		Confidence: float64(h.Confidence),
		AnalysisDetails: core.AnalysisDetails{
			PixelAnomalies:     h.AnalysisDetails.PixelAnomalies,
			TextureConsistency: h.AnalysisDetails.TextureConsistency,
			LightingRealism:    h.AnalysisDetails.LightingRealism,
			EdgeQuality:        h.AnalysisDetails.EdgeQuality,
		},
	}
	if h.Timestamp != nil {
		msg.Timestamp = h.Timestamp.UTC()
	}
	return msg
}

// OptionalBool holds a JSON boolean. Values of any other type decode as unset.
type OptionalBool struct {
	Value *bool
}

func (o *OptionalBool) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		o.Value = nil
		return nil
	}
	o.Value = &b
	return nil
}

// Percentage accepts a JSON number or a numeric string. Anything else decodes as 0.
type Percentage float64

func (p *Percentage) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*p = 0
		return nil
	}
	*p = Percentage(f)
	return nil
}
