package core

import (
	"io"
	"time"
)

const (
	LabelAI   = "AI-Generated"
	LabelReal = "Real"
)

type RegisterMessage struct {
	Username string
	Email    string
	Password string
}

type LoginMessage struct {
	Email    string
	Password string
}

type UserProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type AnalysisDetails struct {
	PixelAnomalies     string `json:"pixelAnomalies,omitempty"`
	TextureConsistency string `json:"textureConsistency,omitempty"`
	LightingRealism    string `json:"lightingRealism,omitempty"`
	EdgeQuality        string `json:"edgeQuality,omitempty"`
}

// HistoryMessage is an analysis outcome to be stored. At least one of Result and
// IsAI must be set; when both are set they have to agree.
type HistoryMessage struct {
	ImageName       string
	ImageURL        string
	Result          string
	IsAI            *bool
	Confidence      float64
	AnalysisDetails AnalysisDetails
	Timestamp       time.Time
}

type HistoryRecord struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	ImageName       string          `json:"imageName"`
	ImageURL        string          `json:"imageUrl,omitempty"`
	Result          string          `json:"result"`
	IsAI            bool            `json:"isAI"`
	Confidence      int             `json:"confidence"`
	AnalysisDetails AnalysisDetails `json:"analysisDetails"`
	Timestamp       time.Time       `json:"timestamp"`
}

// ImageSource carries exactly one image: an uploaded file (Content) or a remote URL.
// Content wins when both are present.
type ImageSource struct {
	Filename    string
	ContentType string
	Content     io.Reader
	URL         string
}

type Prediction struct {
	Body     []byte
	ImageURL string
}
