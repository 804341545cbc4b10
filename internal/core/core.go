package core

import (
	"errors"

	"go.uber.org/zap"
)

var (
	ErrUserExists         error = errors.New("user already exists")
	ErrUserNotFound       error = errors.New("user not found")
	ErrIncorrectPassword  error = errors.New("invalid credentials")
	ErrUnauthorized       error = errors.New("invalid or missing token")
	ErrResetTokenRequired error = errors.New("token required")
	ErrInvalidResetToken  error = errors.New("invalid or expired token")
	ErrMailDelivery       error = errors.New("failed to send password reset email")
	ErrInvalidRecord      error = errors.New("invalid history record")
	ErrHistoryNotFound    error = errors.New("history not found")
	ErrNoImage            error = errors.New("no image or url provided")
	ErrPrediction         error = errors.New("failed to get prediction")
)

type Settings struct {
	ResetLinkBase string
	UploadDir     string
}

// DeepDetect implements accounts, analysis history and the prediction proxy.
type DeepDetect struct {
	logs       *zap.SugaredLogger
	repo       Repository
	tokens     TokenIssuer
	mailer     Mailer
	classifier Classifier
	downloader Downloader
	archive    ImageArchive
	settings   Settings
}

// NewDeepDetect is a constructor function for the DeepDetect type. archive may be nil.
func NewDeepDetect(
	logger *zap.SugaredLogger,
	repo Repository,
	tokens TokenIssuer,
	mailer Mailer,
	classifier Classifier,
	downloader Downloader,
	archive ImageArchive,
	settings Settings,
) *DeepDetect {
	return &DeepDetect{
		logs:       logger,
		repo:       repo,
		tokens:     tokens,
		mailer:     mailer,
		classifier: classifier,
		downloader: downloader,
		archive:    archive,
		settings:   settings,
	}
}
