package core

import (
	"context"
	"deepdetect/internal/repository"
	tokenIssuer "deepdetect/pkg/jwt"
	"io"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	CreateHistory(ctx context.Context, history repository.History) (repository.History, error)
	ListHistory(ctx context.Context, userID string) ([]repository.History, error)
	DeleteHistory(ctx context.Context, userID, historyID string) error
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Issue(data tokenIssuer.TokenInfo) (string, error)
	Validate(token, purpose string) (tokenIssuer.Claims, error)
}

//counterfeiter:generate -o fake -fake-name Mailer . Mailer
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, link string) error
}

//counterfeiter:generate -o fake -fake-name Classifier . Classifier
type Classifier interface {
	Classify(ctx context.Context, filename string, image io.Reader) ([]byte, error)
}

//counterfeiter:generate -o fake -fake-name Downloader . Downloader
type Downloader interface {
	Download(ctx context.Context, rawURL string, dst io.Writer) (int64, error)
}

//counterfeiter:generate -o fake -fake-name ImageArchive . ImageArchive
type ImageArchive interface {
	Store(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error)
}
