package handler

import (
	"context"
	"deepdetect/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Service . Service
type Service interface {
	Register(ctx context.Context, msg core.RegisterMessage) error
	Login(ctx context.Context, msg core.LoginMessage) (string, error)
	Me(ctx context.Context, token string) (core.UserProfile, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	CreateHistory(ctx context.Context, token string, msg core.HistoryMessage) (core.HistoryRecord, error)
	ListHistory(ctx context.Context, token string) ([]core.HistoryRecord, error)
	DeleteHistory(ctx context.Context, token, historyID string) error
	Predict(ctx context.Context, src core.ImageSource) (core.Prediction, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
