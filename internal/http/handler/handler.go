package handler

import (
	"deepdetect/internal/http/handler/middleware"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

var (
	Register       = "POST /api/auth/register"
	Login          = "POST /api/auth/login"
	Me             = "GET /api/auth/me"
	ForgotPassword = "POST /api/auth/forgot-password"
	ResetPassword  = "POST /api/auth/reset-password"
	ListHistory    = "GET /api/history"
	CreateHistory  = "POST /api/history"
	DeleteHistory  = "DELETE /api/history/{id}"
	Predict        = "POST /api/predict"
	Ping           = "GET /api/ping"
)

type DeepDetectHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	service          Service
	maxUploadBytes   int64
}

func NewDeepDetectHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, service Service, maxUploadBytes int64) *DeepDetectHandler {
	return &DeepDetectHandler{
		logs:             logger,
		requestValidator: requestValidator,
		service:          service,
		maxUploadBytes:   maxUploadBytes,
	}
}

// RegisterRoutes adds every route to mux.
func (h *DeepDetectHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc(Register, h.HandleRegister)
	mux.HandleFunc(Login, h.HandleLogin)
	mux.HandleFunc(Me, h.HandleMe)
	mux.HandleFunc(ForgotPassword, h.HandleForgotPassword)
	mux.HandleFunc(ResetPassword, h.HandleResetPassword)
	mux.HandleFunc(ListHistory, h.HandleListHistory)
	mux.HandleFunc(CreateHistory, h.HandleCreateHistory)
	mux.HandleFunc(DeleteHistory, h.HandleDeleteHistory)
	mux.HandleFunc(Predict, h.HandlePredict)
	mux.HandleFunc(Ping, h.HandlePing)
}

func (h *DeepDetectHandler) HandlePing(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{Message: "pong"}, http.StatusOK, requestID(r))
}

func (h *DeepDetectHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
