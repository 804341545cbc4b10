package handler

import (
	"deepdetect/internal/core"
	"deepdetect/internal/http/payload"
	"errors"
	"fmt"
	"net/http"
)

func (h *DeepDetectHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Registration failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	err := h.service.Register(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{Message: "Registration failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserExists) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "User registered successfully"}, http.StatusCreated, requestId)
}

func (h *DeepDetectHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, err := h.service.Login(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{Message: "Login failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else if errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *DeepDetectHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	user, err := h.service.Me(r.Context(), bearerToken(r))
	if err != nil {
		resp := Response{Message: "Could not load user"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUnauthorized) {
			httpCode = http.StatusUnauthorized
			resp.Error = core.ErrUnauthorized.Error()
		} else if errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get current user",
			"error", err,
			"handler", Me,
			"request_id", requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *DeepDetectHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.ForgotPasswordRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Password reset failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ForgotPassword,
			"request_id", requestId)
		return
	}

	err := h.service.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		resp := Response{Message: "Password reset failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else if errors.Is(err, core.ErrMailDelivery) {
			resp.Error = core.ErrMailDelivery.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("forgot password failed",
			"error", err,
			"handler", ForgotPassword,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Password reset link sent to email"}, http.StatusOK, requestId)
}

func (h *DeepDetectHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.ResetPasswordRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Password reset failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ResetPassword,
			"request_id", requestId)
		return
	}

	err := h.service.ResetPassword(r.Context(), req.Token, req.NewPassword)
	if err != nil {
		resp := Response{Message: "Password reset failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrResetTokenRequired) {
			httpCode = http.StatusBadRequest
			resp.Error = core.ErrResetTokenRequired.Error()
		} else if errors.Is(err, core.ErrInvalidResetToken) {
			httpCode = http.StatusBadRequest
			resp.Error = core.ErrInvalidResetToken.Error()
		} else if errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("reset password failed",
			"error", err,
			"handler", ResetPassword,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "Password reset successfully"}, http.StatusOK, requestId)
}
