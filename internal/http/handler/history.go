package handler

import (
	"deepdetect/internal/core"
	"deepdetect/internal/http/payload"
	"errors"
	"fmt"
	"net/http"
)

func (h *DeepDetectHandler) HandleListHistory(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token := bearerToken(r)
	if token == "" {
		h.unauthorized(w, ListHistory, requestId)
		return
	}

	records, err := h.service.ListHistory(r.Context(), token)
	if err != nil {
		resp := Response{Message: "Could not retrieve history"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUnauthorized) {
			httpCode = http.StatusUnauthorized
			resp.Error = core.ErrUnauthorized.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to list history",
			"error", err,
			"handler", ListHistory,
			"request_id", requestId)
		return
	}

	h.respond(w, records, http.StatusOK, requestId)
}

func (h *DeepDetectHandler) HandleCreateHistory(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token := bearerToken(r)
	if token == "" {
		h.unauthorized(w, CreateHistory, requestId)
		return
	}

	var req payload.HistoryRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not save history",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateHistory,
			"request_id", requestId)
		return
	}

	record, err := h.service.CreateHistory(r.Context(), token, req.ToMessage())
	if err != nil {
		resp := Response{Message: "Could not save history"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUnauthorized) {
			httpCode = http.StatusUnauthorized
			resp.Error = core.ErrUnauthorized.Error()
		} else if errors.Is(err, core.ErrInvalidRecord) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to save history",
			"error", err,
			"handler", CreateHistory,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "History saved successfully",
		Data:    record,
	}, http.StatusCreated, requestId)
}

func (h *DeepDetectHandler) HandleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token := bearerToken(r)
	if token == "" {
		h.unauthorized(w, DeleteHistory, requestId)
		return
	}

	historyID := r.PathValue("id")

	err := h.service.DeleteHistory(r.Context(), token, historyID)
	if err != nil {
		resp := Response{Message: "Could not delete history"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUnauthorized) {
			httpCode = http.StatusUnauthorized
			resp.Error = core.ErrUnauthorized.Error()
		} else if errors.Is(err, core.ErrHistoryNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to delete history",
			"error", err,
			"history_id", historyID,
			"handler", DeleteHistory,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: "History deleted successfully"}, http.StatusOK, requestId)
}

func (h *DeepDetectHandler) unauthorized(w http.ResponseWriter, handler, requestId string) {
	h.respond(w, Response{
		Message: "Authentication failed",
		Error:   "Authorization header with a bearer token is required",
	}, http.StatusUnauthorized, requestId)
	h.logs.Errorw("missing bearer token", "handler", handler, "request_id", requestId)
}
