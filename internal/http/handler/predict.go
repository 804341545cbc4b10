package handler

import (
	"deepdetect/internal/core"
	"deepdetect/internal/http/payload"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

const (
	imageURLHeader  = "X-Image-URL"
	multipartMemory = 8 << 20
	formOverhead    = 1 << 20
)

func (h *DeepDetectHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+formOverhead)

	src, cleanup, err := h.imageSource(r)
	defer cleanup()
	if err != nil {
		httpCode := http.StatusBadRequest
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpCode = http.StatusRequestEntityTooLarge
		}
		h.respond(w, Response{
			Message: "Prediction failed",
			Error:   fmt.Errorf("invalid request: %w", err).Error(),
		}, httpCode, requestId)
		h.logs.Errorw("failed to read prediction request",
			"error", err,
			"handler", Predict,
			"request_id", requestId)
		return
	}

	h.logs.Infow("prediction request received",
		"file", src.Filename,
		"url", src.URL,
		"handler", Predict,
		"request_id", requestId)

	prediction, err := h.service.Predict(r.Context(), src)
	if err != nil {
		resp := Response{Message: "Prediction failed"}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrNoImage) {
			httpCode = http.StatusBadRequest
			resp.Error = core.ErrNoImage.Error()
		} else {
			resp.Error = core.ErrPrediction.Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("prediction failed",
			"error", err,
			"handler", Predict,
			"request_id", requestId)
		return
	}

	if prediction.ImageURL != "" {
		w.Header().Set(imageURLHeader, prediction.ImageURL)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(prediction.Body); err != nil {
		h.logs.Errorw("failed to write prediction",
			"error", err,
			"handler", Predict,
			"request_id", requestId)
	}
}

// imageSource reads the image from a multipart upload (field "file", falling back
// to a "url" field), an urlencoded form, or a JSON body {"url": "..."}. The
// returned cleanup removes any multipart spill files and is always safe to call.
func (h *DeepDetectHandler) imageSource(r *http.Request) (core.ImageSource, func(), error) {
	noop := func() {}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return core.ImageSource{}, noop, fmt.Errorf("parse multipart form: %w", err)
		}
		form := r.MultipartForm
		cleanup := func() {
			if err := form.RemoveAll(); err != nil {
				h.logs.Warnw("failed to remove multipart files", "error", err)
			}
		}

		src := core.ImageSource{URL: r.FormValue("url")}
		file, header, err := r.FormFile("file")
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				return src, cleanup, nil
			}
			return core.ImageSource{}, cleanup, fmt.Errorf("read file field: %w", err)
		}
		if header.Size > h.maxUploadBytes {
			file.Close()
			return core.ImageSource{}, cleanup, &http.MaxBytesError{Limit: h.maxUploadBytes}
		}

		src.Content = file
		src.Filename = header.Filename
		src.ContentType = header.Header.Get("Content-Type")
		return src, func() {
			file.Close()
			cleanup()
		}, nil

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return core.ImageSource{}, noop, fmt.Errorf("parse form: %w", err)
		}
		return core.ImageSource{URL: r.PostFormValue("url")}, noop, nil

	default:
		var req payload.PredictRequest
		err := h.requestValidator.DecodeJSONPayload(r, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			return core.ImageSource{}, noop, err
		}
		return core.ImageSource{URL: req.URL}, noop, nil
	}
}
