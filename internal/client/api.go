package client

import (
	"bytes"
	"context"
	"deepdetect/internal/core"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxResponseSize = 4 << 20

var ErrNotLoggedIn error = errors.New("not logged in")
var ErrMalformedVerdict error = errors.New("classifier verdict lacks isAI or confidence")

// APIError is a non-2xx answer of the DeepDetect API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Verdict is the part of the classifier answer the client relies on.
type Verdict struct {
	IsAI            bool
	Confidence      float64
	AnalysisDetails core.AnalysisDetails
}

type HistoryEntry struct {
	ImageName       string               `json:"imageName"`
	ImageURL        string               `json:"imageUrl,omitempty"`
	Result          string               `json:"result"`
	IsAI            bool                 `json:"isAI"`
	Confidence      float64              `json:"confidence"`
	AnalysisDetails core.AnalysisDetails `json:"analysisDetails"`
	Timestamp       time.Time            `json:"timestamp"`
}

// API is a client of the DeepDetect REST API. The bearer token only lives in memory.
type API struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewAPI(baseURL string, timeout time.Duration) *API {
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (a *API) Token() string {
	return a.token
}

func (a *API) Logout() {
	a.token = ""
}

func (a *API) Ping(ctx context.Context) error {
	return a.doJSON(ctx, http.MethodGet, "/api/ping", nil, false, nil)
}

func (a *API) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	return a.doJSON(ctx, http.MethodPost, "/api/auth/register", body, false, nil)
}

// Login stores the issued token for later calls.
func (a *API) Login(ctx context.Context, email, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := a.doJSON(ctx, http.MethodPost, "/api/auth/login", body, false, &resp); err != nil {
		return err
	}
	a.token = resp.Token
	return nil
}

func (a *API) Me(ctx context.Context) (core.UserProfile, error) {
	var user core.UserProfile
	err := a.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, true, &user)
	return user, err
}

func (a *API) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return a.doJSON(ctx, http.MethodPost, "/api/auth/forgot-password", body, false, nil)
}

func (a *API) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return a.doJSON(ctx, http.MethodPost, "/api/auth/reset-password", body, false, nil)
}

func (a *API) History(ctx context.Context) ([]core.HistoryRecord, error) {
	var records []core.HistoryRecord
	err := a.doJSON(ctx, http.MethodGet, "/api/history", nil, true, &records)
	return records, err
}

func (a *API) SaveHistory(ctx context.Context, entry HistoryEntry) (core.HistoryRecord, error) {
	var resp struct {
		Data core.HistoryRecord `json:"data"`
	}
	err := a.doJSON(ctx, http.MethodPost, "/api/history", entry, true, &resp)
	return resp.Data, err
}

func (a *API) DeleteHistory(ctx context.Context, id string) error {
	return a.doJSON(ctx, http.MethodDelete, "/api/history/"+url.PathEscape(id), nil, true, nil)
}

// PredictFile uploads an image and returns the verdict plus the archived image
// link when the server has one.
func (a *API) PredictFile(ctx context.Context, name string, data []byte) (Verdict, string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", name)
	if err != nil {
		return Verdict{}, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return Verdict{}, "", fmt.Errorf("write form file: %w", err)
	}
	if err := form.Close(); err != nil {
		return Verdict{}, "", fmt.Errorf("close form: %w", err)
	}

	req, err := a.newRequest(ctx, http.MethodPost, "/api/predict", &buf, false)
	if err != nil {
		return Verdict{}, "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	return a.predict(req)
}

func (a *API) PredictURL(ctx context.Context, imageURL string) (Verdict, string, error) {
	body, err := json.Marshal(map[string]string{"url": imageURL})
	if err != nil {
		return Verdict{}, "", fmt.Errorf("encode request: %w", err)
	}

	req, err := a.newRequest(ctx, http.MethodPost, "/api/predict", bytes.NewReader(body), false)
	if err != nil {
		return Verdict{}, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	return a.predict(req)
}

func (a *API) predict(req *http.Request) (Verdict, string, error) {
	var raw struct {
		IsAI            *bool                `json:"isAI"`
		Confidence      *float64             `json:"confidence"`
		AnalysisDetails core.AnalysisDetails `json:"analysisDetails"`
	}

	header, err := a.do(req, &raw)
	if err != nil {
		return Verdict{}, "", err
	}
	if raw.IsAI == nil || raw.Confidence == nil {
		return Verdict{}, "", ErrMalformedVerdict
	}

	return Verdict{
		IsAI:            *raw.IsAI,
		Confidence:      *raw.Confidence,
		AnalysisDetails: raw.AnalysisDetails,
	}, header.Get("X-Image-URL"), nil
}

func (a *API) doJSON(ctx context.Context, method, path string, in any, auth bool, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := a.newRequest(ctx, method, path, body, auth)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	_, err = a.do(req, out)
	return err
}

func (a *API) newRequest(ctx context.Context, method, path string, body io.Reader, auth bool) (*http.Request, error) {
	if auth && a.token == "" {
		return nil, ErrNotLoggedIn
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	return req, nil
}

func (a *API) do(req *http.Request, out any) (http.Header, error) {
	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.Unmarshal(data, &e)
		msg := e.Error
		if msg == "" {
			msg = e.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.Header, nil
}
