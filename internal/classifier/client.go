package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	fileField       = "file"
	maxResponseSize = 1 << 20
)

var ErrUnexpectedStatus error = errors.New("unexpected status code")
var ErrInvalidResponse error = errors.New("classifier response is not valid json")

// Client talks to the external image classifier over HTTP.
type Client struct {
	url      string
	http     *http.Client
	outcomes *prometheus.CounterVec
}

func NewClient(url string, timeout time.Duration, reg prometheus.Registerer) *Client {
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "deepdetect",
		Name:      "classifier_requests_total",
		Help:      "Calls to the external classifier by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(outcomes)

	return &Client{
		url:      url,
		http:     &http.Client{Timeout: timeout},
		outcomes: outcomes,
	}
}

// Classify streams image as the multipart field "file" and returns the raw JSON
// verdict. The body is never interpreted beyond checking it is JSON.
func (c *Client) Classify(ctx context.Context, filename string, image io.Reader) ([]byte, error) {
	body, err := c.classify(ctx, filename, image)
	if err != nil {
		c.outcomes.WithLabelValues("error").Inc()
		return nil, err
	}
	c.outcomes.WithLabelValues("ok").Inc()
	return body, nil
}

func (c *Client) classify(ctx context.Context, filename string, image io.Reader) ([]byte, error) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	// image must not be read once classify returns.
	done := make(chan struct{})
	defer func() {
		pr.Close()
		<-done
	}()

	go func() {
		defer close(done)
		part, err := form.CreateFormFile(fileField, filepath.Base(filename))
		if err == nil {
			_, err = io.Copy(part, image)
		}
		if err == nil {
			err = form.Close()
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, pr)
	if err != nil {
		return nil, fmt.Errorf("create classifier request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call classifier: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read classifier response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, truncate(body, 200))
	}

	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return nil, ErrInvalidResponse
	}

	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
