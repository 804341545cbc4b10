package classifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrUnsupportedScheme error = errors.New("only http and https urls are supported")
var ErrTooLarge error = errors.New("remote image exceeds the size limit")

// Downloader fetches remote images with a bounded size and duration.
type Downloader struct {
	http     *http.Client
	maxBytes int64
}

func NewDownloader(timeout time.Duration, maxBytes int64) *Downloader {
	return &Downloader{
		http:     &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// Download copies the body of rawURL into dst and returns the number of bytes written.
func (d *Downloader) Download(ctx context.Context, rawURL string, dst io.Writer) (int64, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return 0, ErrUnsupportedScheme
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("create download request: %w", err)
	}

	resp, err := d.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	n, err := io.Copy(dst, io.LimitReader(resp.Body, d.maxBytes+1))
	if err != nil {
		return n, fmt.Errorf("read image body: %w", err)
	}
	if n > d.maxBytes {
		return n, ErrTooLarge
	}

	return n, nil
}
