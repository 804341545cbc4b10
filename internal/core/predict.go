package core

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const defaultImageExt = ".jpg"

// Predict forwards an uploaded file or a downloaded remote image to the classifier
// and returns its verdict untouched. The image always passes through a temp file
// that is removed before Predict returns, whatever the outcome.
func (d *DeepDetect) Predict(ctx context.Context, src ImageSource) (Prediction, error) {
	var (
		name string
		fill func(w io.Writer) error
	)

	switch {
	case src.Content != nil:
		name = src.Filename
		fill = func(w io.Writer) error {
			_, err := io.Copy(w, src.Content)
			return err
		}
	case strings.TrimSpace(src.URL) != "":
		name = urlFilename(src.URL)
		fill = func(w io.Writer) error {
			_, err := d.downloader.Download(ctx, strings.TrimSpace(src.URL), w)
			return err
		}
	default:
		return Prediction{}, ErrNoImage
	}

	ext := imageExt(name)

	if err := os.MkdirAll(d.settings.UploadDir, 0o755); err != nil {
		return Prediction{}, fmt.Errorf("create upload dir: %w", err)
	}

	tmp, err := os.CreateTemp(d.settings.UploadDir, "temp-*"+ext)
	if err != nil {
		return Prediction{}, fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		if err := os.Remove(tmp.Name()); err != nil && !os.IsNotExist(err) {
			d.logs.Warnw("failed to remove temp file", "path", tmp.Name(), "error", err)
		}
	}()

	if err := fill(tmp); err != nil {
		return Prediction{}, fmt.Errorf("%w: fetch image: %w", ErrPrediction, err)
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return Prediction{}, fmt.Errorf("rewind temp file: %w", err)
	}

	body, err := d.classifier.Classify(ctx, filepath.Base(tmp.Name()), tmp)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: %w", ErrPrediction, err)
	}

	prediction := Prediction{Body: body}
	if src.Content == nil {
		prediction.ImageURL = strings.TrimSpace(src.URL)
		return prediction, nil
	}

	if d.archive != nil {
		prediction.ImageURL = d.archiveImage(ctx, tmp, name, src.ContentType)
	}

	return prediction, nil
}

// archiveImage is best effort: a failure only costs the client the image link.
func (d *DeepDetect) archiveImage(ctx context.Context, f *os.File, name, contentType string) string {
	info, err := f.Stat()
	if err != nil {
		d.logs.Warnw("failed to stat temp file", "error", err)
		return ""
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		d.logs.Warnw("failed to rewind temp file", "error", err)
		return ""
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	link, err := d.archive.Store(ctx, name, contentType, f, info.Size())
	if err != nil {
		d.logs.Warnw("failed to archive image", "name", name, "error", err)
		return ""
	}
	return link
}

func urlFilename(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Path == "" || strings.HasSuffix(u.Path, "/") {
		return ""
	}
	return path.Base(u.Path)
}

// imageExt keeps the original extension when it looks like one.
func imageExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) < 2 || len(ext) > 6 {
		return defaultImageExt
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultImageExt
		}
	}
	return ext
}
