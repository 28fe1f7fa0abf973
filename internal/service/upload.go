package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Uploader PUTs raw bytes to a presigned URL.
type Uploader interface {
	Put(ctx context.Context, url string, body io.Reader, size int64) error
}

// HTTPUploader uploads via plain HTTP PUT, the contract presigned S3
// URLs expect.
type HTTPUploader struct {
	client *http.Client
}

func NewHTTPUploader() *HTTPUploader {
	return &HTTPUploader{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (u *HTTPUploader) Put(ctx context.Context, url string, body io.Reader, size int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.ContentLength = size

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("upload request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("upload returned status %d", resp.StatusCode)
	}

	return nil
}
