package validation

import (
	"bytes"
	"strings"
	"testing"
)

// pngHeader is the 8-byte PNG signature followed by padding so
// http.DetectContentType recognizes it.
var pngHeader = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 100)...)

func TestImageAcceptsSmallPNG(t *testing.T) {
	err := Image("photo.png", int64(len(pngHeader)), bytes.NewReader(pngHeader))
	if err != nil {
		t.Errorf("Image() = %v, want nil", err)
	}
}

func TestImageRejectsOversized(t *testing.T) {
	// 2MB must be rejected on size alone, before any content is read
	err := Image("photo.png", 2<<20, failingReader{t})
	if err == nil {
		t.Fatal("expected error for 2MB image")
	}
	if !strings.Contains(err.Error(), "too large") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestImageRejectsWrongContent(t *testing.T) {
	body := []byte("#!/bin/sh\necho not an image")
	err := Image("photo.png", int64(len(body)), bytes.NewReader(body))
	if err == nil {
		t.Fatal("expected error for non-image content")
	}
}

func TestImageRejectsWrongExtension(t *testing.T) {
	err := Image("photo.exe", int64(len(pngHeader)), bytes.NewReader(pngHeader))
	if err == nil {
		t.Fatal("expected error for disallowed extension")
	}
}

// failingReader fails the test if anything tries to read from it.
type failingReader struct {
	t *testing.T
}

func (r failingReader) Read([]byte) (int, error) {
	r.t.Fatal("content was read for an upload that should fail on size")
	return 0, nil
}
