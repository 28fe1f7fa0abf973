package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// ImageConstraints defines validation rules for post image uploads
type ImageConstraints struct {
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

// PostImageConstraints bounds post images. The size cap is deliberately
// small so uploads stay cheap for direct-to-storage PUTs.
var PostImageConstraints = ImageConstraints{
	AllowedMimeTypes: map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	},
	AllowedExtensions: map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".webp": true,
		".gif":  true,
	},
	MaxSize: 1 << 20, // 1MB
}

// Image validates an image upload by name, size and content. It reads at
// most 512 bytes from r for magic number detection; callers that need the
// full stream afterwards should pass a fresh reader or seek back.
func Image(filename string, size int64, r io.Reader) error {
	c := PostImageConstraints

	// Check size first (before reading content)
	if size > c.MaxSize {
		maxMB := c.MaxSize / (1 << 20)
		return fmt.Errorf("image too large: maximum size is %d MB", maxMB)
	}

	// Read first 512 bytes for magic number detection
	buffer := make([]byte, 512)
	n, err := r.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read image: %w", err)
	}

	// Detect actual content type from file content (magic numbers).
	// This cannot be faked by changing the Content-Type header.
	detectedType := http.DetectContentType(buffer[:n])
	if !c.AllowedMimeTypes[detectedType] {
		return fmt.Errorf("invalid image type (detected: %s)", detectedType)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !c.AllowedExtensions[ext] {
		return fmt.Errorf("invalid image extension: %s", ext)
	}

	return nil
}

// ImageHeader validates a multipart image upload, resetting the file
// pointer so the caller can still consume the full stream.
func ImageHeader(header *multipart.FileHeader) error {
	// Size check without opening, so oversized uploads fail before any read
	if header.Size > PostImageConstraints.MaxSize {
		maxMB := PostImageConstraints.MaxSize / (1 << 20)
		return fmt.Errorf("image too large: maximum size is %d MB", maxMB)
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = file.Close() }()

	err = Image(header.Filename, header.Size, file)
	if err != nil {
		return err
	}

	seeker, ok := file.(io.Seeker)
	if ok {
		_, err = seeker.Seek(0, 0)
		if err != nil {
			return fmt.Errorf("failed to reset file pointer: %w", err)
		}
	}

	return nil
}
