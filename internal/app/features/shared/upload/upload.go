// Package upload stores brand and model images through the configured
// storage backend. Files get a unique path so replacing an image never
// overwrites another upload.
package upload

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
)

// ErrNotImage is returned when the uploaded file is not an image type.
var ErrNotImage = errors.New("uploaded file is not an image")

// Info contains metadata about a stored image.
type Info struct {
	Path        string
	FileName    string
	Size        int64
	ContentType string
}

// Image stores an uploaded image with a unique path and returns its info.
// The path is generated as: images/YYYY/MM/uuid-filename. Only image/*
// content types are accepted.
func Image(ctx context.Context, store storage.Store, fh *multipart.FileHeader) (Info, error) {
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return Info{}, ErrNotImage
	}

	f, err := fh.Open()
	if err != nil {
		return Info{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	now := time.Now().UTC()
	dateDir := fmt.Sprintf("images/%04d/%02d", now.Year(), now.Month())
	uniqueName := fmt.Sprintf("%s-%s", uuid.New().String()[:8], sanitizeFilename(fh.Filename))
	path := filepath.ToSlash(filepath.Join(dateDir, uniqueName))

	opts := &storage.PutOptions{
		ContentType: contentType,
	}
	if err := store.Put(ctx, path, f, opts); err != nil {
		return Info{}, fmt.Errorf("store upload: %w", err)
	}

	return Info{
		Path:        path,
		FileName:    fh.Filename,
		Size:        fh.Size,
		ContentType: contentType,
	}, nil
}

// Remove deletes a stored image. A blank path is a no-op so callers can
// pass image_filename fields without checking them first.
func Remove(ctx context.Context, store storage.Store, path string) error {
	if path == "" {
		return nil
	}
	return store.Delete(ctx, path)
}

// sanitizeFilename removes or replaces characters that could be problematic in filenames.
func sanitizeFilename(filename string) string {
	// Get just the filename, not any path components
	filename = filepath.Base(filename)

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		// Truncate but preserve extension if present
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}

	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
