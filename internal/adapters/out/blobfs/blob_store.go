// Package blobfs stores route log photos on the local filesystem.
// URIs have the form /uploads/<uuid>.<ext>; the path component after
// /uploads/ is the file name inside the configured directory.
package blobfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"fleetlog/internal/pkg/errs"

	"github.com/google/uuid"
)

const uriPrefix = "/uploads/"

// FileBlobStore implements ports.BlobStore on top of a single directory.
type FileBlobStore struct {
	dir string
}

// NewFileBlobStore creates a store rooted at dir, creating it if needed.
func NewFileBlobStore(dir string) (*FileBlobStore, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %s: %w", dir, err)
	}

	return &FileBlobStore{dir: dir}, nil
}

func (s *FileBlobStore) Put(_ context.Context, content []byte, contentType string) (string, error) {
	if len(content) == 0 {
		return "", errs.NewValueIsRequiredError("content")
	}

	name := uuid.New().String() + extensionFor(contentType)
	if err := os.WriteFile(filepath.Join(s.dir, name), content, 0o644); err != nil {
		return "", fmt.Errorf("write blob %s: %w", name, err)
	}

	return uriPrefix + name, nil
}

func (s *FileBlobStore) Get(_ context.Context, uri string) ([]byte, error) {
	name, err := s.fileName(uri)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewObjectNotFoundError("uri", uri)
		}
		return nil, fmt.Errorf("read blob %s: %w", name, err)
	}

	return content, nil
}

// fileName validates a URI and strips the prefix. Rejects anything that
// could escape the uploads directory.
func (s *FileBlobStore) fileName(uri string) (string, error) {
	if !strings.HasPrefix(uri, uriPrefix) {
		return "", errs.NewValueIsInvalidError("uri")
	}

	name := strings.TrimPrefix(uri, uriPrefix)
	if name == "" || name != path.Base(name) {
		return "", errs.NewValueIsInvalidError("uri")
	}

	return name, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
