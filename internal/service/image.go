package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"portfolio/internal/storage"
)

var ErrReaderNil = errors.New("reader is nil")

// ImageService uploads project images to object storage and hands back the
// URL an admin can store as a project's imageUrl.
type ImageService interface {
	// Upload stores the content under images/<uuid><ext> and returns its
	// public URL. originalFilename is used only to extract the extension.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (string, error)
}

type imageService struct {
	store storage.Storage
}

// NewImageService constructs a new ImageService.
func NewImageService(store storage.Storage) ImageService {
	return &imageService{store: store}
}

func (s *imageService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (string, error) {
	if r == nil {
		return "", ErrReaderNil
	}
	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("images", uuid.New().String()+ext))

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}
	return s.store.PublicURL(info.Key), nil
}
