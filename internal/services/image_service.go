package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"inventori/internal/storage"
)

var allowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ImageService stores uploaded pictures under opaque uuid keys, scoped per
// box or per user so the janitor can sweep a whole box prefix.
type ImageService interface {
	SaveBoxImage(ctx context.Context, boxID uint, fileHeader *multipart.FileHeader) (string, error)
	SaveProfileImage(ctx context.Context, userID uint, fileHeader *multipart.FileHeader) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteByURL(ctx context.Context, imageURL string) error
}

type imageServiceImpl struct {
	store storage.Store
}

func NewImageService(store storage.Store) ImageService {
	return &imageServiceImpl{store: store}
}

func (s *imageServiceImpl) SaveBoxImage(ctx context.Context, boxID uint, fileHeader *multipart.FileHeader) (string, error) {
	return s.save(ctx, fmt.Sprintf("boxes/%d", boxID), fileHeader)
}

func (s *imageServiceImpl) SaveProfileImage(ctx context.Context, userID uint, fileHeader *multipart.FileHeader) (string, error) {
	return s.save(ctx, fmt.Sprintf("users/%d", userID), fileHeader)
}

func (s *imageServiceImpl) save(ctx context.Context, prefix string, fileHeader *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedImageExtensions[ext]
	if !ok {
		return "", errors.New("unsupported image type")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
	return s.store.Put(ctx, key, file, contentType)
}

func (s *imageServiceImpl) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.store.Open(ctx, key)
}

// DeleteByURL maps a stored URL back to its object key and removes it. The
// store owns the mapping, so the reversal matches whatever URL Put handed
// out. URLs pointing outside the store are ignored.
func (s *imageServiceImpl) DeleteByURL(ctx context.Context, imageURL string) error {
	if imageURL == "" {
		return nil
	}
	key, ok := s.store.KeyFromURL(imageURL)
	if !ok {
		return nil
	}
	return s.store.Delete(ctx, key)
}
