package media

import (
	"context"
	"errors"
	"fmt"
	"path"

	"dalal-market/utils"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrEmptyFile       = errors.New("media: empty file")
	ErrFileTooLarge    = errors.New("media: file too large")
	ErrUnsupportedType = errors.New("media: unsupported image type")
)

// allowed image types and the extension stored for each
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Object is a stored file
type Object struct {
	Key         string
	URL         string
	ContentType string
}

// Storage persists listing images
type Storage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (Object, error)
}

// Uploader validates images before handing them to a Storage
type Uploader struct {
	storage  Storage
	maxBytes int64
}

func NewUploader(storage Storage, maxBytes int64) *Uploader {
	return &Uploader{storage: storage, maxBytes: maxBytes}
}

// UploadListingImage sniffs data, rejects non-images and stores it under the listing's prefix
func (u *Uploader) UploadListingImage(ctx context.Context, listingID string, data []byte) (Object, error) {
	if len(data) == 0 {
		return Object{}, ErrEmptyFile
	}
	if u.maxBytes > 0 && int64(len(data)) > u.maxBytes {
		return Object{}, fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, len(data), u.maxBytes)
	}

	detected := mimetype.Detect(data)
	ext, ok := imageExtensions[detected.String()]
	if !ok {
		return Object{}, fmt.Errorf("%w: %s", ErrUnsupportedType, detected.String())
	}

	key := path.Join("listings", listingID, utils.GenerateID()+ext)
	obj, err := u.storage.Put(ctx, key, detected.String(), data)
	if err != nil {
		return Object{}, fmt.Errorf("media: store %s: %w", key, err)
	}
	return obj, nil
}
