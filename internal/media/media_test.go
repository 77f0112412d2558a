package media

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestUploader_UploadListingImage(t *testing.T) {
	root := t.TempDir()
	storage, err := NewLocalStorage(root, "/media/")
	require.NoError(t, err)
	uploader := NewUploader(storage, 1024)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "png", data: pngPixel},
		{name: "empty", data: nil, wantErr: ErrEmptyFile},
		{name: "text", data: []byte("hello, not an image"), wantErr: ErrUnsupportedType},
		{name: "too_large", data: append(append([]byte{}, pngPixel...), bytes.Repeat([]byte{0}, 2048)...), wantErr: ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := uploader.UploadListingImage(context.Background(), "listing-1", tt.data)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(obj.Key, "listings/listing-1/"))
			require.True(t, strings.HasSuffix(obj.Key, ".png"))
			require.Equal(t, "/media/"+obj.Key, obj.URL)
			require.Equal(t, "image/png", obj.ContentType)

			written, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(obj.Key)))
			require.NoError(t, err)
			require.Equal(t, tt.data, written)
		})
	}
}
