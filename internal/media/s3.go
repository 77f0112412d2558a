package media

import (
	"bytes"
	"context"
	"fmt"

	"dalal-market/utils"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Storage stores objects in a MinIO/S3 bucket
type S3Storage struct {
	client *minio.Client
	bucket string
}

// NewS3Storage connects to endpoint and makes sure bucket exists
func NewS3Storage(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*S3Storage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("media: create minio client for %s: %w", endpoint, err)
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		exists, existsErr := client.BucketExists(ctx, bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("media: make bucket %s: %w", bucket, err)
		}
		utils.Debug("bucket already exists", map[string]any{"bucket": bucket})
	} else {
		utils.Info("bucket created", map[string]any{"bucket": bucket})
	}

	return &S3Storage{client: client, bucket: bucket}, nil
}

func (s *S3Storage) Put(ctx context.Context, key, contentType string, data []byte) (Object, error) {
	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return Object{}, fmt.Errorf("put object %s to bucket %s: %w", key, s.bucket, err)
	}
	utils.Debug("object uploaded", map[string]any{"bucket": info.Bucket, "key": info.Key, "size": info.Size})

	return Object{
		Key:         key,
		URL:         fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, key),
		ContentType: contentType,
	}, nil
}
