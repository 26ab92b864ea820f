// Package objectstore provides the MinIO-backed artifact store. Rendered
// document files live in one bucket; delivery hands out short-lived
// presigned links instead of streaming the files through the service.
package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// presignedTTL is the lifetime of a download link handed to the client.
const presignedTTL = time.Hour

// MinioStore implements ArtifactStore on top of a MinIO (or any S3
// compatible) endpoint.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore connects to the endpoint and ensures the bucket exists.
func NewMinioStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", bucket, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
	}

	return &MinioStore{
		client: client,
		bucket: bucket,
	}, nil
}

// Put stores a rendered artifact under the given object key.
func (s *MinioStore) Put(ctx context.Context, objectKey, contentType string, payload []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("put object %q: %w", objectKey, err)
	}
	return nil
}

// PresignedURL returns a time-limited download link for an artifact.
func (s *MinioStore) PresignedURL(ctx context.Context, objectKey string) (string, error) {
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, presignedTTL, nil)
	if err != nil {
		return "", fmt.Errorf("presign object %q: %w", objectKey, err)
	}
	return url.String(), nil
}
