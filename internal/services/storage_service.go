package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Buckets used by the back office. Content images and bulk process files
// are kept apart so retention policies can differ.
const (
	ImageBucket       = "backoffice-images"
	ProcessFileBucket = "backoffice-processes"
)

// StorageService is the single entry point to object storage. Credentials
// are injected once at construction; nothing reads ambient configuration at
// call sites.
type StorageService interface {
	Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) error
	Download(ctx context.Context, bucket, objectName string) (io.ReadCloser, error)
	Delete(ctx context.Context, bucket, objectName string) error
	PresignedURL(ctx context.Context, bucket, objectName string, expiry time.Duration) (string, error)
	EnsureBucket(ctx context.Context, bucket string) error
}

type minioStorage struct {
	client *minio.Client
}

func NewMinioStorage(endpoint, accessKey, secretKey string, useSSL bool) (StorageService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioStorage{client: client}, nil
}

func (m *minioStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) error {
	_, err := m.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (m *minioStorage) Download(ctx context.Context, bucket, objectName string) (io.ReadCloser, error) {
	return m.client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
}

func (m *minioStorage) Delete(ctx context.Context, bucket, objectName string) error {
	return m.client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
}

func (m *minioStorage) PresignedURL(ctx context.Context, bucket, objectName string, expiry time.Duration) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, bucket, objectName, expiry, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

func (m *minioStorage) EnsureBucket(ctx context.Context, bucket string) error {
	found, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// ObjectName builds a collision-free object key preserving the original
// file extension.
func ObjectName(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
}
