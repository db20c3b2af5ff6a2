package storage

import (
	"bytes"
	"context"
	"io"
	"time"

	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) Upload(ctx context.Context, reader io.Reader, key string, size int64, contentType string) (*contracts.StorageObject, error) {
	info, err := m.MinioClient.PutObject(ctx, m.BucketName, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return &contracts.StorageObject{
		Key:       key,
		ETag:      info.ETag,
		SizeBytes: info.Size,
	}, nil
}

func (m *minioStorage) Download(ctx context.Context, key string) ([]byte, error) {
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	defer object.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, object); err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	return buf.Bytes(), nil
}

func (m *minioStorage) Delete(ctx context.Context, key string) error {
	err := m.MinioClient.RemoveObject(ctx, m.BucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrMinioRemoveObject(err, m.BucketName)
	}
	return nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, key string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, key, expiryTime, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, m.BucketName)
	}
	return presignedURL.String(), nil
}
