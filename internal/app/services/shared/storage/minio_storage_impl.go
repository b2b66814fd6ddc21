package storage

import (
	"bytes"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"mime"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) UploadBase64Image(ctx context.Context, encodedImageData []byte, fileName, fileExtension string) (string, error) {
	contentType := mime.TypeByExtension(fileExtension)
	if contentType == "" {
		errContentType := fmt.Errorf("unknown content type for extension %s", fileExtension)
		return "", exceptions.ErrMinioCreateObject(errContentType, m.BucketName)
	}

	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		fileName,
		bytes.NewReader(encodedImageData),
		int64(len(encodedImageData)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return fileName, nil
}
