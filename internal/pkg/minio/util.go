package minio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
)

// Upload 上传本地文件并返回公网地址
func (s *Storage) Upload(ctx context.Context, localPath string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return "", err
	}
	mime, err := mimetype.DetectFile(localPath)
	if err != nil {
		return "", err
	}

	objectName := filepath.Base(localPath)
	uploadInfo, err := s.client.PutObject(ctx, s.bucket, objectName, file, info.Size(), minio.PutObjectOptions{
		ContentType: mime.String(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.PublicURL(uploadInfo.Key), nil
}

// PublicURL 获取文件的公共访问URL
func (s *Storage) PublicURL(objectName string) string {
	protocol := "http"
	if s.useSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, s.external, s.bucket, objectName)
}
