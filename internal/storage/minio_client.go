package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"carmarketCPT/internal/config"
)

// Storage - выгрузка изображений объявлений в объектное хранилище.
// Если MinIO не настроен, сервисы работают без него и data-URI
// остаётся в документе как есть.
type Storage interface {
	UploadAdImage(ctx context.Context, adID string, dataURI string) (string, error)
	DeleteAdImage(ctx context.Context, imageURL string) error
}

type MinIOClient struct {
	client *minio.Client
	config *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// создаём бакет, если его ещё нет
	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета: %w", err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета: %w", err)
		}
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

// UploadAdImage декодирует data-URI и кладёт изображение в бакет,
// возвращает URL объекта
func (m *MinIOClient) UploadAdImage(ctx context.Context, adID string, dataURI string) (string, error) {
	contentType, payload, err := decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("ads/%s/%s%s", adID, uuid.New().String(), extByContentType(contentType))

	_, err = m.client.PutObject(ctx, m.config.MinIO.BucketName, objectName,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"ad-id":       adID,
				"uploaded-at": time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	scheme := "http"
	if m.config.MinIO.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.config.MinIO.Endpoint, m.config.MinIO.BucketName, objectName), nil
}

// DeleteAdImage удаляет объект по его URL; чужие URL пропускаются
func (m *MinIOClient) DeleteAdImage(ctx context.Context, imageURL string) error {
	marker := "/" + m.config.MinIO.BucketName + "/"
	idx := strings.Index(imageURL, marker)
	if idx == -1 {
		return nil
	}
	objectName := imageURL[idx+len(marker):]
	if objectName == "" {
		return nil
	}

	err := m.client.RemoveObject(ctx, m.config.MinIO.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}

	return nil
}

// decodeDataURI разбирает строку вида data:image/png;base64,...
func decodeDataURI(dataURI string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURI, "data:")
	if !ok {
		return "", nil, fmt.Errorf("не data-URI")
	}

	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("неверный формат data-URI")
	}

	contentType := strings.TrimSuffix(meta, ";base64")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("ошибка декодирования data-URI: %w", err)
	}

	return contentType, payload, nil
}

func extByContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
