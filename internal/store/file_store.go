package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"carmarketCPT/internal/models"
)

// FileStore хранит документ в одном JSON-файле
type FileStore struct {
	path string
}

// NewFileStore открывает файл данных, при отсутствии создаёт пустой документ
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("не задан путь к файлу данных")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ошибка при создании каталога данных: %w", err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := json.MarshalIndent(models.NewDocument(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации пустого документа: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("ошибка при создании файла данных: %w", err)
		}
		log.Printf("Создан новый файл данных: %s", path)
	}

	return &FileStore{path: path}, nil
}

// Load читает и разбирает весь документ
func (s *FileStore) Load(ctx context.Context) (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла данных: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("файл данных повреждён: %w", err)
	}

	return &doc, nil
}

// Save перезаписывает файл целиком
func (s *FileStore) Save(ctx context.Context, doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации документа: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("ошибка записи файла данных: %w", err)
	}

	return nil
}

func (s *FileStore) HealthCheck() error {
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("файл данных недоступен: %w", err)
	}
	return nil
}
