package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"carmarketCPT/internal/models"
)

// MemStore - документ в памяти, используется в тестах вместо файла
type MemStore struct {
	mu  sync.RWMutex
	doc *models.Document
}

func NewMemStore() *MemStore {
	return &MemStore{doc: models.NewDocument()}
}

// Load возвращает глубокую копию документа, как и чтение из файла
func (s *MemStore) Load(ctx context.Context) (*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyDocument(s.doc)
}

func (s *MemStore) Save(ctx context.Context, doc *models.Document) error {
	copied, err := copyDocument(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = copied
	return nil
}

// copyDocument копирует документ через JSON, чтобы семантика
// совпадала с файловым хранилищем
func copyDocument(doc *models.Document) (*models.Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("ошибка копирования документа: %w", err)
	}

	var copied models.Document
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, fmt.Errorf("ошибка копирования документа: %w", err)
	}

	return &copied, nil
}
