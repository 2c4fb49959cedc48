package store

import (
	"context"

	"carmarketCPT/internal/models"
)

// Store - абстракция над единым JSON-документом.
// Каждая операция сервисов делает Load -> изменение -> Save целиком;
// одновременные писатели перетирают друг друга (last-write-wins),
// это осознанное ограничение, а не баг.
type Store interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}
