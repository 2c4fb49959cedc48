package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"carmarketCPT/internal/models"
	"carmarketCPT/internal/store"
)

func testAdRecord(adID, userID, status string) *models.AdRecord {
	return &models.AdRecord{
		User: models.UserInfo{ID: userID, Name: "Owner", Email: "owner@example.com"},
		Ad: models.Ad{
			ID:        adID,
			Make:      "Toyota",
			Model:     "Camry",
			Year:      2018,
			Price:     15000,
			Mileage:   40000,
			Color:     "black",
			Status:    status,
			CreatedAt: time.Now(),
		},
	}
}

func TestAdRepository_CreateAndGetByID(t *testing.T) {
	repo := NewAdRepository(store.NewMemStore())
	ctx := context.Background()

	err := repo.Create(ctx, testAdRecord("ad-1", "u1", models.StatusPending))
	assert.NoError(t, err)

	rec, err := repo.GetByID(ctx, "ad-1")
	assert.NoError(t, err)
	assert.Equal(t, "Toyota", rec.Ad.Make)
	assert.Equal(t, "u1", rec.User.ID)
}

func TestAdRepository_GetByIDNotFound(t *testing.T) {
	repo := NewAdRepository(store.NewMemStore())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestAdRepository_GetByStatus(t *testing.T) {
	repo := NewAdRepository(store.NewMemStore())
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, testAdRecord("ad-1", "u1", models.StatusPending)))
	assert.NoError(t, repo.Create(ctx, testAdRecord("ad-2", "u1", models.StatusApproved)))
	assert.NoError(t, repo.Create(ctx, testAdRecord("ad-3", "u2", models.StatusApproved)))

	approved, err := repo.GetByStatus(ctx, models.StatusApproved)
	assert.NoError(t, err)
	assert.Len(t, approved, 2)

	rejected, err := repo.GetByStatus(ctx, models.StatusRejected)
	assert.NoError(t, err)
	assert.Empty(t, rejected)
}

func TestAdRepository_GetByUserID(t *testing.T) {
	repo := NewAdRepository(store.NewMemStore())
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, testAdRecord("ad-1", "u1", models.StatusPending)))
	assert.NoError(t, repo.Create(ctx, testAdRecord("ad-2", "u2", models.StatusPending)))

	userAds, err := repo.GetByUserID(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, userAds, 1)
	assert.Equal(t, "ad-1", userAds[0].Ad.ID)
}

func TestAdRepository_Update(t *testing.T) {
	repo := NewAdRepository(store.NewMemStore())
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, testAdRecord("ad-1", "u1", models.StatusPending)))

	rec, err := repo.GetByID(ctx, "ad-1")
	assert.NoError(t, err)

	rec.Ad.Status = models.StatusApproved
	assert.NoError(t, repo.Update(ctx, rec))

	updated, err := repo.GetByID(ctx, "ad-1")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Ad.Status)
}

func TestAdRepository_UpdateNotFound(t *testing.T) {
	repo := NewAdRepository(store.NewMemStore())

	err := repo.Update(context.Background(), testAdRecord("missing", "u1", models.StatusPending))
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestAdRepository_Delete(t *testing.T) {
	repo := NewAdRepository(store.NewMemStore())
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, testAdRecord("ad-1", "u1", models.StatusPending)))

	assert.NoError(t, repo.Delete(ctx, "ad-1"))

	_, err := repo.GetByID(ctx, "ad-1")
	assert.True(t, errors.Is(err, models.ErrNotFound))

	// повторное удаление того же id падает
	err = repo.Delete(ctx, "ad-1")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
