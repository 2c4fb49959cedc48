package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"carmarketCPT/internal/models"
)

func TestNewFileStore_CreatesEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	st, err := NewFileStore(path)
	assert.NoError(t, err)

	// файл создан
	_, err = os.Stat(path)
	assert.NoError(t, err)

	doc, err := st.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, doc.Users)
	assert.Empty(t, doc.Ads)
	assert.Empty(t, doc.Purchases)
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	st, err := NewFileStore(path)
	assert.NoError(t, err)

	ctx := context.Background()

	doc, err := st.Load(ctx)
	assert.NoError(t, err)

	doc.Users = append(doc.Users, models.User{
		ID:    "user-1",
		Name:  "Aigerim",
		Email: "aigerim@example.com",
		Role:  models.RoleUser,
	})

	err = st.Save(ctx, doc)
	assert.NoError(t, err)

	loaded, err := st.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, loaded.Users, 1)
	assert.Equal(t, "aigerim@example.com", loaded.Users[0].Email)
}

func TestFileStore_KeepsExistingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	err := os.WriteFile(path, []byte(`{"users":[{"id":"u1","name":"Test","email":"t@t.kz","password":"x","role":"user"}],"ads":[],"purchases":[]}`), 0o644)
	assert.NoError(t, err)

	// повторное открытие не должно перетирать файл
	st, err := NewFileStore(path)
	assert.NoError(t, err)

	doc, err := st.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, doc.Users, 1)
	assert.Equal(t, "u1", doc.Users[0].ID)
}

func TestFileStore_LoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	err := os.WriteFile(path, []byte("{not json"), 0o644)
	assert.NoError(t, err)

	st, err := NewFileStore(path)
	assert.NoError(t, err)

	_, err = st.Load(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "повреждён")
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	st, err := NewFileStore(path)
	assert.NoError(t, err)

	// файл удалили из-под хранилища
	err = os.Remove(path)
	assert.NoError(t, err)

	_, err = st.Load(context.Background())
	assert.Error(t, err)

	assert.Error(t, st.HealthCheck())
}

func TestMemStore_LoadReturnsCopy(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	doc, err := st.Load(ctx)
	assert.NoError(t, err)

	// мутация загруженной копии не должна менять хранилище
	doc.Users = append(doc.Users, models.User{ID: "u1"})

	fresh, err := st.Load(ctx)
	assert.NoError(t, err)
	assert.Empty(t, fresh.Users)
}

func TestMemStore_SaveLoad(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	doc, _ := st.Load(ctx)
	doc.Ads = append(doc.Ads, models.AdRecord{
		User: models.UserInfo{ID: "u1", Name: "Test", Email: "t@t.kz"},
		Ad:   models.Ad{ID: "ad-1", Make: "Toyota", Model: "Camry", Status: models.StatusPending},
	})

	err := st.Save(ctx, doc)
	assert.NoError(t, err)

	loaded, err := st.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, loaded.Ads, 1)
	assert.Equal(t, "Toyota", loaded.Ads[0].Ad.Make)
}
