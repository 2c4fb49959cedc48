package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"carmarketCPT/internal/models"
	"carmarketCPT/internal/repository"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockAdService struct {
	mock.Mock
}

func (m *MockAdService) CreateAd(ctx context.Context, req repository.CreateAdRequest) (*models.AdRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdRecord), args.Error(1)
}

func (m *MockAdService) EditAd(ctx context.Context, adID string, req repository.UpdateAdRequest) (*models.AdRecord, error) {
	args := m.Called(ctx, adID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdRecord), args.Error(1)
}

func (m *MockAdService) Approve(ctx context.Context, adID string) (*models.AdRecord, error) {
	args := m.Called(ctx, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdRecord), args.Error(1)
}

func (m *MockAdService) Reject(ctx context.Context, adID string) (*models.AdRecord, error) {
	args := m.Called(ctx, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdRecord), args.Error(1)
}

func (m *MockAdService) DeleteAd(ctx context.Context, adID string) error {
	args := m.Called(ctx, adID)
	return args.Error(0)
}

func (m *MockAdService) GetByID(ctx context.Context, adID string) (*models.AdRecord, error) {
	args := m.Called(ctx, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdRecord), args.Error(1)
}

func (m *MockAdService) ListAll(ctx context.Context) ([]models.AdRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdRecord), args.Error(1)
}

func (m *MockAdService) ListByStatus(ctx context.Context, status string) ([]models.AdRecord, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdRecord), args.Error(1)
}

func (m *MockAdService) ListByUser(ctx context.Context, userID string) ([]models.AdRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdRecord), args.Error(1)
}

func (m *MockAdService) ListApprovedCars(ctx context.Context) ([]models.Ad, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ad), args.Error(1)
}

func (m *MockAdService) Search(ctx context.Context, query string) ([]models.AdRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdRecord), args.Error(1)
}

type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) RecordPurchase(ctx context.Context, req repository.CreatePurchaseRequest) (*models.PurchaseRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseService) ListByUser(ctx context.Context, userID string) (*models.PurchaseGroup, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PurchaseGroup), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetCounts(ctx context.Context) (models.Counts, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Counts), args.Error(1)
}
