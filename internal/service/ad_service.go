package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"carmarketCPT/internal/config"
	"carmarketCPT/internal/models"
	"carmarketCPT/internal/repository"
	"carmarketCPT/internal/storage"
)

type AdService interface {
	CreateAd(ctx context.Context, req repository.CreateAdRequest) (*models.AdRecord, error)
	EditAd(ctx context.Context, adID string, req repository.UpdateAdRequest) (*models.AdRecord, error)
	Approve(ctx context.Context, adID string) (*models.AdRecord, error)
	Reject(ctx context.Context, adID string) (*models.AdRecord, error)
	DeleteAd(ctx context.Context, adID string) error
	GetByID(ctx context.Context, adID string) (*models.AdRecord, error)
	ListAll(ctx context.Context) ([]models.AdRecord, error)
	ListByStatus(ctx context.Context, status string) ([]models.AdRecord, error)
	ListByUser(ctx context.Context, userID string) ([]models.AdRecord, error)
	ListApprovedCars(ctx context.Context) ([]models.Ad, error)
	Search(ctx context.Context, query string) ([]models.AdRecord, error)
}

type adService struct {
	adRepo   repository.AdRepository
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewAdService(adRepo repository.AdRepository, userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) AdService {
	return &adService{
		adRepo:   adRepo,
		userRepo: userRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *adService) CreateAd(ctx context.Context, req repository.CreateAdRequest) (*models.AdRecord, error) {
	if req.Make == "" || req.Model == "" || req.Year == 0 || req.Price == 0 ||
		req.Mileage == 0 || req.Color == "" || req.UserID == "" {
		return nil, fmt.Errorf("не заполнены обязательные поля: %w", models.ErrValidation)
	}

	owner := s.resolveOwner(ctx, req.UserID)

	adID := uuid.New().String()

	// data-URI выгружаем в MinIO, если хранилище настроено;
	// при ошибке оставляем изображение в документе как есть
	image := req.Image
	if s.storage != nil && strings.HasPrefix(image, "data:") {
		url, err := s.storage.UploadAdImage(ctx, adID, image)
		if err != nil {
			log.Printf("Предупреждение: не удалось выгрузить изображение: %v", err)
		} else {
			image = url
		}
	}

	rec := &models.AdRecord{
		User: owner,
		Ad: models.Ad{
			ID:          adID,
			Make:        req.Make,
			Model:       req.Model,
			Year:        req.Year,
			Price:       req.Price,
			Mileage:     req.Mileage,
			Color:       req.Color,
			Description: req.Description,
			Image:       image,
			// статус всегда pending, значение клиента игнорируется
			Status:    models.StatusPending,
			CreatedAt: time.Now(),
		},
	}

	if err := s.adRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// resolveOwner берёт снимок владельца; если пользователь не найден,
// подставляется заглушка и создание не прерывается
func (s *adService) resolveOwner(ctx context.Context, userID string) models.UserInfo {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return models.UserInfo{ID: userID, Name: "Unknown", Email: "Unknown"}
	}
	return user.Info()
}

func (s *adService) EditAd(ctx context.Context, adID string, req repository.UpdateAdRequest) (*models.AdRecord, error) {
	rec, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return nil, err
	}

	if req.Make != nil {
		rec.Ad.Make = *req.Make
	}
	if req.Model != nil {
		rec.Ad.Model = *req.Model
	}
	if req.Year != nil {
		rec.Ad.Year = *req.Year
	}
	if req.Price != nil {
		rec.Ad.Price = *req.Price
	}
	if req.Mileage != nil {
		rec.Ad.Mileage = *req.Mileage
	}
	if req.Color != nil {
		rec.Ad.Color = *req.Color
	}
	if req.Description != nil {
		rec.Ad.Description = *req.Description
	}
	if req.Image != nil {
		rec.Ad.Image = *req.Image
	}

	// правка всегда возвращает объявление на модерацию
	rec.Ad.Status = models.StatusPending

	if err := s.adRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *adService) Approve(ctx context.Context, adID string) (*models.AdRecord, error) {
	return s.setStatus(ctx, adID, models.StatusApproved)
}

func (s *adService) Reject(ctx context.Context, adID string) (*models.AdRecord, error) {
	return s.setStatus(ctx, adID, models.StatusRejected)
}

// setStatus переводит объявление в новый статус; переходы между
// approved и rejected разрешены в обе стороны, терминального состояния нет
func (s *adService) setStatus(ctx context.Context, adID string, status string) (*models.AdRecord, error) {
	rec, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return nil, err
	}

	rec.Ad.Status = status

	if err := s.adRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (s *adService) DeleteAd(ctx context.Context, adID string) error {
	rec, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return err
	}

	if err := s.adRepo.Delete(ctx, adID); err != nil {
		return err
	}

	// выгруженное изображение удаляем по возможности
	if s.storage != nil && rec.Ad.Image != "" && !strings.HasPrefix(rec.Ad.Image, "data:") {
		if err := s.storage.DeleteAdImage(ctx, rec.Ad.Image); err != nil {
			log.Printf("Предупреждение: не удалось удалить изображение: %v", err)
		}
	}

	return nil
}

func (s *adService) GetByID(ctx context.Context, adID string) (*models.AdRecord, error) {
	return s.adRepo.GetByID(ctx, adID)
}

func (s *adService) ListAll(ctx context.Context) ([]models.AdRecord, error) {
	return s.adRepo.GetAll(ctx)
}

func (s *adService) ListByStatus(ctx context.Context, status string) ([]models.AdRecord, error) {
	return s.adRepo.GetByStatus(ctx, status)
}

func (s *adService) ListByUser(ctx context.Context, userID string) ([]models.AdRecord, error) {
	return s.adRepo.GetByUserID(ctx, userID)
}

// ListApprovedCars - публичный каталог: одобренные объявления без владельца
func (s *adService) ListApprovedCars(ctx context.Context) ([]models.Ad, error) {
	records, err := s.adRepo.GetByStatus(ctx, models.StatusApproved)
	if err != nil {
		return nil, err
	}

	cars := make([]models.Ad, 0, len(records))
	for _, rec := range records {
		cars = append(cars, rec.Ad)
	}

	return cars, nil
}

func (s *adService) Search(ctx context.Context, query string) ([]models.AdRecord, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil, fmt.Errorf("пустой поисковый запрос: %w", models.ErrValidation)
	}

	records, err := s.adRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.AdRecord, 0)
	for _, rec := range records {
		if matchesQuery(rec, term) {
			filtered = append(filtered, rec)
		}
	}

	return filtered, nil
}

// matchesQuery - подстрочный поиск без учёта регистра по полям
// объявления и снимку владельца
func matchesQuery(rec models.AdRecord, term string) bool {
	carMake := strings.ToLower(strings.TrimSpace(rec.Ad.Make))
	carModel := strings.ToLower(strings.TrimSpace(rec.Ad.Model))

	year := ""
	if rec.Ad.Year != 0 {
		year = strconv.Itoa(rec.Ad.Year)
	}
	price := ""
	if rec.Ad.Price != 0 {
		price = strconv.FormatFloat(rec.Ad.Price, 'f', -1, 64)
	}

	fields := []string{
		strings.ToLower(rec.Ad.ID),
		carMake,
		carModel,
		strings.TrimSpace(carMake + " " + carModel),
		year,
		price,
		strings.ToLower(rec.Ad.Color),
		strings.ToLower(rec.Ad.Description),
		strings.ToLower(rec.User.Name),
		strings.ToLower(rec.User.Email),
	}

	for _, field := range fields {
		if field != "" && strings.Contains(field, term) {
			return true
		}
	}

	return false
}
