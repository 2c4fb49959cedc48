package app

import (
	"log"

	"carmarketCPT/internal/config"
	"carmarketCPT/internal/repository"
	"carmarketCPT/internal/service"
	"carmarketCPT/internal/storage"
	"carmarketCPT/internal/store"
)

func App(cfg *config.Config) (*repository.Repository, *service.Service) {
	// открываем файл данных
	st, err := store.NewFileStore(cfg.DBFile)
	if err != nil {
		log.Fatalf("Не удалось открыть файл данных: %v", err)
	}

	if err := st.HealthCheck(); err != nil {
		log.Fatalf("Проверка файла данных не пройдена: %v", err)
	}

	// MinIO подключаем только если задан endpoint
	var imageStorage storage.Storage
	if cfg.MinIO.Endpoint != "" {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			log.Printf("Внимание: не удалось инициализировать MinIO: %v", err)
		} else {
			imageStorage = minioClient
		}
	}

	// enabling dependencies
	repo := repository.NewRepository(st)

	services := service.NewService(repo, cfg, imageStorage)

	return repo, services
}
