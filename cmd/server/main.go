package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"ustva/internal/config"
	"ustva/internal/handler"
	"ustva/internal/port"
	"ustva/internal/repository/postgres"
	"ustva/internal/router"
	"ustva/internal/service"
	s3storage "ustva/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	clientRepo := postgres.NewClientRepo(db)
	reportRepo := postgres.NewVatReportRepo(db)

	// Initialize export archive (optional)
	var archive port.ObjectStorage
	if cfg.Export.ArchiveEnabled {
		archive, err = s3storage.NewS3Client(&cfg.Export)
		if err != nil {
			return fmt.Errorf("failed to initialize export archive: %w", err)
		}
	}

	// Initialize services
	clientSvc := service.NewClientService(clientRepo)
	reportSvc := service.NewVatReportService(reportRepo, clientRepo, archive, &cfg.Export)

	// Initialize handlers
	clientH := handler.NewClientHandler(clientSvc)
	reportH := handler.NewVatReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db, cfg.Export.ArchiveEnabled)

	// Setup router
	r := router.Setup(clientH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
