package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"billingdesk/internal/billingapi"
	"billingdesk/internal/config"
	"billingdesk/internal/email/noop"
	"billingdesk/internal/email/ses"
	"billingdesk/internal/handler"
	"billingdesk/internal/port"
	"billingdesk/internal/repository/postgres"
	"billingdesk/internal/router"
	"billingdesk/internal/service"
	s3storage "billingdesk/internal/storage/s3"
)

// @title Billingdesk API
// @version 1.0
// @description Partner billing aggregation service: invoice views, vendor/product aggregation, discount overrides, and exports.
// @BasePath /api/v1
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
	discountRepo := postgres.NewDiscountRepo(db)

	// Upstream billing API gateway
	gateway := billingapi.NewClient(&cfg.Billing)

	// Export archive storage is optional; exports still render without it.
	var storage port.ObjectStorage
	if cfg.Export.S3Bucket != "" {
		storage, err = s3storage.NewS3Client(&cfg.Export)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	var sender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender()
	}

	// Initialize services
	invoiceSvc := service.NewInvoiceService(gateway, discountRepo)
	discountSvc := service.NewDiscountService(discountRepo, gateway)
	exportSvc := service.NewExportService(invoiceSvc, storage, &cfg.Export)
	notificationSvc := service.NewNotificationService(invoiceSvc, sender, &cfg.Email)

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	discountH := handler.NewDiscountHandler(discountSvc)
	exportH := handler.NewExportHandler(exportSvc)
	notificationH := handler.NewNotificationHandler(notificationSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, invoiceH, discountH, exportH, notificationH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
