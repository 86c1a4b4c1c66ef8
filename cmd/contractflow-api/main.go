package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/contractflow/backend/internal/alerts"
	"github.com/contractflow/backend/internal/auth"
	"github.com/contractflow/backend/internal/config"
	"github.com/contractflow/backend/internal/db"
	"github.com/contractflow/backend/internal/excel"
	httphandler "github.com/contractflow/backend/internal/http"
	"github.com/contractflow/backend/internal/http/middleware"
	"github.com/contractflow/backend/internal/logger"
	"github.com/contractflow/backend/internal/pdf"
	"github.com/contractflow/backend/internal/repository"
	"github.com/contractflow/backend/internal/service"
	"github.com/contractflow/backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	fileStore, err := storage.NewDiskStore(cfg.Storage.Root)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init file storage")
	}

	supplierRepo := repository.NewSupplierRepository(database)
	orgUnitRepo := repository.NewOrgUnitRepository(database)
	contractRepo := repository.NewContractRepository(database)
	obligationRepo := repository.NewObligationRepository(database)
	deliverableRepo := repository.NewDeliverableRepository(database)
	inspectionRepo := repository.NewInspectionRepository(database)
	evidenceRepo := repository.NewEvidenceRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)
	nonComplianceRepo := repository.NewNonComplianceRepository(database)
	reportRepo := repository.NewReportRepository(database)
	alertRepo := repository.NewAlertRepository(database)

	pdfGenerator := pdf.NewGenerator()
	excelGenerator := excel.NewGenerator()

	supplierService := service.NewSupplierService(supplierRepo)
	orgUnitService := service.NewOrgUnitService(orgUnitRepo)
	contractService := service.NewContractService(
		contractRepo, supplierRepo, orgUnitRepo,
		obligationRepo, deliverableRepo, nonComplianceRepo,
		pdfGenerator,
	)
	obligationService := service.NewObligationService(obligationRepo, contractRepo)
	deliverableService := service.NewDeliverableService(deliverableRepo, obligationRepo)
	inspectionService := service.NewInspectionService(inspectionRepo, deliverableRepo)
	evidenceService := service.NewEvidenceService(evidenceRepo, deliverableRepo, inspectionRepo, fileStore)
	attachmentService := service.NewAttachmentService(attachmentRepo, contractRepo, fileStore)
	nonComplianceService := service.NewNonComplianceService(nonComplianceRepo, obligationRepo)
	reportService := service.NewReportService(reportRepo, excelGenerator)
	alertService := service.NewAlertService(alertRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scanner := alerts.NewScanner(alertRepo, log, cfg.Alerts.Interval, cfg.Alerts.SoonWindow)
	go scanner.Run(ctx)

	handler := httphandler.NewHandler(
		contractService, supplierService, orgUnitService,
		obligationService, deliverableService, inspectionService,
		evidenceService, attachmentService, nonComplianceService,
		reportService, alertService, log,
	)

	var authHandler gin.HandlerFunc
	if cfg.Auth.AccessSecret != "" {
		tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
		authHandler = middleware.Auth(tokenParser)
	} else {
		log.Warn().Msg("JWT_ACCESS_SECRET not set, API is unauthenticated")
	}

	router := httphandler.NewRouter(handler, authHandler, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting contractflow api")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
