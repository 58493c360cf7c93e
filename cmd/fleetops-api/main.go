package main

import (
	"fmt"
	"os"

	"github.com/nurpe/fleetops-api/internal/auth"
	"github.com/nurpe/fleetops-api/internal/config"
	"github.com/nurpe/fleetops-api/internal/db"
	"github.com/nurpe/fleetops-api/internal/excel"
	httphandler "github.com/nurpe/fleetops-api/internal/http"
	"github.com/nurpe/fleetops-api/internal/http/middleware"
	"github.com/nurpe/fleetops-api/internal/logger"
	"github.com/nurpe/fleetops-api/internal/pdf"
	"github.com/nurpe/fleetops-api/internal/repository"
	"github.com/nurpe/fleetops-api/internal/service"
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

	companyRepo := repository.NewCompanyRepository(database)
	driverRepo := repository.NewDriverRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)
	tripRepo := repository.NewTripRepository(database)

	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}
	excelGenerator := excel.NewGenerator()

	companyService := service.NewCompanyService(companyRepo)
	driverService := service.NewDriverService(driverRepo)
	vehicleService := service.NewVehicleService(vehicleRepo)
	tripService := service.NewTripService(tripRepo, companyRepo, cfg)
	dashboardService := service.NewDashboardService(tripRepo, nil)
	exportService := service.NewExportService(dashboardService, tripRepo, excelGenerator, pdfGenerator)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(
		companyService,
		driverService,
		vehicleService,
		tripService,
		dashboardService,
		exportService,
		log,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting fleetops api")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
