package app

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/mossline/gardenlog/internal/config"
	"github.com/mossline/gardenlog/internal/database"
	"github.com/mossline/gardenlog/internal/handlers"
	"github.com/mossline/gardenlog/internal/middleware"
	"github.com/mossline/gardenlog/internal/repository"
	"github.com/mossline/gardenlog/internal/services"
	"github.com/mossline/gardenlog/internal/storage"
)

// App wires the persistence gateway, the three collections, and the
// services around them. The same wiring backs the HTTP server, the CLI
// subcommands, and the end-to-end tests.
type App struct {
	Config  *config.Config
	DB      *gorm.DB
	Gateway *storage.Gateway

	CatalogueRepo *repository.CatalogueRepository
	PlantingRepo  *repository.PlantingRepository
	HarvestRepo   *repository.HarvestRepository

	CatalogueService *services.CatalogueService
	PlantingService  *services.PlantingService
	HarvestService   *services.HarvestService
	PhaseService     *services.PhaseService
	ReportService    *services.ReportService
	BackupService    *services.BackupService
	TokenService     *services.TokenService
}

func New(cfg *config.Config) (*App, error) {
	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	gateway := storage.NewGateway(db)

	catalogueRepo := repository.NewCatalogueRepository(gateway)
	plantingRepo := repository.NewPlantingRepository(gateway)
	harvestRepo := repository.NewHarvestRepository(gateway)

	a := &App{
		Config:           cfg,
		DB:               db,
		Gateway:          gateway,
		CatalogueRepo:    catalogueRepo,
		PlantingRepo:     plantingRepo,
		HarvestRepo:      harvestRepo,
		CatalogueService: services.NewCatalogueService(catalogueRepo),
		PlantingService:  services.NewPlantingService(plantingRepo),
		HarvestService:   services.NewHarvestService(harvestRepo, plantingRepo, catalogueRepo),
		PhaseService:     services.NewPhaseService(plantingRepo, catalogueRepo),
		ReportService:    services.NewReportService(harvestRepo, plantingRepo, catalogueRepo),
		BackupService:    services.NewBackupService(catalogueRepo, plantingRepo, harvestRepo),
		TokenService:     services.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenTTL),
	}

	if cfg.SeedDefaults {
		if added := a.CatalogueService.SeedDefaults(); added > 0 {
			log.Printf("Seeded default catalogue with %d plant types", added)
		}
	}

	return a, nil
}

// Router builds the HTTP surface around the core.
func (a *App) Router() *gin.Engine {
	authMiddleware := middleware.NewAuthMiddleware(a.TokenService, a.Config.TestMode)

	catalogueHandler := handlers.NewCatalogueHandler(a.CatalogueService)
	plantingHandler := handlers.NewPlantingHandler(a.PlantingService, a.PhaseService)
	harvestHandler := handlers.NewHarvestHandler(a.HarvestService)
	reportHandler := handlers.NewReportHandler(a.ReportService)
	backupHandler := handlers.NewBackupHandler(a.BackupService)
	tokenHandler := handlers.NewTokenHandler(a.TokenService)

	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/docs", handlers.SwaggerUIWithBearerFix())

	api := router.Group("/api/v1")
	{
		api.GET("/summary", reportHandler.GetSummary)

		authenticated := api.Group("")
		authenticated.Use(authMiddleware.RequireAuth())
		{
			authenticated.GET("/plant-types", catalogueHandler.ListPlantTypes)
			authenticated.GET("/plant-types/:id", catalogueHandler.GetPlantType)
			authenticated.POST("/plant-types", catalogueHandler.CreatePlantType)
			authenticated.PUT("/plant-types/:id", catalogueHandler.UpdatePlantType)
			authenticated.DELETE("/plant-types/:id", catalogueHandler.DeletePlantType)

			authenticated.GET("/plantings", plantingHandler.ListPlantings)
			authenticated.GET("/plantings/:id", plantingHandler.GetPlanting)
			authenticated.POST("/plantings", plantingHandler.CreatePlanting)
			authenticated.POST("/plantings/:id/archive", plantingHandler.ToggleArchived)
			authenticated.DELETE("/plantings/:id", plantingHandler.DeletePlanting)
			authenticated.GET("/plantings/:id/phase", plantingHandler.GetPhase)

			authenticated.GET("/harvests", harvestHandler.ListHarvests)
			authenticated.GET("/harvests/:id", harvestHandler.GetHarvest)
			authenticated.POST("/harvests", harvestHandler.LogHarvest)
			authenticated.DELETE("/harvests/:id", harvestHandler.DeleteHarvest)

			authenticated.GET("/reports/monthly", reportHandler.GetMonthlyTotals)
			authenticated.GET("/reports/by-plant-type", reportHandler.GetTotalsByPlantType)

			authenticated.GET("/backup/export", backupHandler.ExportBackup)
			authenticated.POST("/backup/import", backupHandler.ImportBackup)

			authenticated.POST("/tokens", tokenHandler.CreateToken)
		}
	}

	return router
}
