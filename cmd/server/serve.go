package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/humidorlog/humidor/internal/config"
	"github.com/humidorlog/humidor/internal/database"
	"github.com/humidorlog/humidor/internal/handlers"
	"github.com/humidorlog/humidor/internal/middleware"
	"github.com/humidorlog/humidor/internal/repository"
	"github.com/humidorlog/humidor/internal/services"
	"github.com/humidorlog/humidor/internal/storage"

	_ "github.com/humidorlog/humidor/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the humidor server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServer(); err != nil {
			log.Fatal(err)
		}
	},
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	var images storage.ImageStore
	localImages := false
	if cfg.S3.Configured() {
		images, err = storage.NewS3Store(cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to set up S3 image store: %w", err)
		}
		log.WithField("bucket", cfg.S3.Bucket).Info("Using S3 image store")
	} else {
		images, err = storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.BaseURL)
		if err != nil {
			return fmt.Errorf("failed to set up local image store: %w", err)
		}
		localImages = true
		log.WithField("dir", cfg.Upload.Dir).Info("Using local image store")
	}

	cigarRepo := repository.NewCigarRepository(db)
	tastingRepo := repository.NewTastingRepository(db)

	cigarService := services.NewCigarService(cigarRepo, tastingRepo, images, db)
	tastingService := services.NewTastingService(tastingRepo, cigarRepo, images, db)
	dashboardService := services.NewDashboardService(cigarRepo, tastingRepo)
	exportService := services.NewExportService(cigarRepo, tastingRepo, cfg.ExportSigningKey)

	authMiddleware := middleware.NewAuthMiddleware(cfg.Auth.Secret)

	cigarHandler := handlers.NewCigarHandler(cigarService)
	tastingHandler := handlers.NewTastingHandler(tastingService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	exportHandler := handlers.NewExportHandler(exportService)

	router := gin.Default()

	if localImages {
		router.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	api.Use(authMiddleware.RequireToken())
	{
		api.POST("/cigars", cigarHandler.CreateCigar)
		api.GET("/cigars", cigarHandler.ListCigars)
		api.GET("/cigars/:id", cigarHandler.GetCigar)
		api.PUT("/cigars/:id", cigarHandler.UpdateCigar)
		api.DELETE("/cigars/:id", cigarHandler.DeleteCigar)

		api.POST("/tastings", tastingHandler.StartTasting)
		api.GET("/tastings", tastingHandler.ListTastings)
		api.GET("/tastings/:id", tastingHandler.GetTasting)
		api.PUT("/tastings/:id/finalize", tastingHandler.FinalizeTasting)
		api.DELETE("/tastings/:id", tastingHandler.DeleteTasting)

		api.GET("/dashboard", dashboardHandler.GetStats)
		api.GET("/export", exportHandler.ExportCollection)
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Infof("Starting humidor server on %s", addr)
	if cfg.Auth.Secret == "" {
		log.Warn("AUTH_SECRET not set, API is open")
	}
	return router.Run(addr)
}
