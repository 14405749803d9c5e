package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/facilityinv/catalogue-api/config"
	"github.com/facilityinv/catalogue-api/internal/application/services"
	"github.com/facilityinv/catalogue-api/internal/http/controllers"
	"github.com/facilityinv/catalogue-api/internal/http/routes"
	"github.com/facilityinv/catalogue-api/internal/http/validation"
	infraMongo "github.com/facilityinv/catalogue-api/internal/infrastructure/mongo"
	"github.com/facilityinv/catalogue-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "serve", Title: "Serve:"})
	rootCmd.AddCommand(serveAPICmd)
}

var serveAPICmd = &cobra.Command{
	Use:     "serve",
	Short:   "Start the catalogue API HTTP server",
	GroupID: "serve",
	RunE: func(cmd *cobra.Command, args []string) error {
		SetupAll()

		if _, err := validation.GetValidator(); err != nil {
			logger.Log.Fatal("validation.GetValidator()", zap.Error(err))
		}

		cfg := config.GetConfig()

		connectCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Mongo.ConnectTimeout)*time.Second)
		defer cancel()

		db, err := infraMongo.Connect(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database, time.Duration(cfg.Mongo.ConnectTimeout)*time.Second)
		if err != nil {
			logger.Log.Fatal("mongo.Connect()", zap.Error(err))
		}

		if err := db.EnsureIndexes(connectCtx); err != nil {
			logger.Log.Fatal("db.EnsureIndexes()", zap.Error(err))
		}

		engine := buildRouter(db, &cfg.Auth)

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.HttpServer.Port),
			Handler: engine,
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			logger.Log.Info(fmt.Sprintf("Starting server on port %d", cfg.HttpServer.Port))
			logger.Log.Info("waiting for requests...")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Log.Fatal("srv.ListenAndServe()", zap.Error(err))
			}
		}()

		<-ctx.Done()
		stop()
		logger.Log.Info("shutting down gracefully, press Ctrl+C again to force")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("srv.Shutdown()", zap.Error(err))
		}
		if err := db.Disconnect(context.Background()); err != nil {
			logger.Log.Error("db.Disconnect()", zap.Error(err))
		}

		return nil
	},
}

// buildRouter assembles the repository → service → controller dependency
// graph and mounts it onto a fresh gin engine. Kept as one function since
// every component here is a thin adapter constructed exactly once at
// startup — there is no runtime DI container in this service.
func buildRouter(db *infraMongo.Database, auth *config.Auth) *gin.Engine {
	categoryRepo := infraMongo.NewCatalogueCategoryRepository(db)
	systemRepo := infraMongo.NewSystemRepository(db)
	catalogueItemRepo := infraMongo.NewCatalogueItemRepository(db)
	itemRepo := infraMongo.NewItemRepository(db)
	unitRepo := infraMongo.NewUnitRepository(db)
	usageStatusRepo := infraMongo.NewUsageStatusRepository(db)
	manufacturerRepo := infraMongo.NewManufacturerRepository(db)

	propagation := services.NewPropagationCoordinator(categoryRepo, catalogueItemRepo, itemRepo, unitRepo, db)
	guard := services.NewReferentialGuard(categoryRepo, itemRepo, catalogueItemRepo)

	categoryService := services.NewCatalogueCategoryService(categoryRepo, unitRepo, propagation)
	systemService := services.NewSystemService(systemRepo)
	catalogueItemService := services.NewCatalogueItemService(catalogueItemRepo, categoryRepo, manufacturerRepo, itemRepo)
	itemService := services.NewItemService(itemRepo, catalogueItemRepo, systemRepo, usageStatusRepo, categoryRepo)
	unitService := services.NewUnitService(unitRepo, guard)
	usageStatusService := services.NewUsageStatusService(usageStatusRepo, guard)
	manufacturerService := services.NewManufacturerService(manufacturerRepo, guard)

	ctrl := routes.Controllers{
		CatalogueCategories: controllers.NewCatalogueCategoryController(categoryService),
		Systems:             controllers.NewSystemController(systemService),
		CatalogueItems:      controllers.NewCatalogueItemController(catalogueItemService),
		Items:               controllers.NewItemController(itemService),
		Units:               controllers.NewUnitController(unitService),
		UsageStatuses:       controllers.NewUsageStatusController(usageStatusService),
		Manufacturers:       controllers.NewManufacturerController(manufacturerService),
	}

	return routes.New(ctrl, auth)
}
