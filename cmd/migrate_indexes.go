package cmd

import (
	"context"
	"time"

	"github.com/facilityinv/catalogue-api/config"
	infraMongo "github.com/facilityinv/catalogue-api/internal/infrastructure/mongo"
	"github.com/facilityinv/catalogue-api/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(migrateIndexesCmd)
}

var migrateIndexesCmd = &cobra.Command{
	Use:     "migrate-indexes",
	Short:   "Create or update the collection indexes the repositories rely on",
	GroupID: "serve",
	RunE: func(cmd *cobra.Command, args []string) error {
		SetupAll()
		cfg := config.GetConfig()

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Mongo.ConnectTimeout)*time.Second)
		defer cancel()

		db, err := infraMongo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, time.Duration(cfg.Mongo.ConnectTimeout)*time.Second)
		if err != nil {
			logger.Log.Fatal("mongo.Connect()", zap.Error(err))
		}
		defer db.Disconnect(context.Background())

		if err := db.EnsureIndexes(ctx); err != nil {
			logger.Log.Fatal("db.EnsureIndexes()", zap.Error(err))
		}

		logger.Log.Info("indexes are up to date")
		return nil
	},
}
