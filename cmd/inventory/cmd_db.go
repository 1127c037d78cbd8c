package main

import (
	"io"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/product/repository"
	"github.com/tair/inventory-tracker/pkg/config"
	"github.com/tair/inventory-tracker/pkg/database"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// boot loads config, initializes logging to logOut and opens the migrated database.
func boot(logOut io.Writer) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}

	logger.InitWithWriter(cfg.ServiceName, cfg.IsDevelopment(), logOut)
	logger.SetLevel(cfg.LogLevel)

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	if err := repository.AutoMigrate(db); err != nil {
		closeDB(db)
		return nil, nil, err
	}

	logger.Logger.Info().
		Str("driver", cfg.Database.Driver).
		Msg("Database initialized successfully")

	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

// inventory migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := boot(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		closeDB(db)
		cmd.Println("Schema is up to date")
		return nil
	},
}
