package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"jeopardytool/internal/config"
	"jeopardytool/internal/database"
	"jeopardytool/internal/logger"

	"go.uber.org/zap"
)

// migrate brings a SQLite game library up to the current schema without
// running any other command against it.
func main() {
	configFile := flag.String("config", "", "config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	if cfg.Library.Driver != config.DriverSQLite {
		log.Info("Library driver needs no migrations", zap.String("driver", cfg.Library.Driver))
		return
	}

	db, err := database.NewSQLXSQLiteDB(cfg.Library.Path)
	if err != nil {
		log.Fatal("Failed to open library database", zap.String("path", cfg.Library.Path), zap.Error(err))
	}
	defer db.Close()

	applied, err := database.RunMigrations(context.Background(), db, log)
	if err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Migrations complete", zap.String("path", cfg.Library.Path), zap.Strings("applied", applied))
}
