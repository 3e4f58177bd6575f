package main

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"stocklens/adapters/excel"
	"stocklens/adapters/postgres"
	"stocklens/app"
	"stocklens/internal"
	"stocklens/internal/config"
	"stocklens/ui"
)

func main() {
	logger := internal.DefaultLogger

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration failed: %v", err)
		return
	}

	db, err := setupDatabase(cfg.Database)
	if err != nil {
		logger.Error("database connection failed: %v", err)
		return
	}
	defer db.Close()

	snapshots := postgres.NewSnapshotRepository(db)
	sales := postgres.NewSalesRepository(db)
	catalog := postgres.NewProductRepository(db)

	analytics := app.NewAnalyticsService(snapshots, sales, snapshots, catalog,
		cfg.Engine.AnalyticsConfig(), logger)
	reports := app.NewReportService(analytics, excel.NewReportWriter())

	api := ui.NewApp(analytics, reports, catalog, cfg.Engine, logger)

	addr := ":" + cfg.Server.Port
	logger.Info("stocklens listening on %s", addr)
	if err := http.ListenAndServe(addr, api.Router()); err != nil {
		logger.Error("server failed: %v", err)
	}
}

func setupDatabase(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.URL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	return db, nil
}
