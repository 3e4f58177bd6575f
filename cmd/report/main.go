// Command report generates a product inventory report from the command line,
// without the dashboard: the same engine output as Markdown on stdout or as
// an xlsx workbook on disk.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"stocklens/adapters/excel"
	"stocklens/adapters/postgres"
	"stocklens/app"
	"stocklens/domain/core"
	"stocklens/internal"
	"stocklens/internal/config"
	"stocklens/ports"
)

func main() {
	var (
		productCode = flag.String("product", "", "product code (required)")
		location    = flag.String("location", "", "location scope")
		warehouse   = flag.String("warehouse", "", "warehouse scope")
		days        = flag.Int("days", 0, "history window in days (default from config)")
		hours       = flag.Int("hours", 0, "reconciliation window in hours (default from config)")
		xlsxPath    = flag.String("xlsx", "", "write an xlsx workbook to this path instead of Markdown")
		timeout     = flag.Duration("timeout", 30*time.Second, "query timeout")
	)
	flag.Parse()

	logger := internal.DefaultLogger
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded: %v", err)
	}

	code, err := core.ParseProductCode(*productCode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage: report -product CODE [-location L] [-xlsx out.xlsx]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration failed: %v", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		logger.Error("database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	snapshots := postgres.NewSnapshotRepository(db)
	sales := postgres.NewSalesRepository(db)
	catalog := postgres.NewProductRepository(db)

	analytics := app.NewAnalyticsService(snapshots, sales, snapshots, catalog,
		cfg.Engine.AnalyticsConfig(), logger)
	reports := app.NewReportService(analytics, excel.NewReportWriter())

	historyDays := cfg.Engine.DefaultHistoryDays
	if *days > 0 {
		historyDays = *days
	}
	reconHours := cfg.Engine.DefaultReconHours
	if *hours > 0 {
		reconHours = *hours
	}

	q := ports.HistoryQuery{
		Product:   code,
		Location:  core.LocationID(*location),
		Warehouse: core.WarehouseCode(*warehouse),
		Days:      historyDays,
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *xlsxPath != "" {
		data, err := reports.Workbook(ctx, q, reconHours)
		if err != nil {
			logger.Error("workbook generation failed: %v", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxPath, data, 0o644); err != nil {
			logger.Error("failed to write %s: %v", *xlsxPath, err)
			os.Exit(1)
		}
		logger.Info("wrote %s", *xlsxPath)
		return
	}

	md, err := reports.Markdown(ctx, q, reconHours)
	if err != nil {
		logger.Error("report generation failed: %v", err)
		os.Exit(1)
	}
	fmt.Print(md)
}
