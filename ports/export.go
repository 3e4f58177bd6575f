package ports

import (
	"stocklens/domain/analytics"
	"stocklens/domain/core"
	"stocklens/domain/inventory"
)

// ExportSheet bundles everything one product's export workbook shows.
type ExportSheet struct {
	Product        inventory.Product
	Variability    *analytics.Variability
	Trend          *analytics.Trend
	Periods        []inventory.ReconciliationPeriod
	Totals         inventory.ReconciliationTotals
	Snapshots      []inventory.Snapshot
	HiddenSnapshot int
	GeneratedAt    core.Timestamp
}

// ReportExporterPort renders an export sheet to a downloadable workbook.
type ReportExporterPort interface {
	WriteWorkbook(sheet ExportSheet) ([]byte, error)
}
