package ports

import (
	"context"

	"stocklens/domain/core"
	"stocklens/domain/inventory"
)

// HistoryQuery scopes a snapshot history request. Location and warehouse are
// optional narrowing tags; empty means all.
type HistoryQuery struct {
	Product   core.ProductCode
	Location  core.LocationID
	Warehouse core.WarehouseCode
	Days      int
}

// ReconciliationQuery scopes a reconciliation input request.
type ReconciliationQuery struct {
	Product   core.ProductCode
	Location  core.LocationID
	Warehouse core.WarehouseCode
	Hours     int
}

// SnapshotHistoryPort provides read-only access to stock snapshot series.
// Results are ascending by timestamp with the most recent authoritative
// reading marked IsCurrent.
type SnapshotHistoryPort interface {
	GetSnapshotHistory(ctx context.Context, q HistoryQuery) ([]inventory.Snapshot, error)
}

// PeriodicSalesPort provides the fixed-period (weekly) sales series for a
// product, ascending by period.
type PeriodicSalesPort interface {
	GetPeriodicSales(ctx context.Context, product core.ProductCode) ([]inventory.PeriodicAggregate, error)
}

// ReconciliationInputPort provides the snapshot and per-period sales inputs
// a reconciliation run consumes.
type ReconciliationInputPort interface {
	GetReconciliationInputs(ctx context.Context, q ReconciliationQuery) (inventory.ReconciliationInputs, error)
}

// ProductCatalogPort provides the catalog read model behind product pickers.
type ProductCatalogPort interface {
	ListProducts(ctx context.Context, limit, offset int) ([]inventory.Product, error)
	GetProduct(ctx context.Context, code core.ProductCode) (*inventory.Product, error)
	ListLocations(ctx context.Context, code core.ProductCode) ([]core.LocationID, error)
}
