package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stocklens/domain/inventory"
	"stocklens/ports"
)

// SnapshotRepository implements SnapshotHistoryPort and ReconciliationInputPort
type SnapshotRepository struct {
	db *sqlx.DB
}

// NewSnapshotRepository creates a new snapshot history repository
func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

var _ ports.SnapshotHistoryPort = (*SnapshotRepository)(nil)
var _ ports.ReconciliationInputPort = (*SnapshotRepository)(nil)

// GetSnapshotHistory returns the stock snapshot series for a product over the
// trailing window, ascending by timestamp. The latest row is marked current.
func (r *SnapshotRepository) GetSnapshotHistory(ctx context.Context, q ports.HistoryQuery) ([]inventory.Snapshot, error) {
	query := `SELECT
		recorded_at, quantity,
		COALESCE(location_id, '') AS location_id,
		COALESCE(warehouse_code, '') AS warehouse_code,
		is_current
	FROM stock_snapshots
	WHERE product_code = $1
	  AND recorded_at >= NOW() - ($2 * INTERVAL '1 day')
	  AND ($3 = '' OR location_id = $3)
	  AND ($4 = '' OR warehouse_code = $4)
	ORDER BY recorded_at ASC`

	var snapshots []inventory.Snapshot
	err := r.db.SelectContext(ctx, &snapshots, query,
		q.Product, q.Days, q.Location.String(), q.Warehouse.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot history for %s: %w", q.Product, err)
	}

	return snapshots, nil
}

// GetReconciliationInputs returns the snapshot series plus per-period sales
// over the trailing reconciliation window.
func (r *SnapshotRepository) GetReconciliationInputs(ctx context.Context, q ports.ReconciliationQuery) (inventory.ReconciliationInputs, error) {
	var inputs inventory.ReconciliationInputs

	snapshotQuery := `SELECT
		recorded_at, quantity,
		COALESCE(location_id, '') AS location_id,
		COALESCE(warehouse_code, '') AS warehouse_code,
		is_current
	FROM stock_snapshots
	WHERE product_code = $1
	  AND location_id = $2
	  AND ($3 = '' OR warehouse_code = $3)
	  AND recorded_at >= NOW() - ($4 * INTERVAL '1 hour')
	ORDER BY recorded_at ASC`

	err := r.db.SelectContext(ctx, &inputs.Snapshots, snapshotQuery,
		q.Product, q.Location.String(), q.Warehouse.String(), q.Hours)
	if err != nil {
		return inputs, fmt.Errorf("failed to query reconciliation snapshots for %s: %w", q.Product, err)
	}

	salesQuery := `SELECT period_start, period_end, sales
	FROM sales_periods
	WHERE product_code = $1
	  AND location_id = $2
	  AND period_end >= NOW() - ($3 * INTERVAL '1 hour')
	ORDER BY period_start ASC`

	err = r.db.SelectContext(ctx, &inputs.SalesByPeriod, salesQuery,
		q.Product, q.Location.String(), q.Hours)
	if err != nil {
		return inputs, fmt.Errorf("failed to query sales periods for %s: %w", q.Product, err)
	}

	return inputs, nil
}
