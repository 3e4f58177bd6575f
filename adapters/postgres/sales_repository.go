package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"stocklens/domain/core"
	"stocklens/domain/inventory"
	"stocklens/ports"
)

// salesRepository implements PeriodicSalesPort
type salesRepository struct {
	db *sqlx.DB
}

// NewSalesRepository creates a new periodic sales repository
func NewSalesRepository(db *sqlx.DB) *salesRepository {
	return &salesRepository{db: db}
}

var _ ports.PeriodicSalesPort = (*salesRepository)(nil)

// GetPeriodicSales returns the weekly sales series for a product, ascending
// by period. Labels are ISO week strings; ordering comes from row position.
func (r *salesRepository) GetPeriodicSales(ctx context.Context, product core.ProductCode) ([]inventory.PeriodicAggregate, error) {
	query := `SELECT
		TO_CHAR(week_start, 'IYYY-"W"IW') AS period_label,
		COALESCE(units_sold, 0) AS units
	FROM weekly_sales
	WHERE product_code = $1
	ORDER BY week_start ASC`

	var aggregates []inventory.PeriodicAggregate
	err := r.db.SelectContext(ctx, &aggregates, query, product)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly sales for %s: %w", product, err)
	}

	return aggregates, nil
}
