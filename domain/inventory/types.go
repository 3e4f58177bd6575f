package inventory

import (
	"stocklens/domain/core"
)

// Snapshot is a point-in-time inventory reading for a product at a location.
// Negative quantities are valid readings (a data-quality signal, not an error).
type Snapshot struct {
	Timestamp     core.Timestamp     `json:"timestamp" db:"recorded_at"`
	Quantity      float64            `json:"quantity" db:"quantity"`
	LocationID    core.LocationID    `json:"location_id,omitempty" db:"location_id"`
	WarehouseCode core.WarehouseCode `json:"warehouse_code,omitempty" db:"warehouse_code"`
	// IsCurrent marks the most recent authoritative reading. At most one
	// snapshot in a series carries it, and it is the last in ascending order.
	IsCurrent bool `json:"is_current" db:"is_current"`
}

// PeriodicAggregate is one point of a fixed-period sales series. Ordering
// comes from sequence position; the label is opaque display text.
type PeriodicAggregate struct {
	PeriodLabel string  `json:"period_label" db:"period_label"`
	Units       float64 `json:"units" db:"units"`
}

// SalesPeriod is a requested reconciliation window with its recorded sales.
type SalesPeriod struct {
	Start core.Timestamp `json:"start" db:"period_start"`
	End   core.Timestamp `json:"end" db:"period_end"`
	Sales float64        `json:"sales" db:"sales"`
}

// ReconciliationInputs bundles the two series a reconciliation run consumes.
type ReconciliationInputs struct {
	Snapshots     []Snapshot    `json:"snapshots"`
	SalesByPeriod []SalesPeriod `json:"sales_by_period"`
}

// ReconciliationPeriod is a derived entity, computed fresh on every request
// and never mutated after creation.
//
// Sign convention: Difference = InventoryDelta + Sales. If stock fell by
// exactly the amount sold the period is fully reconciled (Difference == 0).
// Difference > 0 means stock moved up relative to what sales explain (net
// replenishment); Difference < 0 means stock dropped by more than recorded
// sales explain (shrinkage/loss). The two directions are distinct outcomes
// and must not be collapsed into one "error" bucket by consumers.
type ReconciliationPeriod struct {
	Start          core.Timestamp `json:"start"`
	End            core.Timestamp `json:"end"`
	StockStart     float64        `json:"stock_start"`
	StockEnd       float64        `json:"stock_end"`
	Sales          float64        `json:"sales"`
	InventoryDelta float64        `json:"inventory_delta"`
	Difference     float64        `json:"difference"`
	// Incomplete is set when a boundary snapshot is missing. Zero stock and
	// "no data" are never conflated: an incomplete period carries no delta.
	Incomplete bool `json:"incomplete"`
}

// ReconciliationTotals is the fold across all complete periods.
type ReconciliationTotals struct {
	Sales      float64 `json:"sales"`
	Delta      float64 `json:"delta"`
	Difference float64 `json:"difference"`
	// Incomplete counts periods excluded from the Delta/Difference sums.
	Incomplete int `json:"incomplete"`
}

// Product is the catalog read model behind the dashboard's product pickers.
type Product struct {
	Code        core.ProductCode `json:"code" db:"code"`
	Description string           `json:"description" db:"description"`
	Category    string           `json:"category" db:"category"`
	Unit        string           `json:"unit" db:"unit"`
}

// EnsureAscending verifies the ordering precondition every analytics component
// assumes. Returns core.ErrUnorderedSeries on the first violation.
func EnsureAscending(snapshots []Snapshot) error {
	for i := 1; i < len(snapshots); i++ {
		if snapshots[i].Timestamp.Before(snapshots[i-1].Timestamp) {
			return core.ErrUnorderedSeries
		}
	}
	return nil
}

// Quantities projects the quantity column of a snapshot series.
func Quantities(snapshots []Snapshot) []float64 {
	values := make([]float64, len(snapshots))
	for i, s := range snapshots {
		values[i] = s.Quantity
	}
	return values
}

// Units projects the units column of a periodic sales series.
func Units(aggregates []PeriodicAggregate) []float64 {
	values := make([]float64, len(aggregates))
	for i, a := range aggregates {
		values[i] = a.Units
	}
	return values
}
