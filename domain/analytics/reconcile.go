package analytics

import (
	"sort"

	"stocklens/domain/core"
	"stocklens/domain/inventory"
)

// Reconcile partitions time into the requested periods and compares the
// inventory delta of each against its recorded sales.
//
// Boundary lookup contract: stockStart and stockEnd use the latest snapshot
// at or before the boundary instant. When no snapshot precedes the period
// start, the first available snapshot stands in. When no snapshot exists at
// or before the period end (or the series is empty), the period is flagged
// Incomplete and carries no delta.
//
// Snapshots must already be ascending by timestamp; this is a pure transform
// over ordered data and does not re-sort. An unordered series is a caller
// defect and returns core.ErrUnorderedSeries.
func Reconcile(snapshots []inventory.Snapshot, salesByPeriod []inventory.SalesPeriod) ([]inventory.ReconciliationPeriod, inventory.ReconciliationTotals, error) {
	if err := inventory.EnsureAscending(snapshots); err != nil {
		return nil, inventory.ReconciliationTotals{}, err
	}

	periods := make([]inventory.ReconciliationPeriod, 0, len(salesByPeriod))
	var totals inventory.ReconciliationTotals

	for _, sp := range salesByPeriod {
		period := reconcilePeriod(snapshots, sp)
		periods = append(periods, period)

		totals.Sales += period.Sales
		if period.Incomplete {
			totals.Incomplete++
			continue
		}
		totals.Delta += period.InventoryDelta
		totals.Difference += period.Difference
	}

	return periods, totals, nil
}

func reconcilePeriod(snapshots []inventory.Snapshot, sp inventory.SalesPeriod) inventory.ReconciliationPeriod {
	period := inventory.ReconciliationPeriod{
		Start: sp.Start,
		End:   sp.End,
		Sales: sp.Sales,
	}

	end, ok := latestAtOrBefore(snapshots, sp.End)
	if !ok {
		period.Incomplete = true
		return period
	}

	start, ok := latestAtOrBefore(snapshots, sp.Start)
	if !ok {
		// No reading precedes the period start; the first available snapshot
		// stands in as the opening stock.
		start = snapshots[0]
	}

	period.StockStart = start.Quantity
	period.StockEnd = end.Quantity
	period.InventoryDelta = period.StockEnd - period.StockStart
	period.Difference = period.InventoryDelta + period.Sales
	return period
}

// latestAtOrBefore binary-searches the ascending series for the latest
// snapshot with timestamp <= t.
func latestAtOrBefore(snapshots []inventory.Snapshot, t core.Timestamp) (inventory.Snapshot, bool) {
	// First index with timestamp strictly after t.
	i := sort.Search(len(snapshots), func(i int) bool {
		return snapshots[i].Timestamp.After(t)
	})
	if i == 0 {
		return inventory.Snapshot{}, false
	}
	return snapshots[i-1], true
}
