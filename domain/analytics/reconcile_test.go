package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocklens/domain/core"
	"stocklens/domain/inventory"
)

var reconBase = time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

func stockAt(offsetHours int, qty float64, current bool) inventory.Snapshot {
	return inventory.Snapshot{
		Timestamp: core.NewTimestamp(reconBase.Add(time.Duration(offsetHours) * time.Hour)),
		Quantity:  qty,
		IsCurrent: current,
	}
}

func window(startHours, endHours int, sales float64) inventory.SalesPeriod {
	return inventory.SalesPeriod{
		Start: core.NewTimestamp(reconBase.Add(time.Duration(startHours) * time.Hour)),
		End:   core.NewTimestamp(reconBase.Add(time.Duration(endHours) * time.Hour)),
		Sales: sales,
	}
}

func TestReconcile_FullyReconciledPeriod(t *testing.T) {
	snapshots := []inventory.Snapshot{
		stockAt(0, 100, false),
		stockAt(12, 100, false),
		stockAt(24, 40, true),
	}
	periods, totals, err := Reconcile(snapshots, []inventory.SalesPeriod{window(12, 24, 60)})

	require.NoError(t, err)
	require.Len(t, periods, 1)
	p := periods[0]
	assert.Equal(t, 100.0, p.StockStart)
	assert.Equal(t, 40.0, p.StockEnd)
	assert.Equal(t, -60.0, p.InventoryDelta)
	assert.Equal(t, 0.0, p.Difference)
	assert.False(t, p.Incomplete)
	assert.Equal(t, 0.0, totals.Difference)
}

func TestReconcile_ShrinkageAndReplenishmentSigns(t *testing.T) {
	snapshots := []inventory.Snapshot{
		stockAt(0, 100, false),
		stockAt(12, 20, false),
		stockAt(24, 90, true),
	}
	periods, _, err := Reconcile(snapshots, []inventory.SalesPeriod{
		window(0, 12, 50),  // stock fell 80, sales explain 50 -> -30 unexplained loss
		window(12, 24, 10), // stock rose 70 despite sales -> +80 net replenishment
	})

	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, -30.0, periods[0].Difference)
	assert.Equal(t, 80.0, periods[1].Difference)
}

func TestReconcile_BoundaryUsesLatestAtOrBefore(t *testing.T) {
	snapshots := []inventory.Snapshot{
		stockAt(0, 100, false),
		stockAt(10, 70, false), // latest <= start(12)
		stockAt(20, 55, false), // latest <= end(24)
		stockAt(30, 50, true),
	}
	periods, _, err := Reconcile(snapshots, []inventory.SalesPeriod{window(12, 24, 15)})

	require.NoError(t, err)
	p := periods[0]
	assert.Equal(t, 70.0, p.StockStart)
	assert.Equal(t, 55.0, p.StockEnd)
	assert.Equal(t, 0.0, p.Difference)
}

func TestReconcile_FirstSnapshotStandsInForMissingStart(t *testing.T) {
	snapshots := []inventory.Snapshot{
		stockAt(6, 100, false),
		stockAt(24, 80, true),
	}
	// Period starts before any snapshot exists.
	periods, _, err := Reconcile(snapshots, []inventory.SalesPeriod{window(0, 24, 20)})

	require.NoError(t, err)
	p := periods[0]
	assert.False(t, p.Incomplete)
	assert.Equal(t, 100.0, p.StockStart)
	assert.Equal(t, 80.0, p.StockEnd)
}

func TestReconcile_IncompleteNotZero(t *testing.T) {
	snapshots := []inventory.Snapshot{
		stockAt(48, 100, true),
	}
	// Period ends before the first snapshot: no boundary data at all.
	periods, totals, err := Reconcile(snapshots, []inventory.SalesPeriod{window(0, 24, 30)})

	require.NoError(t, err)
	p := periods[0]
	assert.True(t, p.Incomplete)
	assert.Equal(t, 0.0, p.InventoryDelta)
	assert.Equal(t, 30.0, p.Sales)
	assert.Equal(t, 1, totals.Incomplete)
	assert.Equal(t, 30.0, totals.Sales)
	assert.Equal(t, 0.0, totals.Delta)
}

func TestReconcile_EmptySnapshotsAllIncomplete(t *testing.T) {
	periods, totals, err := Reconcile(nil, []inventory.SalesPeriod{window(0, 24, 5), window(24, 48, 7)})

	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.True(t, periods[0].Incomplete)
	assert.True(t, periods[1].Incomplete)
	assert.Equal(t, 2, totals.Incomplete)
}

func TestReconcile_TotalsFold(t *testing.T) {
	snapshots := []inventory.Snapshot{
		stockAt(0, 100, false),
		stockAt(12, 60, false),
		stockAt(24, 30, true),
	}
	_, totals, err := Reconcile(snapshots, []inventory.SalesPeriod{
		window(0, 12, 40),
		window(12, 24, 20),
	})

	require.NoError(t, err)
	assert.Equal(t, 60.0, totals.Sales)
	assert.Equal(t, -70.0, totals.Delta)
	assert.Equal(t, -10.0, totals.Difference)
	assert.Equal(t, 0, totals.Incomplete)
}

func TestReconcile_UnorderedSeriesIsDefect(t *testing.T) {
	snapshots := []inventory.Snapshot{
		stockAt(24, 40, false),
		stockAt(0, 100, true),
	}
	_, _, err := Reconcile(snapshots, []inventory.SalesPeriod{window(0, 24, 60)})

	assert.ErrorIs(t, err, core.ErrUnorderedSeries)
}
