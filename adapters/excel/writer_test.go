package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"stocklens/domain/analytics"
	"stocklens/domain/core"
	"stocklens/domain/inventory"
	"stocklens/ports"
)

func exportFixture() ports.ExportSheet {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	ts := func(h int) core.Timestamp { return core.NewTimestamp(base.Add(time.Duration(h) * time.Hour)) }

	return ports.ExportSheet{
		Product: inventory.Product{Code: "SKU-100", Description: "Espresso beans 1kg"},
		Variability: &analytics.Variability{
			Mean: 100, StdDev: 40.82, CV: 0.408, Class: analytics.ClassStable, Periods: 4,
		},
		Trend: &analytics.Trend{Slope: -2.5, Intercept: 110},
		Periods: []inventory.ReconciliationPeriod{
			{Start: ts(0), End: ts(24), StockStart: 100, StockEnd: 40, Sales: 60, InventoryDelta: -60, Difference: 0},
			{Start: ts(24), End: ts(48), Sales: 10, Incomplete: true},
		},
		Totals: inventory.ReconciliationTotals{Sales: 70, Delta: -60, Difference: 0, Incomplete: 1},
		Snapshots: []inventory.Snapshot{
			{Timestamp: ts(0), Quantity: 100},
			{Timestamp: ts(24), Quantity: 40, IsCurrent: true},
		},
		HiddenSnapshot: 3,
		GeneratedAt:    ts(48),
	}
}

func TestReportWriter_WriteWorkbook(t *testing.T) {
	data, err := NewReportWriter().WriteWorkbook(exportFixture())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Overview", "Reconciliation", "Snapshots"}, f.GetSheetList())
}

func TestReportWriter_OneRowPerPeriodPlusTotals(t *testing.T) {
	fixture := exportFixture()
	data, err := NewReportWriter().WriteWorkbook(fixture)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reconciliation")
	require.NoError(t, err)
	// Header + one row per period + totals.
	assert.Len(t, rows, len(fixture.Periods)+2)

	// The fully reconciled period reads as such; the incomplete one shows
	// dashes, never zeros.
	assert.Equal(t, "reconciled", rows[1][7])
	assert.Equal(t, "incomplete", rows[2][7])
	assert.Equal(t, "-", rows[2][2])
}

func TestReportWriter_InsufficientDataOverview(t *testing.T) {
	fixture := exportFixture()
	fixture.Variability = nil
	fixture.Trend = nil

	data, err := NewReportWriter().WriteWorkbook(fixture)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Overview")
	require.NoError(t, err)

	found := false
	for _, row := range rows {
		if len(row) >= 2 && row[0] == "Demand class" {
			assert.Equal(t, "insufficient data", row[1])
			found = true
		}
	}
	assert.True(t, found, "overview must still state the demand class row")
}
