package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stocklens/domain/core"
	"stocklens/domain/inventory"
	"stocklens/ports"
)

type stubExporter struct{ sheets []ports.ExportSheet }

func (s *stubExporter) WriteWorkbook(sheet ports.ExportSheet) ([]byte, error) {
	s.sheets = append(s.sheets, sheet)
	return []byte("xlsx"), nil
}

func reportServiceFixture(t *testing.T) (*ReportService, *stubExporter, ports.HistoryQuery) {
	t.Helper()

	history := new(MockHistoryPort)
	sales := new(MockSalesPort)
	recon := new(MockReconPort)
	catalog := new(MockCatalogPort)

	q := ports.HistoryQuery{Product: "SKU-7", Location: "L1", Days: 30}
	catalog.On("GetProduct", mock.Anything, core.ProductCode("SKU-7")).
		Return(&inventory.Product{Code: "SKU-7", Description: "Filter coffee 500g"}, nil)
	history.On("GetSnapshotHistory", mock.Anything, q).Return([]inventory.Snapshot{
		serviceSnapshot(0, 100, false),
		serviceSnapshot(24, 40, true),
	}, nil)
	sales.On("GetPeriodicSales", mock.Anything, core.ProductCode("SKU-7")).
		Return([]inventory.PeriodicAggregate{
			{PeriodLabel: "W1", Units: 100},
			{PeriodLabel: "W2", Units: 100},
		}, nil)
	recon.On("GetReconciliationInputs", mock.Anything, mock.Anything).
		Return(inventory.ReconciliationInputs{
			Snapshots: []inventory.Snapshot{
				serviceSnapshot(0, 100, false),
				serviceSnapshot(24, 40, true),
			},
			SalesByPeriod: []inventory.SalesPeriod{{
				Start: core.NewTimestamp(serviceBase),
				End:   core.NewTimestamp(serviceBase.Add(24 * time.Hour)),
				Sales: 60,
			}},
		}, nil)

	exporter := &stubExporter{}
	svc := NewReportService(newServiceUnderTest(history, sales, recon, catalog), exporter)
	return svc, exporter, q
}

func TestReportService_Markdown(t *testing.T) {
	svc, _, q := reportServiceFixture(t)

	md, err := svc.Markdown(context.Background(), q, 48)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(md, "# Inventory report: SKU-7"))
	assert.Contains(t, md, "Class: **X**")
	assert.Contains(t, md, "| reconciled |")
	assert.Contains(t, md, "Totals: sales 60, delta -60, difference 0")
}

func TestReportService_HTML(t *testing.T) {
	svc, _, q := reportServiceFixture(t)

	html, err := svc.HTML(context.Background(), q, 48)
	require.NoError(t, err)

	assert.Contains(t, string(html), "<h1")
	assert.Contains(t, string(html), "<table")
}

func TestReportService_WorkbookUsesExporter(t *testing.T) {
	svc, exporter, q := reportServiceFixture(t)

	data, err := svc.Workbook(context.Background(), q, 48)
	require.NoError(t, err)

	assert.Equal(t, []byte("xlsx"), data)
	require.Len(t, exporter.sheets, 1)
	assert.Equal(t, core.ProductCode("SKU-7"), exporter.sheets[0].Product.Code)
	assert.Len(t, exporter.sheets[0].Periods, 1)
}
