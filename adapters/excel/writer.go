package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"stocklens/ports"
)

const (
	sheetOverview       = "Overview"
	sheetReconciliation = "Reconciliation"
	sheetSnapshots      = "Snapshots"
)

// ReportWriter renders a product's analytics into a downloadable xlsx
// workbook: an overview sheet with the variability classification, a
// reconciliation sheet with one row per period, and the raw snapshot series.
type ReportWriter struct{}

// NewReportWriter creates a new workbook writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

var _ ports.ReportExporterPort = (*ReportWriter)(nil)

// WriteWorkbook renders the export sheet and returns the xlsx bytes
func (w *ReportWriter) WriteWorkbook(sheet ports.ExportSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetOverview)
	if err := w.writeOverview(f, sheet); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetReconciliation); err != nil {
		return nil, fmt.Errorf("failed to create reconciliation sheet: %w", err)
	}
	if err := w.writeReconciliation(f, sheet); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetSnapshots); err != nil {
		return nil, fmt.Errorf("failed to create snapshots sheet: %w", err)
	}
	if err := w.writeSnapshots(f, sheet); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *ReportWriter) writeOverview(f *excelize.File, sheet ports.ExportSheet) error {
	rows := [][]interface{}{
		{"Product", sheet.Product.Code.String()},
		{"Description", sheet.Product.Description},
		{"Generated", sheet.GeneratedAt.Time().Format(time.RFC3339)},
		{"Hidden quiet-hour snapshots", sheet.HiddenSnapshot},
	}

	if v := sheet.Variability; v != nil {
		rows = append(rows,
			[]interface{}{"Weekly mean", v.Mean},
			[]interface{}{"Weekly std dev (sample)", v.StdDev},
			[]interface{}{"Coefficient of variation", v.CV},
			[]interface{}{"Demand class", string(v.Class)},
			[]interface{}{"Periods analyzed", v.Periods},
		)
	} else {
		rows = append(rows, []interface{}{"Demand class", "insufficient data"})
	}

	if tr := sheet.Trend; tr != nil {
		rows = append(rows, []interface{}{"Trend (units/week)", tr.Slope})
	}

	for i, row := range rows {
		if err := setRow(f, sheetOverview, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReportWriter) writeReconciliation(f *excelize.File, sheet ports.ExportSheet) error {
	header := []interface{}{"Start", "End", "Stock start", "Stock end", "Delta", "Sales", "Difference", "Status"}
	if err := setRow(f, sheetReconciliation, 1, header); err != nil {
		return err
	}

	for i, p := range sheet.Periods {
		status := "reconciled"
		switch {
		case p.Incomplete:
			status = "incomplete"
		case p.Difference < 0:
			status = "unexplained loss"
		case p.Difference > 0:
			status = "net replenishment"
		}

		row := []interface{}{
			p.Start.Time().Format(time.RFC3339),
			p.End.Time().Format(time.RFC3339),
			p.StockStart,
			p.StockEnd,
			p.InventoryDelta,
			p.Sales,
			p.Difference,
			status,
		}
		if p.Incomplete {
			// No data is not zero: blank out the undefined cells.
			row[2], row[3], row[4], row[6] = "-", "-", "-", "-"
		}
		if err := setRow(f, sheetReconciliation, i+2, row); err != nil {
			return err
		}
	}

	totalsRow := []interface{}{"Totals", "", "", "", sheet.Totals.Delta, sheet.Totals.Sales, sheet.Totals.Difference,
		fmt.Sprintf("%d incomplete", sheet.Totals.Incomplete)}
	return setRow(f, sheetReconciliation, len(sheet.Periods)+2, totalsRow)
}

func (w *ReportWriter) writeSnapshots(f *excelize.File, sheet ports.ExportSheet) error {
	header := []interface{}{"Recorded at", "Quantity", "Location", "Warehouse", "Current"}
	if err := setRow(f, sheetSnapshots, 1, header); err != nil {
		return err
	}

	for i, s := range sheet.Snapshots {
		row := []interface{}{
			s.Timestamp.Time().Format(time.RFC3339),
			s.Quantity,
			s.LocationID.String(),
			s.WarehouseCode.String(),
			s.IsCurrent,
		}
		if err := setRow(f, sheetSnapshots, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
