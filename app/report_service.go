package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"stocklens/ports"
)

// ReportService is the non-visual consumer of the engine: it renders the same
// analytics the dashboard charts show as a Markdown report, with an HTML
// conversion for the summary panel and a workbook export for download.
type ReportService struct {
	analytics *AnalyticsService
	exporter  ports.ReportExporterPort
}

// NewReportService creates a report generator over the analytics service
func NewReportService(analytics *AnalyticsService, exporter ports.ReportExporterPort) *ReportService {
	return &ReportService{analytics: analytics, exporter: exporter}
}

// Markdown renders the product report as Markdown.
func (s *ReportService) Markdown(ctx context.Context, q ports.HistoryQuery, reconHours int) (string, error) {
	sheet, err := s.analytics.ExportSheet(ctx, q, reconHours)
	if err != nil {
		return "", err
	}
	return renderMarkdown(sheet), nil
}

// HTML renders the product report as HTML for the dashboard summary panel.
func (s *ReportService) HTML(ctx context.Context, q ports.HistoryQuery, reconHours int) ([]byte, error) {
	md, err := s.Markdown(ctx, q, reconHours)
	if err != nil {
		return nil, err
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer), nil
}

// Workbook renders the product report as a downloadable xlsx.
func (s *ReportService) Workbook(ctx context.Context, q ports.HistoryQuery, reconHours int) ([]byte, error) {
	sheet, err := s.analytics.ExportSheet(ctx, q, reconHours)
	if err != nil {
		return nil, err
	}
	return s.exporter.WriteWorkbook(*sheet)
}

func renderMarkdown(sheet *ports.ExportSheet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Inventory report: %s\n\n", sheet.Product.Code)
	if sheet.Product.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", sheet.Product.Description)
	}
	fmt.Fprintf(&b, "Generated %s. %d quiet-hour snapshots hidden.\n\n",
		sheet.GeneratedAt.Time().Format(time.RFC3339), sheet.HiddenSnapshot)

	b.WriteString("## Demand variability\n\n")
	if v := sheet.Variability; v != nil {
		fmt.Fprintf(&b, "- Weekly mean: %.2f\n", v.Mean)
		fmt.Fprintf(&b, "- Std dev (sample): %.2f\n", v.StdDev)
		fmt.Fprintf(&b, "- CV: %.3f\n", v.CV)
		fmt.Fprintf(&b, "- Class: **%s**\n", v.Class)
	} else {
		b.WriteString("Not enough weekly data to classify.\n")
	}
	if tr := sheet.Trend; tr != nil {
		fmt.Fprintf(&b, "- Trend: %+.2f units/week\n", tr.Slope)
	}
	b.WriteString("\n")

	b.WriteString("## Reconciliation\n\n")
	b.WriteString("| Period start | Period end | Delta | Sales | Difference | Status |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, p := range sheet.Periods {
		status := "reconciled"
		delta := fmt.Sprintf("%.0f", p.InventoryDelta)
		diff := fmt.Sprintf("%.0f", p.Difference)
		switch {
		case p.Incomplete:
			status = "incomplete"
			delta, diff = "–", "–"
		case p.Difference < 0:
			status = "unexplained loss"
		case p.Difference > 0:
			status = "net replenishment"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %.0f | %s | %s |\n",
			p.Start.Time().Format("2006-01-02 15:04"),
			p.End.Time().Format("2006-01-02 15:04"),
			delta, p.Sales, diff, status)
	}
	fmt.Fprintf(&b, "\nTotals: sales %.0f, delta %.0f, difference %.0f (%d incomplete).\n",
		sheet.Totals.Sales, sheet.Totals.Delta, sheet.Totals.Difference, sheet.Totals.Incomplete)

	return b.String()
}
