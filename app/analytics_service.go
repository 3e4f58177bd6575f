package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"stocklens/domain/analytics"
	"stocklens/domain/core"
	"stocklens/domain/inventory"
	"stocklens/internal"
	"stocklens/ports"
)

// pointLabelFormat is the x-axis label for one snapshot point. Labels double
// as drag-selection references, so they must be unique per point in practice.
const pointLabelFormat = "2006-01-02 15:04"

// AnalyticsService orchestrates the engine over the data-access ports: it
// loads series, applies the quiet-hours filter, binds view sessions, and runs
// the classifiers. All engine calls stay pure; the service owns nothing but
// the session registry.
type AnalyticsService struct {
	history  ports.SnapshotHistoryPort
	sales    ports.PeriodicSalesPort
	recon    ports.ReconciliationInputPort
	catalog  ports.ProductCatalogPort
	cfg      analytics.Config
	sessions *ViewSessionRegistry
	logger   *internal.Logger
}

// NewAnalyticsService creates the orchestration service
func NewAnalyticsService(
	history ports.SnapshotHistoryPort,
	sales ports.PeriodicSalesPort,
	recon ports.ReconciliationInputPort,
	catalog ports.ProductCatalogPort,
	cfg analytics.Config,
	logger *internal.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		history:  history,
		sales:    sales,
		recon:    recon,
		catalog:  catalog,
		cfg:      cfg,
		sessions: NewViewSessionRegistry(cfg.AutoZoomSensitivity),
		logger:   logger,
	}
}

// Overview is the per-product analytics payload behind the dashboard's detail
// screen. Variability and Trend are nil when the sales series is too short;
// the rest of the view still renders.
type Overview struct {
	Product     inventory.Product      `json:"product"`
	Snapshots   []inventory.Snapshot   `json:"snapshots"`
	Labels      []string               `json:"labels"`
	Hidden      int                    `json:"hidden"`
	Domain      analytics.ChartDomain  `json:"domain"`
	Zoom        ZoomView               `json:"zoom"`
	Variability *analytics.Variability `json:"variability,omitempty"`
	Trend       *analytics.Trend       `json:"trend,omitempty"`
}

// ProductOverview loads snapshot history and weekly sales concurrently, runs
// the engine, and returns the assembled view.
func (s *AnalyticsService) ProductOverview(ctx context.Context, q ports.HistoryQuery, excludeQuietHours bool) (*Overview, error) {
	product, err := s.catalog.GetProduct(ctx, q.Product)
	if err != nil {
		return nil, err
	}

	var (
		snapshots  []inventory.Snapshot
		aggregates []inventory.PeriodicAggregate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshots, err = s.history.GetSnapshotHistory(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		aggregates, err = s.sales.GetPeriodicSales(gctx, q.Product)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := inventory.EnsureAscending(snapshots); err != nil {
		// Precondition violation upstream. Loud, and the view does not render
		// from garbage.
		s.logger.Error("snapshot history for %s arrived unordered", q.Product)
		return nil, err
	}

	filtered := analytics.FilterQuietHours(snapshots, excludeQuietHours, s.cfg.QuietStartHour, s.cfg.QuietEndHour)
	labels := pointLabels(filtered.Snapshots)
	series := inventory.Quantities(filtered.Snapshots)

	session := s.sessions.SessionFor(sessionKey(q))
	session.Bind(seriesFingerprint(q, filtered.Snapshots), labels, series)
	zoom := session.View()

	overview := &Overview{
		Product:   *product,
		Snapshots: filtered.Snapshots,
		Labels:    labels,
		Hidden:    filtered.Removed,
		Domain:    analytics.ComputeDomain(series, false),
		Zoom:      zoom,
	}

	if v, err := analytics.Classify(aggregates, s.cfg); err == nil {
		overview.Variability = &v
	} else if !errors.Is(err, core.ErrInsufficientData) {
		return nil, err
	}
	if tr, err := analytics.ComputeTrend(aggregates); err == nil {
		overview.Trend = &tr
	}

	return overview, nil
}

// Zoom applies one zoom transition against the product's bound view session.
// The session must have been bound by a prior ProductOverview call; an
// unbound session just reports the idle full-range view.
func (s *AnalyticsService) Zoom(q ports.HistoryQuery, action ZoomAction, pointLabel string) ZoomView {
	return s.sessions.SessionFor(sessionKey(q)).Apply(action, pointLabel)
}

// ReconciliationReport is the per-product reconciliation payload.
type ReconciliationReport struct {
	Periods []inventory.ReconciliationPeriod `json:"periods"`
	Totals  inventory.ReconciliationTotals   `json:"totals"`
}

// Reconciliation loads the reconciliation inputs and runs the engine.
func (s *AnalyticsService) Reconciliation(ctx context.Context, q ports.ReconciliationQuery) (*ReconciliationReport, error) {
	inputs, err := s.recon.GetReconciliationInputs(ctx, q)
	if err != nil {
		return nil, err
	}

	periods, totals, err := analytics.Reconcile(inputs.Snapshots, inputs.SalesByPeriod)
	if err != nil {
		s.logger.Error("reconciliation inputs for %s rejected: %v", q.Product, err)
		return nil, err
	}

	return &ReconciliationReport{Periods: periods, Totals: totals}, nil
}

// ExportSheet assembles the full workbook payload for a product.
func (s *AnalyticsService) ExportSheet(ctx context.Context, q ports.HistoryQuery, reconHours int) (*ports.ExportSheet, error) {
	overview, err := s.ProductOverview(ctx, q, true)
	if err != nil {
		return nil, err
	}

	report, err := s.Reconciliation(ctx, ports.ReconciliationQuery{
		Product:   q.Product,
		Location:  q.Location,
		Warehouse: q.Warehouse,
		Hours:     reconHours,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ExportSheet{
		Product:        overview.Product,
		Variability:    overview.Variability,
		Trend:          overview.Trend,
		Periods:        report.Periods,
		Totals:         report.Totals,
		Snapshots:      overview.Snapshots,
		HiddenSnapshot: overview.Hidden,
		GeneratedAt:    core.Now(),
	}, nil
}

func pointLabels(snapshots []inventory.Snapshot) []string {
	labels := make([]string, len(snapshots))
	for i, s := range snapshots {
		labels[i] = s.Timestamp.Time().Format(pointLabelFormat)
	}
	return labels
}

func sessionKey(q ports.HistoryQuery) string {
	return fmt.Sprintf("%s|%s|%s", q.Product, q.Location, q.Warehouse)
}

func seriesFingerprint(q ports.HistoryQuery, snapshots []inventory.Snapshot) core.SeriesFingerprint {
	var first, last core.Timestamp
	if len(snapshots) > 0 {
		first = snapshots[0].Timestamp
		last = snapshots[len(snapshots)-1].Timestamp
	}
	return core.ComputeSeriesFingerprint(q.Product, q.Location, q.Warehouse, len(snapshots), first, last)
}
