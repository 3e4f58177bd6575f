package ui

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"stocklens/app"
	"stocklens/domain/core"
	"stocklens/ports"
)

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleProducts(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	products, err := a.catalog.ListProducts(r.Context(), limit, offset)
	if err != nil {
		a.logger.Error("product list failed: %v", err)
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (a *App) handleLocations(w http.ResponseWriter, r *http.Request) {
	code, err := core.ParseProductCode(chi.URLParam(r, "code"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	locations, err := a.catalog.ListLocations(r.Context(), code)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"locations": locations})
}

// historyQuery builds the scope of a history request from the URL.
func (a *App) historyQuery(r *http.Request) (ports.HistoryQuery, error) {
	code, err := core.ParseProductCode(chi.URLParam(r, "code"))
	if err != nil {
		return ports.HistoryQuery{}, err
	}
	return ports.HistoryQuery{
		Product:   code,
		Location:  core.LocationID(r.URL.Query().Get("location")),
		Warehouse: core.WarehouseCode(r.URL.Query().Get("warehouse")),
		Days:      queryInt(r, "days", a.engine.DefaultHistoryDays),
	}, nil
}

func (a *App) handleHistory(w http.ResponseWriter, r *http.Request) {
	q, err := a.historyQuery(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	excludeQuiet := queryBool(r, "quiet", true)

	overview, err := a.analytics.ProductOverview(r.Context(), q, excludeQuiet)
	if err != nil {
		a.logger.Error("history for %s failed: %v", q.Product, err)
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

func (a *App) handleVariability(w http.ResponseWriter, r *http.Request) {
	q, err := a.historyQuery(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	overview, err := a.analytics.ProductOverview(r.Context(), q, true)
	if err != nil {
		respondError(w, err)
		return
	}

	if overview.Variability == nil {
		// Fewer than two weekly points: a first-class outcome, not a 500.
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"status": "insufficient_data",
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"variability": overview.Variability,
		"trend":       overview.Trend,
	})
}

func (a *App) handleReconciliation(w http.ResponseWriter, r *http.Request) {
	code, err := core.ParseProductCode(chi.URLParam(r, "code"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	q := ports.ReconciliationQuery{
		Product:   code,
		Location:  core.LocationID(r.URL.Query().Get("location")),
		Warehouse: core.WarehouseCode(r.URL.Query().Get("warehouse")),
		Hours:     queryInt(r, "hours", a.engine.DefaultReconHours),
	}

	report, err := a.analytics.Reconciliation(r.Context(), q)
	if err != nil {
		a.logger.Error("reconciliation for %s failed: %v", q.Product, err)
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// zoomRequest is the body of a zoom transition request.
type zoomRequest struct {
	Action app.ZoomAction `json:"action"`
	Point  string         `json:"point,omitempty"`
}

func (a *App) handleZoom(w http.ResponseWriter, r *http.Request) {
	q, err := a.historyQuery(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var req zoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	switch req.Action {
	case app.ZoomBegin, app.ZoomUpdate, app.ZoomCommit, app.ZoomReset, app.ZoomAuto:
	default:
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown zoom action %q", req.Action)})
		return
	}

	respondJSON(w, http.StatusOK, a.analytics.Zoom(q, req.Action, req.Point))
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	q, err := a.historyQuery(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	hours := queryInt(r, "hours", a.engine.DefaultReconHours)

	data, err := a.reports.Workbook(r.Context(), q, hours)
	if err != nil {
		a.logger.Error("export for %s failed: %v", q.Product, err)
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-inventory.xlsx", q.Product))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	q, err := a.historyQuery(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	hours := queryInt(r, "hours", a.engine.DefaultReconHours)

	html, err := a.reports.HTML(r.Context(), q, hours)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(html)
}
