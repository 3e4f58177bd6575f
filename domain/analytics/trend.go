package analytics

import (
	"gonum.org/v1/gonum/stat"

	"stocklens/domain/core"
	"stocklens/domain/inventory"
)

// Trend is the least-squares demand trend over a periodic sales series,
// displayed next to the X/Y/Z class. Slope is units per period.
type Trend struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// ComputeTrend fits units = intercept + slope*i over period index i.
// Fewer than 2 aggregates yields core.ErrInsufficientData.
func ComputeTrend(aggregates []inventory.PeriodicAggregate) (Trend, error) {
	if len(aggregates) < 2 {
		return Trend{}, core.ErrInsufficientData
	}

	xs := make([]float64, len(aggregates))
	for i := range aggregates {
		xs[i] = float64(i)
	}
	ys := inventory.Units(aggregates)

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return Trend{Slope: slope, Intercept: intercept}, nil
}
