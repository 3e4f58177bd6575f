package analytics

import (
	"github.com/montanaflynn/stats"

	"stocklens/domain/core"
	"stocklens/domain/inventory"
)

// DemandClass buckets products by demand predictability.
type DemandClass string

const (
	// ClassStable (X): predictable demand, cv below the stable boundary.
	ClassStable DemandClass = "X"
	// ClassVariable (Y): fluctuating demand.
	ClassVariable DemandClass = "Y"
	// ClassErratic (Z): erratic demand, cv at or above the variable boundary.
	ClassErratic DemandClass = "Z"
)

// Variability is the coefficient-of-variation classification of a periodic
// sales series.
type Variability struct {
	Mean    float64     `json:"mean"`
	StdDev  float64     `json:"std_dev"`
	CV      float64     `json:"cv"`
	Class   DemandClass `json:"class"`
	Periods int         `json:"periods"`
}

// Classify computes mean, sample standard deviation and coefficient of
// variation over a periodic sales series and maps the CV to an X/Y/Z class.
//
// The standard deviation uses divisor n-1 (Bessel's correction): the periods
// analyzed are a sample of an ongoing demand process, not the whole
// population.
//
// A zero-mean series is defined as cv = 0, perfectly stable, by convention.
// The alternative would be NaN, and "a product that never sells" is stable in
// every sense the classification cares about.
//
// Fewer than 2 aggregates yields core.ErrInsufficientData as a value the
// caller must branch on, never a panic.
func Classify(aggregates []inventory.PeriodicAggregate, cfg Config) (Variability, error) {
	if len(aggregates) < 2 {
		return Variability{}, core.ErrInsufficientData
	}

	units := inventory.Units(aggregates)

	mean, err := stats.Mean(units)
	if err != nil {
		return Variability{}, core.ErrInsufficientData
	}
	stdDev, err := stats.StandardDeviationSample(units)
	if err != nil {
		return Variability{}, core.ErrInsufficientData
	}

	cv := 0.0
	if mean > 0 {
		cv = stdDev / mean
	}

	return Variability{
		Mean:    mean,
		StdDev:  stdDev,
		CV:      cv,
		Class:   classForCV(cv, cfg),
		Periods: len(aggregates),
	}, nil
}

// classForCV applies the half-open class boundaries: cv == CVStableMax is
// already Y, cv == CVVariableMax is already Z.
func classForCV(cv float64, cfg Config) DemandClass {
	switch {
	case cv < cfg.CVStableMax:
		return ClassStable
	case cv < cfg.CVVariableMax:
		return ClassVariable
	default:
		return ClassErratic
	}
}
