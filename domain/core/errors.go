package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrProductNotFound  = fmt.Errorf("%w: product", ErrNotFound)
	ErrLocationNotFound = fmt.Errorf("%w: location", ErrNotFound)

	// Analytics errors. These are expected input states, not defects: a brand
	// new product with one data point, a click without a drag, a query before
	// any snapshot exists. Callers branch on them and degrade the display.
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrEmptySeries      = errors.New("empty series")
	ErrInvalidSelection = errors.New("selection does not span two points")

	// ErrUnorderedSeries is the one defect-class condition: every analytics
	// component assumes snapshots ascending by timestamp as a precondition.
	ErrUnorderedSeries = errors.New("snapshot series not ascending by timestamp")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDataError reports whether err is one of the expected degrade-gracefully
// input states rather than a defect.
func IsDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrEmptySeries) ||
		errors.Is(err, ErrInvalidSelection)
}
