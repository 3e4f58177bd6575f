package analytics

// Config holds the engine tunables. The quiet window, CV class boundaries and
// auto-zoom sensitivity vary per deployment, so they are parameters rather
// than literals in the components that use them.
type Config struct {
	// QuietStartHour/QuietEndHour bound the half-open quiet interval
	// [start, end) interpreted circularly over the 24h clock.
	QuietStartHour int
	QuietEndHour   int

	// CVStableMax and CVVariableMax are the X/Y and Y/Z class boundaries.
	// Boundaries are half-open: cv == CVStableMax is already class Y.
	CVStableMax   float64
	CVVariableMax float64

	// AutoZoomSensitivity is the fraction of the series' total range an
	// adjacent-pair change must exceed to count as a significant jump.
	AutoZoomSensitivity float64
}

// DefaultConfig returns the stock deployment tuning: quiet hours 22:00-06:00,
// CV boundaries 0.5/1.0, auto-zoom sensitivity 0.2.
func DefaultConfig() Config {
	return Config{
		QuietStartHour:      22,
		QuietEndHour:        6,
		CVStableMax:         0.5,
		CVVariableMax:       1.0,
		AutoZoomSensitivity: 0.2,
	}
}
