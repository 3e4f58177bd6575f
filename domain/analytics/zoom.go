package analytics

import (
	"stocklens/domain/core"
)

// ZoomState enumerates the drag-to-zoom interaction states.
type ZoomState int

const (
	// ZoomIdle shows the full range; no window is active.
	ZoomIdle ZoomState = iota
	// ZoomSelecting tracks a drag gesture in progress.
	ZoomSelecting
	// ZoomZoomed has a committed window active.
	ZoomZoomed
)

func (s ZoomState) String() string {
	switch s {
	case ZoomSelecting:
		return "selecting"
	case ZoomZoomed:
		return "zoomed"
	default:
		return "idle"
	}
}

// ZoomWindow is a committed contiguous index range into the filtered series.
// Windows are recreated, never mutated, so render-layer equality checks stay
// simple.
type ZoomWindow struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// ZoomNavigator owns the current zoom window over one filtered, ordered
// series. The drag gesture is modeled as explicit states with pure-ish
// transition methods so it can be tested without a rendering surface.
//
// Every operation on an out-of-range point or an empty series is a no-op that
// leaves the state unchanged: a bad zoom request degrades to "show
// everything" rather than breaking rendering.
type ZoomNavigator struct {
	labels      []string
	state       ZoomState
	refLeft     string
	refRight    string
	hasRefs     bool
	window      *ZoomWindow
	sensitivity float64
}

// NewZoomNavigator creates a navigator with the given auto-zoom sensitivity
// (fraction of total range an adjacent change must exceed).
func NewZoomNavigator(sensitivity float64) *ZoomNavigator {
	return &ZoomNavigator{sensitivity: sensitivity}
}

// SetSeries binds the navigator to a new series identified by its point
// labels and resets to Idle. A window is a pair of indices into a specific
// series; it never survives a series change.
func (z *ZoomNavigator) SetSeries(labels []string) {
	z.labels = labels
	z.Reset()
}

// State returns the current interaction state.
func (z *ZoomNavigator) State() ZoomState {
	return z.state
}

// Window returns the committed window, or nil for full range.
func (z *ZoomNavigator) Window() *ZoomWindow {
	return z.window
}

// IsZoomed reports whether a committed window is active.
func (z *ZoomNavigator) IsZoomed() bool {
	return z.state == ZoomZoomed && z.window != nil
}

// BeginSelection starts a drag gesture at the given point label.
func (z *ZoomNavigator) BeginSelection(pointLabel string) {
	if len(z.labels) == 0 || z.indexOf(pointLabel) < 0 {
		return
	}
	z.state = ZoomSelecting
	z.refLeft = pointLabel
	z.refRight = pointLabel
	z.hasRefs = true
}

// UpdateSelection tracks the drag's moving edge. The point may be left of the
// anchor; commit orders the pair.
func (z *ZoomNavigator) UpdateSelection(pointLabel string) {
	if z.state != ZoomSelecting {
		return
	}
	if z.indexOf(pointLabel) < 0 {
		return
	}
	z.refRight = pointLabel
}

// CommitSelection resolves the tracked pair to indices and commits the
// window. A zero-width drag (same label, or points under 1 index apart) is
// not a valid zoom: the selection is discarded, the state returns to Idle and
// core.ErrInvalidSelection is reported as a value.
//
// Committing again with the same tracked pair yields the same window.
func (z *ZoomNavigator) CommitSelection() (*ZoomWindow, error) {
	if !z.hasRefs {
		return z.window, nil
	}
	idxLeft := z.indexOf(z.refLeft)
	idxRight := z.indexOf(z.refRight)
	if idxLeft < 0 || idxRight < 0 || z.refLeft == z.refRight || absInt(idxLeft-idxRight) < 1 {
		z.state = ZoomIdle
		z.window = nil
		return nil, core.ErrInvalidSelection
	}
	if idxLeft > idxRight {
		idxLeft, idxRight = idxRight, idxLeft
	}
	z.state = ZoomZoomed
	z.window = &ZoomWindow{Left: idxLeft, Right: idxRight}
	return z.window, nil
}

// Reset discards any selection or window and returns to Idle.
func (z *ZoomNavigator) Reset() {
	z.state = ZoomIdle
	z.refLeft = ""
	z.refRight = ""
	z.hasRefs = false
	z.window = nil
}

// AutoZoomOnVariation zooms from the last significant adjacent change to the
// end of the series. The most recent large change is typically a
// replenishment delivery, which is what an operator wants to inspect relative
// to current stock. With fewer than 3 points, a flat series, or no qualifying
// interior jump this is a no-op.
//
// Only the last qualifying jump is used, even when earlier larger ones exist;
// that matches the observed dashboard behavior and is deliberate.
func (z *ZoomNavigator) AutoZoomOnVariation(series []float64) {
	if z.state == ZoomSelecting {
		return
	}
	n := len(series)
	if n < 3 || n != len(z.labels) {
		return
	}

	lo, hi := series[0], series[0]
	for _, v := range series[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	totalRange := hi - lo
	if totalRange == 0 {
		return
	}

	threshold := z.sensitivity * totalRange
	last := -1
	for i := 1; i < n; i++ {
		diff := series[i] - series[i-1]
		if diff < 0 {
			diff = -diff
		}
		if diff > threshold {
			last = i
		}
	}
	if last <= 0 || last >= n-1 {
		return
	}

	z.state = ZoomZoomed
	z.window = &ZoomWindow{Left: last, Right: n - 1}
	z.hasRefs = false
}

// WindowedSlice returns the sub-sequence the current window selects, or the
// full series when no window is active. The result is always a contiguous
// sub-slice of series.
func (z *ZoomNavigator) WindowedSlice(series []float64) []float64 {
	if !z.IsZoomed() {
		return series
	}
	w := z.window
	if w.Left < 0 || w.Right >= len(series) || w.Left > w.Right {
		return series
	}
	return series[w.Left : w.Right+1]
}

func (z *ZoomNavigator) indexOf(label string) int {
	for i, l := range z.labels {
		if l == label {
			return i
		}
	}
	return -1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
