package app

import (
	"sync"

	"stocklens/domain/analytics"
	"stocklens/domain/core"
)

// ViewSession owns the zoom state for one product view. It is the only
// mutable state in the analytics path: the engine itself is pure, but the
// dashboard needs the committed window to survive between requests.
//
// A window is a pair of indices into a specific filtered series. When a new
// load supersedes the one the window was built against, the session resets to
// Idle: a stale index-based window is meaningless against a new series.
type ViewSession struct {
	mu          sync.Mutex
	fingerprint core.SeriesFingerprint
	navigator   *analytics.ZoomNavigator
	series      []float64
}

// NewViewSession creates a session with the given auto-zoom sensitivity
func NewViewSession(sensitivity float64) *ViewSession {
	return &ViewSession{navigator: analytics.NewZoomNavigator(sensitivity)}
}

// Bind points the session at a loaded series. If the fingerprint differs from
// the one the current window was committed against, the navigator resets.
func (s *ViewSession) Bind(fingerprint core.SeriesFingerprint, labels []string, series []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fingerprint == s.fingerprint {
		s.series = series
		return
	}
	s.fingerprint = fingerprint
	s.series = series
	s.navigator.SetSeries(labels)
}

// ZoomAction names a zoom transition requested by the presentation layer.
type ZoomAction string

const (
	ZoomBegin  ZoomAction = "begin"
	ZoomUpdate ZoomAction = "update"
	ZoomCommit ZoomAction = "commit"
	ZoomReset  ZoomAction = "reset"
	ZoomAuto   ZoomAction = "auto"
)

// ZoomView is the session state a render layer needs after a transition.
type ZoomView struct {
	State  string                `json:"state"`
	Window *analytics.ZoomWindow `json:"window,omitempty"`
	Slice  []float64             `json:"slice"`
	Domain analytics.ChartDomain `json:"domain"`
}

// Apply runs one zoom transition and returns the resulting view. An invalid
// selection is reported in the view (state returns to idle), not as an error:
// it is an expected input, a click without a drag.
func (s *ViewSession) Apply(action ZoomAction, pointLabel string) ZoomView {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch action {
	case ZoomBegin:
		s.navigator.BeginSelection(pointLabel)
	case ZoomUpdate:
		s.navigator.UpdateSelection(pointLabel)
	case ZoomCommit:
		// Error value intentionally dropped: zero-width drags degrade to
		// "no zoom applied", which the returned state already shows.
		_, _ = s.navigator.CommitSelection()
	case ZoomReset:
		s.navigator.Reset()
	case ZoomAuto:
		s.navigator.AutoZoomOnVariation(s.series)
	}

	return s.view()
}

// View returns the current state without applying a transition.
func (s *ViewSession) View() ZoomView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *ViewSession) view() ZoomView {
	slice := s.navigator.WindowedSlice(s.series)
	return ZoomView{
		State:  s.navigator.State().String(),
		Window: s.navigator.Window(),
		Slice:  slice,
		Domain: analytics.ComputeDomain(slice, s.navigator.IsZoomed()),
	}
}

// IsZoomed reports whether a committed window is active.
func (s *ViewSession) IsZoomed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.navigator.IsZoomed()
}

// ViewSessionRegistry keys sessions by product scope.
type ViewSessionRegistry struct {
	mu          sync.RWMutex
	sessions    map[string]*ViewSession
	sensitivity float64
}

// NewViewSessionRegistry creates an empty registry
func NewViewSessionRegistry(sensitivity float64) *ViewSessionRegistry {
	return &ViewSessionRegistry{
		sessions:    make(map[string]*ViewSession),
		sensitivity: sensitivity,
	}
}

// SessionFor returns the session for a scope key, creating it if needed.
func (r *ViewSessionRegistry) SessionFor(key string) *ViewSession {
	r.mu.RLock()
	session, ok := r.sessions[key]
	r.mu.RUnlock()
	if ok {
		return session
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok = r.sessions[key]; ok {
		return session
	}
	session = NewViewSession(r.sensitivity)
	r.sessions[key] = session
	return session
}
