package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocklens/domain/core"
)

func newTestNavigator(labels ...string) *ZoomNavigator {
	z := NewZoomNavigator(0.2)
	z.SetSeries(labels)
	return z
}

func TestZoomNavigator_StartsIdle(t *testing.T) {
	z := newTestNavigator("a", "b", "c")

	assert.Equal(t, ZoomIdle, z.State())
	assert.Nil(t, z.Window())
}

func TestZoomNavigator_DragCommit(t *testing.T) {
	z := newTestNavigator("a", "b", "c", "d", "e")

	z.BeginSelection("b")
	assert.Equal(t, ZoomSelecting, z.State())
	z.UpdateSelection("d")

	w, err := z.CommitSelection()
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, ZoomWindow{Left: 1, Right: 3}, *w)
	assert.Equal(t, ZoomZoomed, z.State())
}

func TestZoomNavigator_ReversedDragIsNormalized(t *testing.T) {
	z := newTestNavigator("a", "b", "c", "d")

	z.BeginSelection("d")
	z.UpdateSelection("a")

	w, err := z.CommitSelection()
	require.NoError(t, err)
	assert.Equal(t, ZoomWindow{Left: 0, Right: 3}, *w)
}

func TestZoomNavigator_ZeroWidthDragDiscarded(t *testing.T) {
	z := newTestNavigator("a", "b", "c")

	z.BeginSelection("b")
	// No update: refLeft == refRight, a click without a drag.
	w, err := z.CommitSelection()

	assert.ErrorIs(t, err, core.ErrInvalidSelection)
	assert.Nil(t, w)
	assert.Equal(t, ZoomIdle, z.State())
}

func TestZoomNavigator_CommitIsIdempotent(t *testing.T) {
	z := newTestNavigator("a", "b", "c", "d")

	z.BeginSelection("a")
	z.UpdateSelection("c")

	first, err := z.CommitSelection()
	require.NoError(t, err)
	second, err := z.CommitSelection()
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
}

func TestZoomNavigator_Reset(t *testing.T) {
	z := newTestNavigator("a", "b", "c")
	z.BeginSelection("a")
	z.UpdateSelection("c")
	_, err := z.CommitSelection()
	require.NoError(t, err)

	z.Reset()

	assert.Equal(t, ZoomIdle, z.State())
	assert.Nil(t, z.Window())
}

func TestZoomNavigator_UnknownLabelIsNoOp(t *testing.T) {
	z := newTestNavigator("a", "b", "c")

	z.BeginSelection("nope")

	assert.Equal(t, ZoomIdle, z.State())
}

func TestZoomNavigator_EmptySeriesIsNoOp(t *testing.T) {
	z := newTestNavigator()

	z.BeginSelection("a")
	z.AutoZoomOnVariation(nil)

	assert.Equal(t, ZoomIdle, z.State())
	assert.Nil(t, z.Window())
}

func TestZoomNavigator_AutoZoomLastBigJump(t *testing.T) {
	series := []float64{10, 10, 10, 80, 82, 79}
	z := newTestNavigator("p0", "p1", "p2", "p3", "p4", "p5")

	// totalRange = 72, threshold = 14.4; only the 10->80 jump at index 3
	// qualifies, so the window runs from there to the end.
	z.AutoZoomOnVariation(series)

	require.NotNil(t, z.Window())
	assert.Equal(t, ZoomWindow{Left: 3, Right: 5}, *z.Window())
	assert.Equal(t, []float64{80, 82, 79}, z.WindowedSlice(series))
}

func TestZoomNavigator_AutoZoomUsesLastJumpNotLargest(t *testing.T) {
	// Two qualifying jumps; the later, smaller one wins.
	series := []float64{10, 100, 100, 100, 60, 60}
	z := newTestNavigator("p0", "p1", "p2", "p3", "p4", "p5")

	z.AutoZoomOnVariation(series)

	require.NotNil(t, z.Window())
	assert.Equal(t, ZoomWindow{Left: 4, Right: 5}, *z.Window())
}

func TestZoomNavigator_AutoZoomNoOps(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		series []float64
	}{
		{"fewer than 3 points", []string{"a", "b"}, []float64{1, 50}},
		{"flat series", []string{"a", "b", "c"}, []float64{5, 5, 5}},
		{"jump only at final pair", []string{"a", "b", "c"}, []float64{10, 10, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := NewZoomNavigator(0.2)
			z.SetSeries(tt.labels)

			z.AutoZoomOnVariation(tt.series)

			assert.Equal(t, ZoomIdle, z.State())
			assert.Nil(t, z.Window())
		})
	}
}

func TestZoomNavigator_WindowedSliceSubsetLaw(t *testing.T) {
	series := []float64{5, 9, 12, 7, 30, 31}
	z := newTestNavigator("a", "b", "c", "d", "e", "f")

	z.BeginSelection("c")
	z.UpdateSelection("e")
	_, err := z.CommitSelection()
	require.NoError(t, err)

	slice := z.WindowedSlice(series)

	assert.Equal(t, []float64{12, 7, 30}, slice)
	assert.LessOrEqual(t, len(slice), len(series))
}

func TestZoomNavigator_WindowedSliceFullRangeWhenIdle(t *testing.T) {
	series := []float64{1, 2, 3}
	z := newTestNavigator("a", "b", "c")

	assert.Equal(t, series, z.WindowedSlice(series))
}

func TestZoomNavigator_SetSeriesResetsWindow(t *testing.T) {
	z := newTestNavigator("a", "b", "c")
	z.BeginSelection("a")
	z.UpdateSelection("c")
	_, err := z.CommitSelection()
	require.NoError(t, err)

	z.SetSeries([]string{"x", "y", "z"})

	assert.Equal(t, ZoomIdle, z.State())
	assert.Nil(t, z.Window())
}
