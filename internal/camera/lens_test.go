package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLensDefaults(t *testing.T) {
	l := NewLens()

	assert.Equal(t, float32(45), l.Fov)
	assert.Equal(t, float32(1), l.Min)
	assert.Equal(t, float32(45), l.Max)
}

func TestZoomClampsToRange(t *testing.T) {
	for _, tt := range []struct {
		name  string
		delta float32
		want  float32
	}{
		{"zoom in far past the minimum", 1000, 1},
		{"no scroll", 0, 45},
		{"zoom out past the maximum", -100, 45},
		{"partial zoom", 20, 25},
	} {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLens()
			l.Zoom(tt.delta)
			assert.Equal(t, tt.want, l.Fov)
		})
	}
}

func TestZoomSequenceStaysInRange(t *testing.T) {
	l := NewLens()

	for _, delta := range []float32{3, -7, 100, -100, 0.5, 44, -0.25} {
		l.Zoom(delta)
		assert.GreaterOrEqual(t, l.Fov, l.Min)
		assert.LessOrEqual(t, l.Fov, l.Max)
	}
}

func TestZoomReportsChange(t *testing.T) {
	l := NewLens()

	assert.False(t, l.Zoom(0))
	assert.False(t, l.Zoom(-5), "already at the maximum")
	assert.True(t, l.Zoom(5))
}

func TestProjectionUsesFov(t *testing.T) {
	l := NewLens()
	wide := l.Projection(16.0 / 9.0)

	l.Zoom(30)
	narrow := l.Projection(16.0 / 9.0)

	// A smaller field of view magnifies: the focal terms grow.
	assert.Greater(t, narrow.At(0, 0), wide.At(0, 0))
	assert.Greater(t, narrow.At(1, 1), wide.At(1, 1))
}
