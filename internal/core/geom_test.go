package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"disjoint horizontal", NewRect(15, 0, 10, 10), false},
		{"disjoint vertical", NewRect(0, 15, 10, 10), false},
		{"touching right edge", NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", NewRect(0, 10, 10, 10), false},
		{"contained", NewRect(2, 2, 3, 3), true},
		{"zero width", NewRect(3, 3, 0, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Intersects(tc.other))
			assert.Equal(t, tc.want, tc.other.Intersects(base), "intersection must be symmetric")
		})
	}
}

func TestRectContainsAndEdges(t *testing.T) {
	r := NewRect(10, 10, 5, 4)

	assert.Equal(t, 15, r.Right())
	assert.Equal(t, 14, r.Bottom())
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(14, 13))
	assert.False(t, r.Contains(15, 10))
	assert.False(t, r.Contains(10, 14))
	assert.False(t, r.Contains(9, 12))

	cx, cy := r.Center()
	assert.Equal(t, 12, cx)
	assert.Equal(t, 12, cy)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.InDelta(t, 0.5, Clamp(0.5, 0.0, 1.0), 1e-9)
	assert.InDelta(t, 1.0, Clamp(1.7, 0.0, 1.0), 1e-9)
	assert.Equal(t, int64(-2), Clamp(int64(-9), -2, 2))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 4, Abs(-4))
	assert.Equal(t, 4, Abs(4))
	assert.Equal(t, 0, Abs(0))
}
