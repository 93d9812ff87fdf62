package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrameHorizontal(t *testing.T) {
	f := NewInputFrame()
	assert.Equal(t, 0, f.Horizontal())

	f.Set(ActionLeft)
	assert.Equal(t, -1, f.Horizontal())

	f.Set(ActionRight)
	assert.Equal(t, 0, f.Horizontal(), "opposite directions cancel")

	f.Clear()
	f.Set(ActionRight)
	assert.Equal(t, 1, f.Horizontal())
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	var f InputFrame
	assert.False(t, f.Has(ActionPause))

	f.Set(ActionPause)
	c := f.Clone()
	f.Clear()

	assert.True(t, c.Has(ActionPause))
	assert.False(t, f.Has(ActionPause))
	assert.Equal(t, "Pause", ActionPause.String())
	assert.Equal(t, "Unknown", Action(99).String())
}

func TestSimpleRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)
	for range 100 {
		assert.Equal(t, a.Next(), b.Next())
	}

	st := a.State()
	x := a.Intn(1000)
	a.SetState(st)
	assert.Equal(t, x, a.Intn(1000), "restored state replays the same draw")
}

func TestSimpleRNGRanges(t *testing.T) {
	r := NewSimpleRNG(0)
	seen := make(map[int]bool)
	for range 2000 {
		v := r.Intn(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
		seen[v] = true

		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
	assert.Len(t, seen, 5, "every value in range is drawn")
	assert.Equal(t, 0, r.Intn(0))
}
