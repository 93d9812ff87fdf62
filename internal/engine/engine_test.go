package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MattiBlue123/Bricker-Game/internal/assets"
	"github.com/MattiBlue123/Bricker-Game/internal/core"
)

type probe struct {
	Object
	hits    []Collision
	others  []Entity
	updates int
	reject  string
}

func newProbe(x, y, w, h int) *probe {
	return &probe{Object: Object{Box: Box{Pos: V(x, y), Size: V(w, h)}}}
}

func (p *probe) OnCollisionEnter(other Entity, c Collision) {
	p.hits = append(p.hits, c)
	p.others = append(p.others, other)
}

func (p *probe) Update() { p.updates++ }

func (p *probe) ShouldCollideWith(other Entity) bool {
	return p.reject == "" || other.Object().Tag() != p.reject
}

func TestFixedConversions(t *testing.T) {
	assert.Equal(t, Fixed(3000), ToFixed(3))
	assert.Equal(t, 3, Fixed(3999).ToCell())
	assert.Equal(t, -1, Fixed(-1).ToCell())
	assert.Equal(t, -1, Fixed(-1000).ToCell())
	assert.Equal(t, -2, Fixed(-1001).ToCell())
	assert.Equal(t, Fixed(1500), FromFloat(1.5))
	assert.Equal(t, Fixed(0), Fixed(10).Div(0))
	assert.Equal(t, Fixed(7), Fixed(-7).Abs())
}

func TestPolarPointsUp(t *testing.T) {
	v := Polar(ToFixed(1), 3.14159265/2)
	assert.InDelta(t, 0, int(v.X), 1)
	assert.Equal(t, Fixed(-1000), v.Y)

	v = Polar(ToFixed(2), 0)
	assert.Equal(t, Vec{X: 2000}, v)
}

func TestBoxGeometry(t *testing.T) {
	b := Box{Pos: V(2, 3), Size: V(4, 2)}

	assert.Equal(t, V(4, 4), b.Center())
	assert.Equal(t, core.NewRect(2, 3, 4, 2), b.Cells())
	assert.True(t, b.Overlaps(Box{Pos: V(5, 4), Size: V(2, 2)}))
	assert.False(t, b.Overlaps(Box{Pos: V(6, 3), Size: V(1, 1)}), "touching edges do not overlap")

	small := Box{Pos: Vec{X: 2500, Y: 2500}, Size: Vec{X: 500, Y: 500}}
	assert.Equal(t, core.NewRect(2, 2, 1, 1), small.Cells())
}

func TestContactNormal(t *testing.T) {
	ball := Box{Pos: V(5, 5), Size: V(1, 1)}

	above := Box{Pos: Vec{X: ToFixed(3), Y: 4200}, Size: V(6, 1)}
	assert.Equal(t, Normal{Y: -1}, ball.ContactNormal(above))
	assert.Equal(t, Normal{Y: 1}, above.ContactNormal(ball))

	right := Box{Pos: Vec{X: 5800, Y: ToFixed(2)}, Size: V(1, 8)}
	assert.Equal(t, Normal{X: 1}, ball.ContactNormal(right))
	assert.Equal(t, Normal{X: -1}, Normal{X: 1}.Flip())
}

func TestObjectCenter(t *testing.T) {
	o := NewObject(V(0, 0), V(2, 2), testImage())
	o.SetCenter(V(10, 10))

	assert.Equal(t, V(9, 9), o.Box.Pos)
	assert.Equal(t, V(10, 10), o.Center())
	o.SetTag("ball")
	assert.Equal(t, "ball", o.Tag())
}

func TestCollectionAddRemove(t *testing.T) {
	c := NewCollection()
	a, b := newProbe(0, 0, 1, 1), newProbe(1, 1, 1, 1)

	c.Add(a, LayerStatic)
	c.Add(b, LayerStatic)
	c.Add(a, LayerStatic)
	require.Equal(t, 2, c.Len(LayerStatic), "duplicate add is ignored")
	assert.NotZero(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())

	assert.False(t, c.Remove(a, LayerDefault), "wrong layer")
	assert.True(t, c.Remove(a, LayerStatic))
	assert.False(t, c.Remove(a, LayerStatic), "second removal reports absence")
	assert.False(t, c.Contains(a, LayerStatic))
	assert.True(t, c.Contains(b, LayerStatic))

	assert.False(t, c.Remove(newProbe(0, 0, 1, 1), LayerStatic), "never added")
	assert.Equal(t, 0, c.Len(Layer(42)))
}

func TestCollectionOrderAndEach(t *testing.T) {
	c := NewCollection()
	ps := []*probe{newProbe(0, 0, 1, 1), newProbe(0, 0, 1, 1), newProbe(0, 0, 1, 1)}
	for _, p := range ps {
		c.Add(p, LayerDefault)
	}
	c.Remove(ps[1], LayerDefault)
	c.Add(ps[1], LayerDefault)

	var got []Entity
	c.Each(LayerDefault, func(e Entity) bool {
		got = append(got, e)
		c.Remove(e, LayerDefault)
		return true
	})
	assert.Equal(t, []Entity{ps[0], ps[2], ps[1]}, got)
	assert.Equal(t, 0, c.Len(LayerDefault))

	c.Add(ps[0], LayerUI)
	c.Clear()
	assert.Equal(t, 0, c.Len(LayerUI))
}

func TestCollisionTracker(t *testing.T) {
	tr := NewCollisionTracker()
	k := MakePairKey(9, 2)
	assert.Equal(t, PairKey{A: 2, B: 9}, k)

	assert.True(t, tr.Begin(k))
	assert.False(t, tr.Begin(k))
	assert.True(t, tr.IsColliding(k))

	tr.Retain(map[PairKey]struct{}{})
	assert.False(t, tr.IsColliding(k))
	tr.End(k)
	assert.Equal(t, 0, tr.Len())
}

func TestWorldStepFiresOncePerOverlap(t *testing.T) {
	w := NewWorld()
	mover := newProbe(0, 5, 1, 1)
	mover.Vel = Vec{X: 500}
	wall := newProbe(2, 0, 1, 10)
	w.Entities.Add(mover, LayerDefault)
	w.Entities.Add(wall, LayerStatic)

	w.Step() // x=0.5, no overlap
	assert.Empty(t, mover.hits)

	w.Step() // x=1.0, touching only
	assert.Empty(t, mover.hits)

	w.Step() // x=1.5, overlap begins
	require.Len(t, mover.hits, 1)
	require.Len(t, wall.hits, 1)
	assert.Equal(t, Normal{X: 1}, mover.hits[0].Normal)
	assert.Equal(t, Normal{X: -1}, wall.hits[0].Normal)
	assert.Same(t, wall, mover.others[0])

	w.Step() // still overlapping
	assert.Len(t, mover.hits, 1)

	mover.Vel = Vec{X: -2000}
	w.Step() // separated
	mover.Vel = Vec{X: 2000}
	w.Step() // overlap again
	assert.Len(t, mover.hits, 2)

	assert.Equal(t, 6, mover.updates)
	assert.Equal(t, 6, wall.updates)
}

func TestWorldRespectsFilterAndRemoval(t *testing.T) {
	w := NewWorld()
	heart := newProbe(0, 0, 1, 1)
	heart.reject = "wall"
	wall := newProbe(0, 0, 1, 1)
	wall.SetTag("wall")
	paddle := newProbe(0, 0, 1, 1)
	paddle.SetTag("paddle")

	w.Entities.Add(heart, LayerDefault)
	w.Entities.Add(wall, LayerStatic)
	w.Entities.Add(paddle, LayerDefault)
	w.Step()

	require.Len(t, heart.others, 1)
	assert.Same(t, paddle, heart.others[0])
	require.Len(t, wall.others, 1, "the paddle still hits the wall")
	assert.Same(t, paddle, wall.others[0])

	w.Reset()
	assert.Equal(t, 0, w.Entities.Len(LayerDefault))
}

type remover struct {
	probe
	c *Collection
}

func (r *remover) OnCollisionEnter(other Entity, c Collision) {
	r.probe.OnCollisionEnter(other, c)
	r.c.Remove(other, LayerStatic)
}

func TestWorldSkipsEntitiesRemovedDuringStep(t *testing.T) {
	w := NewWorld()
	r := &remover{probe: *newProbe(0, 0, 2, 1), c: w.Entities}
	b1, b2 := newProbe(0, 0, 1, 1), newProbe(1, 0, 1, 1)
	w.Entities.Add(r, LayerDefault)
	w.Entities.Add(b1, LayerStatic)
	w.Entities.Add(b2, LayerStatic)

	w.Step()

	assert.Len(t, r.hits, 2)
	assert.Equal(t, 0, w.Entities.Len(LayerStatic))
}

func testImage() assets.Image {
	return assets.Image{Glyph: '#', Color: core.ColorWhite}
}
