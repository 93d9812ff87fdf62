package engine

// World advances the entities of a Collection one frame at a time.
type World struct {
	Entities *Collection
	tracker  *CollisionTracker
}

// NewWorld creates a world over a fresh collection.
func NewWorld() *World {
	return &World{
		Entities: NewCollection(),
		tracker:  NewCollisionTracker(),
	}
}

// Reset empties the world for a new session.
func (w *World) Reset() {
	w.Entities.Clear()
	w.tracker.Reset()
}

// Step runs one frame: updates, movement, then collision notifications.
// Everything happens synchronously on the caller's goroutine.
func (w *World) Step() {
	w.update()
	w.integrate()
	w.collide()
}

func (w *World) update() {
	for _, layer := range []Layer{LayerStatic, LayerDefault, LayerUI} {
		for _, e := range w.Entities.Entities(layer) {
			u, ok := e.(Updater)
			if !ok || !w.Entities.Contains(e, layer) {
				continue
			}
			u.Update()
		}
	}
}

func (w *World) integrate() {
	for _, e := range w.Entities.Entities(LayerDefault) {
		obj := e.Object()
		obj.Box.Pos = obj.Box.Pos.Add(obj.Vel)
	}
}

func (w *World) collide() {
	movers := w.Entities.Entities(LayerDefault)
	statics := w.Entities.Entities(LayerStatic)
	seen := make(map[PairKey]struct{})

	for i, m := range movers {
		for _, s := range statics {
			w.check(m, LayerDefault, s, LayerStatic, seen)
		}
		for _, o := range movers[i+1:] {
			w.check(m, LayerDefault, o, LayerDefault, seen)
		}
	}
	w.tracker.Retain(seen)
}

func (w *World) check(a Entity, la Layer, b Entity, lb Layer, seen map[PairKey]struct{}) {
	// An earlier notification this frame may have removed either party.
	if !w.Entities.Contains(a, la) || !w.Entities.Contains(b, lb) {
		return
	}
	ao, bo := a.Object(), b.Object()
	if !ao.Box.Overlaps(bo.Box) {
		return
	}
	if !accepts(a, b) || !accepts(b, a) {
		return
	}

	key := MakePairKey(ao.ID(), bo.ID())
	seen[key] = struct{}{}
	if !w.tracker.Begin(key) {
		return
	}

	n := ao.Box.ContactNormal(bo.Box)
	if c, ok := a.(Collider); ok {
		c.OnCollisionEnter(b, Collision{Normal: n})
	}
	if c, ok := b.(Collider); ok {
		c.OnCollisionEnter(a, Collision{Normal: n.Flip()})
	}
}

func accepts(e, other Entity) bool {
	if f, ok := e.(CollisionFilter); ok {
		return f.ShouldCollideWith(other)
	}
	return true
}
