package engine

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Layer groups entities by role. The world only moves Default entities;
// Static entities are obstacles; Background and UI are drawn but never collide.
type Layer int

const (
	LayerBackground Layer = iota
	LayerStatic
	LayerDefault
	LayerUI
	layerCount
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerStatic:
		return "static"
	case LayerDefault:
		return "default"
	case LayerUI:
		return "ui"
	default:
		return "unknown"
	}
}

type layerSet struct {
	byID  *intmap.Map[EntityID, Entity]
	order []EntityID
}

func newLayerSet() *layerSet {
	return &layerSet{byID: intmap.New[EntityID, Entity](64)}
}

// Collection holds the entities of one session, per layer, in insertion order.
type Collection struct {
	layers [layerCount]*layerSet
	nextID EntityID
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	c := &Collection{}
	for i := range c.layers {
		c.layers[i] = newLayerSet()
	}
	return c
}

func (c *Collection) set(layer Layer) *layerSet {
	if layer < 0 || layer >= layerCount {
		return nil
	}
	return c.layers[layer]
}

// Add inserts an entity into a layer. Entities without an ID get one here.
// Adding an entity that is already in the layer is a no-op.
func (c *Collection) Add(e Entity, layer Layer) {
	s := c.set(layer)
	if s == nil {
		return
	}
	obj := e.Object()
	if obj.id == 0 {
		c.nextID++
		obj.id = c.nextID
	}
	if _, ok := s.byID.Get(obj.id); ok {
		return
	}
	s.byID.Put(obj.id, e)
	s.order = append(s.order, obj.id)
}

// Remove deletes an entity from a layer and reports whether it was present.
func (c *Collection) Remove(e Entity, layer Layer) bool {
	s := c.set(layer)
	if s == nil {
		return false
	}
	id := e.Object().id
	if id == 0 {
		return false
	}
	if _, ok := s.byID.Get(id); !ok {
		return false
	}
	s.byID.Del(id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

// Contains reports whether the entity is in the layer.
func (c *Collection) Contains(e Entity, layer Layer) bool {
	s := c.set(layer)
	if s == nil || e.Object().id == 0 {
		return false
	}
	_, ok := s.byID.Get(e.Object().id)
	return ok
}

// Len returns the number of entities in a layer.
func (c *Collection) Len(layer Layer) int {
	s := c.set(layer)
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Entities returns a snapshot of a layer in insertion order.
// The snapshot stays valid while the collection is mutated.
func (c *Collection) Entities(layer Layer) []Entity {
	s := c.set(layer)
	if s == nil {
		return nil
	}
	out := make([]Entity, 0, len(s.order))
	for _, id := range s.order {
		if e, ok := s.byID.Get(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// Each calls fn for every entity of a layer until fn returns false.
// It iterates a snapshot, so fn may add or remove entities.
func (c *Collection) Each(layer Layer, fn func(Entity) bool) {
	for _, e := range c.Entities(layer) {
		if !fn(e) {
			return
		}
	}
}

// Clear removes every entity from every layer.
func (c *Collection) Clear() {
	for _, s := range c.layers {
		s.byID.Clear()
		s.order = s.order[:0]
	}
}
