package engine

import (
	"github.com/MattiBlue123/Bricker-Game/internal/assets"
)

// EntityID identifies an entity within one Collection.
type EntityID uint32

// Object is the common state of every game entity.
// Concrete entities embed it and override the hooks they need.
type Object struct {
	id    EntityID
	tag   string
	Box   Box
	Vel   Vec
	Image assets.Image
}

// NewObject creates an object with top-left corner pos and the given size.
func NewObject(pos, size Vec, img assets.Image) Object {
	return Object{
		Box:   Box{Pos: pos, Size: size},
		Image: img,
	}
}

// Object returns the embedded object; it makes every embedder an Entity.
func (o *Object) Object() *Object {
	return o
}

// ID returns the identifier assigned when the object was first added to a Collection.
func (o *Object) ID() EntityID {
	return o.id
}

// Tag returns the object's tag.
func (o *Object) Tag() string {
	return o.tag
}

// SetTag changes the object's tag.
func (o *Object) SetTag(tag string) {
	o.tag = tag
}

// Center returns the center of the object's box.
func (o *Object) Center() Vec {
	return o.Box.Center()
}

// SetCenter moves the object so that its box is centered on c.
func (o *Object) SetCenter(c Vec) {
	o.Box.Pos = c.Sub(o.Box.Size.Div(2))
}

// Entity is anything that can live in a Collection.
type Entity interface {
	Object() *Object
}

// Collision describes a contact reported to a Collider.
// Normal points from the receiving entity toward the other one.
type Collision struct {
	Normal Normal
}

// Collider receives collision notifications, once per overlap start.
type Collider interface {
	OnCollisionEnter(other Entity, c Collision)
}

// Updater runs once per frame before movement is integrated.
type Updater interface {
	Update()
}

// CollisionFilter lets an entity opt out of collisions with some others.
type CollisionFilter interface {
	ShouldCollideWith(other Entity) bool
}
