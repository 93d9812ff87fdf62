package bricks

import "github.com/MattiBlue123/Bricker-Game/internal/engine"

// Composite runs several strategies for one hit. Its children are chosen
// when the brick is first hit; nested composites are one level deeper and
// at the depth limit only non-composite children are drawn.
type Composite struct {
	Basic
	factory  *Factory
	depth    int
	built    bool
	children []Strategy
}

func newComposite(f *Factory, depth int) *Composite {
	return &Composite{Basic: NewBasic(f.env), factory: f, depth: depth}
}

// Depth returns the nesting level, 1 for a composite assigned to a brick.
func (s *Composite) Depth() int {
	return s.depth
}

// Built reports whether the children have been chosen.
func (s *Composite) Built() bool {
	return s.built
}

// Children returns the child strategies in firing order; nil until built.
func (s *Composite) Children() []Strategy {
	return s.children
}

// build chooses the whole subtree at once.
func (s *Composite) build() {
	if s.built {
		return
	}
	s.built = true

	count, space := 2, 4
	if s.depth < s.factory.maxDepth {
		count, space = 3, 5
	}
	s.children = make([]Strategy, 0, count)
	for range count {
		kind := s.factory.Draw(space)
		if kind == KindComposite {
			child := newComposite(s.factory, s.depth+1)
			child.build()
			s.children = append(s.children, child)
			continue
		}
		s.children = append(s.children, s.factory.New(kind))
	}
}

// OnCollision removes the brick once, then fires every child with the same arguments.
func (s *Composite) OnCollision(brick *Brick, other engine.Entity) {
	s.build()
	s.Basic.OnCollision(brick, other)
	for _, c := range s.children {
		c.OnCollision(brick, other)
	}
}

// Kind implements Strategy.
func (*Composite) Kind() Kind { return KindComposite }
