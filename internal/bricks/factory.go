package bricks

import "github.com/MattiBlue123/Bricker-Game/internal/core"

// Sample spaces with a known meaning.
const (
	// DefaultSampleSpace gives every special kind a 10% chance and Basic the rest.
	DefaultSampleSpace = 10
	// SpecialSampleSpace draws only the four non-composite special kinds.
	SpecialSampleSpace = 4
	// CompositeSampleSpace draws any special kind, composite included.
	CompositeSampleSpace = 5
	// DefaultMaxDepth bounds composite nesting.
	DefaultMaxDepth = 2
)

// Factory assigns strategies by drawing uniformly from [1, N]:
// 1 puck, 2 extra paddle, 3 exploding, 4 recover life, 5 composite,
// anything higher basic.
type Factory struct {
	env      *Env
	rng      *core.SimpleRNG
	maxDepth int
}

// NewFactory creates a factory over env, drawing from env.RNG.
func NewFactory(env *Env) *Factory {
	depth := env.Settings.MaxDepth
	if depth < 1 {
		depth = DefaultMaxDepth
	}
	return &Factory{env: env, rng: env.RNG, maxDepth: depth}
}

// MaxDepth returns the composite depth limit.
func (f *Factory) MaxDepth() int {
	return f.maxDepth
}

// KindFor maps a draw in [1, N] to a kind.
func KindFor(r int) Kind {
	switch r {
	case 1:
		return KindPuck
	case 2:
		return KindExtraPaddle
	case 3:
		return KindExploding
	case 4:
		return KindRecoverLife
	case 5:
		return KindComposite
	default:
		return KindBasic
	}
}

// Draw picks a kind from sample space n. Non-positive spaces always give Basic.
func (f *Factory) Draw(n int) Kind {
	if n <= 0 {
		return KindBasic
	}
	return KindFor(f.rng.Intn(n) + 1)
}

// New constructs a strategy of the given kind. A composite comes back
// unbuilt at depth 1.
func (f *Factory) New(k Kind) Strategy {
	switch k {
	case KindPuck:
		return NewPuck(f.env)
	case KindExtraPaddle:
		return NewExtraPaddle(f.env)
	case KindExploding:
		return NewExploding(f.env)
	case KindRecoverLife:
		return NewRecoverLife(f.env)
	case KindComposite:
		return newComposite(f, 1)
	default:
		return NewBasic(f.env)
	}
}

// Get draws from sample space n and constructs the result.
func (f *Factory) Get(n int) Strategy {
	return f.New(f.Draw(n))
}

// BuildComposite returns a composite of the given depth with its children already chosen.
func (f *Factory) BuildComposite(depth int) *Composite {
	c := newComposite(f, max(1, depth))
	c.build()
	return c
}
