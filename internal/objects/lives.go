package objects

import "github.com/MattiBlue123/Bricker-Game/internal/core"

// Lives is the session's life counter.
type Lives struct {
	count int
	max   int
}

// NewLives creates a counter starting at initial, capped at maximum.
func NewLives(initial, maximum int) *Lives {
	maximum = max(1, maximum)
	return &Lives{count: core.Clamp(initial, 0, maximum), max: maximum}
}

// Count returns the remaining lives.
func (l *Lives) Count() int {
	return l.count
}

// Max returns the cap.
func (l *Lives) Max() int {
	return l.max
}

// Gain adds one life unless already at the cap. It reports whether the count changed.
func (l *Lives) Gain() bool {
	if l.count >= l.max {
		return false
	}
	l.count++
	return true
}

// Lose removes one life and returns what remains.
func (l *Lives) Lose() int {
	if l.count > 0 {
		l.count--
	}
	return l.count
}

// Color is the HUD color for the current count: green at 3 or more,
// yellow at 2, red otherwise.
func (l *Lives) Color() core.Color {
	switch {
	case l.count >= 3:
		return core.ColorGreen
	case l.count == 2:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}
