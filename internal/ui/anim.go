package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/sndkit/audiotui/internal/theme"
)

// DefaultFPS is the frame rate widget animations step at.
const DefaultFPS = 60

// Tween animates a scalar toward a target using the spring declared by a
// Feel's motion spec. Widgets keep one per animated property; stepping it
// every frame converges on the target with the Feel's character, so a press
// lands the same way on every control sharing that Feel.
type Tween struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewTween builds a tween at rest at zero.
func NewTween(m theme.MotionSpec) *Tween {
	return &Tween{spring: m.Spring(DefaultFPS)}
}

// SetTarget retargets the spring without resetting position, so an
// in-flight transition redirects smoothly.
func (t *Tween) SetTarget(v float64) { t.target = v }

// Value returns the current position.
func (t *Tween) Value() float64 { return t.pos }

// Step advances one frame and returns the new position.
func (t *Tween) Step() float64 {
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.target)
	return t.pos
}

// Settled reports whether the spring has converged on its target.
func (t *Tween) Settled() bool {
	return math.Abs(t.pos-t.target) < 0.001 && math.Abs(t.vel) < 0.001
}
