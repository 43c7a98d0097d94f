package physics

import (
	"fmt"
	"image/color"
)

// --- Physical body ---

// Body is one simulated mass. Pos and Vel are written by GravitySimulator
// during Step; everything else a renderer needs (Name, Color, Radius, Trail)
// is display-only and never feeds back into the physics.
type Body struct {
	Name   string
	Color  color.RGBA
	Radius float64 // draw radius in px

	Pos Vec2
	Vel Vec2

	mass  float64
	acc   Vec2 // simulator-private, overwritten by every acceleration pass
	trail *Trail
}

// NewBody creates a body. mass must be positive and finite; trailCapacity
// must not be negative (0 disables the trail).
func NewBody(name string, mass float64, pos, vel Vec2, trailCapacity int) (*Body, error) {
	if !(mass > 0) || !isFinite(mass) {
		return nil, fmt.Errorf("%w: body %q: mass must be positive, got %v", ErrInvalidConfig, name, mass)
	}
	if trailCapacity < 0 {
		return nil, fmt.Errorf("%w: body %q: negative trail capacity %d", ErrInvalidConfig, name, trailCapacity)
	}
	if !isFinite(pos.X) || !isFinite(pos.Y) || !isFinite(vel.X) || !isFinite(vel.Y) {
		return nil, fmt.Errorf("%w: body %q: non-finite initial state", ErrInvalidConfig, name)
	}
	return &Body{
		Name:  name,
		Pos:   pos,
		Vel:   vel,
		mass:  mass,
		trail: NewTrail(trailCapacity),
	}, nil
}

// Mass returns the body's mass.
func (b *Body) Mass() float64 { return b.mass }

// Acceleration returns the acceleration from the most recent pass.
func (b *Body) Acceleration() Vec2 { return b.acc }

// ResetAcceleration zeroes the accumulated acceleration.
func (b *Body) ResetAcceleration() { b.acc = Vec2{} }

// AccumulateAcceleration adds delta to the accumulated acceleration.
func (b *Body) AccumulateAcceleration(delta Vec2) { b.acc = b.acc.Add(delta) }

// Trail returns the recorded trail points, oldest first.
func (b *Body) Trail() []Vec2 {
	if b.trail == nil {
		return nil
	}
	return b.trail.Points()
}

// TrailLen returns the number of recorded trail points.
func (b *Body) TrailLen() int {
	if b.trail == nil {
		return 0
	}
	return b.trail.Len()
}

// TrailCapacity returns the maximum number of trail points.
func (b *Body) TrailCapacity() int {
	if b.trail == nil {
		return 0
	}
	return b.trail.Cap()
}

// ClearTrail drops all recorded trail points.
func (b *Body) ClearTrail() {
	if b.trail != nil {
		b.trail.Reset()
	}
}

func (b *Body) recordTrail() {
	if b.trail == nil || b.trail.Cap() == 0 {
		return
	}
	b.trail.Push(roundVec(b.Pos))
}
