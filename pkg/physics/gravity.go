package physics

import (
	"fmt"
	"math"
)

const (
	// DefaultG suits pixel distances and arbitrary mass units: a 1500 mass
	// at 360 px gives an orbital speed of about 20 px/s.
	DefaultG = 100.0

	// SofteningSquared is added to every squared separation so a close
	// encounter cannot produce an unbounded acceleration.
	SofteningSquared = 1.0
)

// GravitySimulator advances a fixed set of bodies under mutual gravity.
//
// The body slice is shared with the caller, not copied: renderers read the
// same *Body values between calls to Step. Step must not overlap with reads
// or external writes of body state.
type GravitySimulator struct {
	bodies     []*Body
	g          float64
	integrator Integrator

	half  []Vec2 // leapfrog half-step velocities, one per body
	steps uint64
	time  float64
}

// Option configures a GravitySimulator.
type Option func(*GravitySimulator)

// WithIntegrator selects the time-stepping scheme. The default is Leapfrog.
func WithIntegrator(kind Integrator) Option {
	return func(s *GravitySimulator) {
		s.integrator = kind
	}
}

// NewGravitySimulator validates the body set and gravitational constant.
// Errors wrap ErrInvalidConfig.
func NewGravitySimulator(bodies []*Body, g float64, opts ...Option) (*GravitySimulator, error) {
	if !(g > 0) || !isFinite(g) {
		return nil, fmt.Errorf("%w: gravitational constant must be positive, got %v", ErrInvalidConfig, g)
	}
	if len(bodies) == 0 {
		return nil, fmt.Errorf("%w: no bodies", ErrInvalidConfig)
	}

	seen := make(map[*Body]int, len(bodies))
	for i, b := range bodies {
		if b == nil {
			return nil, fmt.Errorf("%w: body %d is nil", ErrInvalidConfig, i)
		}
		if !(b.mass > 0) || !isFinite(b.mass) {
			return nil, fmt.Errorf("%w: body %d (%q): mass must be positive, got %v", ErrInvalidConfig, i, b.Name, b.mass)
		}
		if j, dup := seen[b]; dup {
			return nil, fmt.Errorf("%w: body %d (%q) is the same body as %d", ErrInvalidConfig, i, b.Name, j)
		}
		seen[b] = i
	}

	s := &GravitySimulator{
		bodies:     bodies,
		g:          g,
		integrator: Leapfrog,
		half:       make([]Vec2, len(bodies)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.integrator.valid() {
		return nil, fmt.Errorf("%w: unknown integrator %d", ErrInvalidConfig, int(s.integrator))
	}
	return s, nil
}

// Bodies returns the simulated bodies. The slice is shared; do not modify it.
func (s *GravitySimulator) Bodies() []*Body { return s.bodies }

// G returns the gravitational constant.
func (s *GravitySimulator) G() float64 { return s.g }

// Integrator returns the configured time-stepping scheme.
func (s *GravitySimulator) Integrator() Integrator { return s.integrator }

// Steps returns how many steps have advanced the bodies.
func (s *GravitySimulator) Steps() uint64 { return s.steps }

// Time returns the total simulated time.
func (s *GravitySimulator) Time() float64 { return s.time }

// computeAccelerations recomputes every body's acceleration from the current
// positions. Each pair is visited once and its contribution applied with
// opposite signs, so internal forces cancel exactly up to rounding.
//
// Two bodies at exactly the same point exert no force on each other. The
// softened formula would give a tiny nonzero value there; the zero is kept
// as the contract so runs stay reproducible.
func (s *GravitySimulator) computeAccelerations() {
	for _, b := range s.bodies {
		b.ResetAcceleration()
	}

	n := len(s.bodies)
	for i := 0; i < n; i++ {
		bi := s.bodies[i]
		for j := i + 1; j < n; j++ {
			bj := s.bodies[j]

			d := bj.Pos.Sub(bi.Pos)
			d2 := LenSq(d)

			invDistCubed := 0.0
			if d2 > 0 {
				invDistCubed = math.Pow(d2+SofteningSquared, -1.5)
			}

			f := d.Scale(s.g * invDistCubed)
			bi.AccumulateAcceleration(f.Scale(bj.mass))
			bj.AccumulateAcceleration(f.Scale(-bi.mass))
		}
	}
}

// Step advances every body by dt using the configured integrator, then
// records trail points. dt <= 0 (a paused or stalled clock) leaves all state
// untouched. dt is not clamped: very large steps give unstable orbits.
func (s *GravitySimulator) Step(dt float64) {
	if !(dt > 0) || len(s.bodies) == 0 {
		return
	}

	switch s.integrator {
	case SymplecticEuler:
		s.stepSymplecticEuler(dt)
	case ExplicitEuler:
		s.stepExplicitEuler(dt)
	default:
		s.stepLeapfrog(dt)
	}

	for _, b := range s.bodies {
		b.recordTrail()
	}
	s.steps++
	s.time += dt
}
