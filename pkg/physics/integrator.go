package physics

import (
	"fmt"
	"strings"
)

// Integrator selects how Step advances positions and velocities.
type Integrator int

const (
	// Leapfrog is kick-drift-kick velocity Verlet. Symplectic and second
	// order, so orbital energy stays bounded over long runs.
	Leapfrog Integrator = iota
	// SymplecticEuler updates velocity first, then position with the new
	// velocity. First order, bounded energy error.
	SymplecticEuler
	// ExplicitEuler updates position with the old velocity, then velocity.
	// Energy drifts without bound; kept for comparisons.
	ExplicitEuler
)

func (k Integrator) String() string {
	switch k {
	case Leapfrog:
		return "leapfrog"
	case SymplecticEuler:
		return "symplectic-euler"
	case ExplicitEuler:
		return "explicit-euler"
	default:
		return fmt.Sprintf("integrator(%d)", int(k))
	}
}

func (k Integrator) valid() bool {
	return k >= Leapfrog && k <= ExplicitEuler
}

// ParseIntegrator maps a name ("leapfrog", "verlet", "symplectic-euler",
// "euler") to an Integrator.
func ParseIntegrator(name string) (Integrator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "leapfrog", "verlet", "velocity-verlet":
		return Leapfrog, nil
	case "symplectic-euler", "semi-implicit-euler":
		return SymplecticEuler, nil
	case "euler", "explicit-euler":
		return ExplicitEuler, nil
	}
	return 0, fmt.Errorf("%w: unknown integrator %q", ErrInvalidConfig, name)
}

// stepLeapfrog:
//
//	v(t+½) = v(t) + a(t)·dt/2
//	x(t+1) = x(t) + v(t+½)·dt
//	v(t+1) = v(t+½) + a(t+1)·dt/2
//
// Half-step velocities stay in s.half so Vel only ever holds full steps.
func (s *GravitySimulator) stepLeapfrog(dt float64) {
	if len(s.half) != len(s.bodies) {
		s.half = make([]Vec2, len(s.bodies))
	}

	s.computeAccelerations()
	for i, b := range s.bodies {
		s.half[i] = b.Vel.Add(b.acc.Scale(0.5 * dt))
		b.Pos = b.Pos.Add(s.half[i].Scale(dt))
	}

	s.computeAccelerations()
	for i, b := range s.bodies {
		b.Vel = s.half[i].Add(b.acc.Scale(0.5 * dt))
	}
}

// stepSymplecticEuler is semi-implicit Euler: velocity first, then position
// from the new velocity.
func (s *GravitySimulator) stepSymplecticEuler(dt float64) {
	s.computeAccelerations()
	for _, b := range s.bodies {
		b.Vel = b.Vel.Add(b.acc.Scale(dt))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}
}

func (s *GravitySimulator) stepExplicitEuler(dt float64) {
	s.computeAccelerations()
	for _, b := range s.bodies {
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		b.Vel = b.Vel.Add(b.acc.Scale(dt))
	}
}
