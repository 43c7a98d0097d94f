package physics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// KineticEnergy returns Σ ½·m·|v|².
func KineticEnergy(bodies []*Body) float64 {
	terms := make([]float64, len(bodies))
	for i, b := range bodies {
		terms[i] = 0.5 * b.mass * LenSq(b.Vel)
	}
	return floats.Sum(terms)
}

// PotentialEnergy returns the softened pairwise potential
// Σ -G·m_i·m_j / sqrt(d² + ε²), consistent with the force law used by Step.
// Coincident pairs contribute nothing, matching the zero-force convention.
func PotentialEnergy(bodies []*Body, g float64) float64 {
	var terms []float64
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			d2 := LenSq(bodies[j].Pos.Sub(bodies[i].Pos))
			if d2 == 0 {
				continue
			}
			terms = append(terms, -g*bodies[i].mass*bodies[j].mass/math.Sqrt(d2+SofteningSquared))
		}
	}
	return floats.Sum(terms)
}

// TotalEnergy returns kinetic plus potential energy.
func TotalEnergy(bodies []*Body, g float64) float64 {
	return KineticEnergy(bodies) + PotentialEnergy(bodies, g)
}

// Momentum returns Σ m·v.
func Momentum(bodies []*Body) Vec2 {
	px := make([]float64, len(bodies))
	py := make([]float64, len(bodies))
	for i, b := range bodies {
		px[i] = b.mass * b.Vel.X
		py[i] = b.mass * b.Vel.Y
	}
	return Vec2{X: floats.Sum(px), Y: floats.Sum(py)}
}

// CenterOfMass returns the mass-weighted mean position. It returns the zero
// vector for an empty set.
func CenterOfMass(bodies []*Body) Vec2 {
	if len(bodies) == 0 {
		return Vec2{}
	}
	xs := make([]float64, len(bodies))
	ys := make([]float64, len(bodies))
	ms := make([]float64, len(bodies))
	for i, b := range bodies {
		xs[i] = b.Pos.X
		ys[i] = b.Pos.Y
		ms[i] = b.mass
	}
	total := floats.Sum(ms)
	return Vec2{X: floats.Dot(xs, ms) / total, Y: floats.Dot(ys, ms) / total}
}

// Energy is the simulator's current total energy.
func (s *GravitySimulator) Energy() float64 {
	return TotalEnergy(s.bodies, s.g)
}

// Momentum is the simulator's current total momentum.
func (s *GravitySimulator) Momentum() Vec2 {
	return Momentum(s.bodies)
}
