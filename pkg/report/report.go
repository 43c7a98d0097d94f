// Package report runs a scene without a window and summarises how well the
// integrator held energy and momentum.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/physics"
	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/simulation"
)

type Result struct {
	Scene      string
	Integrator string
	Steps      int
	Dt         float64

	InitialEnergy float64
	FinalEnergy   float64
	// MaxDrift is the largest |E-E0|/|E0| seen.
	MaxDrift      float64
	MomentumDrift float64

	// Drift holds sampled relative energy drift, in percent.
	Drift []float64
}

// Run advances sim by steps fixed steps, sampling the energy drift about
// samples times.
func Run(sim *simulation.Simulator, steps, samples int) Result {
	if samples < 1 {
		samples = 1
	}
	every := steps / samples
	if every < 1 {
		every = 1
	}

	grav := sim.Gravity()
	e0 := grav.Energy()
	p0 := grav.Momentum()

	res := Result{
		Scene:         sim.Name,
		Integrator:    grav.Integrator().String(),
		Steps:         steps,
		Dt:            sim.Dt,
		InitialEnergy: e0,
		Drift:         []float64{0},
	}

	for i := 1; i <= steps; i++ {
		sim.Advance()

		d := relDrift(grav.Energy(), e0)
		res.MaxDrift = math.Max(res.MaxDrift, d)
		if i%every == 0 {
			res.Drift = append(res.Drift, d*100)
		}
	}

	res.FinalEnergy = grav.Energy()
	res.MomentumDrift = physics.Len(grav.Momentum().Sub(p0))
	return res
}

func relDrift(e, e0 float64) float64 {
	if e0 == 0 {
		return math.Abs(e)
	}
	return math.Abs(e-e0) / math.Abs(e0)
}

// Chart plots the sampled drift.
func (r Result) Chart(width, height int) string {
	return asciigraph.Plot(r.Drift,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("energy drift %% (%s, %d steps)", r.Integrator, r.Steps)),
	)
}

func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scene:          %s\n", r.Scene)
	fmt.Fprintf(&b, "integrator:     %s\n", r.Integrator)
	fmt.Fprintf(&b, "steps:          %d x %.6gs = %.6gs\n", r.Steps, r.Dt, float64(r.Steps)*r.Dt)
	fmt.Fprintf(&b, "energy:         %.9g -> %.9g\n", r.InitialEnergy, r.FinalEnergy)
	fmt.Fprintf(&b, "max drift:      %.6g%%\n", r.MaxDrift*100)
	fmt.Fprintf(&b, "momentum drift: %.3g\n", r.MomentumDrift)
	return b.String()
}
