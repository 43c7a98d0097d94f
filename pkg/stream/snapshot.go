package stream

import (
	"fmt"

	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/physics"
	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/simulation"
)

const MessageTypeSnapshot = "snapshot"

// BodyState is the wire form of one body.
type BodyState struct {
	Name   string       `json:"name"`
	Mass   float64      `json:"mass"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	VX     float64      `json:"vx"`
	VY     float64      `json:"vy"`
	Radius float64      `json:"radius"`
	Color  string       `json:"color"`
	Trail  [][2]float64 `json:"trail,omitempty"`
}

// Snapshot is the state of a whole scene after a step.
type Snapshot struct {
	Type   string      `json:"type"`
	Scene  string      `json:"scene"`
	Time   float64     `json:"time"`
	Step   uint64      `json:"step"`
	Paused bool        `json:"paused"`
	Energy float64     `json:"energy"`
	Bodies []BodyState `json:"bodies"`
}

// NewSnapshot copies the simulator state. Call it between steps only.
func NewSnapshot(sim *simulation.Simulator, withTrails bool) Snapshot {
	snap := Snapshot{
		Type:   MessageTypeSnapshot,
		Scene:  sim.Name,
		Time:   sim.Time(),
		Step:   sim.Steps(),
		Paused: sim.Paused(),
		Energy: sim.Energy(),
		Bodies: make([]BodyState, len(sim.Bodies)),
	}
	for i, b := range sim.Bodies {
		snap.Bodies[i] = bodyState(b, withTrails)
	}
	return snap
}

func bodyState(b *physics.Body, withTrail bool) BodyState {
	s := BodyState{
		Name:   b.Name,
		Mass:   b.Mass(),
		X:      b.Pos.X,
		Y:      b.Pos.Y,
		VX:     b.Vel.X,
		VY:     b.Vel.Y,
		Radius: b.Radius,
		Color:  fmt.Sprintf("#%02x%02x%02x", b.Color.R, b.Color.G, b.Color.B),
	}
	if withTrail {
		pts := b.Trail()
		s.Trail = make([][2]float64, len(pts))
		for i, p := range pts {
			s.Trail[i] = [2]float64{p.X, p.Y}
		}
	}
	return s
}
