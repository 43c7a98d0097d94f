package simulation

import (
	"math"
	"testing"

	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/physics"
)

func newSolar(t *testing.T) *Simulator {
	t.Helper()
	sim, err := NewSimulator(SolarSystem())
	if err != nil {
		t.Fatal(err)
	}
	return sim
}

func TestSolarSystemScene(t *testing.T) {
	sim := newSolar(t)
	if len(sim.Bodies) != 9 {
		t.Fatalf("Expected 9 bodies, got %d", len(sim.Bodies))
	}
	sun, earth := sim.Bodies[0], sim.Bodies[1]
	if sun.Name != "Sun" || sun.Mass() != 1500 || sun.Vel != physics.V(0, 0) {
		t.Errorf("Unexpected sun: %+v", sun)
	}
	want := 0.95 * math.Sqrt(100*1500/360.0)
	if math.Abs(earth.Vel.Y+want) > 1e-12 || earth.Vel.X != 0 {
		t.Errorf("Expected Earth velocity (0, %v), got %v", -want, earth.Vel)
	}
	if earth.TrailCapacity() != 700 || sun.TrailCapacity() != 300 {
		t.Errorf("Unexpected trail capacities %d, %d", earth.TrailCapacity(), sun.TrailCapacity())
	}
}

func TestSolarSystemStaysBound(t *testing.T) {
	sim := newSolar(t)
	e0 := sim.Energy()
	for i := 0; i < 3000; i++ {
		sim.Update()
	}
	if d := math.Abs(sim.Energy()-e0) / math.Abs(e0); d > 0.01 {
		t.Errorf("Energy drifted by %.3g%%", d*100)
	}
	for _, b := range sim.Bodies[1:] {
		if r := physics.Len(b.Pos.Sub(sim.Bodies[0].Pos)); r > 2000 {
			t.Errorf("%s escaped to r=%v", b.Name, r)
		}
	}
}

func TestUpdateAdvancesByDt(t *testing.T) {
	sim := newSolar(t)
	sim.Update()
	sim.Update()
	if sim.Steps() != 2 || math.Abs(sim.Time()-2*DefaultDt) > 1e-15 {
		t.Errorf("Expected 2 steps at t=%v, got %d at t=%v", 2*DefaultDt, sim.Steps(), sim.Time())
	}
}

func TestPauseAndAdvance(t *testing.T) {
	sim := newSolar(t)
	sim.Pause()
	before := sim.Bodies[1].Pos

	sim.Update()
	sim.UpdateFrame(0.1)
	if sim.Bodies[1].Pos != before || sim.Steps() != 0 {
		t.Fatal("Paused simulator moved")
	}

	sim.Advance()
	if sim.Steps() != 1 || sim.Bodies[1].Pos == before {
		t.Error("Advance should step while paused")
	}

	sim.TogglePause()
	if sim.Paused() {
		t.Error("Expected simulator to be running")
	}
	sim.Resume()
	sim.Update()
	if sim.Steps() != 2 {
		t.Errorf("Expected 2 steps, got %d", sim.Steps())
	}
}

func TestUpdateFrameClampsLongFrames(t *testing.T) {
	sim := newSolar(t)
	sim.UpdateFrame(2.0)
	if sim.Time() != DefaultMaxDt {
		t.Errorf("Expected clamped step %v, got %v", DefaultMaxDt, sim.Time())
	}
}

func TestUpdateFrameTimeScale(t *testing.T) {
	sim := newSolar(t)
	sim.TimeScale = 2
	sim.UpdateFrame(0.01)
	if math.Abs(sim.Time()-0.02) > 1e-15 {
		t.Errorf("Expected t=0.02, got %v", sim.Time())
	}
}

func TestUpdateFrameIgnoresStalledClock(t *testing.T) {
	sim := newSolar(t)
	sim.UpdateFrame(0)
	sim.UpdateFrame(-0.5)
	if sim.Steps() != 0 {
		t.Errorf("Expected no steps, got %d", sim.Steps())
	}
}

func TestReset(t *testing.T) {
	sim := newSolar(t)
	start := sim.Bodies[1].Pos
	startVel := sim.Bodies[1].Vel
	for i := 0; i < 100; i++ {
		sim.Update()
	}
	sim.Pause()
	sim.TimeScale = 3

	if err := sim.Reset(); err != nil {
		t.Fatal(err)
	}
	if sim.Time() != 0 || sim.Steps() != 0 {
		t.Errorf("Expected a fresh clock, got t=%v steps=%d", sim.Time(), sim.Steps())
	}
	if !sim.Paused() {
		t.Error("Reset while paused should stay paused")
	}
	if sim.Bodies[1].Pos != start || sim.Bodies[1].Vel != startVel {
		t.Errorf("Earth not restored: pos=%v vel=%v", sim.Bodies[1].Pos, sim.Bodies[1].Vel)
	}
	if sim.Bodies[1].TrailLen() != 0 {
		t.Errorf("Expected empty trail after reset, got %d points", sim.Bodies[1].TrailLen())
	}
	if sim.TimeScale != 3 {
		t.Errorf("Reset should keep the time scale, got %v", sim.TimeScale)
	}
}

func TestResetKeepsRunningSimulationRunning(t *testing.T) {
	sim := newSolar(t)
	sim.Update()
	if err := sim.Reset(); err != nil {
		t.Fatal(err)
	}
	if sim.Paused() {
		t.Fatal("Reset should not pause a running simulation")
	}
	sim.Update()
	if sim.Steps() != 1 {
		t.Errorf("Expected one step after reset, got %d", sim.Steps())
	}
}

func TestResetWhilePausedHoldsTheStartState(t *testing.T) {
	sim := newSolar(t)
	start := sim.Bodies[1].Pos
	sim.Update()
	sim.Pause()
	if err := sim.Reset(); err != nil {
		t.Fatal(err)
	}
	sim.UpdateFrame(1.0 / 60)
	if sim.Steps() != 0 || sim.Bodies[1].Pos != start {
		t.Errorf("Expected no motion while paused after reset, got %d steps", sim.Steps())
	}
}
