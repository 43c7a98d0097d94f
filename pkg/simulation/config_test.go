package simulation

import (
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/physics"
)

func TestParseColor(t *testing.T) {
	tests := map[string]color.RGBA{
		"#ffc800": {255, 200, 0, 255},
		"#50A0FF": {80, 160, 255, 255},
		"#fff":    {255, 255, 255, 255},
		"":        DefaultColor,
		"red":     DefaultColor,
	}
	for in, want := range tests {
		if got := parseColor(in); got != want {
			t.Errorf("parseColor(%q) = %v, expected %v", in, got, want)
		}
	}
}

func TestSetOrbitalVelocities(t *testing.T) {
	bodies := []BodyConfig{
		{Mass: 1500},
		{Mass: 1, Pos: [2]float64{360, 0}},
		{Mass: 1, Pos: [2]float64{0, 200}, OrbitFactor: 0.5},
		{Mass: 1, Pos: [2]float64{100, 0}, Vel: [2]float64{1, 2}},
	}
	SetOrbitalVelocities(bodies, 100)

	v := math.Sqrt(100 * 1500 / 360.0)
	if math.Abs(bodies[1].Vel[0]) > 1e-12 || math.Abs(bodies[1].Vel[1]+v) > 1e-12 {
		t.Errorf("Expected (0, %v), got %v", -v, bodies[1].Vel)
	}

	v2 := 0.5 * math.Sqrt(100*1500/200.0)
	if math.Abs(bodies[2].Vel[0]-v2) > 1e-12 || math.Abs(bodies[2].Vel[1]) > 1e-12 {
		t.Errorf("Expected (%v, 0), got %v", v2, bodies[2].Vel)
	}

	if bodies[3].Vel != [2]float64{1, 2} {
		t.Errorf("Moving body should keep its velocity, got %v", bodies[3].Vel)
	}
	if bodies[0].Vel != [2]float64{0, 0} {
		t.Errorf("Central body should stay at rest, got %v", bodies[0].Vel)
	}
}

func TestSetOrbitalVelocitiesEmpty(t *testing.T) {
	SetOrbitalVelocities(nil, 100)
}

func TestParseConfig(t *testing.T) {
	data := []byte(`{
		"name": "pair",
		"dt": 0.02,
		"integrator": "symplectic-euler",
		"bodies": [
			{"name": "A", "mass": 10, "pos": [0, 0], "vel": [0, 0], "color": "#ff0000", "radius": 5},
			{"name": "B", "mass": 1, "pos": [50, 0], "vel": [0, 3], "trail": 20}
		]
	}`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "pair" || cfg.Dt != 0.02 || len(cfg.Bodies) != 2 || cfg.Bodies[1].Trail != 20 {
		t.Errorf("Unexpected config: %+v", cfg)
	}

	sim, err := NewSimulator(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if sim.G() != physics.DefaultG {
		t.Errorf("Expected default G, got %v", sim.G())
	}
	if sim.Gravity().Integrator() != physics.SymplecticEuler {
		t.Errorf("Expected symplectic Euler, got %v", sim.Gravity().Integrator())
	}
	if sim.Bodies[0].Color != (color.RGBA{255, 0, 0, 255}) || sim.Bodies[1].Color != DefaultColor {
		t.Errorf("Unexpected colours %v %v", sim.Bodies[0].Color, sim.Bodies[1].Color)
	}
	if sim.Bodies[1].Radius <= 0 {
		t.Errorf("Expected a derived radius, got %v", sim.Bodies[1].Radius)
	}
}

func TestParseConfigInvalidJSON(t *testing.T) {
	if _, err := ParseConfig([]byte("{")); err == nil {
		t.Error("Expected an error")
	}
}

func TestNewSimulatorRejectsInvalidScenes(t *testing.T) {
	ok := BodyConfig{Name: "ok", Mass: 1}
	tests := []struct {
		name string
		cfg  EnvironmentConfig
	}{
		{"no bodies", EnvironmentConfig{Name: "empty"}},
		{"zero mass", EnvironmentConfig{Bodies: []BodyConfig{ok, {Name: "bad"}}}},
		{"negative G", EnvironmentConfig{G: -1, Bodies: []BodyConfig{ok}}},
		{"negative dt", EnvironmentConfig{Dt: -1, Bodies: []BodyConfig{ok}}},
		{"negative time scale", EnvironmentConfig{TimeScale: -2, Bodies: []BodyConfig{ok}}},
		{"negative trail", EnvironmentConfig{Bodies: []BodyConfig{{Mass: 1, Trail: -3}}}},
		{"unknown integrator", EnvironmentConfig{Integrator: "rk4", Bodies: []BodyConfig{ok}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSimulator(tt.cfg); !errors.Is(err, physics.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadEnvironment(t *testing.T) {
	for _, name := range Environments() {
		t.Run(name, func(t *testing.T) {
			sim, err := LoadEnvironment(name)
			if err != nil {
				t.Fatal(err)
			}
			if sim.Name != name {
				t.Errorf("Expected scene %q, got %q", name, sim.Name)
			}
			if len(sim.Bodies) == 0 {
				t.Error("Scene has no bodies")
			}
		})
	}

	if _, err := LoadEnvironment("andromeda"); err == nil {
		t.Error("Expected an error for an unknown scene")
	}
}

func TestEnvironmentsIncludesBundledScenes(t *testing.T) {
	want := map[string]bool{"solar": false, "binary": false, "chaos": false}
	for _, name := range Environments() {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Scene %q missing from %v", name, Environments())
		}
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	data := `{"name": "custom", "bodies": [{"mass": 5}, {"mass": 1, "pos": [30, 40]}], "auto_orbit": true}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	sim, err := LoadEnvironment(path)
	if err != nil {
		t.Fatal(err)
	}
	if sim.Name != "custom" || len(sim.Bodies) != 2 {
		t.Fatalf("Unexpected simulator %q with %d bodies", sim.Name, len(sim.Bodies))
	}
	want := math.Sqrt(physics.DefaultG * 5 / 50)
	if got := physics.Len(sim.Bodies[1].Vel); math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected auto-orbit speed %v, got %v", want, got)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestResolveEnvironmentCanBeOverridden(t *testing.T) {
	env, err := ResolveEnvironment("binary")
	if err != nil {
		t.Fatal(err)
	}
	env.Integrator = "euler"
	env.MaxDt = 0.01

	sim, err := NewSimulator(env)
	if err != nil {
		t.Fatal(err)
	}
	if sim.Gravity().Integrator() != physics.ExplicitEuler || sim.MaxDt != 0.01 {
		t.Errorf("Overrides not applied: %v %v", sim.Gravity().Integrator(), sim.MaxDt)
	}
}

func TestWithOverrides(t *testing.T) {
	env := EnvironmentConfig{Name: "x", Integrator: "euler", TimeScale: 2, MaxDt: 0.01}

	if got := env.WithOverrides(Overrides{}); got.Integrator != "euler" || got.TimeScale != 2 || got.MaxDt != 0.01 {
		t.Errorf("Empty overrides changed the scene: %+v", got)
	}

	got := env.WithOverrides(Overrides{Integrator: "leapfrog", MaxDt: 0.1})
	if got.Integrator != "leapfrog" || got.MaxDt != 0.1 {
		t.Errorf("Overrides not applied: %+v", got)
	}
	if got.TimeScale != 2 {
		t.Errorf("Unset override replaced the time scale: %v", got.TimeScale)
	}
	if env.Integrator != "euler" {
		t.Error("WithOverrides must not modify its receiver")
	}
}
