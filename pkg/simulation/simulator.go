package simulation

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/physics"
)

// --- Main simulator ---

// Simulator is the frame-clock side of a scene: it owns the GravitySimulator
// and turns frame times into physics steps. Bodies is the same slice the
// GravitySimulator advances; read it only between updates.
type Simulator struct {
	Name      string
	Dt        float64
	TimeScale float64
	MaxDt     float64
	Bodies    []*physics.Body

	grav    *physics.GravitySimulator
	paused  bool
	initial EnvironmentConfig
	logger  *slog.Logger
}

// --- Build a simulator from a scene ---
func NewSimulator(cfg EnvironmentConfig) (*Simulator, error) {
	initial := cloneConfig(cfg)

	cfg = cloneConfig(cfg).withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", cfg.Name, err)
	}
	if cfg.AutoOrbit {
		SetOrbitalVelocities(cfg.Bodies, cfg.G)
	}

	kind, err := physics.ParseIntegrator(cfg.Integrator)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", cfg.Name, err)
	}

	bodies := make([]*physics.Body, len(cfg.Bodies))
	for i, bc := range cfg.Bodies {
		name := bc.Name
		if name == "" {
			name = fmt.Sprintf("body-%d", i)
		}
		b, err := physics.NewBody(name, bc.Mass,
			physics.V(bc.Pos[0], bc.Pos[1]),
			physics.V(bc.Vel[0], bc.Vel[1]),
			bc.Trail)
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", cfg.Name, err)
		}
		b.Color = parseColor(bc.Color)
		b.Radius = bc.Radius
		if b.Radius <= 0 {
			b.Radius = radiusForMass(bc.Mass)
		}
		bodies[i] = b
	}

	grav, err := physics.NewGravitySimulator(bodies, cfg.G, physics.WithIntegrator(kind))
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", cfg.Name, err)
	}

	s := &Simulator{
		Name:      cfg.Name,
		Dt:        cfg.Dt,
		TimeScale: cfg.TimeScale,
		MaxDt:     cfg.MaxDt,
		Bodies:    bodies,
		grav:      grav,
		initial:   initial,
		logger:    slog.With("component", "simulation", "scene", cfg.Name),
	}
	s.logger.Debug("Scene loaded",
		"bodies", len(bodies),
		"g", cfg.G,
		"dt", cfg.Dt,
		"integrator", kind.String(),
	)
	return s, nil
}

// Update advances one fixed frame of Dt scaled by TimeScale. No-op while paused.
func (s *Simulator) Update() {
	s.UpdateFrame(s.Dt)
}

// UpdateFrame advances by a measured frame time. The scaled step is clamped
// to MaxDt so a frame hitch cannot blow up the orbits. No-op while paused.
func (s *Simulator) UpdateFrame(frameDt float64) {
	if s.paused {
		return
	}
	s.grav.Step(s.clamp(frameDt * s.TimeScale))
}

// Advance performs exactly one step of Dt, paused or not.
func (s *Simulator) Advance() {
	s.grav.Step(s.clamp(s.Dt * s.TimeScale))
}

func (s *Simulator) clamp(dt float64) float64 {
	if dt > s.MaxDt {
		s.logger.Debug("Clamping frame step", "dt", dt, "max_dt", s.MaxDt)
		return s.MaxDt
	}
	return dt
}

func (s *Simulator) Pause()          { s.paused = true }
func (s *Simulator) Resume()         { s.paused = false }
func (s *Simulator) TogglePause()    { s.paused = !s.paused }
func (s *Simulator) Paused() bool    { return s.paused }
func (s *Simulator) Time() float64   { return s.grav.Time() }
func (s *Simulator) Steps() uint64   { return s.grav.Steps() }
func (s *Simulator) G() float64      { return s.grav.G() }
func (s *Simulator) Energy() float64 { return s.grav.Energy() }

// Gravity exposes the underlying physics simulator.
func (s *Simulator) Gravity() *physics.GravitySimulator { return s.grav }

// Reset rebuilds the scene from the configuration it was created with.
// The time scale and the paused state carry over. Bodies is replaced, so
// renderers must re-read it.
func (s *Simulator) Reset() error {
	fresh, err := NewSimulator(s.initial)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	fresh.TimeScale = s.TimeScale
	fresh.paused = s.paused
	*s = *fresh
	s.logger.Info("Simulation reset")
	return nil
}

// radiusForMass picks a draw radius when the scene gives none.
func radiusForMass(mass float64) float64 {
	return math.Max(3, 2*math.Cbrt(mass))
}

func cloneConfig(cfg EnvironmentConfig) EnvironmentConfig {
	cfg.Bodies = append([]BodyConfig(nil), cfg.Bodies...)
	return cfg
}
