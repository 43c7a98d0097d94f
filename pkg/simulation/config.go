package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/assets"
	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/physics"
)

const (
	DefaultDt    = 1.0 / 60
	DefaultMaxDt = 0.05
)

// DefaultColor is used for bodies with a missing or malformed colour.
var DefaultColor = color.RGBA{200, 200, 255, 255}

// --- Scene configuration ---
type EnvironmentConfig struct {
	Name       string       `json:"name"`
	Dt         float64      `json:"dt"`
	G          float64      `json:"g,omitempty"`
	TimeScale  float64      `json:"time_scale,omitempty"`
	MaxDt      float64      `json:"max_dt,omitempty"`
	Integrator string       `json:"integrator,omitempty"`
	AutoOrbit  bool         `json:"auto_orbit,omitempty"`
	Bodies     []BodyConfig `json:"bodies"`
}

type BodyConfig struct {
	Name   string     `json:"name"`
	Mass   float64    `json:"mass"`
	Pos    [2]float64 `json:"pos"`
	Vel    [2]float64 `json:"vel"`
	Color  string     `json:"color"`
	Radius float64    `json:"radius"`
	Trail  int        `json:"trail,omitempty"`

	// OrbitFactor scales the circular speed assigned by auto-orbit;
	// below 1 gives an ellipse. Zero means 1.
	OrbitFactor float64 `json:"orbit_factor,omitempty"`
}

// withDefaults fills the zero-valued tunables.
func (c EnvironmentConfig) withDefaults() EnvironmentConfig {
	if c.Dt == 0 {
		c.Dt = DefaultDt
	}
	if c.G == 0 {
		c.G = physics.DefaultG
	}
	if c.TimeScale == 0 {
		c.TimeScale = 1
	}
	if c.MaxDt == 0 {
		c.MaxDt = DefaultMaxDt
	}
	return c
}

func (c EnvironmentConfig) validate() error {
	if !(c.Dt > 0) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("%w: dt must be positive, got %v", physics.ErrInvalidConfig, c.Dt)
	}
	if !(c.TimeScale > 0) || math.IsInf(c.TimeScale, 0) {
		return fmt.Errorf("%w: time scale must be positive, got %v", physics.ErrInvalidConfig, c.TimeScale)
	}
	if !(c.MaxDt > 0) || math.IsInf(c.MaxDt, 0) {
		return fmt.Errorf("%w: max dt must be positive, got %v", physics.ErrInvalidConfig, c.MaxDt)
	}
	return nil
}

// SetOrbitalVelocities gives every body at rest (except the first, which is
// the central body) the circular speed sqrt(G*M/r) around body 0, scaled by
// its OrbitFactor. The direction is counter-clockwise on screen (y down).
func SetOrbitalVelocities(bodies []BodyConfig, g float64) {
	if len(bodies) == 0 {
		return
	}
	central := bodies[0]
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Vel[0] != 0 || bodies[i].Vel[1] != 0 {
			continue
		}

		dx := bodies[i].Pos[0] - central.Pos[0]
		dy := bodies[i].Pos[1] - central.Pos[1]
		r := math.Hypot(dx, dy)
		if r == 0 {
			continue
		}
		factor := bodies[i].OrbitFactor
		if factor == 0 {
			factor = 1
		}
		v := math.Sqrt(g*central.Mass/r) * factor
		// perpendicular to the radius vector
		bodies[i].Vel[0] = dy / r * v
		bodies[i].Vel[1] = -dx / r * v
	}
}

// Overrides holds scene settings chosen on the command line or in the
// environment. Zero fields keep the scene's own value.
type Overrides struct {
	Integrator string
	TimeScale  float64
	MaxDt      float64
}

// WithOverrides returns c with the non-zero fields of o applied.
func (c EnvironmentConfig) WithOverrides(o Overrides) EnvironmentConfig {
	if o.Integrator != "" {
		c.Integrator = o.Integrator
	}
	if o.TimeScale != 0 {
		c.TimeScale = o.TimeScale
	}
	if o.MaxDt != 0 {
		c.MaxDt = o.MaxDt
	}
	return c
}

// ParseConfig decodes a scene from JSON.
func ParseConfig(data []byte) (EnvironmentConfig, error) {
	var env EnvironmentConfig
	if err := json.Unmarshal(data, &env); err != nil {
		return EnvironmentConfig{}, fmt.Errorf("parse scene: %w", err)
	}
	return env, nil
}

// LoadConfig reads a scene file and builds a simulator from it.
func LoadConfig(path string) (*Simulator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}

	env, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewSimulator(env)
}

// LoadEnvironment builds a simulator from the scene ResolveEnvironment finds.
func LoadEnvironment(name string) (*Simulator, error) {
	env, err := ResolveEnvironment(name)
	if err != nil {
		return nil, err
	}
	return NewSimulator(env)
}

// ResolveEnvironment looks name up as a built-in scene, then a bundled
// asset, then a path to a .json file.
func ResolveEnvironment(name string) (EnvironmentConfig, error) {
	if build, ok := builtins[name]; ok {
		return build(), nil
	}

	data, err := assets.Scene(name)
	if err == nil {
		env, err := ParseConfig(data)
		if err != nil {
			return EnvironmentConfig{}, fmt.Errorf("scene %s: %w", name, err)
		}
		return env, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return EnvironmentConfig{}, fmt.Errorf("scene %s: %w", name, err)
	}

	if strings.HasSuffix(name, ".json") {
		data, err := os.ReadFile(name)
		if err != nil {
			return EnvironmentConfig{}, fmt.Errorf("read scene %s: %w", name, err)
		}
		env, err := ParseConfig(data)
		if err != nil {
			return EnvironmentConfig{}, fmt.Errorf("%s: %w", name, err)
		}
		return env, nil
	}
	return EnvironmentConfig{}, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Environments(), ", "))
}

// Environments lists the scenes LoadEnvironment knows by name.
func Environments() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	for _, name := range assets.Names() {
		if _, dup := builtins[name]; !dup {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// --- Hex colour parser ---
func parseColor(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return DefaultColor
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
