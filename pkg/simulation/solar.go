package simulation

import "github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/physics"

var builtins = map[string]func() EnvironmentConfig{
	"solar": SolarSystem,
}

// SolarSystem is the nine-body toy system centred on the origin. Distances
// are pixels, masses arbitrary, G tuned so Earth at 360 px circles at about
// 20 px/s. Planets start on the +x axis slightly below circular speed, which
// makes the orbits mildly elliptical.
func SolarSystem() EnvironmentConfig {
	planet := func(name string, r, mass, radius, factor float64, hex string) BodyConfig {
		return BodyConfig{
			Name:        name,
			Mass:        mass,
			Pos:         [2]float64{r, 0},
			Color:       hex,
			Radius:      radius,
			Trail:       700,
			OrbitFactor: factor,
		}
	}

	return EnvironmentConfig{
		Name:      "solar",
		Dt:        DefaultDt,
		G:         physics.DefaultG,
		AutoOrbit: true,
		Bodies: []BodyConfig{
			{Name: "Sun", Mass: 1500, Color: "#ffc800", Radius: 150, Trail: 300},
			planet("Earth", 360, 1.0, 8, 0.95, "#50a0ff"),
			planet("Mars", 480, 0.1, 6, 0.97, "#e35335"),
			planet("Mercury", 200, 0.055, 3, 0.97, "#c8c8c8"),
			planet("Venus", 280, 0.82, 8, 0.97, "#ff980f"),
			planet("Jupiter", 570, 2.9, 16, 0.97, "#b4b4b4"),
			planet("Saturn", 700, 2.65, 16, 0.97, "#ff980f"),
			planet("Uranus", 840, 1.3, 16, 0.97, "#6495ed"),
			planet("Neptune", 980, 1.3, 16, 0.97, "#0047ab"),
		},
	}
}
