// Package view holds the window-independent parts of drawing a scene:
// camera transform, starfield layout, graph scaling.
package view

import (
	"math"

	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/physics"
)

const (
	minZoom = 0.05
	maxZoom = 8
)

// Camera maps simulation coordinates (origin at the centre of the scene) to
// screen pixels.
type Camera struct {
	Width, Height int
	Offset        physics.Vec2 // scene point shown at the centre
	Zoom          float64
}

func NewCamera(w, h int) Camera {
	return Camera{Width: w, Height: h, Zoom: 1}
}

// ToScreen returns the screen position of p.
func (c Camera) ToScreen(p physics.Vec2) (float64, float64) {
	z := c.zoom()
	return float64(c.Width)/2 + (p.X-c.Offset.X)*z, float64(c.Height)/2 + (p.Y-c.Offset.Y)*z
}

// ToWorld is the inverse of ToScreen.
func (c Camera) ToWorld(x, y float64) physics.Vec2 {
	z := c.zoom()
	return physics.V((x-float64(c.Width)/2)/z+c.Offset.X, (y-float64(c.Height)/2)/z+c.Offset.Y)
}

// Visible reports whether a circle of radius r around p is at least partly
// on screen, with margin extra pixels.
func (c Camera) Visible(p physics.Vec2, r, margin float64) bool {
	x, y := c.ToScreen(p)
	r = r*c.zoom() + margin
	return x+r >= 0 && y+r >= 0 && x-r <= float64(c.Width) && y-r <= float64(c.Height)
}

// ZoomBy multiplies the zoom by f, keeping it within sensible bounds.
func (c *Camera) ZoomBy(f float64) {
	c.Zoom = math.Min(maxZoom, math.Max(minZoom, c.zoom()*f))
}

// Scale returns the effective zoom factor.
func (c Camera) Scale() float64 { return c.zoom() }

func (c Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

// BodyAt returns the index of the body whose disc contains p, preferring the
// closest centre, or -1.
func BodyAt(bodies []*physics.Body, p physics.Vec2) int {
	hit := -1
	minD := math.Inf(1)
	for i, b := range bodies {
		d := physics.Len(b.Pos.Sub(p))
		if d <= b.Radius && d < minD {
			hit = i
			minD = d
		}
	}
	return hit
}
