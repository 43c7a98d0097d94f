package render

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/physics"
	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/simulation"
	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/view"
)

const (
	graphW      = 360
	graphH      = 120
	historySize = 600
	trailAlpha  = 150
)

var (
	background = color.RGBA{0, 0, 0, 255}
	starColor  = color.RGBA{255, 255, 255, 255}
)

type Options struct {
	Width, Height int
	Stars         int
	Seed          int64

	// OnFrame runs after every frame that advanced the simulation.
	OnFrame func(*simulation.Simulator)
}

// Game drives a Simulator from ebiten's update loop and draws it.
type Game struct {
	sim  *simulation.Simulator
	cam  view.Camera
	opts Options

	stars   []view.Star
	starImg *ebiten.Image

	energy *view.History
	e0     float64

	showHelp  bool
	showGraph bool
	logger    *slog.Logger
}

func NewGame(sim *simulation.Simulator, opts Options) *Game {
	g := &Game{
		sim:       sim,
		cam:       view.NewCamera(opts.Width, opts.Height),
		opts:      opts,
		stars:     view.GenerateStars(rand.New(rand.NewSource(opts.Seed)), opts.Width, opts.Height, opts.Stars, starColor),
		energy:    view.NewHistory(historySize),
		e0:        sim.Energy(),
		showHelp:  true,
		showGraph: true,
		logger:    slog.With("component", "render"),
	}
	return g
}

// Update ---
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.TogglePause()
		g.logger.Debug("Pause toggled", "paused", g.sim.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGraph = !g.showGraph
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			g.logger.Error("Reset failed", "error", err)
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.cam.Offset = physics.CenterOfMass(g.sim.Bodies)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		g.cam.Offset = physics.Vec2{}
		g.cam.Zoom = 1
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.cam.ZoomBy(math.Pow(1.1, dy))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.sim.TimeScale *= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.sim.TimeScale /= 2
	}

	if g.sim.Paused() {
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			g.sim.Advance()
			g.afterStep()
		}
		return nil
	}

	g.sim.UpdateFrame(1 / float64(ebiten.TPS()))
	g.afterStep()
	return nil
}

func (g *Game) afterStep() {
	g.energy.Add(view.DriftPercent(g.sim.Energy(), g.e0))
	if g.opts.OnFrame != nil {
		g.opts.OnFrame(g.sim)
	}
}

func (g *Game) reset() error {
	if err := g.sim.Reset(); err != nil {
		return err
	}
	g.energy.Reset()
	g.e0 = g.sim.Energy()
	return nil
}

// Draw ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.drawStars(screen)

	for _, b := range g.sim.Bodies {
		g.drawTrail(screen, b)
	}
	for _, b := range g.sim.Bodies {
		if !g.cam.Visible(b.Pos, b.Radius, 2) {
			continue
		}
		x, y := g.cam.ToScreen(b.Pos)
		r := math.Max(1, b.Radius*g.cam.Scale())
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), b.Color, true)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Env: %s\nPaused: %v\nt = %.1fs  x%.3g\nTPS: %.0f",
		g.sim.Name, g.sim.Paused(), g.sim.Time(), g.sim.TimeScale, ebiten.ActualTPS()))

	if g.showHelp {
		drawShortcuts(screen)
	}
	if g.showGraph {
		drawGraph(screen, g.energy.Values(), g.opts.Width-graphW-16, g.opts.Height-graphH-16, graphW, graphH,
			color.RGBA{100, 100, 255, 255}, "Energy drift %")
	}
	if g.sim.Paused() {
		g.drawTooltip(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

func (g *Game) drawStars(screen *ebiten.Image) {
	if len(g.stars) == 0 {
		return
	}
	if g.starImg == nil {
		g.starImg = ebiten.NewImage(g.opts.Width, g.opts.Height)
		for _, s := range g.stars {
			vector.DrawFilledRect(g.starImg, float32(s.X), float32(s.Y), float32(s.Size), float32(s.Size), s.Color, false)
		}
	}
	screen.DrawImage(g.starImg, nil)
}

func (g *Game) drawTrail(screen *ebiten.Image, b *physics.Body) {
	pts := b.Trail()
	if len(pts) < 2 {
		return
	}
	clr := color.NRGBA{R: b.Color.R, G: b.Color.G, B: b.Color.B, A: trailAlpha}
	px, py := g.cam.ToScreen(pts[0])
	for _, p := range pts[1:] {
		x, y := g.cam.ToScreen(p)
		vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 1, clr, true)
		px, py = x, y
	}
}

// drawTooltip shows the state of the body under the cursor.
func (g *Game) drawTooltip(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	i := view.BodyAt(g.sim.Bodies, g.cam.ToWorld(float64(mx), float64(my)))
	if i < 0 {
		return
	}
	b := g.sim.Bodies[i]
	lines := []string{
		b.Name,
		fmt.Sprintf("Mass: %.3e", b.Mass()),
		fmt.Sprintf("Pos: (%.2f, %.2f)", b.Pos.X, b.Pos.Y),
		fmt.Sprintf("Vel: (%.2f, %.2f)", b.Vel.X, b.Vel.Y),
		fmt.Sprintf("Speed: %.2f", physics.Len(b.Vel)),
		fmt.Sprintf("Trail: %d/%d", b.TrailLen(), b.TrailCapacity()),
	}
	drawPanel(screen, lines, mx+12, my+12)
}

func drawShortcuts(screen *ebiten.Image) {
	drawPanel(screen, []string{
		"P / Space  pause",
		"N          step (paused)",
		"R          reset",
		"+ / -      time scale",
		"Wheel      zoom",
		"C / 0      centre / home",
		"G          energy graph",
		"H          help",
		"Q / Esc    quit",
	}, 12, 100)
}

func drawPanel(screen *ebiten.Image, lines []string, x, y int) {
	const (
		pad   = 6
		charW = 7
		lineH = 13
	)
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	w := float32(maxLen*charW + pad*2)
	h := float32(len(lines)*lineH + pad*2)
	vector.DrawFilledRect(screen, float32(x), float32(y), w, h, color.RGBA{10, 10, 10, 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), w, h, 1, color.RGBA{60, 60, 70, 200}, false)
	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, x+pad, y+pad+(i+1)*lineH-2, color.RGBA{220, 220, 220, 255})
	}
}

// drawGraph draws an auto-scaled line chart of data.
func drawGraph(screen *ebiten.Image, data []float64, x, y, w, h int, lineColor color.RGBA, title string) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{8, 8, 16, 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, color.RGBA{30, 30, 40, 160}, false)
	if title != "" {
		text.Draw(screen, title, basicfont.Face7x13, x+6, y+14, color.RGBA{220, 220, 220, 200})
	}
	if len(data) == 0 {
		return
	}

	minV, maxV := view.GraphRange(data)
	const padding = 6
	gw := float64(w - padding*2)
	gh := float64(h - padding*2)
	toY := func(v float64) float32 {
		return float32(float64(y+padding) + gh*(1-(v-minV)/(maxV-minV)))
	}

	for i := 0; i <= 4; i++ {
		yy := float32(float64(y+padding) + gh*float64(i)/4)
		vector.StrokeLine(screen, float32(x+padding), yy, float32(x+w-padding), yy, 1, color.RGBA{40, 40, 60, 120}, false)
	}
	if minV <= 0 && maxV >= 0 {
		zy := toY(0)
		vector.StrokeLine(screen, float32(x+padding), zy, float32(x+w-padding), zy, 1, color.RGBA{150, 150, 150, 140}, false)
	}

	if n := len(data); n >= 2 {
		stepX := gw / float64(n-1)
		px, py := float32(x+padding), toY(data[0])
		for i, v := range data[1:] {
			nx, ny := float32(float64(x+padding)+stepX*float64(i+1)), toY(v)
			vector.StrokeLine(screen, px, py, nx, ny, 1, lineColor, true)
			px, py = nx, ny
		}
	}

	lbl := fmt.Sprintf("%.3e..%.3e", minV, maxV)
	text.Draw(screen, lbl, basicfont.Face7x13, x+6, y+h-6, color.RGBA{180, 180, 200, 180})
}
