package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/config"
	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/logger"
	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/render"
	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/report"
	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/simulation"
	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/stream"
)

// sceneOverrides collects the settings that replace the scene file's own:
// SIM_* variables that are set, then flags given on the command line.
func sceneOverrides(scene config.SceneConfig, integrator string) simulation.Overrides {
	o := scene.Overrides()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "integrator" {
			o.Integrator = integrator
		}
	})
	return o
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	envName := flag.String("env", cfg.Scene.Name, "scene: "+fmt.Sprint(simulation.Environments())+" or a .json file")
	integrator := flag.String("integrator", cfg.Scene.Integrator, "leapfrog, symplectic-euler or euler")
	headless := flag.Bool("headless", false, "run without a window and print an energy report")
	steps := flag.Int("steps", 10000, "steps to run in headless mode")
	wsAddr := flag.String("ws", cfg.Stream.Addr, "serve websocket snapshots on this address (e.g. :8080)")
	flag.Parse()

	logger.Init(cfg.Logging)
	log := slog.With("component", "main")

	env, err := simulation.ResolveEnvironment(*envName)
	if err != nil {
		log.Error("Failed to load scene", "env", *envName, "error", err)
		os.Exit(1)
	}
	env = env.WithOverrides(sceneOverrides(cfg.Scene, *integrator))

	sim, err := simulation.NewSimulator(env)
	if err != nil {
		log.Error("Invalid scene", "env", *envName, "error", err)
		os.Exit(1)
	}
	log.Info("Scene ready", "env", sim.Name, "bodies", len(sim.Bodies), "integrator", sim.Gravity().Integrator().String())

	if *headless {
		res := report.Run(sim, *steps, 70)
		fmt.Println(res.Chart(70, 12))
		fmt.Println()
		fmt.Print(res)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var hub *stream.Hub
	if *wsAddr != "" {
		hub = stream.NewHub(cfg.Stream.Rate)
		defer hub.Close()
		srv := &http.Server{Addr: *wsAddr, Handler: hub, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			log.Info("Streaming snapshots", "addr", *wsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("Websocket server failed", "error", err)
				stop()
			}
		}()
		defer srv.Shutdown(context.Background())
	}

	// with a stream but no display, step in real time until interrupted
	if hub != nil && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		log.Info("No display, running without a window")
		if err := hub.Run(ctx, sim, cfg.Window.TPS); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Stream loop failed", "error", err)
		}
		return
	}

	opts := render.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Stars:  cfg.Window.Stars,
		Seed:   time.Now().UnixNano(),
	}
	if hub != nil {
		opts.OnFrame = func(s *simulation.Simulator) {
			hub.Publish(stream.NewSnapshot(s, true))
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Gravity Simulation - " + sim.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	game := render.NewGame(sim, opts)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("Game loop failed", "error", err)
		os.Exit(1)
	}
}
