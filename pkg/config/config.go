package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Jayden-Amjed/2D-TopDown-SolarSystem-Sim/pkg/simulation"
)

type Config struct {
	Scene   SceneConfig
	Window  WindowConfig
	Stream  StreamConfig
	Logging LoggingConfig
}

type SceneConfig struct {
	Name       string
	Integrator string
	TimeScale  float64
	MaxDt      float64

	// keys given explicitly, as opposed to filled from defaults
	explicit map[string]bool
}

type WindowConfig struct {
	Width  int
	Height int
	TPS    int
	Stars  int
}

type StreamConfig struct {
	Addr string
	// snapshots per second sent to websocket clients
	Rate float64
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

// Load reads .env files (if any) and the environment. Missing .env files are
// not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{
		Scene:   loadSceneConfig(),
		Window:  loadWindowConfig(),
		Stream:  loadStreamConfig(),
		Logging: loadLoggingConfig(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadSceneConfig() SceneConfig {
	return SceneConfig{
		Name:       getEnv("SIM_ENV", "solar"),
		Integrator: getEnv("SIM_INTEGRATOR", "leapfrog"),
		TimeScale:  getFloat("SIM_TIME_SCALE", 1),
		MaxDt:      getFloat("SIM_MAX_DT", 0.05),
		explicit:   explicitSceneKeys(),
	}
}

func explicitSceneKeys() map[string]bool {
	return map[string]bool{
		"SIM_INTEGRATOR": isSet("SIM_INTEGRATOR"),
		"SIM_TIME_SCALE": hasFloat("SIM_TIME_SCALE"),
		"SIM_MAX_DT":     hasFloat("SIM_MAX_DT"),
	}
}

// Overrides returns the scene settings that were set in the environment or a
// .env file. Settings left at their defaults are zero, so a scene file's own
// values win over them.
func (s SceneConfig) Overrides() simulation.Overrides {
	var o simulation.Overrides
	if s.explicit["SIM_INTEGRATOR"] {
		o.Integrator = s.Integrator
	}
	if s.explicit["SIM_TIME_SCALE"] {
		o.TimeScale = s.TimeScale
	}
	if s.explicit["SIM_MAX_DT"] {
		o.MaxDt = s.MaxDt
	}
	return o
}

func loadWindowConfig() WindowConfig {
	return WindowConfig{
		Width:  getInt("SIM_WINDOW_WIDTH", 1920),
		Height: getInt("SIM_WINDOW_HEIGHT", 1000),
		TPS:    getInt("SIM_TPS", 60),
		Stars:  getInt("SIM_STARS", 800),
	}
}

func loadStreamConfig() StreamConfig {
	return StreamConfig{
		Addr: getEnv("SIM_WS_ADDR", ""),
		Rate: getFloat("SIM_WS_RATE", 30),
	}
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:      strings.ToLower(getEnv("SIM_LOG_LEVEL", "info")),
		JSONFormat: getEnv("SIM_LOG_JSON", "false") == "true",
	}
}

func (c *Config) Validate() error {
	if c.Scene.Name == "" {
		return fmt.Errorf("SIM_ENV is required")
	}
	if c.Scene.TimeScale <= 0 {
		return fmt.Errorf("SIM_TIME_SCALE must be positive")
	}
	if c.Scene.MaxDt <= 0 {
		return fmt.Errorf("SIM_MAX_DT must be positive")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive")
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("SIM_TPS must be positive")
	}
	if c.Window.Stars < 0 {
		return fmt.Errorf("SIM_STARS must not be negative")
	}
	if c.Stream.Rate <= 0 {
		return fmt.Errorf("SIM_WS_RATE must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func isSet(key string) bool {
	v, ok := os.LookupEnv(key)
	return ok && v != ""
}

// hasFloat reports whether key holds a well-formed number.
func hasFloat(key string) bool {
	if !isSet(key) {
		return false
	}
	_, err := strconv.ParseFloat(os.Getenv(key), 64)
	return err == nil
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		slog.Warn("Ignoring malformed integer setting", "key", key, "error", err)
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, strconv.FormatFloat(fallback, 'g', -1, 64)), 64)
	if err != nil {
		slog.Warn("Ignoring malformed number setting", "key", key, "error", err)
		return fallback
	}
	return v
}
