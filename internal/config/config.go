package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the top-level prio configuration.
type Config struct {
	User    UserConfig    `toml:"user"`
	Weights WeightsConfig `toml:"weights"`
	Plan    PlanConfig    `toml:"plan"`
}

type UserConfig struct {
	Name string `toml:"name"`
}

// WeightsConfig holds the scoring multipliers. Fields are pointers so that
// an absent key falls back to the default while an explicit 0 disables the
// factor entirely.
type WeightsConfig struct {
	Importance *float64 `toml:"importance,omitempty"`
	Urgency    *float64 `toml:"urgency,omitempty"`
	Effort     *float64 `toml:"effort,omitempty"`
}

// PlanConfig holds day-planning settings.
type PlanConfig struct {
	// DailyHours is the effort-hour capacity assumed per planning day.
	DailyHours *float64 `toml:"daily_hours,omitempty"`
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))

	prioConfig := filepath.Join(configDir, "prio")
	prioData := filepath.Join(dataDir, "prio")

	return Paths{
		ConfigDir:  prioConfig,
		DataDir:    prioData,
		ConfigFile: filepath.Join(prioConfig, "config.toml"),
		DBFile:     filepath.Join(prioData, "prio.db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	for _, d := range []string{p.ConfigDir, p.DataDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := &Config{}

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// FloatPtr returns a pointer to a float64 value.
func FloatPtr(v float64) *float64 {
	return &v
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
