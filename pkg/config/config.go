// Package config loads topoviz configuration from a TOML file with
// environment overrides.
//
// Lookup order: built-in defaults, then the TOML file (when present), then
// environment variables. A .env file in the working directory is loaded into
// the environment first, so store credentials never need to live in the
// TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	tverrors "github.com/topoviz/topoviz/pkg/errors"
)

// Environment variables recognized for store credentials.
const (
	EnvURI      = "NEO4J_URI"
	EnvUsername = "NEO4J_USERNAME"
	EnvPassword = "NEO4J_PASSWORD"
)

// DefaultPath is the config file consulted when no --config flag is given.
const DefaultPath = "topoviz.toml"

// Config is the full configuration tree.
type Config struct {
	Source Source `toml:"source"`
	Render Render `toml:"render"`
}

// Source holds the graph store connection settings.
type Source struct {
	URI      string `toml:"uri"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// Render holds output defaults overridable per run via CLI flags.
type Render struct {
	OutputDir string `toml:"output_dir"`
	Title     string `toml:"title"`
	Seed      uint64 `toml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: Render{
			OutputDir: ".",
			Title:     "Network Topology",
			Seed:      42,
		},
	}
}

// Load reads the config file at path and applies environment overrides.
// A missing file at the default path is not an error; a missing file at an
// explicitly given path is. The .env file, if any, is loaded first.
func Load(path string) (Config, error) {
	// Missing .env files are fine; credentials may come from the real env.
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, tverrors.Wrap(tverrors.ErrCodeInvalidConfig, err, "load config %s", path)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv lets environment variables win over file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvURI); v != "" {
		cfg.Source.URI = v
	}
	if v := os.Getenv(EnvUsername); v != "" {
		cfg.Source.Username = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		cfg.Source.Password = v
	}
}

// ValidateSource checks that the store connection settings are complete.
func (c Config) ValidateSource() error {
	if c.Source.URI == "" {
		return tverrors.New(tverrors.ErrCodeInvalidConfig, "source URI is not set (config [source].uri or %s)", EnvURI)
	}
	if c.Source.Username == "" {
		return tverrors.New(tverrors.ErrCodeInvalidConfig, "source username is not set (config [source].username or %s)", EnvUsername)
	}
	return nil
}

// String renders the config for debug logging with the password masked.
func (c Config) String() string {
	pw := ""
	if c.Source.Password != "" {
		pw = "****"
	}
	return fmt.Sprintf("source{uri: %s, username: %s, password: %s} render{output_dir: %s, seed: %d}",
		c.Source.URI, c.Source.Username, pw, c.Render.OutputDir, c.Render.Seed)
}
