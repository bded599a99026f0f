package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nfmeta/runmeta/internal/logging"
)

// FileName is the optional per-directory configuration file.
const FileName = ".runmeta.yml"

// Config captures CLI options sourced from config files or flags.
type Config struct {
	// TwPath locates the Seqera Platform CLI executable.
	TwPath string `yaml:"tw_path"`
	// LogLevel is one of CRITICAL, ERROR, WARNING, INFO, DEBUG.
	LogLevel string `yaml:"log_level"`
	// CleanupArchive removes the downloaded archive after a successful run.
	CleanupArchive bool `yaml:"cleanup_archive"`
}

// Default returns the baseline configuration used when no flags or config file specify values.
func Default() Config {
	return Config{
		TwPath:   "tw",
		LogLevel: logging.DefaultLevel,
	}
}

// Load reads .runmeta.yml from dir when present. Missing files are ignored.
func Load(dir string) (Config, error) {
	cfg := Default()
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	cfg = merge(cfg, fileCfg)
	return cfg, nil
}

func merge(base, override Config) Config {
	out := base

	if override.TwPath != "" {
		out.TwPath = override.TwPath
	}
	if override.LogLevel != "" {
		out.LogLevel = override.LogLevel
	}
	if override.CleanupArchive {
		out.CleanupArchive = true
	}

	return out
}

// LoadEnv populates the process environment from dir's .env file when one
// exists. This is how TOWER_ACCESS_TOKEN typically reaches tw. Variables
// already set in the environment win.
func LoadEnv(dir string) (bool, error) {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return false, nil
	}
	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("load env file %q: %w", path, err)
	}
	return true, nil
}

// ApplyFlags mutates cfg by applying values from CLI flags when they are present.
func ApplyFlags(cfg *Config, flags FlagValues) {
	if flags.TwPath.Set {
		cfg.TwPath = flags.TwPath.Value
	}
	if flags.LogLevel.Set {
		cfg.LogLevel = flags.LogLevel.Value
	}
	if flags.CleanupArchive.Set {
		cfg.CleanupArchive = flags.CleanupArchive.Value
	}
}

// FlagValues captures CLI flag state with knowledge of whether each flag was set explicitly.
type FlagValues struct {
	TwPath         StringFlag
	LogLevel       StringFlag
	CleanupArchive BoolFlag
}

// StringFlag represents a string flag and whether it was set.
type StringFlag struct {
	Value string
	Set   bool
}

// BoolFlag represents a bool flag and whether it was set.
type BoolFlag struct {
	Value bool
	Set   bool
}
