// Package config reads arena settings from the environment, then flags.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds the demo's settings. Flags override the environment.
type Config struct {
	LogLevel     string `env:"ARENA_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"ARENA_LOG_FORMAT" envDefault:"console"`
	Lang         string `env:"ARENA_LANG" envDefault:"en-US"`
	ScenarioFile string `env:"ARENA_SCENARIO_FILE"`
	HitDamage    int    `env:"ARENA_HIT_DAMAGE" envDefault:"10"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig parses environment and flags into Config and validates it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level (trace, debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log output: console or json")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "narration locale")
	fs.StringVar(&cfg.ScenarioFile, "scenario", cfg.ScenarioFile, "scenario YAML file (embedded demo when empty)")
	fs.IntVar(&cfg.HitDamage, "hit-damage", cfg.HitDamage, "damage dealt by every hit")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("log level %q: %w", c.LogLevel, err))
	}
	if c.LogFormat != FormatConsole && c.LogFormat != FormatJSON {
		errs = append(errs, fmt.Errorf("log format %q: want %s or %s", c.LogFormat, FormatConsole, FormatJSON))
	}
	if c.HitDamage < 1 {
		errs = append(errs, fmt.Errorf("hit damage %d: must be at least 1", c.HitDamage))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}
