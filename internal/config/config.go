package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/goserg/ratingcalc/elo"
)

var ErrAmbiguousKFactor = errors.New("k_factor and k_factor_table are mutually exclusive")

type Calculator struct {
	KFactor      *float64           `toml:"k_factor"`
	KFactorTable map[string]float64 `toml:"k_factor_table"`
	Min          *float64           `toml:"min"`
	Max          *float64           `toml:"max"`
}

type Server struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Debug    bool   `toml:"debug_mode"`
	LogLevel string `toml:"log_level"`
}

type Config struct {
	Calculator Calculator `toml:"calculator"`
	Server     Server     `toml:"server"`
}

func Default() Config {
	return Config{
		Server: Server{
			Host:     "0.0.0.0",
			Port:     3000,
			LogLevel: "info",
		},
	}
}

func New(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes an in-memory config, e.g. the embedded default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	_, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if port := os.Getenv("ELO_SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("ELO_SERVER_PORT: %w", err)
		}
		c.Server.Port = p
	}
	if level := os.Getenv("ELO_LOG_LEVEL"); level != "" {
		c.Server.LogLevel = level
	}
	return nil
}

// Build creates a calculator. Unset values, and a zero k_factor, fall back to
// the calculator defaults.
func (c Calculator) Build() (*elo.Calculator, error) {
	if c.KFactor != nil && c.KFactorTable != nil {
		return nil, ErrAmbiguousKFactor
	}
	var opts []elo.Option
	switch {
	case c.KFactor != nil && *c.KFactor != 0:
		opts = append(opts, elo.WithKFactor(elo.Constant(*c.KFactor)))
	case c.KFactorTable != nil:
		table, err := elo.ParseTable(c.KFactorTable)
		if err != nil {
			return nil, fmt.Errorf("k_factor_table: %w", err)
		}
		opts = append(opts, elo.WithKFactor(table))
	}
	if c.Min != nil {
		opts = append(opts, elo.WithMin(*c.Min))
	}
	if c.Max != nil {
		opts = append(opts, elo.WithMax(*c.Max))
	}
	return elo.New(opts...), nil
}
