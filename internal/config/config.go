package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rugwirobaker/uptime/internal/flag"
)

// DefaultPath is read when it exists and no --config flag is given.
const DefaultPath = "/etc/uptime/uptime.yaml"

type Config struct {
	Log      Log      `yaml:"log" toml:"log"`
	Sessions Sessions `yaml:"sessions" toml:"sessions"`
}

type Log struct {
	Format    string  `yaml:"format" toml:"format"`                 // "text", "json"
	Timestamp bool    `yaml:"timestamp" toml:"timestamp"`           // show timestamp
	Debug     bool    `yaml:"debug" toml:"debug"`                   // include debug logging
	Path      *string `yaml:"path,omitempty" toml:"path,omitempty"` // /var/log/uptime.log
}

type Sessions struct {
	Source string `yaml:"source" toml:"source"`                 // "auto", "utmp", "host"
	File   string `yaml:"file,omitempty" toml:"file,omitempty"` // /var/run/utmp
}

func Default() *Config {
	return &Config{
		Log: Log{
			Format:    "text",
			Timestamp: true,
			Debug:     false,
		},
		Sessions: Sessions{
			Source: "auto",
		},
	}
}

// FromFile reads a yaml config, or a toml one when path ends in .toml.
// Keys missing from the file keep their default values.
func FromFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var cfg = Default()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		md, err := toml.NewDecoder(file).Decode(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to decode config file: unknown field %q", undecoded[0].String())
		}
		return cfg, nil
	}

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	return cfg, nil
}

// Load reads path when set. With no path it falls back to DefaultPath and
// then to Default when that file does not exist.
func Load(path string) (*Config, error) {
	if path != "" {
		return FromFile(path)
	}

	cfg, err := FromFile(DefaultPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (cfg *Config) Validate() error {
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %q", cfg.Log.Format)
	}

	switch cfg.Sessions.Source {
	case "auto", "utmp", "host":
	default:
		return fmt.Errorf("invalid session source: %q", cfg.Sessions.Source)
	}
	return nil
}

func (cfg *Config) OverrideWithFlags(ctx context.Context) {
	if logFormat := flag.GetString(ctx, "log-format"); logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if debug := flag.GetBool(ctx, "debug"); debug {
		cfg.Log.Debug = debug
	}
	if logPath := flag.GetString(ctx, "log-path"); logPath != "" {
		cfg.Log.Path = &logPath
	}
}
