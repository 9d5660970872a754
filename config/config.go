package config

import (
	"io"
	"os"

	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type (
	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket. The request is read by a single call, so by that it also limits the
		// request size: everything that doesn't fit is silently lost.
		ReadBufferSize int `json:"read_buffer_size"`
	}

	Log struct {
		// Level is a zerolog level name, e.g. debug, info, warn.
		Level string `json:"level"`
	}
)

// Config holds settings used across various parts of nimble.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	NET NET `json:"net"`
	Log Log `json:"log"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize: 1024,
		},
		Log: Log{
			Level: zerolog.LevelInfoValue,
		},
	}
}

// Load overlays the JSON document onto the defaults. Omitted fields keep their default
// values.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := json.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile is Load reading from a file.
func LoadFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}

	defer file.Close()

	cfg, err := Load(file)
	return cfg, errors.Wrapf(err, "load %s", path)
}

// Validate reports settings that can't be used.
func (c *Config) Validate() error {
	if c.NET.ReadBufferSize <= 0 {
		return errors.Errorf("net.read_buffer_size must be positive, got %d", c.NET.ReadBufferSize)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Log.Level)
	return level, errors.Wrap(err, "log.level")
}
