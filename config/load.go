package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a YAML document from path and overlays it on Default.
// An empty path returns Default unchanged. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	return Parse(raw, cfg)
}

// Parse decodes YAML from raw on top of base and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(raw []byte, base Config) (Config, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decoding yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field tags and the cross-section constraints the tags
// cannot express.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	b := c.Layout.Bounds.Bound()
	if !b.Contains(c.Layout.Center.Orb()) {
		return fmt.Errorf("%w: layout center (%g,%g) outside bounds", ErrInvalidConfig,
			c.Layout.Center.X, c.Layout.Center.Y)
	}
	if c.Layout.RingAttempts+c.Layout.GridAttempts+c.Layout.RandomAttempts == 0 && c.Layout.MaxNodes > 1 {
		return fmt.Errorf("%w: all placement budgets are zero", ErrInvalidConfig)
	}

	return nil
}
