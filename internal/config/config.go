// Package config loads decint.toml, the optional per-directory
// configuration for the decint CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"decint/internal/bignum"
)

// FileName is the default manifest name looked up in the working
// directory.
const FileName = "decint.toml"

// ErrBadLimit indicates an out-of-range value in [limits].
var ErrBadLimit = errors.New("invalid limit")

// Config carries the resolved CLI settings.
type Config struct {
	Limits Limits `toml:"limits"`
	Output Output `toml:"output"`
}

// Limits bounds resource usage of the calculator.
type Limits struct {
	// MaxRandomDigits bounds the digit count of random() when no count
	// is requested. It is deliberately configuration, not a hidden
	// constant.
	MaxRandomDigits int64 `toml:"max-random-digits"`
}

// Output controls rendering of results.
type Output struct {
	// GroupDigits inserts thousands separators into printed results.
	GroupDigits bool `toml:"group-digits"`
	// Color is one of auto, on, off.
	Color string `toml:"color"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Limits: Limits{MaxRandomDigits: bignum.DefaultMaxRandomDigits},
		Output: Output{Color: "auto"},
	}
}

// Load reads a manifest from path. A missing file yields the defaults;
// a present but malformed one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	// Defaults pre-filled above survive keys the file leaves undefined.
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Limits.MaxRandomDigits < 0 {
		return Config{}, fmt.Errorf("%w: max-random-digits must be non-negative, got %d", ErrBadLimit, cfg.Limits.MaxRandomDigits)
	}
	switch cfg.Output.Color {
	case "", "auto", "on", "off":
	default:
		return Config{}, fmt.Errorf("%s: unknown color mode %q", path, cfg.Output.Color)
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = "auto"
	}
	return cfg, nil
}

// MaxRandomDigitsInt converts the configured bound to int for the
// bignum API.
func (c Config) MaxRandomDigitsInt() (int, error) {
	n, err := safecast.Conv[int](c.Limits.MaxRandomDigits)
	if err != nil {
		return 0, fmt.Errorf("%w: max-random-digits: %w", ErrBadLimit, err)
	}
	return n, nil
}
