package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/vi-turtle/render"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds run settings, decoded from TOML over Default()
type Config struct {
	Rows  int    `toml:"rows"`
	Cols  int    `toml:"cols"`
	Blank string `toml:"blank"`
	Mark  string `toml:"mark"`

	// Script is a TOML/YAML program path, empty runs the reference program
	Script string `toml:"script"`

	Sound      bool    `toml:"sound"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`
}

// Default returns the reference 25x55 setup
func Default() *Config {
	return &Config{
		Rows:       25,
		Cols:       55,
		Blank:      ".",
		Mark:       "@",
		SampleRate: 44100,
		Volume:     0.5,
	}
}

// Load reads a TOML config file over defaults
// A missing file is not an error and yields Default()
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from VI_TURTLE_* variables, unparsable values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("VI_TURTLE_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Rows = n
		}
	}
	if v := os.Getenv("VI_TURTLE_COLS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Cols = n
		}
	}
	if v := os.Getenv("VI_TURTLE_SOUND"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Sound = b
		}
	}
	// 0-100 converted to 0.0-1.0, clamped
	if v := os.Getenv("VI_TURTLE_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Volume = min(max(float64(n)/100.0, 0), 1)
		}
	}
}

// Validate checks dimensions, glyphs and audio settings
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if utf8.RuneCountInString(c.Blank) != 1 {
		return fmt.Errorf("%w: blank glyph %q must be one character", ErrInvalidConfig, c.Blank)
	}
	if utf8.RuneCountInString(c.Mark) != 1 {
		return fmt.Errorf("%w: mark glyph %q must be one character", ErrInvalidConfig, c.Mark)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalidConfig, c.Volume)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	return nil
}

// Glyphs returns the render glyph pair, call after Validate
func (c *Config) Glyphs() render.Glyphs {
	blank, _ := utf8.DecodeRuneInString(c.Blank)
	mark, _ := utf8.DecodeRuneInString(c.Mark)
	return render.Glyphs{Blank: blank, Mark: mark}
}
