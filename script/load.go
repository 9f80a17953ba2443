package script

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the script encoding
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Parse decodes and validates a program
// Unknown keys are rejected so typos in op fields surface as errors
func Parse(data []byte, format Format) (Program, error) {
	var p Program
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return Program{}, fmt.Errorf("decode toml script: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return Program{}, fmt.Errorf("decode yaml script: %w", err)
		}
	default:
		return Program{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	if err := Validate(p); err != nil {
		return Program{}, err
	}
	return p, nil
}

// Load reads a program file, format chosen by extension
// A program without a name is named after the file
func Load(path string) (Program, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Program{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Program{}, fmt.Errorf("read script: %w", err)
	}
	p, err := Parse(data, format)
	if err != nil {
		return Program{}, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}
