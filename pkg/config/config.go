// Package config loads building definitions from TOML or YAML files.
//
// TOML:
//
//	name = "pagoda"
//	sides = 8
//
//	[[levels]]
//	height = 2
//	base = 1.5
//	top = 1.2
//
// YAML uses the same keys, with "levels" as a list.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/storey/pkg/building"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFile is returned for an extension other than .toml, .yaml, .yml.
var ErrUnsupportedFile = errors.New("unsupported config file type")

// Load reads a building definition. The decoder is chosen by file
// extension; unknown keys are rejected. The result is not validated: a file
// may leave sides unset for the caller to fill in, so callers validate after
// applying their own overrides.
func Load(path string) (building.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return building.Params{}, fmt.Errorf("config: %w", err)
	}

	var p building.Params
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		p, err = DecodeTOML(bytes.NewReader(data))
	case ".yaml", ".yml":
		p, err = DecodeYAML(bytes.NewReader(data))
	default:
		return building.Params{}, fmt.Errorf("config: %w: %s", ErrUnsupportedFile, path)
	}
	if err != nil {
		return building.Params{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return p, nil
}

// DecodeTOML decodes a TOML building definition without validating it.
func DecodeTOML(r io.Reader) (building.Params, error) {
	var p building.Params
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return building.Params{}, fmt.Errorf("toml: %w", err)
	}
	return p, nil
}

// DecodeYAML decodes a YAML building definition without validating it.
func DecodeYAML(r io.Reader) (building.Params, error) {
	var p building.Params
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return building.Params{}, fmt.Errorf("yaml: %w", err)
	}
	return p, nil
}
