// SPDX-License-Identifier: MIT

// Package scenario reads declarative road maps from YAML or TOML and loads
// them into a core.Graph.
//
// A scenario file names a start city, a list of cities and a list of roads:
//
//	start: S
//	nodes:
//	  - {id: S, label: Start}
//	  - {id: A, label: City A}
//	edges:
//	  - {id: e1, from: S, to: A, weight: 15}
//
// Weights keep the label wire format: any scalar is stored verbatim as a
// string, so "abc" survives loading and is ignored later by the distance
// computation.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat indicates a file extension other than .yaml, .yml or .toml.
var ErrUnknownFormat = errors.New("scenario: unknown file format")

// Format is a scenario encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Scenario is a whole road map.
type Scenario struct {
	Start string `yaml:"start" toml:"start"`
	Nodes []Node `yaml:"nodes" toml:"nodes"`
	Edges []Edge `yaml:"edges" toml:"edges"`
}

// Node is one city.
type Node struct {
	ID    string `yaml:"id" toml:"id"`
	Label string `yaml:"label,omitempty" toml:"label"`
}

// Edge is one road.
type Edge struct {
	ID     string `yaml:"id,omitempty" toml:"id"`
	From   string `yaml:"from" toml:"from"`
	To     string `yaml:"to" toml:"to"`
	Weight Weight `yaml:"weight" toml:"weight"`
}

// Weight is an edge label as written in the file.
type Weight string

// UnmarshalTOML accepts both bare integers and strings.
func (w *Weight) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case string:
		*w = Weight(t)
	case int64:
		*w = Weight(strconv.FormatInt(t, 10))
	case float64:
		*w = Weight(strconv.FormatFloat(t, 'f', -1, 64))
	default:
		return fmt.Errorf("scenario: weight must be a number or string, got %T", v)
	}

	return nil
}

// Default returns the built-in three-city map.
func Default() *Scenario {
	return &Scenario{
		Start: "S",
		Nodes: []Node{
			{ID: "S", Label: "Start"},
			{ID: "A", Label: "City A"},
			{ID: "B", Label: "City B"},
		},
		Edges: []Edge{
			{ID: "e1", From: "S", To: "A", Weight: "15"},
			{ID: "e2", From: "A", To: "B", Weight: "20"},
		},
	}
}

// FormatOf picks the encoding from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads and decodes the scenario at path.
func Load(path string) (*Scenario, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	s, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, f Format) (*Scenario, error) {
	var s Scenario
	switch f {
	case YAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, err
		}
	case TOML:
		if _, err := toml.Decode(string(data), &s); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return &s, nil
}
