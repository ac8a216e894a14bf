package scenario_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeopt/core"
	"github.com/katalvlaran/routeopt/scenario"
)

const yamlMap = `
start: S
nodes:
  - {id: S, label: Start}
  - {id: A, label: City A}
  - {id: B}
edges:
  - {id: e1, from: S, to: A, weight: 15}
  - {from: A, to: B, weight: "20"}
  - {from: B, to: A, weight: 3}
  - {from: S, to: B, weight: abc}
`

const tomlMap = `
start = "S"

[[nodes]]
id = "S"
label = "Start"

[[nodes]]
id = "A"
label = "City A"

[[edges]]
id = "e1"
from = "S"
to = "A"
weight = 15

[[edges]]
from = "A"
to = "S"
weight = "7"
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_YAML(t *testing.T) {
	s, err := scenario.Load(writeFile(t, "map.yaml", yamlMap))
	require.NoError(t, err)

	assert.Equal(t, "S", s.Start)
	require.Len(t, s.Nodes, 3)
	require.Len(t, s.Edges, 4)
	assert.Equal(t, scenario.Weight("15"), s.Edges[0].Weight)
	assert.Equal(t, scenario.Weight("abc"), s.Edges[3].Weight)
}

func TestLoad_TOML(t *testing.T) {
	s, err := scenario.Load(writeFile(t, "map.toml", tomlMap))
	require.NoError(t, err)

	assert.Equal(t, "S", s.Start)
	require.Len(t, s.Edges, 2)
	assert.Equal(t, scenario.Weight("15"), s.Edges[0].Weight)
	assert.Equal(t, scenario.Weight("7"), s.Edges[1].Weight)
}

func TestLoad_Errors(t *testing.T) {
	_, err := scenario.Load("map.json")
	require.ErrorIs(t, err, scenario.ErrUnknownFormat)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = scenario.Load(writeFile(t, "bad.toml", "weight = [1, 2\n"))
	require.Error(t, err)

	_, err = scenario.Parse([]byte(`[[edges]]
from = "A"
to = "B"
weight = true
`), scenario.TOML)
	require.Error(t, err)

	_, err = scenario.Parse(nil, scenario.Format("ini"))
	require.ErrorIs(t, err, scenario.ErrUnknownFormat)
}

func TestBuild_SkipsDuplicates(t *testing.T) {
	s, err := scenario.Parse([]byte(yamlMap), scenario.YAML)
	require.NoError(t, err)

	g, rep, err := s.Graph()
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Nodes)
	assert.Equal(t, 3, rep.Edges)
	require.Len(t, rep.Skipped, 1)
	assert.Equal(t, "B", rep.Skipped[0].From)

	b, err := g.Node("B")
	require.NoError(t, err)
	assert.Equal(t, "B", b.Label, "label defaults to the id")

	e, ok := g.FindEdge("S", "B")
	require.True(t, ok)
	assert.Equal(t, "abc", e.Label)
}

func TestBuild_Errors(t *testing.T) {
	s := &scenario.Scenario{
		Nodes: []scenario.Node{{ID: "S"}},
		Edges: []scenario.Edge{{From: "S", To: "X", Weight: "1"}},
	}
	_, _, err := s.Graph()
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	s = &scenario.Scenario{Nodes: []scenario.Node{{ID: "S"}, {ID: "S"}}}
	_, _, err = s.Graph()
	require.ErrorIs(t, err, core.ErrDuplicateID)
}

func TestDefault(t *testing.T) {
	g, rep, err := scenario.Default().Graph()
	require.NoError(t, err)
	assert.Empty(t, rep.Skipped)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, "S", scenario.Default().Start)
}

func TestWatch_Reloads(t *testing.T) {
	path := writeFile(t, "map.yaml", yamlMap)

	got := make(chan *scenario.Scenario, 16)
	stop, err := scenario.Watch(path, func(s *scenario.Scenario, err error) {
		if err != nil {
			return
		}
		select {
		case got <- s:
		default:
		}
	})
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("start: A\nnodes:\n  - {id: A}\n"), 0o644))

	// A truncating write can surface an intermediate empty map first.
	deadline := time.After(5 * time.Second)
	for reloaded := false; !reloaded; {
		select {
		case s := <-got:
			reloaded = s.Start == "A"
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
	stop()
	stop()
}

func TestWatch_UnknownFormat(t *testing.T) {
	_, err := scenario.Watch("map.txt", func(*scenario.Scenario, error) {})
	require.ErrorIs(t, err, scenario.ErrUnknownFormat)
}
