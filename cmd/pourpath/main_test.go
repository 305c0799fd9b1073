package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pourpath/render"
	"github.com/katalvlaran/pourpath/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSolve_Tubes(t *testing.T) {
	out, err := run(t, "solve", "--tubes", "RY,YR,EE")
	require.NoError(t, err)
	assert.Equal(t, "0 -> 2\n1 -> 0\n1 -> 2\n", out)

	out, err = run(t, "solve", "--tubes", "RY,YR,EE", "--workers", "3", "--stop-at-solution")
	require.NoError(t, err)
	assert.Equal(t, "0 -> 2\n1 -> 0\n1 -> 2\n", out)
}

func TestSolve_Steps(t *testing.T) {
	out, err := run(t, "solve", "level1", "--steps")
	require.NoError(t, err)
	assert.Contains(t, out, "start: RY,YR,EE\n")
	assert.Contains(t, out, "  1. pour 1 x Red from tube 0 into tube 2: EY,YR,ER\n")
}

func TestSolve_Outcomes(t *testing.T) {
	out, err := run(t, "solve", "--tubes", "RY,YR")
	require.NoError(t, err)
	assert.Equal(t, "RY,YR has no solution\n", out)

	_, err = run(t, "solve", "--tubes", "RY,YR,EE", "--max-depth", "1")
	require.ErrorContains(t, err, "no solution within limits")

	_, err = run(t, "solve")
	require.Error(t, err)
	_, err = run(t, "solve", "level2")
	require.Error(t, err)
	_, err = run(t, "solve", "--tubes", "RY,YR,EE", "--workers", "0")
	require.Error(t, err)
}

func TestSolve_Cache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	first, err := run(t, "solve", "--tubes", "RY,YR,EE", "--cache", path)
	require.NoError(t, err)

	second, err := run(t, "solve", "--tubes", "EE,YR,RY", "--cache", path)
	require.NoError(t, err)
	assert.Equal(t, "0 -> 2\n1 -> 0\n1 -> 2\n", first)
	assert.Equal(t, "2 -> 0\n1 -> 2\n1 -> 0\n", second)

	db, err := store.Open(path)
	require.NoError(t, err)
	defer db.Close()
	all, err := db.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "RY,YR,EE", all[0].Raw)
}

func TestSolve_StateLimitAfterSolution(t *testing.T) {
	const (
		tubes = "BYRR,YRBR,YBBY,EEEE,EEEE"
		moves = "0 -> 3\n2 -> 0\n2 -> 3\n0 -> 2\n1 -> 2\n1 -> 0\n1 -> 3\n0 -> 1\n"
	)
	full, err := run(t, "solve", "--tubes", tubes)
	require.NoError(t, err)
	assert.Equal(t, moves, full)

	path := filepath.Join(t.TempDir(), "cache.db")
	capped, err := run(t, "solve", "--tubes", tubes, "--max-states", "127", "--cache", path)
	require.NoError(t, err)
	assert.Equal(t, moves, capped)

	db, err := store.Open(path)
	require.NoError(t, err)
	defer db.Close()
	rec, err := db.Get(context.Background(), "BYRR,EEEE,EEEE,YBBY,YRBR")
	require.NoError(t, err)
	assert.True(t, rec.Solvable)
	assert.Equal(t, 127, rec.States)

	_, err = run(t, "solve", "--tubes", tubes, "--max-states", "100")
	require.ErrorContains(t, err, "state limit exceeded")
}

func TestSolve_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pourpath.prom")
	_, err := run(t, "solve", "--tubes", "RY,YR,EE", "--metrics-file", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `pourpath_solves_total{outcome="solved"} 1`)
	assert.Contains(t, string(raw), "pourpath_states_discovered_total 6")
}

func TestGraph(t *testing.T) {
	out, err := run(t, "graph", "level1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "// 6 configurations, 5 transitions, 2 leaves\ndigraph \"level1\" {\n"))
	assert.Equal(t, 5, strings.Count(out, " -> "))

	out, err = run(t, "graph", "--tubes", "RY,YR,EE", "-f", "json")
	require.NoError(t, err)
	var doc render.Graph
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Nodes, 6)

	file := filepath.Join(t.TempDir(), "level1.dot")
	_, err = run(t, "graph", "level1", "-o", file)
	require.NoError(t, err)
	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `[label="1->2"`)

	_, err = run(t, "graph", "level1", "-f", "svg")
	require.Error(t, err)
}

func TestLevels(t *testing.T) {
	out, err := run(t, "levels")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "NAME"))
	assert.Contains(t, out, "level77")
	assert.Contains(t, out, "nine colors, two spare tubes")

	pack := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(pack, []byte("levels:\n  - {name: tiny, tubes: 'RR,EE'}\n"), 0o600))
	out, err = run(t, "levels", "--levels", pack, "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: tiny")

	out, err = run(t, "solve", "tiny", "--levels", pack)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pourpath v0.1.0\n", out)
}
