package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gravitas-games/hexgrid/pkg/hex"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hexdemo.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultResolve(t *testing.T) {
	pairs, err := Default().Resolve()
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].From != hex.New(-3, 0) || pairs[0].To != hex.New(-2, 1) {
		t.Fatalf("unexpected default pair %s -> %s", pairs[0].From, pairs[0].To)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
pairs:
  - from: {q: 0, r: 0}
    to: {q: 3, r: -1}
  - from: {q: 1, r: 2}
    to: {q: 1, r: 2}
greeting: "hi"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if cfg.Greeting != "hi" {
		t.Fatalf("expected greeting hi, got %q", cfg.Greeting)
	}
	pairs, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if len(pairs) != 2 || pairs[0].To != hex.New(3, -1) {
		t.Fatalf("unexpected pairs %+v", pairs)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "greeting: \"\"\n"))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if cfg.Greeting != DefaultGreeting {
		t.Fatalf("expected default greeting, got %q", cfg.Greeting)
	}
	if len(cfg.Pairs) != 1 || cfg.Pairs[0] != Default().Pairs[0] {
		t.Fatalf("expected default pairs, got %+v", cfg.Pairs)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := Load(writeConfig(t, "pairs: [unclosed\n")); err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}

func TestResolveOverflow(t *testing.T) {
	cfg := &Config{Pairs: []PairConfig{
		{From: AxialConfig{Q: 0, R: 0}, To: AxialConfig{Q: math.MaxInt, R: 5}},
	}}
	if _, err := cfg.Resolve(); !errors.Is(err, hex.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestResolveAtIntLimit(t *testing.T) {
	cfg := &Config{Pairs: []PairConfig{
		{From: AxialConfig{Q: math.MinInt, R: 1}, To: AxialConfig{Q: 1, R: math.MinInt}},
	}}
	pairs, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("unexpected resolve error: %v", err)
	}
	if pairs[0].From.S() != math.MaxInt || pairs[0].To.S() != math.MaxInt {
		t.Fatalf("expected s=MaxInt, got %s and %s", pairs[0].From, pairs[0].To)
	}
}
