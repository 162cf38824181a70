// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/jindent"
	"github.com/creachadair/jindent/internal/config"
	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default is invalid: %v", err)
	}
	if diff := cmp.Diff(jindent.DefaultOptions(), cfg.Options()); diff != "" {
		t.Errorf("Default options (-want, +got)\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	const input = `{
  // Comments and trailing commas are allowed.
  "indent": 4,
  "numbers": "float",
  "max-depth": 64, /* block comment */
  "lax-commas": true,
  "log-level": "debug",
}`
	got, err := config.Parse([]byte(input), config.Default())
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	want := config.Config{
		Indent:     4,
		Numbers:    jindent.Float,
		MaxDepth:   64,
		MaxPadding: 8192,
		LaxCommas:  true,
		LogLevel:   "debug",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse (-want, +got)\n%s", diff)
	}
}

func TestParseKeepsBase(t *testing.T) {
	base := config.Default()
	base.Indent = 8
	got, err := config.Parse([]byte(`{"max-padding": 100.0}`), base)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if got.Indent != 8 || got.MaxPadding != 100 {
		t.Errorf("Parse: got indent %d, padding %d; want 8, 100", got.Indent, got.MaxPadding)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		``,
		`[]`,
		`{"indent": "four"}`,
		`{"indent": 1.5}`,
		`{"indent": 0}`,
		`{"indent": 1e30}`,
		`{"max-depth": -1}`,
		`{"max-padding": 65537}`,
		`{"max-padding": 9000000000000000000}`,
		`{"numbers": "decimal"}`,
		`{"numbers": 1}`,
		`{"lax-commas": "yes"}`,
		`{"log-level": "loud"}`,
		`{"colour": true}`,
		`{"indent": 2`,
		`{"indent": 2} {}`,
	}
	for _, input := range tests {
		if got, err := config.Parse([]byte(input), config.Default()); err == nil {
			t.Errorf("Parse(%#q): got %+v, want error", input, got)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Indent = 0
	cfg.MaxDepth = 0
	cfg.Numbers = jindent.NumberMode(9)
	if err := cfg.Validate(); err == nil {
		t.Error("Validate: got nil, want error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jindent.hujson")
	if err := os.WriteFile(path, []byte(`{"indent": 3, // three
}`), 0600); err != nil {
		t.Fatalf("Write config: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg.Indent != 3 {
		t.Errorf("Load: got indent %d, want 3", cfg.Indent)
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing")); !os.IsNotExist(err) {
		t.Errorf("Load missing: got %v, want not-exist", err)
	}
}
