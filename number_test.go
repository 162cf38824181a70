// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jindent_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/creachadair/jindent"
)

func mustNumber(t *testing.T, s string) jindent.Number {
	t.Helper()
	n, err := jindent.NewParser(strings.NewReader(s)).ParseNumber()
	if err != nil {
		t.Fatalf("ParseNumber(%q): unexpected error: %v", s, err)
	}
	return n
}

func TestNumber(t *testing.T) {
	tests := []struct {
		input    string
		mantissa string
		exp      int32
	}{
		{"0", "0", 0},
		{"-3", "-3", 0},
		{"3.14", "314", -2},
		{"3.140", "3140", -3},
		{"-1e-5", "-1", -5},
		{"12.5E+10", "125", 9},
		{"100000000000000000000000", "100000000000000000000000", 0},
	}
	for _, test := range tests {
		n := mustNumber(t, test.input)
		if got := n.Mantissa().String(); got != test.mantissa {
			t.Errorf("Mantissa(%q): got %s, want %s", test.input, got, test.mantissa)
		}
		if got := n.Exponent(); got != test.exp {
			t.Errorf("Exponent(%q): got %d, want %d", test.input, got, test.exp)
		}

		// The exact form re-parses to the same representation.
		m := mustNumber(t, n.String())
		if m.Mantissa().Cmp(n.Mantissa()) != 0 || m.Exponent() != n.Exponent() {
			t.Errorf("Reparse %q: got %v, want %v", n.String(), m, n)
		}
	}
}

func TestNewNumber(t *testing.T) {
	m := big.NewInt(-25)
	n := jindent.NewNumber(m, -1)
	m.SetInt64(99) // n does not share m

	if got, want := n.String(), "-25e-1"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
	if f, ok := n.Float64(); !ok || f != -2.5 {
		t.Errorf("Float64: got %g, %v; want -2.5", f, ok)
	}
	if _, ok := n.Int64(); ok {
		t.Error("Int64: got ok for a fractional value")
	}
	if got := n.Decimal().String(); got != "-2.5" {
		t.Errorf("Decimal: got %s, want -2.5", got)
	}

	var zero jindent.Number
	if got := zero.String(); got != "0" {
		t.Errorf("Zero value: got %q, want 0", got)
	}
}

func TestNumberEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1", "1", true},
		{"1", "1.0", true},
		{"1.0", "10e-1", true},
		{"150e-2", "1.5", true},
		{"0", "-0.000", true},
		{"1", "1.01", false},
		{"-1", "1", false},
		{"1e2147483647", "1e-2147483648", false},
		{"-1e2147483647", "-1e-2147483648", false},
		{"10e2147483646", "1e2147483647", true},
		{"1000e-2147483648", "1e-2147483645", true},
		{"0e2147483647", "0e-2147483648", true},
	}
	for _, test := range tests {
		a, b := mustNumber(t, test.a), mustNumber(t, test.b)
		if got := a.Equal(b); got != test.want {
			t.Errorf("Equal(%s, %s): got %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestNumberMode(t *testing.T) {
	for _, m := range []jindent.NumberMode{jindent.Exact, jindent.Integer, jindent.Float} {
		got, err := jindent.ParseNumberMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseNumberMode(%q): got %v, %v; want %v", m.String(), got, err, m)
		}
	}
	if got, err := jindent.ParseNumberMode("decimal"); err == nil {
		t.Errorf("ParseNumberMode(decimal): got %v, want error", got)
	}
	if got, want := jindent.NumberMode(7).String(), "NumberMode(7)"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
