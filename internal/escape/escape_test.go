// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jindent/internal/escape"
	"github.com/google/go-cmp/cmp"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{`a"b\c/d`, `"a\"b\\c/d"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x00\x01\x1f\x7f", `"\u0000\u0001\u001f` + "\x7f" + `"`},
		{"\u00e9", `"\u00e9"`},
		{"\u00ff\u0100\u07ff\u0800", `"\u00ff\u0100\u07ff\u0800"`},
		{"\uffff", `"\uffff"`},
		{"\U0001f600", `"\ud83d\ude00"`},
		{"\U0010ffff", `"\udbff\udfff"`},
		{"\xed\xa0\x80", `"\ud800"`}, // encoded surrogate half
		{"x\u2028y", `"x\u2028y"`},
	}
	for _, test := range tests {
		got, err := escape.Quote(mem.S(test.input))
		if err != nil {
			t.Errorf("Quote(%q): unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, string(got)); diff != "" {
			t.Errorf("Quote(%q) (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestQuoteMalformed(t *testing.T) {
	tests := []string{
		"\x80",             // stray continuation
		"a\xbfb",           // stray continuation
		"\xc3",             // truncated
		"\xe2\x82",         // truncated
		"\xc3\x28",         // bad continuation
		"\xf0\x9f\x98\x28", // bad final continuation
		"\xf8\x88\x80\x80", // invalid lead
		"\xff",             // invalid lead
		"\xf4\x90\x80\x80", // above U+10FFFF
	}
	for _, input := range tests {
		got, err := escape.Quote(mem.S(input))
		if !errors.Is(err, escape.ErrMalformedUTF8) {
			t.Errorf("Quote(%q): got %q, %v; want %v", input, got, err, escape.ErrMalformedUTF8)
		}
	}
}

func TestAppendRune(t *testing.T) {
	tests := []struct {
		input rune
		want  string
	}{
		{0, "\x00"},
		{'A', "A"},
		{0x7f, "\x7f"},
		{0x80, "\xc2\x80"},
		{0x7ff, "\xdf\xbf"},
		{0x800, "\xe0\xa0\x80"},
		{0xd800, "\xed\xa0\x80"},
		{0xdfff, "\xed\xbf\xbf"},
		{0xffff, "\xef\xbf\xbf"},
		{0x10000, "\xf0\x90\x80\x80"},
		{0x1f600, "\xf0\x9f\x98\x80"},
		{0x10ffff, "\xf4\x8f\xbf\xbf"},
		{0x110000, "\ufffd"},
		{-1, "\ufffd"},
	}
	for _, test := range tests {
		got := string(escape.AppendRune(nil, test.input))
		if got != test.want {
			t.Errorf("AppendRune(%U): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestDecodeRune(t *testing.T) {
	tests := []struct {
		input string
		want  rune
		size  int
	}{
		{"a", 'a', 1},
		{"ab", 'a', 1},
		{"\xc3\xa9z", 0xe9, 2},
		{"\xe2\x82\xac", 0x20ac, 3},
		{"\xed\xb0\x80", 0xdc00, 3},
		{"\xf0\x9f\x98\x80", 0x1f600, 4},
	}
	for _, test := range tests {
		r, n, err := escape.DecodeRune(mem.S(test.input))
		if err != nil {
			t.Errorf("DecodeRune(%q): unexpected error: %v", test.input, err)
		} else if r != test.want || n != test.size {
			t.Errorf("DecodeRune(%q): got %U, %d; want %U, %d", test.input, r, n, test.want, test.size)
		}
	}

	if _, _, err := escape.DecodeRune(mem.S("")); !errors.Is(err, escape.ErrMalformedUTF8) {
		t.Errorf("DecodeRune(empty): got %v, want %v", err, escape.ErrMalformedUTF8)
	}
}

func TestRoundTrip(t *testing.T) {
	for r := rune(0); r <= 0x10ffff; r += 0x3f {
		enc := escape.AppendRune(nil, r)
		got, n, err := escape.DecodeRune(mem.B(enc))
		if err != nil {
			t.Fatalf("DecodeRune(%q): unexpected error: %v", enc, err)
		}
		if got != r || n != len(enc) {
			t.Errorf("Round trip %U: got %U, %d bytes; want %d bytes", r, got, n, len(enc))
		}
	}
}

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		input string
		want  rune
		ok    bool
	}{
		{"0000", 0, true},
		{"00e9", 0xe9, true},
		{"00E9", 0xe9, true},
		{"aBcD", 0xabcd, true},
		{"D83D", 0xd83d, true},
		{"ffff", 0xffff, true},
		{"", 0, false},
		{"123", 0, false},
		{"12345", 0, false},
		{"12g4", 0, false},
		{"-123", 0, false},
	}
	for _, test := range tests {
		got, err := escape.DecodeHex([]byte(test.input))
		if test.ok {
			if err != nil || got != test.want {
				t.Errorf("DecodeHex(%q): got %U, %v; want %U", test.input, got, err, test.want)
			}
		} else if !errors.Is(err, escape.ErrInvalidHex) {
			t.Errorf("DecodeHex(%q): got %U, %v; want %v", test.input, got, err, escape.ErrInvalidHex)
		}
	}
}

func TestUnescape(t *testing.T) {
	const input = `"\/bfnrt`
	const want = "\"\\/\b\f\n\r\t"
	for i := 0; i < len(input); i++ {
		got, ok := escape.Unescape(input[i])
		if !ok || got != want[i] {
			t.Errorf("Unescape(%q): got %q, %v; want %q", input[i], got, ok, want[i])
		}
	}
	for _, c := range []byte("uxaB0 \x00") {
		if got, ok := escape.Unescape(c); ok {
			t.Errorf("Unescape(%q): got %q, want no escape", c, got)
		}
	}
}
