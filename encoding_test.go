// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jindent_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jindent"
)

func TestQuoteUnquote(t *testing.T) {
	tests := []struct {
		raw, quoted string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{"a\"b\\c", `"a\"b\\c"`},
		{"line\nfeed\ttab", `"line\nfeed\ttab"`},
		{"\x00\x1f", `"\u0000\u001f"`},
		{"caf\u00e9", `"caf\u00e9"`},
		{"\xed\xa0\x80", `"\ud800"`},
	}
	for _, test := range tests {
		q, err := jindent.Quote(test.raw)
		if err != nil {
			t.Errorf("Quote(%q): unexpected error: %v", test.raw, err)
		} else if q != test.quoted {
			t.Errorf("Quote(%q): got %#q, want %#q", test.raw, q, test.quoted)
		}

		u, err := jindent.Unquote(test.quoted)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", test.quoted, err)
		} else if u != test.raw {
			t.Errorf("Unquote(%#q): got %q, want %q", test.quoted, u, test.raw)
		}
	}
}

func TestQuoteErrors(t *testing.T) {
	if got, err := jindent.Quote("a\xffb"); !errors.Is(err, jindent.ErrMalformedUTF8) {
		t.Errorf("Quote: got %q, %v; want %v", got, err, jindent.ErrMalformedUTF8)
	}

	tests := []struct {
		input string
		want  error
	}{
		{``, jindent.ErrUnexpectedToken},
		{`abc`, jindent.ErrUnexpectedToken},
		{`"abc`, jindent.ErrUnterminatedString},
		{`"a" "b"`, jindent.ErrTrailingData},
		{`"\q"`, jindent.ErrInvalidEscape},
		{`"\uzzzz"`, jindent.ErrInvalidHex},
	}
	for _, test := range tests {
		if got, err := jindent.Unquote(test.input); !errors.Is(err, test.want) {
			t.Errorf("Unquote(%#q): got %q, %v; want %v", test.input, got, err, test.want)
		}
	}
}
