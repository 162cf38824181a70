// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jindent

import (
	"strings"

	"github.com/creachadair/jindent/internal/escape"
	"go4.org/mem"
)

// Quote encodes src as a JSON string value in the form written by a Printer:
// the contents are escaped so that the result is 7-bit ASCII, and double
// quotation marks are added. Quote reports ErrMalformedUTF8 if src is not
// valid UTF-8, allowing for encoded surrogate halves.
func Quote(src string) (string, error) {
	q, err := escape.Quote(mem.S(src))
	if err != nil {
		return "", err
	}
	return string(q), nil
}

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
// Apart from surrounding whitespace, src must contain exactly one string.
func Unquote(src string) (string, error) {
	p := NewParser(strings.NewReader(src))
	s, err := p.ParseString()
	if err != nil {
		return "", err
	} else if err := p.ExpectEnd(); err != nil {
		return "", err
	}
	return s, nil
}
