// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import "errors"

// ErrInvalidHex is reported by DecodeHex for input that is not exactly four
// hexadecimal digits.
var ErrInvalidHex = errors.New("invalid hex digit")

// Unescape reports the byte denoted by the short escape sequence \c, and
// whether c names a valid short escape. The \u escape is not handled here.
func Unescape(c byte) (byte, bool) {
	switch c {
	case '"', '\\', '/':
		return c, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// DecodeHex decodes the four hexadecimal digits of a \uXXXX escape into a
// code point. Digits are case-insensitive.
func DecodeHex(data []byte) (rune, error) {
	if len(data) != 4 {
		return 0, ErrInvalidHex
	}
	var v rune
	for _, b := range data {
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, ErrInvalidHex
		}
	}
	return v, nil
}
