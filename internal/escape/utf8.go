// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"errors"

	"go4.org/mem"
)

// ErrMalformedUTF8 is reported for a byte sequence that is not a complete,
// well-formed UTF-8 encoding of a code point.
var ErrMalformedUTF8 = errors.New("malformed UTF-8")

const maxRune = 0x10ffff

// AppendRune appends the shortest UTF-8 encoding of r to dst and returns the
// extended slice. Unlike utf8.AppendRune, code points in the surrogate range
// are encoded as their own 3-byte sequence rather than replaced.
func AppendRune(dst []byte, r rune) []byte {
	if r < 0 || r > maxRune {
		r = 0xfffd
	}
	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst, 0xc0|byte(r>>6), 0x80|byte(r)&0x3f)
	case r < 0x10000:
		return append(dst, 0xe0|byte(r>>12), 0x80|byte(r>>6)&0x3f, 0x80|byte(r)&0x3f)
	}
	return append(dst, 0xf0|byte(r>>18), 0x80|byte(r>>12)&0x3f,
		0x80|byte(r>>6)&0x3f, 0x80|byte(r)&0x3f)
}

// DecodeRune decodes the first UTF-8 sequence of src, returning the code
// point and its length in bytes. The lead byte determines the length of the
// sequence and each following byte must have the form 10xxxxxx.
//
// Encoded surrogate code points are accepted. An empty src, a stray
// continuation byte, an invalid lead byte, a bad or missing continuation
// byte, or a value above U+10FFFF reports ErrMalformedUTF8.
func DecodeRune(src mem.RO) (rune, int, error) {
	if src.Len() == 0 {
		return 0, 0, ErrMalformedUTF8
	}
	lead := src.At(0)
	var r rune
	var n int
	switch {
	case lead < 0x80:
		return rune(lead), 1, nil
	case lead < 0xc0:
		return 0, 0, ErrMalformedUTF8 // stray continuation
	case lead < 0xe0:
		r, n = rune(lead&0x1f), 2
	case lead < 0xf0:
		r, n = rune(lead&0x0f), 3
	case lead < 0xf8:
		r, n = rune(lead&0x07), 4
	default:
		return 0, 0, ErrMalformedUTF8
	}
	if src.Len() < n {
		return 0, 0, ErrMalformedUTF8
	}
	for i := 1; i < n; i++ {
		b := src.At(i)
		if b&0xc0 != 0x80 {
			return 0, 0, ErrMalformedUTF8
		}
		r = r<<6 | rune(b&0x3f)
	}
	if r > maxRune {
		return 0, 0, ErrMalformedUTF8
	}
	return r, n, nil
}
