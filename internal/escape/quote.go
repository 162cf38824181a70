// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a double-quoted JSON string whose bytes are all 7-bit
// ASCII. Control characters and every multi-byte code point are written as
// \u escapes with lowercase hex digits. Code points above U+FFFF are written
// as a UTF-16 surrogate pair.
//
// Quote reports ErrMalformedUTF8 if src is not a valid encoding.
func Quote(src mem.RO) ([]byte, error) {
	buf := make([]byte, 0, src.Len()+2)
	putByte := func(bs ...byte) { buf = append(buf, bs...) }
	putU := func(r rune) {
		putByte('\\', 'u', hexDigit[r>>12&15], hexDigit[r>>8&15], hexDigit[r>>4&15], hexDigit[r&15])
	}

	putByte('"')
	for src.Len() != 0 {
		if b := src.At(0); b < utf8.RuneSelf {
			if b < ' ' {
				if e := controlEsc[b]; e != 0 {
					putByte('\\', e)
				} else {
					putU(rune(b))
				}
			} else if b == '\\' || b == '"' {
				putByte('\\', b)
			} else {
				putByte(b)
			}
			src = src.SliceFrom(1)
			continue
		}

		r, n, err := DecodeRune(src)
		if err != nil {
			return nil, err
		}
		if r > 0xffff {
			hi, lo := utf16.EncodeRune(r)
			putU(hi)
			putU(lo)
		} else {
			putU(r)
		}
		src = src.SliceFrom(n)
	}
	putByte('"')
	return buf, nil
}
