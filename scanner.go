// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jindent

import (
	"bufio"
	"fmt"
	"io"
)

// Type is the type of a JSON value, as determined by the first character of
// its encoding.
type Type byte

// Constants defining the valid Type values.
const (
	InvalidType Type = iota // no valid type; reported alongside an error
	ArrayType               // array: [ ... ]
	ObjectType              // object: { ... }
	StringType              // quoted string
	NumberType              // number
	BooleanType             // constant: true or false
	NullType                // constant: null
	EndOfInput              // no further input is available
)

var typeStr = [...]string{
	InvalidType: "invalid",
	ArrayType:   "array",
	ObjectType:  "object",
	StringType:  "string",
	NumberType:  "number",
	BooleanType: "boolean",
	NullType:    "null",
	EndOfInput:  "end of input",
}

func (t Type) String() string {
	v := int(t)
	if v >= len(typeStr) {
		return typeStr[InvalidType]
	}
	return typeStr[v]
}

// A Scanner reads characters from an input stream and tracks the position of
// the next unread byte. It provides the character-level primitives used by
// the Parser: whitespace skipping, literal matching, and one-character
// lookahead to classify the next value.
//
// Errors reported by a Scanner have concrete type [*SyntaxError].
type Scanner struct {
	r *bufio.Reader

	pos       int // offset of the next unread byte
	line, col int // apparent line and column of pos (0-based)
}

// NewScanner constructs a new scanner that consumes input from r.
// If r is already a *bufio.Reader, it is used directly.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// Offset returns the byte offset of the next unread byte of the input.
func (s *Scanner) Offset() int { return s.pos }

// Location returns the line and column of the next unread byte.
func (s *Scanner) Location() LineCol { return LineCol{Line: s.line + 1, Column: s.col} }

// SkipSpace discards whitespace (space, tab, CR, LF) from the input and
// returns the next byte without consuming it. At the end of the input it
// returns -1 and a nil error.
func (s *Scanner) SkipSpace() (int, error) {
	for {
		c, err := s.peek()
		if err != nil || !isSpace(c) {
			return c, err
		}
		s.advance(byte(c))
	}
}

// PeekType skips whitespace and classifies the next value by its first
// character, without consuming it. At the end of input it returns
// EndOfInput. A character that cannot begin a value is reported as
// ErrUnexpectedToken.
func (s *Scanner) PeekType() (Type, error) {
	c, err := s.SkipSpace()
	if err != nil {
		return InvalidType, err
	}
	switch {
	case c < 0:
		return EndOfInput, nil
	case c == '{':
		return ObjectType, nil
	case c == '[':
		return ArrayType, nil
	case c == '"':
		return StringType, nil
	case c == '-' || isDigit(c):
		return NumberType, nil
	case c == 't' || c == 'f':
		return BooleanType, nil
	case c == 'n':
		return NullType, nil
	}
	return InvalidType, s.failf(ErrUnexpectedToken, "unexpected %s", describe(c))
}

// Expect skips whitespace and then consumes ch, or reports
// ErrUnexpectedToken if the next character is not ch.
func (s *Scanner) Expect(ch byte) error {
	c, err := s.SkipSpace()
	if err != nil {
		return err
	} else if c != int(ch) {
		return s.failf(ErrUnexpectedToken, "expected %q, got %s", ch, describe(c))
	}
	s.advance(ch)
	return nil
}

// ExpectLiteral consumes exactly the bytes of text, or reports
// ErrUnexpectedToken at the first byte that does not match. Whitespace is
// not skipped.
func (s *Scanner) ExpectLiteral(text string) error {
	return s.literal(text, ErrUnexpectedToken)
}

// SkipBOM discards a UTF-8 byte order mark (EF BB BF) at the front of the
// input, if one is present. If the input begins with EF but does not contain
// a complete mark, SkipBOM reports ErrMalformedBOM.
func (s *Scanner) SkipBOM() error {
	c, err := s.peek()
	if err != nil || c != 0xef {
		return err
	}
	buf, err := s.r.Peek(3)
	if err != nil && err != io.EOF {
		return s.fail(err)
	} else if len(buf) < 3 || buf[1] != 0xbb || buf[2] != 0xbf {
		return s.failf(ErrMalformedBOM, "incomplete byte order mark % x", buf)
	}
	s.r.Discard(3)
	s.pos += 3
	s.col += 3
	return nil
}

func (s *Scanner) literal(text string, kind error) error {
	for i := 0; i < len(text); i++ {
		c, err := s.peek()
		if err != nil {
			return err
		} else if c != int(text[i]) {
			return s.failf(kind, "expected %q, got %s", text, describe(c))
		}
		s.advance(text[i])
	}
	return nil
}

// peek returns the next byte of input without consuming it, or -1 at the end
// of the input.
func (s *Scanner) peek() (int, error) {
	buf, err := s.r.Peek(1)
	if err == io.EOF {
		return -1, nil
	} else if err != nil {
		return -1, s.fail(err)
	}
	return int(buf[0]), nil
}

// readByte consumes and returns the next byte of input. At the end of the
// input it reports io.EOF without wrapping.
func (s *Scanner) readByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err == io.EOF {
		return 0, err
	} else if err != nil {
		return 0, s.fail(err)
	}
	s.track(b)
	return b, nil
}

// advance consumes the byte b, which the caller has already peeked.
func (s *Scanner) advance(b byte) {
	s.r.Discard(1)
	s.track(b)
}

func (s *Scanner) track(b byte) {
	s.pos++
	if b == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
}

// fail reports an I/O error from the underlying reader at the current
// position.
func (s *Scanner) fail(err error) error {
	return &SyntaxError{
		Offset:   s.pos,
		Location: s.Location(),
		Message:  fmt.Sprintf("read error: %v", err),
		err:      err,
	}
}

// failf reports an error of the given kind at the current position.
func (s *Scanner) failf(kind error, msg string, args ...any) error {
	return &SyntaxError{
		Offset:   s.pos,
		Location: s.Location(),
		Message:  fmt.Sprintf("%v: %s", kind, fmt.Sprintf(msg, args...)),
		err:      kind,
	}
}

// describe renders the byte c (or -1 for end of input) for an error message.
func describe(c int) string {
	if c < 0 {
		return "end of input"
	} else if c >= ' ' && c < 0x7f {
		return fmt.Sprintf("%q", rune(c))
	}
	return fmt.Sprintf("byte 0x%02x", c)
}

func isSpace(c int) bool {
	return c == ' ' || c == '\r' || c == '\n' || c == '\t'
}

func isDigit(c int) bool { return '0' <= c && c <= '9' }
