// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jindent

import (
	"errors"
	"fmt"

	"github.com/creachadair/jindent/internal/escape"
)

// Error conditions reported by the scanner, parser and printer. Each is
// wrapped by a [*SyntaxError] that records where it occurred; use errors.Is
// to test for a specific condition.
var (
	ErrUnexpectedToken             = errors.New("unexpected token")
	ErrExpectedDigit               = errors.New("expected digit")
	ErrLeadingZero                 = errors.New("leading zero in number")
	ErrNumberRange                 = errors.New("number out of range")
	ErrInvalidEscape               = errors.New("invalid escape sequence")
	ErrUnterminatedString          = errors.New("unterminated string")
	ErrExpectedCommaOrCloseBracket = errors.New("expected ',' or ']'")
	ErrUnexpectedCharacterInObject = errors.New("unexpected character in object")
	ErrExpectedBooleanLiteral      = errors.New("expected boolean literal")
	ErrExpectedNullLiteral         = errors.New("expected null literal")
	ErrMalformedBOM                = errors.New("malformed byte order mark")
	ErrMaxDepthExceeded            = errors.New("maximum nesting depth exceeded")
	ErrTrailingData                = errors.New("unexpected data after value")

	ErrInvalidHex    = escape.ErrInvalidHex
	ErrMalformedUTF8 = escape.ErrMalformedUTF8
)

// SyntaxError is the concrete type of errors reported by the scanner, parser
// and printer. It unwraps to one of the Err* conditions defined by this
// package, or to the error reported by the underlying reader.
type SyntaxError struct {
	Offset   int     // byte offset of the error, 0-based
	Location LineCol // line and column of the error
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
