// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jindent

import (
	"io"
	"math"
	"math/big"
	"strconv"

	"github.com/creachadair/jindent/internal/escape"
	"github.com/shopspring/decimal"
)

// DefaultMaxDepth is the default limit on the nesting depth of arrays and
// objects accepted by a Parser.
const DefaultMaxDepth = 10000

// Parser is a streaming recursive-descent parser for JSON values. Rather than
// building a tree, the parser reports the structure of arrays and objects to
// visitor functions supplied by the caller, which must consume each element
// with a further call to the parser. Only the current path from the root to
// the value being parsed is held in memory.
//
// Errors reported by the parser have concrete type [*SyntaxError], except
// errors reported by a visitor, which are returned unchanged.
type Parser struct {
	s        *Scanner
	lax      bool // ignore stray commas in objects
	maxDepth int
	depth    int

	sbuf []byte // string scratch buffer
	nbuf []byte // number digits scratch buffer
}

// NewParser constructs a new Parser that consumes input from r.
func NewParser(r io.Reader) *Parser { return NewParserWithScanner(NewScanner(r)) }

// NewParserWithScanner constructs a new Parser that consumes input from s.
func NewParserWithScanner(s *Scanner) *Parser {
	return &Parser{s: s, maxDepth: DefaultMaxDepth}
}

// AllowLaxCommas configures the parser to ignore (true) or reject (false)
// commas in objects that do not separate two members, as in {,"a":1,,}.
func (p *Parser) AllowLaxCommas(ok bool) { p.lax = ok }

// SetMaxDepth sets the maximum nesting depth of arrays and objects. If n <= 0
// the limit is reset to DefaultMaxDepth.
func (p *Parser) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	p.maxDepth = n
}

// Scanner returns the scanner from which p reads its input.
func (p *Parser) Scanner() *Scanner { return p.s }

// PeekType reports the type of the next value without consuming any of it.
func (p *Parser) PeekType() (Type, error) { return p.s.PeekType() }

// ExpectEnd reports ErrTrailingData unless only whitespace remains in the
// input.
func (p *Parser) ExpectEnd() error {
	c, err := p.s.SkipSpace()
	if err != nil {
		return err
	} else if c >= 0 {
		return p.s.failf(ErrTrailingData, "unexpected %s", describe(c))
	}
	return nil
}

// ParseString parses a quoted string and returns its decoded contents.
//
// Each \uXXXX escape is decoded to a single code point and encoded as UTF-8
// on its own. Surrogate halves are not combined into pairs; each is encoded
// as a 3-byte sequence. Other bytes are copied unchanged.
func (p *Parser) ParseString() (string, error) {
	if err := p.s.Expect('"'); err != nil {
		return "", err
	}
	buf := p.sbuf[:0]
	defer func() { p.sbuf = buf }()
	for {
		b, err := p.s.readByte()
		if err == io.EOF {
			return "", p.s.failf(ErrUnterminatedString, "missing closing quote")
		} else if err != nil {
			return "", err
		}
		if b == '"' {
			return string(buf), nil
		} else if b != '\\' {
			buf = append(buf, b)
			continue
		}

		e, err := p.s.readByte()
		if err == io.EOF {
			return "", p.s.failf(ErrUnterminatedString, "incomplete escape")
		} else if err != nil {
			return "", err
		}
		if e == 'u' {
			var hex [4]byte
			for i := range hex {
				hex[i], err = p.s.readByte()
				if err == io.EOF {
					return "", p.s.failf(ErrUnterminatedString, "incomplete Unicode escape")
				} else if err != nil {
					return "", err
				}
			}
			r, err := escape.DecodeHex(hex[:])
			if err != nil {
				return "", p.s.failf(ErrInvalidHex, "in escape %q", `\u`+string(hex[:]))
			}
			buf = escape.AppendRune(buf, r)
		} else if c, ok := escape.Unescape(e); ok {
			buf = append(buf, c)
		} else {
			return "", p.s.failf(ErrInvalidEscape, "%s after backslash", describe(int(e)))
		}
	}
}

// ParseNumber parses a number literal and returns its exact value.
// The exponent of the result, after accounting for fraction digits, must fit
// in an int32; a literal such as 1e2147483648 is reported as ErrNumberRange.
func (p *Parser) ParseNumber() (Number, error) {
	if _, err := p.s.SkipSpace(); err != nil {
		return Number{}, err
	}
	digits := p.nbuf[:0]
	defer func() { p.nbuf = digits }()

	c, err := p.s.peek()
	if err != nil {
		return Number{}, err
	}
	if c == '-' {
		digits = append(digits, '-')
		p.s.advance('-')
		if c, err = p.s.peek(); err != nil {
			return Number{}, err
		}
	}

	// Integer part: either a single 0, or a non-empty run of digits.
	if !isDigit(c) {
		return Number{}, p.s.failf(ErrExpectedDigit, "got %s", describe(c))
	} else if c == '0' {
		digits = append(digits, '0')
		p.s.advance('0')
		if c, err = p.s.peek(); err != nil {
			return Number{}, err
		} else if isDigit(c) {
			return Number{}, p.s.failf(ErrLeadingZero, "digit %s after 0", describe(c))
		}
	} else if digits, c, err = p.readDigits(digits); err != nil {
		return Number{}, err
	}

	var exp int64
	if c == '.' {
		p.s.advance('.')
		n := len(digits)
		if digits, c, err = p.readDigits(digits); err != nil {
			return Number{}, err
		} else if len(digits) == n {
			return Number{}, p.s.failf(ErrExpectedDigit, "after decimal point, got %s", describe(c))
		}
		exp = -int64(len(digits) - n)
	}

	if c == 'e' || c == 'E' {
		p.s.advance(byte(c))
		e, err := p.parseExponent()
		if err != nil {
			return Number{}, err
		}
		exp += e
	}
	if exp < math.MinInt32 || exp > math.MaxInt32 {
		return Number{}, p.s.failf(ErrNumberRange, "exponent %d", exp)
	}

	// Most literals fit in an int64 mantissa; avoid the big.Int parse.
	if len(digits) <= 18 {
		v, _ := strconv.ParseInt(string(digits), 10, 64)
		return Number{d: decimal.New(v, int32(exp))}, nil
	}
	m, _ := new(big.Int).SetString(string(digits), 10)
	return Number{d: decimal.NewFromBigInt(m, int32(exp))}, nil
}

// maxExponent bounds the exponent value accumulated while scanning, so that
// a long run of exponent digits cannot overflow.
const maxExponent = 1 << 40

// parseExponent parses the optional sign and the digits of an exponent.
func (p *Parser) parseExponent() (int64, error) {
	c, err := p.s.peek()
	if err != nil {
		return 0, err
	}
	neg := c == '-'
	if c == '-' || c == '+' {
		p.s.advance(byte(c))
		if c, err = p.s.peek(); err != nil {
			return 0, err
		}
	}
	if !isDigit(c) {
		return 0, p.s.failf(ErrExpectedDigit, "in exponent, got %s", describe(c))
	}
	var e int64
	for isDigit(c) {
		p.s.advance(byte(c))
		if e < maxExponent {
			e = e*10 + int64(c-'0')
		}
		if c, err = p.s.peek(); err != nil {
			return 0, err
		}
	}
	if neg {
		e = -e
	}
	return e, nil
}

// readDigits appends a run of decimal digits to buf, and returns the first
// non-digit byte without consuming it (-1 at end of input).
func (p *Parser) readDigits(buf []byte) ([]byte, int, error) {
	for {
		c, err := p.s.peek()
		if err != nil || !isDigit(c) {
			return buf, c, err
		}
		buf = append(buf, byte(c))
		p.s.advance(byte(c))
	}
}

// ParseInt parses a number literal that must denote an integral value
// representable as an int64, such as 5, -1.0, or 1e2. Otherwise it reports
// ErrNumberRange.
func (p *Parser) ParseInt() (int64, error) {
	n, err := p.ParseNumber()
	if err != nil {
		return 0, err
	}
	v, ok := n.Int64()
	if !ok {
		return 0, p.s.failf(ErrNumberRange, "%s is not a 64-bit integer", n)
	}
	return v, nil
}

// ParseFloat parses a number literal and returns the float64 value nearest
// to it. A value outside the finite range of float64 is reported as
// ErrNumberRange.
func (p *Parser) ParseFloat() (float64, error) {
	n, err := p.ParseNumber()
	if err != nil {
		return 0, err
	}
	f, ok := n.Float64()
	if !ok {
		return 0, p.s.failf(ErrNumberRange, "%s overflows float64", n)
	}
	return f, nil
}

// ParseBoolean parses the constant true or false.
func (p *Parser) ParseBoolean() (bool, error) {
	c, err := p.s.SkipSpace()
	if err != nil {
		return false, err
	}
	switch c {
	case 't':
		if err := p.s.literal("true", ErrExpectedBooleanLiteral); err != nil {
			return false, err
		}
		return true, nil
	case 'f':
		return false, p.s.literal("false", ErrExpectedBooleanLiteral)
	}
	return false, p.s.failf(ErrExpectedBooleanLiteral, "got %s", describe(c))
}

// ParseNull parses the constant null.
func (p *Parser) ParseNull() error {
	if _, err := p.s.SkipSpace(); err != nil {
		return err
	}
	return p.s.literal("null", ErrExpectedNullLiteral)
}

// ParseArray parses an array, calling visit once for each element in order
// with its 0-based index. The visitor must consume exactly one value from p.
// If visit reports an error, parsing stops and that error is returned.
func (p *Parser) ParseArray(visit func(index int) error) error {
	if err := p.s.Expect('['); err != nil {
		return err
	}
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	c, err := p.s.SkipSpace()
	if err != nil {
		return err
	} else if c == ']' {
		p.s.advance(']')
		return nil
	}
	for i := 0; ; i++ {
		if err := visit(i); err != nil {
			return err
		}
		c, err := p.s.SkipSpace()
		if err != nil {
			return err
		}
		switch c {
		case ']':
			p.s.advance(']')
			return nil
		case ',':
			p.s.advance(',')
		default:
			return p.s.failf(ErrExpectedCommaOrCloseBracket, "got %s", describe(c))
		}
	}
}

// ParseObject parses an object, calling visit once for each member in source
// order with its decoded name. The visitor must consume exactly the value of
// the member from p. If visit reports an error, parsing stops and that error
// is returned.
func (p *Parser) ParseObject(visit func(name string) error) error {
	if err := p.s.Expect('{'); err != nil {
		return err
	}
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	if p.lax {
		return p.laxMembers(visit)
	}
	c, err := p.s.SkipSpace()
	if err != nil {
		return err
	} else if c == '}' {
		p.s.advance('}')
		return nil
	}
	for {
		if c != '"' {
			return p.s.failf(ErrUnexpectedCharacterInObject, "expected member name, got %s", describe(c))
		} else if err := p.member(visit); err != nil {
			return err
		}

		c, err = p.s.SkipSpace()
		if err != nil {
			return err
		}
		switch c {
		case '}':
			p.s.advance('}')
			return nil
		case ',':
			p.s.advance(',')
		default:
			return p.s.failf(ErrUnexpectedCharacterInObject, "expected ',' or '}', got %s", describe(c))
		}
		if c, err = p.s.SkipSpace(); err != nil {
			return err
		}
	}
}

// laxMembers parses the members of an object, treating commas as optional
// separators that may appear anywhere between members.
func (p *Parser) laxMembers(visit func(string) error) error {
	for {
		c, err := p.s.SkipSpace()
		if err != nil {
			return err
		}
		switch c {
		case '}':
			p.s.advance('}')
			return nil
		case ',':
			p.s.advance(',')
		case '"':
			if err := p.member(visit); err != nil {
				return err
			}
		default:
			return p.s.failf(ErrUnexpectedCharacterInObject, "got %s", describe(c))
		}
	}
}

// member parses a single "name": value member, delegating the value to visit.
func (p *Parser) member(visit func(string) error) error {
	name, err := p.ParseString()
	if err != nil {
		return err
	}
	if err := p.s.Expect(':'); err != nil {
		return err
	}
	return visit(name)
}

// Skip parses and discards a single value of any type.
func (p *Parser) Skip() error {
	t, err := p.s.PeekType()
	if err != nil {
		return err
	}
	switch t {
	case ObjectType:
		return p.ParseObject(func(string) error { return p.Skip() })
	case ArrayType:
		return p.ParseArray(func(int) error { return p.Skip() })
	case StringType:
		_, err = p.ParseString()
	case NumberType:
		_, err = p.ParseNumber()
	case BooleanType:
		_, err = p.ParseBoolean()
	case NullType:
		err = p.ParseNull()
	default:
		err = p.s.failf(ErrUnexpectedToken, "unexpected %v", t)
	}
	return err
}

func (p *Parser) enter() error {
	if p.depth >= p.maxDepth {
		return p.s.failf(ErrMaxDepthExceeded, "limit is %d", p.maxDepth)
	}
	p.depth++
	return nil
}

func (p *Parser) leave() { p.depth-- }
