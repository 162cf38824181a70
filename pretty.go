// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jindent

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/creachadair/jindent/internal/escape"
	"go4.org/mem"
)

// MaxPaddingLimit is the largest padding cap a Printer accepts. Larger
// values of Options.MaxPadding are reduced to this limit.
const MaxPaddingLimit = 1 << 16

// Options control the output of a Printer. Fields with zero or negative
// values take their defaults from DefaultOptions, except Numbers and
// LaxCommas whose zero values are meaningful.
type Options struct {
	IndentWidth int        // spaces of indentation per nesting level
	MaxPadding  int        // maximum number of spaces of indentation per line
	MaxDepth    int        // maximum nesting depth of arrays and objects
	Numbers     NumberMode // how numbers are rendered
	LaxCommas   bool       // ignore stray commas in objects
}

// DefaultOptions returns the default printer options.
func DefaultOptions() Options {
	return Options{
		IndentWidth: 2,
		MaxPadding:  8192,
		MaxDepth:    DefaultMaxDepth,
		Numbers:     Exact,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.IndentWidth <= 0 {
		o.IndentWidth = def.IndentWidth
	}
	if o.MaxPadding <= 0 {
		o.MaxPadding = def.MaxPadding
	} else if o.MaxPadding > MaxPaddingLimit {
		o.MaxPadding = MaxPaddingLimit
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = def.MaxDepth
	}
	return o
}

// A Printer re-serializes JSON values in an indented form. Members of
// objects are written one per line in their original order, and elements of
// arrays one per line, each indented by the nesting level. Strings are
// re-escaped so that the output consists only of 7-bit ASCII, and numbers are
// written according to the NumberMode of the printer.
//
// A Printer holds no state between calls to Render, but is not safe for
// concurrent use by multiple goroutines.
type Printer struct {
	opts   Options
	spaces string // MaxPadding spaces, sliced to make padding
}

// NewPrinter constructs a printer with the given options.
func NewPrinter(opts Options) *Printer {
	opts = opts.withDefaults()
	return &Printer{opts: opts, spaces: strings.Repeat(" ", opts.MaxPadding)}
}

// Options returns the effective options of p.
func (p *Printer) Options() Options { return p.opts }

// Padding returns the indentation for the given nesting level, which is
// IndentWidth spaces per level, but no more than MaxPadding spaces.
func (p *Printer) Padding(level int) string {
	n := p.opts.IndentWidth * level
	if n > p.opts.MaxPadding || n < 0 {
		n = p.opts.MaxPadding
	}
	return p.spaces[:n]
}

// Render renders a single JSON document read from r to w. A byte order mark
// at the front of the input is skipped, and only whitespace may follow the
// value. If r contains only whitespace, Render writes nothing and reports
// success.
//
// Output is buffered; on error, some of the document may have been written.
func (p *Printer) Render(w io.Writer, r io.Reader) error {
	s := NewScanner(r)
	if err := s.SkipBOM(); err != nil {
		return err
	}
	ps := p.newParser(s)
	if t, err := ps.PeekType(); err != nil {
		return err
	} else if t == EndOfInput {
		return nil
	}
	if err := p.RenderValue(w, ps); err != nil {
		return err
	}
	return ps.ExpectEnd()
}

// RenderValue renders the next value read by ps to w. It does not check for
// input following the value. The comma and depth settings of ps are used as
// given.
func (p *Printer) RenderValue(w io.Writer, ps *Parser) error {
	r := &renderer{Printer: p, ps: ps, w: bufio.NewWriter(w)}
	if err := r.value(0); err != nil {
		return err
	}
	return r.w.Flush()
}

// Render renders a single JSON document from r to w using DefaultOptions.
func Render(w io.Writer, r io.Reader) error {
	return NewPrinter(DefaultOptions()).Render(w, r)
}

func (p *Printer) newParser(s *Scanner) *Parser {
	ps := NewParserWithScanner(s)
	ps.AllowLaxCommas(p.opts.LaxCommas)
	ps.SetMaxDepth(p.opts.MaxDepth)
	return ps
}

// renderer holds the state of a single call to RenderValue.
type renderer struct {
	*Printer
	ps *Parser
	w  *bufio.Writer
}

func (r *renderer) value(level int) error {
	t, err := r.ps.PeekType()
	if err != nil {
		return err
	}
	switch t {
	case ObjectType:
		return r.object(level)
	case ArrayType:
		return r.array(level)
	case StringType:
		s, err := r.ps.ParseString()
		if err != nil {
			return err
		}
		return r.quote(s)
	case NumberType:
		return r.number()
	case BooleanType:
		b, err := r.ps.ParseBoolean()
		if err != nil {
			return err
		}
		r.w.WriteString(strconv.FormatBool(b))
		return nil
	case NullType:
		if err := r.ps.ParseNull(); err != nil {
			return err
		}
		r.w.WriteString("null")
		return nil
	}
	return r.ps.s.failf(ErrUnexpectedToken, "unexpected %v", t)
}

func (r *renderer) object(level int) error {
	r.w.WriteByte('{')
	var n int
	if err := r.ps.ParseObject(func(name string) error {
		r.element(n, level+1)
		n++
		if err := r.quote(name); err != nil {
			return err
		}
		r.w.WriteString(": ")
		return r.value(level + 1)
	}); err != nil {
		return err
	}
	r.close(n, level, '}')
	return nil
}

func (r *renderer) array(level int) error {
	r.w.WriteByte('[')
	var n int
	if err := r.ps.ParseArray(func(int) error {
		r.element(n, level+1)
		n++
		return r.value(level + 1)
	}); err != nil {
		return err
	}
	r.close(n, level, ']')
	return nil
}

// element starts the i'th element of a container whose elements are at the
// given nesting level.
func (r *renderer) element(i, level int) {
	if i > 0 {
		r.w.WriteByte(',')
	}
	r.w.WriteByte('\n')
	r.w.WriteString(r.Padding(level))
}

// close ends a container at the given nesting level that had n elements.
func (r *renderer) close(n, level int, bracket byte) {
	if n > 0 {
		r.w.WriteByte('\n')
		r.w.WriteString(r.Padding(level))
	}
	r.w.WriteByte(bracket)
}

func (r *renderer) quote(s string) error {
	q, err := escape.Quote(mem.S(s))
	if err != nil {
		return r.ps.s.failf(err, "in string %q", truncate(s, 32))
	}
	r.w.Write(q)
	return nil
}

func (r *renderer) number() error {
	switch r.opts.Numbers {
	case Integer:
		v, err := r.ps.ParseInt()
		if err != nil {
			return err
		}
		r.w.WriteString(strconv.FormatInt(v, 10))
	case Float:
		f, err := r.ps.ParseFloat()
		if err != nil {
			return err
		}
		r.w.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	default:
		n, err := r.ps.ParseNumber()
		if err != nil {
			return err
		}
		r.w.WriteString(n.String())
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
