// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"io"

	"github.com/creachadair/jindent"
)

// Parse parses and returns a single JSON value from r. A byte order mark at
// the front of the input is skipped, and only whitespace may follow the value.
func Parse(r io.Reader) (Value, error) {
	s := jindent.NewScanner(r)
	if err := s.SkipBOM(); err != nil {
		return nil, err
	}
	p := jindent.NewParserWithScanner(s)
	v, err := ParseWith(p)
	if err != nil {
		return nil, err
	}
	if err := p.ExpectEnd(); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseWith parses and returns the next JSON value read by p.
func ParseWith(p *jindent.Parser) (Value, error) {
	t, err := p.PeekType()
	if err != nil {
		return nil, err
	}
	switch t {
	case jindent.ObjectType:
		obj := new(Object)
		err := p.ParseObject(func(key string) error {
			v, err := ParseWith(p)
			if err != nil {
				return err
			}
			obj.Members = append(obj.Members, &Member{Key: key, Value: v})
			return nil
		})
		if err != nil {
			return nil, err
		}
		return obj, nil

	case jindent.ArrayType:
		arr := new(Array)
		err := p.ParseArray(func(int) error {
			v, err := ParseWith(p)
			if err != nil {
				return err
			}
			arr.Values = append(arr.Values, v)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return arr, nil

	case jindent.StringType:
		s, err := p.ParseString()
		if err != nil {
			return nil, err
		}
		return String(s), nil

	case jindent.NumberType:
		n, err := p.ParseNumber()
		if err != nil {
			return nil, err
		}
		return Number{value: n}, nil

	case jindent.BooleanType:
		b, err := p.ParseBoolean()
		if err != nil {
			return nil, err
		}
		return Bool(b), nil

	case jindent.NullType:
		if err := p.ParseNull(); err != nil {
			return nil, err
		}
		return Null{}, nil
	}

	// At end of input, Skip reports the error.
	return nil, p.Skip()
}
