// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an ordered syntax tree for JSON values, and a parser
// that materializes trees using the streaming jindent parser.
package ast

import (
	"fmt"

	"github.com/creachadair/jindent"
)

// A Value is an arbitrary JSON value.
type Value interface{ Type() jindent.Type }

// An Object is a collection of key-value members, in source order.
// Duplicate keys are preserved.
type Object struct {
	Members []*Member
}

// Type satisfies the Value interface.
func (Object) Type() jindent.Type { return jindent.ObjectType }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Array is a sequence of values.
type Array struct {
	Values []Value
}

// Type satisfies the Value interface.
func (Array) Type() jindent.Type { return jindent.ArrayType }

// A String is a decoded string value.
type String string

// Type satisfies the Value interface.
func (String) Type() jindent.Type { return jindent.StringType }

// A Number is an exact numeric value.
type Number struct{ value jindent.Number }

// NewNumber returns a Number with value n.
func NewNumber(n jindent.Number) Number { return Number{value: n} }

// Type satisfies the Value interface.
func (Number) Type() jindent.Type { return jindent.NumberType }

// Value returns the exact value of n.
func (n Number) Value() jindent.Number { return n.value }

// Int64 returns the value of n as an int64. It panics if n is not an integer
// in the range of int64.
func (n Number) Int64() int64 {
	v, ok := n.value.Int64()
	if !ok {
		panic(fmt.Sprintf("value %v is not an int64", n.value))
	}
	return v
}

// Float64 returns the value of n as a float64. It panics if n is outside the
// range of float64.
func (n Number) Float64() float64 {
	v, ok := n.value.Float64()
	if !ok {
		panic(fmt.Sprintf("value %v is out of range for float64", n.value))
	}
	return v
}

// A Bool is a Boolean constant, true or false.
type Bool bool

// Type satisfies the Value interface.
func (Bool) Type() jindent.Type { return jindent.BooleanType }

// Null represents the null constant.
type Null struct{}

// Type satisfies the Value interface.
func (Null) Type() jindent.Type { return jindent.NullType }
