// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jindent implements a streaming JSON re-indenter that preserves the
// order of object members and the exact decimal value of numbers.
//
// # Parsing
//
// The Parser type implements a single-pass recursive-descent parser that
// never builds a tree. Scalar values are returned directly by ParseString,
// ParseNumber, ParseBoolean and ParseNull. Arrays and objects are reported to
// a visitor function, which must consume each element with a further call to
// the parser:
//
//	p := jindent.NewParser(input)
//	err := p.ParseObject(func(name string) error {
//	   if name == "id" {
//	      id, err := p.ParseInt()
//	      ...
//	   }
//	   return p.Skip()
//	})
//
// Numbers are parsed into a Number, which records the exact mantissa and
// decimal exponent of the literal without rounding. Use ParseInt or
// ParseFloat to convert directly to a native type.
//
// In case of error, parsing stops and an error of concrete type
// *jindent.SyntaxError is returned, which wraps one of the Err* conditions
// defined by this package. An error reported by a visitor is returned as-is.
//
// # Printing
//
// The Printer type consumes a document through a Parser and writes it in an
// indented form:
//
//	{
//	  "name": "value",
//	  "list": [
//	    1,
//	    25e-1
//	  ]
//	}
//
// Strings are re-escaped so that the output is 7-bit ASCII. Numbers are
// written in the form selected by the NumberMode of the printer: by default
// the exact mantissa, followed by "e" and the exponent if it is not zero.
//
//	if err := jindent.Render(os.Stdout, input); err != nil {
//	   log.Fatalf("Render failed: %v", err)
//	}
package jindent
