// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jindent

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// A Number is the exact value of a JSON number literal, represented as an
// arbitrary-precision integer mantissa scaled by a power of ten:
//
//	value = Mantissa() * 10^Exponent()
//
// No rounding occurs when a Number is parsed, and the mantissa is not
// normalized: 1.50 has mantissa 150 and exponent -2. The zero Number is 0.
type Number struct{ d decimal.Decimal }

// NewNumber constructs a Number with the given mantissa and exponent.
// The mantissa is copied.
func NewNumber(mantissa *big.Int, exp int32) Number {
	return Number{d: decimal.NewFromBigInt(mantissa, exp)}
}

// Mantissa returns a copy of the integer mantissa of n.
func (n Number) Mantissa() *big.Int { return n.d.Coefficient() }

// Exponent returns the decimal exponent of n.
func (n Number) Exponent() int32 { return n.d.Exponent() }

// Decimal returns n as an arbitrary-precision decimal value.
func (n Number) Decimal() decimal.Decimal { return n.d }

// Equal reports whether n and m denote the same numeric value, regardless of
// their representation. For example, 1.0 and 10e-1 are equal.
func (n Number) Equal(m Number) bool {
	if n.d.Sign() != m.d.Sign() {
		return false
	} else if n.d.Sign() == 0 {
		return true
	}
	nm, ne := trimZeros(n.d)
	mm, me := trimZeros(m.d)
	return ne == me && nm.Cmp(mm) == 0
}

// trimZeros returns the mantissa and exponent of a nonzero d with trailing
// zero digits moved from the mantissa into the exponent. Unlike rescaling,
// the cost does not depend on the magnitude of the exponent.
func trimZeros(d decimal.Decimal) (*big.Int, int64) {
	c, e := d.Coefficient(), int64(d.Exponent())
	ten := big.NewInt(10)
	var q, r big.Int
	for {
		q.QuoRem(c, ten, &r)
		if r.Sign() != 0 {
			return c, e
		}
		c.Set(&q)
		e++
	}
}

// String renders n in its exact form: the decimal mantissa, followed by
// "e" and the exponent if the exponent is not zero.
func (n Number) String() string {
	s := n.d.Coefficient().String()
	if exp := n.d.Exponent(); exp != 0 {
		s += "e" + strconv.Itoa(int(exp))
	}
	return s
}

// Int64 reports the value of n as an int64, and whether n denotes an
// integral value representable in an int64.
func (n Number) Int64() (int64, bool) {
	m := n.d.Coefficient()
	if m.Sign() == 0 {
		return 0, true
	}
	switch exp := n.d.Exponent(); {
	case exp > 18:
		return 0, false // |m| >= 1, so |n| >= 10^19
	case exp < 0:
		if -int64(exp) > int64(len(m.Text(10))) {
			return 0, false // more fractional digits than the mantissa has
		} else if !n.d.IsInteger() {
			return 0, false
		}
	}
	z := n.d.BigInt()
	if !z.IsInt64() {
		return 0, false
	}
	return z.Int64(), true
}

// Float64 reports the float64 value nearest to n, and whether that value is
// finite. Values too small to represent round to zero.
func (n Number) Float64() (float64, bool) {
	f, _ := strconv.ParseFloat(n.String(), 64)
	if math.IsInf(f, 0) {
		return f, false
	}
	return f, true
}

// NumberMode selects how the printer renders numbers.
type NumberMode int

// Constants defining the valid NumberMode values.
const (
	Exact   NumberMode = iota // mantissa and exponent, without rounding
	Integer                   // native int64 values
	Float                     // native float64 values
)

var modeStr = [...]string{
	Exact:   "exact",
	Integer: "integer",
	Float:   "float",
}

func (m NumberMode) String() string {
	if m < 0 || int(m) >= len(modeStr) {
		return fmt.Sprintf("NumberMode(%d)", int(m))
	}
	return modeStr[m]
}

// ParseNumberMode returns the NumberMode with the given name, one of "exact",
// "integer", or "float".
func ParseNumberMode(s string) (NumberMode, error) {
	for i, name := range modeStr {
		if s == name {
			return NumberMode(i), nil
		}
	}
	return Exact, fmt.Errorf("unknown number mode %q", s)
}
