package calc

import (
	"math"
	"strconv"
)

// Number is the result of evaluating an expression. It is either an integer
// or a real; the zero value is the integer 0.
//
// Addition, subtraction, multiplication, and remainder of two integers are
// integers, wrapping on overflow. Any operation involving a real is real, and
// division and exponentiation are always real.
type Number struct {
	i    int64
	f    float64
	real bool
}

// Int creates an integer Number.
func Int(i int64) Number {
	return Number{i: i}
}

// Float creates a real Number.
func Float(f float64) Number {
	return Number{f: f, real: true}
}

// IsInt returns whether n is an integer.
func (n Number) IsInt() bool {
	return !n.real
}

// Int64 returns n as an integer. Reals are truncated toward zero, saturating
// at the bounds of int64. NaN converts to 0.
func (n Number) Int64() int64 {
	if !n.real {
		return n.i
	}
	return truncate(n.f)
}

// Float64 returns n as a real.
func (n Number) Float64() float64 {
	if n.real {
		return n.f
	}
	return float64(n.i)
}

// Equal returns whether n and m have the same kind and the same value. Unlike
// ==, NaN is equal to NaN.
func (n Number) Equal(m Number) bool {
	if n.real != m.real {
		return false
	}
	if !n.real {
		return n.i == m.i
	}
	return n.f == m.f || math.IsNaN(n.f) && math.IsNaN(m.f)
}

// String formats n in decimal. A real with no fractional part is formatted
// like an integer, without a decimal point.
func (n Number) String() string {
	if !n.real {
		return strconv.FormatInt(n.i, 10)
	}
	if n.f == 0 {
		// Don't print negative zero.
		return "0"
	}
	return strconv.FormatFloat(n.f, 'f', -1, 64)
}

func (n Number) neg() Number {
	if n.real {
		return Float(-n.f)
	}
	return Int(-n.i)
}

// arith applies the binary operator op to l and r.
func arith(op Token, l, r Number) (Number, error) {
	ints := !l.real && !r.real
	switch op.Kind {
	case TokenPlus:
		if ints {
			return Int(l.i + r.i), nil
		}
		return Float(l.Float64() + r.Float64()), nil
	case TokenMinus:
		if ints {
			return Int(l.i - r.i), nil
		}
		return Float(l.Float64() - r.Float64()), nil
	case TokenStar:
		if ints {
			return Int(l.i * r.i), nil
		}
		return Float(l.Float64() * r.Float64()), nil
	case TokenSlash:
		return Float(l.Float64() / r.Float64()), nil
	case TokenCaret:
		return Float(math.Pow(l.Float64(), r.Float64())), nil
	case TokenPercent:
		if ints {
			if r.i == 0 {
				return Number{}, &DomainError{Col: op.Pos, X: r, Arg: 2, Func: "%"}
			}
			return Int(l.i % r.i), nil
		}
		return Float(math.Mod(l.Float64(), r.Float64())), nil
	default:
		panic("calc: not a binary operator: " + op.String())
	}
}

// truncate converts f to int64 with saturation.
func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= 1<<63:
		return math.MaxInt64
	case f <= -1<<63:
		return math.MinInt64
	}
	return int64(f)
}
