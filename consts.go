package calc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// constprec is the precision in bits used to compute constants before they
// are rounded to float64.
const constprec = 128

// constants maps constant names to their values. It is never modified after
// initialization.
var constants = func() map[string]Number {
	pi := new(big.Float).SetPrec(constprec)
	bigfloat.Pi(pi)
	tau := new(big.Float).SetPrec(constprec).SetInt64(2)
	tau.Mul(tau, pi)
	one := new(big.Float).SetPrec(constprec).SetInt64(1)
	e := new(big.Float).SetPrec(constprec)
	bigfloat.Exp(e, one)

	m := make(map[string]Number, 6)
	for _, c := range []struct {
		lo, up string
		v      *big.Float
	}{
		{"pi", "PI", pi},
		{"e", "E", e},
		{"tau", "TAU", tau},
	} {
		f, _ := c.v.Float64()
		m[c.lo] = Float(f)
		m[c.up] = Float(f)
	}
	return m
}()
