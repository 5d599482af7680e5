package calc

import "math"

// Func is a built-in function.
type Func interface {
	// Call evaluates the function. args has a length for which CanCall
	// returned true. Call may modify the elements of args.
	Call(args []Number) (Number, error)

	// CanCall returns whether the function can be called with n arguments.
	CanCall(n int) bool
}

// globalfuncs is the function table. It is never modified after
// initialization.
var globalfuncs = map[string]Func{
	// min and max are real even for integer arguments.
	"min": Fold(math.Inf(1), fmin),
	"max": Fold(math.Inf(-1), fmax),

	"atan2": Dyadic(math.Atan2),
	"hypot": Dyadic(math.Hypot),
	"pow":   ipow{},

	"exp":   Monadic(math.Exp),
	"log":   Monadic(math.Log),
	"log10": Monadic(math.Log10),
	"log2":  Monadic(math.Log2),
	"sqrt":  Monadic(math.Sqrt),
	"abs":   Monadic(math.Abs),
	"floor": Monadic(math.Floor),
	"ceil":  Monadic(math.Ceil),
	"round": Monadic(math.Round),
	"sin":   Monadic(math.Sin),
	"cos":   Monadic(math.Cos),
	"tan":   Monadic(math.Tan),
	"asin":  Monadic(math.Asin),
	"acos":  Monadic(math.Acos),
	"atan":  Monadic(math.Atan),
	"sinh":  Monadic(math.Sinh),
	"cosh":  Monadic(math.Cosh),
	"tanh":  Monadic(math.Tanh),
}

// Apply calls the built-in function with the given name. If there is no such
// function, the error is a *FuncError; if the function cannot take
// len(args) arguments, it is a *CallError. Errors from Apply have position 0.
func Apply(name string, args ...Number) (Number, error) {
	fn := globalfuncs[name]
	if fn == nil {
		return Number{}, &FuncError{Func: name}
	}
	return call(Token{Kind: TokenIdent, Text: name}, fn, args)
}

// call checks the arity of a call to fn and evaluates it.
func call(name Token, fn Func, args []Number) (Number, error) {
	if !fn.CanCall(len(args)) {
		return Number{}, &CallError{Col: name.Pos, Func: name.Text, Len: len(args)}
	}
	return fn.Call(args)
}

type monadic struct {
	f func(float64) float64
}

func (m monadic) Call(args []Number) (Number, error) {
	return Float(m.f(args[0].Float64())), nil
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a real function of one variable into a Func.
func Monadic(f func(float64) float64) Func {
	return monadic{f}
}

type dyadic struct {
	f func(x, y float64) float64
}

func (d dyadic) Call(args []Number) (Number, error) {
	return Float(d.f(args[0].Float64(), args[1].Float64())), nil
}

func (d dyadic) CanCall(n int) bool {
	return n == 2
}

// Dyadic wraps a real function of two variables into a Func.
func Dyadic(f func(x, y float64) float64) Func {
	return dyadic{f}
}

type fold struct {
	seed float64
	f    func(x, y float64) float64
}

func (v fold) Call(args []Number) (Number, error) {
	r := v.seed
	for _, x := range args {
		r = v.f(r, x.Float64())
	}
	return Float(r), nil
}

func (v fold) CanCall(n int) bool {
	return n > 0
}

// Fold wraps a real function of two variables into a Func taking one or more
// arguments, combining them from left to right starting from seed.
func Fold(seed float64, f func(x, y float64) float64) Func {
	return fold{seed, f}
}

// fmin returns the lesser of x and y, or the other if one is NaN.
func fmin(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	}
	return math.Min(x, y)
}

// fmax returns the greater of x and y, or the other if one is NaN.
func fmax(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	}
	return math.Max(x, y)
}

// ipow is integer exponentiation. Both arguments are truncated to integers,
// the exponent to 32 unsigned bits, and the result wraps on overflow. This
// differs from the ^ operator, which is always real.
type ipow struct{}

func (ipow) Call(args []Number) (Number, error) {
	x := args[0].Int64()
	y := uint32(args[1].Int64())
	r := int64(1)
	for y != 0 {
		if y&1 != 0 {
			r *= x
		}
		x *= x
		y >>= 1
	}
	return Int(r), nil
}

func (ipow) CanCall(n int) bool {
	return n == 2
}
