package calc

import (
	"io"
	"strings"
)

// Eval is a shortcut to lex, parse, and evaluate an entire expression. Unlike
// Parser.Expression, Eval requires the expression to end at the end of input.
func Eval(src io.RuneScanner, opts ...Option) (Number, error) {
	toks, err := Lex(src)
	if err != nil {
		return Number{}, err
	}
	p := NewParser(toks, opts...)
	r, err := p.Expression(0)
	if err != nil {
		return Number{}, err
	}
	if err := p.End(); err != nil {
		return Number{}, err
	}
	return r, nil
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string, opts ...Option) (Number, error) {
	return Eval(strings.NewReader(src), opts...)
}
