// Package calc evaluates arithmetic expressions over integers and reals.
//
// Expressions use the usual infix operators + - * / % and ^ with parentheses,
// function calls like "max(1, sqrt(2))", and the constants pi, e, and tau.
// "2^3^2" is "2^(3^2)", and "-2^2" is "(-2)^2".
//
// Integer literals stay integers through +, -, *, and %. Any real operand
// makes the result real, and / and ^ always produce reals, so "7/2" is 3.5.
//
// Parsing and evaluation happen together in one pass; there is no syntax tree
// to keep. Every failure, from an unknown character to a remainder by zero, is
// reported as an error implementing InputError.
package calc
