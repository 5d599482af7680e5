package calc

import "strconv"

// TokenError is an error indicating a token that cannot appear where it was
// found. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Kind is the kind of the token.
	Kind TokenKind
	// Text is the token's text.
	Text string
}

func (err *TokenError) Error() string {
	if err.Kind == TokenEOF {
		return errpos(err.Col, "unexpected end of expression")
	}
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

func unexpected(tok Token) error {
	return &TokenError{Col: tok.Pos, Kind: tok.Kind, Text: tok.Text}
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position where a close bracket was expected, or of the close
	// bracket with no open bracket.
	Col int
	// Left is the opening bracket, or empty if there is none.
	Left string
	// Right is the unmatched closing bracket, or empty if there is none.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// NameError is an error indicating a name which is neither a constant nor
// followed by an argument list. It implements InputError.
type NameError struct {
	// Col is the position of the name.
	Col int
	// Name is the name that was not understood.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown name "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// FuncError is an error indicating a call to a function that does not exist.
// It implements InputError.
type FuncError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name.
	Func string
}

func (err *FuncError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Func))
}

func (err *FuncError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments in the call.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// DomainError is an error returned when an operation is applied to arguments
// outside its domain. It implements InputError.
type DomainError struct {
	// Col is the position of the operator or function.
	Col int
	// X is the out-of-domain argument.
	X Number
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return errpos(err.Col, r)
}

func (err *DomainError) Pos() int {
	return err.Col
}

// DepthError is an error indicating an expression nested more deeply than the
// parser allows. It implements InputError.
type DepthError struct {
	// Col is the position at which the limit was exceeded.
	Col int
	// Max is the nesting limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*FuncError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*LexError)(nil)
)
