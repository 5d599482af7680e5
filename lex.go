package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Token is a lexical token of an expression.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Text is the source text of the token. It is empty for TokenEOF.
	Text string
	// Num is the value of a TokenNum.
	Num Number
	// Pos is the column of the first rune of the token, counting from 1.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	// TokenEOF indicates the end of the input.
	TokenEOF TokenKind = iota
	// TokenNum is an integer or real literal.
	TokenNum
	// TokenIdent is a function or constant name.
	TokenIdent
	TokenPlus    // +
	TokenMinus   // -
	TokenStar    // *
	TokenSlash   // /
	TokenCaret   // ^
	TokenPercent // %
	TokenComma   // ,
	TokenOpen    // (
	TokenClose   // )
)

var kindnames = [...]string{
	TokenEOF:     "EOF",
	TokenNum:     "Num",
	TokenIdent:   "Ident",
	TokenPlus:    "Plus",
	TokenMinus:   "Minus",
	TokenStar:    "Star",
	TokenSlash:   "Slash",
	TokenCaret:   "Caret",
	TokenPercent: "Percent",
	TokenComma:   "Comma",
	TokenOpen:    "Open",
	TokenClose:   "Close",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Punctuation contains the runes which lex as single-rune tokens.
const Punctuation = "+-*/^%,()"

var punctkinds = [...]TokenKind{
	TokenPlus,
	TokenMinus,
	TokenStar,
	TokenSlash,
	TokenCaret,
	TokenPercent,
	TokenComma,
	TokenOpen,
	TokenClose,
}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read from src.
	col int
}

// Lex scans all tokens from src. The final token is always TokenEOF, so empty
// input produces a single token. If the source contains an invalid token, the
// error is a *LexError; errors from src are returned as they are.
func Lex(src io.RuneScanner) ([]Token, error) {
	l := lexer{src: src}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

// LexString is a shortcut to scan all tokens from a string.
func LexString(src string) ([]Token, error) {
	return Lex(strings.NewReader(src))
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Token{Kind: TokenEOF, Pos: l.col + 1}, nil
			}
			return Token{}, err
		}
		tok := Token{Pos: l.col}
		switch {
		case r == ' ', r == '\t':
			continue
		case isDigit(r):
			l.unreadRune()
			return l.scanNum(tok)
		case isLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return tok, err
			}
			tok.Kind = TokenIdent
			tok.Text = l.buf.String()
			return tok, nil
		}
		if k := strings.IndexRune(Punctuation, r); k >= 0 {
			tok.Kind = punctkinds[k]
			tok.Text = Punctuation[k : k+1]
			return tok, nil
		}
		return tok, &LexError{Kind: UnexpectedCharacter, Rune: r, Text: string(r), Col: tok.Pos}
	}
}

// scanNum scans a run of digits with at most one decimal point. A second
// decimal point ends the number and is left for the next token.
func (l *lexer) scanNum(tok Token) (Token, error) {
	var dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tok, err
		}
		if r == '.' && !dot {
			dot = true
			l.buf.WriteRune(r)
			continue
		}
		if !isDigit(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	tok.Kind = TokenNum
	tok.Text = l.buf.String()
	if dot {
		f, err := strconv.ParseFloat(tok.Text, 64)
		// Too many digits is infinity, not an error.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return tok, &LexError{Kind: InvalidFloat, Text: tok.Text, Col: tok.Pos}
		}
		tok.Num = Float(f)
		return tok, nil
	}
	i, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		return tok, &LexError{Kind: InvalidInteger, Text: tok.Text, Col: tok.Pos}
	}
	tok.Num = Int(i)
	return tok, nil
}

func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides ident scanning before
				// calling scanIdent, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		if !isLetter(r) && !isDigit(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// LexErrorKind is the reason for a LexError.
type LexErrorKind int8

const (
	// UnexpectedCharacter is a rune that cannot begin any token.
	UnexpectedCharacter LexErrorKind = iota
	// InvalidInteger is an integer literal outside the range of int64.
	InvalidInteger
	// InvalidFloat is a real literal that does not parse.
	InvalidFloat
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Kind is the reason the token is invalid.
	Kind LexErrorKind
	// Rune is the unexpected rune when Kind is UnexpectedCharacter.
	Rune rune
	// Text is the invalid token text.
	Text string
	// Col is the column of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	switch err.Kind {
	case UnexpectedCharacter:
		return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Rune))
	case InvalidInteger:
		return errpos(err.Col, "invalid integer "+strconv.Quote(err.Text))
	default:
		return errpos(err.Col, "invalid real "+strconv.Quote(err.Text))
	}
}

func (err *LexError) Pos() int {
	return err.Col
}
