package calc

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func num(text string, v Number, pos int) Token {
	return Token{Kind: TokenNum, Text: text, Num: v, Pos: pos}
}

func ident(text string, pos int) Token {
	return Token{Kind: TokenIdent, Text: text, Pos: pos}
}

func punct(k TokenKind, text string, pos int) Token {
	return Token{Kind: k, Text: text, Pos: pos}
}

func eof(pos int) Token {
	return Token{Kind: TokenEOF, Pos: pos}
}

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
	}{
		// spaces
		{"", []Token{eof(1)}},
		{" \t  ", []Token{eof(5)}},
		// numbers
		{"0", []Token{num("0", Int(0), 1), eof(2)}},
		{"9876543210", []Token{num("9876543210", Int(9876543210), 1), eof(11)}},
		{"9223372036854775807", []Token{num("9223372036854775807", Int(math.MaxInt64), 1), eof(20)}},
		{"1 0", []Token{num("1", Int(1), 1), num("0", Int(0), 3), eof(4)}},
		{"1.0", []Token{num("1.0", Float(1), 1), eof(4)}},
		{"1.", []Token{num("1.", Float(1), 1), eof(3)}},
		{"10.5", []Token{num("10.5", Float(10.5), 1), eof(5)}},
		{"007", []Token{num("007", Int(7), 1), eof(4)}},
		{"-1", []Token{punct(TokenMinus, "-", 1), num("1", Int(1), 2), eof(3)}},
		{"1a", []Token{num("1", Int(1), 1), ident("a", 2), eof(3)}},
		// identifiers
		{"e", []Token{ident("e", 1), eof(2)}},
		{"log10", []Token{ident("log10", 1), eof(6)}},
		{"PI", []Token{ident("PI", 1), eof(3)}},
		{"e(", []Token{ident("e", 1), punct(TokenOpen, "(", 2), eof(3)}},
		{"sin 2", []Token{ident("sin", 1), num("2", Int(2), 5), eof(6)}},
		// operators and punctuation
		{"+-*/^%", []Token{
			punct(TokenPlus, "+", 1),
			punct(TokenMinus, "-", 2),
			punct(TokenStar, "*", 3),
			punct(TokenSlash, "/", 4),
			punct(TokenCaret, "^", 5),
			punct(TokenPercent, "%", 6),
			eof(7),
		}},
		{"max(1,2)", []Token{
			ident("max", 1),
			punct(TokenOpen, "(", 4),
			num("1", Int(1), 5),
			punct(TokenComma, ",", 6),
			num("2", Int(2), 7),
			punct(TokenClose, ")", 8),
			eof(9),
		}},
		{"2 ^ 3", []Token{num("2", Int(2), 1), punct(TokenCaret, "^", 3), num("3", Int(3), 5), eof(6)}},
	}
	for _, c := range cases {
		got, err := LexString(c.src)
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if diff := cmp.Diff(c.tokens, got); diff != "" {
			t.Errorf("scanning %q: tokens differ (-want +got):\n%s", c.src, diff)
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind LexErrorKind
		r    rune
		col  int
	}{
		{"$", UnexpectedCharacter, '$', 1},
		{"1 + $", UnexpectedCharacter, '$', 5},
		{"a$", UnexpectedCharacter, '$', 2},
		{"1.1.1", UnexpectedCharacter, '.', 4},
		{".5", UnexpectedCharacter, '.', 1},
		{"x_1", UnexpectedCharacter, '_', 2},
		{"π", UnexpectedCharacter, 'π', 1},
		{"1\n2", UnexpectedCharacter, '\n', 2},
		{"2;3", UnexpectedCharacter, ';', 2},
		{"[1]", UnexpectedCharacter, '[', 1},
		{"9223372036854775808", InvalidInteger, 0, 1},
		{"1 + 99999999999999999999", InvalidInteger, 0, 5},
	}
	for _, c := range cases {
		toks, err := LexString(c.src)
		if err == nil {
			t.Errorf("scanning %q: no error, got %v", c.src, toks)
			continue
		}
		var lerr *LexError
		if !errors.As(err, &lerr) {
			t.Errorf("scanning %q: error %#v is not *LexError", c.src, err)
			continue
		}
		if lerr.Kind != c.kind {
			t.Errorf("scanning %q: wrong kind: want %d, got %d", c.src, c.kind, lerr.Kind)
		}
		if lerr.Kind == UnexpectedCharacter && lerr.Rune != c.r {
			t.Errorf("scanning %q: wrong rune: want %q, got %q", c.src, c.r, lerr.Rune)
		}
		if lerr.Pos() != c.col {
			t.Errorf("scanning %q: wrong position: want %d, got %d", c.src, c.col, lerr.Pos())
		}
		if toks != nil {
			t.Errorf("scanning %q: tokens with error: %v", c.src, toks)
		}
	}
}

func TestLexHugeReal(t *testing.T) {
	src := strings.Repeat("9", 400) + ".0"
	toks, err := LexString(src)
	if err != nil {
		t.Fatalf("scanning %d digits: %v", len(src), err)
	}
	if v := toks[0].Num; v.IsInt() || !math.IsInf(v.Float64(), 1) {
		t.Errorf("wrong value: want +Inf, got %v", v)
	}
}

type badReader struct {
	*strings.Reader
}

var errBad = errors.New("bad reader")

func (r badReader) ReadRune() (rune, int, error) {
	c, sz, err := r.Reader.ReadRune()
	if errors.Is(err, io.EOF) {
		return 0, 0, errBad
	}
	return c, sz, err
}

func TestLexReaderError(t *testing.T) {
	for _, src := range []string{"", "1 + ", "12", "abc"} {
		_, err := Lex(badReader{strings.NewReader(src)})
		if !errors.Is(err, errBad) {
			t.Errorf("scanning %q: want reader error, got %v", src, err)
		}
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{eof(3), "EOF:@3"},
		{num("12", Int(12), 1), "Num:12@1"},
		{punct(TokenPercent, "%", 7), "Percent:%@7"},
		{Token{Kind: 99}, "TokenKind(99):@0"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("wrong string: want %q, got %q", c.want, got)
		}
	}
}
