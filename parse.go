package calc

// Expr = num | const | Call | Neg | Add | Sub | Mul | Div | Mod | Pow | '(' Expr ')'
// Call = funcname '(' [ Expr { ',' Expr } ] ')'
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Mod = Expr '%' Expr
// Pow = Expr '^' Expr

// DefaultMaxDepth is the nesting limit of a Parser created without MaxDepth.
const DefaultMaxDepth = 1000

// Parser evaluates a token sequence as it parses it. A Parser is used for a
// single expression and is not safe for concurrent use.
type Parser struct {
	toks []Token
	pos  int
	// depth is the number of active calls to Expression.
	depth int
	// max is the limit on depth, or non-positive for no limit.
	max int
}

// NewParser creates a parser over a token sequence, as produced by Lex. The
// given options are applied in order.
func NewParser(tokens []Token, opts ...Option) *Parser {
	p := Parser{toks: tokens, max: DefaultMaxDepth}
	for _, opt := range opts {
		opt.parserOption(&p)
	}
	return &p
}

// current returns the next unconsumed token. Past the end of the tokens, the
// result is EOF.
func (p *Parser) current() Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	if len(p.toks) == 0 {
		return Token{Kind: TokenEOF, Pos: 1}
	}
	last := p.toks[len(p.toks)-1]
	if last.Kind == TokenEOF {
		return last
	}
	return Token{Kind: TokenEOF, Pos: last.Pos + len(last.Text)}
}

// advance consumes the current token and returns it.
func (p *Parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

// Expression parses and evaluates the longest expression at the current
// position whose operators bind more tightly than minbp. Callers evaluating
// an entire expression pass 0; the parser stops at the first token which
// cannot continue the expression, which is not necessarily the end of input.
func (p *Parser) Expression(minbp uint8) (Number, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.max > 0 && p.depth > p.max {
		return Number{}, &DepthError{Col: p.current().Pos, Max: p.max}
	}
	l, err := p.primary()
	if err != nil {
		return Number{}, err
	}
	for {
		op := binop(p.current().Kind)
		if op.bp <= minbp {
			return l, nil
		}
		tok := p.advance()
		r, err := p.Expression(op.rbp())
		if err != nil {
			return Number{}, err
		}
		l, err = arith(tok, l, r)
		if err != nil {
			return Number{}, err
		}
	}
}

// primary parses and evaluates an operand: a literal, constant, call,
// negation, or parenthesized expression.
func (p *Parser) primary() (Number, error) {
	tok := p.advance()
	switch tok.Kind {
	case TokenNum:
		return tok.Num, nil
	case TokenMinus:
		v, err := p.Expression(unaryprec)
		if err != nil {
			return Number{}, err
		}
		return v.neg(), nil
	case TokenOpen:
		v, err := p.Expression(0)
		if err != nil {
			return Number{}, err
		}
		if err := p.close(tok); err != nil {
			return Number{}, err
		}
		return v, nil
	case TokenIdent:
		if p.current().Kind == TokenOpen {
			return p.call(tok)
		}
		if c, ok := constants[tok.Text]; ok {
			return c, nil
		}
		return Number{}, &NameError{Col: tok.Pos, Name: tok.Text}
	default:
		return Number{}, unexpected(tok)
	}
}

// call parses the argument list of a function call and applies the function.
// The current token is the open bracket.
func (p *Parser) call(name Token) (Number, error) {
	fn := globalfuncs[name.Text]
	if fn == nil {
		return Number{}, &FuncError{Col: name.Pos, Func: name.Text}
	}
	open := p.advance()
	var args []Number
	if p.current().Kind != TokenClose {
		for {
			v, err := p.Expression(0)
			if err != nil {
				return Number{}, err
			}
			args = append(args, v)
			if p.current().Kind != TokenComma {
				break
			}
			p.advance()
		}
	}
	if err := p.close(open); err != nil {
		return Number{}, err
	}
	return call(name, fn, args)
}

// close consumes a close bracket matching open.
func (p *Parser) close(open Token) error {
	tok := p.current()
	if tok.Kind != TokenClose {
		return &BracketError{Col: tok.Pos, Left: open.Text}
	}
	p.advance()
	return nil
}

// End returns an error if any tokens other than EOF remain, i.e. if the last
// call to Expression did not consume the entire input. A close bracket with
// no open bracket is a *BracketError; anything else is a *TokenError.
func (p *Parser) End() error {
	switch tok := p.current(); tok.Kind {
	case TokenEOF:
		return nil
	case TokenClose:
		return &BracketError{Col: tok.Pos, Right: tok.Text}
	default:
		return unexpected(tok)
	}
}

type operator struct {
	// bp is the binding power. Higher is more binding. Tokens which are not
	// binary operators have a binding power of 0.
	bp uint8
	// right indicates right-associativity.
	right bool
}

// rbp returns the bound for parsing the right operand.
func (o operator) rbp() uint8 {
	if o.right {
		return o.bp - 1
	}
	return o.bp
}

// binop gets the binary operator for a token kind.
func binop(k TokenKind) operator {
	switch k {
	case TokenPlus, TokenMinus:
		return operator{10, false}
	case TokenStar, TokenSlash, TokenPercent:
		return operator{20, false}
	case TokenCaret:
		return operator{30, true}
	default:
		return operator{}
	}
}

// unaryprec is the bound for the operand of unary minus. It exceeds every
// binary operator, so -2^2 is (-2)^2.
const unaryprec = 100
