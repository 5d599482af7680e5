package calc

// Option is an option for parsing.
type Option interface {
	parserOption(*Parser)
}

type depthopt int

// MaxDepth limits the nesting of subexpressions, including parentheses,
// function arguments, negations, and right operands. Exceeding the limit is a
// *DepthError. A non-positive n removes the limit, so deeply nested input may
// exhaust the stack.
func MaxDepth(n int) Option {
	return depthopt(n)
}

func (o depthopt) parserOption(p *Parser) {
	p.max = int(o)
}
