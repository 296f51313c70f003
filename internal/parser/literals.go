package parser

import (
	"strconv"

	"github.com/gridsql/gridsql/internal/value"
)

// parseLiteral consumes one literal token: NULL/TRUE/FALSE keywords, a
// quoted string, or a (optionally negative) number. A token with no
// decimal point becomes an integer; one with a decimal point is flagged
// IsFloat, since the value model has no floating-point kind (spec §3).
func (p *Parser) parseLiteral() (Literal, error) {
	neg := false
	if p.atSymbol("-") {
		neg = true
		p.next()
	}

	switch {
	case p.atKeyword("NULL"):
		p.next()
		return Literal{Value: value.NullValue()}, nil
	case p.atKeyword("TRUE"):
		p.next()
		return Literal{Value: value.BoolValue(true)}, nil
	case p.atKeyword("FALSE"):
		p.next()
		return Literal{Value: value.BoolValue(false)}, nil
	case p.cur.Typ == tString:
		s := p.cur.Val
		p.next()
		return Literal{Value: value.StringValue(s)}, nil
	case p.cur.Typ == tNumber:
		tok := p.cur.Val
		p.next()
		if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
			if neg {
				i = -i
			}
			return Literal{Value: value.IntValue(i)}, nil
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Literal{}, p.errf("invalid numeric literal %q", tok)
		}
		if neg {
			f = -f
		}
		return Literal{IsFloat: true, Float: f}, nil
	default:
		return Literal{}, p.errf("expected a literal value")
	}
}
