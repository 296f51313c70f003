package parser

// parseConditions parses the flat, left-to-right AND/OR-connected sequence
// spec §4.1/§4.4.2 describes: the parser records only the syntax and which
// connective joined each condition to the one before it; the left-to-right
// no-precedence fold itself happens in the executor's condition evaluator.
func (p *Parser) parseConditions() ([]Condition, error) {
	var conds []Condition
	conn := ConnectiveNone
	for {
		cond, err := p.parseOneCondition()
		if err != nil {
			return nil, err
		}
		cond.Connective = conn
		conds = append(conds, cond)

		switch {
		case p.atKeyword("AND"):
			conn = And
		case p.atKeyword("OR"):
			conn = Or
		default:
			return conds, nil
		}
		p.next()
	}
}

// parseOneCondition parses a single `column OP literal` predicate. Column
// accepts an optional `table.` qualifier, which the lexer already folds
// into one identifier token (lexer.go: tokenizeIdentOrKeyword).
func (p *Parser) parseOneCondition() (Condition, error) {
	col := p.ident()
	if col == "" {
		return Condition{}, p.errf("expected a column name")
	}
	op, err := p.parseOperator()
	if err != nil {
		return Condition{}, err
	}
	lit, err := p.parseLiteral()
	if err != nil {
		return Condition{}, err
	}
	return Condition{Column: col, Op: op, Value: lit}, nil
}

func (p *Parser) parseOperator() (Operator, error) {
	switch {
	case p.atSymbol("="):
		p.next()
		return Eq, nil
	case p.atSymbol("!=") || p.atSymbol("<>"):
		p.next()
		return Neq, nil
	case p.atSymbol("<="):
		p.next()
		return Le, nil
	case p.atSymbol(">="):
		p.next()
		return Ge, nil
	case p.atSymbol("<"):
		p.next()
		return Lt, nil
	case p.atSymbol(">"):
		p.next()
		return Gt, nil
	case p.atKeyword("LIKE"):
		p.next()
		return Like, nil
	default:
		return 0, p.errf("expected a comparison operator")
	}
}
