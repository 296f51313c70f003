package parser

import "fmt"

// parseUpdate parses `UPDATE t SET col = lit, ... [WHERE ...]`.
func (p *Parser) parseUpdate() (Statement, error) {
	if err := p.expectKeyword("UPDATE"); err != nil {
		return nil, err
	}
	table := p.ident()
	if table == "" {
		return nil, p.errf("expected table name")
	}
	if err := p.expectKeyword("SET"); err != nil {
		return nil, err
	}

	var assignments []Assignment
	for {
		col := p.ident()
		if col == "" {
			return nil, p.errf("expected column name in SET clause")
		}
		if err := p.expectSymbol("="); err != nil {
			return nil, err
		}
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, fmt.Errorf("UPDATE %s: %w", table, err)
		}
		assignments = append(assignments, Assignment{Column: col, Value: lit})
		if p.atSymbol(",") {
			p.next()
			continue
		}
		break
	}

	var where []Condition
	if p.atKeyword("WHERE") {
		p.next()
		w, err := p.parseConditions()
		if err != nil {
			return nil, err
		}
		where = w
	}

	return &Update{Table: table, Assignments: assignments, Where: where}, nil
}
