package parser

import "fmt"

// parseInsert parses `INSERT INTO t (col, ...) VALUES (lit, ...)`. Spec
// §4.1 requires the column list; there is no positional form that maps
// values to the table's declared column order.
func (p *Parser) parseInsert() (Statement, error) {
	if err := p.expectKeyword("INSERT"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("INTO"); err != nil {
		return nil, err
	}
	table := p.ident()
	if table == "" {
		return nil, p.errf("expected table name")
	}

	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	var cols []string
	for {
		name := p.ident()
		if name == "" {
			return nil, p.errf("expected column name in column list")
		}
		cols = append(cols, name)
		if p.atSymbol(",") {
			p.next()
			continue
		}
		break
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}

	if err := p.expectKeyword("VALUES"); err != nil {
		return nil, err
	}
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}

	var vals []Literal
	for {
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, fmt.Errorf("INSERT INTO %s: %w", table, err)
		}
		vals = append(vals, lit)
		if p.atSymbol(",") {
			p.next()
			continue
		}
		break
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}

	return &Insert{Table: table, Columns: cols, Values: vals}, nil
}
