package parser

import (
	"strconv"
	"strings"
)

// parseSelect parses `SELECT * | col, ... FROM t [joins] [WHERE ...]
// [ORDER BY col [ASC|DESC]] [LIMIT n]`.
func (p *Parser) parseSelect() (Statement, error) {
	if err := p.expectKeyword("SELECT"); err != nil {
		return nil, err
	}

	sel := &Select{}
	if err := p.parseProjection(sel); err != nil {
		return nil, err
	}

	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	table := p.ident()
	if table == "" {
		return nil, p.errf("expected table name after FROM")
	}
	sel.Table = table

	for p.atJoinStart() {
		join, err := p.parseJoin()
		if err != nil {
			return nil, err
		}
		sel.Joins = append(sel.Joins, join)
	}

	if p.atKeyword("WHERE") {
		p.next()
		where, err := p.parseConditions()
		if err != nil {
			return nil, err
		}
		sel.Where = where
	}

	if p.atKeyword("ORDER") {
		p.next()
		if err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		col := p.ident()
		if col == "" {
			return nil, p.errf("expected column name after ORDER BY")
		}
		desc := false
		if p.atKeyword("DESC") {
			p.next()
			desc = true
		} else if p.atKeyword("ASC") {
			p.next()
		}
		sel.OrderBy = &OrderSpec{Column: col, Desc: desc}
	}

	if p.atKeyword("LIMIT") {
		p.next()
		if p.cur.Typ != tNumber {
			return nil, p.errf("expected a number after LIMIT")
		}
		n, err := strconv.Atoi(p.cur.Val)
		if err != nil || n < 0 {
			return nil, p.errf("invalid LIMIT value %q", p.cur.Val)
		}
		p.next()
		sel.Limit = &n
	}

	return sel, nil
}

func (p *Parser) parseProjection(sel *Select) error {
	if p.atSymbol("*") {
		p.next()
		sel.Star = true
		return nil
	}
	for {
		col := p.ident()
		if col == "" {
			return p.errf("expected a column name or * in the projection list")
		}
		sel.Columns = append(sel.Columns, col)
		if p.atSymbol(",") {
			p.next()
			continue
		}
		break
	}
	return nil
}

func (p *Parser) atJoinStart() bool {
	return p.atKeyword("JOIN") || p.atKeyword("INNER") || p.atKeyword("LEFT") || p.atKeyword("RIGHT")
}

// parseJoin parses one `[INNER|LEFT|RIGHT] JOIN t [AS alias] ON a.c = b.c`
// clause. The lexer folds a qualified `table.column` reference into a
// single identifier token (lexer.go: tokenizeIdentOrKeyword), so each side
// of the ON clause is split on its one embedded '.' here.
func (p *Parser) parseJoin() (Join, error) {
	kind := InnerJoin
	switch {
	case p.atKeyword("LEFT"):
		kind = LeftJoin
		p.next()
	case p.atKeyword("RIGHT"):
		kind = RightJoin
		p.next()
	case p.atKeyword("INNER"):
		p.next()
	}
	if p.atKeyword("OUTER") {
		p.next()
	}
	if err := p.expectKeyword("JOIN"); err != nil {
		return Join{}, err
	}

	table := p.ident()
	if table == "" {
		return Join{}, p.errf("expected table name after JOIN")
	}

	alias := ""
	if p.atKeyword("AS") {
		p.next()
		alias = p.ident()
		if alias == "" {
			return Join{}, p.errf("expected alias after AS")
		}
	} else if p.cur.Typ == tIdent {
		alias = p.ident()
	}

	if err := p.expectKeyword("ON"); err != nil {
		return Join{}, err
	}
	leftTable, leftCol, err := p.parseQualifiedColumn()
	if err != nil {
		return Join{}, err
	}
	if err := p.expectSymbol("="); err != nil {
		return Join{}, err
	}
	rightTable, rightCol, err := p.parseQualifiedColumn()
	if err != nil {
		return Join{}, err
	}

	return Join{
		Kind:        kind,
		Table:       table,
		Alias:       alias,
		LeftTable:   leftTable,
		LeftColumn:  leftCol,
		RightTable:  rightTable,
		RightColumn: rightCol,
	}, nil
}

func (p *Parser) parseQualifiedColumn() (table, column string, err error) {
	ref := p.ident()
	if ref == "" {
		return "", "", p.errf("expected table.column reference")
	}
	dot := strings.IndexByte(ref, '.')
	if dot < 0 {
		return "", "", p.errf("expected a qualified table.column reference, got %q", ref)
	}
	return ref[:dot], ref[dot+1:], nil
}
