package parser

// parseDelete parses `DELETE FROM t [WHERE ...]`.
func (p *Parser) parseDelete() (Statement, error) {
	if err := p.expectKeyword("DELETE"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	table := p.ident()
	if table == "" {
		return nil, p.errf("expected table name")
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

	return &Delete{Table: table, Where: where}, nil
}
