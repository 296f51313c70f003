package parser

import (
	"fmt"
	"strconv"

	"github.com/gridsql/gridsql/internal/catalog"
)

// parseCreateTable parses `CREATE TABLE t (col type [constraints], ...,
// [PRIMARY KEY(col)])`.
func (p *Parser) parseCreateTable() (Statement, error) {
	if err := p.expectKeyword("CREATE"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("TABLE"); err != nil {
		return nil, err
	}
	table := p.ident()
	if table == "" {
		return nil, p.errf("expected table name")
	}
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}

	var cols []catalog.Column
	var standalonePK string
	for {
		if p.atKeyword("PRIMARY") {
			name, err := p.parseStandalonePrimaryKey()
			if err != nil {
				return nil, err
			}
			// Accepted but, per its inline-marking-is-the-required-path
			// design, only effective if the named column is not already
			// marked inline; see the validation loop below. Recorded here
			// so it can still be honored (spec §9 open question: honor
			// rather than silently ignore).
			standalonePK = name
		} else {
			col, err := p.parseColumnDef()
			if err != nil {
				return nil, err
			}
			cols = append(cols, col)
		}

		if p.atSymbol(",") {
			p.next()
			continue
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		break
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("CREATE TABLE %s: no column definitions", table)
	}

	if standalonePK != "" {
		applyStandalonePrimaryKey(cols, standalonePK)
	}

	seenPK := ""
	for i := range cols {
		if err := cols[i].Validate(); err != nil {
			return nil, err
		}
		if cols[i].PrimaryKey {
			if seenPK != "" {
				return nil, fmt.Errorf("CREATE TABLE %s: more than one primary key column", table)
			}
			seenPK = cols[i].Name
		}
	}

	return &CreateTable{Table: table, Columns: cols}, nil
}

// parseStandalonePrimaryKey parses a table-level `PRIMARY KEY(col)` clause
// and returns the named column.
func (p *Parser) parseStandalonePrimaryKey() (string, error) {
	if err := p.expectKeyword("PRIMARY"); err != nil {
		return "", err
	}
	if err := p.expectKeyword("KEY"); err != nil {
		return "", err
	}
	if err := p.expectSymbol("("); err != nil {
		return "", err
	}
	name := p.ident()
	if name == "" {
		return "", p.errf("expected column name in PRIMARY KEY(...)")
	}
	if err := p.expectSymbol(")"); err != nil {
		return "", err
	}
	return name, nil
}

func applyStandalonePrimaryKey(cols []catalog.Column, name string) {
	for i := range cols {
		if cols[i].Name == name {
			cols[i].PrimaryKey = true
			return
		}
	}
}

// parseColumnDef parses one `name TYPE[(len)] [constraints]` definition.
func (p *Parser) parseColumnDef() (catalog.Column, error) {
	name := p.ident()
	if name == "" {
		return catalog.Column{}, p.errf("expected column name")
	}

	colType, err := p.parseColumnType()
	if err != nil {
		return catalog.Column{}, err
	}

	var maxLen int
	if colType == catalog.VarcharType && p.atSymbol("(") {
		p.next()
		if p.cur.Typ != tNumber {
			return catalog.Column{}, p.errf("expected VARCHAR length")
		}
		n, err := strconv.Atoi(p.cur.Val)
		if err != nil {
			return catalog.Column{}, p.errf("invalid VARCHAR length %q", p.cur.Val)
		}
		maxLen = n
		p.next()
		if err := p.expectSymbol(")"); err != nil {
			return catalog.Column{}, err
		}
	}

	col := catalog.Column{Name: name, Type: colType, MaxLen: maxLen}
	for {
		switch {
		case p.atKeyword("PRIMARY"):
			p.next()
			if err := p.expectKeyword("KEY"); err != nil {
				return catalog.Column{}, err
			}
			col.PrimaryKey = true
		case p.atKeyword("UNIQUE"):
			p.next()
			col.Unique = true
		case p.atKeyword("NOT"):
			p.next()
			if err := p.expectKeyword("NULL"); err != nil {
				return catalog.Column{}, err
			}
			col.NotNull = true
		default:
			return col, nil
		}
	}
}

func (p *Parser) parseColumnType() (catalog.ColType, error) {
	switch {
	case p.atKeyword("INT"):
		p.next()
		return catalog.IntType, nil
	case p.atKeyword("VARCHAR"):
		p.next()
		return catalog.VarcharType, nil
	case p.atKeyword("BOOLEAN"):
		p.next()
		return catalog.BoolType, nil
	case p.atKeyword("TIMESTAMP"):
		p.next()
		return catalog.TimestampType, nil
	default:
		return 0, p.errf("unknown column type %q", p.cur.Val)
	}
}
