package exec

import (
	"fmt"

	"github.com/gridsql/gridsql/internal/catalog"
	"github.com/gridsql/gridsql/internal/parser"
)

func execCreateTable(cat *catalog.Catalog, s *parser.CreateTable) (*Outcome, error) {
	schema := catalog.Schema{Name: s.Table, Columns: s.Columns}

	pk := ""
	for _, c := range s.Columns {
		if c.PrimaryKey {
			pk = c.Name
			break
		}
	}
	schema.PrimaryKey = pk

	if _, err := cat.Create(schema); err != nil {
		return nil, schemaErrf("%v", err)
	}
	return &Outcome{
		Message:      fmt.Sprintf("table %q created", s.Table),
		AffectedRows: 0,
	}, nil
}
