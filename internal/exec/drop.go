package exec

import (
	"fmt"

	"github.com/gridsql/gridsql/internal/catalog"
	"github.com/gridsql/gridsql/internal/parser"
)

func execDropTable(cat *catalog.Catalog, s *parser.DropTable) (*Outcome, error) {
	if err := cat.Drop(s.Table); err != nil {
		return nil, schemaErrf("%v", err)
	}
	return &Outcome{
		Message:      fmt.Sprintf("table %q dropped", s.Table),
		AffectedRows: 0,
	}, nil
}
