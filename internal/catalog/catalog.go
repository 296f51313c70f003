package catalog

import "fmt"

// Catalog is the process-wide mapping from table name to table state. It is
// the single source of truth the executor mutates; the engine's Engine type
// owns exactly one Catalog for its lifetime (spec §5).
type Catalog struct {
	order  []string // table names in creation order
	tables map[string]*Table
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{tables: make(map[string]*Table)}
}

// Create registers a new table. It fails if a table with that exact,
// case-sensitive name already exists; no partial state is produced either
// way.
func (c *Catalog) Create(schema Schema) (*Table, error) {
	if _, exists := c.tables[schema.Name]; exists {
		return nil, fmt.Errorf("table %q already exists", schema.Name)
	}
	t := NewTable(schema)
	c.tables[schema.Name] = t
	c.order = append(c.order, schema.Name)
	return t, nil
}

// Get looks up a table by its exact name.
func (c *Catalog) Get(name string) (*Table, bool) {
	t, ok := c.tables[name]
	return t, ok
}

// Drop removes a table entry. No cross-table referential action is taken
// (spec has no foreign keys).
func (c *Catalog) Drop(name string) error {
	if _, ok := c.tables[name]; !ok {
		return fmt.Errorf("no such table %q", name)
	}
	delete(c.tables, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListTableNames returns every current table name, in creation order.
func (c *Catalog) ListTableNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Schema returns the schema for name, or false if no such table exists.
func (c *Catalog) Schema(name string) (Schema, bool) {
	t, ok := c.tables[name]
	if !ok {
		return Schema{}, false
	}
	return t.Schema, true
}

// RowCount returns the current row count for name, or 0 if the table does
// not exist.
func (c *Catalog) RowCount(name string) int {
	t, ok := c.tables[name]
	if !ok {
		return 0
	}
	return len(t.Rows)
}
