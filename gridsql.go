// Package gridsql is a small in-memory relational database engine: a
// textual SQL-like query language parsed into a structured representation,
// executed against in-memory tables, and returned as tabular result sets or
// side-effect summaries.
//
// # Basic usage
//
//	eng := gridsql.NewEngine()
//	eng.Execute(`CREATE TABLE users (id INT PRIMARY KEY, name VARCHAR(40) NOT NULL)`)
//	eng.Execute(`INSERT INTO users (name) VALUES ('ada')`)
//	res := eng.Execute(`SELECT id, name FROM users ORDER BY id ASC`)
//	for _, row := range res.Data {
//	    fmt.Println(row["id"], row["name"])
//	}
//
// Everything but this file, the Engine type it exposes, and the cmd/gridsql
// demo binary lives under internal/: the query parser (internal/parser),
// the execution engine (internal/exec), the table store (internal/catalog),
// and the B-tree index (internal/index).
package gridsql

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/gridsql/gridsql/internal/catalog"
	"github.com/gridsql/gridsql/internal/exec"
	"github.com/gridsql/gridsql/internal/parser"
)

// Row is a single projected result row exposed at the package boundary,
// keyed by column name with plain Go values (nil for SQL NULL). Internally
// the engine carries the richer value.Value tagged union; conversion via
// value.Value.Native happens once, at the moment a Result crosses out of
// Execute.
type Row map[string]any

// Result is the outcome of a single Execute call (spec §6): exactly one of
// two shapes. Success responses from SELECT set Data (and AffectedRows to
// its length); success responses from CREATE/INSERT/UPDATE/DELETE/DROP set
// Message and AffectedRows. Failure responses set only Error.
type Result struct {
	Success      bool
	Data         []Row
	Message      string
	AffectedRows int
	Error        string
}

// Engine owns the process-wide catalog and is the sole entry point external
// collaborators use (spec §1, §6). The zero value is not usable; construct
// one with NewEngine.
type Engine struct {
	cat    *catalog.Catalog
	logger *log.Logger
	clock  func() time.Time
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger sets the logger Execute writes one summary line to per call:
// statement kind, table, affected row count, elapsed duration, and a
// correlation id. nil (the default) keeps the engine silent — a library has
// no business writing to stdout on its own.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock overrides how the engine produces "now", so tests and demo
// tooling can pin it. Nothing in the core executor itself consults the
// clock (spec's value model requires callers to supply their own timestamp
// literals); it exists for embedders that stamp TIMESTAMP values before
// building an INSERT statement, and for the query logger's elapsed-time
// measurement.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.clock = now }
}

// NewEngine creates an Engine with an empty catalog.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{cat: catalog.New(), clock: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the engine's current time, per its configured clock.
func (e *Engine) Now() time.Time { return e.clock() }

// Execute parses and runs a single statement. Every failure — syntax,
// schema, constraint, or value (spec §7's taxonomy) — surfaces as
// Result{Success: false}; Execute itself never returns a Go error or
// panics, matching the boundary contract that errors are always
// recoverable at the caller level.
func (e *Engine) Execute(sql string) Result {
	start := e.clock()

	stmt, err := parser.Parse(sql)
	if err != nil {
		e.logQuery("", "", 0, start, err)
		return Result{Success: false, Error: err.Error()}
	}

	kind := exec.StatementKind(stmt)
	table := exec.StatementTable(stmt)

	outcome, err := exec.Execute(e.cat, stmt)
	if err != nil {
		e.logQuery(kind, table, 0, start, err)
		return Result{Success: false, Error: err.Error()}
	}
	e.logQuery(kind, table, outcome.AffectedRows, start, nil)

	if kind == "SELECT" {
		return Result{Success: true, Data: toRows(outcome.Rows), AffectedRows: len(outcome.Rows)}
	}
	return Result{Success: true, Message: outcome.Message, AffectedRows: outcome.AffectedRows}
}

func (e *Engine) logQuery(kind, table string, affected int, start time.Time, err error) {
	if e.logger == nil {
		return
	}
	id := uuid.New()
	elapsed := e.clock().Sub(start)
	if err != nil {
		e.logger.Printf("query %s: kind=%s table=%s error=%v elapsed=%s", id, kind, table, err, elapsed)
		return
	}
	e.logger.Printf("query %s: kind=%s table=%s affected=%d elapsed=%s", id, kind, table, affected, elapsed)
}

func toRows(rows []exec.Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		pr := make(Row, len(r))
		for k, v := range r {
			pr[k] = v.Native()
		}
		out[i] = pr
	}
	return out
}

// ListTableNames returns every current table name, in creation order.
func (e *Engine) ListTableNames() []string { return e.cat.ListTableNames() }

// ColumnInfo describes one column for external introspection, mirroring
// catalog.Column without exposing that internal type at the package
// boundary.
type ColumnInfo struct {
	Name       string
	Type       string
	MaxLen     int
	PrimaryKey bool
	Unique     bool
	NotNull    bool
}

// Schema describes a table's shape for external introspection (spec §6
// get_schema).
type Schema struct {
	Name       string
	Columns    []ColumnInfo
	PrimaryKey string
}

// GetSchema returns the schema of the named table, and whether it exists.
func (e *Engine) GetSchema(table string) (Schema, bool) {
	s, ok := e.cat.Schema(table)
	if !ok {
		return Schema{}, false
	}
	out := Schema{Name: s.Name, PrimaryKey: s.PrimaryKey}
	for _, c := range s.Columns {
		out.Columns = append(out.Columns, ColumnInfo{
			Name:       c.Name,
			Type:       c.Type.String(),
			MaxLen:     c.MaxLen,
			PrimaryKey: c.PrimaryKey,
			Unique:     c.Unique,
			NotNull:    c.NotNull,
		})
	}
	return out, true
}

// GetRowCount returns the current row count for table, or 0 if it does not
// exist (spec §6 get_row_count).
func (e *Engine) GetRowCount(table string) int { return e.cat.RowCount(table) }

// TableStats bundles row count with per-index shape (SPEC_FULL §4
// supplemental introspection, built on top of spec §6's get_row_count).
type TableStats = exec.TableStats

// Stats gathers TableStats for table.
func (e *Engine) Stats(table string) (TableStats, error) {
	return exec.Stats(e.cat, table)
}

// Explain describes how a SELECT would execute — whether the single-index
// heuristic of spec §4.4.2 fires, and which join strategy each step uses.
// It is read-only and accepts only SELECT statements (SPEC_FULL §4).
func (e *Engine) Explain(sql string) (string, error) {
	stmt, err := parser.Parse(sql)
	if err != nil {
		return "", err
	}
	sel, ok := stmt.(*parser.Select)
	if !ok {
		return "", fmt.Errorf("gridsql: Explain only supports SELECT statements")
	}
	return exec.Explain(e.cat, sel)
}
