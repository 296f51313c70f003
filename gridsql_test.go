package gridsql

import (
	"bytes"
	"log"
	"testing"
	"time"
)

func TestExecuteCreateInsertSelect(t *testing.T) {
	eng := NewEngine()

	res := eng.Execute(`CREATE TABLE users (id INT PRIMARY KEY, name VARCHAR(40) NOT NULL)`)
	if !res.Success || res.AffectedRows != 0 || res.Message == "" {
		t.Fatalf("unexpected CREATE result: %+v", res)
	}

	res = eng.Execute(`INSERT INTO users (name) VALUES ('ada')`)
	if !res.Success || res.AffectedRows != 1 {
		t.Fatalf("unexpected INSERT result: %+v", res)
	}

	res = eng.Execute(`SELECT id, name FROM users`)
	if !res.Success || len(res.Data) != 1 {
		t.Fatalf("unexpected SELECT result: %+v", res)
	}
	row := res.Data[0]
	if row["id"] != int64(1) {
		t.Fatalf("expected auto-increment id 1, got %v (%T)", row["id"], row["id"])
	}
	if row["name"] != "ada" {
		t.Fatalf("expected name 'ada', got %v", row["name"])
	}
}

func TestExecuteFailureSetsOnlyError(t *testing.T) {
	eng := NewEngine()
	res := eng.Execute(`SELECT * FROM nope`)
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Error == "" {
		t.Fatal("expected a non-empty error message")
	}
	if res.Data != nil || res.Message != "" || res.AffectedRows != 0 {
		t.Fatalf("failure result should carry only Error: %+v", res)
	}
}

func TestExecuteSyntaxErrorNeverPanics(t *testing.T) {
	eng := NewEngine()
	res := eng.Execute(`THIS IS NOT SQL`)
	if res.Success {
		t.Fatal("expected a syntax failure")
	}
}

func TestNullProjectsAsNilNative(t *testing.T) {
	eng := NewEngine()
	eng.Execute(`CREATE TABLE t (id INT PRIMARY KEY, n INT)`)
	eng.Execute(`INSERT INTO t (id) VALUES (1)`)

	res := eng.Execute(`SELECT n FROM t WHERE id = 1`)
	if !res.Success || len(res.Data) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Data[0]["n"] != nil {
		t.Fatalf("expected SQL NULL to project as nil, got %v", res.Data[0]["n"])
	}
}

func TestListTableNamesAndGetSchema(t *testing.T) {
	eng := NewEngine()
	eng.Execute(`CREATE TABLE a (id INT PRIMARY KEY)`)
	eng.Execute(`CREATE TABLE b (id INT PRIMARY KEY, email VARCHAR(30) UNIQUE)`)

	names := eng.ListTableNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected table name order: %v", names)
	}

	schema, ok := eng.GetSchema("b")
	if !ok {
		t.Fatal("expected schema b to exist")
	}
	if schema.PrimaryKey != "id" {
		t.Fatalf("expected primary key id, got %q", schema.PrimaryKey)
	}
	found := false
	for _, c := range schema.Columns {
		if c.Name == "email" && c.Unique {
			found = true
		}
	}
	if !found {
		t.Fatal("expected email column marked unique")
	}

	if _, ok := eng.GetSchema("missing"); ok {
		t.Fatal("expected missing table schema lookup to report false")
	}
}

func TestGetRowCount(t *testing.T) {
	eng := NewEngine()
	eng.Execute(`CREATE TABLE t (id INT PRIMARY KEY)`)
	if eng.GetRowCount("t") != 0 {
		t.Fatal("expected 0 rows right after creation")
	}
	eng.Execute(`INSERT INTO t (id) VALUES (1)`)
	eng.Execute(`INSERT INTO t (id) VALUES (2)`)
	if eng.GetRowCount("t") != 2 {
		t.Fatal("expected 2 rows after two inserts")
	}
	if eng.GetRowCount("nope") != 0 {
		t.Fatal("row count of a nonexistent table should be 0, not an error")
	}
}

func TestStatsReflectsIndexedColumns(t *testing.T) {
	eng := NewEngine()
	eng.Execute(`CREATE TABLE t (id INT PRIMARY KEY, email VARCHAR(30) UNIQUE)`)
	eng.Execute(`INSERT INTO t (id, email) VALUES (1, 'a@example.com')`)

	stats, err := eng.Stats("t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.RowCount != 1 {
		t.Fatalf("expected row count 1, got %d", stats.RowCount)
	}
	if len(stats.Indexes) != 2 {
		t.Fatalf("expected indexes for id and email, got %d", len(stats.Indexes))
	}
}

func TestExplainRejectsNonSelect(t *testing.T) {
	eng := NewEngine()
	eng.Execute(`CREATE TABLE t (id INT PRIMARY KEY)`)
	if _, err := eng.Explain(`INSERT INTO t (id) VALUES (1)`); err == nil {
		t.Fatal("expected Explain to reject a non-SELECT statement")
	}
}

func TestExplainDescribesSelect(t *testing.T) {
	eng := NewEngine()
	eng.Execute(`CREATE TABLE t (id INT PRIMARY KEY)`)
	plan, err := eng.Explain(`SELECT id FROM t WHERE id = 1`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan == "" {
		t.Fatal("expected a non-empty plan description")
	}
}

func TestWithLoggerWritesOneLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	eng := NewEngine(WithLogger(logger))

	eng.Execute(`CREATE TABLE t (id INT PRIMARY KEY)`)
	if buf.Len() == 0 {
		t.Fatal("expected the logger to receive a query summary line")
	}
}

func TestWithClockOverridesNow(t *testing.T) {
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	eng := NewEngine(WithClock(func() time.Time { return fixed }))
	if !eng.Now().Equal(fixed) {
		t.Fatalf("expected Now() to return the pinned clock value, got %v", eng.Now())
	}
}

func TestDefaultEngineIsSilentWithoutLogger(t *testing.T) {
	eng := NewEngine()
	res := eng.Execute(`CREATE TABLE t (id INT PRIMARY KEY)`)
	if !res.Success {
		t.Fatalf("unexpected failure: %+v", res)
	}
}
