package catalog

import "testing"

func schemaFixture() Schema {
	return Schema{
		Name: "users",
		Columns: []Column{
			{Name: "id", Type: IntType, PrimaryKey: true},
			{Name: "email", Type: VarcharType, MaxLen: 50, Unique: true},
			{Name: "bio", Type: VarcharType, MaxLen: 200},
		},
		PrimaryKey: "id",
	}
}

func TestCreateAndDuplicateRejected(t *testing.T) {
	c := New()
	if _, err := c.Create(schemaFixture()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Create(schemaFixture()); err == nil {
		t.Fatal("expected error creating duplicate table name")
	}
}

func TestNewTableCreatesIndexesForUniqueColumns(t *testing.T) {
	tbl := NewTable(schemaFixture())
	if tbl.IndexFor("id") == nil {
		t.Fatal("expected an index for the primary key column")
	}
	if tbl.IndexFor("email") == nil {
		t.Fatal("expected an index for the unique column")
	}
	if tbl.IndexFor("bio") != nil {
		t.Fatal("did not expect an index for a non-unique column")
	}
}

func TestAutoIncrementNeverDecreases(t *testing.T) {
	tbl := NewTable(schemaFixture())
	first := tbl.NextAutoIncrement()
	second := tbl.NextAutoIncrement()
	if first != 1 || second != 2 {
		t.Fatalf("expected sequential 1,2 got %d,%d", first, second)
	}
	tbl.ReserveAutoIncrement(100)
	if tbl.NextAutoIncrement() != 101 {
		t.Fatal("auto-increment must stay strictly greater than any reserved value")
	}
	tbl.ReserveAutoIncrement(5) // lower than current counter: no-op
	if tbl.AutoIncrement != 102 {
		t.Fatal("reserving a lower value must not decrease the counter")
	}
}

func TestListTableNamesInsertionOrder(t *testing.T) {
	c := New()
	for _, name := range []string{"c", "a", "b"} {
		s := Schema{Name: name, Columns: []Column{{Name: "id", Type: IntType}}}
		if _, err := c.Create(s); err != nil {
			t.Fatal(err)
		}
	}
	got := c.ListTableNames()
	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestDropRemovesTableAndName(t *testing.T) {
	c := New()
	if _, err := c.Create(schemaFixture()); err != nil {
		t.Fatal(err)
	}
	if err := c.Drop("users"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get("users"); ok {
		t.Fatal("table should be gone after Drop")
	}
	if err := c.Drop("users"); err == nil {
		t.Fatal("dropping a nonexistent table should fail")
	}
	if got := c.ListTableNames(); len(got) != 0 {
		t.Fatalf("expected empty name list, got %v", got)
	}
}

func TestRowCountAbsentTableIsZero(t *testing.T) {
	c := New()
	if c.RowCount("nope") != 0 {
		t.Fatal("row count of a nonexistent table should be 0")
	}
}
