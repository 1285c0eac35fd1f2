package mysql

import (
	"strings"
	"testing"
)

func TestSplitStatements(t *testing.T) {
	got := splitStatements("CREATE TABLE a (x INT);\n\n  CREATE TABLE b (y INT) ;\n")
	if len(got) != 2 || got[0] != "CREATE TABLE a (x INT)" || got[1] != "CREATE TABLE b (y INT)" {
		t.Fatalf("unexpected split: %q", got)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	b, err := migrations.ReadFile("migrations/001_catalog.sql")
	if err != nil {
		t.Fatal(err)
	}
	stmts := splitStatements(string(b))
	if len(stmts) != 2 {
		t.Fatalf("want 2 statements, got %d", len(stmts))
	}
	for _, tbl := range []string{"properties", "vendors"} {
		if !strings.Contains(string(b), "CREATE TABLE IF NOT EXISTS "+tbl) {
			t.Fatalf("missing table %s", tbl)
		}
	}
}
