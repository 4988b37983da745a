package db

import (
	"path/filepath"
	"testing"
)

func TestDialectName_SQLite(t *testing.T) {
	conn, err := Open("file:" + filepath.Join(t.TempDir(), "study-test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if got := DialectName(conn); got != DialectSQLite {
		t.Fatalf("expected dialect %q, got %q", DialectSQLite, got)
	}
	if !IsSQLite(conn) {
		t.Fatalf("expected IsSQLite to be true")
	}
	if DialectName(nil) != "" {
		t.Fatalf("expected empty dialect for nil connection")
	}
}
