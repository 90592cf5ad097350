package db

import "testing"

func TestMigrateIdempotent(t *testing.T) {
	database, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer database.Close()

	if err := Migrate(database); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := Migrate(database); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var count int
	err = database.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'runs'`).Scan(&count)
	if err != nil {
		t.Fatalf("querying schema: %v", err)
	}
	if count != 1 {
		t.Errorf("expected the runs table to exist once, got %d", count)
	}
}
