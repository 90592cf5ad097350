package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/matevzh/nuzlog/internal/db"
	"github.com/matevzh/nuzlog/internal/model"
)

func createTestRun(t *testing.T, database *sql.DB, userID string) string {
	t.Helper()
	run, err := CreateRun(context.Background(), database, userID, "Test Run", "emerald", "", false)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	return run.ID
}

func TestUpsertCreatesEntry(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "ash")
	runID := createTestRun(t, database, userID)

	entry, err := UpsertEntry(ctx, database, userID, runID, EntryInput{
		PokemonID: 25, PokemonName: "pikachu", Status: model.StatusSeen,
	})
	if err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}
	if entry.Status != model.StatusSeen {
		t.Errorf("expected status seen, got %q", entry.Status)
	}
	if entry.CaughtAt != nil {
		t.Error("expected no caughtAt for a seen entry")
	}
	if entry.UserID != userID {
		t.Errorf("expected denormalized user id %s, got %s", userID, entry.UserID)
	}
}

func TestUpsertCaughtAtFirstTransitionWins(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "ash")
	runID := createTestRun(t, database, userID)

	seen, _ := UpsertEntry(ctx, database, userID, runID, EntryInput{
		PokemonID: 25, PokemonName: "pikachu", Status: model.StatusSeen,
	})
	if seen.CaughtAt != nil {
		t.Fatal("expected no caughtAt yet")
	}

	caught, err := UpsertEntry(ctx, database, userID, runID, EntryInput{
		PokemonID: 25, PokemonName: "pikachu", Status: model.StatusCaught,
	})
	if err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}
	if caught.ID != seen.ID {
		t.Errorf("expected the same entry id, got %s and %s", seen.ID, caught.ID)
	}
	if caught.CaughtAt == nil {
		t.Fatal("expected caughtAt to be set on transition to caught")
	}
	firstCaughtAt := *caught.CaughtAt

	// Downgrading and re-upgrading never moves the capture timestamp.
	downgraded, _ := UpsertEntry(ctx, database, userID, runID, EntryInput{
		PokemonID: 25, PokemonName: "pikachu", Status: model.StatusSeen,
	})
	if downgraded.CaughtAt == nil || *downgraded.CaughtAt != firstCaughtAt {
		t.Error("expected caughtAt to survive a status downgrade")
	}

	owned, _ := UpsertEntry(ctx, database, userID, runID, EntryInput{
		PokemonID: 25, PokemonName: "pikachu", Status: model.StatusOwned,
	})
	if owned.CaughtAt == nil || *owned.CaughtAt != firstCaughtAt {
		t.Error("expected caughtAt unchanged on later transitions")
	}
}

func TestUpsertPatchesOnlySuppliedFields(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "ash")
	runID := createTestRun(t, database, userID)

	location := "Route 101"
	notes := "first encounter"
	UpsertEntry(ctx, database, userID, runID, EntryInput{
		PokemonID: 252, PokemonName: "treecko", Status: model.StatusCaught,
		Location: &location, Notes: &notes,
	})

	// Status-only upsert keeps location and notes.
	updated, err := UpsertEntry(ctx, database, userID, runID, EntryInput{
		PokemonID: 252, PokemonName: "treecko", Status: model.StatusOwned,
	})
	if err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}
	if updated.Location != "Route 101" {
		t.Errorf("expected location kept, got %q", updated.Location)
	}
	if updated.Notes != "first encounter" {
		t.Errorf("expected notes kept, got %q", updated.Notes)
	}
}

func TestGetEntryStats(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "ash")
	runID := createTestRun(t, database, userID)

	UpsertEntry(ctx, database, userID, runID, EntryInput{PokemonID: 1, PokemonName: "bulbasaur", Status: model.StatusSeen})
	UpsertEntry(ctx, database, userID, runID, EntryInput{PokemonID: 4, PokemonName: "charmander", Status: model.StatusCaught})
	UpsertEntry(ctx, database, userID, runID, EntryInput{PokemonID: 7, PokemonName: "squirtle", Status: model.StatusOwned})
	UpsertEntry(ctx, database, userID, runID, EntryInput{PokemonID: 25, PokemonName: "pikachu", Status: model.StatusOwned})

	stats, err := GetEntryStats(ctx, database, userID, runID)
	if err != nil {
		t.Fatalf("GetEntryStats: %v", err)
	}
	if stats.Total != 4 || stats.Seen != 1 || stats.Caught != 1 || stats.Owned != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestBulkAddSkipsExisting(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, database, "ash")
	runID := createTestRun(t, database, userID)

	location := "Petalburg Woods"
	existing, _ := UpsertEntry(ctx, database, userID, runID, EntryInput{
		PokemonID: 25, PokemonName: "pikachu", Status: model.StatusSeen, Location: &location,
	})

	created, err := BulkAddEntries(ctx, database, userID, runID, []EntryInput{
		{PokemonID: 25, PokemonName: "pikachu", Status: model.StatusOwned},
		{PokemonID: 1, PokemonName: "bulbasaur", Status: model.StatusCaught},
		{PokemonID: 4, PokemonName: "charmander", Status: model.StatusSeen},
	})
	if err != nil {
		t.Fatalf("BulkAddEntries: %v", err)
	}
	if created != 2 {
		t.Errorf("expected 2 created, got %d", created)
	}

	// The existing entry is left completely untouched.
	after, _ := GetEntry(ctx, database, userID, runID, 25)
	if after.ID != existing.ID {
		t.Errorf("expected existing entry to remain, got id %s", after.ID)
	}
	if after.Status != model.StatusSeen {
		t.Errorf("expected status untouched, got %q", after.Status)
	}
	if after.Location != "Petalburg Woods" {
		t.Errorf("expected location untouched, got %q", after.Location)
	}
	if after.CaughtAt != nil {
		t.Error("expected caughtAt untouched")
	}

	bulk, _ := GetEntry(ctx, database, userID, runID, 1)
	if bulk.CaughtAt == nil {
		t.Error("expected caughtAt set for a bulk-added caught entry")
	}
}

func TestListEntriesUnownedRun(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	ash := createTestUser(t, database, "ash")
	misty := createTestUser(t, database, "misty")
	runID := createTestRun(t, database, ash)

	UpsertEntry(ctx, database, ash, runID, EntryInput{PokemonID: 25, PokemonName: "pikachu", Status: model.StatusSeen})

	entries, err := ListEntries(ctx, database, misty, runID)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if entries != nil {
		t.Error("expected nil entries for an unowned run")
	}

	stats, _ := GetEntryStats(ctx, database, misty, runID)
	if stats != nil {
		t.Error("expected nil stats for an unowned run")
	}

	if _, err := UpsertEntry(ctx, database, misty, runID, EntryInput{
		PokemonID: 25, PokemonName: "pikachu", Status: model.StatusSeen,
	}); err != ErrRunNotFound {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	ash := createTestUser(t, database, "ash")
	misty := createTestUser(t, database, "misty")
	runID := createTestRun(t, database, ash)

	entry, _ := UpsertEntry(ctx, database, ash, runID, EntryInput{
		PokemonID: 25, PokemonName: "pikachu", Status: model.StatusSeen,
	})

	if err := DeleteEntry(ctx, database, misty, entry.ID); err != ErrUnauthorized {
		t.Errorf("expected ErrUnauthorized for another user, got %v", err)
	}

	if err := DeleteEntry(ctx, database, ash, entry.ID); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if got, _ := GetEntry(ctx, database, ash, runID, 25); got != nil {
		t.Error("expected entry to be gone")
	}

	// Deleting again reports unauthorized, indistinguishable from missing.
	if err := DeleteEntry(ctx, database, ash, entry.ID); err != ErrUnauthorized {
		t.Errorf("expected ErrUnauthorized for a missing entry, got %v", err)
	}
}
