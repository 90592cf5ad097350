package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matevzh/nuzlog/internal/model"
)

// EntryInput is the caller-supplied part of a pokédex entry.
type EntryInput struct {
	PokemonID   int
	PokemonName string
	Status      string
	Location    *string
	Notes       *string
}

// UpsertEntry creates or updates the entry for (run, species). On update the
// status is always overwritten and location/notes only when supplied.
// caught_at is set the first time the status becomes caught or owned and
// never changes afterwards.
func UpsertEntry(ctx context.Context, db *sql.DB, userID, runID string, in EntryInput) (*model.PokedexEntry, error) {
	run, err := GetRun(ctx, db, userID, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, ErrRunNotFound
	}

	existing, err := GetEntry(ctx, db, userID, runID, in.PokemonID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()

	if existing == nil {
		id := uuid.NewString()
		var caughtAt any
		if in.Status == model.StatusCaught || in.Status == model.StatusOwned {
			caughtAt = now
		}
		_, err := db.ExecContext(ctx,
			`INSERT INTO pokedex_entries (id, run_id, user_id, pokemon_id, pokemon_name, status, caught_at, location, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, runID, userID, in.PokemonID, in.PokemonName, in.Status, caughtAt, optString(in.Location), optString(in.Notes),
		)
		if err != nil {
			return nil, fmt.Errorf("creating pokedex entry: %w", err)
		}
		return getEntryByID(ctx, db, id)
	}

	sets := []string{"status = ?"}
	args := []any{in.Status}
	if in.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, nullString(*in.Location))
	}
	if in.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, nullString(*in.Notes))
	}
	// First transition into caught/owned wins; never overwritten afterwards.
	if (in.Status == model.StatusCaught || in.Status == model.StatusOwned) && existing.CaughtAt == nil {
		sets = append(sets, "caught_at = ?")
		args = append(args, now)
	}
	args = append(args, existing.ID)

	_, err = db.ExecContext(ctx,
		"UPDATE pokedex_entries SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating pokedex entry: %w", err)
	}
	return getEntryByID(ctx, db, existing.ID)
}

// ListEntries returns all pokédex entries for a run the user owns, or nil if
// the run is missing or not theirs.
func ListEntries(ctx context.Context, db *sql.DB, userID, runID string) ([]model.PokedexEntry, error) {
	run, err := GetRun(ctx, db, userID, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, nil
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, run_id, user_id, pokemon_id, pokemon_name, status, caught_at, location, notes
		 FROM pokedex_entries WHERE run_id = ?`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing pokedex entries: %w", err)
	}
	defer rows.Close()

	var entries []model.PokedexEntry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// GetEntryStats returns entry counts for a run broken down by status, or nil
// if the run is missing or not the user's. Counts are computed from the entry
// list; nothing is stored.
func GetEntryStats(ctx context.Context, db *sql.DB, userID, runID string) (*model.PokedexStats, error) {
	run, err := GetRun(ctx, db, userID, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, nil
	}

	entries, err := ListEntries(ctx, db, userID, runID)
	if err != nil {
		return nil, err
	}

	stats := &model.PokedexStats{Total: len(entries)}
	for _, e := range entries {
		switch e.Status {
		case model.StatusSeen:
			stats.Seen++
		case model.StatusCaught:
			stats.Caught++
		case model.StatusOwned:
			stats.Owned++
		}
	}
	return stats, nil
}

// GetEntry returns the entry for (run, species), or nil if absent or the run
// is not the user's.
func GetEntry(ctx context.Context, db *sql.DB, userID, runID string, pokemonID int) (*model.PokedexEntry, error) {
	run, err := GetRun(ctx, db, userID, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, nil
	}

	e, err := scanEntry(db.QueryRowContext(ctx,
		`SELECT id, run_id, user_id, pokemon_id, pokemon_name, status, caught_at, location, notes
		 FROM pokedex_entries WHERE run_id = ? AND pokemon_id = ? LIMIT 1`, runID, pokemonID,
	).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

// DeleteEntry deletes a single entry owned by the user.
func DeleteEntry(ctx context.Context, db *sql.DB, userID, entryID string) error {
	entry, err := getEntryByID(ctx, db, entryID)
	if err != nil {
		return err
	}
	if entry == nil || entry.UserID != userID {
		return ErrUnauthorized
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM pokedex_entries WHERE id = ?`, entryID); err != nil {
		return fmt.Errorf("deleting pokedex entry: %w", err)
	}
	return nil
}

// BulkAddEntries inserts the entries that do not yet exist for the run and
// returns how many were created. Entries whose (run, species) pair already
// exists are skipped untouched, unlike UpsertEntry.
func BulkAddEntries(ctx context.Context, db *sql.DB, userID, runID string, entries []EntryInput) (int, error) {
	run, err := GetRun(ctx, db, userID, runID)
	if err != nil {
		return 0, err
	}
	if run == nil {
		return 0, ErrRunNotFound
	}

	now := time.Now().UnixMilli()
	created := 0

	for _, in := range entries {
		existing, err := GetEntry(ctx, db, userID, runID, in.PokemonID)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}

		var caughtAt any
		if in.Status == model.StatusCaught || in.Status == model.StatusOwned {
			caughtAt = now
		}
		_, err = db.ExecContext(ctx,
			`INSERT INTO pokedex_entries (id, run_id, user_id, pokemon_id, pokemon_name, status, caught_at, location, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), runID, userID, in.PokemonID, in.PokemonName, in.Status, caughtAt, optString(in.Location), optString(in.Notes),
		)
		if err != nil {
			return created, fmt.Errorf("creating pokedex entry: %w", err)
		}
		created++
	}
	return created, nil
}

func getEntryByID(ctx context.Context, db *sql.DB, id string) (*model.PokedexEntry, error) {
	e, err := scanEntry(db.QueryRowContext(ctx,
		`SELECT id, run_id, user_id, pokemon_id, pokemon_name, status, caught_at, location, notes
		 FROM pokedex_entries WHERE id = ?`, id,
	).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

func scanEntry(scan func(...any) error) (*model.PokedexEntry, error) {
	e := &model.PokedexEntry{}
	var caughtAt sql.NullInt64
	var location, notes sql.NullString
	err := scan(&e.ID, &e.RunID, &e.UserID, &e.PokemonID, &e.PokemonName, &e.Status, &caughtAt, &location, &notes)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning pokedex entry: %w", err)
	}
	if caughtAt.Valid {
		e.CaughtAt = &caughtAt.Int64
	}
	e.Location = location.String
	e.Notes = notes.String
	return e, nil
}

// optString maps a nil or empty optional to NULL.
func optString(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
