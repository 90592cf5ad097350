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

// RunPatch holds the optional fields of a run update. Nil fields are left
// unchanged.
type RunPatch struct {
	Name        *string
	Game        *string
	Description *string
	IsActive    *bool
}

// CreateRun creates a new run for the user. If setActive is true, any
// currently active run is deactivated first. The deactivate scan and the
// insert are separate statements, so two concurrent calls can transiently
// leave two active runs; the next activation settles it.
func CreateRun(ctx context.Context, db *sql.DB, userID, name, game, description string, setActive bool) (*model.Run, error) {
	now := time.Now().UnixMilli()

	if setActive {
		if err := deactivateRuns(ctx, db, userID, "", now); err != nil {
			return nil, err
		}
	}

	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO runs (id, user_id, name, game, description, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, userID, name, game, nullString(description), setActive, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating run: %w", err)
	}

	return GetRun(ctx, db, userID, id)
}

// GetRun returns the run if it exists and belongs to the user, nil otherwise.
func GetRun(ctx context.Context, db *sql.DB, userID, id string) (*model.Run, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, user_id, name, game, description, is_active, created_at, updated_at
		 FROM runs WHERE id = ? AND user_id = ?`, id, userID,
	)
	return scanRun(row)
}

// ListRuns returns all of the user's runs, most recently created first.
func ListRuns(ctx context.Context, db *sql.DB, userID string) ([]model.Run, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, user_id, name, game, description, is_active, created_at, updated_at
		 FROM runs WHERE user_id = ? ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		var r model.Run
		var description sql.NullString
		if err := rows.Scan(&r.ID, &r.UserID, &r.Name, &r.Game, &description, &r.IsActive, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Description = description.String
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetActiveRun returns the user's active run, or nil if none is active.
func GetActiveRun(ctx context.Context, db *sql.DB, userID string) (*model.Run, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, user_id, name, game, description, is_active, created_at, updated_at
		 FROM runs WHERE user_id = ? AND is_active = 1 LIMIT 1`, userID,
	)
	return scanRun(row)
}

// UpdateRun applies the supplied fields to a run owned by the user. Setting
// IsActive deactivates every other run first.
func UpdateRun(ctx context.Context, db *sql.DB, userID, id string, patch RunPatch) (*model.Run, error) {
	run, err := GetRun(ctx, db, userID, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, ErrRunNotFound
	}

	now := time.Now().UnixMilli()

	if patch.IsActive != nil && *patch.IsActive {
		if err := deactivateRuns(ctx, db, userID, id, now); err != nil {
			return nil, err
		}
	}

	sets := []string{"updated_at = ?"}
	args := []any{now}
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Game != nil {
		sets = append(sets, "game = ?")
		args = append(args, *patch.Game)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullString(*patch.Description))
	}
	if patch.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *patch.IsActive)
	}
	args = append(args, id)

	_, err = db.ExecContext(ctx,
		"UPDATE runs SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating run: %w", err)
	}

	return GetRun(ctx, db, userID, id)
}

// DeleteRun deletes a run and everything scoped to it: pokédex entries first,
// then party members, then the run row. There is no cross-statement
// transaction, so a failure partway leaves a partially deleted run.
func DeleteRun(ctx context.Context, db *sql.DB, userID, id string) error {
	run, err := GetRun(ctx, db, userID, id)
	if err != nil {
		return err
	}
	if run == nil {
		return ErrRunNotFound
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM pokedex_entries WHERE run_id = ?`, id); err != nil {
		return fmt.Errorf("deleting pokedex entries: %w", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM party_pokemon WHERE run_id = ?`, id); err != nil {
		return fmt.Errorf("deleting party pokemon: %w", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	return nil
}

// deactivateRuns flips every active run of the user to inactive, bumping its
// update timestamp. excludeID may be empty.
func deactivateRuns(ctx context.Context, db *sql.DB, userID, excludeID string, now int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE runs SET is_active = 0, updated_at = ? WHERE user_id = ? AND is_active = 1 AND id != ?`,
		now, userID, excludeID,
	)
	if err != nil {
		return fmt.Errorf("deactivating runs: %w", err)
	}
	return nil
}

func scanRun(row *sql.Row) (*model.Run, error) {
	r := &model.Run{}
	var description sql.NullString
	err := row.Scan(&r.ID, &r.UserID, &r.Name, &r.Game, &description, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}
	r.Description = description.String
	return r, nil
}

// nullString maps "" to NULL so optional text columns stay NULL when unset.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
