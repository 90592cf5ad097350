package store

import (
	"context"
	"database/sql"
	"fmt"
)

// GetSprite returns the cached sprite for a species, or nil data if none is
// cached yet.
func GetSprite(ctx context.Context, db *sql.DB, pokemonID int) ([]byte, string, error) {
	var data []byte
	var mime string
	err := db.QueryRowContext(ctx,
		`SELECT data, mime FROM sprites WHERE pokemon_id = ?`, pokemonID,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting sprite: %w", err)
	}
	return data, mime, nil
}

// SetSprite stores (or replaces) the cached sprite for a species.
func SetSprite(ctx context.Context, db *sql.DB, pokemonID int, data []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sprites (pokemon_id, data, mime) VALUES (?, ?, ?)`,
		pokemonID, data, mime,
	)
	if err != nil {
		return fmt.Errorf("storing sprite: %w", err)
	}
	return nil
}
