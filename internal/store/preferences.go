package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/matevzh/nuzlog/internal/model"
)

// SavePreferences upserts the user's single preference row.
func SavePreferences(ctx context.Context, db *sql.DB, userID, selectedGame string, selectedSections []string) (*model.Preferences, error) {
	if selectedSections == nil {
		selectedSections = []string{}
	}
	sections, err := json.Marshal(selectedSections)
	if err != nil {
		return nil, fmt.Errorf("encoding sections: %w", err)
	}

	existing, err := GetPreferences(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		id := uuid.NewString()
		_, err := db.ExecContext(ctx,
			`INSERT INTO user_preferences (id, user_id, selected_game, selected_sections) VALUES (?, ?, ?, ?)`,
			id, userID, selectedGame, string(sections),
		)
		if err != nil {
			return nil, fmt.Errorf("creating preferences: %w", err)
		}
		return GetPreferences(ctx, db, userID)
	}

	_, err = db.ExecContext(ctx,
		`UPDATE user_preferences SET selected_game = ?, selected_sections = ? WHERE id = ?`,
		selectedGame, string(sections), existing.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating preferences: %w", err)
	}
	return GetPreferences(ctx, db, userID)
}

// GetPreferences returns the user's preference row, or nil if none exists.
func GetPreferences(ctx context.Context, db *sql.DB, userID string) (*model.Preferences, error) {
	p := &model.Preferences{}
	var sections string
	err := db.QueryRowContext(ctx,
		`SELECT id, user_id, selected_game, selected_sections FROM user_preferences WHERE user_id = ? LIMIT 1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.SelectedGame, &sections)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting preferences: %w", err)
	}
	if err := json.Unmarshal([]byte(sections), &p.SelectedSections); err != nil {
		return nil, fmt.Errorf("decoding sections: %w", err)
	}
	return p, nil
}
