package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Domain timestamps are stored as integer
// epoch milliseconds to match what the mobile client renders. The composite
// keys (run_id, pokemon_id) and (run_id, position) are deliberately not
// UNIQUE: the store maintains them with read-then-write upsert and occupancy
// checks.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at    DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_active
    ON users(username) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS runs (
    id          TEXT PRIMARY KEY,
    user_id     TEXT NOT NULL REFERENCES users(id),
    name        TEXT NOT NULL,
    game        TEXT NOT NULL,
    description TEXT,
    is_active   INTEGER NOT NULL DEFAULT 0,
    created_at  INTEGER NOT NULL,
    updated_at  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_user ON runs(user_id);
CREATE INDEX IF NOT EXISTS idx_runs_user_active ON runs(user_id, is_active);

CREATE TABLE IF NOT EXISTS pokedex_entries (
    id           TEXT PRIMARY KEY,
    run_id       TEXT NOT NULL REFERENCES runs(id),
    user_id      TEXT NOT NULL,
    pokemon_id   INTEGER NOT NULL,
    pokemon_name TEXT NOT NULL,
    status       TEXT NOT NULL CHECK (status IN ('seen', 'caught', 'owned')),
    caught_at    INTEGER,
    location     TEXT,
    notes        TEXT
);

CREATE INDEX IF NOT EXISTS idx_pokedex_run ON pokedex_entries(run_id);
CREATE INDEX IF NOT EXISTS idx_pokedex_run_pokemon ON pokedex_entries(run_id, pokemon_id);

CREATE TABLE IF NOT EXISTS party_pokemon (
    id           TEXT PRIMARY KEY,
    run_id       TEXT NOT NULL REFERENCES runs(id),
    user_id      TEXT NOT NULL,
    pokemon_id   INTEGER NOT NULL,
    pokemon_name TEXT NOT NULL,
    nickname     TEXT,
    level        INTEGER NOT NULL,
    position     INTEGER NOT NULL CHECK (position >= 0 AND position <= 5),
    gender       TEXT CHECK (gender IN ('male', 'female', 'genderless')),
    is_shiny     INTEGER,
    nature       TEXT,
    ability      TEXT,
    held_item    TEXT,
    moves        TEXT,
    stats        TEXT,
    ivs          TEXT,
    evs          TEXT,
    is_fainted   INTEGER NOT NULL DEFAULT 0,
    notes        TEXT,
    created_at   INTEGER NOT NULL,
    updated_at   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_party_run ON party_pokemon(run_id);
CREATE INDEX IF NOT EXISTS idx_party_run_position ON party_pokemon(run_id, position);

CREATE TABLE IF NOT EXISTS user_preferences (
    id                TEXT PRIMARY KEY,
    user_id           TEXT NOT NULL REFERENCES users(id),
    selected_game     TEXT NOT NULL,
    selected_sections TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_preferences_user ON user_preferences(user_id);

CREATE TABLE IF NOT EXISTS sprites (
    pokemon_id INTEGER PRIMARY KEY,
    data       BLOB NOT NULL,
    mime       TEXT NOT NULL,
    fetched_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at the
// end.
var migrations = []string{}

// Migrate runs the database schema migrations.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
