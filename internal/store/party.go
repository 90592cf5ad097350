package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matevzh/nuzlog/internal/model"
)

// PartyInput is the caller-supplied part of a new party member. Position nil
// means "lowest free slot".
type PartyInput struct {
	PokemonID   int
	PokemonName string
	Level       int
	Position    *int
	Nickname    *string
	Gender      *string
	IsShiny     *bool
	Nature      *string
	Ability     *string
	HeldItem    *string
	Moves       []string
	Stats       *model.StatBlock
	IVs         *model.StatBlock
	EVs         *model.StatBlock
	Notes       *string
}

// PartyPatch holds the optional fields of a party member update. Nil fields
// are left unchanged.
type PartyPatch struct {
	Nickname  *string
	Level     *int
	Position  *int
	Gender    *string
	IsShiny   *bool
	Nature    *string
	Ability   *string
	HeldItem  *string
	Moves     []string
	Stats     *model.StatBlock
	IVs       *model.StatBlock
	EVs       *model.StatBlock
	IsFainted *bool
	Notes     *string
}

// AddPartyPokemon adds a Pokémon to a run's party. With no explicit position
// the lowest unused slot is assigned; a full party is refused. The occupancy
// read and the insert are separate statements.
func AddPartyPokemon(ctx context.Context, db *sql.DB, userID, runID string, in PartyInput) (*model.PartyPokemon, error) {
	run, err := GetRun(ctx, db, userID, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, ErrRunNotFound
	}

	party, err := listParty(ctx, db, runID)
	if err != nil {
		return nil, err
	}

	if len(party) >= model.MaxPartySize && in.Position == nil {
		return nil, ErrPartyFull
	}

	position := -1
	if in.Position != nil {
		position = *in.Position
	} else {
		used := make(map[int]bool, len(party))
		for _, p := range party {
			used[p.Position] = true
		}
		for i := 0; i < model.MaxPartySize; i++ {
			if !used[i] {
				position = i
				break
			}
		}
	}

	if !model.ValidPosition(position) {
		return nil, ErrInvalidPosition
	}
	for _, p := range party {
		if p.Position == position {
			return nil, ErrPositionOccupied
		}
	}

	moves, err := marshalMoves(in.Moves)
	if err != nil {
		return nil, err
	}
	stats, err := marshalStats(in.Stats)
	if err != nil {
		return nil, err
	}
	ivs, err := marshalStats(in.IVs)
	if err != nil {
		return nil, err
	}
	evs, err := marshalStats(in.EVs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	id := uuid.NewString()
	_, err = db.ExecContext(ctx,
		`INSERT INTO party_pokemon (id, run_id, user_id, pokemon_id, pokemon_name, nickname, level, position,
		                            gender, is_shiny, nature, ability, held_item, moves, stats, ivs, evs,
		                            is_fainted, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?)`,
		id, runID, userID, in.PokemonID, in.PokemonName, optString(in.Nickname), in.Level, position,
		optString(in.Gender), optBool(in.IsShiny), optString(in.Nature), optString(in.Ability),
		optString(in.HeldItem), moves, stats, ivs, evs, optString(in.Notes), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating party pokemon: %w", err)
	}

	return getPartyByID(ctx, db, id)
}

// ListPartyPokemon returns a run's party ordered by slot, or nil if the run
// is missing or not the user's.
func ListPartyPokemon(ctx context.Context, db *sql.DB, userID, runID string) ([]model.PartyPokemon, error) {
	run, err := GetRun(ctx, db, userID, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, nil
	}
	return listParty(ctx, db, runID)
}

// GetPartyPokemon returns a single party member, or nil if it is missing or
// not the user's.
func GetPartyPokemon(ctx context.Context, db *sql.DB, userID, id string) (*model.PartyPokemon, error) {
	p, err := getPartyByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.UserID != userID {
		return nil, nil
	}
	return p, nil
}

// UpdatePartyPokemon applies the supplied fields to a party member. A
// position change is checked for conflicts against the rest of the party
// first.
func UpdatePartyPokemon(ctx context.Context, db *sql.DB, userID, id string, patch PartyPatch) (*model.PartyPokemon, error) {
	current, err := getPartyByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if current == nil || current.UserID != userID {
		return nil, ErrUnauthorized
	}

	if patch.Position != nil && *patch.Position != current.Position {
		if !model.ValidPosition(*patch.Position) {
			return nil, ErrInvalidPosition
		}
		party, err := listParty(ctx, db, current.RunID)
		if err != nil {
			return nil, err
		}
		for _, p := range party {
			if p.ID != id && p.Position == *patch.Position {
				return nil, ErrPositionOccupied
			}
		}
	}

	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UnixMilli()}
	add := func(col string, val any) {
		sets = append(sets, col+" = ?")
		args = append(args, val)
	}
	if patch.Nickname != nil {
		add("nickname", nullString(*patch.Nickname))
	}
	if patch.Level != nil {
		add("level", *patch.Level)
	}
	if patch.Position != nil {
		add("position", *patch.Position)
	}
	if patch.Gender != nil {
		add("gender", nullString(*patch.Gender))
	}
	if patch.IsShiny != nil {
		add("is_shiny", *patch.IsShiny)
	}
	if patch.Nature != nil {
		add("nature", nullString(*patch.Nature))
	}
	if patch.Ability != nil {
		add("ability", nullString(*patch.Ability))
	}
	if patch.HeldItem != nil {
		add("held_item", nullString(*patch.HeldItem))
	}
	if patch.Moves != nil {
		moves, err := marshalMoves(patch.Moves)
		if err != nil {
			return nil, err
		}
		add("moves", moves)
	}
	if patch.Stats != nil {
		stats, err := marshalStats(patch.Stats)
		if err != nil {
			return nil, err
		}
		add("stats", stats)
	}
	if patch.IVs != nil {
		ivs, err := marshalStats(patch.IVs)
		if err != nil {
			return nil, err
		}
		add("ivs", ivs)
	}
	if patch.EVs != nil {
		evs, err := marshalStats(patch.EVs)
		if err != nil {
			return nil, err
		}
		add("evs", evs)
	}
	if patch.IsFainted != nil {
		add("is_fainted", *patch.IsFainted)
	}
	if patch.Notes != nil {
		add("notes", nullString(*patch.Notes))
	}
	args = append(args, id)

	_, err = db.ExecContext(ctx,
		"UPDATE party_pokemon SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating party pokemon: %w", err)
	}

	return getPartyByID(ctx, db, id)
}

// RemovePartyPokemon deletes a party member owned by the user.
func RemovePartyPokemon(ctx context.Context, db *sql.DB, userID, id string) error {
	p, err := getPartyByID(ctx, db, id)
	if err != nil {
		return err
	}
	if p == nil || p.UserID != userID {
		return ErrUnauthorized
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM party_pokemon WHERE id = ?`, id); err != nil {
		return fmt.Errorf("removing party pokemon: %w", err)
	}
	return nil
}

// ReorderParty swaps the slots of two party members of the same run. The two
// updates are sequential, not transactional.
func ReorderParty(ctx context.Context, db *sql.DB, userID, id1, id2 string) error {
	p1, err := getPartyByID(ctx, db, id1)
	if err != nil {
		return err
	}
	p2, err := getPartyByID(ctx, db, id2)
	if err != nil {
		return err
	}
	if p1 == nil || p2 == nil || p1.UserID != userID || p2.UserID != userID {
		return ErrUnauthorized
	}
	if p1.RunID != p2.RunID {
		return ErrCrossRunMismatch
	}

	now := time.Now().UnixMilli()
	if _, err := db.ExecContext(ctx,
		`UPDATE party_pokemon SET position = ?, updated_at = ? WHERE id = ?`,
		p2.Position, now, id1,
	); err != nil {
		return fmt.Errorf("reordering party: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		`UPDATE party_pokemon SET position = ?, updated_at = ? WHERE id = ?`,
		p1.Position, now, id2,
	); err != nil {
		return fmt.Errorf("reordering party: %w", err)
	}
	return nil
}

const partyColumns = `id, run_id, user_id, pokemon_id, pokemon_name, nickname, level, position,
	gender, is_shiny, nature, ability, held_item, moves, stats, ivs, evs, is_fainted, notes,
	created_at, updated_at`

func listParty(ctx context.Context, db *sql.DB, runID string) ([]model.PartyPokemon, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+partyColumns+` FROM party_pokemon WHERE run_id = ? ORDER BY position`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing party: %w", err)
	}
	defer rows.Close()

	var party []model.PartyPokemon
	for rows.Next() {
		p, err := scanParty(rows.Scan)
		if err != nil {
			return nil, err
		}
		party = append(party, *p)
	}
	return party, rows.Err()
}

func getPartyByID(ctx context.Context, db *sql.DB, id string) (*model.PartyPokemon, error) {
	p, err := scanParty(db.QueryRowContext(ctx,
		`SELECT `+partyColumns+` FROM party_pokemon WHERE id = ?`, id,
	).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

func scanParty(scan func(...any) error) (*model.PartyPokemon, error) {
	p := &model.PartyPokemon{}
	var nickname, gender, nature, ability, heldItem, notes sql.NullString
	var moves, stats, ivs, evs sql.NullString
	var isShiny sql.NullBool
	err := scan(&p.ID, &p.RunID, &p.UserID, &p.PokemonID, &p.PokemonName, &nickname, &p.Level, &p.Position,
		&gender, &isShiny, &nature, &ability, &heldItem, &moves, &stats, &ivs, &evs, &p.IsFainted, &notes,
		&p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning party pokemon: %w", err)
	}
	p.Nickname = nickname.String
	p.Gender = gender.String
	p.IsShiny = isShiny.Bool
	p.Nature = nature.String
	p.Ability = ability.String
	p.HeldItem = heldItem.String
	p.Notes = notes.String

	if moves.Valid {
		if err := json.Unmarshal([]byte(moves.String), &p.Moves); err != nil {
			return nil, fmt.Errorf("decoding moves: %w", err)
		}
	}
	var blocks = []struct {
		col sql.NullString
		dst **model.StatBlock
	}{
		{stats, &p.Stats},
		{ivs, &p.IVs},
		{evs, &p.EVs},
	}
	for _, b := range blocks {
		if !b.col.Valid {
			continue
		}
		block := &model.StatBlock{}
		if err := json.Unmarshal([]byte(b.col.String), block); err != nil {
			return nil, fmt.Errorf("decoding stat block: %w", err)
		}
		*b.dst = block
	}
	return p, nil
}

func marshalMoves(moves []string) (any, error) {
	if moves == nil {
		return nil, nil
	}
	data, err := json.Marshal(moves)
	if err != nil {
		return nil, fmt.Errorf("encoding moves: %w", err)
	}
	return string(data), nil
}

func marshalStats(block *model.StatBlock) (any, error) {
	if block == nil {
		return nil, nil
	}
	data, err := json.Marshal(block)
	if err != nil {
		return nil, fmt.Errorf("encoding stat block: %w", err)
	}
	return string(data), nil
}

// optBool maps a nil optional to NULL.
func optBool(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}
