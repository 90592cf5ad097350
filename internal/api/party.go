package api

import (
	"database/sql"
	"net/http"

	"github.com/matevzh/nuzlog/internal/model"
	"github.com/matevzh/nuzlog/internal/store"
)

// PartyHandler handles party roster endpoints.
type PartyHandler struct {
	DB *sql.DB
}

type addPartyRequest struct {
	PokemonID   int              `json:"pokemonId"`
	PokemonName string           `json:"pokemonName"`
	Level       int              `json:"level"`
	Position    *int             `json:"position"`
	Nickname    *string          `json:"nickname"`
	Gender      *string          `json:"gender"`
	IsShiny     *bool            `json:"isShiny"`
	Nature      *string          `json:"nature"`
	Ability     *string          `json:"ability"`
	HeldItem    *string          `json:"heldItem"`
	Moves       []string         `json:"moves"`
	Stats       *model.StatBlock `json:"stats"`
	IVs         *model.StatBlock `json:"ivs"`
	EVs         *model.StatBlock `json:"evs"`
	Notes       *string          `json:"notes"`
}

type updatePartyRequest struct {
	Nickname  *string          `json:"nickname"`
	Level     *int             `json:"level"`
	Position  *int             `json:"position"`
	Gender    *string          `json:"gender"`
	IsShiny   *bool            `json:"isShiny"`
	Nature    *string          `json:"nature"`
	Ability   *string          `json:"ability"`
	HeldItem  *string          `json:"heldItem"`
	Moves     []string         `json:"moves"`
	Stats     *model.StatBlock `json:"stats"`
	IVs       *model.StatBlock `json:"ivs"`
	EVs       *model.StatBlock `json:"evs"`
	IsFainted *bool            `json:"isFainted"`
	Notes     *string          `json:"notes"`
}

type reorderRequest struct {
	PokemonID1 string `json:"pokemonId1"`
	PokemonID2 string `json:"pokemonId2"`
}

// Add handles POST /api/runs/{id}/party.
func (h *PartyHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req addPartyRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.PokemonID <= 0 {
		jsonError(w, http.StatusBadRequest, "pokemonId required")
		return
	}
	if req.PokemonName == "" {
		jsonError(w, http.StatusBadRequest, "pokemonName required")
		return
	}
	if req.Level < 1 || req.Level > 100 {
		jsonError(w, http.StatusBadRequest, "level must be between 1 and 100")
		return
	}
	if req.Gender != nil && !model.ValidGender(*req.Gender) {
		jsonError(w, http.StatusBadRequest, "gender must be male, female or genderless")
		return
	}
	if len(req.Moves) > model.MaxMoves {
		jsonError(w, http.StatusBadRequest, "at most 4 moves allowed")
		return
	}

	pokemon, err := store.AddPartyPokemon(r.Context(), h.DB, claims.UserID, r.PathValue("id"), store.PartyInput{
		PokemonID:   req.PokemonID,
		PokemonName: req.PokemonName,
		Level:       req.Level,
		Position:    req.Position,
		Nickname:    req.Nickname,
		Gender:      req.Gender,
		IsShiny:     req.IsShiny,
		Nature:      req.Nature,
		Ability:     req.Ability,
		HeldItem:    req.HeldItem,
		Moves:       req.Moves,
		Stats:       req.Stats,
		IVs:         req.IVs,
		EVs:         req.EVs,
		Notes:       req.Notes,
	})
	if err != nil {
		storeError(w, err, "failed to add party pokemon")
		return
	}
	jsonResponse(w, http.StatusCreated, pokemon)
}

// List handles GET /api/runs/{id}/party.
func (h *PartyHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	party, err := store.ListPartyPokemon(r.Context(), h.DB, claims.UserID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to list party")
		return
	}
	if party == nil {
		party = []model.PartyPokemon{}
	}
	jsonResponse(w, http.StatusOK, party)
}

// Get handles GET /api/party/{id}. Responds with null when the member is
// missing or not the caller's.
func (h *PartyHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	pokemon, err := store.GetPartyPokemon(r.Context(), h.DB, claims.UserID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to get party pokemon")
		return
	}
	jsonResponse(w, http.StatusOK, pokemon)
}

// Update handles PUT /api/party/{id}.
func (h *PartyHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req updatePartyRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Level != nil && (*req.Level < 1 || *req.Level > 100) {
		jsonError(w, http.StatusBadRequest, "level must be between 1 and 100")
		return
	}
	if req.Gender != nil && !model.ValidGender(*req.Gender) {
		jsonError(w, http.StatusBadRequest, "gender must be male, female or genderless")
		return
	}
	if len(req.Moves) > model.MaxMoves {
		jsonError(w, http.StatusBadRequest, "at most 4 moves allowed")
		return
	}

	pokemon, err := store.UpdatePartyPokemon(r.Context(), h.DB, claims.UserID, r.PathValue("id"), store.PartyPatch{
		Nickname:  req.Nickname,
		Level:     req.Level,
		Position:  req.Position,
		Gender:    req.Gender,
		IsShiny:   req.IsShiny,
		Nature:    req.Nature,
		Ability:   req.Ability,
		HeldItem:  req.HeldItem,
		Moves:     req.Moves,
		Stats:     req.Stats,
		IVs:       req.IVs,
		EVs:       req.EVs,
		IsFainted: req.IsFainted,
		Notes:     req.Notes,
	})
	if err != nil {
		storeError(w, err, "failed to update party pokemon")
		return
	}
	jsonResponse(w, http.StatusOK, pokemon)
}

// Remove handles DELETE /api/party/{id}.
func (h *PartyHandler) Remove(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	if err := store.RemovePartyPokemon(r.Context(), h.DB, claims.UserID, r.PathValue("id")); err != nil {
		storeError(w, err, "failed to remove party pokemon")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// Reorder handles POST /api/party/reorder, swapping the slots of two members.
func (h *PartyHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PokemonID1 == "" || req.PokemonID2 == "" {
		jsonError(w, http.StatusBadRequest, "pokemonId1 and pokemonId2 required")
		return
	}

	if err := store.ReorderParty(r.Context(), h.DB, claims.UserID, req.PokemonID1, req.PokemonID2); err != nil {
		storeError(w, err, "failed to reorder party")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}
