package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/matevzh/nuzlog/internal/model"
	"github.com/matevzh/nuzlog/internal/store"
)

// PokedexHandler handles pokédex ledger endpoints.
type PokedexHandler struct {
	DB *sql.DB
}

type upsertEntryRequest struct {
	PokemonID   int     `json:"pokemonId"`
	PokemonName string  `json:"pokemonName"`
	Status      string  `json:"status"`
	Location    *string `json:"location"`
	Notes       *string `json:"notes"`
}

type bulkAddRequest struct {
	Entries []upsertEntryRequest `json:"entries"`
}

func (req *upsertEntryRequest) validate() (string, bool) {
	if req.PokemonID <= 0 {
		return "pokemonId required", false
	}
	if req.PokemonName == "" {
		return "pokemonName required", false
	}
	if !model.ValidStatus(req.Status) {
		return "status must be seen, caught or owned", false
	}
	return "", true
}

// Upsert handles PUT /api/runs/{id}/pokedex.
func (h *PokedexHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req upsertEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg, ok := req.validate(); !ok {
		jsonError(w, http.StatusBadRequest, msg)
		return
	}

	entry, err := store.UpsertEntry(r.Context(), h.DB, claims.UserID, r.PathValue("id"), store.EntryInput{
		PokemonID:   req.PokemonID,
		PokemonName: req.PokemonName,
		Status:      req.Status,
		Location:    req.Location,
		Notes:       req.Notes,
	})
	if err != nil {
		storeError(w, err, "failed to upsert pokedex entry")
		return
	}
	jsonResponse(w, http.StatusOK, entry)
}

// List handles GET /api/runs/{id}/pokedex.
func (h *PokedexHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	entries, err := store.ListEntries(r.Context(), h.DB, claims.UserID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to list pokedex entries")
		return
	}
	if entries == nil {
		entries = []model.PokedexEntry{}
	}
	jsonResponse(w, http.StatusOK, entries)
}

// Stats handles GET /api/runs/{id}/pokedex/stats. Responds with null for an
// unknown or unowned run.
func (h *PokedexHandler) Stats(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	stats, err := store.GetEntryStats(r.Context(), h.DB, claims.UserID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to get pokedex stats")
		return
	}
	jsonResponse(w, http.StatusOK, stats)
}

// Get handles GET /api/runs/{id}/pokedex/{pokemonId}. Responds with null when
// the species has no entry in the run.
func (h *PokedexHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	pokemonID, err := strconv.Atoi(r.PathValue("pokemonId"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pokemon id")
		return
	}

	entry, err := store.GetEntry(r.Context(), h.DB, claims.UserID, r.PathValue("id"), pokemonID)
	if err != nil {
		storeError(w, err, "failed to get pokedex entry")
		return
	}
	jsonResponse(w, http.StatusOK, entry)
}

// BulkAdd handles POST /api/runs/{id}/pokedex/bulk. Existing (run, species)
// pairs are skipped untouched; the response reports how many entries were
// created.
func (h *PokedexHandler) BulkAdd(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req bulkAddRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entries := make([]store.EntryInput, 0, len(req.Entries))
	for _, e := range req.Entries {
		if msg, ok := e.validate(); !ok {
			jsonError(w, http.StatusBadRequest, msg)
			return
		}
		entries = append(entries, store.EntryInput{
			PokemonID:   e.PokemonID,
			PokemonName: e.PokemonName,
			Status:      e.Status,
			Location:    e.Location,
			Notes:       e.Notes,
		})
	}

	created, err := store.BulkAddEntries(r.Context(), h.DB, claims.UserID, r.PathValue("id"), entries)
	if err != nil {
		storeError(w, err, "failed to bulk add pokedex entries")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]int{"created": created})
}

// Delete handles DELETE /api/pokedex/{entryId}.
func (h *PokedexHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	if err := store.DeleteEntry(r.Context(), h.DB, claims.UserID, r.PathValue("entryId")); err != nil {
		storeError(w, err, "failed to delete pokedex entry")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}
