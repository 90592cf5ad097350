package api

import (
	"bytes"
	"database/sql"
	"net/http"
	"strconv"

	"github.com/matevzh/nuzlog/internal/imaging"
	"github.com/matevzh/nuzlog/internal/pokeapi"
	"github.com/matevzh/nuzlog/internal/store"
)

// PokemonHandler proxies read-only reference data from PokeAPI for clients
// that cannot reach it directly, and serves downscaled cached sprites.
type PokemonHandler struct {
	DB     *sql.DB
	Client *pokeapi.Client
}

// List handles GET /api/pokemon with optional limit/offset query parameters.
func (h *PokemonHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 1000)
	offset := queryInt(r, "offset", 0)

	list, err := h.Client.ListPokemon(r.Context(), limit, offset)
	if err != nil {
		jsonError(w, http.StatusBadGateway, "failed to fetch pokemon list")
		return
	}
	jsonResponse(w, http.StatusOK, list)
}

// Get handles GET /api/pokemon/{name} (name or national dex number).
func (h *PokemonHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Client.GetPokemon(r.Context(), r.PathValue("name"))
	if err != nil {
		jsonError(w, http.StatusBadGateway, "failed to fetch pokemon")
		return
	}
	jsonResponse(w, http.StatusOK, p)
}

// GetSpecies handles GET /api/pokemon/{name}/species.
func (h *PokemonHandler) GetSpecies(w http.ResponseWriter, r *http.Request) {
	s, err := h.Client.GetSpecies(r.Context(), r.PathValue("name"))
	if err != nil {
		jsonError(w, http.StatusBadGateway, "failed to fetch species")
		return
	}
	jsonResponse(w, http.StatusOK, s)
}

// GetEncounters handles GET /api/pokemon/{name}/encounters.
func (h *PokemonHandler) GetEncounters(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("name"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pokemon id")
		return
	}

	encounters, err := h.Client.GetEncounters(r.Context(), id)
	if err != nil {
		jsonError(w, http.StatusBadGateway, "failed to fetch encounters")
		return
	}
	if encounters == nil {
		encounters = []pokeapi.Encounter{}
	}
	jsonResponse(w, http.StatusOK, encounters)
}

// GetType handles GET /api/types/{name}.
func (h *PokemonHandler) GetType(w http.ResponseWriter, r *http.Request) {
	t, err := h.Client.GetType(r.Context(), r.PathValue("name"))
	if err != nil {
		jsonError(w, http.StatusBadGateway, "failed to fetch type")
		return
	}
	jsonResponse(w, http.StatusOK, t)
}

// GetEvolutionChain handles GET /api/evolution-chains/{id}.
func (h *PokemonHandler) GetEvolutionChain(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid evolution chain id")
		return
	}

	chain, err := h.Client.GetEvolutionChain(r.Context(), id)
	if err != nil {
		jsonError(w, http.StatusBadGateway, "failed to fetch evolution chain")
		return
	}
	jsonResponse(w, http.StatusOK, chain)
}

// GetSprite handles GET /api/pokemon/{name}/sprite. The first request
// downloads the artwork, downscales it, and caches the PNG; later requests
// serve the cached blob.
func (h *PokemonHandler) GetSprite(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("name"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pokemon id")
		return
	}

	data, mime, err := store.GetSprite(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to read sprite cache")
		return
	}

	if data == nil {
		raw, err := h.Client.FetchSprite(r.Context(), id)
		if err != nil {
			jsonError(w, http.StatusBadGateway, "failed to fetch sprite")
			return
		}

		result, err := imaging.Process(bytes.NewReader(raw))
		if err != nil {
			jsonError(w, http.StatusBadGateway, "failed to process sprite")
			return
		}

		if err := store.SetSprite(r.Context(), h.DB, id, result.Data, result.MIME); err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to cache sprite")
			return
		}
		data, mime = result.Data, result.MIME
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(data)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
