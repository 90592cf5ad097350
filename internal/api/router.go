package api

import (
	"database/sql"
	"net/http"

	"github.com/matevzh/nuzlog/internal/pokeapi"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string, client *pokeapi.Client) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	runsHandler := &RunsHandler{DB: db}
	pokedexHandler := &PokedexHandler{DB: db}
	partyHandler := &PartyHandler{DB: db}
	preferencesHandler := &PreferencesHandler{DB: db}
	pokemonHandler := &PokemonHandler{DB: db, Client: client}

	authMW := AuthMiddleware(jwtSecret, db)
	protected := func(h http.HandlerFunc) http.Handler {
		return authMW(h)
	}

	// Public: account creation and login.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Session.
	mux.Handle("POST /api/auth/logout", protected(authHandler.Logout))
	mux.Handle("PUT /api/auth/password", protected(authHandler.ChangePassword))

	// Runs.
	mux.Handle("POST /api/runs", protected(runsHandler.Create))
	mux.Handle("GET /api/runs", protected(runsHandler.List))
	mux.Handle("GET /api/runs/active", protected(runsHandler.GetActive))
	mux.Handle("GET /api/runs/{id}", protected(runsHandler.Get))
	mux.Handle("PUT /api/runs/{id}", protected(runsHandler.Update))
	mux.Handle("DELETE /api/runs/{id}", protected(runsHandler.Delete))
	mux.Handle("GET /api/games", protected(runsHandler.ListGames))

	// Pokédex ledger, scoped by run.
	mux.Handle("PUT /api/runs/{id}/pokedex", protected(pokedexHandler.Upsert))
	mux.Handle("GET /api/runs/{id}/pokedex", protected(pokedexHandler.List))
	mux.Handle("GET /api/runs/{id}/pokedex/stats", protected(pokedexHandler.Stats))
	mux.Handle("GET /api/runs/{id}/pokedex/{pokemonId}", protected(pokedexHandler.Get))
	mux.Handle("POST /api/runs/{id}/pokedex/bulk", protected(pokedexHandler.BulkAdd))
	mux.Handle("DELETE /api/pokedex/{entryId}", protected(pokedexHandler.Delete))

	// Party roster.
	mux.Handle("POST /api/runs/{id}/party", protected(partyHandler.Add))
	mux.Handle("GET /api/runs/{id}/party", protected(partyHandler.List))
	mux.Handle("POST /api/party/reorder", protected(partyHandler.Reorder))
	mux.Handle("GET /api/party/{id}", protected(partyHandler.Get))
	mux.Handle("PUT /api/party/{id}", protected(partyHandler.Update))
	mux.Handle("DELETE /api/party/{id}", protected(partyHandler.Remove))

	// Preferences.
	mux.Handle("GET /api/preferences", protected(preferencesHandler.Get))
	mux.Handle("PUT /api/preferences", protected(preferencesHandler.Save))
	mux.Handle("GET /api/sections", protected(preferencesHandler.ListSections))

	// Read-only reference data proxy.
	mux.Handle("GET /api/pokemon", protected(pokemonHandler.List))
	mux.Handle("GET /api/pokemon/{name}", protected(pokemonHandler.Get))
	mux.Handle("GET /api/pokemon/{name}/species", protected(pokemonHandler.GetSpecies))
	mux.Handle("GET /api/pokemon/{name}/encounters", protected(pokemonHandler.GetEncounters))
	mux.Handle("GET /api/pokemon/{name}/sprite", protected(pokemonHandler.GetSprite))
	mux.Handle("GET /api/types/{name}", protected(pokemonHandler.GetType))
	mux.Handle("GET /api/evolution-chains/{id}", protected(pokemonHandler.GetEvolutionChain))

	return mux
}
