// Package pokeapi is a stateless read-only client for the public PokeAPI
// reference data (species, types, evolutions, encounters). The run/pokédex/
// party core never calls it; species ids and names stored there are opaque
// caller-supplied values.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the public PokeAPI endpoint.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Client fetches reference data from PokeAPI.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client. An empty baseURL selects the public API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// ListPokemon returns one page of the pokémon index.
func (c *Client) ListPokemon(ctx context.Context, limit, offset int) (*PokemonList, error) {
	var list PokemonList
	url := fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", c.baseURL, limit, offset)
	if err := c.get(ctx, url, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetPokemon fetches a pokémon by name or national dex number.
func (c *Client) GetPokemon(ctx context.Context, nameOrID string) (*Pokemon, error) {
	var p Pokemon
	if err := c.get(ctx, c.baseURL+"/pokemon/"+nameOrID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetSpecies fetches species data by name or national dex number.
func (c *Client) GetSpecies(ctx context.Context, nameOrID string) (*Species, error) {
	var s Species
	if err := c.get(ctx, c.baseURL+"/pokemon-species/"+nameOrID, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetEvolutionChain fetches an evolution chain by id.
func (c *Client) GetEvolutionChain(ctx context.Context, id int) (*EvolutionChain, error) {
	var chain EvolutionChain
	if err := c.get(ctx, fmt.Sprintf("%s/evolution-chain/%d", c.baseURL, id), &chain); err != nil {
		return nil, err
	}
	return &chain, nil
}

// GetType fetches a type and its damage relations by name or id.
func (c *Client) GetType(ctx context.Context, nameOrID string) (*TypeDetails, error) {
	var t TypeDetails
	if err := c.get(ctx, c.baseURL+"/type/"+nameOrID, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetEncounters fetches the location encounters for a pokémon.
func (c *Client) GetEncounters(ctx context.Context, pokemonID int) ([]Encounter, error) {
	var encounters []Encounter
	if err := c.get(ctx, fmt.Sprintf("%s/pokemon/%d/encounters", c.baseURL, pokemonID), &encounters); err != nil {
		return nil, err
	}
	return encounters, nil
}

// FetchSprite downloads the official artwork (front sprite as fallback) for a
// pokémon and returns the raw bytes.
func (c *Client) FetchSprite(ctx context.Context, pokemonID int) ([]byte, error) {
	p, err := c.GetPokemon(ctx, fmt.Sprintf("%d", pokemonID))
	if err != nil {
		return nil, err
	}

	url := p.Sprites.Other.OfficialArtwork.FrontDefault
	if url == "" {
		url = p.Sprites.FrontDefault
	}
	if url == "" {
		return nil, fmt.Errorf("no sprite available for pokemon %d", pokemonID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building sprite request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sprite: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching sprite: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading sprite: %w", err)
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}
