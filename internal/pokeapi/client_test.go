package pokeapi

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestListPokemon(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/pokemon": `{"count": 1302, "next": "next-page", "results": [
			{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"},
			{"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon/2/"}
		]}`,
	})
	client := NewClient(srv.URL)

	list, err := client.ListPokemon(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1302, list.Count)
	require.Len(t, list.Results, 2)
	assert.Equal(t, "bulbasaur", list.Results[0].Name)
}

func TestGetPokemon(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/pokemon/pikachu": `{"id": 25, "name": "pikachu", "height": 4, "weight": 60,
			"types": [{"slot": 1, "type": {"name": "electric", "url": ""}}],
			"stats": [{"base_stat": 35, "effort": 0, "stat": {"name": "hp", "url": ""}}],
			"sprites": {"front_default": "front.png",
				"other": {"official-artwork": {"front_default": "artwork.png"}}}}`,
	})
	client := NewClient(srv.URL)

	p, err := client.GetPokemon(context.Background(), "pikachu")
	require.NoError(t, err)
	assert.Equal(t, 25, p.ID)
	require.Len(t, p.Types, 1)
	assert.Equal(t, "electric", p.Types[0].Type.Name)
	assert.Equal(t, "artwork.png", p.Sprites.Other.OfficialArtwork.FrontDefault)
}

func TestGetSpecies(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/pokemon-species/25": `{"id": 25, "name": "pikachu", "capture_rate": 190,
			"egg_groups": [{"name": "field", "url": ""}, {"name": "fairy", "url": ""}],
			"evolution_chain": {"url": "https://pokeapi.co/api/v2/evolution-chain/10/"}}`,
	})
	client := NewClient(srv.URL)

	s, err := client.GetSpecies(context.Background(), "25")
	require.NoError(t, err)
	assert.Equal(t, 190, s.CaptureRate)
	assert.Len(t, s.EggGroups, 2)
}

func TestGetEvolutionChain(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/evolution-chain/10": `{"id": 10, "chain": {
			"species": {"name": "pichu", "url": ""},
			"evolves_to": [{"species": {"name": "pikachu", "url": ""},
				"evolves_to": [{"species": {"name": "raichu", "url": ""}, "evolves_to": []}]}]}}`,
	})
	client := NewClient(srv.URL)

	chain, err := client.GetEvolutionChain(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "pichu", chain.Chain.Species.Name)
	require.Len(t, chain.Chain.EvolvesTo, 1)
	assert.Equal(t, "pikachu", chain.Chain.EvolvesTo[0].Species.Name)
}

func TestGetType(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/type/electric": `{"id": 13, "name": "electric", "damage_relations": {
			"double_damage_to": [{"name": "water", "url": ""}, {"name": "flying", "url": ""}],
			"no_damage_to": [{"name": "ground", "url": ""}]}}`,
	})
	client := NewClient(srv.URL)

	typ, err := client.GetType(context.Background(), "electric")
	require.NoError(t, err)
	assert.Len(t, typ.DamageRelations.DoubleDamageTo, 2)
	assert.Equal(t, "ground", typ.DamageRelations.NoDamageTo[0].Name)
}

func TestGetEncounters(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/pokemon/25/encounters": `[{"location_area": {"name": "viridian-forest", "url": ""},
			"version_details": [{"version": {"name": "red", "url": ""}, "max_chance": 10}]}]`,
	})
	client := NewClient(srv.URL)

	encounters, err := client.GetEncounters(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, encounters, 1)
	assert.Equal(t, "viridian-forest", encounters[0].LocationArea.Name)
}

func TestFetchSprite(t *testing.T) {
	var spriteBuf bytes.Buffer
	require.NoError(t, png.Encode(&spriteBuf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/sprite.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write(spriteBuf.Bytes())
	})
	mux.HandleFunc("/pokemon/25", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 25, "name": "pikachu", "sprites": {
			"front_default": "` + srv.URL + `/fallback.png",
			"other": {"official-artwork": {"front_default": "` + srv.URL + `/sprite.png"}}}}`))
	})

	client := NewClient(srv.URL)
	data, err := client.FetchSprite(context.Background(), 25)
	require.NoError(t, err)
	assert.Equal(t, spriteBuf.Bytes(), data)
}

func TestFetchSpriteFallsBack(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/fallback.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fallback-bytes"))
	})
	mux.HandleFunc("/pokemon/132", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 132, "name": "ditto", "sprites": {
			"front_default": "` + srv.URL + `/fallback.png",
			"other": {"official-artwork": {"front_default": ""}}}}`))
	})

	client := NewClient(srv.URL)
	data, err := client.FetchSprite(context.Background(), 132)
	require.NoError(t, err)
	assert.Equal(t, []byte("fallback-bytes"), data)
}

func TestUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	_, err := client.GetPokemon(context.Background(), "missingno")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestDefaultBaseURL(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
