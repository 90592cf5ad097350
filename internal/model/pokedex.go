package model

// PokedexEntry records the encounter/capture status of one species within a
// run. At most one entry exists per (run, species) pair, maintained by upsert
// semantics in the store rather than a hard uniqueness constraint.
type PokedexEntry struct {
	ID          string `json:"id"`
	RunID       string `json:"runId"`
	UserID      string `json:"userId"` // denormalized from the run for direct ownership checks
	PokemonID   int    `json:"pokemonId"` // national dex number, caller-supplied
	PokemonName string `json:"pokemonName"`
	Status      string `json:"status"`
	CaughtAt    *int64 `json:"caughtAt,omitempty"` // epoch milliseconds, set once on first caught/owned
	Location    string `json:"location,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Pokédex statuses. Seen means encountered, caught means in boxes, owned
// means currently on hand.
const (
	StatusSeen   = "seen"
	StatusCaught = "caught"
	StatusOwned  = "owned"
)

// ValidStatus reports whether s is a known pokédex status.
func ValidStatus(s string) bool {
	return s == StatusSeen || s == StatusCaught || s == StatusOwned
}

// PokedexStats holds per-run entry counts broken down by status.
type PokedexStats struct {
	Total  int `json:"total"`
	Seen   int `json:"seen"`
	Caught int `json:"caught"`
	Owned  int `json:"owned"`
}
