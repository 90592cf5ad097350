package model

// MaxPartySize is the maximum number of Pokémon in a run's party.
const MaxPartySize = 6

// MaxMoves is the maximum number of moves a party Pokémon can know.
const MaxMoves = 4

// StatBlock is a six-field stat spread, used for base stats, IVs and EVs.
type StatBlock struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"specialAttack"`
	SpecialDefense int `json:"specialDefense"`
	Speed          int `json:"speed"`
}

// PartyPokemon is one of up to six Pokémon slotted in a run's party.
// Position is the zero-based party slot, unique within a run.
type PartyPokemon struct {
	ID          string     `json:"id"`
	RunID       string     `json:"runId"`
	UserID      string     `json:"userId"` // denormalized from the run
	PokemonID   int        `json:"pokemonId"`
	PokemonName string     `json:"pokemonName"`
	Nickname    string     `json:"nickname,omitempty"`
	Level       int        `json:"level"`
	Position    int        `json:"position"`
	Gender      string     `json:"gender,omitempty"`
	IsShiny     bool       `json:"isShiny,omitempty"`
	Nature      string     `json:"nature,omitempty"`
	Ability     string     `json:"ability,omitempty"`
	HeldItem    string     `json:"heldItem,omitempty"`
	Moves       []string   `json:"moves,omitempty"`
	Stats       *StatBlock `json:"stats,omitempty"`
	IVs         *StatBlock `json:"ivs,omitempty"`
	EVs         *StatBlock `json:"evs,omitempty"`
	IsFainted   bool       `json:"isFainted"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   int64      `json:"createdAt"` // epoch milliseconds
	UpdatedAt   int64      `json:"updatedAt"` // epoch milliseconds
}

// Genders.
const (
	GenderMale       = "male"
	GenderFemale     = "female"
	GenderGenderless = "genderless"
)

// ValidGender reports whether g is a known gender. The empty string is
// allowed (gender unset).
func ValidGender(g string) bool {
	return g == "" || g == GenderMale || g == GenderFemale || g == GenderGenderless
}

// ValidPosition reports whether p is a valid party slot index.
func ValidPosition(p int) bool {
	return p >= 0 && p < MaxPartySize
}
