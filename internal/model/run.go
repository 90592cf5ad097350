package model

// Run represents one tracked playthrough of a specific game. A user can have
// any number of runs but at most one with IsActive set.
type Run struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Game        string `json:"game"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   int64  `json:"createdAt"` // epoch milliseconds
	UpdatedAt   int64  `json:"updatedAt"` // epoch milliseconds
}

// Game is one entry in the fixed game catalog.
type Game struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Games is the catalog of supported game identifiers, in release order.
var Games = []Game{
	{ID: "red-blue", Name: "Red/Blue"},
	{ID: "yellow", Name: "Yellow"},
	{ID: "gold-silver", Name: "Gold/Silver"},
	{ID: "crystal", Name: "Crystal"},
	{ID: "ruby-sapphire", Name: "Ruby/Sapphire"},
	{ID: "emerald", Name: "Emerald"},
	{ID: "firered-leafgreen", Name: "FireRed/LeafGreen"},
	{ID: "diamond-pearl", Name: "Diamond/Pearl"},
	{ID: "platinum", Name: "Platinum"},
	{ID: "heartgold-soulsilver", Name: "HeartGold/SoulSilver"},
	{ID: "black-white", Name: "Black/White"},
	{ID: "black-2-white-2", Name: "Black 2/White 2"},
	{ID: "x-y", Name: "X/Y"},
	{ID: "omega-ruby-alpha-sapphire", Name: "Omega Ruby/Alpha Sapphire"},
	{ID: "sun-moon", Name: "Sun/Moon"},
	{ID: "ultra-sun-ultra-moon", Name: "Ultra Sun/Ultra Moon"},
	{ID: "lets-go-pikachu-lets-go-eevee", Name: "Let's Go Pikachu/Eevee"},
	{ID: "sword-shield", Name: "Sword/Shield"},
	{ID: "brilliant-diamond-shining-pearl", Name: "Brilliant Diamond/Shining Pearl"},
	{ID: "legends-arceus", Name: "Legends: Arceus"},
	{ID: "scarlet-violet", Name: "Scarlet/Violet"},
}

// ValidGame reports whether id is in the game catalog.
func ValidGame(id string) bool {
	for _, g := range Games {
		if g.ID == id {
			return true
		}
	}
	return false
}
