package model

// Preferences is the single per-user UI preference row: the last selected
// game filter and the detail sections shown on the browsing screen.
type Preferences struct {
	ID               string   `json:"id"`
	UserID           string   `json:"userId"`
	SelectedGame     string   `json:"selectedGame"`
	SelectedSections []string `json:"selectedSections"`
}

// DetailSection is one entry in the fixed detail-section catalog.
type DetailSection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DetailSections is the catalog of detail sections a user can toggle on the
// Pokémon browsing screen.
var DetailSections = []DetailSection{
	{ID: "types", Name: "Types"},
	{ID: "stats", Name: "Base Stats"},
	{ID: "abilities", Name: "Abilities"},
	{ID: "physicalStats", Name: "Physical Stats"},
	{ID: "typeEffectiveness", Name: "Type Effectiveness"},
	{ID: "description", Name: "Description"},
	{ID: "evolution", Name: "Evolution Chain"},
	{ID: "moves", Name: "Moves"},
	{ID: "eggGroups", Name: "Egg Groups & Breeding"},
	{ID: "locations", Name: "Catch Locations"},
	{ID: "heldItems", Name: "Held Items"},
	{ID: "captureInfo", Name: "Capture Info"},
}

// ValidSection reports whether id is in the detail-section catalog.
func ValidSection(id string) bool {
	for _, s := range DetailSections {
		if s.ID == id {
			return true
		}
	}
	return false
}
