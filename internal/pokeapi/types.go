package pokeapi

// NamedResource is a name plus the URL of the full resource, the building
// block of every PokeAPI listing.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PokemonList is one page of the pokémon index.
type PokemonList struct {
	Count    int             `json:"count"`
	Next     string          `json:"next"`
	Previous string          `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// Pokemon is the per-species detail record.
type Pokemon struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Height         int     `json:"height"`
	Weight         int     `json:"weight"`
	BaseExperience int     `json:"base_experience"`
	Sprites        Sprites `json:"sprites"`
	Types          []struct {
		Slot int           `json:"slot"`
		Type NamedResource `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Effort   int           `json:"effort"`
		Stat     NamedResource `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		IsHidden bool          `json:"is_hidden"`
		Slot     int           `json:"slot"`
		Ability  NamedResource `json:"ability"`
	} `json:"abilities"`
	Moves []struct {
		Move NamedResource `json:"move"`
	} `json:"moves"`
	HeldItems []struct {
		Item NamedResource `json:"item"`
	} `json:"held_items"`
}

// Sprites holds the artwork URLs for a pokémon.
type Sprites struct {
	FrontDefault string `json:"front_default"`
	FrontShiny   string `json:"front_shiny"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

// Species carries the breeding, capture and flavor data for a species.
type Species struct {
	ID                   int           `json:"id"`
	Name                 string        `json:"name"`
	CaptureRate          int           `json:"capture_rate"`
	BaseHappiness        int           `json:"base_happiness"`
	IsLegendary          bool          `json:"is_legendary"`
	IsMythical           bool          `json:"is_mythical"`
	GrowthRate           NamedResource `json:"growth_rate"`
	EggGroups            []NamedResource `json:"egg_groups"`
	EvolutionChain       struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   NamedResource `json:"language"`
		Version    NamedResource `json:"version"`
	} `json:"flavor_text_entries"`
	Genera []struct {
		Genus    string        `json:"genus"`
		Language NamedResource `json:"language"`
	} `json:"genera"`
}

// EvolutionChain is the recursive evolution tree of a species line.
type EvolutionChain struct {
	ID    int           `json:"id"`
	Chain EvolutionLink `json:"chain"`
}

// EvolutionLink is one node in an evolution chain.
type EvolutionLink struct {
	Species   NamedResource   `json:"species"`
	EvolvesTo []EvolutionLink `json:"evolves_to"`
}

// TypeDetails holds a type's damage relations.
type TypeDetails struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	DamageRelations struct {
		DoubleDamageFrom []NamedResource `json:"double_damage_from"`
		DoubleDamageTo   []NamedResource `json:"double_damage_to"`
		HalfDamageFrom   []NamedResource `json:"half_damage_from"`
		HalfDamageTo     []NamedResource `json:"half_damage_to"`
		NoDamageFrom     []NamedResource `json:"no_damage_from"`
		NoDamageTo       []NamedResource `json:"no_damage_to"`
	} `json:"damage_relations"`
}

// Encounter is one location area where a pokémon can be found.
type Encounter struct {
	LocationArea   NamedResource `json:"location_area"`
	VersionDetails []struct {
		Version   NamedResource `json:"version"`
		MaxChance int           `json:"max_chance"`
	} `json:"version_details"`
}
