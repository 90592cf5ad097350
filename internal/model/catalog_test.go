package model

import "testing"

func TestValidGame(t *testing.T) {
	if !ValidGame("emerald") || !ValidGame("scarlet-violet") {
		t.Error("expected catalog games to be valid")
	}
	if ValidGame("pokemon-snap") || ValidGame("") {
		t.Error("expected unknown games to be invalid")
	}
}

func TestGameCatalog(t *testing.T) {
	if len(Games) != 21 {
		t.Errorf("expected 21 games, got %d", len(Games))
	}
	seen := make(map[string]bool)
	for _, g := range Games {
		if g.ID == "" || g.Name == "" {
			t.Errorf("incomplete game entry: %+v", g)
		}
		if seen[g.ID] {
			t.Errorf("duplicate game id %q", g.ID)
		}
		seen[g.ID] = true
	}
}

func TestValidSection(t *testing.T) {
	if !ValidSection("types") || !ValidSection("typeEffectiveness") {
		t.Error("expected catalog sections to be valid")
	}
	if ValidSection("shinyOdds") || ValidSection("") {
		t.Error("expected unknown sections to be invalid")
	}
}

func TestSectionCatalog(t *testing.T) {
	if len(DetailSections) != 12 {
		t.Errorf("expected 12 sections, got %d", len(DetailSections))
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusSeen, StatusCaught, StatusOwned} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if ValidStatus("fainted") || ValidStatus("") {
		t.Error("expected unknown statuses to be invalid")
	}
}

func TestValidGender(t *testing.T) {
	for _, g := range []string{GenderMale, GenderFemale, GenderGenderless, ""} {
		if !ValidGender(g) {
			t.Errorf("expected %q to be valid", g)
		}
	}
	if ValidGender("unknown") {
		t.Error("expected an unknown gender to be invalid")
	}
}

func TestValidPosition(t *testing.T) {
	for p := 0; p < MaxPartySize; p++ {
		if !ValidPosition(p) {
			t.Errorf("expected position %d to be valid", p)
		}
	}
	if ValidPosition(-1) || ValidPosition(MaxPartySize) {
		t.Error("expected out of range positions to be invalid")
	}
}
