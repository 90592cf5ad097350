package model

import "testing"

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		username string
		valid    bool
	}{
		{"ash", true},
		{"ab", false},
		{"", false},
		{"a-perfectly-reasonable-name", true},
		{string(make([]byte, 65)), false},
	}
	for _, c := range cases {
		err := ValidateUsername(c.username)
		if c.valid && err != nil {
			t.Errorf("ValidateUsername(%q): unexpected error %v", c.username, err)
		}
		if !c.valid && err == nil {
			t.Errorf("ValidateUsername(%q): expected an error", c.username)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("password123"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePassword("short"); err == nil {
		t.Error("expected an error for a short password")
	}
}
