package api

import (
	"database/sql"
	"net/http"

	"github.com/matevzh/nuzlog/internal/model"
	"github.com/matevzh/nuzlog/internal/store"
)

// PreferencesHandler handles the per-user UI preference endpoints.
type PreferencesHandler struct {
	DB *sql.DB
}

type savePreferencesRequest struct {
	SelectedGame     string   `json:"selectedGame"`
	SelectedSections []string `json:"selectedSections"`
}

// Get handles GET /api/preferences. Responds with null when the user has not
// saved preferences yet.
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	prefs, err := store.GetPreferences(r.Context(), h.DB, claims.UserID)
	if err != nil {
		storeError(w, err, "failed to get preferences")
		return
	}
	jsonResponse(w, http.StatusOK, prefs)
}

// Save handles PUT /api/preferences.
func (h *PreferencesHandler) Save(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req savePreferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	for _, s := range req.SelectedSections {
		if !model.ValidSection(s) {
			jsonError(w, http.StatusBadRequest, "unknown detail section: "+s)
			return
		}
	}

	prefs, err := store.SavePreferences(r.Context(), h.DB, claims.UserID, req.SelectedGame, req.SelectedSections)
	if err != nil {
		storeError(w, err, "failed to save preferences")
		return
	}
	jsonResponse(w, http.StatusOK, prefs)
}

// ListSections handles GET /api/sections.
func (h *PreferencesHandler) ListSections(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, model.DetailSections)
}
