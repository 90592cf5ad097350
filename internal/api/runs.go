package api

import (
	"database/sql"
	"net/http"

	"github.com/matevzh/nuzlog/internal/model"
	"github.com/matevzh/nuzlog/internal/store"
)

// RunsHandler handles run CRUD endpoints.
type RunsHandler struct {
	DB *sql.DB
}

type createRunRequest struct {
	Name        string `json:"name"`
	Game        string `json:"game"`
	Description string `json:"description"`
	SetAsActive bool   `json:"setAsActive"`
}

type updateRunRequest struct {
	Name        *string `json:"name"`
	Game        *string `json:"game"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// Create handles POST /api/runs.
func (h *RunsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req createRunRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if !model.ValidGame(req.Game) {
		jsonError(w, http.StatusBadRequest, "unknown game")
		return
	}

	run, err := store.CreateRun(r.Context(), h.DB, claims.UserID, req.Name, req.Game, req.Description, req.SetAsActive)
	if err != nil {
		storeError(w, err, "failed to create run")
		return
	}

	jsonResponse(w, http.StatusCreated, run)
}

// List handles GET /api/runs.
func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	runs, err := store.ListRuns(r.Context(), h.DB, claims.UserID)
	if err != nil {
		storeError(w, err, "failed to list runs")
		return
	}
	if runs == nil {
		runs = []model.Run{}
	}
	jsonResponse(w, http.StatusOK, runs)
}

// GetActive handles GET /api/runs/active. Responds with null when the user
// has no active run.
func (h *RunsHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	run, err := store.GetActiveRun(r.Context(), h.DB, claims.UserID)
	if err != nil {
		storeError(w, err, "failed to get active run")
		return
	}
	jsonResponse(w, http.StatusOK, run)
}

// Get handles GET /api/runs/{id}.
func (h *RunsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	run, err := store.GetRun(r.Context(), h.DB, claims.UserID, r.PathValue("id"))
	if err != nil {
		storeError(w, err, "failed to get run")
		return
	}
	if run == nil {
		jsonError(w, http.StatusNotFound, "run not found")
		return
	}
	jsonResponse(w, http.StatusOK, run)
}

// Update handles PUT /api/runs/{id}.
func (h *RunsHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req updateRunRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name != nil && *req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.Game != nil && !model.ValidGame(*req.Game) {
		jsonError(w, http.StatusBadRequest, "unknown game")
		return
	}

	run, err := store.UpdateRun(r.Context(), h.DB, claims.UserID, r.PathValue("id"), store.RunPatch{
		Name:        req.Name,
		Game:        req.Game,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		storeError(w, err, "failed to update run")
		return
	}
	jsonResponse(w, http.StatusOK, run)
}

// Delete handles DELETE /api/runs/{id}. Deleting a run also deletes its
// pokédex entries and party.
func (h *RunsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	if err := store.DeleteRun(r.Context(), h.DB, claims.UserID, r.PathValue("id")); err != nil {
		storeError(w, err, "failed to delete run")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// ListGames handles GET /api/games.
func (h *RunsHandler) ListGames(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, model.Games)
}
