package handlers

import (
	"net/http"

	"github.com/safespace-vault/safespace/internal/account"
	"github.com/safespace-vault/safespace/internal/render"
)

type profileResponse struct {
	Success bool            `json:"success"`
	Profile account.Profile `json:"profile"`
}

func (e *Env) HandleProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		render.JSONError(w, "User ID required", http.StatusBadRequest)
		return
	}

	p, err := e.Gatekeeper.Profile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, profileResponse{Success: true, Profile: p})
}
