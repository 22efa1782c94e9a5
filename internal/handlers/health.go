package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/safespace-vault/safespace/internal/render"
)

const healthPingTimeout = 2 * time.Second

func (e *Env) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := e.Database.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("health check could not reach database")
		render.JSONError(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}

	render.JSON(w, http.StatusOK, statusResponse{Success: true})
}
