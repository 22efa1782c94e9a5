// Package cors lets the browser frontend, which is served from a different origin, call the API.
package cors

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/safespace-vault/safespace/internal/config"
)

const maxAgeSeconds = 600

func options(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         maxAgeSeconds,
	}
}

// NewFromConfig wraps next with the origins from server.cors.allowed_origins. With none configured every origin is
// allowed.
func NewFromConfig(next http.Handler) http.Handler {
	config.Lock.RLock()
	origins := viper.GetStringSlice(config.KeyCORSAllowedOrigins)
	config.Lock.RUnlock()

	if len(origins) == 0 {
		log.Warn().Msg("server.cors.allowed_origins not set, allowing requests from any origin")
		origins = []string{"*"}
	}

	return cors.New(options(origins)).Handler(next)
}
