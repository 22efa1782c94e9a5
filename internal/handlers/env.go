package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/safespace-vault/safespace/internal/config"
	"github.com/safespace-vault/safespace/internal/db"
	"github.com/safespace-vault/safespace/internal/gatekeeper"
	"github.com/safespace-vault/safespace/internal/loginlimit"
	"github.com/safespace-vault/safespace/internal/middlewares/cors"
	"github.com/safespace-vault/safespace/internal/middlewares/securityheaders"
	"github.com/safespace-vault/safespace/internal/render"
	"github.com/safespace-vault/safespace/internal/vault"
)

const (
	DefaultMaxUploadBytes int64 = 100 << 20
	maxJSONBodyBytes      int64 = 1 << 20
)

type Env struct {
	Database     db.DB
	Gatekeeper   *gatekeeper.Gatekeeper
	Vault        *vault.Vault
	LoginLimiter loginlimit.LoginLimiter

	MaxUploadBytes int64
	// UploadTimeout replaces the server read timeout for uploads. Zero keeps the server timeout.
	UploadTimeout  time.Duration
}

type statusResponse struct {
	Success bool `json:"success"`
}

func (e *Env) BuildRouter() http.Handler {
	log.Info().Msg("setting up listeners")

	mux := http.NewServeMux()

	mux.HandleFunc("POST /signup", e.HandleSignup)
	mux.HandleFunc("POST /login", e.HandleLogin)
	mux.HandleFunc("POST /change-password", e.HandleChangePassword)
	mux.HandleFunc("GET /profile", e.HandleProfile)

	mux.HandleFunc("POST /upload", e.HandleUpload)
	mux.HandleFunc("GET /files", e.HandleListFiles)
	mux.HandleFunc("DELETE /files/{fileId}", e.HandleDeleteFile)
	mux.HandleFunc("GET /files/{fileId}/share", e.HandleShareFile)
	mux.HandleFunc("POST /folders", e.HandleCreateFolder)
	mux.HandleFunc("GET /export", e.HandleExport)
	mux.HandleFunc("GET /stats", e.HandleStats)

	mux.HandleFunc("GET /health", e.HandleHealth)

	handler := cors.NewFromConfig(mux)

	config.Lock.RLock()
	disableHeaders := viper.GetBool(config.DisableSecurityHeaders)
	config.Lock.RUnlock()

	if !disableHeaders {
		handler = securityheaders.NewSecurityHeadersMiddleware(handler)
	} else {
		log.Warn().Msg("not enabling security headers")
	}

	return handler
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err := dec.Decode(v); err != nil {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("could not decode request body")
		render.JSONError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// validationMessage turns "pkg: invalid input: email is required" into "email is required"
func validationMessage(err error, sentinel error) string {
	msg := err.Error()
	if idx := strings.Index(msg, sentinel.Error()+": "); idx >= 0 {
		return msg[idx+len(sentinel.Error())+2:]
	}
	return "Missing required fields"
}

// writeError maps domain errors to responses. Anything unexpected is logged and reported as a plain server error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, gatekeeper.ErrValidation):
		render.JSONError(w, validationMessage(err, gatekeeper.ErrValidation), http.StatusBadRequest)
	case errors.Is(err, vault.ErrValidation):
		render.JSONError(w, validationMessage(err, vault.ErrValidation), http.StatusBadRequest)
	case errors.Is(err, gatekeeper.ErrDuplicateAccount):
		render.JSONError(w, "User already exists", http.StatusBadRequest)
	case errors.Is(err, gatekeeper.ErrInvalidCredentials):
		render.JSONError(w, "Current password is incorrect", http.StatusBadRequest)
	case errors.Is(err, vault.ErrQuotaExceeded):
		render.JSONError(w, "Storage quota exceeded", http.StatusBadRequest)
	case errors.Is(err, gatekeeper.ErrAccountNotFound):
		render.JSONError(w, "User not found", http.StatusNotFound)
	case errors.Is(err, vault.ErrFileNotFound):
		render.JSONError(w, "File not found", http.StatusNotFound)
	default:
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		render.JSONError(w, "Server error", http.StatusInternalServerError)
	}
}
