package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/safespace-vault/safespace/internal/durations"
	"github.com/safespace-vault/safespace/internal/gatekeeper"
	"github.com/safespace-vault/safespace/internal/loginlimit"
	"github.com/safespace-vault/safespace/internal/render"
	"github.com/safespace-vault/safespace/internal/trueip"
)

type signupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	SecurityKey string `json:"securityKey"`
}

func (e *Env) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	_, err := e.Gatekeeper.Register(r.Context(), gatekeeper.RegisterRequest{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
		SecurityKey: req.SecurityKey,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, statusResponse{Success: true})
}

type loginRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	SecurityKey string `json:"securityKey"`
}

type loginResponse struct {
	Success         bool   `json:"success"`
	UsedSecurityKey bool   `json:"usedSecurityKey,omitempty"`
	UserID          string `json:"userId,omitempty"`
	Message         string `json:"message,omitempty"`
}

func sourceIPKey(ip string) string {
	return fmt.Sprintf("ip|%s", ip)
}

func (e *Env) markLoginFailure(ipKey string) {
	remaining, err := e.LoginLimiter.MarkFailedAttempt(ipKey)
	if errors.Is(err, loginlimit.ErrLocked) {
		log.Warn().Str("source_ip_key", ipKey).Msg("source locked after too many failed logins")
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("source_ip_key", ipKey).Msg("error when marking login failure")
		return
	}
	log.Debug().Str("source_ip_key", ipKey).Int("remaining", remaining).Msg("marked login failure")
}

func (e *Env) HandleLogin(w http.ResponseWriter, r *http.Request) {
	sourceIP := trueip.Find(r)
	ipKey := sourceIPKey(sourceIP)

	if locked, remaining := e.LoginLimiter.IsLocked(ipKey); locked {
		log.Warn().Str("ip", sourceIP).Msg("login attempt from locked source")
		render.JSONError(w,
			fmt.Sprintf("Too many failed logins from this address. Try again in %s", durations.Wait(remaining)),
			http.StatusTooManyRequests)
		return
	}

	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		render.JSONError(w, "Missing email or password", http.StatusBadRequest)
		return
	}

	res, err := e.Gatekeeper.Authenticate(r.Context(), gatekeeper.LoginRequest{
		Email:       req.Email,
		Password:    req.Password,
		SecurityKey: req.SecurityKey,
		SourceIP:    sourceIP,
	})
	if errors.Is(err, gatekeeper.ErrAccountNotFound) {
		log.Info().Str("ip", sourceIP).Msg("login for unknown account")
		e.markLoginFailure(ipKey)
		writeError(w, r, err)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch res.Outcome {
	case gatekeeper.OutcomeAuthenticated:
		log.Info().Str("ip", sourceIP).Str("account_id", res.AccountID).Msg("successful login")
		render.JSON(w, http.StatusOK, loginResponse{Success: true, UserID: res.AccountID})
	case gatekeeper.OutcomeAuthenticatedAsDecoy:
		log.Info().Str("ip", sourceIP).Str("account_id", res.AccountID).Msg("login with security key")
		render.JSON(w, http.StatusOK, loginResponse{Success: false, UsedSecurityKey: true, UserID: res.AccountID})
	default:
		log.Info().Str("ip", sourceIP).Msg("invalid login")
		e.markLoginFailure(ipKey)
		render.JSON(w, http.StatusOK, loginResponse{Success: false, Message: "Invalid credentials"})
	}
}

type changePasswordRequest struct {
	UserID          string `json:"userId"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (e *Env) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.UserID == "" || req.CurrentPassword == "" || req.NewPassword == "" {
		render.JSONError(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	if err := e.Gatekeeper.ChangeCredential(r.Context(), req.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, statusResponse{Success: true})
}
