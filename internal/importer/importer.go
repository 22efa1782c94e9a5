// Package importer reads accounts exported from the previous hosted backend. Hashes there are bcrypt and are
// kept as they are; they get upgraded to argon2id on the next successful login.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/safespace-vault/safespace/internal/account"
	"github.com/safespace-vault/safespace/internal/db"
)

var bcryptRegex = regexp.MustCompile(`^\$2[ayb]\$.{56}$`)

// exportedUser is one row of the old users table
type exportedUser struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PasswordHash   string `json:"password_hash"`
	SecurityKey    string `json:"security_key"`
	FailedAttempts int    `json:"failed_attempts"`
	CreatedAt      string `json:"created_at"`
}

type Skipped struct {
	Email  string
	Reason string
}

type Results struct {
	Accounts []*account.Account
	Skipped  []Skipped
}

func ValidHash(h string) bool {
	return bcryptRegex.MatchString(h)
}

// parseCreatedAt accepts what the old backend wrote. Anything unreadable becomes the zero time, which the
// store replaces with the import time.
func parseCreatedAt(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02 15:04:05.999999-07"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	log.Warn().Str("created_at", raw).Msg("could not parse creation time, using import time")
	return time.Time{}
}

func convert(u exportedUser, now time.Time) (*account.Account, string) {
	email := strings.TrimSpace(u.Email)
	switch {
	case email == "":
		return nil, "missing email"
	case strings.TrimSpace(u.Name) == "":
		return nil, "missing name"
	case !ValidHash(u.PasswordHash):
		return nil, "password hash is not bcrypt"
	case !ValidHash(u.SecurityKey):
		return nil, "security key hash is not bcrypt"
	}

	id := u.ID
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	failed := u.FailedAttempts
	if failed < 0 {
		failed = 0
	}

	return &account.Account{
		ID:                id,
		Name:              strings.TrimSpace(u.Name),
		Email:             email,
		Phone:             strings.TrimSpace(u.Phone),
		PasswordHash:      u.PasswordHash,
		SecurityKeyHash:   u.SecurityKey,
		FailedAttempts:    failed,
		PasswordTimestamp: now.Unix(),
		CreatedAt:         parseCreatedAt(u.CreatedAt),
	}, ""
}

// Import parses a JSON array of exported users. Rows that can not be carried over are reported in Skipped
// instead of failing the whole import.
func Import(contents []byte) (*Results, error) {
	var rows []exportedUser
	if err := json.Unmarshal(contents, &rows); err != nil {
		log.Error().Err(err).Msg("could not parse export")
		return nil, fmt.Errorf("importer: Import: could not parse export: %w", err)
	}

	now := time.Now()
	res := &Results{
		Accounts: make([]*account.Account, 0, len(rows)),
	}

	seen := make(map[string]bool, len(rows))
	for i, row := range rows {
		a, reason := convert(row, now)
		if a == nil {
			log.Warn().Int("row", i).Str("email", row.Email).Str("reason", reason).Msg("skipping exported user")
			res.Skipped = append(res.Skipped, Skipped{Email: row.Email, Reason: reason})
			continue
		}

		key := account.NormalizeEmail(a.Email)
		if seen[key] {
			res.Skipped = append(res.Skipped, Skipped{Email: row.Email, Reason: "duplicate email in export"})
			continue
		}
		seen[key] = true

		res.Accounts = append(res.Accounts, a)
	}

	return res, nil
}

// Save writes accounts to the store. Accounts whose email is already taken are reported back and skipped.
func Save(ctx context.Context, store db.AccountStore, accounts []*account.Account) (int, []Skipped, error) {
	created := 0
	var skipped []Skipped

	for _, a := range accounts {
		_, err := store.CreateAccount(ctx, a)
		if errors.Is(err, db.ErrDuplicateEmail) {
			skipped = append(skipped, Skipped{Email: a.Email, Reason: "account already exists"})
			continue
		}
		if err != nil {
			return created, skipped, fmt.Errorf("importer: Save: could not create %s: %w", a.Email, err)
		}
		created++
	}

	log.Info().Int("created", created).Int("skipped", len(skipped)).Msg("import complete")

	return created, skipped, nil
}
