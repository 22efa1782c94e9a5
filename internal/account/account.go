package account

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/safespace-vault/safespace/internal/argon"
)

var (
	ErrNoCredentialSet        = errors.New("account: no credential set")
	ErrIncorrectCredential    = errors.New("account: wrong credential")
	ErrInvalidHash            = errors.New("account: invalid credential hash")
	ErrInvalidCredentialChars = errors.New("account: credential contains invalid characters")
)

var emailNormalizer = transform.Chain(norm.NFC, cases.Lower(language.Und))

type Account struct {
	ID                string
	Name              string
	Email             string
	Phone             string
	PasswordHash      string
	SecurityKeyHash   string
	FailedAttempts    int
	PasswordTimestamp int64
	CreatedAt         time.Time
}

// Profile is the subset of an account that is safe to hand back to the account owner.
type Profile struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Account) Profile() Profile {
	return Profile{
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
	}
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	normalized, _, err := transform.String(emailNormalizer, strings.TrimSpace(email))
	if err != nil {
		log.Warn().Err(err).Msg("could not normalize email, falling back to simple lowercasing")
		return strings.ToLower(strings.TrimSpace(email))
	}
	return normalized
}

func (a *Account) CheckPassword(candidate string) error {
	return checkCredential(candidate, a.PasswordHash)
}

func (a *Account) CheckSecurityKey(candidate string) error {
	return checkCredential(candidate, a.SecurityKeyHash)
}

func (a *Account) SetPassword(password string) error {
	hash, err := hashCredential(password)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	a.PasswordTimestamp = time.Now().Unix()
	return nil
}

func (a *Account) SetSecurityKey(key string) error {
	hash, err := hashCredential(key)
	if err != nil {
		return err
	}
	a.SecurityKeyHash = hash
	return nil
}

func checkCredential(candidate string, encodedHash string) error {
	if len(encodedHash) == 0 {
		return ErrNoCredentialSet
	}

	// imported bcrypt hashes were made from the raw input
	if !argon.IsBcrypt(encodedHash) {
		cleaned, err := cleanCredential(candidate)
		if err != nil {
			return ErrIncorrectCredential
		}
		candidate = cleaned
	}

	err := argon.Verify(candidate, encodedHash)
	if errors.Is(err, argon.ErrMismatch) {
		return ErrIncorrectCredential
	}
	if err != nil {
		return ErrInvalidHash
	}

	return nil
}

func hashCredential(raw string) (string, error) {
	cleaned, err := cleanCredential(raw)
	if err != nil {
		return "", ErrInvalidCredentialChars
	}

	hash, err := argon.Hash(cleaned)
	if err != nil {
		log.Error().Err(err).Msg("could not hash credential")
		return "", err
	}

	return hash, nil
}
