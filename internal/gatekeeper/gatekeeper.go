// Package gatekeeper decides who gets into an account. It owns the failed attempt counter and the alert that is
// sent once a streak of failures reaches the threshold.
package gatekeeper

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/safespace-vault/safespace/internal/account"
	"github.com/safespace-vault/safespace/internal/argon"
	"github.com/safespace-vault/safespace/internal/config"
	"github.com/safespace-vault/safespace/internal/db"
	"github.com/safespace-vault/safespace/internal/notify"
	"github.com/safespace-vault/safespace/internal/pwmigrate"
)

const (
	// DefaultAlertThreshold is how many failures in a row trigger the alert
	DefaultAlertThreshold = 3
	// DefaultStoreTimeout bounds each call to the account store
	DefaultStoreTimeout = 5 * time.Second
	// DefaultNotifyTimeout bounds sending a single alert
	DefaultNotifyTimeout = 30 * time.Second
)

var (
	ErrValidation         = errors.New("gatekeeper: invalid input")
	ErrAccountNotFound    = errors.New("gatekeeper: account not found")
	ErrDuplicateAccount   = errors.New("gatekeeper: an account with this email already exists")
	ErrInvalidCredentials = errors.New("gatekeeper: invalid credentials")
)

// Outcome is what a login attempt resolved to
type Outcome int

const (
	// OutcomeInvalidCredentials means neither the password nor the security key matched
	OutcomeInvalidCredentials Outcome = iota
	// OutcomeAuthenticated means the password matched
	OutcomeAuthenticated
	// OutcomeAuthenticatedAsDecoy means the security key matched and the decoy vault should be shown
	OutcomeAuthenticatedAsDecoy
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAuthenticated:
		return "authenticated"
	case OutcomeAuthenticatedAsDecoy:
		return "authenticated_as_decoy"
	case OutcomeInvalidCredentials:
		return "invalid_credentials"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type RegisterRequest struct {
	Name        string
	Email       string
	Phone       string
	Password    string
	SecurityKey string
}

type LoginRequest struct {
	Email       string
	Password    string
	SecurityKey string

	// SourceIP only ends up in the alert email
	SourceIP string
}

// Result is the outcome of Authenticate. AccountID is empty for invalid credentials.
type Result struct {
	Outcome   Outcome
	AccountID string
}

type Gatekeeper struct {
	store    db.AccountStore
	notifier notify.Notifier
	migrator *pwmigrate.Migrator

	threshold     int
	storeTimeout  time.Duration
	notifyTimeout time.Duration

	now        func() time.Time
	background sync.WaitGroup

	dummyOnce sync.Once
	dummyHash string
}

// Option configures a Gatekeeper built by New
type Option func(*Gatekeeper)

// WithAlertThreshold sets how many consecutive failures trigger the alert
func WithAlertThreshold(n int) Option {
	return func(g *Gatekeeper) {
		g.threshold = n
	}
}

// WithStoreTimeout bounds each account store call
func WithStoreTimeout(d time.Duration) Option {
	return func(g *Gatekeeper) {
		g.storeTimeout = d
	}
}

// WithNotifyTimeout bounds sending one alert
func WithNotifyTimeout(d time.Duration) Option {
	return func(g *Gatekeeper) {
		g.notifyTimeout = d
	}
}

// WithMigrator replaces the hash migrator, mostly so tests can share one
func WithMigrator(m *pwmigrate.Migrator) Option {
	return func(g *Gatekeeper) {
		g.migrator = m
	}
}

func withClock(now func() time.Time) Option {
	return func(g *Gatekeeper) {
		g.now = now
	}
}

// New builds a Gatekeeper with the default threshold and timeouts, then applies opts
func New(store db.AccountStore, notifier notify.Notifier, opts ...Option) *Gatekeeper {
	g := &Gatekeeper{
		store:         store,
		notifier:      notifier,
		threshold:     DefaultAlertThreshold,
		storeTimeout:  DefaultStoreTimeout,
		notifyTimeout: DefaultNotifyTimeout,
		now:           time.Now,
	}

	for _, o := range opts {
		o(g)
	}

	if g.migrator == nil {
		g.migrator = pwmigrate.New(store)
	}

	return g
}

// NewFromConfig builds a Gatekeeper with the threshold and timeouts from config. Unset values keep their defaults.
func NewFromConfig(store db.AccountStore, notifier notify.Notifier) *Gatekeeper {
	config.Lock.RLock()
	threshold := viper.GetInt(config.KeyAlertThreshold)
	storeTimeout := viper.GetDuration(config.KeyStoreTimeout)
	notifyTimeout := viper.GetDuration(config.KeyNotifyTimeout)
	config.Lock.RUnlock()

	var opts []Option
	if threshold > 0 {
		opts = append(opts, WithAlertThreshold(threshold))
	}
	if storeTimeout > 0 {
		opts = append(opts, WithStoreTimeout(storeTimeout))
	}
	if notifyTimeout > 0 {
		opts = append(opts, WithNotifyTimeout(notifyTimeout))
	}

	return New(store, notifier, opts...)
}

// Wait blocks until alerts and hash migrations that are still running have finished.
func (g *Gatekeeper) Wait() {
	g.background.Wait()
}

func (g *Gatekeeper) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.storeTimeout)
}

func (g *Gatekeeper) lookupByEmail(ctx context.Context, email string) (*account.Account, error) {
	ctx, cancel := g.storeCtx(ctx)
	defer cancel()
	return g.store.GetAccountByEmail(ctx, email)
}

func (g *Gatekeeper) lookupByID(ctx context.Context, id string) (*account.Account, error) {
	ctx, cancel := g.storeCtx(ctx)
	defer cancel()
	return g.store.GetAccountByID(ctx, id)
}

func validationError(field string) error {
	return fmt.Errorf("%w: %s is required", ErrValidation, field)
}

func (g *Gatekeeper) Register(ctx context.Context, req RegisterRequest) (string, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	switch {
	case name == "":
		return "", validationError("name")
	case email == "":
		return "", validationError("email")
	case req.Password == "":
		return "", validationError("password")
	case req.SecurityKey == "":
		return "", validationError("security key")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%w: email address is not valid", ErrValidation)
	}

	existing, err := g.lookupByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("gatekeeper: Register: could not check for existing account: %w", err)
	}
	if existing != nil {
		return "", ErrDuplicateAccount
	}

	a := &account.Account{
		Name:  name,
		Email: email,
		Phone: strings.TrimSpace(req.Phone),
	}

	if err := a.SetPassword(req.Password); err != nil {
		if errors.Is(err, account.ErrInvalidCredentialChars) {
			return "", fmt.Errorf("%w: password contains invalid characters", ErrValidation)
		}
		return "", fmt.Errorf("gatekeeper: Register: could not hash password: %w", err)
	}

	if err := a.SetSecurityKey(req.SecurityKey); err != nil {
		if errors.Is(err, account.ErrInvalidCredentialChars) {
			return "", fmt.Errorf("%w: security key contains invalid characters", ErrValidation)
		}
		return "", fmt.Errorf("gatekeeper: Register: could not hash security key: %w", err)
	}

	storeCtx, cancel := g.storeCtx(ctx)
	defer cancel()

	id, err := g.store.CreateAccount(storeCtx, a)
	if errors.Is(err, db.ErrDuplicateEmail) {
		return "", ErrDuplicateAccount
	}
	if err != nil {
		return "", fmt.Errorf("gatekeeper: Register: could not create account: %w", err)
	}

	log.Info().Str("account_id", id).Msg("account registered")

	return id, nil
}

// burnDummyVerify makes a lookup for an unknown email cost about as much as a real password check
func (g *Gatekeeper) burnDummyVerify(password string) {
	g.dummyOnce.Do(func() {
		hash, err := argon.Hash("safespace-dummy-credential")
		if err != nil {
			log.Error().Err(err).Msg("could not create dummy hash")
			return
		}
		g.dummyHash = hash
	})

	if g.dummyHash != "" {
		_ = argon.Verify(password, g.dummyHash)
	}
}

func (g *Gatekeeper) Authenticate(ctx context.Context, req LoginRequest) (Result, error) {
	invalid := Result{Outcome: OutcomeInvalidCredentials}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return invalid, validationError("email")
	}
	if req.Password == "" {
		return invalid, validationError("password")
	}

	a, err := g.lookupByEmail(ctx, email)
	if err != nil {
		return invalid, fmt.Errorf("gatekeeper: Authenticate: could not look up account: %w", err)
	}
	if a == nil {
		g.burnDummyVerify(req.Password)
		return invalid, ErrAccountNotFound
	}

	err = a.CheckPassword(req.Password)
	switch {
	case err == nil:
		if err := g.resetFailures(ctx, a.ID); err != nil {
			return invalid, err
		}
		g.runInBackground(func(ctx context.Context) {
			g.migrator.MigratePassword(ctx, a, req.Password)
		})

		log.Debug().Str("account_id", a.ID).Msg("login successful")
		return Result{Outcome: OutcomeAuthenticated, AccountID: a.ID}, nil

	case errors.Is(err, account.ErrInvalidHash):
		log.Error().Str("account_id", a.ID).Msg("stored password hash is not readable")
		return invalid, fmt.Errorf("gatekeeper: Authenticate: %w", err)
	}

	if req.SecurityKey != "" && a.CheckSecurityKey(req.SecurityKey) == nil {
		g.runInBackground(func(ctx context.Context) {
			g.migrator.MigrateSecurityKey(ctx, a, req.SecurityKey)
		})

		log.Info().Str("account_id", a.ID).Msg("login with security key")
		return Result{Outcome: OutcomeAuthenticatedAsDecoy, AccountID: a.ID}, nil
	}

	storeCtx, cancel := g.storeCtx(ctx)
	defer cancel()

	attempts, err := g.store.IncrementFailedAttempts(storeCtx, a.ID)
	if err != nil {
		return invalid, fmt.Errorf("gatekeeper: Authenticate: could not record failed attempt: %w", err)
	}

	log.Warn().Str("account_id", a.ID).Int("failed_attempts", attempts).Msg("failed login")

	if attempts == g.threshold {
		g.dispatchAlert(notify.Alert{
			To:       a.Email,
			Name:     a.Name,
			Attempts: attempts,
			Time:     g.now(),
			SourceIP: req.SourceIP,
		}, a.ID)
	}

	return invalid, nil
}

func (g *Gatekeeper) resetFailures(ctx context.Context, id string) error {
	ctx, cancel := g.storeCtx(ctx)
	defer cancel()

	if err := g.store.ResetFailedAttempts(ctx, id); err != nil {
		return fmt.Errorf("gatekeeper: could not reset failed attempts: %w", err)
	}
	return nil
}

// runInBackground detaches f from the request; it gets its own store timeout
func (g *Gatekeeper) runInBackground(f func(ctx context.Context)) {
	g.background.Add(1)
	go func() {
		defer g.background.Done()

		ctx, cancel := context.WithTimeout(context.Background(), g.storeTimeout)
		defer cancel()

		f(ctx)
	}()
}

func (g *Gatekeeper) dispatchAlert(alert notify.Alert, accountID string) {
	g.background.Add(1)
	go func() {
		defer g.background.Done()

		ctx, cancel := context.WithTimeout(context.Background(), g.notifyTimeout)
		defer cancel()

		if err := notify.SendAlert(ctx, g.notifier, alert); err != nil {
			log.Error().Err(err).Str("account_id", accountID).Msg("could not send alert")
			return
		}

		log.Info().Str("account_id", accountID).Int("failed_attempts", alert.Attempts).Msg("alert sent")
	}()
}

func (g *Gatekeeper) ChangeCredential(ctx context.Context, accountID string, currentPassword string, newPassword string) error {
	switch {
	case accountID == "":
		return validationError("user id")
	case currentPassword == "":
		return validationError("current password")
	case newPassword == "":
		return validationError("new password")
	}

	a, err := g.lookupByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("gatekeeper: ChangeCredential: could not look up account: %w", err)
	}
	if a == nil {
		return ErrAccountNotFound
	}

	err = a.CheckPassword(currentPassword)
	if errors.Is(err, account.ErrIncorrectCredential) || errors.Is(err, account.ErrNoCredentialSet) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("gatekeeper: ChangeCredential: %w", err)
	}

	if err := a.SetPassword(newPassword); err != nil {
		if errors.Is(err, account.ErrInvalidCredentialChars) {
			return fmt.Errorf("%w: new password contains invalid characters", ErrValidation)
		}
		return fmt.Errorf("gatekeeper: ChangeCredential: could not hash password: %w", err)
	}

	storeCtx, cancel := g.storeCtx(ctx)
	defer cancel()

	if err := g.store.UpdatePassword(storeCtx, a); err != nil {
		if errors.Is(err, db.ErrNoRowsAffected) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("gatekeeper: ChangeCredential: could not store password: %w", err)
	}

	log.Info().Str("account_id", a.ID).Msg("password changed")

	return nil
}

func (g *Gatekeeper) Profile(ctx context.Context, accountID string) (account.Profile, error) {
	if accountID == "" {
		return account.Profile{}, validationError("user id")
	}

	a, err := g.lookupByID(ctx, accountID)
	if err != nil {
		return account.Profile{}, fmt.Errorf("gatekeeper: Profile: could not look up account: %w", err)
	}
	if a == nil {
		return account.Profile{}, ErrAccountNotFound
	}

	return a.Profile(), nil
}
