// Package pwmigrate re-hashes credentials that were stored with bcrypt or with outdated argon2 parameters. It
// only runs right after a successful check, the one moment the plaintext is available.
package pwmigrate

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/safespace-vault/safespace/internal/account"
	"github.com/safespace-vault/safespace/internal/argon"
	"github.com/safespace-vault/safespace/internal/db"
)

type Migrator struct {
	store db.AccountStore
	locks *locker
}

func New(store db.AccountStore) *Migrator {
	return &Migrator{
		store: store,
		locks: newLocker(),
	}
}

// MigratePassword replaces the password hash if it needs it. a must already have been checked against password.
// The new hash is only stored while the old one is still in place, so a password changed in the meantime wins.
func (m *Migrator) MigratePassword(ctx context.Context, a *account.Account, password string) {
	if !argon.NeedsRehash(a.PasswordHash) {
		return
	}

	key := a.ID + ":password"
	if !m.locks.tryLock(key) {
		log.Trace().Str("account_id", a.ID).Msg("password migration already running, ignoring")
		return
	}
	defer m.locks.unlock(key)

	log.Warn().Str("account_id", a.ID).Bool("bcrypt", argon.IsBcrypt(a.PasswordHash)).Msg("password needs migration")

	oldHash := a.PasswordHash
	updated := *a
	if err := updated.SetPassword(password); err != nil {
		log.Error().Err(err).Str("account_id", a.ID).Msg("unable to migrate password on login")
		return
	}

	err := m.store.ReplacePasswordHash(ctx, a.ID, oldHash, updated.PasswordHash)
	if errors.Is(err, db.ErrNoRowsAffected) {
		log.Info().Str("account_id", a.ID).Msg("password changed since login, skipping migration")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("account_id", a.ID).Msg("could not persist updated password")
		return
	}

	a.PasswordHash = updated.PasswordHash
	log.Warn().Str("account_id", a.ID).Msg("migrated password to new params")
}

// MigrateSecurityKey is MigratePassword for the security key
func (m *Migrator) MigrateSecurityKey(ctx context.Context, a *account.Account, securityKey string) {
	if !argon.NeedsRehash(a.SecurityKeyHash) {
		return
	}

	key := a.ID + ":security_key"
	if !m.locks.tryLock(key) {
		log.Trace().Str("account_id", a.ID).Msg("security key migration already running, ignoring")
		return
	}
	defer m.locks.unlock(key)

	log.Warn().Str("account_id", a.ID).Bool("bcrypt", argon.IsBcrypt(a.SecurityKeyHash)).Msg("security key needs migration")

	oldHash := a.SecurityKeyHash
	updated := *a
	if err := updated.SetSecurityKey(securityKey); err != nil {
		log.Error().Err(err).Str("account_id", a.ID).Msg("unable to migrate security key on login")
		return
	}

	err := m.store.ReplaceSecurityKeyHash(ctx, a.ID, oldHash, updated.SecurityKeyHash)
	if errors.Is(err, db.ErrNoRowsAffected) {
		log.Info().Str("account_id", a.ID).Msg("security key changed since login, skipping migration")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("account_id", a.ID).Msg("could not persist updated security key")
		return
	}

	a.SecurityKeyHash = updated.SecurityKeyHash
	log.Warn().Str("account_id", a.ID).Msg("migrated security key to new params")
}
