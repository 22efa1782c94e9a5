package pwmigrate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/safespace-vault/safespace/internal/account"
	"github.com/safespace-vault/safespace/internal/argon"
	"github.com/safespace-vault/safespace/internal/db"
	"github.com/safespace-vault/safespace/internal/mocks"
)

func cheapHashes(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set(argon.MemoryKey, 1024)
	viper.Set(argon.IterationKey, 1)
	viper.Set(argon.ParallelismKey, 1)
}

func bcryptHash(t *testing.T, secret string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func argonHash(h string) bool {
	return strings.HasPrefix(h, "$argon2id$")
}

func TestMigrator_MigratePassword(t *testing.T) {
	t.Run("bcrypt gets rehashed", func(t *testing.T) {
		cheapHashes(t)
		m := mocks.NewMockDB(t)
		old := bcryptHash(t, "password")
		a := &account.Account{ID: "abc", PasswordHash: old, PasswordTimestamp: 1234}

		m.On("ReplacePasswordHash", mock.Anything, "abc", old, mock.MatchedBy(argonHash)).Return(nil)

		New(m).MigratePassword(context.TODO(), a, "password")
		assert.True(t, argonHash(a.PasswordHash))
		assert.NoError(t, a.CheckPassword("password"))
		assert.Equal(t, int64(1234), a.PasswordTimestamp)
	})

	t.Run("stale argon params get rehashed", func(t *testing.T) {
		cheapHashes(t)
		a := &account.Account{ID: "abc"}
		require.NoError(t, a.SetPassword("password"))
		old := a.PasswordHash

		viper.Set(argon.IterationKey, 2)

		m := mocks.NewMockDB(t)
		m.On("ReplacePasswordHash", mock.Anything, "abc", old, mock.MatchedBy(func(h string) bool {
			return strings.Contains(h, "t=2")
		})).Return(nil)

		New(m).MigratePassword(context.TODO(), a, "password")
		assert.NotEqual(t, old, a.PasswordHash)
		assert.Contains(t, a.PasswordHash, "t=2")
	})

	t.Run("current hashes are left alone", func(t *testing.T) {
		cheapHashes(t)
		a := &account.Account{ID: "abc"}
		require.NoError(t, a.SetPassword("password"))

		m := mocks.NewMockDB(t)
		New(m).MigratePassword(context.TODO(), a, "password")
		m.AssertNotCalled(t, "ReplacePasswordHash", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("disabled by config", func(t *testing.T) {
		cheapHashes(t)
		viper.Set(argon.DisableRehashKey, true)
		a := &account.Account{ID: "abc", PasswordHash: bcryptHash(t, "password")}

		m := mocks.NewMockDB(t)
		New(m).MigratePassword(context.TODO(), a, "password")
		m.AssertNotCalled(t, "ReplacePasswordHash", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("password changed since the check", func(t *testing.T) {
		cheapHashes(t)
		old := bcryptHash(t, "password")
		a := &account.Account{ID: "abc", PasswordHash: old}

		m := mocks.NewMockDB(t)
		m.On("ReplacePasswordHash", mock.Anything, "abc", old, mock.MatchedBy(argonHash)).Return(db.ErrNoRowsAffected).Once()

		mig := New(m)
		mig.MigratePassword(context.TODO(), a, "password")

		assert.Equal(t, old, a.PasswordHash)
		assert.True(t, mig.locks.tryLock("abc:password"))
	})

	t.Run("store errors are swallowed", func(t *testing.T) {
		cheapHashes(t)
		a := &account.Account{ID: "abc", PasswordHash: bcryptHash(t, "password")}

		m := mocks.NewMockDB(t)
		m.On("ReplacePasswordHash", mock.Anything, "abc", mock.Anything, mock.Anything).Return(errors.New("db down"))

		mig := New(m)
		mig.MigratePassword(context.TODO(), a, "password")

		// the lock is released even when the update fails
		assert.True(t, mig.locks.tryLock("abc:password"))
	})

	t.Run("running migration is not repeated", func(t *testing.T) {
		cheapHashes(t)
		a := &account.Account{ID: "abc", PasswordHash: bcryptHash(t, "password")}

		m := mocks.NewMockDB(t)
		mig := New(m)
		require.True(t, mig.locks.tryLock("abc:password"))

		mig.MigratePassword(context.TODO(), a, "password")
		m.AssertNotCalled(t, "ReplacePasswordHash", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMigrator_MigrateSecurityKey(t *testing.T) {
	t.Run("bcrypt gets rehashed", func(t *testing.T) {
		cheapHashes(t)
		old := bcryptHash(t, "decoy")
		a := &account.Account{ID: "abc", SecurityKeyHash: old}

		m := mocks.NewMockDB(t)
		m.EXPECT().ReplaceSecurityKeyHash(mock.Anything, "abc", old, mock.MatchedBy(argonHash)).Return(nil)

		New(m).MigrateSecurityKey(context.TODO(), a, "decoy")
		assert.NoError(t, a.CheckSecurityKey("decoy"))
		assert.True(t, argonHash(a.SecurityKeyHash))
	})

	t.Run("security key changed since the check", func(t *testing.T) {
		cheapHashes(t)
		old := bcryptHash(t, "decoy")
		a := &account.Account{ID: "abc", SecurityKeyHash: old}

		m := mocks.NewMockDB(t)
		m.EXPECT().ReplaceSecurityKeyHash(mock.Anything, "abc", old, mock.Anything).Return(db.ErrNoRowsAffected)

		mig := New(m)
		mig.MigrateSecurityKey(context.TODO(), a, "decoy")
		assert.Equal(t, old, a.SecurityKeyHash)
		assert.True(t, mig.locks.tryLock("abc:security_key"))
	})
}
