package account

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	passwordBcrypt []byte
)

func init() {
	passwordBcrypt, _ = bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
}

func TestAccount_CheckPassword(t *testing.T) {
	t.Run("bcrypt", func(t *testing.T) {
		a := Account{}

		assert.Equal(t, ErrNoCredentialSet, a.CheckPassword("password"))

		a.PasswordHash = string(passwordBcrypt)
		assert.Equal(t, ErrIncorrectCredential, a.CheckPassword("p@ssw0rd"))
		assert.NoError(t, a.CheckPassword("password"))

		a.PasswordHash = "$2" + string([]byte{0x01, 0x02})
		assert.Equal(t, ErrInvalidHash, a.CheckPassword("password"))
	})

	t.Run("argon", func(t *testing.T) {
		a := Account{}
		require.NoError(t, a.SetPassword("password"))

		assert.ErrorIs(t, a.CheckPassword("wrongpw"), ErrIncorrectCredential)
		assert.NoError(t, a.CheckPassword("password"))

		a.PasswordHash = "nope"
		assert.ErrorIs(t, a.CheckPassword("password"), ErrInvalidHash)
	})
}

func TestAccount_SecurityKey(t *testing.T) {
	a := Account{}
	assert.ErrorIs(t, a.CheckSecurityKey("1234"), ErrNoCredentialSet)

	require.NoError(t, a.SetSecurityKey("1234"))
	require.NoError(t, a.SetPassword("1234"))

	assert.NotEqual(t, a.PasswordHash, a.SecurityKeyHash)
	assert.NoError(t, a.CheckSecurityKey("1234"))
	assert.ErrorIs(t, a.CheckSecurityKey("4321"), ErrIncorrectCredential)
}

func TestAccount_SetPassword(t *testing.T) {
	t.Run("updates timestamp", func(t *testing.T) {
		a := Account{}
		before := time.Now().Unix()
		require.NoError(t, a.SetPassword("a new password"))

		assert.GreaterOrEqual(t, a.PasswordTimestamp, before)
		assert.NoError(t, a.CheckPassword("a new password"))
	})

	t.Run("rejects control characters", func(t *testing.T) {
		a := Account{}
		err := a.SetPassword("bell\u0007")
		assert.ErrorIs(t, err, ErrInvalidCredentialChars)
		assert.Empty(t, a.PasswordHash)
	})

	t.Run("normalizes unicode", func(t *testing.T) {
		a := Account{}
		require.NoError(t, a.SetPassword("héllo"))
		assert.NoError(t, a.CheckPassword("héllo"))
	})
}

func TestCleanCredential(t *testing.T) {
	t.Run("passthrough when disabled", func(t *testing.T) {
		viper.Set(DisablePrecisKey, true)
		t.Cleanup(func() {
			viper.Set(DisablePrecisKey, false)
		})

		out, err := cleanCredential("bell\u0007")
		assert.NoError(t, err)
		assert.Equal(t, "bell\u0007", out)
	})

	t.Run("spaces and emoji are fine", func(t *testing.T) {
		out, err := cleanCredential("i like to eat \U0001F354 because they are tasty")
		assert.NoError(t, err)
		assert.Equal(t, "i like to eat \U0001F354 because they are tasty", out)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "bhavya@gmail.com", NormalizeEmail("  Bhavya@Gmail.com "))
	assert.Equal(t, "a@b.c", NormalizeEmail("a@b.c"))
}

func TestFileType_Valid(t *testing.T) {
	for _, ft := range FileTypes {
		assert.True(t, ft.Valid(), ft)
	}
	assert.False(t, FileTypeAll.Valid())
	assert.False(t, FileType("music").Valid())
}

func TestAccount_Profile(t *testing.T) {
	now := time.Now()
	a := Account{ID: "id", Name: "n", Email: "e", Phone: "p", PasswordHash: "secret", CreatedAt: now}

	assert.Equal(t, Profile{Name: "n", Email: "e", Phone: "p", CreatedAt: now}, a.Profile())
}
