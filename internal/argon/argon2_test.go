package argon

import (
	"regexp"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var argonRegex = regexp.MustCompile(`^\$argon2id\$v=\d+\$m=\d+,t=\d+,p=\d+\$[-A-Za-z0-9+/]+\$[-A-Za-z0-9+/]+$`)

func TestHashAndVerify(t *testing.T) {
	t.Run("correct secret", func(t *testing.T) {
		hash, err := Hash("password")
		require.NoError(t, err)

		assert.Regexp(t, argonRegex, hash)
		assert.NoError(t, Verify("password", hash))
	})

	t.Run("incorrect secret", func(t *testing.T) {
		hash, err := Hash("password")
		require.NoError(t, err)

		assert.ErrorIs(t, Verify("password1", hash), ErrMismatch)
	})

	t.Run("same secret hashes differently", func(t *testing.T) {
		a, err := Hash("1234")
		require.NoError(t, err)
		b, err := Hash("1234")
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
		assert.NoError(t, Verify("1234", a))
		assert.NoError(t, Verify("1234", b))
	})

	t.Run("invalid hash", func(t *testing.T) {
		assert.ErrorIs(t, Verify("aa", "ksdjfkdsjfkdsjfdskfjdskfjdskfjkdf"), ErrInvalidHash)
	})

	t.Run("wrong version", func(t *testing.T) {
		err := Verify("aa", "$argon2id$v=16$m=65536,t=3,p=2$f5DrCPQlwRJ5q1fA4K+i/g$c8XhJISMUI3wjIUULHvn0HIJinvOBBb4KnvOcvuJ4e0")
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})

	t.Run("imported bcrypt hash", func(t *testing.T) {
		raw, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
		require.NoError(t, err)

		assert.NoError(t, Verify("hunter2", string(raw)))
		assert.ErrorIs(t, Verify("hunter3", string(raw)), ErrMismatch)
	})

	t.Run("broken bcrypt hash", func(t *testing.T) {
		assert.ErrorIs(t, Verify("hunter2", "$2y$10$short"), ErrInvalidHash)
	})
}

func TestNeedsRehash(t *testing.T) {
	t.Run("bcrypt hash", func(t *testing.T) {
		assert.True(t, NeedsRehash("$2y$10$UKHA7gPNKpu/Kc7tyo91eudJZdX9qDs0S2E1GWgZKPkP/o4s2SR.m"))
	})

	t.Run("don't rehash if disabled", func(t *testing.T) {
		viper.Set(DisableRehashKey, true)
		t.Cleanup(func() {
			viper.Set(DisableRehashKey, false)
		})

		assert.False(t, NeedsRehash("$2y$10$UKHA7gPNKpu/Kc7tyo91eudJZdX9qDs0S2E1GWgZKPkP/o4s2SR.m"))
	})

	t.Run("current params", func(t *testing.T) {
		assert.False(t, NeedsRehash("$argon2id$v=19$m=65536,t=3,p=2$Sz1T6kOEN6fAa2/5NvHX5g$mDgZAJ7oLMYmW7yVAYnXBho7Ybg12woF66GQnP6XocA"))
	})

	t.Run("stale params", func(t *testing.T) {
		assert.True(t, NeedsRehash("$argon2id$v=19$m=32768,t=4,p=2$doqbcsy6S669OpGN5twLfWm8mJjy6QywOJsPLnabTgs$zoyPNcenQg0H83J4EcX2QVLGJFAMkTXyg5Q8Rvt3qv0"))
	})

	t.Run("garbage", func(t *testing.T) {
		assert.True(t, NeedsRehash("$argon2id$nope"))
	})
}
