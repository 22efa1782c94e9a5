package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safespace-vault/safespace/internal/account"
	"github.com/safespace-vault/safespace/internal/db"
)

// set SAFESPACE_TEST_POSTGRES_DSN to run these against a throwaway database
func makeTestDB(t *testing.T) *Postgres {
	dsn := os.Getenv("SAFESPACE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("SAFESPACE_TEST_POSTGRES_DSN not set")
	}

	p, err := New(context.TODO(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = p.Close()
	})
	return p
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.NewString())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(nil))
}

func TestValidID(t *testing.T) {
	assert.True(t, validID(uuid.NewString()))
	assert.False(t, validID(""))
	assert.False(t, validID("1; DROP TABLE accounts"))
}

func TestPostgres_Accounts(t *testing.T) {
	p := makeTestDB(t)

	email := uniqueEmail("pg")
	a := &account.Account{Name: "Test", Email: email, PasswordHash: "pw", SecurityKeyHash: "key"}
	id, err := p.CreateAccount(context.TODO(), a)
	require.NoError(t, err)

	fetched, err := p.GetAccountByEmail(context.TODO(), email)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, id, fetched.ID)

	_, err = p.CreateAccount(context.TODO(), &account.Account{Name: "Other", Email: email, PasswordHash: "x", SecurityKeyHash: "y"})
	assert.ErrorIs(t, err, db.ErrDuplicateEmail)

	missing, err := p.GetAccountByID(context.TODO(), "not-a-uuid")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	for i := 1; i <= 3; i++ {
		n, err := p.IncrementFailedAttempts(context.TODO(), id)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}
	require.NoError(t, p.ResetFailedAttempts(context.TODO(), id))

	require.NoError(t, p.ReplacePasswordHash(context.TODO(), id, "pw", "rehashed"))
	assert.ErrorIs(t, p.ReplacePasswordHash(context.TODO(), id, "pw", "stale"), db.ErrNoRowsAffected)
	require.NoError(t, p.ReplaceSecurityKeyHash(context.TODO(), id, "key", "rehashed-key"))
	assert.ErrorIs(t, p.ReplaceSecurityKeyHash(context.TODO(), id, "key", "stale"), db.ErrNoRowsAffected)

	fetched, err = p.GetAccountByID(context.TODO(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, fetched.FailedAttempts)
	assert.Equal(t, "rehashed", fetched.PasswordHash)
	assert.Equal(t, "rehashed-key", fetched.SecurityKeyHash)
}

func TestPostgres_Files(t *testing.T) {
	p := makeTestDB(t)

	owner := &account.Account{Name: "Files", Email: uniqueEmail("files"), PasswordHash: "pw", SecurityKeyHash: "key"}
	_, err := p.CreateAccount(context.TODO(), owner)
	require.NoError(t, err)

	f := &account.FileRecord{OwnerID: owner.ID, FileType: account.FileTypeNotes, FileName: "n.txt", StoragePath: "notes/n.txt", Size: 3, IsDecoy: true}
	require.NoError(t, p.CreateFile(context.TODO(), f))

	decoys, err := p.ListFiles(context.TODO(), owner.ID, account.FileTypeAll, true)
	require.NoError(t, err)
	require.Len(t, decoys, 1)
	assert.Equal(t, f.ID, decoys[0].ID)

	genuine, err := p.ListFiles(context.TODO(), owner.ID, account.FileTypeAll, false)
	require.NoError(t, err)
	assert.Empty(t, genuine)

	folder := &account.FileRecord{OwnerID: owner.ID, FileType: account.FileTypeNotes, FileName: "Journal", IsFolder: true}
	require.NoError(t, p.CreateFile(context.TODO(), folder))

	got, err := p.GetFile(context.TODO(), owner.ID, folder.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsFolder)
	assert.False(t, got.IsDecoy)

	require.NoError(t, p.DeleteFile(context.TODO(), owner.ID, f.ID))
	assert.ErrorIs(t, p.DeleteFile(context.TODO(), owner.ID, f.ID), db.ErrNoRowsAffected)
}
