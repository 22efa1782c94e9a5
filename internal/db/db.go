package db

import (
	"context"
	"errors"

	"github.com/safespace-vault/safespace/internal/account"
)

var (
	ErrDuplicateEmail = errors.New("db: an account with this email already exists")
	ErrNoRowsAffected = errors.New("db: no rows affected")
)

// AccountStore lookups return (nil, nil) when nothing matches.
type AccountStore interface {
	GetAccountByEmail(ctx context.Context, email string) (*account.Account, error)
	GetAccountByID(ctx context.Context, id string) (*account.Account, error)
	CreateAccount(ctx context.Context, a *account.Account) (string, error)
	UpdatePassword(ctx context.Context, a *account.Account) error

	// ReplacePasswordHash stores newHash only while the stored hash is still oldHash and returns
	// ErrNoRowsAffected otherwise. The password timestamp is left alone.
	ReplacePasswordHash(ctx context.Context, id string, oldHash string, newHash string) error
	ReplaceSecurityKeyHash(ctx context.Context, id string, oldHash string, newHash string) error

	// IncrementFailedAttempts adds one to the counter in a single statement and returns the new value.
	IncrementFailedAttempts(ctx context.Context, id string) (int, error)
	ResetFailedAttempts(ctx context.Context, id string) error
}

type FileStore interface {
	CreateFile(ctx context.Context, f *account.FileRecord) error
	GetFile(ctx context.Context, ownerID string, fileID string) (*account.FileRecord, error)
	// ListFiles treats an empty fileType or account.FileTypeAll as "every type".
	ListFiles(ctx context.Context, ownerID string, fileType account.FileType, isDecoy bool) ([]*account.FileRecord, error)
	DeleteFile(ctx context.Context, ownerID string, fileID string) error
}

type DB interface {
	AccountStore
	FileStore

	Ping(ctx context.Context) error
	Close() error
}
