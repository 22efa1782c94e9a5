package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/safespace-vault/safespace/internal/account"
	"github.com/safespace-vault/safespace/internal/config"
	"github.com/safespace-vault/safespace/internal/db"
)

type SQLite struct {
	db *sql.DB
}

var _ db.DB = (*SQLite)(nil)

func NewFromConfig() (*SQLite, error) {
	config.Lock.RLock()
	file := viper.GetString(config.KeyDBFile)
	config.Lock.RUnlock()

	if file == "" {
		return nil, errors.New("sqlite: NewFromConfig: db file not set")
	}

	return New(file)
}

func New(file string) (*SQLite, error) {
	absDBFile, err := filepath.Abs(file)
	if err != nil {
		log.Warn().Str("raw_db_file", file).Err(err).Msg("could not get db file absolute path")
	}

	log.Info().Str("raw_db_file", file).Str("abs_db_file", absDBFile).Msg("starting database initialization")

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", file)

	database, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: New: could not open db: %w", err)
	}

	err = migrateDatabase(database)
	if err != nil {
		return nil, fmt.Errorf("sqlite: New: could not migrate database: %w", err)
	}

	// reopen database now that migration is complete
	database, err = sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: New: could not open db: %w", err)
	}
	// one writer at a time
	database.SetMaxOpenConns(1)

	log.Info().Str("raw_db_file", file).Str("abs_db_file", absDBFile).Msg("finished database initialization")

	return &SQLite{db: database}, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

const accountColumns = "id, name, email, phone, password_hash, security_key_hash, failed_attempts, password_timestamp, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*account.Account, error) {
	var a account.Account
	var createdAt int64
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.PasswordHash, &a.SecurityKeyHash, &a.FailedAttempts, &a.PasswordTimestamp, &createdAt)
	if err != nil {
		return nil, err
	}
	a.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &a, nil
}

func (s *SQLite) GetAccountByEmail(ctx context.Context, email string) (*account.Account, error) {
	a, err := scanAccount(s.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE email = $1", account.NormalizeEmail(email)))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("email", email).Msg("account not found")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: GetAccountByEmail: %w", err)
	}
	return a, nil
}

func (s *SQLite) GetAccountByID(ctx context.Context, id string) (*account.Account, error) {
	a, err := scanAccount(s.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("account_id", id).Msg("account not found")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: GetAccountByID: %w", err)
	}
	return a, nil
}

func (s *SQLite) CreateAccount(ctx context.Context, a *account.Account) (string, error) {
	id := a.ID
	if id == "" {
		id = uuid.NewString()
	}

	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO accounts ("+accountColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		id,
		a.Name,
		account.NormalizeEmail(a.Email),
		a.Phone,
		a.PasswordHash,
		a.SecurityKeyHash,
		a.FailedAttempts,
		a.PasswordTimestamp,
		createdAt.Unix())
	if isUniqueViolation(err) {
		return "", db.ErrDuplicateEmail
	}
	if err != nil {
		log.Error().Err(err).Msg("could not save account")
		return "", fmt.Errorf("sqlite: CreateAccount: %w", err)
	}

	a.ID = id
	a.CreatedAt = time.Unix(createdAt.Unix(), 0).UTC()
	return id, nil
}

func (s *SQLite) execOne(ctx context.Context, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if ra == 0 {
		return db.ErrNoRowsAffected
	}

	return nil
}

func (s *SQLite) UpdatePassword(ctx context.Context, a *account.Account) error {
	err := s.execOne(ctx, "UPDATE accounts SET password_hash = $1, password_timestamp = $2 WHERE id = $3", a.PasswordHash, a.PasswordTimestamp, a.ID)
	if err != nil {
		log.Warn().Err(err).Str("account_id", a.ID).Msg("could not update password")
		return fmt.Errorf("sqlite: UpdatePassword: %w", err)
	}
	return nil
}

func (s *SQLite) ReplacePasswordHash(ctx context.Context, id string, oldHash string, newHash string) error {
	err := s.execOne(ctx, "UPDATE accounts SET password_hash = $1 WHERE id = $2 AND password_hash = $3", newHash, id, oldHash)
	if err != nil {
		return fmt.Errorf("sqlite: ReplacePasswordHash: %w", err)
	}
	return nil
}

func (s *SQLite) ReplaceSecurityKeyHash(ctx context.Context, id string, oldHash string, newHash string) error {
	err := s.execOne(ctx, "UPDATE accounts SET security_key_hash = $1 WHERE id = $2 AND security_key_hash = $3", newHash, id, oldHash)
	if err != nil {
		return fmt.Errorf("sqlite: ReplaceSecurityKeyHash: %w", err)
	}
	return nil
}

func (s *SQLite) IncrementFailedAttempts(ctx context.Context, id string) (int, error) {
	var attempts int
	err := s.db.QueryRowContext(ctx, "UPDATE accounts SET failed_attempts = failed_attempts + 1 WHERE id = $1 RETURNING failed_attempts", id).Scan(&attempts)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("sqlite: IncrementFailedAttempts: %w", db.ErrNoRowsAffected)
	}
	if err != nil {
		return 0, fmt.Errorf("sqlite: IncrementFailedAttempts: %w", err)
	}
	return attempts, nil
}

func (s *SQLite) ResetFailedAttempts(ctx context.Context, id string) error {
	err := s.execOne(ctx, "UPDATE accounts SET failed_attempts = 0 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("sqlite: ResetFailedAttempts: %w", err)
	}
	return nil
}

const fileColumns = "id, user_id, file_type, file_name, storage_path, size, content_type, is_fake, is_folder, created_at"

func scanFile(row rowScanner) (*account.FileRecord, error) {
	var f account.FileRecord
	var fileType string
	var isFake, isFolder int
	var createdAt int64
	err := row.Scan(&f.ID, &f.OwnerID, &fileType, &f.FileName, &f.StoragePath, &f.Size, &f.ContentType, &isFake, &isFolder, &createdAt)
	if err != nil {
		return nil, err
	}
	f.FileType = account.FileType(fileType)
	f.IsDecoy = isFake != 0
	f.IsFolder = isFolder != 0
	f.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &f, nil
}

func (s *SQLite) CreateFile(ctx context.Context, f *account.FileRecord) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}

	isFake := 0
	if f.IsDecoy {
		isFake = 1
	}
	isFolder := 0
	if f.IsFolder {
		isFolder = 1
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO files ("+fileColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
		f.ID,
		f.OwnerID,
		string(f.FileType),
		f.FileName,
		f.StoragePath,
		f.Size,
		f.ContentType,
		isFake,
		isFolder,
		f.CreatedAt.Unix())
	if err != nil {
		log.Error().Err(err).Str("owner_id", f.OwnerID).Msg("could not save file record")
		return fmt.Errorf("sqlite: CreateFile: %w", err)
	}

	f.CreatedAt = time.Unix(f.CreatedAt.Unix(), 0).UTC()
	return nil
}

func (s *SQLite) GetFile(ctx context.Context, ownerID string, fileID string) (*account.FileRecord, error) {
	f, err := scanFile(s.db.QueryRowContext(ctx, "SELECT "+fileColumns+" FROM files WHERE id = $1 AND user_id = $2", fileID, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: GetFile: %w", err)
	}
	return f, nil
}

func (s *SQLite) ListFiles(ctx context.Context, ownerID string, fileType account.FileType, isDecoy bool) ([]*account.FileRecord, error) {
	isFake := 0
	if isDecoy {
		isFake = 1
	}

	query := "SELECT " + fileColumns + " FROM files WHERE user_id = $1 AND is_fake = $2"
	args := []any{ownerID, isFake}
	if fileType != "" && fileType != account.FileTypeAll {
		query += " AND file_type = $3"
		args = append(args, string(fileType))
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: ListFiles: %w", err)
	}
	defer rows.Close()

	ret := make([]*account.FileRecord, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: ListFiles: %w", err)
		}
		ret = append(ret, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: ListFiles: %w", err)
	}

	return ret, nil
}

func (s *SQLite) DeleteFile(ctx context.Context, ownerID string, fileID string) error {
	err := s.execOne(ctx, "DELETE FROM files WHERE id = $1 AND user_id = $2", fileID, ownerID)
	if err != nil {
		return fmt.Errorf("sqlite: DeleteFile: %w", err)
	}
	return nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
