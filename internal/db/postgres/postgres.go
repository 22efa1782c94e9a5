package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/safespace-vault/safespace/internal/account"
	"github.com/safespace-vault/safespace/internal/config"
	"github.com/safespace-vault/safespace/internal/db"
)

const uniqueViolationCode = "23505"

type Postgres struct {
	pool *pgxpool.Pool
}

var _ db.DB = (*Postgres)(nil)

func NewFromConfig(ctx context.Context) (*Postgres, error) {
	config.Lock.RLock()
	dsn := viper.GetString(config.KeyDBDSN)
	config.Lock.RUnlock()

	if dsn == "" {
		return nil, errors.New("postgres: NewFromConfig: db dsn not set")
	}

	return New(ctx, dsn)
}

func New(ctx context.Context, dsn string) (*Postgres, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: New: could not parse dsn: %w", err)
	}

	log.Info().Str("host", conf.ConnConfig.Host).Str("database", conf.ConnConfig.Database).Msg("starting database initialization")

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("postgres: New: could not open connection pool: %w", err)
	}

	if err := migrateDatabase(pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: New: could not migrate database: %w", err)
	}

	log.Info().Str("host", conf.ConnConfig.Host).Str("database", conf.ConnConfig.Database).Msg("finished database initialization")

	return &Postgres{pool: pool}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// validID reports whether id can be compared against a UUID column at all
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

const accountColumns = "id::text, name, email, phone, password_hash, security_key_hash, failed_attempts, password_timestamp, created_at"

func scanAccount(row pgx.Row) (*account.Account, error) {
	var a account.Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.PasswordHash, &a.SecurityKeyHash, &a.FailedAttempts, &a.PasswordTimestamp, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return &a, nil
}

func (p *Postgres) GetAccountByEmail(ctx context.Context, email string) (*account.Account, error) {
	a, err := scanAccount(p.pool.QueryRow(ctx, "SELECT "+accountColumns+" FROM accounts WHERE email = $1", account.NormalizeEmail(email)))
	if errors.Is(err, pgx.ErrNoRows) {
		log.Debug().Str("email", email).Msg("account not found")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: GetAccountByEmail: %w", err)
	}
	return a, nil
}

func (p *Postgres) GetAccountByID(ctx context.Context, id string) (*account.Account, error) {
	if !validID(id) {
		return nil, nil
	}

	a, err := scanAccount(p.pool.QueryRow(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		log.Debug().Str("account_id", id).Msg("account not found")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: GetAccountByID: %w", err)
	}
	return a, nil
}

func (p *Postgres) CreateAccount(ctx context.Context, a *account.Account) (string, error) {
	id := a.ID
	if id == "" {
		id = uuid.NewString()
	}
	if !validID(id) {
		return "", fmt.Errorf("postgres: CreateAccount: account id %q is not a UUID", id)
	}

	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := p.pool.Exec(ctx,
		"INSERT INTO accounts (id, name, email, phone, password_hash, security_key_hash, failed_attempts, password_timestamp, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		id,
		a.Name,
		account.NormalizeEmail(a.Email),
		a.Phone,
		a.PasswordHash,
		a.SecurityKeyHash,
		a.FailedAttempts,
		a.PasswordTimestamp,
		createdAt)
	if isUniqueViolation(err) {
		return "", db.ErrDuplicateEmail
	}
	if err != nil {
		log.Error().Err(err).Msg("could not save account")
		return "", fmt.Errorf("postgres: CreateAccount: %w", err)
	}

	a.ID = id
	a.CreatedAt = createdAt.UTC()
	return id, nil
}

func (p *Postgres) execOne(ctx context.Context, query string, args ...any) error {
	tag, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNoRowsAffected
	}
	return nil
}

func (p *Postgres) UpdatePassword(ctx context.Context, a *account.Account) error {
	if !validID(a.ID) {
		return fmt.Errorf("postgres: UpdatePassword: %w", db.ErrNoRowsAffected)
	}

	err := p.execOne(ctx, "UPDATE accounts SET password_hash = $1, password_timestamp = $2 WHERE id = $3", a.PasswordHash, a.PasswordTimestamp, a.ID)
	if err != nil {
		log.Warn().Err(err).Str("account_id", a.ID).Msg("could not update password")
		return fmt.Errorf("postgres: UpdatePassword: %w", err)
	}
	return nil
}

func (p *Postgres) ReplacePasswordHash(ctx context.Context, id string, oldHash string, newHash string) error {
	if !validID(id) {
		return fmt.Errorf("postgres: ReplacePasswordHash: %w", db.ErrNoRowsAffected)
	}

	err := p.execOne(ctx, "UPDATE accounts SET password_hash = $1 WHERE id = $2 AND password_hash = $3", newHash, id, oldHash)
	if err != nil {
		return fmt.Errorf("postgres: ReplacePasswordHash: %w", err)
	}
	return nil
}

func (p *Postgres) ReplaceSecurityKeyHash(ctx context.Context, id string, oldHash string, newHash string) error {
	if !validID(id) {
		return fmt.Errorf("postgres: ReplaceSecurityKeyHash: %w", db.ErrNoRowsAffected)
	}

	err := p.execOne(ctx, "UPDATE accounts SET security_key_hash = $1 WHERE id = $2 AND security_key_hash = $3", newHash, id, oldHash)
	if err != nil {
		return fmt.Errorf("postgres: ReplaceSecurityKeyHash: %w", err)
	}
	return nil
}

func (p *Postgres) IncrementFailedAttempts(ctx context.Context, id string) (int, error) {
	if !validID(id) {
		return 0, fmt.Errorf("postgres: IncrementFailedAttempts: %w", db.ErrNoRowsAffected)
	}

	var attempts int
	err := p.pool.QueryRow(ctx, "UPDATE accounts SET failed_attempts = failed_attempts + 1 WHERE id = $1 RETURNING failed_attempts", id).Scan(&attempts)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("postgres: IncrementFailedAttempts: %w", db.ErrNoRowsAffected)
	}
	if err != nil {
		return 0, fmt.Errorf("postgres: IncrementFailedAttempts: %w", err)
	}
	return attempts, nil
}

func (p *Postgres) ResetFailedAttempts(ctx context.Context, id string) error {
	if !validID(id) {
		return fmt.Errorf("postgres: ResetFailedAttempts: %w", db.ErrNoRowsAffected)
	}

	err := p.execOne(ctx, "UPDATE accounts SET failed_attempts = 0 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("postgres: ResetFailedAttempts: %w", err)
	}
	return nil
}

const fileColumns = "id::text, user_id::text, file_type, file_name, storage_path, size, content_type, is_fake, is_folder, created_at"

func scanFile(row pgx.Row) (*account.FileRecord, error) {
	var f account.FileRecord
	var fileType string
	err := row.Scan(&f.ID, &f.OwnerID, &fileType, &f.FileName, &f.StoragePath, &f.Size, &f.ContentType, &f.IsDecoy, &f.IsFolder, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	f.FileType = account.FileType(fileType)
	f.CreatedAt = f.CreatedAt.UTC()
	return &f, nil
}

func (p *Postgres) CreateFile(ctx context.Context, f *account.FileRecord) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	if !validID(f.OwnerID) {
		return fmt.Errorf("postgres: CreateFile: owner id %q is not a UUID", f.OwnerID)
	}

	_, err := p.pool.Exec(ctx,
		"INSERT INTO files (id, user_id, file_type, file_name, storage_path, size, content_type, is_fake, is_folder, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
		f.ID,
		f.OwnerID,
		string(f.FileType),
		f.FileName,
		f.StoragePath,
		f.Size,
		f.ContentType,
		f.IsDecoy,
		f.IsFolder,
		f.CreatedAt)
	if err != nil {
		log.Error().Err(err).Str("owner_id", f.OwnerID).Msg("could not save file record")
		return fmt.Errorf("postgres: CreateFile: %w", err)
	}

	f.CreatedAt = f.CreatedAt.UTC()
	return nil
}

func (p *Postgres) GetFile(ctx context.Context, ownerID string, fileID string) (*account.FileRecord, error) {
	if !validID(ownerID) || !validID(fileID) {
		return nil, nil
	}

	f, err := scanFile(p.pool.QueryRow(ctx, "SELECT "+fileColumns+" FROM files WHERE id = $1 AND user_id = $2", fileID, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: GetFile: %w", err)
	}
	return f, nil
}

func (p *Postgres) ListFiles(ctx context.Context, ownerID string, fileType account.FileType, isDecoy bool) ([]*account.FileRecord, error) {
	ret := make([]*account.FileRecord, 0)
	if !validID(ownerID) {
		return ret, nil
	}

	query := "SELECT " + fileColumns + " FROM files WHERE user_id = $1 AND is_fake = $2"
	args := []any{ownerID, isDecoy}
	if fileType != "" && fileType != account.FileTypeAll {
		query += " AND file_type = $3"
		args = append(args, string(fileType))
	}
	query += " ORDER BY created_at, id"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: ListFiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: ListFiles: %w", err)
		}
		ret = append(ret, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: ListFiles: %w", err)
	}

	return ret, nil
}

func (p *Postgres) DeleteFile(ctx context.Context, ownerID string, fileID string) error {
	if !validID(ownerID) || !validID(fileID) {
		return fmt.Errorf("postgres: DeleteFile: %w", db.ErrNoRowsAffected)
	}

	err := p.execOne(ctx, "DELETE FROM files WHERE id = $1 AND user_id = $2", fileID, ownerID)
	if err != nil {
		return fmt.Errorf("postgres: DeleteFile: %w", err)
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
