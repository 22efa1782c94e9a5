// Package vault stores user files. Records live in the database, contents in the blob store.
package vault

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/safespace-vault/safespace/internal/account"
	"github.com/safespace-vault/safespace/internal/config"
	"github.com/safespace-vault/safespace/internal/db"
	"github.com/safespace-vault/safespace/internal/storage"
)

const (
	DefaultQuotaBytes   int64 = 10 << 30
	DefaultExportURLTTL       = time.Hour
	DefaultBlobTimeout        = 5 * time.Minute
	DefaultStoreTimeout       = 5 * time.Second
)

var (
	ErrValidation    = errors.New("vault: invalid input")
	ErrFileNotFound  = errors.New("vault: file not found")
	ErrQuotaExceeded = errors.New("vault: storage quota exceeded")
)

type Vault struct {
	files db.FileStore
	blobs storage.BlobStore

	quota        int64
	exportTTL    time.Duration
	blobTimeout  time.Duration
	storeTimeout time.Duration

	now func() time.Time
}

type Option func(*Vault)

func WithQuota(bytes int64) Option {
	return func(v *Vault) {
		v.quota = bytes
	}
}

func WithExportURLTTL(d time.Duration) Option {
	return func(v *Vault) {
		v.exportTTL = d
	}
}

func WithBlobTimeout(d time.Duration) Option {
	return func(v *Vault) {
		v.blobTimeout = d
	}
}

// WithStoreTimeout bounds each call to the file record store
func WithStoreTimeout(d time.Duration) Option {
	return func(v *Vault) {
		v.storeTimeout = d
	}
}

func withClock(now func() time.Time) Option {
	return func(v *Vault) {
		v.now = now
	}
}

func New(files db.FileStore, blobs storage.BlobStore, opts ...Option) *Vault {
	v := &Vault{
		files:        files,
		blobs:        blobs,
		quota:        DefaultQuotaBytes,
		exportTTL:    DefaultExportURLTTL,
		blobTimeout:  DefaultBlobTimeout,
		storeTimeout: DefaultStoreTimeout,
		now:          time.Now,
	}

	for _, o := range opts {
		o(v)
	}

	return v
}

func NewFromConfig(files db.FileStore, blobs storage.BlobStore) *Vault {
	config.Lock.RLock()
	quota := viper.GetInt64(config.KeyVaultQuotaBytes)
	exportTTL := viper.GetDuration(config.KeyVaultExportURLTTL)
	blobTimeout := viper.GetDuration(config.KeyBlobTimeout)
	storeTimeout := viper.GetDuration(config.KeyStoreTimeout)
	config.Lock.RUnlock()

	var opts []Option
	if quota > 0 {
		opts = append(opts, WithQuota(quota))
	}
	if exportTTL > 0 {
		opts = append(opts, WithExportURLTTL(exportTTL))
	}
	if blobTimeout > 0 {
		opts = append(opts, WithBlobTimeout(blobTimeout))
	}
	if storeTimeout > 0 {
		opts = append(opts, WithStoreTimeout(storeTimeout))
	}

	return New(files, blobs, opts...)
}

func (v *Vault) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, v.storeTimeout)
}

type UploadRequest struct {
	OwnerID     string
	FileType    account.FileType
	IsDecoy     bool
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadResult struct {
	File *account.FileRecord
	URL  string
}

// URL is where the contents of f can be fetched from. Folders have none.
func (v *Vault) URL(f *account.FileRecord) string {
	if f.IsFolder {
		return ""
	}
	return v.blobs.PublicURL(f.StoragePath)
}

// cleanFileName drops any directory part a client may have sent along
func cleanFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func objectKey(fileType account.FileType, ownerID string, ts time.Time, name string) string {
	return fmt.Sprintf("%s/%s/%d_%s", fileType, ownerID, ts.UnixNano(), name)
}

func (v *Vault) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	name := cleanFileName(req.FileName)

	switch {
	case req.OwnerID == "":
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	case !req.FileType.Valid():
		return nil, fmt.Errorf("%w: unknown file type %q", ErrValidation, req.FileType)
	case name == "":
		return nil, fmt.Errorf("%w: file name is required", ErrValidation)
	case req.Body == nil:
		return nil, fmt.Errorf("%w: file is required", ErrValidation)
	}

	if req.Size > 0 {
		stats, err := v.Stats(ctx, req.OwnerID, req.IsDecoy)
		if err != nil {
			return nil, err
		}
		if stats.Used+req.Size > stats.Total {
			log.Warn().Str("account_id", req.OwnerID).Int64("used", stats.Used).Int64("size", req.Size).Msg("upload would exceed quota")
			return nil, ErrQuotaExceeded
		}
	}

	now := v.now()
	rec := &account.FileRecord{
		ID:          uuid.NewString(),
		OwnerID:     req.OwnerID,
		FileType:    req.FileType,
		FileName:    name,
		StoragePath: objectKey(req.FileType, req.OwnerID, now, name),
		Size:        req.Size,
		ContentType: req.ContentType,
		IsDecoy:     req.IsDecoy,
		CreatedAt:   now,
	}

	blobCtx, cancel := context.WithTimeout(ctx, v.blobTimeout)
	defer cancel()

	if err := v.blobs.Put(blobCtx, rec.StoragePath, req.Body, req.Size, req.ContentType); err != nil {
		return nil, fmt.Errorf("vault: Upload: could not store file: %w", err)
	}

	storeCtx, storeCancel := v.storeCtx(ctx)
	defer storeCancel()

	if err := v.files.CreateFile(storeCtx, rec); err != nil {
		log.Error().Err(err).Str("storage_path", rec.StoragePath).Msg("could not save file record, removing blob")
		if delErr := v.blobs.Delete(context.WithoutCancel(ctx), rec.StoragePath); delErr != nil {
			log.Error().Err(delErr).Str("storage_path", rec.StoragePath).Msg("could not remove orphaned blob")
		}
		return nil, fmt.Errorf("vault: Upload: could not save file record: %w", err)
	}

	log.Info().
		Str("account_id", rec.OwnerID).
		Str("file_id", rec.ID).
		Str("file_type", string(rec.FileType)).
		Bool("decoy", rec.IsDecoy).
		Int64("size", rec.Size).
		Msg("file uploaded")

	return &UploadResult{File: rec, URL: v.URL(rec)}, nil
}

// filterType maps the query value to a store filter. Empty and "all" both mean every type.
func filterType(raw string) (account.FileType, error) {
	ft := account.FileType(strings.ToLower(strings.TrimSpace(raw)))
	if ft == "" || ft == account.FileTypeAll || ft.Valid() {
		return ft, nil
	}
	return "", fmt.Errorf("%w: unknown file type %q", ErrValidation, raw)
}

func (v *Vault) List(ctx context.Context, ownerID string, fileType string, isDecoy bool) ([]*account.FileRecord, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	ft, err := filterType(fileType)
	if err != nil {
		return nil, err
	}

	storeCtx, cancel := v.storeCtx(ctx)
	defer cancel()

	files, err := v.files.ListFiles(storeCtx, ownerID, ft, isDecoy)
	if err != nil {
		return nil, fmt.Errorf("vault: List: %w", err)
	}

	return files, nil
}

func (v *Vault) Delete(ctx context.Context, ownerID string, fileID string) error {
	if ownerID == "" || fileID == "" {
		return fmt.Errorf("%w: user id and file id are required", ErrValidation)
	}

	storeCtx, storeCancel := v.storeCtx(ctx)
	defer storeCancel()

	rec, err := v.files.GetFile(storeCtx, ownerID, fileID)
	if err != nil {
		return fmt.Errorf("vault: Delete: %w", err)
	}
	if rec == nil {
		return ErrFileNotFound
	}

	err = v.files.DeleteFile(storeCtx, ownerID, fileID)
	if errors.Is(err, db.ErrNoRowsAffected) {
		return ErrFileNotFound
	}
	if err != nil {
		return fmt.Errorf("vault: Delete: %w", err)
	}

	if !rec.IsFolder {
		blobCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), v.blobTimeout)
		defer cancel()

		// the record is gone already, a leftover blob is only wasted space
		if err := v.blobs.Delete(blobCtx, rec.StoragePath); err != nil {
			log.Error().Err(err).Str("storage_path", rec.StoragePath).Msg("could not remove blob of deleted file")
		}
	}

	log.Info().Str("account_id", ownerID).Str("file_id", fileID).Msg("file deleted")

	return nil
}

type Stats struct {
	Used      int64
	Total     int64
	FileCount map[account.FileType]int
}

func (v *Vault) Stats(ctx context.Context, ownerID string, isDecoy bool) (*Stats, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	storeCtx, cancel := v.storeCtx(ctx)
	defer cancel()

	files, err := v.files.ListFiles(storeCtx, ownerID, account.FileTypeAll, isDecoy)
	if err != nil {
		return nil, fmt.Errorf("vault: Stats: %w", err)
	}

	s := &Stats{
		Total:     v.quota,
		FileCount: make(map[account.FileType]int, len(account.FileTypes)),
	}
	for _, ft := range account.FileTypes {
		s.FileCount[ft] = 0
	}

	for _, f := range files {
		if f.IsFolder {
			continue
		}
		s.Used += f.Size
		s.FileCount[f.FileType]++
	}

	return s, nil
}

type FolderRequest struct {
	OwnerID  string
	FileType account.FileType
	Name     string
	IsDecoy  bool
}

// CreateFolder adds an empty folder record. Nothing is written to the blob store.
func (v *Vault) CreateFolder(ctx context.Context, req FolderRequest) (*account.FileRecord, error) {
	name := strings.TrimSpace(req.Name)

	switch {
	case req.OwnerID == "":
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	case !req.FileType.Valid():
		return nil, fmt.Errorf("%w: unknown file type %q", ErrValidation, req.FileType)
	case name == "":
		return nil, fmt.Errorf("%w: Folder name is required", ErrValidation)
	case strings.ContainsAny(name, `/\`):
		return nil, fmt.Errorf("%w: Folder name cannot contain / or \\ characters", ErrValidation)
	}

	rec := &account.FileRecord{
		ID:        uuid.NewString(),
		OwnerID:   req.OwnerID,
		FileType:  req.FileType,
		FileName:  name,
		IsDecoy:   req.IsDecoy,
		IsFolder:  true,
		CreatedAt: v.now(),
	}

	storeCtx, cancel := v.storeCtx(ctx)
	defer cancel()

	if err := v.files.CreateFile(storeCtx, rec); err != nil {
		return nil, fmt.Errorf("vault: CreateFolder: %w", err)
	}

	log.Info().
		Str("account_id", rec.OwnerID).
		Str("file_id", rec.ID).
		Str("file_type", string(rec.FileType)).
		Bool("decoy", rec.IsDecoy).
		Msg("folder created")

	return rec, nil
}

type ShareLink struct {
	File      *account.FileRecord
	URL       string
	ExpiresAt time.Time
}

// Share signs a temporary download link for one file. The link expires along with export links.
func (v *Vault) Share(ctx context.Context, ownerID string, fileID string) (*ShareLink, error) {
	if ownerID == "" || fileID == "" {
		return nil, fmt.Errorf("%w: user id and file id are required", ErrValidation)
	}

	storeCtx, storeCancel := v.storeCtx(ctx)
	defer storeCancel()

	rec, err := v.files.GetFile(storeCtx, ownerID, fileID)
	if err != nil {
		return nil, fmt.Errorf("vault: Share: %w", err)
	}
	if rec == nil {
		return nil, ErrFileNotFound
	}
	if rec.IsFolder {
		return nil, fmt.Errorf("%w: folders can not be shared", ErrValidation)
	}

	blobCtx, blobCancel := context.WithTimeout(ctx, v.blobTimeout)
	defer blobCancel()

	url, err := v.blobs.PresignedURL(blobCtx, rec.StoragePath, v.exportTTL)
	if err != nil {
		return nil, fmt.Errorf("vault: Share: could not sign link: %w", err)
	}

	log.Info().Str("account_id", ownerID).Str("file_id", fileID).Msg("share link created")

	return &ShareLink{
		File:      rec,
		URL:       url,
		ExpiresAt: v.now().Add(v.exportTTL),
	}, nil
}
