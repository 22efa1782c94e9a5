package vault

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/safespace-vault/safespace/internal/account"
	"github.com/safespace-vault/safespace/internal/storage"
)

type ExportResult struct {
	Files       []*account.FileRecord
	DownloadURL string
	ExpiresAt   time.Time
}

func exportKey(ownerID string, ts time.Time) string {
	return fmt.Sprintf("exports/%s/%d.zip", ownerID, ts.UnixNano())
}

// Export zips the selected files into a single object and hands back a short-lived link to it. Folders and blobs
// that have gone missing are left out of the archive.
func (v *Vault) Export(ctx context.Context, ownerID string, fileType string, isDecoy bool) (*ExportResult, error) {
	listed, err := v.List(ctx, ownerID, fileType, isDecoy)
	if err != nil {
		return nil, err
	}

	files := make([]*account.FileRecord, 0, len(listed))
	for _, f := range listed {
		if !f.IsFolder {
			files = append(files, f)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, v.blobTimeout)
	defer cancel()

	now := v.now()
	key := exportKey(ownerID, now)

	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(v.writeArchive(ctx, pw, files))
	}()

	// size is unknown while streaming
	err = v.blobs.Put(ctx, key, pr, -1, "application/zip")
	_ = pr.CloseWithError(io.ErrClosedPipe)
	if err != nil {
		return nil, fmt.Errorf("vault: Export: could not store archive: %w", err)
	}

	url, err := v.blobs.PresignedURL(ctx, key, v.exportTTL)
	if err != nil {
		return nil, fmt.Errorf("vault: Export: could not sign download url: %w", err)
	}

	log.Info().Str("account_id", ownerID).Int("file_count", len(files)).Str("export_key", key).Msg("export created")

	return &ExportResult{
		Files:       files,
		DownloadURL: url,
		ExpiresAt:   now.Add(v.exportTTL),
	}, nil
}

func (v *Vault) writeArchive(ctx context.Context, w io.Writer, files []*account.FileRecord) error {
	zw := zip.NewWriter(w)

	for _, f := range files {
		if err := v.addToArchive(ctx, zw, f); err != nil {
			return err
		}
	}

	return zw.Close()
}

func (v *Vault) addToArchive(ctx context.Context, zw *zip.Writer, f *account.FileRecord) error {
	rc, err := v.blobs.Get(ctx, f.StoragePath)
	if errors.Is(err, storage.ErrNotFound) {
		log.Warn().Str("file_id", f.ID).Str("storage_path", f.StoragePath).Msg("blob missing, leaving it out of the export")
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read %s: %w", f.StoragePath, err)
	}
	defer rc.Close()

	hdr := &zip.FileHeader{
		Name:     fmt.Sprintf("%s/%s_%s", f.FileType, f.ID, f.FileName),
		Method:   zip.Deflate,
		Modified: f.CreatedAt,
	}

	entry, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("could not add %s to archive: %w", f.ID, err)
	}

	if _, err := io.Copy(entry, rc); err != nil {
		return fmt.Errorf("could not copy %s into archive: %w", f.ID, err)
	}

	return nil
}
