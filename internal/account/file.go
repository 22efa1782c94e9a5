package account

import (
	"slices"
	"time"
)

type FileType string

const (
	FileTypeDocuments FileType = "documents"
	FileTypePhotos    FileType = "photos"
	FileTypeVideos    FileType = "videos"
	FileTypeAudios    FileType = "audios"
	FileTypeNotes     FileType = "notes"

	// FileTypeAll is only valid as a filter
	FileTypeAll FileType = "all"
)

var FileTypes = []FileType{
	FileTypeDocuments,
	FileTypePhotos,
	FileTypeVideos,
	FileTypeAudios,
	FileTypeNotes,
}

func (ft FileType) Valid() bool {
	return slices.Contains(FileTypes, ft)
}

// FileRecord is one stored upload. IsDecoy marks records belonging to the decoy file set that is shown
// after a security key login. Folders have no contents; their StoragePath is empty and Size is zero.
type FileRecord struct {
	ID          string
	OwnerID     string
	FileType    FileType
	FileName    string
	StoragePath string
	Size        int64
	ContentType string
	IsDecoy     bool
	IsFolder    bool
	CreatedAt   time.Time
}
