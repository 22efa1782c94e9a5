package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/safespace-vault/safespace/internal/account"
	"github.com/safespace-vault/safespace/internal/render"
	"github.com/safespace-vault/safespace/internal/vault"
)

const multipartMemoryBytes = 32 << 20

type fileView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	IsFolder  bool      `json:"isFolder"`
	IsDecoy   bool      `json:"isDecoy"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e *Env) toFileView(f *account.FileRecord) fileView {
	return fileView{
		ID:        f.ID,
		Name:      f.FileName,
		URL:       e.Vault.URL(f),
		Type:      string(f.FileType),
		IsFolder:  f.IsFolder,
		IsDecoy:   f.IsDecoy,
		Size:      f.Size,
		CreatedAt: f.CreatedAt,
	}
}

func (e *Env) toFileViews(files []*account.FileRecord) []fileView {
	ret := make([]fileView, 0, len(files))
	for _, f := range files {
		ret = append(ret, e.toFileView(f))
	}
	return ret
}

func isDecoyRequest(r *http.Request) bool {
	return r.URL.Query().Get("isDecoy") == "true"
}

// requireAccount writes a response and returns false when userID does not name an account
func (e *Env) requireAccount(w http.ResponseWriter, r *http.Request, userID string) bool {
	if userID == "" {
		render.JSONError(w, "User ID required", http.StatusBadRequest)
		return false
	}

	if _, err := e.Gatekeeper.Profile(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return false
	}

	return true
}

type uploadResponse struct {
	Success bool     `json:"success"`
	File    fileView `json:"file"`
}

// extendReadDeadline gives slow uploads longer than the server wide read timeout
func (e *Env) extendReadDeadline(w http.ResponseWriter) {
	if e.UploadTimeout <= 0 {
		return
	}

	err := http.NewResponseController(w).SetReadDeadline(time.Now().Add(e.UploadTimeout))
	if err != nil && !errors.Is(err, http.ErrNotSupported) {
		log.Warn().Err(err).Msg("could not extend read deadline for upload")
	}
}

func (e *Env) HandleUpload(w http.ResponseWriter, r *http.Request) {
	e.extendReadDeadline(w)

	maxBytes := e.MaxUploadBytes
	if maxBytes == 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			render.JSONError(w, "File too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Debug().Err(err).Msg("could not parse upload form")
		render.JSONError(w, "No file part", http.StatusBadRequest)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		render.JSONError(w, "No file part", http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileType := r.FormValue("fileType")
	userID := r.FormValue("userId")
	if fileType == "" || userID == "" {
		render.JSONError(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	if !e.requireAccount(w, r, userID) {
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	res, err := e.Vault.Upload(r.Context(), vault.UploadRequest{
		OwnerID:     userID,
		FileType:    account.FileType(fileType),
		IsDecoy:     r.FormValue("isDecoy") == "true",
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, uploadResponse{Success: true, File: e.toFileView(res.File)})
}

type filesResponse struct {
	Success bool       `json:"success"`
	Files   []fileView `json:"files"`
}

func (e *Env) HandleListFiles(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if !e.requireAccount(w, r, userID) {
		return
	}

	files, err := e.Vault.List(r.Context(), userID, r.URL.Query().Get("fileType"), isDecoyRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, filesResponse{Success: true, Files: e.toFileViews(files)})
}

func (e *Env) HandleDeleteFile(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		render.JSONError(w, "User ID required", http.StatusBadRequest)
		return
	}

	if err := e.Vault.Delete(r.Context(), userID, r.PathValue("fileId")); err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, statusResponse{Success: true})
}

type exportResponse struct {
	Success     bool       `json:"success"`
	Files       []fileView `json:"files"`
	DownloadURL string     `json:"downloadUrl"`
	ExpiresAt   time.Time  `json:"expiresAt"`
}

func (e *Env) HandleExport(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if !e.requireAccount(w, r, userID) {
		return
	}

	res, err := e.Vault.Export(r.Context(), userID, r.URL.Query().Get("fileType"), isDecoyRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, exportResponse{
		Success:     true,
		Files:       e.toFileViews(res.Files),
		DownloadURL: res.DownloadURL,
		ExpiresAt:   res.ExpiresAt,
	})
}

type statsView struct {
	Used      int64          `json:"used"`
	Total     int64          `json:"total"`
	FileCount map[string]int `json:"fileCount"`
}

type statsResponse struct {
	Success bool      `json:"success"`
	Stats   statsView `json:"stats"`
}

func (e *Env) HandleStats(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if !e.requireAccount(w, r, userID) {
		return
	}

	s, err := e.Vault.Stats(r.Context(), userID, isDecoyRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	counts := make(map[string]int, len(s.FileCount))
	for ft, n := range s.FileCount {
		counts[string(ft)] = n
	}

	render.JSON(w, http.StatusOK, statsResponse{
		Success: true,
		Stats: statsView{
			Used:      s.Used,
			Total:     s.Total,
			FileCount: counts,
		},
	})
}

type createFolderRequest struct {
	UserID   string `json:"userId"`
	FileType string `json:"fileType"`
	Name     string `json:"name"`
	IsDecoy  bool   `json:"isDecoy"`
}

type folderResponse struct {
	Success bool     `json:"success"`
	Folder  fileView `json:"folder"`
}

func (e *Env) HandleCreateFolder(w http.ResponseWriter, r *http.Request) {
	var req createFolderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.FileType == "" {
		render.JSONError(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	if !e.requireAccount(w, r, req.UserID) {
		return
	}

	folder, err := e.Vault.CreateFolder(r.Context(), vault.FolderRequest{
		OwnerID:  req.UserID,
		FileType: account.FileType(req.FileType),
		Name:     req.Name,
		IsDecoy:  req.IsDecoy,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, folderResponse{Success: true, Folder: e.toFileView(folder)})
}

type shareResponse struct {
	Success   bool      `json:"success"`
	ShareURL  string    `json:"shareUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (e *Env) HandleShareFile(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		render.JSONError(w, "User ID required", http.StatusBadRequest)
		return
	}

	link, err := e.Vault.Share(r.Context(), userID, r.PathValue("fileId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, shareResponse{
		Success:   true,
		ShareURL:  link.URL,
		ExpiresAt: link.ExpiresAt,
	})
}
