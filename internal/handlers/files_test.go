package handlers

import (
	"archive/zip"
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadForm struct {
	userID      string
	fileType    string
	isDecoy     bool
	fileName    string
	contentType string
	contents    string
	noFile      bool
}

func uploadRequest(t *testing.T, f uploadForm) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if f.userID != "" {
		require.NoError(t, mw.WriteField("userId", f.userID))
	}
	if f.fileType != "" {
		require.NoError(t, mw.WriteField("fileType", f.fileType))
	}
	if f.isDecoy {
		require.NoError(t, mw.WriteField("isDecoy", "true"))
	}

	if !f.noFile {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+f.fileName+`"`)
		if f.contentType != "" {
			h.Set("Content-Type", f.contentType)
		}
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.contents))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func (te *testEnv) upload(t *testing.T, f uploadForm) map[string]any {
	w, body := te.do(t, uploadRequest(t, f))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, true, body["success"])

	file, ok := body["file"].(map[string]any)
	require.True(t, ok)
	return file
}

func filesIn(t *testing.T, body map[string]any) []map[string]any {
	raw, ok := body["files"].([]any)
	require.True(t, ok, "files should be a list")

	ret := make([]map[string]any, 0, len(raw))
	for _, f := range raw {
		m, ok := f.(map[string]any)
		require.True(t, ok)
		ret = append(ret, m)
	}
	return ret
}

func TestEnv_HandleUpload(t *testing.T) {
	t.Run("happy case", func(t *testing.T) {
		te := makeTestEnv(t)
		id := te.signup(t, "user@example.com")

		file := te.upload(t, uploadForm{
			userID:      id,
			fileType:    "photos",
			fileName:    "beach.jpg",
			contentType: "image/jpeg",
			contents:    "not really a jpeg",
		})

		assert.NotEmpty(t, file["id"])
		assert.Equal(t, "beach.jpg", file["name"])
		assert.Equal(t, "photos", file["type"])
		assert.Equal(t, false, file["isFolder"])
		assert.Equal(t, false, file["isDecoy"])
		assert.EqualValues(t, len("not really a jpeg"), file["size"])

		url, ok := file["url"].(string)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(url, "https://blobs.test/vault/photos/"+id+"/"), url)
		assert.True(t, strings.HasSuffix(url, "_beach.jpg"), url)

		te.blobs.lock.Lock()
		defer te.blobs.lock.Unlock()
		require.Len(t, te.blobs.objects, 1)
		for _, data := range te.blobs.objects {
			assert.Equal(t, "not really a jpeg", string(data))
		}
	})

	t.Run("decoy upload", func(t *testing.T) {
		te := makeTestEnv(t)
		id := te.signup(t, "user@example.com")

		file := te.upload(t, uploadForm{userID: id, fileType: "notes", isDecoy: true, fileName: "todo.txt", contents: "milk"})
		assert.Equal(t, true, file["isDecoy"])
	})

	t.Run("no file", func(t *testing.T) {
		te := makeTestEnv(t)
		id := te.signup(t, "user@example.com")

		w, body := te.do(t, uploadRequest(t, uploadForm{userID: id, fileType: "photos", noFile: true}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No file part", body["message"])
	})

	t.Run("not multipart", func(t *testing.T) {
		te := makeTestEnv(t)

		w, body := te.do(t, jsonRequest(t, http.MethodPost, "/upload", map[string]string{"userId": "x"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No file part", body["message"])
	})

	t.Run("missing file type", func(t *testing.T) {
		te := makeTestEnv(t)
		id := te.signup(t, "user@example.com")

		w, body := te.do(t, uploadRequest(t, uploadForm{userID: id, fileName: "a.txt", contents: "a"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing required fields", body["message"])
	})

	t.Run("unknown file type", func(t *testing.T) {
		te := makeTestEnv(t)
		id := te.signup(t, "user@example.com")

		w, body := te.do(t, uploadRequest(t, uploadForm{userID: id, fileType: "music", fileName: "a.mp3", contents: "a"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, `unknown file type "music"`, body["message"])
	})

	t.Run("unknown user", func(t *testing.T) {
		te := makeTestEnv(t)

		w, body := te.do(t, uploadRequest(t, uploadForm{
			userID:   "6f9619ff-8b86-d011-b42d-00c04fc964ff",
			fileType: "photos",
			fileName: "a.jpg",
			contents: "a",
		}))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", body["message"])
		assert.Empty(t, te.blobs.objects)
	})

	t.Run("too large", func(t *testing.T) {
		te := makeTestEnv(t)
		te.env.MaxUploadBytes = 512
		id := te.signup(t, "user@example.com")

		w, body := te.do(t, uploadRequest(t, uploadForm{
			userID:   id,
			fileType: "photos",
			fileName: "big.jpg",
			contents: strings.Repeat("x", 4096),
		}))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, "File too large", body["message"])
	})
}

func TestEnv_HandleListFiles(t *testing.T) {
	te := makeTestEnv(t)
	id := te.signup(t, "user@example.com")

	te.upload(t, uploadForm{userID: id, fileType: "photos", fileName: "a.jpg", contents: "a"})
	te.upload(t, uploadForm{userID: id, fileType: "notes", fileName: "b.txt", contents: "b"})
	te.upload(t, uploadForm{userID: id, fileType: "photos", isDecoy: true, fileName: "cat.jpg", contents: "c"})

	_, body := te.do(t, httptest.NewRequest(http.MethodGet, "/files?userId="+id, nil))
	assert.Len(t, filesIn(t, body), 2)

	_, body = te.do(t, httptest.NewRequest(http.MethodGet, "/files?userId="+id+"&fileType=photos", nil))
	files := filesIn(t, body)
	require.Len(t, files, 1)
	assert.Equal(t, "a.jpg", files[0]["name"])

	_, body = te.do(t, httptest.NewRequest(http.MethodGet, "/files?userId="+id+"&fileType=all&isDecoy=true", nil))
	files = filesIn(t, body)
	require.Len(t, files, 1)
	assert.Equal(t, "cat.jpg", files[0]["name"])

	_, body = te.do(t, httptest.NewRequest(http.MethodGet, "/files?userId="+id+"&fileType=videos", nil))
	assert.Empty(t, filesIn(t, body))

	w, body := te.do(t, httptest.NewRequest(http.MethodGet, "/files?userId="+id+"&fileType=bogus", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `unknown file type "bogus"`, body["message"])

	w, body = te.do(t, httptest.NewRequest(http.MethodGet, "/files", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User ID required", body["message"])
}

func TestEnv_HandleDeleteFile(t *testing.T) {
	te := makeTestEnv(t)
	owner := te.signup(t, "owner@example.com")
	other := te.signup(t, "other@example.com")

	file := te.upload(t, uploadForm{userID: owner, fileType: "documents", fileName: "tax.pdf", contents: "1040"})
	fileID, ok := file["id"].(string)
	require.True(t, ok)

	w, body := te.do(t, httptest.NewRequest(http.MethodDelete, "/files/"+fileID+"?userId="+other, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found", body["message"])

	w, body = te.do(t, httptest.NewRequest(http.MethodDelete, "/files/"+fileID, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User ID required", body["message"])

	w, body = te.do(t, httptest.NewRequest(http.MethodDelete, "/files/"+fileID+"?userId="+owner, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Empty(t, te.blobs.objects)

	w, _ = te.do(t, httptest.NewRequest(http.MethodDelete, "/files/"+fileID+"?userId="+owner, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEnv_HandleExport(t *testing.T) {
	te := makeTestEnv(t)
	id := te.signup(t, "user@example.com")

	te.upload(t, uploadForm{userID: id, fileType: "photos", fileName: "a.jpg", contents: "aaa"})
	te.upload(t, uploadForm{userID: id, fileType: "notes", fileName: "b.txt", contents: "bbb"})

	w, body := te.do(t, httptest.NewRequest(http.MethodGet, "/export?userId="+id, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, body["success"])
	assert.Len(t, filesIn(t, body), 2)
	assert.NotEmpty(t, body["expiresAt"])

	url, ok := body["downloadUrl"].(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(url, "https://blobs.test/vault/exports/"+id+"/"), url)

	key := strings.TrimSuffix(strings.TrimPrefix(url, "https://blobs.test/vault/"), "?signed=1")
	te.blobs.lock.Lock()
	archive, ok := te.blobs.objects[key]
	te.blobs.lock.Unlock()
	require.True(t, ok, "archive should have been stored at %s", key)

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	assert.Len(t, zr.File, 2)

	w, body = te.do(t, httptest.NewRequest(http.MethodGet, "/export?userId=6f9619ff-8b86-d011-b42d-00c04fc964ff", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", body["message"])
}

func TestEnv_HandleStats(t *testing.T) {
	te := makeTestEnv(t)
	id := te.signup(t, "user@example.com")

	te.upload(t, uploadForm{userID: id, fileType: "photos", fileName: "a.jpg", contents: "12345"})
	te.upload(t, uploadForm{userID: id, fileType: "photos", fileName: "b.jpg", contents: "123"})
	te.upload(t, uploadForm{userID: id, fileType: "photos", isDecoy: true, fileName: "c.jpg", contents: "1"})

	w, body := te.do(t, httptest.NewRequest(http.MethodGet, "/stats?userId="+id, nil))
	require.Equal(t, http.StatusOK, w.Code)

	stats, ok := body["stats"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 8, stats["used"])
	assert.EqualValues(t, 10<<30, stats["total"])

	counts, ok := stats["fileCount"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, counts["photos"])
	assert.EqualValues(t, 0, counts["notes"])

	_, body = te.do(t, httptest.NewRequest(http.MethodGet, "/stats?userId="+id+"&isDecoy=true", nil))
	stats, ok = body["stats"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, stats["used"])
}

func TestEnv_HandleCreateFolder(t *testing.T) {
	t.Run("happy case", func(t *testing.T) {
		te := makeTestEnv(t)
		id := te.signup(t, "user@example.com")

		w, body := te.do(t, jsonRequest(t, http.MethodPost, "/folders", map[string]any{
			"userId":   id,
			"fileType": "photos",
			"name":     "Holiday",
		}))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, true, body["success"])

		folder, ok := body["folder"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Holiday", folder["name"])
		assert.Equal(t, true, folder["isFolder"])
		assert.Equal(t, "", folder["url"])
		assert.EqualValues(t, 0, folder["size"])

		te.upload(t, uploadForm{userID: id, fileType: "photos", fileName: "a.jpg", contents: "12345"})

		_, body = te.do(t, httptest.NewRequest(http.MethodGet, "/files?userId="+id+"&fileType=photos", nil))
		assert.Len(t, filesIn(t, body), 2)

		_, body = te.do(t, httptest.NewRequest(http.MethodGet, "/stats?userId="+id, nil))
		stats, ok := body["stats"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 5, stats["used"])
		counts, ok := stats["fileCount"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 1, counts["photos"])
	})

	t.Run("decoy folders stay in the decoy set", func(t *testing.T) {
		te := makeTestEnv(t)
		id := te.signup(t, "user@example.com")

		w, _ := te.do(t, jsonRequest(t, http.MethodPost, "/folders", map[string]any{
			"userId":   id,
			"fileType": "notes",
			"name":     "Recipes",
			"isDecoy":  true,
		}))
		require.Equal(t, http.StatusOK, w.Code)

		_, body := te.do(t, httptest.NewRequest(http.MethodGet, "/files?userId="+id, nil))
		assert.Empty(t, filesIn(t, body))

		_, body = te.do(t, httptest.NewRequest(http.MethodGet, "/files?userId="+id+"&isDecoy=true", nil))
		files := filesIn(t, body)
		require.Len(t, files, 1)
		assert.Equal(t, "Recipes", files[0]["name"])
	})

	t.Run("name rules", func(t *testing.T) {
		te := makeTestEnv(t)
		id := te.signup(t, "user@example.com")

		w, body := te.do(t, jsonRequest(t, http.MethodPost, "/folders", map[string]any{"userId": id, "fileType": "notes", "name": " "}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Folder name is required", body["message"])

		w, body = te.do(t, jsonRequest(t, http.MethodPost, "/folders", map[string]any{"userId": id, "fileType": "notes", "name": "a/b"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, `Folder name cannot contain / or \ characters`, body["message"])
	})

	t.Run("missing fields", func(t *testing.T) {
		te := makeTestEnv(t)
		id := te.signup(t, "user@example.com")

		w, body := te.do(t, jsonRequest(t, http.MethodPost, "/folders", map[string]any{"userId": id, "name": "x"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing required fields", body["message"])

		w, body = te.do(t, jsonRequest(t, http.MethodPost, "/folders", map[string]any{"fileType": "notes", "name": "x"}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "User ID required", body["message"])
	})

	t.Run("unknown user", func(t *testing.T) {
		te := makeTestEnv(t)

		w, body := te.do(t, jsonRequest(t, http.MethodPost, "/folders", map[string]any{
			"userId":   "6f9619ff-8b86-d011-b42d-00c04fc964ff",
			"fileType": "notes",
			"name":     "x",
		}))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", body["message"])
	})
}

func TestEnv_HandleShareFile(t *testing.T) {
	te := makeTestEnv(t)
	owner := te.signup(t, "owner@example.com")
	other := te.signup(t, "other@example.com")

	file := te.upload(t, uploadForm{userID: owner, fileType: "documents", fileName: "tax.pdf", contents: "1040"})
	fileID, ok := file["id"].(string)
	require.True(t, ok)

	w, body := te.do(t, httptest.NewRequest(http.MethodGet, "/files/"+fileID+"/share?userId="+owner, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["expiresAt"])

	shareURL, ok := body["shareUrl"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(shareURL, "https://blobs.test/vault/documents/"+owner+"/"), shareURL)
	assert.True(t, strings.HasSuffix(shareURL, "_tax.pdf?signed=1"), shareURL)

	w, body = te.do(t, httptest.NewRequest(http.MethodGet, "/files/"+fileID+"/share?userId="+other, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found", body["message"])

	w, body = te.do(t, httptest.NewRequest(http.MethodGet, "/files/"+fileID+"/share", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User ID required", body["message"])

	_, body = te.do(t, jsonRequest(t, http.MethodPost, "/folders", map[string]any{"userId": owner, "fileType": "documents", "name": "Taxes"}))
	folder, ok := body["folder"].(map[string]any)
	require.True(t, ok)
	folderID, ok := folder["id"].(string)
	require.True(t, ok)

	w, body = te.do(t, httptest.NewRequest(http.MethodGet, "/files/"+folderID+"/share?userId="+owner, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "folders can not be shared", body["message"])
}

// slowUpload streams a multipart upload with a pause in the middle of the file
func slowUpload(t *testing.T, url string, userID string, pause time.Duration) (*http.Response, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		_ = mw.WriteField("userId", userID)
		_ = mw.WriteField("fileType", "videos")
		part, err := mw.CreateFormFile("file", "clip.mp4")
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		_, _ = part.Write([]byte("first half "))
		time.Sleep(pause)
		_, _ = part.Write([]byte("second half"))
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, url+"/upload", pr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return http.DefaultClient.Do(req)
}

func TestEnv_HandleUpload_ReadDeadline(t *testing.T) {
	t.Run("uploads outlive the server read timeout", func(t *testing.T) {
		te := makeTestEnv(t)
		id := te.signup(t, "user@example.com")
		te.env.UploadTimeout = 5 * time.Second

		srv := httptest.NewUnstartedServer(te.env.BuildRouter())
		srv.Config.ReadTimeout = 100 * time.Millisecond
		srv.Start()
		t.Cleanup(srv.Close)

		resp, err := slowUpload(t, srv.URL, id, 300*time.Millisecond)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		_, body := te.do(t, httptest.NewRequest(http.MethodGet, "/files?userId="+id, nil))
		files := filesIn(t, body)
		require.Len(t, files, 1)
		assert.EqualValues(t, len("first half second half"), files[0]["size"])
	})

	t.Run("without an upload timeout the server timeout applies", func(t *testing.T) {
		te := makeTestEnv(t)
		id := te.signup(t, "user@example.com")

		srv := httptest.NewUnstartedServer(te.env.BuildRouter())
		srv.Config.ReadTimeout = 100 * time.Millisecond
		srv.Start()
		t.Cleanup(srv.Close)

		resp, err := slowUpload(t, srv.URL, id, 300*time.Millisecond)
		if err == nil {
			defer resp.Body.Close()
			assert.NotEqual(t, http.StatusOK, resp.StatusCode)
		}

		_, body := te.do(t, httptest.NewRequest(http.MethodGet, "/files?userId="+id, nil))
		assert.Empty(t, filesIn(t, body))
	})
}
