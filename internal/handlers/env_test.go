package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/safespace-vault/safespace/internal/argon"
	"github.com/safespace-vault/safespace/internal/db/sqlite"
	"github.com/safespace-vault/safespace/internal/gatekeeper"
	"github.com/safespace-vault/safespace/internal/mocks"
	"github.com/safespace-vault/safespace/internal/storage"
	"github.com/safespace-vault/safespace/internal/vault"
)

const (
	testPassword    = "hunter22 but longer"
	testSecurityKey = "the decoy key"
	testRemoteAddr  = "192.0.2.1:43210"
	testIPKey       = "ip|192.0.2.1"
)

type memBlobs struct {
	lock    sync.Mutex
	objects map[string][]byte
}

func (m *memBlobs) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	m.objects[key] = data
	return nil
}

func (m *memBlobs) Get(_ context.Context, key string) (io.ReadCloser, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memBlobs) Delete(_ context.Context, key string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memBlobs) PublicURL(key string) string {
	return "https://blobs.test/vault/" + key
}

func (m *memBlobs) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://blobs.test/vault/" + key + "?signed=1", nil
}

type testEnv struct {
	env   *Env
	store *sqlite.SQLite
	blobs *memBlobs
	ll    *mocks.MockLoginLimiter
}

func makeTestEnv(t *testing.T) *testEnv {
	t.Cleanup(viper.Reset)
	viper.Set(argon.MemoryKey, 1024)
	viper.Set(argon.IterationKey, 1)
	viper.Set(argon.ParallelismKey, 1)

	store, err := sqlite.New(filepath.Join(t.TempDir(), "safespace.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	blobs := &memBlobs{objects: map[string][]byte{}}
	gk := gatekeeper.New(store, mocks.NewMockNotifier(t), gatekeeper.WithAlertThreshold(1000))
	t.Cleanup(gk.Wait)

	ll := mocks.NewMockLoginLimiter(t)

	return &testEnv{
		env: &Env{
			Database:     store,
			Gatekeeper:   gk,
			Vault:        vault.New(store, blobs),
			LoginLimiter: ll,
		},
		store: store,
		blobs: blobs,
		ll:    ll,
	}
}

func (te *testEnv) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	req.RemoteAddr = testRemoteAddr
	w := httptest.NewRecorder()
	te.env.BuildRouter().ServeHTTP(w, req)

	var body map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func jsonRequest(t *testing.T, method string, path string, v any) *http.Request {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (te *testEnv) signup(t *testing.T, email string) string {
	w, body := te.do(t, jsonRequest(t, http.MethodPost, "/signup", map[string]string{
		"name":        "Test User",
		"email":       email,
		"phone":       "555-0100",
		"password":    testPassword,
		"securityKey": testSecurityKey,
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, true, body["success"])

	a, err := te.store.GetAccountByEmail(context.TODO(), email)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a.ID
}

func TestEnv_BuildRouter(t *testing.T) {
	t.Run("security headers", func(t *testing.T) {
		te := makeTestEnv(t)
		w, _ := te.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("security headers can be disabled", func(t *testing.T) {
		te := makeTestEnv(t)
		viper.Set("server.disable_security_headers", true)

		w, _ := te.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Empty(t, w.Header().Get("X-Frame-Options"))
	})

	t.Run("cors", func(t *testing.T) {
		te := makeTestEnv(t)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://frontend.example.com")

		w, _ := te.do(t, req)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wrong method", func(t *testing.T) {
		te := makeTestEnv(t)
		w, _ := te.do(t, httptest.NewRequest(http.MethodGet, "/login", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestEnv_HandleHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		te := makeTestEnv(t)
		w, body := te.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["success"])
	})

	t.Run("database down", func(t *testing.T) {
		te := makeTestEnv(t)
		db := mocks.NewMockDB(t)
		db.On("Ping", mock.Anything).Return(assert.AnError)
		te.env.Database = db

		w, body := te.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Database unavailable", body["message"])
	})
}

func TestValidationMessage(t *testing.T) {
	err := gatekeeper.ErrValidation
	assert.Equal(t, "Missing required fields", validationMessage(err, gatekeeper.ErrValidation))

	_, err = gatekeeper.New(mocks.NewMockDB(t), mocks.NewMockNotifier(t)).Register(context.TODO(), gatekeeper.RegisterRequest{})
	assert.Equal(t, "name is required", validationMessage(err, gatekeeper.ErrValidation))
}
