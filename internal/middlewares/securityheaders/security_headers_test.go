package securityheaders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_ServeHTTP(t *testing.T) {
	fakeHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	m := NewSecurityHeadersMiddleware(fakeHandler)

	recorder := httptest.NewRecorder()
	req, err := http.NewRequestWithContext(context.TODO(), http.MethodGet, "/health", nil)
	require.NoError(t, err)

	m.ServeHTTP(recorder, req)

	resp := recorder.Result()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"success":true}`, recorder.Body.String())
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "no-referrer", resp.Header.Get("Referrer-Policy"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", resp.Header.Get("Content-Security-Policy"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
}
