package render

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	t.Run("alert email", func(t *testing.T) {
		out, err := Email("alert_email.gohtml", map[string]any{
			"Name":     "Bhavya",
			"Attempts": 3,
			"Time":     "2024-03-01 10:00:00 UTC",
			"SourceIP": "203.0.113.7",
		})
		require.NoError(t, err)

		assert.Contains(t, out, "<title>Unauthorized access attempt</title>")
		assert.Contains(t, out, "Hello Bhavya,")
		assert.Contains(t, out, "failed 3 times")
		assert.Contains(t, out, "2024-03-01 10:00:00 UTC")
		assert.Contains(t, out, "203.0.113.7")
	})

	t.Run("escapes input", func(t *testing.T) {
		out, err := Email("alert_email.gohtml", map[string]any{
			"Name": "<script>alert(1)</script>",
		})
		require.NoError(t, err)

		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "&lt;script&gt;")
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := Email("nope.gohtml", nil)
		assert.Error(t, err)
	})
}

func TestJSON(t *testing.T) {
	t.Run("basic example", func(t *testing.T) {
		w := httptest.NewRecorder()

		JSON(w, http.StatusCreated, map[string]any{"success": true, "n": 1})

		resp := w.Result()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"success":true,"n":1}`, w.Body.String())
	})

	t.Run("unencodable value", func(t *testing.T) {
		w := httptest.NewRecorder()

		JSON(w, http.StatusOK, map[string]any{"bad": math.Inf(1)})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Server error"}`, w.Body.String())
	})
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()

	JSONError(w, "test error message", http.StatusBadRequest)

	resp := w.Result()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"message":"test error message"}`, w.Body.String())
}
