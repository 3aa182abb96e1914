package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "oba/pkg/domain-errors"
)

type stubUpstream struct {
	status int
	msg    string
}

func (e stubUpstream) Error() string       { return fmt.Sprintf("upstream %d", e.status) }
func (e stubUpstream) UpstreamStatus() int { return e.status }
func (e stubUpstream) DevMessage() string  { return e.msg }

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
		body := decode(t, w)
		if body["error"] != "internal_error" {
			t.Fatalf("expected error code internal_error, got %q", body["error"])
		}
		if _, ok := body["error_description"]; ok {
			t.Fatalf("expected error_description to be omitted for internal errors")
		}
	})

	t.Run("bad request includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid input"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
		body := decode(t, w)
		if body["error"] != "bad_request" {
			t.Fatalf("expected error code bad_request, got %q", body["error"])
		}
		if body["error_description"] != "invalid input" {
			t.Fatalf("expected error_description to be returned for bad request")
		}
	})

	t.Run("login failed maps to 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeLoginFailed, "Login Failed!"))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("upstream timeout becomes gone", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, fmt.Errorf("cms: %w", stubUpstream{status: http.StatusRequestTimeout}))

		if w.Code != http.StatusGone {
			t.Fatalf("expected status %d, got %d", http.StatusGone, w.Code)
		}
		if body := decode(t, w); body["error_description"] != "Resource expired" {
			t.Fatalf("unexpected description %q", body["error_description"])
		}
	})

	t.Run("upstream status and dev message are kept", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, stubUpstream{status: http.StatusNotFound, msg: "Payment not found"})

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
		if body := decode(t, w); body["error_description"] != "Payment not found" {
			t.Fatalf("unexpected description %q", body["error_description"])
		}
	})

	t.Run("unclassified error carries raw message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("boom"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
		if body := decode(t, w); body["error_description"] != "boom" {
			t.Fatalf("unexpected description %q", body["error_description"])
		}
	})
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	t.Run("valid body decodes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
		rec := httptest.NewRecorder()
		got, ok := DecodeJSON[body](rec, req)
		require.True(t, ok)
		assert.Equal(t, "x", got.Name)
	})

	t.Run("invalid body writes bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		rec := httptest.NewRecorder()
		_, ok := DecodeJSON[body](rec, req)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
