package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cErrors "canadata/pkg/clean-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("db failed"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "internal_error" {
			t.Fatalf("expected error code internal_error, got %q", body["error"])
		}
		if _, ok := body["error_description"]; ok {
			t.Fatalf("expected error_description to be omitted for internal errors")
		}
	})

	t.Run("bad request includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, cErrors.New(cErrors.CodeBadRequest, "invalid JSON body"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "bad_request" {
			t.Fatalf("expected error code bad_request, got %q", body["error"])
		}
		if body["error_description"] != "invalid JSON body" {
			t.Fatalf("expected error_description to be returned for bad request")
		}
	})

	t.Run("validation codes map to 422", func(t *testing.T) {
		for _, code := range []cErrors.Code{
			cErrors.CodeEmptyInput,
			cErrors.CodeTypeMismatch,
			cErrors.CodeInvalidFormat,
			cErrors.CodeInvalidLength,
			cErrors.CodeInvalidDate,
		} {
			w := httptest.NewRecorder()
			WriteError(w, cErrors.New(code, "nope"))
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("code %s: expected status %d, got %d", code, http.StatusUnprocessableEntity, w.Code)
			}

			var body map[string]string
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body["error"] != string(code) {
				t.Fatalf("expected error code %s, got %q", code, body["error"])
			}
		}
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Run("rejects unknown fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value":"x","extra":1}`))
		var dst struct {
			Value any `json:"value"`
		}
		err := DecodeJSON(req, &dst)
		if !cErrors.HasCode(err, cErrors.CodeBadRequest) {
			t.Fatalf("expected bad_request, got %v", err)
		}
	})

	t.Run("decodes valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value":"K1A 0B1"}`))
		var dst struct {
			Value any `json:"value"`
		}
		if err := DecodeJSON(req, &dst); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dst.Value != "K1A 0B1" {
			t.Fatalf("expected decoded value, got %v", dst.Value)
		}
	})
}
