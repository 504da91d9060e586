// Package httputil centralizes JSON encoding and error translation for
// the HTTP transport.
package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	cErrors "canadata/pkg/clean-errors"
)

// maxBodyBytes caps request bodies; cleaning payloads are single scalars.
const maxBodyBytes = 1 << 16

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the wire shape for failures. Internal errors omit the
// description so implementation details never leak.
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteError translates a coded error into an HTTP response. Validation
// codes map to 422, bad requests to 400, and everything else (including
// uncoded errors) to 500 with the description withheld.
func WriteError(w http.ResponseWriter, err error) {
	code, ok := cErrors.CodeOf(err)
	if !ok {
		code = cErrors.CodeInternal
	}

	var ce *cErrors.Error
	description := ""
	if errors.As(err, &ce) {
		description = ce.Message
	}

	switch code {
	case cErrors.CodeBadRequest:
		WriteJSON(w, http.StatusBadRequest, errorResponse{Error: string(code), ErrorDescription: description})
	case cErrors.CodeEmptyInput, cErrors.CodeTypeMismatch, cErrors.CodeInvalidFormat,
		cErrors.CodeInvalidLength, cErrors.CodeInvalidDate:
		WriteJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: string(code), ErrorDescription: description})
	default:
		WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: string(cErrors.CodeInternal)})
	}
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields
// and oversized payloads. Failures come back as bad_request coded errors.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return cErrors.Newf(cErrors.CodeBadRequest, "invalid JSON body: %v", err)
	}
	return nil
}
