// Package cleaner provides four independent normalization routines for
// Canadian record data: postal codes, free-text locations, dates, and
// phone numbers.
//
// Each cleaner is a pure function over a single raw.Value. Calls share no
// state and are safe to invoke concurrently. A cleaner returns either the
// canonical form of its input or a coded error from pkg/clean-errors;
// cleaning a cleaner's own output is always a no-op.
//
// Common input policy: unsupported types fail with type_mismatch; missing,
// blank, and whitespace-only values fail with empty_input. Input text is
// Unicode NFC normalized and interior whitespace is collapsed before any
// format-specific work.
package cleaner

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	cErrors "canadata/pkg/clean-errors"
	"canadata/pkg/raw"
)

// gate applies the common input policy and returns the trimmed, NFC
// normalized payload.
func gate(v raw.Value) (string, error) {
	switch v.Kind() {
	case raw.KindUnsupported:
		return "", cErrors.Newf(cErrors.CodeTypeMismatch, "expected a string, got %s", v.TypeName())
	case raw.KindMissing:
		return "", cErrors.New(cErrors.CodeEmptyInput, "value is missing")
	}

	s, _ := v.Str()
	s = strings.TrimSpace(norm.NFC.String(s))
	if s == "" {
		return "", cErrors.New(cErrors.CodeEmptyInput, "value is blank")
	}
	return s, nil
}

// collapseSpaces rewrites any run of whitespace as a single space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
