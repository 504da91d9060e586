package cleaner

import (
	"strings"

	cErrors "canadata/pkg/clean-errors"
	"canadata/pkg/raw"
)

// PhoneNumber is a canonical North American phone number: digits only,
// optionally prefixed with "+1" when the input carried an explicit
// country-code indicator.
//
// Usage: construct via CleanPhoneNumber; direct casting bypasses validation.
type PhoneNumber string

// String returns the canonical string form.
func (p PhoneNumber) String() string {
	return string(p)
}

// phoneSeparators are the formatting characters stripped from phone
// numbers before validation.
var phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")

// nanpDigits is the subscriber number length under the North American
// Numbering Plan: area code plus seven digits.
const nanpDigits = 10

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CleanPhoneNumber normalizes and validates a phone number against the
// North American Numbering Plan.
//
// Formatting characters (spaces, dashes, dots, parentheses) are stripped;
// a leading "+" country-code indicator is preserved. Accepted shapes:
// 10 digits, 11 digits with a leading 1, or "+1" followed by 10 digits.
//
// Errors: empty_input for missing/blank values, type_mismatch for
// non-string values, invalid_format when non-digit characters remain
// after stripping, invalid_length when the digit count is outside the
// plan's bounds.
//
// Example:
//
//	CleanPhoneNumber(raw.String("(123) 456-7890"))
//	// Returns: PhoneNumber("1234567890")
func CleanPhoneNumber(v raw.Value) (PhoneNumber, error) {
	s, err := gate(v)
	if err != nil {
		return "", err
	}

	s = collapseSpaces(s)
	intl := strings.HasPrefix(s, "+")
	if intl {
		s = s[1:]
	}

	digits := phoneSeparators.Replace(s)
	if !allDigits(digits) {
		return "", cErrors.Newf(cErrors.CodeInvalidFormat, "%q contains non-digit characters", digits)
	}

	if intl {
		if len(digits) != nanpDigits+1 || digits[0] != '1' {
			return "", cErrors.Newf(cErrors.CodeInvalidLength, "expected +1 and %d digits, got %d digits", nanpDigits, len(digits))
		}
		return PhoneNumber("+" + digits), nil
	}

	switch {
	case len(digits) == nanpDigits:
		return PhoneNumber(digits), nil
	case len(digits) == nanpDigits+1 && digits[0] == '1':
		return PhoneNumber(digits), nil
	default:
		return "", cErrors.Newf(cErrors.CodeInvalidLength, "%d digits do not fit the numbering plan (%d, or %d with a leading 1)", len(digits), nanpDigits, nanpDigits+1)
	}
}
