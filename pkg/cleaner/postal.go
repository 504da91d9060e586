package cleaner

import (
	"regexp"
	"strings"

	cErrors "canadata/pkg/clean-errors"
	"canadata/pkg/raw"
)

// PostalCode is a canonical Canadian postal code: uppercase, forward
// sortation area and local delivery unit separated by a single space
// ("K1A 0B1").
//
// Usage: construct via CleanPostalCode; direct casting bypasses validation.
type PostalCode string

// String returns the canonical string form.
func (p PostalCode) String() string {
	return string(p)
}

// Canadian postal codes never use D, F, I, O, Q, or U in any letter
// position; the first letter additionally excludes W and Z.
var postalCodePattern = regexp.MustCompile(`^[ABCEGHJKLMNPRSTVXY][0-9][ABCEGHJKLMNPRSTVWXYZ][0-9][ABCEGHJKLMNPRSTVWXYZ][0-9]$`)

// postalSeparators are the formatting characters stripped before
// validation. Anything else left over fails the pattern check.
var postalSeparators = strings.NewReplacer(" ", "", "-", "", ".", "")

// CleanPostalCode normalizes and validates a Canadian postal code.
//
// Whitespace and separator punctuation are stripped and the value is
// uppercased before matching the ANA NAN pattern.
//
// Errors: empty_input for missing/blank values, type_mismatch for
// non-string values, invalid_format when the normalized value does not
// match the Canadian pattern.
//
// Example:
//
//	CleanPostalCode(raw.String("  k1a0b1 "))
//	// Returns: PostalCode("K1A 0B1")
func CleanPostalCode(v raw.Value) (PostalCode, error) {
	s, err := gate(v)
	if err != nil {
		return "", err
	}

	s = strings.ToUpper(postalSeparators.Replace(collapseSpaces(s)))
	if !postalCodePattern.MatchString(s) {
		return "", cErrors.Newf(cErrors.CodeInvalidFormat, "%q is not a valid Canadian postal code", s)
	}

	return PostalCode(s[:3] + " " + s[3:]), nil
}
