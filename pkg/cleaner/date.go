package cleaner

import (
	"time"

	cErrors "canadata/pkg/clean-errors"
	"canadata/pkg/raw"
)

// Date is a canonical calendar date without a time-of-day component.
//
// Usage: construct via CleanDate; the zero Date is not a valid date.
type Date struct {
	t time.Time
}

// ISO returns the canonical ISO 8601 form (2006-01-02).
func (d Date) ISO() string {
	return d.t.Format("2006-01-02")
}

// String returns the canonical ISO form.
func (d Date) String() string {
	return d.ISO()
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// defaultDateLayouts is the fixed precedence order in which candidate
// layouts are attempted. First match wins, so an ambiguous slash-separated
// value like "01/02/2023" always resolves day-first (2023-02-01), matching
// Canadian conventions. The order is policy, not heuristics: it never
// varies per call.
//
// The list covers ISO 8601, day-first and year-first slash-separated
// numerics (single-digit day/month accepted), and English month-name
// variants.
var defaultDateLayouts = []string{
	"2006-01-02",
	"2/1/2006",
	"2006/1/2",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// Year bounds applied after parsing. Values this far out of range are
// almost always data-entry noise (two-digit years, serial numbers).
const (
	defaultMinYear = 1900
	defaultMaxYear = 2100
)

// DateCleaner parses heterogeneous date strings into canonical Dates. The
// layout list and year bounds are immutable configuration fixed at
// construction.
type DateCleaner struct {
	layouts []string
	minYear int
	maxYear int
}

// DateOption customizes a DateCleaner at construction.
type DateOption func(*DateCleaner)

// WithLayouts replaces the layout precedence list. Layouts are tried in
// the order given.
func WithLayouts(layouts ...string) DateOption {
	return func(c *DateCleaner) {
		c.layouts = append([]string(nil), layouts...)
	}
}

// WithYearRange replaces the accepted year bounds (inclusive).
func WithYearRange(min, max int) DateOption {
	return func(c *DateCleaner) {
		c.minYear = min
		c.maxYear = max
	}
}

// NewDateCleaner constructs a date cleaner with the default layout
// precedence and year bounds.
func NewDateCleaner(opts ...DateOption) *DateCleaner {
	c := &DateCleaner{
		layouts: defaultDateLayouts,
		minYear: defaultMinYear,
		maxYear: defaultMaxYear,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean parses a raw date value into its canonical form.
//
// Each configured layout is tried in precedence order; the first to parse
// wins. time.Parse enforces calendar ranges, including days-in-month and
// leap years, so "2023-02-29" fails while "2024-02-29" succeeds.
//
// Errors: empty_input for missing/blank values, type_mismatch for
// non-string values, invalid_date when no layout parses or the year is
// outside the configured bounds.
func (c *DateCleaner) Clean(v raw.Value) (Date, error) {
	s, err := gate(v)
	if err != nil {
		return Date{}, err
	}
	s = collapseSpaces(s)

	for _, layout := range c.layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if y := t.Year(); y < c.minYear {
			return Date{}, cErrors.Newf(cErrors.CodeInvalidDate, "year %d is below the minimum %d", y, c.minYear)
		} else if y > c.maxYear {
			return Date{}, cErrors.Newf(cErrors.CodeInvalidDate, "year %d is above the maximum %d", y, c.maxYear)
		}
		return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}, nil
	}

	return Date{}, cErrors.Newf(cErrors.CodeInvalidDate, "%q matches no supported date format", s)
}

// defaultDate is the package-level cleaner behind CleanDate.
var defaultDate = NewDateCleaner()

// CleanDate parses a raw date value using the default layout precedence
// and year bounds. See DateCleaner.Clean.
//
// Example:
//
//	d, _ := CleanDate(raw.String("Feb 1, 2023"))
//	// d.ISO() returns "2023-02-01"
func CleanDate(v raw.Value) (Date, error) {
	return defaultDate.Clean(v)
}
