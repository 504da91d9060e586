package cleaner

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	pstrings "canadata/pkg/platform/strings"
	"canadata/pkg/raw"
)

// Location is a canonical place-name string. When a Canadian province or
// territory is recognized in the input, the form is
// "<Municipality>, <XX>" with the official two-letter code; otherwise the
// input is normalized syntactically (title case, collapsed whitespace)
// and returned as-is.
//
// Usage: construct via CleanLocation; direct casting bypasses
// normalization.
type Location string

// String returns the canonical string form.
func (l Location) String() string {
	return string(l)
}

// defaultProvinceAliases maps each official two-letter province/territory
// code to the spellings and abbreviations it is known by. Adapted from the
// Canadian postal abbreviations for provinces and territories and the
// federal writing-tips list.
var defaultProvinceAliases = map[string][]string{
	"AB": {"ab", "alberta", "alta.", "alb."},
	"BC": {"bc", "british columbia", "c.-b."},
	"MB": {"mb", "manitoba", "man."},
	"NB": {"nb", "new brunswick", "n.-b."},
	"NL": {"nl", "newfoundland and labrador", "nfld.", "lab.", "t.-n.-l.", "newfoundland", "labrador", "nfld. lab."},
	"NT": {"nt", "northwest territories", "northwest territory", "north west territories", "north west territory", "nw territories", "nw territory", "n.w.t", "t.n.-o.", "nw"},
	"NS": {"ns", "nova scotia", "n.-e"},
	"NU": {"nu", "nunavut", "nvt."},
	"ON": {"on", "ontario", "ont."},
	"PE": {"pe", "prince edward island", "prince edward", "p.e.i", "i.-p.-e."},
	"QC": {"qc", "quebec", "que.", "pq"},
	"SK": {"sk", "saskatchewan", "sask."},
	"YT": {"yt", "yukon", "yuk.", "yn", "yk"},
}

// defaultSimilarityThreshold is the minimum Levenshtein similarity for a
// fuzzy province match. 0.85 admits single-character typos in full names
// ("alberts" scores 0.857 against "alberta") while keeping two-letter
// codes exact-match only.
const defaultSimilarityThreshold = 0.85

// Compass-direction expansion applied to the leading word(s) of a
// municipality name, matching Statistics Canada place-name style.
var (
	compassTwoWord = map[string]string{
		"north west": "Northwest",
		"north east": "Northeast",
		"south west": "Southwest",
		"south east": "Southeast",
	}
	compassSingle = map[string]string{
		"n":         "North",
		"s":         "South",
		"e":         "East",
		"w":         "West",
		"nw":        "Northwest",
		"ne":        "Northeast",
		"sw":        "Southwest",
		"se":        "Southeast",
		"north":     "North",
		"south":     "South",
		"east":      "East",
		"west":      "West",
		"northwest": "Northwest",
		"northeast": "Northeast",
		"southwest": "Southwest",
		"southeast": "Southeast",
	}
)

type aliasEntry struct {
	alias string
	code  string
}

// LocationCleaner normalizes free-text place names. The alias table and
// similarity threshold are immutable configuration fixed at construction;
// a cleaner is safe for concurrent use.
type LocationCleaner struct {
	exact     map[string]string
	fuzzy     []aliasEntry
	threshold float64
	lev       *metrics.Levenshtein
}

// LocationOption customizes a LocationCleaner at construction.
type LocationOption func(*locationConfig)

type locationConfig struct {
	aliases   map[string][]string
	threshold float64
}

// WithAliases replaces the province/territory alias table. Keys are the
// canonical codes, values the spellings that resolve to them.
func WithAliases(aliases map[string][]string) LocationOption {
	return func(c *locationConfig) {
		c.aliases = aliases
	}
}

// WithSimilarityThreshold replaces the minimum similarity (0..1) for
// fuzzy province matching.
func WithSimilarityThreshold(threshold float64) LocationOption {
	return func(c *locationConfig) {
		c.threshold = threshold
	}
}

// NewLocationCleaner constructs a location cleaner with the Canadian
// province/territory alias table and the default similarity threshold.
func NewLocationCleaner(opts ...LocationOption) *LocationCleaner {
	cfg := locationConfig{
		aliases:   defaultProvinceAliases,
		threshold: defaultSimilarityThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &LocationCleaner{
		exact:     make(map[string]string),
		threshold: cfg.threshold,
		lev:       metrics.NewLevenshtein(),
	}

	codes := make([]string, 0, len(cfg.aliases))
	for code := range cfg.aliases {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		spellings := pstrings.DedupeAndTrimLower(append([]string{code}, cfg.aliases[code]...))
		for _, alias := range spellings {
			norm := normalizeAlias(alias)
			c.exact[norm] = code
			c.exact[stripSpaces(norm)] = code
			c.fuzzy = append(c.fuzzy, aliasEntry{alias: norm, code: code})
		}
	}

	return c
}

// normalizeAlias lowercases, strips periods, and collapses whitespace.
func normalizeAlias(s string) string {
	return collapseSpaces(strings.ReplaceAll(strings.ToLower(s), ".", ""))
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// Clean normalizes a raw place-name value.
//
// A trailing or comma-separated province/territory is resolved through the
// alias table, first by exact lookup and then by Levenshtein similarity,
// and rewritten as the two-letter code. Leading compass abbreviations in
// the municipality are expanded ("NW City" becomes "Northwest City").
// Text in which no province is recognized is still valid: it is returned
// title-cased with collapsed whitespace, since free-text municipalities
// cannot be validated against a closed list.
//
// Errors: empty_input for missing/blank values, type_mismatch for
// non-string values. Unrecognized place names are not an error.
//
// Example:
//
//	CleanLocation(raw.String("quebec city, Quebec"))
//	// Returns: Location("Quebec City, QC")
func (c *LocationCleaner) Clean(v raw.Value) (Location, error) {
	s, err := gate(v)
	if err != nil {
		return "", err
	}
	s = collapseSpaces(s)

	// Whole input naming a province resolves to the bare code.
	if code, ok := c.resolveRegion(s); ok {
		return Location(code), nil
	}

	// "Municipality, Region" split at the last comma.
	if i := strings.LastIndex(s, ","); i >= 0 {
		muni := strings.TrimSpace(s[:i])
		region := strings.TrimSpace(s[i+1:])
		if code, ok := c.resolveRegion(region); ok && muni != "" {
			return Location(c.municipality(muni) + ", " + code), nil
		}
	}

	// No comma, or the comma split did not resolve: scan trailing word
	// windows, longest first, for a province name.
	words := strings.Fields(s)
	maxWindow := len(words) - 1
	if maxWindow > 4 {
		maxWindow = 4
	}
	for k := maxWindow; k >= 1; k-- {
		region := strings.Join(words[len(words)-k:], " ")
		if code, ok := c.resolveRegion(region); ok {
			muni := strings.Join(words[:len(words)-k], " ")
			return Location(c.municipality(muni) + ", " + code), nil
		}
	}

	// Best-effort syntactic normalization only.
	return Location(titleCase(s)), nil
}

// resolveRegion maps a candidate region string to its two-letter code.
// Exact alias lookup is tried before fuzzy matching; a fuzzy match must
// clear the threshold and be unique across codes.
func (c *LocationCleaner) resolveRegion(region string) (string, bool) {
	q := normalizeAlias(region)
	if q == "" {
		return "", false
	}
	if code, ok := c.exact[q]; ok {
		return code, true
	}
	if code, ok := c.exact[stripSpaces(q)]; ok {
		return code, true
	}

	best, bestCode, tie := 0.0, "", false
	for _, entry := range c.fuzzy {
		score := strutil.Similarity(q, entry.alias, c.lev)
		switch {
		case score > best:
			best, bestCode, tie = score, entry.code, false
		case score == best && entry.code != bestCode:
			tie = true
		}
	}
	if best >= c.threshold && !tie {
		return bestCode, true
	}
	return "", false
}

// municipality canonicalizes the municipality part: title case, compass
// expansion on the leading word(s), and collapsing of a duplicated
// direction word left behind by the expansion ("W West City" becomes
// "West City").
func (c *LocationCleaner) municipality(muni string) string {
	tokens := strings.Fields(titleCase(muni))
	if len(tokens) == 0 {
		return ""
	}

	if len(tokens) >= 2 {
		if expanded, ok := compassTwoWord[strings.ToLower(tokens[0]+" "+tokens[1])]; ok {
			tokens = append([]string{expanded}, tokens[2:]...)
		}
	}
	if expanded, ok := compassSingle[strings.ToLower(tokens[0])]; ok {
		tokens[0] = expanded
	}
	if len(tokens) >= 2 && tokens[0] == tokens[1] {
		if _, ok := compassSingle[strings.ToLower(tokens[0])]; ok {
			tokens = tokens[1:]
		}
	}

	return strings.Join(tokens, " ")
}

// titleCase title-cases words using English casing rules. A cases.Caser
// is stateful, so a fresh one is built per call to keep Clean safe for
// concurrent use.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// defaultLocation is the package-level cleaner behind CleanLocation.
var defaultLocation = NewLocationCleaner()

// CleanLocation normalizes a raw place-name value using the Canadian
// alias table and default threshold. See LocationCleaner.Clean.
//
// Example:
//
//	CleanLocation(raw.String("nEW yORK"))
//	// Returns: Location("New York")
func CleanLocation(v raw.Value) (Location, error) {
	return defaultLocation.Clean(v)
}
