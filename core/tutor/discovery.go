package tutor

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/tutormate/core"
)

type SortKey string

// Sort keys
const (
	SortRecommended SortKey = "recommended"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortRating      SortKey = "rating"
	SortSessions    SortKey = "sessions"
)

// Proxy thresholds for attributes the dataset does not carry.
const (
	VerifiedMinRating       = 4.5
	GroupClassesMinSessions = 200
	RecordingsMinRating     = 4.5
)

// Filter panel bounds
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 50
	PriceStep       = 5
)

var (
	SortKeys = []SortKey{SortRecommended, SortPriceLow, SortPriceHigh, SortRating, SortSessions}

	// RatingThresholds are the minimum ratings offered by the filter panel.
	RatingThresholds = []float64{4.5, 4.0, 3.5, 3.0}

	sortLabels = map[SortKey]string{
		SortRecommended: "Recommended",
		SortPriceLow:    "Price: Low to High",
		SortPriceHigh:   "Price: High to Low",
		SortRating:      "Highest Rated",
		SortSessions:    "Most Sessions",
	}

	maxSuggestions   = 3
	suggestionCutoff = .6
)

func (k SortKey) Label() string {
	if l, ok := sortLabels[k]; ok {
		return l
	}
	return sortLabels[SortRecommended]
}

func (k SortKey) Valid() bool {
	_, ok := sortLabels[k]
	return ok
}

type PriceRange struct {
	Min float64 `json:"min" validate:"min=0"`
	Max float64 `json:"max" validate:"gtefield=Min"`
}

// Criteria holds what the user chose on the tutor listing: filters and sort key.
type Criteria struct {
	Departments         []string   `json:"departments" validate:"dive,department"`
	PriceRange          PriceRange `json:"price_range"`
	MinRating           float64    `json:"min_rating" validate:"min=0,max=5"`
	Query               string     `json:"query"`
	VerifiedOnly        bool       `json:"verified_only"`
	GroupClassesOnly    bool       `json:"group_classes_only"`
	RecordingsAvailable bool       `json:"recordings_available"`
	SortBy              SortKey    `json:"sort_by" validate:"omitempty,sortkey"`
}

// DefaultCriteria returns the neutral criteria: every predicate passes everything.
func DefaultCriteria() Criteria {
	return Criteria{
		PriceRange: PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice},
		SortBy:     SortRecommended,
	}
}

// Reset restores every criterion, sort key included, to DefaultCriteria.
func (c *Criteria) Reset() {
	*c = DefaultCriteria()
}

// ToggleDepartment selects dept when it is not selected yet, and unselects it otherwise.
func (c *Criteria) ToggleDepartment(dept string) {
	depts := make([]string, 0, len(c.Departments)+1)
	var found bool
	for _, d := range c.Departments {
		if d == dept {
			found = true
			continue
		}
		depts = append(depts, d)
	}
	if !found {
		depts = append(depts, dept)
	}
	c.Departments = depts
}

// Clean trims the query and drops duplicate departments.
func (c *Criteria) Clean() {
	c.Query = core.CleanString(c.Query)
	if c.SortBy == "" {
		c.SortBy = SortRecommended
	}
	if len(c.Departments) == 0 {
		c.Departments = nil
		return
	}
	seen := make(map[string]bool, len(c.Departments))
	depts := make([]string, 0, len(c.Departments))
	for _, d := range c.Departments {
		d = core.CleanString(d)
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		depts = append(depts, d)
	}
	c.Departments = depts
}

// ActiveFilterCount is the number of non-neutral filters, shown as a badge next to the results.
// The price range and the query are not counted.
func (c Criteria) ActiveFilterCount() int {
	n := len(c.Departments)
	for _, on := range []bool{c.MinRating > 0, c.VerifiedOnly, c.GroupClassesOnly, c.RecordingsAvailable} {
		if on {
			n++
		}
	}
	return n
}

func (c Criteria) matches(t Tutor) bool {
	return c.matchesDepartment(t) &&
		t.HourlyRate >= c.PriceRange.Min && t.HourlyRate <= c.PriceRange.Max &&
		t.Rating >= c.MinRating &&
		c.matchesQuery(t) &&
		(!c.VerifiedOnly || IsVerified(t)) &&
		(!c.GroupClassesOnly || OffersGroupClasses(t)) &&
		(!c.RecordingsAvailable || HasRecordings(t))
}

func (c Criteria) matchesDepartment(t Tutor) bool {
	if len(c.Departments) == 0 {
		return true
	}
	for _, d := range c.Departments {
		if d == t.Department {
			return true
		}
	}
	return false
}

func (c Criteria) matchesQuery(t Tutor) bool {
	if c.Query == "" {
		return true
	}
	if core.ContainsFold(t.Name, c.Query) {
		return true
	}
	for _, skill := range t.Skills {
		if core.ContainsFold(skill, c.Query) {
			return true
		}
	}
	return false
}

// IsVerified stands in for a verification flag the dataset lacks.
func IsVerified(t Tutor) bool { return t.Rating >= VerifiedMinRating }

// OffersGroupClasses stands in for a link to group classes the dataset lacks.
func OffersGroupClasses(t Tutor) bool { return t.TotalSessions > GroupClassesMinSessions }

// HasRecordings stands in for a link to recordings the dataset lacks.
func HasRecordings(t Tutor) bool { return t.Rating >= RecordingsMinRating }

// Result is the visible, ordered tutor listing.
type Result struct {
	Tutors        []Tutor  `json:"tutors"`
	Count         int      `json:"count"`
	ActiveFilters int      `json:"active_filters"`
	SortLabel     string   `json:"sort_label"`
	Empty         bool     `json:"empty"`
	Suggestions   []string `json:"suggestions,omitempty"`
}

// Discover filters tutors with the AND of every criterion, then sorts what is left by c.SortBy.
// Ties keep their input order. The input slice is never modified.
func Discover(tutors []Tutor, c Criteria) Result {
	filtered := make([]Tutor, 0, len(tutors))
	for _, t := range tutors {
		if c.matches(t) {
			filtered = append(filtered, t)
		}
	}
	sortTutors(filtered, c.SortBy)

	res := Result{
		Tutors:        filtered,
		Count:         len(filtered),
		ActiveFilters: c.ActiveFilterCount(),
		SortLabel:     c.SortBy.Label(),
		Empty:         len(filtered) == 0,
	}
	if res.Empty {
		res.Suggestions = suggest(tutors, c.Query)
	}
	return res
}

func sortTutors(tutors []Tutor, key SortKey) {
	var less func(a, b Tutor) bool
	switch key {
	case SortPriceLow:
		less = func(a, b Tutor) bool { return a.HourlyRate < b.HourlyRate }
	case SortPriceHigh:
		less = func(a, b Tutor) bool { return a.HourlyRate > b.HourlyRate }
	case SortRating:
		less = func(a, b Tutor) bool { return a.Rating > b.Rating }
	case SortSessions:
		less = func(a, b Tutor) bool { return a.TotalSessions > b.TotalSessions }
	default: // recommended
		return
	}
	sort.SliceStable(tutors, func(i, j int) bool { return less(tutors[i], tutors[j]) })
}

// suggest returns the skills and names closest to query, best match first.
func suggest(tutors []Tutor, query string) []string {
	query = strings.ToLower(core.CleanString(query))
	if query == "" {
		return nil
	}

	type candidate struct {
		term  string
		score float64
	}
	var candidates []candidate
	seen := make(map[string]bool)
	consider := func(term string) {
		key := strings.ToLower(term)
		if seen[key] {
			return
		}
		seen[key] = true
		score := difflib.NewMatcher(strings.Split(query, ""), strings.Split(key, "")).Ratio()
		if score >= suggestionCutoff {
			candidates = append(candidates, candidate{term: term, score: score})
		}
	}
	for _, t := range tutors {
		for _, skill := range t.Skills {
			consider(skill)
		}
		consider(t.Name)
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	suggestions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, c.term)
	}
	return suggestions
}
