package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTutors() []Tutor {
	return []Tutor{
		{ID: "1", Name: "Sarah Johnson", Department: "Computer Science", Rating: 4.9, HourlyRate: 35, TotalSessions: 342,
			Skills: []string{"Python", "Machine Learning", "Data Structures", "Algorithms"}},
		{ID: "2", Name: "Michael Chen", Department: "Mathematics", Rating: 4.8, HourlyRate: 30, TotalSessions: 256,
			Skills: []string{"Calculus", "Linear Algebra", "Statistics", "Differential Equations"}},
		{ID: "3", Name: "Emily Rodriguez", Department: "Physics", Rating: 4.7, HourlyRate: 28, TotalSessions: 189,
			Skills: []string{"Classical Mechanics", "Thermodynamics", "Electromagnetism", "Quantum Physics"}},
		{ID: "4", Name: "David Kim", Department: "Engineering", Rating: 4.9, HourlyRate: 38, TotalSessions: 298,
			Skills: []string{"Circuit Analysis", "Digital Systems", "Signal Processing", "Control Systems"}},
		{ID: "5", Name: "Jessica Taylor", Department: "Chemistry", Rating: 4.8, HourlyRate: 32, TotalSessions: 221,
			Skills: []string{"Organic Chemistry", "Biochemistry", "Analytical Chemistry", "Lab Techniques"}},
		{ID: "6", Name: "Alex Martinez", Department: "Computer Science", Rating: 4.6, HourlyRate: 25, TotalSessions: 145,
			Skills: []string{"Java", "Web Development", "Databases", "Software Engineering"}},
	}
}

func ids(tutors []Tutor) []string {
	out := make([]string, 0, len(tutors))
	for _, t := range tutors {
		out = append(out, t.ID)
	}
	return out
}

func TestDiscover_neutralCriteria(t *testing.T) {
	tutors := sampleTutors()
	res := Discover(tutors, DefaultCriteria())

	assert.Equal(t, tutors, res.Tutors)
	assert.Equal(t, 6, res.Count)
	assert.Zero(t, res.ActiveFilters)
	assert.False(t, res.Empty)
	assert.Empty(t, res.Suggestions)
	assert.Equal(t, "Recommended", res.SortLabel)
}

func TestDiscover_filters(t *testing.T) {
	tutors := sampleTutors()
	criteria := func(fn func(c *Criteria)) Criteria {
		c := DefaultCriteria()
		fn(&c)
		return c
	}

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{
			name:     "department",
			criteria: criteria(func(c *Criteria) { c.Departments = []string{"Mathematics"} }),
			wantIDs:  []string{"2"},
		},
		{
			name:     "several departments",
			criteria: criteria(func(c *Criteria) { c.Departments = []string{"Physics", "Computer Science"} }),
			wantIDs:  []string{"1", "3", "6"},
		},
		{
			name:     "unknown department",
			criteria: criteria(func(c *Criteria) { c.Departments = []string{"Biology"} }),
			wantIDs:  []string{},
		},
		{
			name:     "price bounds are inclusive",
			criteria: criteria(func(c *Criteria) { c.PriceRange = PriceRange{Min: 28, Max: 32} }),
			wantIDs:  []string{"2", "3", "5"},
		},
		{
			name:     "min == max",
			criteria: criteria(func(c *Criteria) { c.PriceRange = PriceRange{Min: 25, Max: 25} }),
			wantIDs:  []string{"6"},
		},
		{
			name:     "min rating",
			criteria: criteria(func(c *Criteria) { c.MinRating = 4.8 }),
			wantIDs:  []string{"1", "2", "4", "5"},
		},
		{
			name:     "query matches a skill, case insensitive",
			criteria: criteria(func(c *Criteria) { c.Query = "java" }),
			wantIDs:  []string{"6"},
		},
		{
			name:     "query matches a name",
			criteria: criteria(func(c *Criteria) { c.Query = "CHEN" }),
			wantIDs:  []string{"2"},
		},
		{
			name:     "query matches a skill substring",
			criteria: criteria(func(c *Criteria) { c.Query = "chem" }),
			wantIDs:  []string{"5"},
		},
		{
			name:     "verified",
			criteria: criteria(func(c *Criteria) { c.VerifiedOnly = true }),
			wantIDs:  []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:     "group classes",
			criteria: criteria(func(c *Criteria) { c.GroupClassesOnly = true }),
			wantIDs:  []string{"1", "2", "4", "5"},
		},
		{
			name:     "recordings",
			criteria: criteria(func(c *Criteria) { c.RecordingsAvailable = true }),
			wantIDs:  []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name: "all combined",
			criteria: criteria(func(c *Criteria) {
				c.Departments = []string{"Computer Science"}
				c.PriceRange = PriceRange{Min: 30, Max: 50}
				c.MinRating = 4.5
				c.GroupClassesOnly = true
			}),
			wantIDs: []string{"1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Discover(tutors, tt.criteria)
			assert.Equal(t, tt.wantIDs, ids(res.Tutors))
			assert.Equal(t, len(tt.wantIDs), res.Count)
			assert.Equal(t, len(tt.wantIDs) == 0, res.Empty)
		})
	}
}

func TestDiscover_verifiedThreshold(t *testing.T) {
	tutors := []Tutor{
		{ID: "a", Rating: 4.9},
		{ID: "b", Rating: 4.6},
		{ID: "c", Rating: 4.5},
		{ID: "d", Rating: 4.4},
	}
	c := DefaultCriteria()
	c.VerifiedOnly = true
	assert.Equal(t, []string{"a", "b", "c"}, ids(Discover(tutors, c).Tutors))
}

func TestDiscover_sort(t *testing.T) {
	tutors := sampleTutors()
	tests := []struct {
		key     SortKey
		wantIDs []string
	}{
		{key: SortRecommended, wantIDs: []string{"1", "2", "3", "4", "5", "6"}},
		{key: SortPriceLow, wantIDs: []string{"6", "3", "2", "5", "1", "4"}},
		{key: SortPriceHigh, wantIDs: []string{"4", "1", "5", "2", "3", "6"}},
		{key: SortRating, wantIDs: []string{"1", "4", "2", "5", "3", "6"}}, // ties keep input order
		{key: SortSessions, wantIDs: []string{"1", "4", "2", "5", "3", "6"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			c := DefaultCriteria()
			c.SortBy = tt.key
			res := Discover(tutors, c)
			assert.Equal(t, tt.wantIDs, ids(res.Tutors))
			assert.Equal(t, tt.key.Label(), res.SortLabel)
		})
	}

	// input is left untouched
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(tutors))
}

func TestDiscover_sortPriceTies(t *testing.T) {
	tutors := []Tutor{
		{ID: "a", HourlyRate: 30},
		{ID: "b", HourlyRate: 25},
		{ID: "c", HourlyRate: 30},
		{ID: "d", HourlyRate: 40},
		{ID: "e", HourlyRate: 30},
	}
	tests := []struct {
		key     SortKey
		wantIDs []string
	}{
		{key: SortPriceLow, wantIDs: []string{"b", "a", "c", "e", "d"}},
		{key: SortPriceHigh, wantIDs: []string{"d", "a", "c", "e", "b"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			c := DefaultCriteria()
			c.SortBy = tt.key
			assert.Equal(t, tt.wantIDs, ids(Discover(tutors, c).Tutors), "equal rates keep input order")
		})
	}
}

func TestCriteria_Reset(t *testing.T) {
	tutors := sampleTutors()
	c := Criteria{
		Departments:         []string{"Physics"},
		PriceRange:          PriceRange{Min: 10, Max: 20},
		MinRating:           4,
		Query:               "lol",
		VerifiedOnly:        true,
		GroupClassesOnly:    true,
		RecordingsAvailable: true,
		SortBy:              SortPriceHigh,
	}
	c.Reset()

	assert.Equal(t, DefaultCriteria(), c)
	assert.Equal(t, Discover(tutors, DefaultCriteria()), Discover(tutors, c))
}

func TestCriteria_ToggleDepartment(t *testing.T) {
	c := DefaultCriteria()

	c.ToggleDepartment("Physics")
	c.ToggleDepartment("Mathematics")
	assert.Equal(t, []string{"Physics", "Mathematics"}, c.Departments)

	c.ToggleDepartment("Physics")
	assert.Equal(t, []string{"Mathematics"}, c.Departments)

	c.ToggleDepartment("Mathematics")
	assert.Empty(t, c.Departments)
}

func TestCriteria_ActiveFilterCount(t *testing.T) {
	c := DefaultCriteria()
	assert.Equal(t, 0, c.ActiveFilterCount())

	c.Departments = []string{"Physics", "Chemistry"}
	c.MinRating = 4
	c.VerifiedOnly = true
	c.RecordingsAvailable = true
	c.Query = "ignored"
	c.PriceRange = PriceRange{Min: 5, Max: 10}
	assert.Equal(t, 5, c.ActiveFilterCount())
}

func TestCriteria_Clean(t *testing.T) {
	c := Criteria{
		Departments: []string{" Physics", "Physics ", "", "Chemistry"},
		Query:       "  java ",
	}
	c.Clean()

	assert.Equal(t, []string{"Physics", "Chemistry"}, c.Departments)
	assert.Equal(t, "java", c.Query)
	assert.Equal(t, SortRecommended, c.SortBy)
}

func TestDiscover_suggestions(t *testing.T) {
	tutors := sampleTutors()

	c := DefaultCriteria()
	c.Query = "Jav"
	res := Discover(tutors, c)
	assert.False(t, res.Empty)
	assert.Nil(t, res.Suggestions)

	c.Query = "Calculas"
	res = Discover(tutors, c)
	assert.True(t, res.Empty)
	if assert.NotEmpty(t, res.Suggestions) {
		assert.Equal(t, "Calculus", res.Suggestions[0])
	}
	assert.LessOrEqual(t, len(res.Suggestions), maxSuggestions)

	c.Query = ""
	c.Departments = []string{"Biology"}
	res = Discover(tutors, c)
	assert.True(t, res.Empty)
	assert.Empty(t, res.Suggestions)
}

func TestSortKey(t *testing.T) {
	assert.True(t, SortRating.Valid())
	assert.False(t, SortKey("lol").Valid())
	assert.Equal(t, "Recommended", SortKey("lol").Label())
	assert.Equal(t, "Price: Low to High", SortPriceLow.Label())
}
