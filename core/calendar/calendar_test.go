package calendar_test

import (
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/calendar"
	"github.com/trezcool/tutormate/storage/database/inmem"
	"github.com/trezcool/tutormate/tests"
)

func TestBuildMonth(t *testing.T) {
	sessions := []calendar.Session{
		{ID: "1", Date: "2025-11-26", Time: "2:00 PM"},
		{ID: "2", Date: "2025-11-26", Time: "4:00 PM"},
		{ID: "3", Date: "2025-12-01", Time: "4:00 PM"},
	}
	m := calendar.BuildMonth(calendar.YearMonth{Year: 2025, Month: time.November}, testutil.ReferenceDate, sessions)

	assert.Equal(t, "November 2025", m.Title)
	require.Len(t, m.Cells, 36) // 1st is a Saturday
	for i := 0; i < 6; i++ {
		assert.Nil(t, m.Cells[i])
	}
	first := m.Cells[6]
	assert.Equal(t, "2025-11-01", first.Date)
	assert.Equal(t, "Sat", first.Weekday)
	assert.Empty(t, first.Sessions)

	day26 := m.Cells[6+25]
	assert.Equal(t, 26, day26.Day)
	assert.Len(t, day26.Sessions, 2)
	assert.True(t, m.Cells[6+23].Today)
	assert.False(t, day26.Today)

	assert.Equal(t, calendar.YearMonth{Year: 2025, Month: time.October}, m.Prev)
	assert.Equal(t, calendar.YearMonth{Year: 2025, Month: time.December}, m.Next)
}

func TestYearMonth_Add(t *testing.T) {
	dec := calendar.YearMonth{Year: 2025, Month: time.December}
	assert.Equal(t, calendar.YearMonth{Year: 2026, Month: time.January}, dec.Add(1))
	assert.Equal(t, calendar.YearMonth{Year: 2024, Month: time.December}, dec.Add(-12))
}

func TestBuildWeek(t *testing.T) {
	w := calendar.BuildWeek(testutil.ReferenceDate, testutil.ReferenceDate, []calendar.Session{{Date: "2025-11-28"}})
	assert.Equal(t, "Nov 23 - Nov 29, 2025", w.Title)
	require.Len(t, w.Days, 7)
	assert.Equal(t, "Sun", w.Days[0].Weekday)
	assert.True(t, w.Days[1].Today)
	assert.Len(t, w.Days[5].Sessions, 1)
}

func TestSession_Length(t *testing.T) {
	tests := []struct {
		duration string
		want     time.Duration
	}{
		{"1 hour", time.Hour},
		{"1.5 hours", 90 * time.Minute},
		{"45 minutes", 45 * time.Minute},
		{"", time.Hour},
		{"lol", time.Hour},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calendar.Session{Duration: tt.duration}.Length(), tt.duration)
	}
}

func TestService(t *testing.T) {
	svc := calendar.NewService(inmemdb.NewSessionRepository(testutil.OpenDB(t)), testutil.NewConfig())

	assert.Equal(t, calendar.YearMonth{Year: 2025, Month: time.November}, svc.CurrentMonth())

	upcoming, err := svc.Upcoming()
	require.NoError(t, err)
	require.Len(t, upcoming, 2)

	booked, err := svc.Schedule(calendar.Session{TutorName: "Michael Chen", Date: "2025-11-25", Time: "1:00 PM", Duration: "1 hour"})
	require.NoError(t, err)
	assert.NotEmpty(t, booked.ID)
	assert.Equal(t, calendar.StatusUpcoming, booked.Status)

	upcoming, _ = svc.Upcoming()
	require.Len(t, upcoming, 3)
	assert.Equal(t, booked.ID, upcoming[0].ID) // soonest first

	_, err = svc.Schedule(calendar.Session{Date: "2025-11-25", Time: "whenever"})
	assert.True(t, core.IsValidationError(err))

	_, err = svc.Month(calendar.YearMonth{Year: 2025, Month: 13})
	assert.True(t, core.IsValidationError(err))

	week, err := svc.Week()
	require.NoError(t, err)
	assert.Len(t, week.Days[2].Sessions, 1) // Nov 25
}

func TestExportICS(t *testing.T) {
	svc := calendar.NewService(inmemdb.NewSessionRepository(testutil.OpenDB(t)), testutil.NewConfig())
	out, err := svc.ExportICS()
	require.NoError(t, err)

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 3)

	first := events[0]
	assert.Equal(t, "Machine Learning Fundamentals with Sarah Johnson", first.GetProperty(ics.ComponentPropertySummary).Value)
	assert.Equal(t, "20251126T140000Z", first.GetProperty(ics.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20251126T150000Z", first.GetProperty(ics.ComponentPropertyDtEnd).Value)
	assert.Equal(t, "https://meet.tutormate.com/abc123", first.GetProperty(ics.ComponentPropertyLocation).Value)
	assert.Nil(t, events[2].GetProperty(ics.ComponentPropertyLocation))
}
