package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutormate/core/booking"
	"github.com/trezcool/tutormate/core/calendar"
	"github.com/trezcool/tutormate/core/navigation"
	"github.com/trezcool/tutormate/core/session"
	"github.com/trezcool/tutormate/core/tutor"
	"github.com/trezcool/tutormate/tests"
)

func newSession() session.Session {
	return session.New("s1", calendar.YearMonth{Year: 2025, Month: time.November}, testutil.ReferenceDate)
}

func TestNew(t *testing.T) {
	s := newSession()
	assert.Equal(t, navigation.PageLogin, s.Nav.Current)
	assert.Equal(t, tutor.DefaultCriteria(), s.Criteria)
	assert.Nil(t, s.Booking)
	assert.Equal(t, calendar.ViewMonth, s.Calendar)
	assert.Equal(t, "Alex Martinez", s.Profile.FullName())
}

func TestSession_BookingStartsOver(t *testing.T) {
	s := newSession().Navigate(navigation.PageBooking, &navigation.Data{TutorID: "3"})
	require.NotNil(t, s.Booking)
	assert.Equal(t, "3", s.Booking.TutorID)
	assert.Equal(t, booking.StepSelect, s.Booking.Step)

	w := *s.Booking
	w.Step = booking.StepPayment
	s.Booking = &w

	s = s.Navigate(navigation.PageCalendar, nil).Back()
	assert.Equal(t, navigation.PageBooking, s.Nav.Current)
	require.NotNil(t, s.Booking)
	assert.Equal(t, booking.StepSelect, s.Booking.Step)
	assert.Equal(t, "3", s.Booking.TutorID)
}

func TestSession_Search(t *testing.T) {
	s := newSession().Navigate(navigation.PageDashboard, nil).Search("  calculus ")
	assert.Equal(t, navigation.PageTutors, s.Nav.Current)
	assert.Equal(t, navigation.PageDashboard, s.Nav.Previous)
	assert.Equal(t, "calculus", s.Criteria.Query)
}

func TestSession_ToggleSaved(t *testing.T) {
	s0 := newSession()

	s1, saved := s0.ToggleSaved("2")
	assert.True(t, saved)
	assert.True(t, s1.Saved["2"])
	assert.Empty(t, s0.Saved, "the previous value must not change")

	s2, saved := s1.ToggleSaved("2")
	assert.False(t, saved)
	assert.False(t, s2.Saved["2"])
	assert.True(t, s1.Saved["2"])
}

func TestSession_Join(t *testing.T) {
	s0 := newSession()
	s1 := s0.Join("4")
	assert.True(t, s1.Joined["4"])
	assert.Empty(t, s0.Joined)
}

func TestSession_Student(t *testing.T) {
	s := newSession()
	s.Profile.FirstName = "Sam"
	assert.Equal(t, booking.Student{Name: "Sam Martinez", Email: "alex.martinez@university.edu"}, s.Student())
}
