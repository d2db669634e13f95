package session

import (
	"errors"
	"time"

	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/booking"
	"github.com/trezcool/tutormate/core/calendar"
	"github.com/trezcool/tutormate/core/navigation"
	"github.com/trezcool/tutormate/core/profile"
	"github.com/trezcool/tutormate/core/tutor"
)

var (
	// errors
	ErrNotFound = errors.New("session not found")
)

// Session is the state of one browsing session of the app.
// Every transition returns a new value, the repository keeps the latest one.
type Session struct {
	ID        string             `json:"id"`
	Nav       navigation.State   `json:"navigation"`
	Criteria  tutor.Criteria     `json:"criteria"`
	Booking   *booking.Wizard    `json:"booking,omitempty"`
	Saved     map[string]bool    `json:"saved_tutors"`
	Joined    map[string]bool    `json:"joined_classes"`
	Profile   profile.Profile    `json:"profile"`
	Calendar  calendar.View      `json:"calendar_view"`
	Month     calendar.YearMonth `json:"calendar_month"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// New returns a fresh session, on the login page.
func New(id string, month calendar.YearMonth, now time.Time) Session {
	return Session{
		ID:        id,
		Nav:       navigation.New(),
		Criteria:  tutor.DefaultCriteria(),
		Saved:     make(map[string]bool),
		Joined:    make(map[string]bool),
		Profile:   profile.Default(),
		Calendar:  calendar.ViewMonth,
		Month:     month,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Navigate moves to page. Entering the booking page always starts a new booking.
func (s Session) Navigate(page navigation.Page, data *navigation.Data) Session {
	s.Nav = s.Nav.Navigate(page, data)
	return s.enter()
}

func (s Session) Back() Session {
	s.Nav = s.Nav.Back()
	return s.enter()
}

func (s Session) enter() Session {
	if v, ok := s.Nav.View().(navigation.BookingView); ok {
		w := booking.New(v.TutorID)
		s.Booking = &w
	}
	return s
}

// Search sets the discovery query and shows the tutor listing.
func (s Session) Search(query string) Session {
	s.Criteria.Query = core.CleanString(query)
	return s.Navigate(navigation.PageTutors, nil)
}

// ToggleSaved saves tutorID to the favourites, or removes it. It reports whether the tutor is now saved.
func (s Session) ToggleSaved(tutorID string) (Session, bool) {
	saved := copySet(s.Saved)
	if saved[tutorID] {
		delete(saved, tutorID)
	} else {
		saved[tutorID] = true
	}
	s.Saved = saved
	return s, saved[tutorID]
}

// Join records the seat taken in class id.
func (s Session) Join(classID string) Session {
	joined := copySet(s.Joined)
	joined[classID] = true
	s.Joined = joined
	return s
}

// Student is who booking confirmations are mailed to.
func (s Session) Student() booking.Student {
	return booking.Student{Name: s.Profile.FullName(), Email: s.Profile.Email}
}

func copySet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set)+1)
	for k, v := range set {
		out[k] = v
	}
	return out
}
