package calendar

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	// errors
	ErrNotFound = errors.New("session not found")
)

type Status string

// Session statuses
const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// TimeLayout is the start time format used across the dataset ("2:00 PM").
const TimeLayout = "3:04 PM"

// Session is a booked tutoring session.
type Session struct {
	ID          string `json:"id" yaml:"id"`
	TutorName   string `json:"tutor_name" yaml:"tutor_name"`
	TutorAvatar string `json:"tutor_avatar" yaml:"tutor_avatar"`
	Subject     string `json:"subject" yaml:"subject"`
	Date        string `json:"date" yaml:"date"`
	Time        string `json:"time" yaml:"time"`
	Duration    string `json:"duration" yaml:"duration"`
	Status      Status `json:"status" yaml:"status"`
	MeetingLink string `json:"meeting_link,omitempty" yaml:"meeting_link,omitempty"`
}

// StartsAt combines the session date and time, in loc.
func (s Session) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 "+TimeLayout, s.Date+" "+s.Time, loc)
}

// Length parses durations such as "1 hour", "1.5 hours" or "45 minutes". It defaults to one hour.
func (s Session) Length() time.Duration {
	fields := strings.Fields(s.Duration)
	if len(fields) != 2 {
		return time.Hour
	}
	n, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || n <= 0 {
		return time.Hour
	}
	unit := time.Hour
	if strings.HasPrefix(strings.ToLower(fields[1]), "min") {
		unit = time.Minute
	}
	return time.Duration(n * float64(unit))
}

// Day is a cell of the calendar.
type Day struct {
	Date     string    `json:"date"`
	Day      int       `json:"day"`
	Weekday  string    `json:"weekday"`
	Today    bool      `json:"today"`
	Sessions []Session `json:"sessions"`
}

// YearMonth points at a month of the calendar.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Month is a month grid: nil cells pad the first week up to the weekday of the 1st (weeks start on Sunday).
type Month struct {
	YearMonth
	Title string    `json:"title"`
	Cells []*Day    `json:"cells"`
	Prev  YearMonth `json:"prev"`
	Next  YearMonth `json:"next"`
}

// Week lists the seven days, Sunday first, of a week.
type Week struct {
	Title string `json:"title"`
	Days  []Day  `json:"days"`
}

// View is a calendar display mode.
type View string

// Calendar views
const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
)
