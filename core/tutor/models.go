package tutor

import (
	"errors"
	"math"
)

var (
	// errors
	ErrNotFound = errors.New("tutor not found")
)

// Slot lists the start times a tutor offers on a given date.
type Slot struct {
	Date  string   `json:"date" yaml:"date"`
	Times []string `json:"times" yaml:"times"`
}

type Tutor struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Avatar        string   `json:"avatar" yaml:"avatar"`
	Department    string   `json:"department" yaml:"department"`
	Level         string   `json:"level" yaml:"level"`
	Rating        float64  `json:"rating" yaml:"rating"`
	ReviewCount   int      `json:"review_count" yaml:"review_count"`
	HourlyRate    float64  `json:"hourly_rate" yaml:"hourly_rate"`
	Skills        []string `json:"skills" yaml:"skills"`
	Bio           string   `json:"bio" yaml:"bio"`
	Availability  []Slot   `json:"availability" yaml:"availability"`
	TotalSessions int      `json:"total_sessions" yaml:"total_sessions"`
}

// TimesOn returns the start times offered on date, nil when the tutor is not available that day.
func (t Tutor) TimesOn(date string) []string {
	for _, slot := range t.Availability {
		if slot.Date == date {
			return slot.Times
		}
	}
	return nil
}

// HasSlot reports whether the tutor offers the (date, time) pair.
func (t Tutor) HasSlot(date, time string) bool {
	for _, tm := range t.TimesOn(date) {
		if tm == time {
			return true
		}
	}
	return false
}

// AvailableDates returns the dates the tutor can be booked on, in availability order.
func (t Tutor) AvailableDates() []string {
	dates := make([]string, 0, len(t.Availability))
	for _, slot := range t.Availability {
		dates = append(dates, slot.Date)
	}
	return dates
}

type Review struct {
	ID            string `json:"id" yaml:"id"`
	TutorID       string `json:"tutor_id" yaml:"tutor_id"`
	StudentName   string `json:"student_name" yaml:"student_name"`
	StudentAvatar string `json:"student_avatar" yaml:"student_avatar"`
	Rating        int    `json:"rating" yaml:"rating"`
	Date          string `json:"date" yaml:"date"`
	Comment       string `json:"comment" yaml:"comment"`
}

// RatingBucket is one bar of a rating histogram.
type RatingBucket struct {
	Stars      int `json:"stars"`
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// RatingDistribution counts reviews per star, from 5 down to 1.
// Percentages are rounded to the nearest integer and are all 0 when there are no reviews.
func RatingDistribution(reviews []Review) []RatingBucket {
	counts := make(map[int]int, 5)
	for _, r := range reviews {
		counts[r.Rating]++
	}
	buckets := make([]RatingBucket, 0, 5)
	for stars := 5; stars >= 1; stars-- {
		b := RatingBucket{Stars: stars, Count: counts[stars]}
		if len(reviews) > 0 {
			b.Percentage = int(math.Round(float64(b.Count) * 100 / float64(len(reviews))))
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// Profile is everything the tutor profile page shows.
type Profile struct {
	Tutor        Tutor          `json:"tutor"`
	Reviews      []Review       `json:"reviews"`
	Distribution []RatingBucket `json:"rating_distribution"`
	SelectedDate string         `json:"selected_date"`
	Times        []string       `json:"times"`
	Saved        bool           `json:"saved"`
}
