package calendar

import (
	"time"

	"github.com/trezcool/tutormate/core"
)

// BuildMonth lays out the month grid of year/month with the sessions of each day.
func BuildMonth(ym YearMonth, today time.Time, sessions []Session) Month {
	first := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()
	byDate := groupByDate(sessions)

	cells := make([]*Day, 0, int(first.Weekday())+daysIn)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, nil)
	}
	for d := 1; d <= daysIn; d++ {
		day := newDay(first.AddDate(0, 0, d-1), today, byDate)
		cells = append(cells, &day)
	}

	return Month{
		YearMonth: YearMonth{Year: first.Year(), Month: first.Month()},
		Title:     first.Format("January 2006"),
		Cells:     cells,
		Prev:      ym.Add(-1),
		Next:      ym.Add(1),
	}
}

// BuildWeek lists the days of the week holding ref.
func BuildWeek(ref, today time.Time, sessions []Session) Week {
	ref = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	start := ref.AddDate(0, 0, -int(ref.Weekday()))
	end := start.AddDate(0, 0, 6)
	byDate := groupByDate(sessions)

	days := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, newDay(start.AddDate(0, 0, i), today, byDate))
	}
	return Week{
		Title: start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006"),
		Days:  days,
	}
}

// Add moves n months forward (or backward when n < 0).
func (ym YearMonth) Add(n int) YearMonth {
	t := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// SessionsOn returns the sessions booked on date, in input order.
func SessionsOn(date string, sessions []Session) []Session {
	out := make([]Session, 0)
	for _, s := range sessions {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out
}

func newDay(t, today time.Time, byDate map[string][]Session) Day {
	date := t.Format(core.DateLayout)
	daySessions := byDate[date]
	if daySessions == nil {
		daySessions = []Session{}
	}
	return Day{
		Date:     date,
		Day:      t.Day(),
		Weekday:  t.Weekday().String()[:3],
		Today:    date == today.Format(core.DateLayout),
		Sessions: daySessions,
	}
}

func groupByDate(sessions []Session) map[string][]Session {
	byDate := make(map[string][]Session)
	for _, s := range sessions {
		byDate[s.Date] = append(byDate[s.Date], s)
	}
	return byDate
}
