package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
)

const icsProductID = "-//TutorMate//Sessions//EN"

// ExportICS serializes sessions to an iCalendar document. Times are read in loc.
// Sessions whose date or time cannot be parsed are skipped.
func ExportICS(appName string, sessions []Session, stamp time.Time, loc *time.Location) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetName(appName + " sessions")

	for _, s := range sessions {
		start, err := s.StartsAt(loc)
		if err != nil {
			continue
		}
		event := cal.AddEvent(fmt.Sprintf("session-%s@tutormate", s.ID))
		event.SetDtStampTime(stamp)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(s.Length()))
		event.SetSummary(fmt.Sprintf("%s with %s", s.Subject, s.TutorName))
		switch s.Status {
		case StatusCancelled:
			event.SetStatus(ics.ObjectStatusCancelled)
		default:
			event.SetStatus(ics.ObjectStatusConfirmed)
		}
		if s.MeetingLink != "" {
			event.SetLocation(s.MeetingLink)
			event.SetURL(s.MeetingLink)
		}
	}
	return cal.Serialize()
}
