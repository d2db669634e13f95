package booking

import (
	"github.com/trezcool/tutormate/core"
)

type Step int

// Wizard steps
const (
	StepSelect Step = iota + 1
	StepReview
	StepPayment
	StepConfirmed
)

// Defaults preselected on the first step.
const (
	DefaultDate = "2025-11-26"
	DefaultTime = "2:00 PM"
)

var stepLabels = map[Step]string{
	StepSelect:    "Date & Time",
	StepReview:    "Review",
	StepPayment:   "Payment",
	StepConfirmed: "Confirmed",
}

func (s Step) Label() string { return stepLabels[s] }

// Wizard is the state of one booking flow.
type Wizard struct {
	TutorID string `json:"tutor_id"`
	Step    Step   `json:"step"`
	Date    string `json:"date"`
	Time    string `json:"time"`

	// set once confirmed
	SessionID   string `json:"session_id,omitempty"`
	MeetingLink string `json:"meeting_link,omitempty"`
}

// New starts a booking of tutorID on the first step.
func New(tutorID string) Wizard {
	return Wizard{TutorID: tutorID, Step: StepSelect, Date: DefaultDate, Time: DefaultTime}
}

// Select changes the date and/or the time. Empty values are left unchanged.
func (w Wizard) Select(date, time string) (Wizard, error) {
	if w.Step != StepSelect {
		return w, core.NewFieldValidationError("step", "date and time can only be changed on the first step")
	}
	if date = core.CleanString(date); date != "" {
		if core.ParseDate(date).IsZero() {
			return w, core.NewFieldValidationError("date", "invalid date")
		}
		w.Date = date
	}
	if time = core.CleanString(time); time != "" {
		w.Time = time
	}
	return w, nil
}

// Back returns to the previous step. There is no going back from the first step, nor from the confirmation.
func (w Wizard) Back() (Wizard, error) {
	switch w.Step {
	case StepReview, StepPayment:
		w.Step--
		return w, nil
	default:
		return w, core.NewFieldValidationError("step", "cannot go back from this step")
	}
}

// Done reports whether the booking is confirmed.
func (w Wizard) Done() bool { return w.Step == StepConfirmed }

type StepState string

// Progress states
const (
	StepCurrent StepState = "current"
	StepDone    StepState = "done"
	StepPending StepState = "pending"
)

type ProgressItem struct {
	Step  Step      `json:"step"`
	Label string    `json:"label"`
	State StepState `json:"state"`
}

// Progress describes the progress indicator. It is hidden (nil) once confirmed.
func (w Wizard) Progress() []ProgressItem {
	if w.Done() {
		return nil
	}
	items := make([]ProgressItem, 0, 3)
	for s := StepSelect; s <= StepPayment; s++ {
		item := ProgressItem{Step: s, Label: s.Label(), State: StepPending}
		switch {
		case s == w.Step:
			item.State = StepCurrent
		case s < w.Step:
			item.State = StepDone
		}
		items = append(items, item)
	}
	return items
}
