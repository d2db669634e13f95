package booking

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/calendar"
	"github.com/trezcool/tutormate/core/tutor"
	"github.com/trezcool/tutormate/core/wallet"
)

const (
	// MeetingBaseURL prefixes the meeting link of every confirmed session.
	MeetingBaseURL = "https://meet.tutormate.com/"

	SessionType     = "Online (Video Call)"
	SessionDuration = "1 hour"

	confirmationTemplate = "booking_confirmation"
)

type (
	TutorFinder interface {
		GetByID(id string) (tutor.Tutor, error)
	}

	Payer interface {
		Charge(amount float64, tutorName, subject string) (wallet.Transaction, error)
		Refund(tx wallet.Transaction) (wallet.Transaction, error)
	}

	Scheduler interface {
		Schedule(s calendar.Session) (calendar.Session, error)
	}

	// Student receives the confirmation of a booking.
	Student struct {
		Name  string
		Email string
	}

	Service struct {
		tutors  TutorFinder
		payer   Payer
		sched   Scheduler
		mailSvc core.EmailService
		conf    *core.Config
		log     core.Logger
	}

	// Summary is everything the booking page shows for a wizard.
	Summary struct {
		Wizard      Wizard         `json:"wizard"`
		Tutor       tutor.Tutor    `json:"tutor"`
		Subject     string         `json:"subject"`
		Fee         float64        `json:"fee"`
		Total       float64        `json:"total"`
		SessionType string         `json:"session_type"`
		Duration    string         `json:"duration"`
		Dates       []string       `json:"dates"`
		Times       []string       `json:"times"`
		Progress    []ProgressItem `json:"progress,omitempty"`
	}
)

func NewService(
	tutors TutorFinder,
	payer Payer,
	sched Scheduler,
	mailSvc core.EmailService,
	conf *core.Config,
	logger core.Logger,
) *Service {
	return &Service{
		tutors:  tutors,
		payer:   payer,
		sched:   sched,
		mailSvc: mailSvc,
		conf:    conf,
		log:     logger,
	}
}

func (svc *Service) Summary(w Wizard) (Summary, error) {
	t, err := svc.tutors.GetByID(w.TutorID)
	if err != nil {
		return Summary{}, err
	}
	times := t.TimesOn(w.Date)
	if times == nil {
		times = []string{}
	}
	return Summary{
		Wizard:      w,
		Tutor:       t,
		Subject:     subjectOf(t),
		Fee:         t.HourlyRate,
		Total:       t.HourlyRate,
		SessionType: SessionType,
		Duration:    SessionDuration,
		Dates:       t.AvailableDates(),
		Times:       times,
		Progress:    w.Progress(),
	}, nil
}

// Continue moves the wizard one step forward.
// Leaving the first step requires one of the tutor's slots to be selected.
// Leaving the payment step charges the wallet, schedules the session and mails a confirmation to student.
func (svc *Service) Continue(w Wizard, student Student) (Wizard, error) {
	t, err := svc.tutors.GetByID(w.TutorID)
	if err != nil {
		return w, err
	}

	switch w.Step {
	case StepSelect:
		if !t.HasSlot(w.Date, w.Time) {
			return w, core.NewFieldValidationError("time", "the selected time is not available")
		}
		w.Step = StepReview
	case StepReview:
		w.Step = StepPayment
	case StepPayment:
		return svc.confirm(w, t, student)
	default:
		return w, core.NewFieldValidationError("step", "booking already confirmed")
	}
	return w, nil
}

func (svc *Service) confirm(w Wizard, t tutor.Tutor, student Student) (Wizard, error) {
	if !t.HasSlot(w.Date, w.Time) {
		return w, core.NewFieldValidationError("time", "the selected time is not available")
	}

	subject := subjectOf(t)
	payment, err := svc.payer.Charge(t.HourlyRate, t.Name, subject)
	if err != nil {
		return w, err
	}

	sess, err := svc.sched.Schedule(calendar.Session{
		TutorName:   t.Name,
		TutorAvatar: t.Avatar,
		Subject:     subject,
		Date:        w.Date,
		Time:        w.Time,
		Duration:    SessionDuration,
		MeetingLink: MeetingBaseURL + "session-" + strings.SplitN(uuid.New().String(), "-", 2)[0],
	})
	if err != nil {
		if _, rErr := svc.payer.Refund(payment); rErr != nil {
			svc.log.Error("refunding unscheduled booking", errors.Wrap(rErr, "refunding"), map[string]interface{}{"transaction": payment.ID})
		}
		return w, errors.Wrap(err, "scheduling session")
	}

	w.Step = StepConfirmed
	w.SessionID = sess.ID
	w.MeetingLink = sess.MeetingLink

	svc.sendConfirmation(t, sess, student)
	return w, nil
}

func (svc *Service) sendConfirmation(t tutor.Tutor, sess calendar.Session, student Student) {
	if student.Email == "" {
		return
	}
	msg := &core.EmailMessage{
		To:           []mail.Address{{Name: student.Name, Address: student.Email}},
		Subject:      "Your session with " + t.Name + " is booked",
		TemplateName: confirmationTemplate,
		TemplateData: map[string]interface{}{
			"StudentName": student.Name,
			"TutorName":   t.Name,
			"Date":        core.ParseDate(sess.Date).Format("Monday, January 2, 2006"),
			"Time":        sess.Time,
			"Duration":    sess.Duration,
			"Amount":      t.HourlyRate,
			"MeetingLink": sess.MeetingLink,
		},
		Attachments: []core.Attachment{{
			Filename:    "session.ics",
			ContentType: "text/calendar",
			Content:     []byte(calendar.ExportICS(svc.conf.AppName, []calendar.Session{sess}, svc.conf.ReferenceDate, time.UTC)),
		}},
	}
	svc.log.Info("booking confirmed", map[string]interface{}{"session": sess.ID, "tutor": t.ID})
	svc.mailSvc.SendMessages(msg)
}

// subjectOf is the subject a session with t is booked for: the tutor's first skill.
func subjectOf(t tutor.Tutor) string {
	if len(t.Skills) > 0 {
		return t.Skills[0]
	}
	return t.Department
}
