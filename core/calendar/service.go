package calendar

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core"
)

type (
	Repository interface {
		// QuerySessions returns every session, seeded ones first then in booking order.
		QuerySessions() ([]Session, error)
		CreateSession(s Session) (Session, error)
	}

	Service struct {
		repo Repository
		conf *core.Config
	}
)

func NewService(repo Repository, conf *core.Config) *Service {
	return &Service{repo: repo, conf: conf}
}

// Today is the reference date of the dataset.
func (svc *Service) Today() time.Time {
	return svc.conf.ReferenceDate
}

// CurrentMonth is the month holding Today.
func (svc *Service) CurrentMonth() YearMonth {
	today := svc.Today()
	return YearMonth{Year: today.Year(), Month: today.Month()}
}

func (svc *Service) QueryAll() ([]Session, error) {
	return svc.repo.QuerySessions()
}

// Upcoming returns the upcoming sessions, soonest first.
func (svc *Service) Upcoming() ([]Session, error) {
	sessions, err := svc.repo.QuerySessions()
	if err != nil {
		return nil, errors.Wrap(err, "querying sessions")
	}
	upcoming := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Status == StatusUpcoming {
			upcoming = append(upcoming, s)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		ti, _ := upcoming[i].StartsAt(time.UTC)
		tj, _ := upcoming[j].StartsAt(time.UTC)
		return ti.Before(tj)
	})
	return upcoming, nil
}

// Schedule records a new upcoming session.
func (svc *Service) Schedule(s Session) (Session, error) {
	if _, err := s.StartsAt(time.UTC); err != nil {
		return Session{}, core.NewFieldValidationError("date", "invalid session date or time")
	}
	s.ID = uuid.New().String()
	s.Status = StatusUpcoming
	return svc.repo.CreateSession(s)
}

func (svc *Service) Month(ym YearMonth) (Month, error) {
	if ym.Month < time.January || ym.Month > time.December {
		return Month{}, core.NewFieldValidationError("month", "month must be between 1 and 12")
	}
	sessions, err := svc.repo.QuerySessions()
	if err != nil {
		return Month{}, errors.Wrap(err, "querying sessions")
	}
	return BuildMonth(ym, svc.Today(), sessions), nil
}

// Week is the week holding Today.
func (svc *Service) Week() (Week, error) {
	sessions, err := svc.repo.QuerySessions()
	if err != nil {
		return Week{}, errors.Wrap(err, "querying sessions")
	}
	return BuildWeek(svc.Today(), svc.Today(), sessions), nil
}

// ExportICS exports every session as an iCalendar document.
func (svc *Service) ExportICS() (string, error) {
	sessions, err := svc.repo.QuerySessions()
	if err != nil {
		return "", errors.Wrap(err, "querying sessions")
	}
	return ExportICS(svc.conf.AppName, sessions, svc.Today(), time.UTC), nil
}
