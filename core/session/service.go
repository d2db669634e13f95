package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/tutormate/core"
	"github.com/trezcool/tutormate/core/calendar"
	"github.com/trezcool/tutormate/core/navigation"
)

type (
	Repository interface {
		CreateSession(s Session) (Session, error)
		GetSessionByID(id string) (Session, error)
		UpdateSession(s Session) (Session, error)
		DeleteSession(id string) error
		// DeleteSessionsBefore drops the sessions not updated since t and returns how many were dropped.
		DeleteSessionsBefore(t time.Time) (int, error)
	}

	Service struct {
		repo Repository
		conf *core.Config
		now  func() time.Time
	}
)

func NewService(repo Repository, conf *core.Config) *Service {
	return &Service{repo: repo, conf: conf, now: time.Now}
}

// Login starts a session and leaves the login page for the dashboard.
func (svc *Service) Login() (Session, error) {
	ref := svc.conf.ReferenceDate
	s := New(uuid.New().String(), calendar.YearMonth{Year: ref.Year(), Month: ref.Month()}, svc.now().UTC())
	s = s.Navigate(navigation.PageDashboard, nil)
	return svc.repo.CreateSession(s)
}

func (svc *Service) Get(id string) (Session, error) {
	return svc.repo.GetSessionByID(id)
}

func (svc *Service) Save(s Session) (Session, error) {
	s.UpdatedAt = svc.now().UTC()
	return svc.repo.UpdateSession(s)
}

// Logout discards the session.
func (svc *Service) Logout(id string) error {
	return svc.repo.DeleteSession(id)
}

// Expire drops the sessions idle for longer than the session expiration delta.
func (svc *Service) Expire() (int, error) {
	return svc.repo.DeleteSessionsBefore(svc.now().UTC().Add(-svc.conf.Server.SessionExpirationDelta))
}
