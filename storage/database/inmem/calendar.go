package inmemdb

import (
	"github.com/trezcool/tutormate/core/calendar"
)

type sessionRepository struct {
	db *sessionTable
}

func NewSessionRepository(db *DB) calendar.Repository {
	return &sessionRepository{db: db.session}
}

func (repo *sessionRepository) QuerySessions() ([]calendar.Session, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]calendar.Session(nil), repo.db.table...), nil
}

func (repo *sessionRepository) CreateSession(s calendar.Session) (calendar.Session, error) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.table = append(repo.db.table, s)
	return s, nil
}
