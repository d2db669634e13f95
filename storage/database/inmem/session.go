package inmemdb

import (
	"time"

	"github.com/trezcool/tutormate/core/session"
)

type uiSessionRepository struct {
	db *uiSessionTable
}

func NewUISessionRepository(db *DB) session.Repository {
	return &uiSessionRepository{db: db.ui}
}

func (repo *uiSessionRepository) CreateSession(s session.Session) (session.Session, error) {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.table[s.ID] = &s
	return s, nil
}

func (repo *uiSessionRepository) GetSessionByID(id string) (session.Session, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if s, ok := repo.db.table[id]; ok {
		return *s, nil
	}
	return session.Session{}, session.ErrNotFound
}

func (repo *uiSessionRepository) UpdateSession(s session.Session) (session.Session, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[s.ID]; !ok {
		return session.Session{}, session.ErrNotFound
	}
	repo.db.table[s.ID] = &s
	return s, nil
}

func (repo *uiSessionRepository) DeleteSession(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	delete(repo.db.table, id)
	return nil
}

func (repo *uiSessionRepository) DeleteSessionsBefore(t time.Time) (int, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var n int
	for id, s := range repo.db.table {
		if s.UpdatedAt.Before(t) {
			delete(repo.db.table, id)
			n++
		}
	}
	return n, nil
}
