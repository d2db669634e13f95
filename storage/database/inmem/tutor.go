package inmemdb

import (
	"github.com/trezcool/tutormate/core/tutor"
)

type tutorRepository struct {
	db *tutorTable
}

func NewTutorRepository(db *DB) tutor.Repository {
	return &tutorRepository{db: db.tutor}
}

func (repo *tutorRepository) QueryAllTutors() ([]tutor.Tutor, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]tutor.Tutor(nil), repo.db.tutors...), nil
}

func (repo *tutorRepository) GetTutorByID(id string) (tutor.Tutor, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, t := range repo.db.tutors {
		if t.ID == id {
			return t, nil
		}
	}
	return tutor.Tutor{}, tutor.ErrNotFound
}

func (repo *tutorRepository) QueryReviewsByTutor(tutorID string) ([]tutor.Review, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	reviews := make([]tutor.Review, 0)
	for _, r := range repo.db.reviews {
		if r.TutorID == tutorID {
			reviews = append(reviews, r)
		}
	}
	return reviews, nil
}
