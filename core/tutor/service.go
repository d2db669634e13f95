package tutor

import (
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core"
)

type (
	Repository interface {
		// QueryAllTutors returns every tutor in catalogue order.
		QueryAllTutors() ([]Tutor, error)
		GetTutorByID(id string) (Tutor, error)
		QueryReviewsByTutor(tutorID string) ([]Review, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll() ([]Tutor, error) {
	return svc.repo.QueryAllTutors()
}

func (svc *Service) GetByID(id string) (Tutor, error) {
	return svc.repo.GetTutorByID(core.CleanString(id))
}

// Discover runs the discovery engine over the whole catalogue.
func (svc *Service) Discover(c Criteria) (Result, error) {
	tutors, err := svc.repo.QueryAllTutors()
	if err != nil {
		return Result{}, errors.Wrap(err, "querying tutors")
	}
	return Discover(tutors, c), nil
}

// Profile gathers the tutor profile page. An empty date selects the tutor's first available date.
func (svc *Service) Profile(id, date string) (Profile, error) {
	t, err := svc.GetByID(id)
	if err != nil {
		return Profile{}, err
	}
	reviews, err := svc.repo.QueryReviewsByTutor(t.ID)
	if err != nil {
		return Profile{}, errors.Wrap(err, "querying reviews")
	}
	if date == "" && len(t.Availability) > 0 {
		date = t.Availability[0].Date
	}
	times := t.TimesOn(date)
	if times == nil {
		times = []string{}
	}
	return Profile{
		Tutor:        t,
		Reviews:      reviews,
		Distribution: RatingDistribution(reviews),
		SelectedDate: date,
		Times:        times,
	}, nil
}

// Skills returns every distinct skill in catalogue order.
func (svc *Service) Skills() ([]string, error) {
	tutors, err := svc.repo.QueryAllTutors()
	if err != nil {
		return nil, errors.Wrap(err, "querying tutors")
	}
	seen := make(map[string]bool)
	var skills []string
	for _, t := range tutors {
		for _, s := range t.Skills {
			if !seen[s] {
				seen[s] = true
				skills = append(skills, s)
			}
		}
	}
	return skills, nil
}
