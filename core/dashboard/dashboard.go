package dashboard

import (
	"github.com/pkg/errors"

	"github.com/trezcool/tutormate/core/calendar"
	"github.com/trezcool/tutormate/core/groupclass"
	"github.com/trezcool/tutormate/core/tutor"
)

const (
	TopRatedMinRating = 4.8
	sectionSize       = 4
	classesSize       = 3
)

// PopularSkills are the shortcuts offered under the search bar.
var PopularSkills = []string{
	"Java",
	"Calculus",
	"C++",
	"CSC Courses",
	"Web Development",
	"Financial Modelling",
	"Linear Algebra",
	"AI & Machine Learning",
}

type (
	TutorLister interface {
		QueryAll() ([]tutor.Tutor, error)
	}

	ClassLister interface {
		QueryAll() ([]groupclass.GroupClass, error)
	}

	SessionLister interface {
		Upcoming() ([]calendar.Session, error)
	}

	Dashboard struct {
		FirstName     string                  `json:"first_name"`
		PopularSkills []string                `json:"popular_skills"`
		TopRated      []tutor.Tutor           `json:"top_rated"`
		Verified      []tutor.Tutor           `json:"verified"`
		GroupClasses  []groupclass.GroupClass `json:"group_classes"`
		Upcoming      []calendar.Session      `json:"upcoming_sessions"`
	}

	Service struct {
		tutors   TutorLister
		classes  ClassLister
		sessions SessionLister
	}
)

func NewService(tutors TutorLister, classes ClassLister, sessions SessionLister) *Service {
	return &Service{tutors: tutors, classes: classes, sessions: sessions}
}

// Build gathers the home page of firstName.
func (svc *Service) Build(firstName string) (Dashboard, error) {
	tutors, err := svc.tutors.QueryAll()
	if err != nil {
		return Dashboard{}, errors.Wrap(err, "querying tutors")
	}
	classes, err := svc.classes.QueryAll()
	if err != nil {
		return Dashboard{}, errors.Wrap(err, "querying group classes")
	}
	upcoming, err := svc.sessions.Upcoming()
	if err != nil {
		return Dashboard{}, errors.Wrap(err, "querying sessions")
	}

	return Dashboard{
		FirstName:     firstName,
		PopularSkills: PopularSkills,
		TopRated:      TopRated(tutors),
		Verified:      firstTutors(tutors, sectionSize),
		GroupClasses:  firstClasses(classes, classesSize),
		Upcoming:      upcoming,
	}, nil
}

// TopRated returns the first tutors rated TopRatedMinRating or more.
func TopRated(tutors []tutor.Tutor) []tutor.Tutor {
	top := make([]tutor.Tutor, 0, sectionSize)
	for _, t := range tutors {
		if t.Rating >= TopRatedMinRating {
			top = append(top, t)
			if len(top) == sectionSize {
				break
			}
		}
	}
	return top
}

func firstTutors(tutors []tutor.Tutor, n int) []tutor.Tutor {
	if len(tutors) < n {
		n = len(tutors)
	}
	out := make([]tutor.Tutor, n)
	copy(out, tutors[:n])
	return out
}

func firstClasses(classes []groupclass.GroupClass, n int) []groupclass.GroupClass {
	if len(classes) < n {
		n = len(classes)
	}
	out := make([]groupclass.GroupClass, n)
	copy(out, classes[:n])
	return out
}
