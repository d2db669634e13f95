package groupclass

import (
	"github.com/trezcool/tutormate/core"
)

type (
	Repository interface {
		QueryAllClasses() ([]GroupClass, error)
		GetClassByID(id string) (GroupClass, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll() ([]GroupClass, error) {
	return svc.repo.QueryAllClasses()
}

// Query lists the classes of department, joined marks the ones the UI session joined.
func (svc *Service) Query(department string, joined map[string]bool) ([]Listing, error) {
	department = core.CleanString(department)
	if department != "" && department != AllDepartments && !core.IsDepartment(department) {
		return nil, core.NewFieldValidationError("department", "unknown department")
	}
	classes, err := svc.repo.QueryAllClasses()
	if err != nil {
		return nil, err
	}
	return List(Filter(classes, department), joined), nil
}

// Join checks that the UI session can take a seat in class id.
// The seeded enrolment is left as is: the caller records the seat in joined.
func (svc *Service) Join(id string, joined map[string]bool) (Listing, error) {
	c, err := svc.repo.GetClassByID(core.CleanString(id))
	if err != nil {
		return Listing{}, err
	}
	if joined[c.ID] {
		return Listing{}, core.NewValidationError(ErrAlreadyJoined, core.FieldError{Field: "class", Error: ErrAlreadyJoined.Error()})
	}
	if c.Full() {
		return Listing{}, core.NewValidationError(ErrClassFull, core.FieldError{Field: "class", Error: ErrClassFull.Error()})
	}
	return List([]GroupClass{c}, map[string]bool{c.ID: true})[0], nil
}
