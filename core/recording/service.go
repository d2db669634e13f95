package recording

import (
	"github.com/trezcool/tutormate/core"
)

type (
	Repository interface {
		QueryAllRecordings() ([]Recording, error)
		GetRecordingByID(id string) (Recording, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(department, search string) (Library, error) {
	department = core.CleanString(department)
	if department != "" && department != AllDepartments && !core.IsDepartment(department) {
		return Library{}, core.NewFieldValidationError("department", "unknown department")
	}
	all, err := svc.repo.QueryAllRecordings()
	if err != nil {
		return Library{}, err
	}
	filtered := Filter(all, department, search)
	return Library{
		Recordings: filtered,
		Count:      len(filtered),
		Total:      len(all),
		TotalViews: TotalViews(all),
	}, nil
}

// Play returns the recording to stream.
func (svc *Service) Play(id string) (Recording, error) {
	return svc.repo.GetRecordingByID(core.CleanString(id))
}
