package recording

import (
	"errors"

	"github.com/trezcool/tutormate/core"
)

var (
	// errors
	ErrNotFound = errors.New("recording not found")
)

// AllDepartments disables the department filter.
const AllDepartments = "all"

type Recording struct {
	ID         string   `json:"id" yaml:"id"`
	Title      string   `json:"title" yaml:"title"`
	TutorName  string   `json:"tutor_name" yaml:"tutor_name"`
	Subject    string   `json:"subject" yaml:"subject"`
	Department string   `json:"department" yaml:"department"`
	Date       string   `json:"date" yaml:"date"`
	Duration   string   `json:"duration" yaml:"duration"`
	Views      int      `json:"views" yaml:"views"`
	Thumbnail  string   `json:"thumbnail" yaml:"thumbnail"`
	Topics     []string `json:"topics" yaml:"topics"`
}

// Filter keeps the recordings of department whose title, subject or a topic contains search.
func Filter(recordings []Recording, department, search string) []Recording {
	search = core.CleanString(search)
	out := make([]Recording, 0, len(recordings))
	for _, r := range recordings {
		if department != "" && department != AllDepartments && r.Department != department {
			continue
		}
		if search != "" && !r.matches(search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (r Recording) matches(search string) bool {
	if core.ContainsFold(r.Title, search) || core.ContainsFold(r.Subject, search) {
		return true
	}
	for _, topic := range r.Topics {
		if core.ContainsFold(topic, search) {
			return true
		}
	}
	return false
}

// TotalViews sums the views of recordings.
func TotalViews(recordings []Recording) int {
	var total int
	for _, r := range recordings {
		total += r.Views
	}
	return total
}

// Library is the recordings page: the filtered list, and stats over the whole catalogue.
type Library struct {
	Recordings []Recording `json:"recordings"`
	Count      int         `json:"count"`
	Total      int         `json:"total"`
	TotalViews int         `json:"total_views"`
}
