package groupclass

import "errors"

var (
	// errors
	ErrNotFound      = errors.New("group class not found")
	ErrClassFull     = errors.New("this class is full")
	ErrAlreadyJoined = errors.New("you already joined this class")
)

// AllDepartments disables the department filter.
const AllDepartments = "all"

type GroupClass struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	TutorName   string   `json:"tutor_name" yaml:"tutor_name"`
	TutorAvatar string   `json:"tutor_avatar" yaml:"tutor_avatar"`
	Department  string   `json:"department" yaml:"department"`
	Subject     string   `json:"subject" yaml:"subject"`
	Date        string   `json:"date" yaml:"date"`
	Time        string   `json:"time" yaml:"time"`
	Duration    string   `json:"duration" yaml:"duration"`
	Enrolled    int      `json:"enrolled" yaml:"enrolled"`
	MaxStudents int      `json:"max_students" yaml:"max_students"`
	Price       float64  `json:"price" yaml:"price"`
	Description string   `json:"description" yaml:"description"`
	Topics      []string `json:"topics" yaml:"topics"`
}

// SeatsLeft never goes below 0.
func (c GroupClass) SeatsLeft() int {
	if left := c.MaxStudents - c.Enrolled; left > 0 {
		return left
	}
	return 0
}

func (c GroupClass) Full() bool { return c.SeatsLeft() == 0 }

// Listing is a group class as seen by one UI session, its own enrolment included.
type Listing struct {
	GroupClass
	SeatsLeft int  `json:"seats_left"`
	Joined    bool `json:"joined"`
}

// Filter keeps the classes of department, all of them when department is empty or AllDepartments.
func Filter(classes []GroupClass, department string) []GroupClass {
	out := make([]GroupClass, 0, len(classes))
	for _, c := range classes {
		if department == "" || department == AllDepartments || c.Department == department {
			out = append(out, c)
		}
	}
	return out
}

// List decorates classes with the enrolments of one UI session.
// A joined class counts the session's seat on top of the seeded enrolment.
func List(classes []GroupClass, joined map[string]bool) []Listing {
	out := make([]Listing, 0, len(classes))
	for _, c := range classes {
		l := Listing{GroupClass: c, Joined: joined[c.ID]}
		if l.Joined {
			l.Enrolled++
		}
		l.SeatsLeft = l.GroupClass.SeatsLeft()
		out = append(out, l)
	}
	return out
}
