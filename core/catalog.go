package core

// Departments lists every department a tutor, class or recording can belong to.
var Departments = []string{
	"Computer Science",
	"Mathematics",
	"Physics",
	"Chemistry",
	"Engineering",
	"Biology",
	"Economics",
	"Business",
}

// Levels lists the academic levels a student or tutor can declare.
var Levels = []string{
	"1st Year",
	"2nd Year",
	"3rd Year",
	"4th Year",
	"Masters Student",
	"PhD Candidate",
}

// ExperienceBrackets are the "years of experience" choices offered to tutors.
var ExperienceBrackets = []string{"<1", "1-2", "3-5", "5+"}

func IsDepartment(s string) bool { return contains(Departments, s) }
func IsLevel(s string) bool      { return contains(Levels, s) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
