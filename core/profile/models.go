package profile

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutormate/core"
)

// TutorSettings are only filled in by students who also tutor.
type TutorSettings struct {
	HourlyRate float64  `json:"hourly_rate"`
	Experience string   `json:"experience"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
}

// Profile is the settings page of the student using the app.
type Profile struct {
	FirstName  string        `json:"first_name"`
	LastName   string        `json:"last_name"`
	Email      string        `json:"email"`
	Avatar     string        `json:"avatar"`
	Department string        `json:"department"`
	Level      string        `json:"level"`
	Phone      string        `json:"phone"`
	IsTutor    bool          `json:"is_tutor"`
	Tutor      TutorSettings `json:"tutor"`
}

// Default is the profile every UI session starts with.
func Default() Profile {
	return Profile{
		FirstName:  "Alex",
		LastName:   "Martinez",
		Email:      "alex.martinez@university.edu",
		Avatar:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400",
		Department: "Computer Science",
		Level:      "3rd Year",
		Tutor: TutorSettings{
			HourlyRate: 25,
			Experience: "1-2",
			Bio:        "Computer science student passionate about web development and software design. Friendly and patient teaching approach.",
			Skills:     []string{"Java", "Web Development", "Databases", "Software Engineering"},
		},
	}
}

func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// UpdateProfile defines what information may be provided to modify the Profile.
type UpdateProfile struct {
	FirstName  string  `json:"first_name" validate:"required"`
	LastName   string  `json:"last_name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Department string  `json:"department" validate:"required,department"`
	Level      string  `json:"level" validate:"required,level"`
	Phone      string  `json:"phone" validate:"omitempty,max=30"`
	IsTutor    bool    `json:"is_tutor"`
	HourlyRate float64 `json:"hourly_rate" validate:"min=0"`
	Experience string  `json:"experience" validate:"omitempty,experience"`
	Bio        string  `json:"bio" validate:"max=1000"`
	// Skills is a comma-separated list, e.g. "Python, Machine Learning".
	Skills string `json:"skills"`
}

func (up *UpdateProfile) Validate(validate *validator.Validate) error {
	up.FirstName = core.CleanString(up.FirstName)
	up.LastName = core.CleanString(up.LastName)
	up.Email = core.CleanString(up.Email, true /* lower */)
	up.Department = core.CleanString(up.Department)
	up.Level = core.CleanString(up.Level)
	up.Phone = core.CleanString(up.Phone)
	up.Experience = core.CleanString(up.Experience)
	up.Bio = core.CleanString(up.Bio)

	return validate.Struct(up)
}

// Apply returns p updated with up. Tutor settings are kept as they were when up.IsTutor is false.
func (p Profile) Apply(up UpdateProfile) Profile {
	p.FirstName = up.FirstName
	p.LastName = up.LastName
	p.Email = up.Email
	p.Department = up.Department
	p.Level = up.Level
	p.Phone = up.Phone
	p.IsTutor = up.IsTutor
	if up.IsTutor {
		p.Tutor = TutorSettings{
			HourlyRate: up.HourlyRate,
			Experience: up.Experience,
			Bio:        up.Bio,
			Skills:     SplitSkills(up.Skills),
		}
	}
	return p
}

// SplitSkills splits a comma-separated skill list, dropping blanks and duplicates.
func SplitSkills(s string) []string {
	seen := make(map[string]bool)
	skills := make([]string, 0)
	for _, skill := range strings.Split(s, ",") {
		skill = core.CleanString(skill)
		if skill == "" || seen[strings.ToLower(skill)] {
			continue
		}
		seen[strings.ToLower(skill)] = true
		skills = append(skills, skill)
	}
	return skills
}
