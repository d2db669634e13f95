package profile_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutormate/core/profile"
	"github.com/trezcool/tutormate/tests"
)

func TestUpdateProfile_Validate(t *testing.T) {
	validate := testutil.NewValidator()
	valid := func(fn func(up *profile.UpdateProfile)) profile.UpdateProfile {
		up := profile.UpdateProfile{
			FirstName:  "Alex",
			LastName:   "Martinez",
			Email:      "Alex.Martinez@University.edu ",
			Department: "Computer Science",
			Level:      "3rd Year",
		}
		if fn != nil {
			fn(&up)
		}
		return up
	}

	tests := []struct {
		name       string
		up         profile.UpdateProfile
		wantFields []string
	}{
		{name: "valid", up: valid(nil)},
		{name: "blank names", up: valid(func(up *profile.UpdateProfile) { up.FirstName, up.LastName = " ", "" }), wantFields: []string{"first_name", "last_name"}},
		{name: "bad email", up: valid(func(up *profile.UpdateProfile) { up.Email = "alex@" }), wantFields: []string{"email"}},
		{name: "unknown department", up: valid(func(up *profile.UpdateProfile) { up.Department = "Art" }), wantFields: []string{"department"}},
		{name: "unknown level", up: valid(func(up *profile.UpdateProfile) { up.Level = "5th Year" }), wantFields: []string{"level"}},
		{
			name:       "tutor without settings",
			up:         valid(func(up *profile.UpdateProfile) { up.IsTutor = true; up.Skills = " , " }),
			wantFields: []string{"experience", "skills"},
		},
		{
			name: "tutor with bad settings",
			up: valid(func(up *profile.UpdateProfile) {
				up.IsTutor = true
				up.HourlyRate = -1
				up.Experience = "10+"
				up.Skills = "Java"
			}),
			wantFields: []string{"hourly_rate", "experience"},
		},
		{
			name: "tutor",
			up: valid(func(up *profile.UpdateProfile) {
				up.IsTutor = true
				up.HourlyRate = 25
				up.Experience = "<1"
				up.Skills = "Java"
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := tt.up
			err := up.Validate(validate)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				assert.Equal(t, "alex.martinez@university.edu", up.Email)
				return
			}
			verrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "err = %v", err)
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestProfile_Apply(t *testing.T) {
	p := profile.Default()
	assert.Equal(t, "Alex Martinez", p.FullName())

	up := profile.UpdateProfile{
		FirstName: "Sam", LastName: "Lee", Email: "sam@uni.edu", Department: "Physics", Level: "PhD Candidate",
		Skills: "Optics",
	}
	got := p.Apply(up)
	assert.Equal(t, "Sam Lee", got.FullName())
	assert.False(t, got.IsTutor)
	assert.Equal(t, p.Tutor, got.Tutor)

	up.IsTutor = true
	up.HourlyRate = 40
	up.Experience = "5+"
	up.Skills = "Optics, Lasers,,optics "
	got = p.Apply(up)
	assert.Equal(t, profile.TutorSettings{HourlyRate: 40, Experience: "5+", Skills: []string{"Optics", "Lasers"}}, got.Tutor)
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Python", "Machine Learning"}, profile.SplitSkills(" Python,Machine Learning , "))
	assert.Equal(t, []string{}, profile.SplitSkills(""))
}
