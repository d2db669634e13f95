package profile

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutormate/core"
)

var (
	experienceTag  = "experience"
	experienceText = "unknown experience bracket"

	tutorRequiredTag  = "tutorrequired"
	tutorRequiredText = "this field is required for tutors"
)

// InitValidators registers the profile validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(experienceTag, experienceValidation)
	core.RegisterCustomTranslation(validate, translator, experienceTag, experienceText)

	validate.RegisterStructValidation(profileStructValidation, UpdateProfile{})
	core.RegisterCustomTranslation(validate, translator, tutorRequiredTag, tutorRequiredText)
}

// Custom Validators

func experienceValidation(fl validator.FieldLevel) bool {
	exp := fl.Field().String()
	for _, b := range core.ExperienceBrackets {
		if exp == b {
			return true
		}
	}
	return false
}

// profileStructValidation requires the tutor settings of students who tutor.
func profileStructValidation(sl validator.StructLevel) {
	up, ok := sl.Current().Interface().(UpdateProfile)
	if !ok || !up.IsTutor {
		return
	}
	if up.Experience == "" {
		sl.ReportError(up.Experience, "experience", "Experience", tutorRequiredTag, "")
	}
	if len(SplitSkills(up.Skills)) == 0 {
		sl.ReportError(up.Skills, "skills", "Skills", tutorRequiredTag, "")
	}
}
