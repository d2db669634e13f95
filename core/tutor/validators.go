package tutor

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutormate/core"
)

var (
	sortKeyTag  = "sortkey"
	sortKeyText = "unknown sort key"

	priceRangeText = "max price cannot be lower than min price"
)

// InitValidators registers the tutor validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(sortKeyTag, sortKeyValidation)
	core.RegisterCustomTranslation(validate, translator, sortKeyTag, sortKeyText)
	core.RegisterCustomTranslation(validate, translator, "gtefield", priceRangeText, true)
}

// Validate cleans the criteria then checks them against their validation tags.
func (c *Criteria) Validate(validate *validator.Validate) error {
	c.Clean()
	return validate.Struct(c)
}

// Custom Validators

func sortKeyValidation(fl validator.FieldLevel) bool {
	return SortKey(fl.Field().String()).Valid()
}
