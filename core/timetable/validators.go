package timetable

import (
	"regexp"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/devshaki/ShakSite/core"
)

var (
	hhmmTag   = "hhmm"
	hhmmText  = "must be a zero-padded HH:MM time"
	hhmmRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// RegisterValidators registers the timetable validation tags.
func RegisterValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(hhmmTag, hhmmValidation)
	core.RegisterCustomTranslation(validate, translator, hhmmTag, hhmmText)
}

// hhmmValidation only allows zero-padded fixed-width "HH:MM" times; the
// fixed width is load-bearing, slot lookups compare these lexicographically.
func hhmmValidation(fl validator.FieldLevel) bool {
	return hhmmRegex.MatchString(fl.Field().String())
}
