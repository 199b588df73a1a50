package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"hustlex/internal/domain"
	"hustlex/internal/i18n"
)

var contactPattern = regexp.MustCompile(`.+@.+\..+`)

// Validate checks a profile form and returns localized errors per invalid field.
// A field missing from the result is valid.
func Validate(form domain.ProfileForm, dict *i18n.Dictionary) map[domain.Field]string {
	errs := make(map[domain.Field]string)

	if strings.TrimSpace(form.Name) == "" {
		errs[domain.FieldName] = dict.Errors.Name
	}

	if form.Contact != "" && !contactPattern.MatchString(form.Contact) {
		errs[domain.FieldContact] = dict.Errors.Contact
	}

	if age := strings.TrimSpace(form.Age); age != "" {
		n, err := strconv.ParseFloat(age, 64)
		if err != nil || math.IsNaN(n) || n < 0 || n > 120 {
			errs[domain.FieldAge] = dict.Errors.Age
		}
	}

	return errs
}
