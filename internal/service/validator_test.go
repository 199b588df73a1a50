package service

import (
	"testing"

	"hustlex/internal/domain"
	"hustlex/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	dict := testutil.NewTestResolver(t).Resolve(domain.LangEnglish)

	tests := []struct {
		name     string
		form     domain.ProfileForm
		expected map[domain.Field]string
	}{
		{
			name: "all invalid",
			form: domain.ProfileForm{Name: "", Contact: "bad", Age: "200"},
			expected: map[domain.Field]string{
				domain.FieldName:    "Name is required",
				domain.FieldContact: "Enter a valid email address",
				domain.FieldAge:     "Enter a valid age (0-120)",
			},
		},
		{
			name:     "valid with empty contact",
			form:     domain.ProfileForm{Name: "A", Contact: "", Age: "30"},
			expected: map[domain.Field]string{},
		},
		{
			name:     "whitespace name",
			form:     domain.ProfileForm{Name: "   ", Contact: "a@b.co"},
			expected: map[domain.Field]string{domain.FieldName: "Name is required"},
		},
		{
			name:     "age absent",
			form:     domain.ProfileForm{Name: "A"},
			expected: map[domain.Field]string{},
		},
		{
			name:     "age not a number",
			form:     domain.ProfileForm{Name: "A", Age: "old"},
			expected: map[domain.Field]string{domain.FieldAge: "Enter a valid age (0-120)"},
		},
		{
			name:     "age NaN",
			form:     domain.ProfileForm{Name: "A", Age: "NaN"},
			expected: map[domain.Field]string{domain.FieldAge: "Enter a valid age (0-120)"},
		},
		{
			name:     "age negative",
			form:     domain.ProfileForm{Name: "A", Age: "-1"},
			expected: map[domain.Field]string{domain.FieldAge: "Enter a valid age (0-120)"},
		},
		{
			name:     "age bounds inclusive",
			form:     domain.ProfileForm{Name: "A", Age: "120"},
			expected: map[domain.Field]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Validate(tt.form, dict))
		})
	}
}

func TestValidate_Localized(t *testing.T) {
	dict := testutil.NewTestResolver(t).Resolve(domain.LangAmharic)

	errs := Validate(domain.ProfileForm{}, dict)
	assert.Equal(t, "ስም አስፈላጊ ነው", errs[domain.FieldName])
}
