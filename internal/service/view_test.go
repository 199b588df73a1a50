package service

import (
	"testing"

	"hustlex/internal/domain"
	"hustlex/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	resolver := testutil.NewTestResolver(t)
	dict := resolver.Resolve(domain.LangEnglish)

	view := Render(dict, domain.Profile{Name: "Abebe"}, domain.EditState{Field: domain.FieldContact})

	assert.Equal(t, "HustleX", view.AppTitle)
	require.Len(t, view.Fields, 2)
	assert.Equal(t, FieldView{
		Field:       domain.FieldName,
		Label:       "Name",
		Placeholder: "Your name",
		Value:       "Abebe",
		Editable:    false,
	}, view.Fields[0])
	assert.True(t, view.Fields[1].Editable)
	assert.Equal(t, "", view.Fields[1].Value)

	assert.Equal(t, []PreviewLine{
		{Label: "Name:", Value: "Abebe"},
		{Label: "Contact:", Value: domain.Placeholder},
		{Label: "Age:", Value: domain.Placeholder},
	}, view.Preview)

	assert.Equal(t, "Try:", view.HintsPrefix)
	assert.Equal(t, dict.TypingPlaceholder, view.InputPlaceholder)
	assert.Len(t, view.Hints, 3)
}

func TestRender_IsPure(t *testing.T) {
	resolver := testutil.NewTestResolver(t)
	dict := resolver.Resolve(domain.LangOromo)
	profile := domain.Profile{Name: "Chaltu", Contact: "@chaltu"}

	first := Render(dict, profile, domain.EditState{})
	first.Hints[0] = "mutated"
	second := Render(dict, profile, domain.EditState{})

	assert.NotEqual(t, "mutated", second.Hints[0])
	assert.Equal(t, dict.Hints, second.Hints)
}

func TestRender_HintsAreRecognised(t *testing.T) {
	resolver := testutil.NewTestResolver(t)
	interpreter := NewInterpreter()

	for _, lang := range domain.Languages {
		for _, hint := range Render(resolver.Resolve(lang), domain.Profile{}, domain.EditState{}).Hints {
			assert.NotEqual(t, domain.ActionUnknown, interpreter.Interpret(hint).Kind, "%s hint %q", lang, hint)
		}
	}
}
