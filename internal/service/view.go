package service

import (
	"hustlex/internal/domain"
	"hustlex/internal/i18n"
)

// FieldView is one editable input of the profile form
type FieldView struct {
	Field       domain.Field
	Label       string
	Placeholder string
	Value       string
	Editable    bool
}

// PreviewLine is one row of the read-only preview
type PreviewLine struct {
	Label string
	Value string
}

// View is everything the front-end shows, in one locale
type View struct {
	Language domain.Language

	AppTitle      string
	LanguageLabel string
	ProfileTitle  string
	Fields        []FieldView
	EditLabel     string
	UpdateLabel   string
	UpdateUsage   string
	CurrentData   string
	Preview       []PreviewLine
	FooterNote    string

	AssistantTitle   string
	InputPlaceholder string
	HintsPrefix      string
	Hints            []string
}

// Render builds the view from state. It has no side effects.
func Render(dict *i18n.Dictionary, profile domain.Profile, edit domain.EditState) View {
	fields := make([]FieldView, 0, 2)
	for _, field := range []domain.Field{domain.FieldName, domain.FieldContact} {
		fields = append(fields, FieldView{
			Field:       field,
			Label:       dict.Labels.For(field),
			Placeholder: dict.Placeholders.For(field),
			Value:       profile.Get(field),
			Editable:    edit.Editing(field),
		})
	}

	hints := make([]string, len(dict.Hints))
	copy(hints, dict.Hints)

	return View{
		Language: dict.Language,

		AppTitle:      dict.AppTitle,
		LanguageLabel: dict.LanguageLabel,
		ProfileTitle:  dict.ProfileTitle,
		Fields:        fields,
		EditLabel:     dict.Edit,
		UpdateLabel:   dict.UpdateProfile,
		UpdateUsage:   dict.UpdateUsage,
		CurrentData:   dict.CurrentData,
		Preview: []PreviewLine{
			{Label: dict.PreviewLabels.Name, Value: profile.Display(domain.FieldName)},
			{Label: dict.PreviewLabels.Contact, Value: profile.Display(domain.FieldContact)},
			// Age is not collected by the assistant
			{Label: dict.PreviewLabels.Age, Value: domain.Placeholder},
		},
		FooterNote: dict.FooterNote,

		AssistantTitle:   dict.AssistantTitle,
		InputPlaceholder: dict.TypingPlaceholder,
		HintsPrefix:      dict.HintsPrefix,
		Hints:            hints,
	}
}
