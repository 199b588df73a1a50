package i18n

import "hustlex/internal/domain"

// Responses are the assistant's chat replies
type Responses struct {
	Hello     string
	Enabled   string
	Updated   string
	Unknown   string
	Cancelled string
	Error     string
}

// FieldTexts holds one string per profile form field
type FieldTexts struct {
	Name    string
	Contact string
	Age     string
}

// For returns the text of the given field
func (f FieldTexts) For(field domain.Field) string {
	switch field {
	case domain.FieldName:
		return f.Name
	case domain.FieldContact:
		return f.Contact
	case domain.FieldAge:
		return f.Age
	}
	return ""
}

// JobTexts are the strings of the job posting conversation
type JobTexts struct {
	Prompts       map[domain.JobField]string
	VerifiedRetry string
	Posted        string
	Cancelled     string
	Unavailable   string

	failed func(reason string) string
}

// Prompt returns the question asked for field
func (j JobTexts) Prompt(field domain.JobField) string {
	return j.Prompts[field]
}

// Failed returns the "failed to post" reply with the upstream reason
func (j JobTexts) Failed(reason string) string {
	return j.failed(reason)
}

// Dictionary is the complete set of display strings for one locale.
// Renders read a single Dictionary so a view never mixes locales.
type Dictionary struct {
	Language domain.Language

	AppTitle      string
	LanguageLabel string
	ProfileTitle  string
	Labels        FieldTexts
	Edit          string
	UpdateProfile string
	CurrentData   string
	FooterNote    string

	AssistantTitle    string
	TypingPlaceholder string
	HintsPrefix       string
	Hints             []string

	Responses     Responses
	Placeholders  FieldTexts
	PreviewLabels FieldTexts
	Errors        FieldTexts
	ToastSaved    string
	UpdateUsage   string
	Jobs          JobTexts

	langSet func(name string) string
}

// LangSet returns the "language set to X" reply
func (d *Dictionary) LangSet(name string) string {
	return d.langSet(name)
}
