package i18n

import (
	"embed"
	"fmt"

	"hustlex/internal/domain"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localesFS embed.FS

// Resolver maps a language setting to its dictionary
type Resolver struct {
	bundle       *i18n.Bundle
	dictionaries map[domain.Language]*Dictionary
}

// NewResolver loads the embedded locale files and builds every dictionary
func NewResolver() (*Resolver, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range domain.Languages {
		filename := fmt.Sprintf("locales/active.%s.toml", lang)

		data, err := localesFS.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", filename, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, filename); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", filename, err)
		}
	}

	r := &Resolver{
		bundle:       bundle,
		dictionaries: make(map[domain.Language]*Dictionary, len(domain.Languages)),
	}
	for _, lang := range domain.Languages {
		r.dictionaries[lang] = r.build(lang)
	}
	return r, nil
}

// Resolve returns the dictionary of lang, or the default locale's for unknown codes
func (r *Resolver) Resolve(lang domain.Language) *Dictionary {
	if dict, ok := r.dictionaries[lang]; ok {
		return dict
	}
	return r.dictionaries[domain.DefaultLanguage]
}

func (r *Resolver) build(lang domain.Language) *Dictionary {
	loc := &localizer{
		primary:  i18n.NewLocalizer(r.bundle, string(lang), string(domain.DefaultLanguage)),
		fallback: i18n.NewLocalizer(r.bundle, string(domain.DefaultLanguage)),
	}

	return &Dictionary{
		Language: lang,

		AppTitle:      loc.get("app_title"),
		LanguageLabel: loc.get("language"),
		ProfileTitle:  loc.get("profile"),
		Labels: FieldTexts{
			Name:    loc.get("name"),
			Contact: loc.get("contact"),
			Age:     loc.get("age"),
		},
		Edit:          loc.get("edit"),
		UpdateProfile: loc.get("update_profile"),
		CurrentData:   loc.get("current_data"),
		FooterNote:    loc.get("footer_note"),

		AssistantTitle:    loc.get("assistant_title"),
		TypingPlaceholder: loc.get("typing_placeholder"),
		HintsPrefix:       loc.get("hints_prefix"),
		Hints: []string{
			loc.get("hint_language"),
			loc.get("hint_edit"),
			loc.get("hint_set"),
		},

		Responses: Responses{
			Hello:     loc.get("response_hello"),
			Enabled:   loc.get("response_enabled"),
			Updated:   loc.get("response_updated"),
			Unknown:   loc.get("response_unknown"),
			Cancelled: loc.get("response_cancelled"),
			Error:     loc.get("response_error"),
		},
		Placeholders: FieldTexts{
			Name:    loc.get("placeholder_name"),
			Contact: loc.get("placeholder_contact"),
			Age:     loc.get("placeholder_age"),
		},
		PreviewLabels: FieldTexts{
			Name:    loc.get("preview_name"),
			Contact: loc.get("preview_contact"),
			Age:     loc.get("preview_age"),
		},
		Errors: FieldTexts{
			Name:    loc.get("error_name_required"),
			Contact: loc.get("error_contact_invalid"),
			Age:     loc.get("error_age_invalid"),
		},
		ToastSaved:  loc.get("toast_saved"),
		UpdateUsage: loc.get("update_usage"),
		Jobs:        buildJobTexts(loc),

		langSet: func(name string) string {
			return loc.render("response_lang_set", map[string]interface{}{"Language": name})
		},
	}
}

func buildJobTexts(loc *localizer) JobTexts {
	prompts := make(map[domain.JobField]string, len(domain.JobFields))
	for _, field := range domain.JobFields {
		prompts[field] = loc.get("job_prompt_" + string(field))
	}

	return JobTexts{
		Prompts:       prompts,
		VerifiedRetry: loc.get("job_verified_retry"),
		Posted:        loc.get("job_posted"),
		Cancelled:     loc.get("job_cancelled"),
		Unavailable:   loc.get("job_unavailable"),
		failed: func(reason string) string {
			return loc.render("job_failed", map[string]interface{}{"Error": reason})
		},
	}
}

type localizer struct {
	primary  *i18n.Localizer
	fallback *i18n.Localizer
}

func (l *localizer) get(messageID string) string {
	return l.render(messageID, nil)
}

// render never returns blank text: a missing translation falls back to English, then to the message ID
func (l *localizer) render(messageID string, templateData map[string]interface{}) string {
	cfg := &i18n.LocalizeConfig{MessageID: messageID, TemplateData: templateData}

	if msg, err := l.primary.Localize(cfg); err == nil && msg != "" {
		return msg
	}
	if msg, err := l.fallback.Localize(cfg); err == nil && msg != "" {
		return msg
	}
	return messageID
}
