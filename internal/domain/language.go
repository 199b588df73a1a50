package domain

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the supported locale codes
type Language string

const (
	LangEnglish Language = "en"
	LangAmharic Language = "am"
	LangOromo   Language = "om"

	DefaultLanguage = LangEnglish
)

// Languages lists supported locales in selector order
var Languages = []Language{LangEnglish, LangAmharic, LangOromo}

var displayNames = map[Language]string{
	LangEnglish: "English",
	LangAmharic: "Amharic",
	LangOromo:   "Afaan Oromo",
}

// DisplayName returns the English name used in "language set to" replies
func (l Language) DisplayName() string {
	if name, ok := displayNames[l]; ok {
		return name
	}
	return displayNames[DefaultLanguage]
}

// Tag returns the BCP 47 tag for the language
func (l Language) Tag() language.Tag {
	return language.Make(string(l.OrDefault()))
}

// IsSupported reports whether l belongs to the closed set of locales
func (l Language) IsSupported() bool {
	_, ok := displayNames[l]
	return ok
}

// OrDefault returns l when supported and the default locale otherwise
func (l Language) OrDefault() Language {
	if l.IsSupported() {
		return l
	}
	return DefaultLanguage
}

// ParseLanguage resolves a stored code or a Telegram language_code.
// Regional variants collapse onto their base language, anything unknown is the default.
func ParseLanguage(code string) Language {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultLanguage
	}

	if lang := Language(strings.ToLower(code)); lang.IsSupported() {
		return lang
	}

	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLanguage
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return DefaultLanguage
	}
	return Language(base.String()).OrDefault()
}
