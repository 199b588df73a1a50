package service

import (
	"regexp"
	"strings"

	"hustlex/internal/domain"

	"golang.org/x/text/cases"
)

// Rule classifies a chat line; ok is false when the rule does not apply
type Rule struct {
	Name  string
	Match func(raw string) (action domain.Action, ok bool)
}

// Interpreter evaluates rules top-down, the first match wins
type Interpreter struct {
	rules []Rule
}

var (
	languagePattern = regexp.MustCompile(`(?i)(set|change) (the )?language to (english|amharic|afaan oromo|oromo)`)

	// Amharic and Oromo put the verb last, so their verbs are also accepted after the target
	editNamePattern    = regexp.MustCompile(`(?i)(edit|change|update|sirreessi|አርትዕ).*name|ስም|maqaa`)
	editContactPattern = regexp.MustCompile(`(?i)(edit|change|update|sirreessi|አርትዕ).*(contact|email|phone|መገናኛ|quunnamtii)|(contact|email|phone|መገናኛ|quunnamtii).*(sirreessi|አርትዕ)`)

	setNamePattern    = regexp.MustCompile(`(?i)(set|change).*(name|ስም|maqaa)\s+to\s+(.+)`)
	setContactPattern = regexp.MustCompile(`(?i)(set|change).*(contact|email|መገናኛ|quunnamtii)\s+to\s+(.+)`)

	greetPattern = regexp.MustCompile(`(?i)(hello|hi|help|selam|ሰላም|akkam)`)
)

// NewInterpreter creates an interpreter with the default command table
func NewInterpreter() *Interpreter {
	return &Interpreter{rules: DefaultRules()}
}

// NewInterpreterWithRules creates an interpreter over a custom rule table
func NewInterpreterWithRules(rules []Rule) *Interpreter {
	return &Interpreter{rules: rules}
}

// DefaultRules returns the command table in priority order
func DefaultRules() []Rule {
	return []Rule{
		{Name: "set_language", Match: matchLanguage},
		{Name: "edit_name", Match: matchEdit(editNamePattern, domain.FieldName)},
		{Name: "edit_contact", Match: matchEdit(editContactPattern, domain.FieldContact)},
		{Name: "set_name", Match: matchSet(setNamePattern, domain.FieldName)},
		{Name: "set_contact", Match: matchSet(setContactPattern, domain.FieldContact)},
		{Name: "greet", Match: matchGreet},
	}
}

// Interpret maps a raw chat line to exactly one action
func (i *Interpreter) Interpret(raw string) domain.Action {
	for _, rule := range i.rules {
		if action, ok := rule.Match(raw); ok {
			return action
		}
	}
	return domain.Action{Kind: domain.ActionUnknown}
}

func matchLanguage(raw string) (domain.Action, bool) {
	if !languagePattern.MatchString(raw) {
		return domain.Action{}, false
	}
	return domain.Action{
		Kind:     domain.ActionSetLanguage,
		Language: targetLanguage(raw),
	}, true
}

// targetLanguage picks the named language by containment, not by regexp groups
func targetLanguage(raw string) domain.Language {
	folded := cases.Fold().String(raw)
	switch {
	case strings.Contains(folded, "amharic"):
		return domain.LangAmharic
	case strings.Contains(folded, "oromo"):
		return domain.LangOromo
	default:
		return domain.LangEnglish
	}
}

func matchEdit(pattern *regexp.Regexp, field domain.Field) func(string) (domain.Action, bool) {
	return func(raw string) (domain.Action, bool) {
		if !pattern.MatchString(raw) {
			return domain.Action{}, false
		}
		return domain.Action{Kind: domain.ActionBeginFieldEdit, Field: field}, true
	}
}

func matchSet(pattern *regexp.Regexp, field domain.Field) func(string) (domain.Action, bool) {
	return func(raw string) (domain.Action, bool) {
		match := pattern.FindStringSubmatch(raw)
		if match == nil {
			return domain.Action{}, false
		}
		value := strings.TrimSpace(match[3])
		if value == "" {
			return domain.Action{}, false
		}
		return domain.Action{Kind: domain.ActionSetField, Field: field, Value: value}, true
	}
}

func matchGreet(raw string) (domain.Action, bool) {
	if !greetPattern.MatchString(strings.TrimSpace(raw)) {
		return domain.Action{}, false
	}
	return domain.Action{Kind: domain.ActionGreet}, true
}
