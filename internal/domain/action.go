package domain

// ActionKind classifies an interpreted chat line
type ActionKind string

const (
	ActionSetLanguage    ActionKind = "set_language"
	ActionBeginFieldEdit ActionKind = "begin_field_edit"
	ActionSetField       ActionKind = "set_field"
	ActionGreet          ActionKind = "greet"
	ActionUnknown        ActionKind = "unknown"
)

// Action is the result of interpreting one chat line
type Action struct {
	Kind     ActionKind
	Language Language // ActionSetLanguage
	Field    Field    // ActionBeginFieldEdit, ActionSetField
	Value    string   // ActionSetField
}
