package domain

// EditState is the single-slot pending field edit
type EditState struct {
	Field Field
}

// Idle reports whether no field is unlocked
func (s EditState) Idle() bool {
	return s.Field == FieldNone
}

// Editing reports whether field is the one currently unlocked
func (s EditState) Editing(field Field) bool {
	return !s.Idle() && s.Field == field
}

// ChatState holds front-end bookkeeping for one chat
type ChatState struct {
	PromptMessageID int // force-reply prompt awaiting the field value
	CardMessageID   int // For editing the profile card
}
