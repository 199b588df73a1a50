package domain

import "strings"

// Placeholder is shown instead of an empty profile value
const Placeholder = "—"

// Profile is the user's locally persisted name/contact record
type Profile struct {
	Name    string `json:"name,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// ProfileForm is a candidate profile coming from the profile form
type ProfileForm struct {
	Name    string
	Contact string
	Age     string
}

// Field identifies an editable profile field
type Field string

const (
	FieldNone    Field = ""
	FieldName    Field = "name"
	FieldContact Field = "contact"
	FieldAge     Field = "age"
)

// Get returns the value stored in the given field
func (p Profile) Get(field Field) string {
	switch field {
	case FieldName:
		return p.Name
	case FieldContact:
		return p.Contact
	}
	return ""
}

// With returns a copy of the profile with field set to value
func (p Profile) With(field Field, value string) Profile {
	switch field {
	case FieldName:
		p.Name = value
	case FieldContact:
		p.Contact = value
	}
	return p
}

// Display returns the field value or the placeholder when it is empty
func (p Profile) Display(field Field) string {
	if v := p.Get(field); v != "" {
		return v
	}
	return Placeholder
}

// Identity holds the user fields Telegram hands to the mini-app
type Identity struct {
	FirstName    string
	LastName     string
	Username     string
	Phone        string
	LanguageCode string
}

// Profile converts identity into profile fields
func (i Identity) Profile() Profile {
	var parts []string
	for _, part := range []string{i.FirstName, i.LastName} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	contact := i.Phone
	if i.Username != "" {
		contact = "@" + i.Username
	}

	return Profile{
		Name:    strings.Join(parts, " "),
		Contact: contact,
	}
}

// MergeIdentity overlays non-empty identity fields on top of a saved profile
func MergeIdentity(saved Profile, identity Identity) Profile {
	fromTelegram := identity.Profile()
	merged := saved
	if fromTelegram.Name != "" {
		merged.Name = fromTelegram.Name
	}
	if fromTelegram.Contact != "" {
		merged.Contact = fromTelegram.Contact
	}
	return merged
}
