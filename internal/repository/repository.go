package repository

import (
	"hustlex/internal/domain"
)

// Storage keys of the two device-local entries
const (
	ProfileKey  = "hustlex.profile"
	LanguageKey = "hustlex.lang"
)

// ProfileRepository defines device-local profile operations.
// Loads never fail: missing or corrupt data yields the zero value.
type ProfileRepository interface {
	Load() domain.Profile
	Save(profile domain.Profile) error
	LoadLanguage() domain.Language
	SaveLanguage(lang domain.Language) error
}
