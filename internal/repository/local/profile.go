package local

import (
	"encoding/json"

	"hustlex/internal/domain"
	"hustlex/internal/repository"

	"go.uber.org/zap"
)

// ProfileRepo implements repository.ProfileRepository on top of device storage
type ProfileRepo struct {
	storage Storage
	logger  *zap.Logger
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(storage Storage, logger *zap.Logger) *ProfileRepo {
	return &ProfileRepo{
		storage: storage,
		logger:  logger,
	}
}

// Load returns the saved profile, or an empty one when nothing usable is stored
func (r *ProfileRepo) Load() domain.Profile {
	raw, ok, err := r.storage.GetItem(repository.ProfileKey)
	if err != nil {
		r.logger.Warn("Failed to read profile, using empty one", zap.Error(err))
		return domain.Profile{}
	}
	if !ok || raw == "" {
		return domain.Profile{}
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		r.logger.Warn("Stored profile is corrupt, using empty one", zap.Error(err))
		return domain.Profile{}
	}
	return profile
}

// Save overwrites the stored profile
func (r *ProfileRepo) Save(profile domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return r.storage.SetItem(repository.ProfileKey, string(raw))
}

// LoadLanguage returns the saved language or the default one
func (r *ProfileRepo) LoadLanguage() domain.Language {
	raw, ok, err := r.storage.GetItem(repository.LanguageKey)
	if err != nil {
		r.logger.Warn("Failed to read language, using default", zap.Error(err))
		return domain.DefaultLanguage
	}
	if !ok {
		return domain.DefaultLanguage
	}

	lang := domain.Language(raw)
	if !lang.IsSupported() {
		return domain.DefaultLanguage
	}
	return lang
}

// SaveLanguage overwrites the stored language
func (r *ProfileRepo) SaveLanguage(lang domain.Language) error {
	return r.storage.SetItem(repository.LanguageKey, string(lang.OrDefault()))
}
