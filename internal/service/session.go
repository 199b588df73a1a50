package service

import (
	"fmt"
	"strings"

	"hustlex/internal/domain"
	"hustlex/internal/i18n"
	"hustlex/internal/metrics"
	"hustlex/internal/repository"

	"go.uber.org/zap"
)

// Session is the assistant state of one device: the active locale,
// the pending field edit and the conversation log.
// Callers must serialize calls, every event runs to completion.
type Session struct {
	repo        repository.ProfileRepository
	resolver    *i18n.Resolver
	interpreter *Interpreter
	logger      *zap.Logger

	profile domain.Profile
	lang    domain.Language
	dict    *i18n.Dictionary
	edit    domain.EditState
	log     []domain.Message
}

// NewSession merges the saved profile with Telegram identity, persists it and greets the user
func NewSession(
	repo repository.ProfileRepository,
	resolver *i18n.Resolver,
	interpreter *Interpreter,
	identity domain.Identity,
	logger *zap.Logger,
) (*Session, error) {
	s := &Session{
		repo:        repo,
		resolver:    resolver,
		interpreter: interpreter,
		logger:      logger,
	}
	s.applyLanguage(repo.LoadLanguage())

	s.profile = domain.MergeIdentity(repo.Load(), identity)
	if err := repo.Save(s.profile); err != nil {
		return nil, fmt.Errorf("failed to save initial profile: %w", err)
	}

	s.reply(s.dict.Responses.Hello)
	return s, nil
}

// Submit handles one chat line and returns the bot replies it produced.
// Blank input is dropped without a log entry.
func (s *Session) Submit(text string) ([]domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	s.log = append(s.log, domain.Message{Author: domain.AuthorUser, Text: text})

	action := s.interpreter.Interpret(text)
	metrics.RecordAction(string(action.Kind))

	s.logger.Debug("Interpreted chat command",
		zap.String("action", string(action.Kind)),
		zap.String("field", string(action.Field)),
		zap.String("language", string(action.Language)),
	)

	return s.execute(action)
}

func (s *Session) execute(action domain.Action) ([]domain.Message, error) {
	switch action.Kind {
	case domain.ActionSetLanguage:
		if err := s.repo.SaveLanguage(action.Language); err != nil {
			return nil, fmt.Errorf("failed to save language: %w", err)
		}
		s.applyLanguage(action.Language)
		return s.reply(s.dict.LangSet(action.Language.DisplayName())), nil

	case domain.ActionBeginFieldEdit:
		// A second edit command replaces the pending one
		s.edit = domain.EditState{Field: action.Field}
		return s.reply(s.dict.Responses.Enabled), nil

	case domain.ActionSetField:
		if err := s.writeField(action.Field, action.Value); err != nil {
			return nil, err
		}
		return s.reply(s.dict.Responses.Updated), nil

	case domain.ActionGreet:
		return s.reply(s.dict.Responses.Hello), nil

	default:
		return s.reply(s.dict.Responses.Unknown), nil
	}
}

// Confirm commits the value typed into the unlocked field.
// It does nothing when field is not the pending one or the value is blank,
// in which case the field stays unlocked.
func (s *Session) Confirm(field domain.Field, value string) ([]domain.Message, error) {
	if !s.edit.Editing(field) {
		return nil, nil
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if err := s.writeField(field, value); err != nil {
		return nil, err
	}
	s.edit = domain.EditState{}
	return s.reply(s.dict.Responses.Updated), nil
}

// BeginEdit unlocks field from the card's edit button
func (s *Session) BeginEdit(field domain.Field) []domain.Message {
	if field != domain.FieldName && field != domain.FieldContact {
		return nil
	}
	s.edit = domain.EditState{Field: field}
	return s.reply(s.dict.Responses.Enabled)
}

// SaveForm validates and saves the whole profile form.
// Invalid forms are returned as per-field messages and nothing is written.
func (s *Session) SaveForm(form domain.ProfileForm) (map[domain.Field]string, error) {
	if errs := Validate(form, s.dict); len(errs) > 0 {
		return errs, nil
	}

	profile := domain.Profile{
		Name:    strings.TrimSpace(form.Name),
		Contact: strings.TrimSpace(form.Contact),
	}
	if err := s.repo.Save(profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.profile = profile
	s.edit = domain.EditState{}
	metrics.RecordAction("save_form")
	return nil, nil
}

// Cancel drops the pending edit without saving
func (s *Session) Cancel() []domain.Message {
	if s.edit.Idle() {
		return nil
	}
	s.edit = domain.EditState{}
	return s.reply(s.dict.Responses.Cancelled)
}

// SelectLanguage switches the locale from the language selector, without a chat reply
func (s *Session) SelectLanguage(lang domain.Language) error {
	if !lang.IsSupported() {
		return nil
	}
	if err := s.repo.SaveLanguage(lang); err != nil {
		return fmt.Errorf("failed to save language: %w", err)
	}
	s.applyLanguage(lang)
	return nil
}

// Pending returns the unlocked field or domain.FieldNone
func (s *Session) Pending() domain.Field {
	return s.edit.Field
}

// Profile returns the current profile
func (s *Session) Profile() domain.Profile {
	return s.profile
}

// Language returns the active locale
func (s *Session) Language() domain.Language {
	return s.lang
}

// Dictionary returns the active locale's strings
func (s *Session) Dictionary() *i18n.Dictionary {
	return s.dict
}

// Log returns a copy of the conversation log
func (s *Session) Log() []domain.Message {
	out := make([]domain.Message, len(s.log))
	copy(out, s.log)
	return out
}

// View renders the current state
func (s *Session) View() View {
	return Render(s.dict, s.profile, s.edit)
}

func (s *Session) writeField(field domain.Field, value string) error {
	profile := s.repo.Load().With(field, strings.TrimSpace(value))
	if err := s.repo.Save(profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	s.profile = profile
	return nil
}

func (s *Session) applyLanguage(lang domain.Language) {
	s.lang = lang.OrDefault()
	s.dict = s.resolver.Resolve(s.lang)
}

func (s *Session) reply(text string) []domain.Message {
	msg := domain.Message{Author: domain.AuthorBot, Text: text}
	s.log = append(s.log, msg)
	return []domain.Message{msg}
}
