package handler

import (
	"strings"
	"unicode"

	"hustlex/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// splitCallbackData parses raw "\funique|data" payloads that were not routed by unique
func splitCallbackData(data string) (unique, payload string) {
	data = cleanCallbackData(data)
	unique, payload, _ = strings.Cut(data, "|")
	return unique, payload
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, chatID int64) error {
	if err == nil {
		return nil
	}

	if isNotModified(err) {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("chat_id", chatID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", chatID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	unique, payload := callback.Unique, cleanCallbackData(callback.Data)
	if unique == "" {
		unique, payload = splitCallbackData(callback.Data)
	}

	h.logger.Info("handleCallback: Processing callback",
		zap.String("unique", unique),
		zap.String("data", payload),
		zap.String("data_raw", callback.Data),
		zap.Int64("chat_id", c.Chat().ID),
	)

	switch unique {
	case btnLanguage.Unique:
		return h.selectLanguage(c, payload)
	case btnEdit.Unique:
		return h.beginEdit(c, payload)
	case btnCancel.Unique:
		return h.handleCancel(c)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("unique", unique),
		zap.String("data", payload),
	)
	return c.Respond()
}

// handleLanguageSelect handles the language selector buttons
func (h *Handler) handleLanguageSelect(c tele.Context) error {
	return h.selectLanguage(c, cleanCallbackData(c.Callback().Data))
}

func (h *Handler) selectLanguage(c tele.Context, code string) error {
	chatID := c.Chat().ID

	lang := domain.Language(code)
	if !lang.IsSupported() {
		h.logger.Warn("Unknown language in callback",
			zap.Int64("chat_id", chatID),
			zap.String("data", code),
		)
		return c.Respond()
	}

	return h.withSession(c, func(cs *chatSession) error {
		if err := cs.session.SelectLanguage(lang); err != nil {
			h.logger.Error("Failed to select language",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
				zap.String("language", string(lang)),
			)
			return c.Respond(&tele.CallbackResponse{Text: cs.session.Dictionary().Responses.Error})
		}

		h.logger.Info("Language selected",
			zap.Int64("chat_id", chatID),
			zap.String("language", string(lang)),
		)

		// The card carries its own selector, a standalone selector is relabelled
		if c.Callback().Message != nil && c.Callback().Message.ID != cs.state.CardMessageID {
			dict := cs.session.Dictionary()
			if err := c.Edit(dict.LanguageLabel, languageMarkup(cs.session.Language())); err != nil {
				if handleErr := h.handleEditError(err, c, chatID); handleErr == nil {
					return nil
				}
				return c.Send(dict.LanguageLabel, languageMarkup(cs.session.Language()))
			}
		}

		h.refreshCard(c, cs)
		return c.Respond(&tele.CallbackResponse{Text: lang.DisplayName()})
	})
}

// handleEditButton unlocks a field from the card
func (h *Handler) handleEditButton(c tele.Context) error {
	return h.beginEdit(c, cleanCallbackData(c.Callback().Data))
}

func (h *Handler) beginEdit(c tele.Context, data string) error {
	field := domain.Field(data)

	return h.withSession(c, func(cs *chatSession) error {
		replies := cs.session.BeginEdit(field)
		if len(replies) == 0 {
			return c.Respond()
		}

		h.refreshCard(c, cs)
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
		return h.sendReplies(c, cs, replies, true)
	})
}

// handleCancel aborts the job draft or cancels the pending edit
func (h *Handler) handleCancel(c tele.Context) error {
	return h.withSession(c, func(cs *chatSession) error {
		if c.Callback() != nil {
			if err := c.Respond(); err != nil {
				h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
			}
		}

		if cs.draft != nil {
			return h.cancelDraft(c, cs)
		}

		replies := cs.session.Cancel()
		cs.state.PromptMessageID = 0

		if len(replies) == 0 {
			return nil
		}

		h.refreshCard(c, cs)
		return h.sendReplies(c, cs, replies, false)
	})
}
