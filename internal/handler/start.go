package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Chat().ID

	h.logger.Info("User started bot",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
		zap.String("language_code", c.Sender().LanguageCode),
	)

	cs := h.entry(chatID)

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err := h.open(c, cs); err != nil {
		h.logger.Error("Failed to start session", zap.Error(err))
		return c.Send(h.fallbackDictionary(c).Responses.Error)
	}

	if err := h.sendCard(c, cs); err != nil {
		return err
	}
	// A fresh session holds only the greeting
	return h.sendReplies(c, cs, cs.session.Log(), false)
}

// handleProfile re-sends the profile card
func (h *Handler) handleProfile(c tele.Context) error {
	return h.withSession(c, func(cs *chatSession) error {
		return h.sendCard(c, cs)
	})
}

// handleLanguage shows the language selector
func (h *Handler) handleLanguage(c tele.Context) error {
	return h.withSession(c, func(cs *chatSession) error {
		return c.Send(cs.session.Dictionary().LanguageLabel, languageMarkup(cs.session.Language()))
	})
}

// handleUpdate validates and saves the whole profile form
func (h *Handler) handleUpdate(c tele.Context) error {
	return h.withSession(c, func(cs *chatSession) error {
		dict := cs.session.Dictionary()

		payload := strings.TrimSpace(c.Message().Payload)
		if payload == "" {
			return c.Send(dict.UpdateUsage)
		}

		errs, err := cs.session.SaveForm(parseForm(payload))
		if err != nil {
			h.logger.Error("Failed to save profile form",
				zap.Error(err),
				zap.Int64("chat_id", c.Chat().ID),
			)
			return c.Send(dict.Responses.Error)
		}
		if len(errs) > 0 {
			return c.Send(formatErrors(dict, errs))
		}

		h.logger.Info("Profile form saved", zap.Int64("chat_id", c.Chat().ID))

		cs.state.PromptMessageID = 0
		h.refreshCard(c, cs)
		return c.Send("✅ " + dict.ToastSaved)
	})
}
