package handler

import (
	"strings"

	"hustlex/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes chat lines to the assistant
func (h *Handler) handleText(c tele.Context) error {
	text := c.Text()

	// Ignore unknown commands
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	return h.withSession(c, func(cs *chatSession) error {
		if cs.draft != nil {
			return h.answerDraft(c, cs, text)
		}

		if isPromptReply(c.Message(), cs.state) {
			return h.confirm(c, cs, text)
		}

		before := cs.session.Pending()
		profile, lang := cs.session.Profile(), cs.session.Language()

		replies, err := cs.session.Submit(text)
		if err != nil {
			h.logger.Error("Failed to handle chat command",
				zap.Error(err),
				zap.Int64("chat_id", c.Chat().ID),
			)
			return c.Send(cs.session.Dictionary().Responses.Error)
		}

		pending := cs.session.Pending()
		needsPrompt := pending != domain.FieldNone && (pending != before || cs.state.PromptMessageID == 0)

		if err := h.sendReplies(c, cs, replies, needsPrompt); err != nil {
			return err
		}

		if pending != before || cs.session.Profile() != profile || cs.session.Language() != lang {
			h.refreshCard(c, cs)
		}
		return nil
	})
}

// confirm commits a reply to the edit prompt into the unlocked field
func (h *Handler) confirm(c tele.Context, cs *chatSession, text string) error {
	field := cs.session.Pending()

	replies, err := cs.session.Confirm(field, text)
	if err != nil {
		h.logger.Error("Failed to confirm field",
			zap.Error(err),
			zap.Int64("chat_id", c.Chat().ID),
			zap.String("field", string(field)),
		)
		return c.Send(cs.session.Dictionary().Responses.Error)
	}

	// Blank value: the field stays unlocked and the prompt stays open
	if len(replies) == 0 {
		return nil
	}

	h.logger.Info("Profile field confirmed",
		zap.Int64("chat_id", c.Chat().ID),
		zap.String("field", string(field)),
	)

	cs.state.PromptMessageID = 0
	h.refreshCard(c, cs)
	return h.sendReplies(c, cs, replies, false)
}

// sendReplies sends bot replies in order. With prompt set the last one becomes
// the force-reply prompt of the pending field.
func (h *Handler) sendReplies(c tele.Context, cs *chatSession, replies []domain.Message, prompt bool) error {
	for i, reply := range replies {
		if reply.Author != domain.AuthorBot {
			continue
		}

		if prompt && i == len(replies)-1 {
			placeholder := cs.session.Dictionary().Placeholders.For(cs.session.Pending())
			msg, err := h.bot.Send(c.Chat(), reply.Text, promptMarkup(placeholder))
			if err != nil {
				return err
			}
			cs.state.PromptMessageID = msg.ID
			continue
		}

		if err := c.Send(reply.Text); err != nil {
			return err
		}
	}
	return nil
}

// sendCard sends a new profile card and remembers it for later refreshes
func (h *Handler) sendCard(c tele.Context, cs *chatSession) error {
	view := cs.session.View()

	msg, err := h.bot.Send(c.Chat(), renderCard(view), cardMarkup(view), tele.ModeHTML, tele.NoPreview)
	if err != nil {
		return err
	}
	cs.state.CardMessageID = msg.ID
	return nil
}

// refreshCard re-renders the last card in place
func (h *Handler) refreshCard(c tele.Context, cs *chatSession) {
	if cs.state.CardMessageID == 0 {
		return
	}

	view := cs.session.View()
	card := &tele.Message{ID: cs.state.CardMessageID, Chat: c.Chat()}

	if _, err := h.bot.Edit(card, renderCard(view), cardMarkup(view), tele.ModeHTML, tele.NoPreview); err != nil && !isNotModified(err) {
		h.logger.Warn("Failed to refresh profile card",
			zap.Error(err),
			zap.Int64("chat_id", c.Chat().ID),
			zap.Int("message_id", cs.state.CardMessageID),
		)
	}
}

// isPromptReply reports whether msg answers the open edit prompt
func isPromptReply(msg *tele.Message, state domain.ChatState) bool {
	return msg != nil &&
		msg.ReplyTo != nil &&
		state.PromptMessageID != 0 &&
		msg.ReplyTo.ID == state.PromptMessageID
}

func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
