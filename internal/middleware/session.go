package middleware

import (
	"strings"

	"hustlex/internal/domain"
	"hustlex/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// SessionProvider opens the assistant session of a chat
type SessionProvider interface {
	EnsureSession(c tele.Context) error
}

// SessionMiddleware makes sure the chat has a session before any handler runs
func SessionMiddleware(sessions SessionProvider, resolver *i18n.Resolver, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			// Channel posts and service updates carry no user
			if c.Sender() == nil || c.Chat() == nil {
				return nil
			}

			// /start always opens a fresh session itself
			if strings.HasPrefix(c.Text(), "/start") {
				return next(c)
			}

			if err := sessions.EnsureSession(c); err != nil {
				logger.Error("Failed to ensure session in middleware",
					zap.Error(err),
					zap.Int64("chat_id", c.Chat().ID),
				)
				dict := resolver.Resolve(domain.ParseLanguage(c.Sender().LanguageCode))
				return c.Send(dict.Responses.Error)
			}

			return next(c)
		}
	}
}
