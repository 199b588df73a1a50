package notifier

import (
	"fmt"
	"net/http"
	"time"

	"hustlex/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// SendTimeout bounds the single outbound sendMessage call
const SendTimeout = 10 * time.Second

const detailsButtonText = "View Details"

// channel is a chat ID ("-100...") or a public @username
type channel string

func (c channel) Recipient() string {
	return string(c)
}

// TelegramPoster posts relay messages to a fixed channel
type TelegramPoster struct {
	bot     *tele.Bot
	channel channel
}

// NewTelegramPoster creates a poster that never polls; apiURL may be empty for the public Bot API
func NewTelegramPoster(token, channelID, apiURL string) (*TelegramPoster, error) {
	bot, err := tele.NewBot(tele.Settings{
		URL:     apiURL,
		Token:   token,
		Offline: true,
		Client:  &http.Client{Timeout: SendTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &TelegramPoster{
		bot:     bot,
		channel: channel(channelID),
	}, nil
}

// Post sends the HTML message with a single "View Details" button and no link preview
func (p *TelegramPoster) Post(post domain.RelayPost) error {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.URL(detailsButtonText, post.ButtonURL)))

	_, err := p.bot.Send(p.channel, post.HTML, &tele.SendOptions{
		ParseMode:             tele.ModeHTML,
		DisableWebPagePreview: true,
		ReplyMarkup:           markup,
	})
	return err
}
