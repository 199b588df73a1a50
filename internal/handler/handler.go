package handler

import (
	"fmt"
	"sync"

	"hustlex/internal/domain"
	"hustlex/internal/i18n"
	"hustlex/internal/repository/local"
	"hustlex/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// JobPublisher posts a finished job draft to the channel
type JobPublisher interface {
	Relay(submission domain.JobSubmission, siteURL string) error
}

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	resolver    *i18n.Resolver
	interpreter *service.Interpreter
	devices     *local.Devices
	publisher   JobPublisher
	siteURL     string
	logger      *zap.Logger

	// One assistant session per chat
	sessions   map[int64]*chatSession
	sessionMux sync.RWMutex
}

// chatSession serializes the events of one chat
type chatSession struct {
	mu      sync.Mutex
	session *service.Session
	state   domain.ChatState
	draft   *domain.JobDraft
}

// NewHandler creates a new handler instance; publisher may be nil when job posting is not configured
func NewHandler(
	bot *tele.Bot,
	resolver *i18n.Resolver,
	interpreter *service.Interpreter,
	devices *local.Devices,
	publisher JobPublisher,
	siteURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		resolver:    resolver,
		interpreter: interpreter,
		devices:     devices,
		publisher:   publisher,
		siteURL:     siteURL,
		logger:      logger,
		sessions:    make(map[int64]*chatSession),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/profile", h.handleProfile)
	h.bot.Handle("/language", h.handleLanguage)
	h.bot.Handle("/update", h.handleUpdate)
	h.bot.Handle("/postjob", h.handlePostJob)
	h.bot.Handle("/cancel", h.handleCancel)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnLanguage, h.handleLanguageSelect)
	h.bot.Handle(&btnEdit, h.handleEditButton)
	h.bot.Handle(&btnCancel, h.handleCancel)

	// Generic callback handler for buttons that lost their unique
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// EnsureSession opens the chat's session if it does not exist yet
func (h *Handler) EnsureSession(c tele.Context) error {
	cs := h.entry(c.Chat().ID)

	cs.mu.Lock()
	defer cs.mu.Unlock()

	return h.ensureOpen(c, cs)
}

// entry returns the chat's slot, creating an empty one on first contact.
// A chat keeps the same slot for its lifetime so all its events share one lock.
func (h *Handler) entry(chatID int64) *chatSession {
	h.sessionMux.RLock()
	cs, exists := h.sessions[chatID]
	h.sessionMux.RUnlock()

	if exists {
		return cs
	}

	h.sessionMux.Lock()
	defer h.sessionMux.Unlock()

	if cs, exists = h.sessions[chatID]; !exists {
		cs = &chatSession{}
		h.sessions[chatID] = cs
	}
	return cs
}

// ensureOpen opens the session of a fresh slot. The caller holds cs.mu.
func (h *Handler) ensureOpen(c tele.Context, cs *chatSession) error {
	if cs.session != nil {
		return nil
	}
	return h.open(c, cs)
}

// open loads the chat's device storage and starts a new session in the slot,
// dropping any previous one like a page reload. The caller holds cs.mu.
func (h *Handler) open(c tele.Context, cs *chatSession) error {
	chatID := c.Chat().ID
	logger := h.logger.With(zap.Int64("chat_id", chatID))
	repo := local.NewProfileRepo(h.devices.Open(chatID), logger)

	session, err := service.NewSession(repo, h.resolver, h.interpreter, identityOf(c.Sender()), logger)
	if err != nil {
		return fmt.Errorf("failed to open session for chat %d: %w", chatID, err)
	}

	cs.session = session
	cs.state = domain.ChatState{}
	cs.draft = nil
	return nil
}

// withSession runs fn while holding the chat's lock
func (h *Handler) withSession(c tele.Context, fn func(cs *chatSession) error) error {
	cs := h.entry(c.Chat().ID)

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err := h.ensureOpen(c, cs); err != nil {
		h.logger.Error("Failed to get session", zap.Error(err), zap.Int64("chat_id", c.Chat().ID))
		return c.Send(h.fallbackDictionary(c).Responses.Error)
	}

	return fn(cs)
}

// fallbackDictionary picks a locale from the Telegram client when no session is available
func (h *Handler) fallbackDictionary(c tele.Context) *i18n.Dictionary {
	var code string
	if sender := c.Sender(); sender != nil {
		code = sender.LanguageCode
	}
	return h.resolver.Resolve(domain.ParseLanguage(code))
}

// identityOf converts a Telegram user into the identity the profile is synced from
func identityOf(user *tele.User) domain.Identity {
	if user == nil {
		return domain.Identity{}
	}
	return domain.Identity{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Username:     user.Username,
		LanguageCode: user.LanguageCode,
	}
}

// Inline keyboard buttons
var (
	btnLanguage = tele.Btn{Unique: "lang"}
	btnEdit     = tele.Btn{Unique: "edit"}
	btnCancel   = tele.Btn{
		Unique: "cancel",
		Text:   "✖",
	}
)
