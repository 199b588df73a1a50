package handler

import (
	"fmt"
	"testing"

	"hustlex/internal/domain"
	"hustlex/internal/repository/local"
	"hustlex/internal/service"
	"hustlex/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

const testChatID = 100

type handlerFixture struct {
	handler *Handler
	bot     *tele.Bot
	api     *testutil.FakeBotAPI
	devices *local.Devices
	user    *tele.User
	chat    *tele.Chat
}

const testSiteURL = "https://hustlex.example"

func newHandlerFixture(t *testing.T) handlerFixture {
	t.Helper()
	return newPublishingFixture(t, nil)
}

// newPublishingFixture builds a handler whose job publisher is made by publisher, or none when nil
func newPublishingFixture(t *testing.T, publisher func(api *testutil.FakeBotAPI) JobPublisher) handlerFixture {
	t.Helper()
	bot, api := testutil.NewFakeBot(t)
	devices := local.NewDevices("")

	var jobs JobPublisher
	if publisher != nil {
		jobs = publisher(api)
	}

	h := NewHandler(bot, testutil.NewTestResolver(t), service.NewInterpreter(), devices, jobs, testSiteURL, testutil.NewTestLogger())
	return handlerFixture{
		handler: h,
		bot:     bot,
		api:     api,
		devices: devices,
		user:    &tele.User{ID: testChatID, FirstName: "Ada", LastName: "Lovelace", Username: "ada"},
		chat:    &tele.Chat{ID: testChatID, Type: tele.ChatPrivate},
	}
}

func (f handlerFixture) message(text string, replyTo int) tele.Context {
	msg := &tele.Message{ID: 1, Text: text, Sender: f.user, Chat: f.chat}
	if replyTo != 0 {
		msg.ReplyTo = &tele.Message{ID: replyTo, Chat: f.chat}
	}
	return f.bot.NewContext(tele.Update{Message: msg})
}

func (f handlerFixture) callback(messageID int, data string) tele.Context {
	return f.bot.NewContext(tele.Update{Callback: &tele.Callback{
		ID:      "cb",
		Sender:  f.user,
		Message: &tele.Message{ID: messageID, Chat: f.chat},
		Data:    data,
	}})
}

func (f handlerFixture) state(t *testing.T) (*service.Session, domain.ChatState) {
	t.Helper()
	cs, ok := f.handler.sessions[testChatID]
	require.True(t, ok)
	return cs.session, cs.state
}

func (f handlerFixture) repo() *local.ProfileRepo {
	return local.NewProfileRepo(f.devices.Open(testChatID), testutil.NewTestLogger())
}

func TestHandleStart_SendsCardAndGreeting(t *testing.T) {
	f := newHandlerFixture(t)

	require.NoError(t, f.handler.handleStart(f.message("/start", 0)))

	texts := f.api.Texts()
	require.Len(t, texts, 2)
	assert.Contains(t, texts[0], "Ada Lovelace")
	assert.Contains(t, texts[0], "@ada")
	assert.Equal(t, "Hi! Your profile is synced from Telegram. You can switch languages.", texts[1])

	_, state := f.state(t)
	assert.NotZero(t, state.CardMessageID)
	assert.Equal(t, domain.Profile{Name: "Ada Lovelace", Contact: "@ada"}, f.repo().Load())
}

func TestHandleText_EditThenConfirm(t *testing.T) {
	f := newHandlerFixture(t)
	require.NoError(t, f.handler.handleStart(f.message("/start", 0)))
	f.api.Reset()

	require.NoError(t, f.handler.handleText(f.message("edit name", 0)))

	sent := f.api.Requests("sendMessage")
	require.Len(t, sent, 1)
	assert.Contains(t, fmt.Sprint(sent[0].Params["reply_markup"]), "force_reply")

	session, state := f.state(t)
	assert.Equal(t, domain.FieldName, session.Pending())
	require.NotZero(t, state.PromptMessageID)

	// Blank reply keeps the field unlocked
	f.api.Reset()
	require.NoError(t, f.handler.handleText(f.message("   ", state.PromptMessageID)))
	assert.Empty(t, f.api.Texts())
	assert.Equal(t, domain.FieldName, session.Pending())

	require.NoError(t, f.handler.handleText(f.message("  Abebe  ", state.PromptMessageID)))
	assert.Equal(t, []string{"Profile updated successfully."}, f.api.Texts())
	assert.NotEmpty(t, f.api.Requests("editMessageText"))

	_, state = f.state(t)
	assert.Equal(t, domain.FieldNone, session.Pending())
	assert.Zero(t, state.PromptMessageID)
	assert.Equal(t, "Abebe", f.repo().Load().Name)
}

func TestHandleText_UnknownCommandIgnored(t *testing.T) {
	f := newHandlerFixture(t)
	require.NoError(t, f.handler.handleStart(f.message("/start", 0)))
	f.api.Reset()

	require.NoError(t, f.handler.handleText(f.message("/unknown", 0)))
	assert.Empty(t, f.api.Requests(""))
}

func TestHandleText_SetLanguage(t *testing.T) {
	f := newHandlerFixture(t)
	require.NoError(t, f.handler.handleStart(f.message("/start", 0)))
	f.api.Reset()

	require.NoError(t, f.handler.handleText(f.message("set language to Amharic", 0)))

	assert.Equal(t, []string{"ቋንቋ ወደ Amharic ተቀይሯል።"}, f.api.Texts())
	assert.Len(t, f.api.Requests("editMessageText"), 1)
	assert.Equal(t, domain.LangAmharic, f.repo().LoadLanguage())
}

func TestHandleLanguageSelect(t *testing.T) {
	f := newHandlerFixture(t)
	require.NoError(t, f.handler.handleStart(f.message("/start", 0)))
	_, state := f.state(t)
	f.api.Reset()

	require.NoError(t, f.handler.handleLanguageSelect(f.callback(state.CardMessageID, "om")))

	session, _ := f.state(t)
	assert.Equal(t, domain.LangOromo, session.Language())
	assert.Equal(t, domain.LangOromo, f.repo().LoadLanguage())
	assert.Empty(t, f.api.Texts())
	assert.Len(t, f.api.Requests("editMessageText"), 1)
	assert.Len(t, f.api.Requests("answerCallbackQuery"), 1)
}

func TestHandleEditButtonThenCancel(t *testing.T) {
	f := newHandlerFixture(t)
	require.NoError(t, f.handler.handleStart(f.message("/start", 0)))
	_, state := f.state(t)
	f.api.Reset()

	require.NoError(t, f.handler.handleEditButton(f.callback(state.CardMessageID, "contact")))

	session, state := f.state(t)
	assert.Equal(t, domain.FieldContact, session.Pending())
	assert.NotZero(t, state.PromptMessageID)

	f.api.Reset()
	require.NoError(t, f.handler.handleCancel(f.message("/cancel", 0)))

	_, state = f.state(t)
	assert.Equal(t, domain.FieldNone, session.Pending())
	assert.Zero(t, state.PromptMessageID)
	assert.Equal(t, []string{"Editing cancelled."}, f.api.Texts())
	assert.Equal(t, "@ada", f.repo().Load().Contact)
}

func TestHandleUpdate(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantText string
		wantName string
	}{
		{
			name:     "usage",
			payload:  "",
			wantText: "Send /update Name; contact; age to save the whole profile.",
			wantName: "Ada Lovelace",
		},
		{
			name:     "invalid",
			payload:  " ; not-an-email",
			wantText: "• Name: Name is required\n• Contact: Enter a valid email address",
			wantName: "Ada Lovelace",
		},
		{
			name:     "valid",
			payload:  "Abebe; abebe@example.com; 30",
			wantText: "✅ Profile updated",
			wantName: "Abebe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			require.NoError(t, f.handler.handleStart(f.message("/start", 0)))
			f.api.Reset()

			msg := &tele.Message{ID: 1, Text: "/update " + tt.payload, Payload: tt.payload, Sender: f.user, Chat: f.chat}
			require.NoError(t, f.handler.handleUpdate(f.bot.NewContext(tele.Update{Message: msg})))

			assert.Equal(t, []string{tt.wantText}, f.api.Texts())
			assert.Equal(t, tt.wantName, f.repo().Load().Name)
		})
	}
}

func TestEnsureSession_ReusesExisting(t *testing.T) {
	f := newHandlerFixture(t)

	require.NoError(t, f.handler.EnsureSession(f.message("hi", 0)))
	first, _ := f.state(t)

	require.NoError(t, f.handler.EnsureSession(f.message("hi", 0)))
	second, _ := f.state(t)

	assert.Same(t, first, second)
	assert.Empty(t, f.api.Requests(""))
}

func TestHandleStart_KeepsChatSlot(t *testing.T) {
	f := newHandlerFixture(t)

	require.NoError(t, f.handler.EnsureSession(f.message("hi", 0)))
	slot := f.handler.sessions[testChatID]
	first, _ := f.state(t)

	require.NoError(t, f.handler.handleStart(f.message("/start", 0)))

	assert.Same(t, slot, f.handler.sessions[testChatID])
	second, _ := f.state(t)
	assert.NotSame(t, first, second)
	assert.Len(t, f.handler.sessions, 1)
}

func TestHandleLanguageSelect_UnknownCode(t *testing.T) {
	f := newHandlerFixture(t)
	require.NoError(t, f.handler.handleStart(f.message("/start", 0)))
	_, state := f.state(t)
	f.api.Reset()

	require.NoError(t, f.handler.handleLanguageSelect(f.callback(state.CardMessageID, "xx")))

	session, _ := f.state(t)
	assert.Equal(t, domain.LangEnglish, session.Language())
	assert.Equal(t, domain.LangEnglish, f.repo().LoadLanguage())
	assert.Empty(t, f.api.Requests("editMessageText"))
	assert.Empty(t, f.api.Texts())
	assert.Len(t, f.api.Requests("answerCallbackQuery"), 1)
}
