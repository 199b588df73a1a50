package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

// TestBotToken is the token the fake Bot API serves
const TestBotToken = "123456:TEST"

// BotRequest is one call recorded by FakeBotAPI
type BotRequest struct {
	Method string
	Params map[string]interface{}
}

// FakeBotAPI records Bot API calls and answers every one with success
type FakeBotAPI struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []BotRequest
	nextID   int
}

// NewFakeBot creates an offline bot talking to a recording Bot API
func NewFakeBot(t *testing.T) (*tele.Bot, *FakeBotAPI) {
	t.Helper()

	api := &FakeBotAPI{nextID: 100}
	api.Server = httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(api.Server.Close)

	bot, err := tele.NewBot(tele.Settings{
		URL:     api.Server.URL,
		Token:   TestBotToken,
		Offline: true,
	})
	require.NoError(t, err)
	return bot, api
}

func (f *FakeBotAPI) serve(w http.ResponseWriter, r *http.Request) {
	method := strings.TrimPrefix(r.URL.Path, "/bot"+TestBotToken+"/")

	params := make(map[string]interface{})
	_ = json.NewDecoder(r.Body).Decode(&params)

	f.mu.Lock()
	f.requests = append(f.requests, BotRequest{Method: method, Params: params})
	f.nextID++
	id := f.nextID
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if method == "answerCallbackQuery" {
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
		return
	}
	fmt.Fprintf(w, `{"ok":true,"result":{"message_id":%d,"date":0,"chat":{"id":%v,"type":"private"}}}`, id, chatID(params))
}

func chatID(params map[string]interface{}) interface{} {
	if id, ok := params["chat_id"]; ok {
		return id
	}
	return 0
}

// Requests returns the recorded calls of method, or all calls when method is empty
func (f *FakeBotAPI) Requests(method string) []BotRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []BotRequest
	for _, req := range f.requests {
		if method == "" || req.Method == method {
			out = append(out, req)
		}
	}
	return out
}

// Texts returns the text of every sent message in order
func (f *FakeBotAPI) Texts() []string {
	var texts []string
	for _, req := range f.Requests("sendMessage") {
		texts = append(texts, fmt.Sprint(req.Params["text"]))
	}
	return texts
}

// Reset forgets recorded calls
func (f *FakeBotAPI) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = nil
}
