package notifier

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hustlex/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "123456:TEST"

func newBotAPI(t *testing.T, response string, captured *map[string]interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot"+testToken+"/sendMessage", r.URL.Path)

		body := make(map[string]interface{})
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		*captured = body

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTelegramPoster_Post(t *testing.T) {
	var captured map[string]interface{}
	srv := newBotAPI(t, `{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":-1001,"type":"channel"}}}`, &captured)

	poster, err := NewTelegramPoster(testToken, "-1001", srv.URL)
	require.NoError(t, err)

	err = poster.Post(domain.RelayPost{
		HTML:      "<b>Job Title:</b> &lt;script&gt;",
		ButtonURL: "https://jobs.example/42",
	})
	require.NoError(t, err)

	assert.Equal(t, "-1001", fmt.Sprint(captured["chat_id"]))
	assert.Equal(t, "<b>Job Title:</b> &lt;script&gt;", captured["text"])
	assert.Equal(t, "HTML", captured["parse_mode"])
	assert.Equal(t, "true", fmt.Sprint(captured["disable_web_page_preview"]))

	markup := fmt.Sprint(captured["reply_markup"])
	assert.Contains(t, markup, detailsButtonText)
	assert.Contains(t, markup, "https://jobs.example/42")
}

func TestTelegramPoster_PostUpstreamError(t *testing.T) {
	var captured map[string]interface{}
	srv := newBotAPI(t, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`, &captured)

	poster, err := NewTelegramPoster(testToken, "@missing_channel", srv.URL)
	require.NoError(t, err)

	err = poster.Post(domain.RelayPost{HTML: "hi", ButtonURL: "https://hustlex.example"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
	assert.Equal(t, "@missing_channel", captured["chat_id"])
}
