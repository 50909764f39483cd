package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbodonnell/tictaccube/pkg/api/handlers"
)

type fakeBot struct {
	updates   []tgbotapi.Update
	updateErr error
	sendErr   error

	updateConfigs []tgbotapi.UpdateConfig
	sent          []tgbotapi.MessageConfig
}

func (b *fakeBot) GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error) {
	b.updateConfigs = append(b.updateConfigs, config)
	if b.updateErr != nil {
		return nil, b.updateErr
	}
	return b.updates, nil
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		b.sent = append(b.sent, msg)
	}
	if b.sendErr != nil {
		return tgbotapi.Message{}, b.sendErr
	}
	return tgbotapi.Message{MessageID: 100 + len(b.sent)}, nil
}

func startUpdate(updateID int, chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: updateID,
		Message: &tgbotapi.Message{
			Text: text,
			Chat: &tgbotapi.Chat{ID: chatID},
		},
	}
}

func serve(t *testing.T, bot handlers.BotAPI, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	NewHandler(bot, "").ServeHTTP(rec, req)
	return rec
}

func TestHandleCheck(t *testing.T) {
	t.Run("missing session", func(t *testing.T) {
		bot := &fakeBot{}
		rec := serve(t, bot, http.MethodGet, "/check", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, bot.updateConfigs)
	})

	t.Run("no matching message", func(t *testing.T) {
		bot := &fakeBot{updates: []tgbotapi.Update{
			startUpdate(1, 10, "/start othertoken"),
			startUpdate(2, 11, "hello"),
			{UpdateID: 3},
		}}
		rec := serve(t, bot, http.MethodGet, "/check?session=abc", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"chat_id":null}`, rec.Body.String())
		require.Len(t, bot.updateConfigs, 1)
		assert.Equal(t, 1, bot.updateConfigs[0].Timeout)
		assert.Equal(t, []string{"message"}, bot.updateConfigs[0].AllowedUpdates)
		assert.Empty(t, bot.sent)
	})

	t.Run("newest match wins", func(t *testing.T) {
		bot := &fakeBot{updates: []tgbotapi.Update{
			startUpdate(5, 1, "/start abc"),
			startUpdate(6, 2, "/start ABC"),
			startUpdate(7, 3, "unrelated"),
		}}
		rec := serve(t, bot, http.MethodGet, "/check?session=abc", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"chat_id":2}`, rec.Body.String())

		require.Len(t, bot.sent, 1)
		assert.Equal(t, int64(2), bot.sent[0].ChatID)
		assert.Equal(t, handlers.ReturnToGameMessage, bot.sent[0].Text)
		assert.Equal(t, tgbotapi.ModeHTML, bot.sent[0].ParseMode)

		require.Len(t, bot.updateConfigs, 2)
		assert.Equal(t, 7, bot.updateConfigs[1].Offset)
	})

	t.Run("confirmation failure is not fatal", func(t *testing.T) {
		bot := &fakeBot{
			updates: []tgbotapi.Update{startUpdate(1, 42, "/start@cube_bot abc")},
			sendErr: errors.New("forbidden"),
		}
		rec := serve(t, bot, http.MethodGet, "/check?session=abc", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"chat_id":42}`, rec.Body.String())
	})

	t.Run("upstream failure", func(t *testing.T) {
		bot := &fakeBot{updateErr: errors.New("telegram down")}
		rec := serve(t, bot, http.MethodGet, "/check?session=abc", "")

		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.JSONEq(t, `{"chat_id":null,"error":"telegram down"}`, rec.Body.String())
	})
}

func TestHandleSend(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		sendErr    error
		wantStatus int
		wantSent   bool
	}{
		{name: "ok", body: `{"chat_id":5,"text":"<b>hi</b>"}`, wantStatus: http.StatusOK, wantSent: true},
		{name: "missing chat", body: `{"text":"hi"}`, wantStatus: http.StatusBadRequest},
		{name: "missing text", body: `{"chat_id":5}`, wantStatus: http.StatusBadRequest},
		{name: "invalid json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "upstream failure", body: `{"chat_id":5,"text":"hi"}`, sendErr: errors.New("chat not found"), wantStatus: http.StatusBadGateway, wantSent: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := &fakeBot{sendErr: tt.sendErr}
			rec := serve(t, bot, http.MethodPost, "/send", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantSent, len(bot.sent) == 1)

			resp := handlers.SendResponse{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantStatus == http.StatusOK, resp.OK)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, 101, resp.MessageID)
				assert.Equal(t, tgbotapi.ModeHTML, bot.sent[0].ParseMode)
				assert.Equal(t, int64(5), bot.sent[0].ChatID)
			} else {
				assert.NotEmpty(t, resp.Error)
			}
		})
	}
}

func TestRouting(t *testing.T) {
	t.Run("preflight", func(t *testing.T) {
		rec := serve(t, &fakeBot{}, http.MethodOptions, "/send", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := serve(t, &fakeBot{}, http.MethodGet, "/nope", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := serve(t, &fakeBot{}, http.MethodGet, "/send", "")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("configured origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/check?session=abc", nil)
		rec := httptest.NewRecorder()
		NewHandler(&fakeBot{}, "https://cube.example").ServeHTTP(rec, req)

		assert.Equal(t, "https://cube.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestStartPayload(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{text: "/start abc", want: "abc", wantOK: true},
		{text: "  /start   abc  ", want: "abc", wantOK: true},
		{text: "/start@cube_bot abc", want: "abc", wantOK: true},
		{text: "/start", wantOK: false},
		{text: "/help abc", wantOK: false},
		{text: "start abc", wantOK: false},
		{text: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := handlers.StartPayload(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
