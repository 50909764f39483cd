package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cbodonnell/tictaccube/pkg/log"
)

// ReturnToGameMessage is sent to a chat once it has confirmed a session.
const ReturnToGameMessage = "✅ <b>You're connected!</b>\n\nGo back to the game and make your move."

// BotAPI is the part of the Telegram Bot API the proxy uses.
// *tgbotapi.BotAPI satisfies it.
type BotAPI interface {
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

var _ BotAPI = &tgbotapi.BotAPI{}

type SendRequest struct {
	ChatID *int64 `json:"chat_id"`
	Text   string `json:"text"`
}

type SendResponse struct {
	OK        bool   `json:"ok"`
	MessageID int    `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

type CheckResponse struct {
	ChatID *int64 `json:"chat_id"`
	Error  string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleSend forwards an HTML message to a chat.
func HandleSend(bot BotAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &SendRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			writeJSON(w, http.StatusBadRequest, SendResponse{Error: "invalid JSON body"})
			return
		}
		if req.ChatID == nil || req.Text == "" {
			writeJSON(w, http.StatusBadRequest, SendResponse{Error: "chat_id and text are required"})
			return
		}

		msg := tgbotapi.NewMessage(*req.ChatID, req.Text)
		msg.ParseMode = tgbotapi.ModeHTML
		sent, err := bot.Send(msg)
		if err != nil {
			log.Error("failed to send message to chat %d: %v", *req.ChatID, err)
			writeJSON(w, http.StatusBadGateway, SendResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, SendResponse{OK: true, MessageID: sent.MessageID})
	}
}

// HandleCheck looks for a "/start <session>" message among the pending bot
// updates. The newest match wins and its chat is returned.
func HandleCheck(bot BotAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := strings.TrimSpace(r.URL.Query().Get("session"))
		if session == "" {
			writeJSON(w, http.StatusBadRequest, CheckResponse{Error: "session is required"})
			return
		}

		updates, err := bot.GetUpdates(tgbotapi.UpdateConfig{
			Timeout:        1,
			AllowedUpdates: []string{"message"},
		})
		if err != nil {
			log.Error("failed to get updates: %v", err)
			writeJSON(w, http.StatusBadGateway, CheckResponse{Error: err.Error()})
			return
		}

		for i := len(updates) - 1; i >= 0; i-- {
			u := updates[i]
			if u.Message == nil || u.Message.Chat == nil {
				continue
			}
			payload, ok := StartPayload(u.Message.Text)
			if !ok || !strings.EqualFold(payload, session) {
				continue
			}

			chatID := u.Message.Chat.ID
			log.Info("Session %s confirmed by chat %d", session, chatID)

			reply := tgbotapi.NewMessage(chatID, ReturnToGameMessage)
			reply.ParseMode = tgbotapi.ModeHTML
			if _, err := bot.Send(reply); err != nil {
				log.Warn("failed to send confirmation to chat %d: %v", chatID, err)
			}
			if _, err := bot.GetUpdates(tgbotapi.NewUpdate(u.UpdateID + 1)); err != nil {
				log.Warn("failed to acknowledge update %d: %v", u.UpdateID, err)
			}

			writeJSON(w, http.StatusOK, CheckResponse{ChatID: &chatID})
			return
		}

		writeJSON(w, http.StatusOK, CheckResponse{})
	}
}

// HandleNotFound answers unknown routes with a JSON error.
func HandleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
}

// HandleMethodNotAllowed answers known routes called with the wrong method.
func HandleMethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
	}
}

// StartPayload returns the argument of a "/start" command. The command may be
// addressed to a bot, as in "/start@cube_bot".
func StartPayload(text string) (string, bool) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return "", false
	}
	command, _, _ := strings.Cut(fields[0], "@")
	if command != "/start" {
		return "", false
	}
	return fields[1], true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
