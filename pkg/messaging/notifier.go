package messaging

import (
	"sync"

	"github.com/cbodonnell/tictaccube/pkg/log"
	"github.com/cbodonnell/tictaccube/pkg/workers"
)

// Notifier hands outcome messages for the verified chat to a NotifyWorker.
// Messages are dropped while no chat is verified or when the worker is behind.
type Notifier struct {
	out chan<- workers.Notification

	lock   sync.RWMutex
	chatID int64
}

type NewNotifierOptions struct {
	Out chan<- workers.Notification
}

func NewNotifier(opts NewNotifierOptions) *Notifier {
	return &Notifier{
		out: opts.Out,
	}
}

// SetChatID sets the chat messages are delivered to. Zero disables delivery.
func (n *Notifier) SetChatID(chatID int64) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.chatID = chatID
}

func (n *Notifier) ChatID() int64 {
	n.lock.RLock()
	defer n.lock.RUnlock()
	return n.chatID
}

// Notify never blocks.
func (n *Notifier) Notify(text string) {
	chatID := n.ChatID()
	if chatID == 0 || n.out == nil {
		log.Debug("No verified chat, dropping notification")
		return
	}
	select {
	case n.out <- workers.Notification{ChatID: chatID, Text: text}:
	default:
		log.Warn("Notification queue is full, dropping notification for chat %d", chatID)
	}
}
