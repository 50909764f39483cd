package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/tictaccube/pkg/log"
)

// Notification is a message for a single chat.
type Notification struct {
	ChatID int64
	Text   string
}

// Sender delivers a message to a chat.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

// NotifyWorker delivers notifications one at a time off the game loop.
type NotifyWorker struct {
	sender           Sender
	notificationChan <-chan Notification
	timeout          time.Duration
}

type NewNotifyWorkerOptions struct {
	Sender           Sender
	NotificationChan <-chan Notification
	// Timeout bounds a single delivery. Defaults to 10 seconds.
	Timeout time.Duration
}

func NewNotifyWorker(opts NewNotifyWorkerOptions) *NotifyWorker {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NotifyWorker{
		sender:           opts.Sender,
		notificationChan: opts.NotificationChan,
		timeout:          timeout,
	}
}

// Start runs until ctx is done or the notification channel is closed.
func (w *NotifyWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-w.notificationChan:
			if !ok {
				return
			}
			if err := w.deliver(ctx, n); err != nil {
				log.Error("Failed to deliver notification to chat %d: %v", n.ChatID, err)
			}
		}
	}
}

func (w *NotifyWorker) deliver(ctx context.Context, n Notification) error {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.sender.Send(ctx, n.ChatID, n.Text); err != nil {
		return err
	}
	log.Debug("Delivered notification to chat %d", n.ChatID)
	return nil
}
