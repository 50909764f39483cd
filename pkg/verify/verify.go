package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Status is the position of a Poller in its state machine.
type Status int

const (
	StatusIdle Status = iota
	StatusPolling
	StatusConfirmed
	StatusFailed
	// StatusBypassed means verification is not configured and play is open.
	StatusBypassed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusPolling:
		return "Polling"
	case StatusConfirmed:
		return "Confirmed"
	case StatusFailed:
		return "Failed"
	case StatusBypassed:
		return "Bypassed"
	}
	return "Unknown"
}

// Result is what a single verification check amounts to.
type Result int

const (
	ResultPending Result = iota
	ResultConfirmed
	ResultError
)

func (r Result) String() string {
	switch r {
	case ResultPending:
		return "pending"
	case ResultConfirmed:
		return "confirmed"
	case ResultError:
		return "error"
	}
	return "unknown"
}

// Verification is the answer of the messaging service for a session token.
type Verification struct {
	// ChatID identifies the chat that started the session. Only set when Confirmed.
	ChatID    int64
	Confirmed bool
}

// Checker asks the messaging service whether a session token was confirmed.
type Checker interface {
	Check(ctx context.Context, token string) (Verification, error)
}

// Classify folds the answer of a Checker into a Result.
func Classify(v Verification, err error) Result {
	switch {
	case err != nil:
		return ResultError
	case v.Confirmed:
		return ResultConfirmed
	default:
		return ResultPending
	}
}

// NewSessionToken returns a random token made of 32 lowercase hex digits.
func NewSessionToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// DeepLink returns the link that opens a chat with bot and sends it
// "/start <token>".
func DeepLink(bot, token string) string {
	return fmt.Sprintf("https://t.me/%s?start=%s", strings.TrimPrefix(bot, "@"), token)
}
