package messaging

import (
	"testing"

	"github.com/cbodonnell/tictaccube/pkg/workers"
	"github.com/stretchr/testify/assert"
)

func TestNotifier_Notify(t *testing.T) {
	out := make(chan workers.Notification, 1)
	n := NewNotifier(NewNotifierOptions{Out: out})

	n.Notify("before verification")
	assert.Len(t, out, 0)

	n.SetChatID(5)
	n.Notify("first")
	n.Notify("dropped, queue full")

	assert.Len(t, out, 1)
	assert.Equal(t, workers.Notification{ChatID: 5, Text: "first"}, <-out)

	n.SetChatID(0)
	n.Notify("after reset")
	assert.Len(t, out, 0)
}

func TestNotifier_NilOut(t *testing.T) {
	n := NewNotifier(NewNotifierOptions{})
	n.SetChatID(1)
	assert.NotPanics(t, func() { n.Notify("nowhere") })
}
