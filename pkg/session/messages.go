package session

import (
	"fmt"

	"github.com/cbodonnell/tictaccube/pkg/game"
)

// Outcome messages use the HTML subset understood by the messaging service.
const (
	lossMessage = "😔 <b>No luck this time.</b>\n\nPlay again, you will get it next time!"
	drawMessage = "🤝 <b>It's a draw!</b>\n\nOne more round?"
)

func winMessage(promoCode string) string {
	return fmt.Sprintf("🏆 <b>Congratulations! You won!</b>\n\nYour promo code: <code>%s</code>", promoCode)
}

// OutcomeMessage returns the notification text for a decided game as seen by
// player. promoCode is only used for a win.
func OutcomeMessage(outcome game.Outcome, player game.Mark, promoCode string) string {
	switch {
	case outcome.Result == game.ResultWin && outcome.Winner == player:
		return winMessage(promoCode)
	case outcome.Result == game.ResultWin:
		return lossMessage
	case outcome.Result == game.ResultDraw:
		return drawMessage
	}
	return ""
}

// StatusText returns a one line description of the session for the screen.
func StatusText(st State) string {
	switch st.Phase() {
	case PhaseAwaitingStart:
		return "Connect to start playing"
	case PhaseFlipping:
		return "New game"
	case PhaseOpponentTurn:
		return "Opponent is thinking..."
	case PhasePlayerTurn:
		return "Your move"
	}

	if !st.Revealed {
		return ""
	}
	switch {
	case st.Outcome.Result == game.ResultWin && st.Outcome.Winner == game.MarkX:
		return fmt.Sprintf("You won! Promo code: %s", st.PromoCode)
	case st.Outcome.Result == game.ResultWin:
		return "No luck this time. Play again?"
	default:
		return "Draw. One more round?"
	}
}
