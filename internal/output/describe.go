package output

import (
	"fmt"

	"github.com/lgbarn/duel-chess/internal/chess"
	"github.com/lgbarn/duel-chess/internal/engine"
	"github.com/lgbarn/duel-chess/internal/errors"
	"github.com/lgbarn/duel-chess/internal/game"
)

// Prompt asks the side to move for input.
func Prompt(turn chess.Colour) string {
	return fmt.Sprintf("%s to move: ", turn)
}

// DescribeOutcome returns the message shown after a move, or "" when there
// is nothing to announce.
func DescribeOutcome(o engine.Outcome) string {
	switch o.Kind {
	case engine.KingCaptured:
		return fmt.Sprintf("%s wins!", o.Winner)
	case engine.Rejected:
		return "Illegal move. Try again."
	}
	if o.Check {
		return "Check!"
	}
	return ""
}

// DescribeError turns a move error into a message for the player.
func DescribeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, errors.ErrInvalidFormat):
		return `Invalid input. Enter a move like "e2 e4".`
	case errors.Is(err, errors.ErrInvalidSquare):
		return "Invalid square. Files are a-h, ranks are 1-8."
	case errors.Is(err, errors.ErrWrongPiece):
		return "That is not your piece. Try again."
	case errors.Is(err, errors.ErrIllegalMove):
		return "Illegal move. Try again."
	case errors.Is(err, errors.ErrGameOver):
		return `The game is over. Type "new" to play again.`
	case errors.Is(err, errors.ErrNotYourTurn):
		return "It is not your turn."
	case errors.Is(err, errors.ErrRoomFull):
		return "This game already has two players."
	}
	return err.Error()
}

// DescribeStatus summarises a snapshot in one line.
func DescribeStatus(snap game.Snapshot) string {
	if snap.Status == game.Concluded {
		return fmt.Sprintf("Game over. %s wins!", snap.Winner)
	}
	if snap.InCheck {
		return fmt.Sprintf("%s to move, in check.", snap.Turn)
	}
	return fmt.Sprintf("%s to move.", snap.Turn)
}
