package game

// Player is one participant in a game.
type Player struct {
	ID   int
	Name string

	// Score counts correct answers; exactly +1 per correct answer.
	Score int

	// ElapsedSeconds is finalized once, at the end of the player's turn:
	// wall-clock turn duration plus a fixed penalty per wrong answer.
	// It is a ranking figure, not a pure wall-clock measurement.
	ElapsedSeconds float64
}

// WrongAnswerPenaltySeconds is added to a player's elapsed time for each
// wrong answer in their turn.
const WrongAnswerPenaltySeconds = 10

// MaxPlayers bounds the multiplayer setup form.
const MaxPlayers = 4
