package play

import (
	"github.com/gallegodamar/sinonimoak/internal/quiz"
)

// persistDoneMsg confirms an event append finished (possibly with error).
type persistDoneMsg struct {
	Err error
}

// restartPoolMsg delivers the freshly generated pool for a rematch.
type restartPoolMsg struct {
	Pool []quiz.Question
	Err  error
}
