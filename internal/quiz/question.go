package quiz

import "github.com/gallegodamar/sinonimoak/internal/words"

// QuestionsPerTurn is the fixed number of questions in one player's turn.
const QuestionsPerTurn = 10

// Question is a single multiple-choice synonym question.
// Options contains Answer plus up to 3 distractors, shuffled, with no
// duplicate strings. When the vocabulary is too small to supply enough
// distractors, Options is legitimately shorter than 4.
type Question struct {
	// Entry is the source dictionary entry; its headword is the prompt.
	Entry words.WordEntry

	// Answer is the correct option, drawn from Entry.Synonyms.
	Answer string

	// Options is the shuffled option list shown to the player.
	Options []string
}

// PoolIndex maps a (player, turn position) pair to the flat pool index.
// The pool for an n-player game has n*QuestionsPerTurn questions and
// player p answers the contiguous block starting at p*QuestionsPerTurn.
func PoolIndex(player, question int) int {
	return player*QuestionsPerTurn + question
}
