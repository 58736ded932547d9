package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/gallegodamar/sinonimoak/internal/words"
)

// ErrEmptyVocabulary is returned when generation is requested for a
// level with no usable entries. The caller aborts game start and shows
// a notice; no partial pool is ever produced.
var ErrEmptyVocabulary = errors.New("quiz: empty vocabulary")

// Generate builds needed questions from the vocabulary. When stats is
// non-empty, entries the player has historically missed are drawn more
// often; otherwise draws are uniform. Each question's correct answer is
// picked uniformly from the entry's own synonyms and its options are
// the shuffled union of the answer and its distractors.
//
// Every entry in vocabulary must have at least one synonym; the caller
// filters with words.FilterUsable. An entry without synonyms is a
// precondition violation and fails the whole generation rather than
// producing an unanswerable question.
func Generate(rng *rand.Rand, needed int, vocabulary []words.WordEntry, stats map[string]FailureStat) ([]Question, error) {
	if needed <= 0 {
		return nil, fmt.Errorf("quiz: needed must be positive, got %d", needed)
	}
	if len(vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}

	sampler := SamplerFor(rng, stats)
	questions := make([]Question, 0, needed)

	for i := 0; i < needed; i++ {
		entry := sampler.Draw(vocabulary)
		if len(entry.Synonyms) == 0 {
			return nil, fmt.Errorf("quiz: entry %q has no synonyms", entry.Headword)
		}

		answer := entry.Synonyms[rng.IntN(len(entry.Synonyms))]
		distractors := SelectDistractors(rng, entry, vocabulary, DistractorCount)

		options := make([]string, 0, 1+len(distractors))
		options = append(options, answer)
		options = append(options, distractors...)
		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		questions = append(questions, Question{
			Entry:   entry,
			Answer:  answer,
			Options: options,
		})
	}

	return questions, nil
}

// GeneratePool builds a full game pool of players×QuestionsPerTurn
// questions, indexed per the PoolIndex contract.
func GeneratePool(rng *rand.Rand, players int, vocabulary []words.WordEntry, stats map[string]FailureStat) ([]Question, error) {
	if players <= 0 {
		return nil, fmt.Errorf("quiz: players must be positive, got %d", players)
	}
	return Generate(rng, players*QuestionsPerTurn, vocabulary, stats)
}
