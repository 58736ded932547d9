package game

import (
	"sort"

	"github.com/samber/lo"

	"github.com/gallegodamar/sinonimoak/internal/quiz"
	"github.com/gallegodamar/sinonimoak/internal/words"
)

// ReviewWords returns the distinct dictionary entries encountered in
// the game, sorted alphabetically by headword, for the review screen.
func (g *Game) ReviewWords() []words.WordEntry {
	entries := lo.UniqBy(
		lo.Map(g.pool, func(q quiz.Question, _ int) words.WordEntry { return q.Entry }),
		func(e words.WordEntry) string { return e.ID },
	)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Headword < entries[j].Headword
	})
	return entries
}
