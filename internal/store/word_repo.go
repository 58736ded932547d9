package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gallegodamar/sinonimoak/ent"
	"github.com/gallegodamar/sinonimoak/ent/word"
	"github.com/gallegodamar/sinonimoak/internal/words"
)

// wordRepo implements WordRepo using the ent client.
type wordRepo struct {
	client *ent.Client
}

func (r *wordRepo) ActiveByLevel(ctx context.Context, level int) ([]words.WordEntry, error) {
	rows, err := r.client.Word.Query().
		Where(word.Level(level), word.Active(true)).
		Order(ent.Asc(word.FieldHeadword)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query words for level %d: %w", level, err)
	}

	entries := make([]words.WordEntry, 0, len(rows))
	for _, w := range rows {
		entries = append(entries, words.WordEntry{
			ID:       strconv.Itoa(w.ID),
			Headword: w.Headword,
			Synonyms: w.Synonyms,
			Level:    w.Level,
		})
	}
	return entries, nil
}

func (r *wordRepo) Seed(ctx context.Context, entries []SeedWord) (int, error) {
	written := 0
	for _, e := range entries {
		if e.Headword == "" || len(e.Synonyms) == 0 || e.Level <= 0 {
			continue // unusable rows are skipped, not fatal
		}
		err := r.client.Word.Create().
			SetHeadword(e.Headword).
			SetSynonyms(e.Synonyms).
			SetLevel(e.Level).
			SetActive(true).
			OnConflictColumns(word.FieldHeadword, word.FieldLevel).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return written, fmt.Errorf("seed %q: %w", e.Headword, err)
		}
		written++
	}
	return written, nil
}

func (r *wordRepo) CountByLevel(ctx context.Context) (map[int]int, error) {
	rows, err := r.client.Word.Query().
		Where(word.Active(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}

	counts := make(map[int]int)
	for _, w := range rows {
		counts[w.Level]++
	}
	return counts, nil
}

func (r *wordRepo) Deactivate(ctx context.Context, headword string, level int) error {
	n, err := r.client.Word.Update().
		Where(word.Headword(headword), word.Level(level)).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("deactivate %q: %w", headword, err)
	}
	if n == 0 {
		return fmt.Errorf("deactivate %q: no such entry at level %d", headword, level)
	}
	return nil
}
