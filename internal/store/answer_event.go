package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gallegodamar/sinonimoak/ent"
	"github.com/gallegodamar/sinonimoak/ent/answerevent"
	"github.com/gallegodamar/sinonimoak/internal/quiz"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
	log    zerolog.Logger
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetPlayer(data.Player).
		SetEntryID(data.EntryID).
		SetLevel(data.Level).
		SetHeadword(data.Headword).
		SetCorrectAnswer(data.CorrectAnswer).
		SetChosenAnswer(data.ChosenAnswer).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		r.log.Warn().Err(err).Str("run", data.RunID).Msg("append answer event failed")
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerHistory(ctx context.Context, player string) ([]quiz.AnswerRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.Player(player)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer history: %w", err)
	}

	log := make([]quiz.AnswerRecord, 0, len(events))
	for _, e := range events {
		log = append(log, quiz.AnswerRecord{
			EntryID: e.EntryID,
			Level:   e.Level,
			Correct: e.Correct,
		})
	}
	return log, nil
}

func (r *eventRepo) LevelAccuracies(ctx context.Context) ([]LevelAccuracy, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	byLevel := make(map[int]*LevelAccuracy)
	for _, e := range events {
		acc := byLevel[e.Level]
		if acc == nil {
			acc = &LevelAccuracy{Level: e.Level}
			byLevel[e.Level] = acc
		}
		acc.Attempts++
		if e.Correct {
			acc.Correct++
		}
	}

	out := make([]LevelAccuracy, 0, len(byLevel))
	for _, acc := range byLevel {
		out = append(out, *acc)
	}
	sortLevelAccuracies(out)
	return out, nil
}

func (r *eventRepo) MostMissed(ctx context.Context, limit int) ([]MissedWord, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	type key struct {
		headword string
		level    int
	}
	byWord := make(map[key]*MissedWord)
	for _, e := range events {
		k := key{headword: e.Headword, level: e.Level}
		mw := byWord[k]
		if mw == nil {
			mw = &MissedWord{Headword: e.Headword, Level: e.Level}
			byWord[k] = mw
		}
		mw.Attempts++
		if !e.Correct {
			mw.Wrong++
		}
	}

	out := make([]MissedWord, 0, len(byWord))
	for _, mw := range byWord {
		if mw.Wrong > 0 {
			out = append(out, *mw)
		}
	}
	sortMissedWords(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
