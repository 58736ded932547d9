package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/gallegodamar/sinonimoak/ent"
	"github.com/gallegodamar/sinonimoak/ent/runevent"
	entschema "github.com/gallegodamar/sinonimoak/ent/schema"
)

func (r *eventRepo) AppendRunEvent(ctx context.Context, data RunEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var standings []entschema.PlayerStanding
	for _, s := range data.Standings {
		standings = append(standings, entschema.PlayerStanding{
			Name:           s.Name,
			Score:          s.Score,
			ElapsedSeconds: s.ElapsedSeconds,
		})
	}

	builder := r.client.RunEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetMode(data.Mode).
		SetLevel(data.Level).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs)

	if len(standings) > 0 {
		builder = builder.SetStandings(standings)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		r.log.Warn().Err(err).Str("run", data.RunID).Msg("append run event failed")
		return fmt.Errorf("save run event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRunSummaries(ctx context.Context, opts QueryOpts) ([]RunSummaryRecord, error) {
	q := r.client.RunEvent.Query().
		Order(ent.Desc(runevent.FieldSequence))

	if !opts.From.IsZero() {
		q = q.Where(runevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(runevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query run summaries: %w", err)
	}

	out := make([]RunSummaryRecord, 0, len(rows))
	for _, row := range rows {
		rec := RunSummaryRecord{
			RunID:           row.RunID,
			Timestamp:       row.Timestamp,
			Mode:            row.Mode,
			Level:           row.Level,
			QuestionsServed: row.QuestionsServed,
			CorrectAnswers:  row.CorrectAnswers,
			DurationSecs:    row.DurationSecs,
		}
		for _, s := range row.Standings {
			rec.Standings = append(rec.Standings, PlayerStanding{
				Name:           s.Name,
				Score:          s.Score,
				ElapsedSeconds: s.ElapsedSeconds,
			})
		}
		out = append(out, rec)
	}
	return out, nil
}

func sortLevelAccuracies(accs []LevelAccuracy) {
	sort.Slice(accs, func(i, j int) bool {
		return accs[i].Level < accs[j].Level
	})
}

func sortMissedWords(missed []MissedWord) {
	sort.Slice(missed, func(i, j int) bool {
		if missed[i].Wrong != missed[j].Wrong {
			return missed[i].Wrong > missed[j].Wrong
		}
		return missed[i].Headword < missed[j].Headword
	})
}
