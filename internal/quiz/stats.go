package quiz

import "fmt"

// AnswerRecord is one row of the raw answer log, as returned by the
// history store. The generator aggregates these itself rather than
// trusting pre-aggregated numbers.
type AnswerRecord struct {
	EntryID string
	Level   int
	Correct bool
}

// FailureStat aggregates a player's history for one (entry, level) pair.
type FailureStat struct {
	EntryKey string
	Wrong    int
	Attempts int
}

// StatKey builds the aggregation key for an entry at a level.
func StatKey(entryID string, level int) string {
	return fmt.Sprintf("%s|%d", entryID, level)
}

// AggregateHistory folds a raw answer log into per-entry failure stats.
// Pairs with a single attempt are dropped as statistically insufficient.
// Each call produces a fresh map; nothing is mutated in place.
func AggregateHistory(log []AnswerRecord) map[string]FailureStat {
	stats := make(map[string]FailureStat)
	for _, rec := range log {
		key := StatKey(rec.EntryID, rec.Level)
		s := stats[key]
		s.EntryKey = key
		s.Attempts++
		if !rec.Correct {
			s.Wrong++
		}
		stats[key] = s
	}

	for key, s := range stats {
		if s.Attempts <= 1 {
			delete(stats, key)
		}
	}
	return stats
}
