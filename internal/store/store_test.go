package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared", zerolog.Nop())
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		row := db.QueryRow("PRAGMA " + tt.pragma)
		if err := row.Scan(&got); err != nil {
			t.Fatalf("read pragma %s: %v", tt.pragma, err)
		}
		if got != tt.want {
			t.Errorf("pragma %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWordRepoSeedAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	n, err := repo.Seed(ctx, []SeedWord{
		{Headword: "azkar", Synonyms: []string{"bizkor", "lasterka"}, Level: 1},
		{Headword: "handi", Synonyms: []string{"nagusi"}, Level: 1},
		{Headword: "ospetsu", Synonyms: []string{"entzutetsu"}, Level: 2},
		{Headword: "hutsik", Synonyms: nil, Level: 1}, // skipped
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 3 {
		t.Errorf("seeded %d entries, want 3", n)
	}

	level1, err := repo.ActiveByLevel(ctx, 1)
	if err != nil {
		t.Fatalf("active by level: %v", err)
	}
	if len(level1) != 2 {
		t.Fatalf("level 1 has %d entries, want 2", len(level1))
	}
	if level1[0].Headword != "azkar" {
		t.Errorf("entries not ordered by headword: got %q first", level1[0].Headword)
	}
	if len(level1[0].Synonyms) != 2 {
		t.Errorf("synonyms not round-tripped: %v", level1[0].Synonyms)
	}

	counts, err := repo.CountByLevel(ctx)
	if err != nil {
		t.Fatalf("count by level: %v", err)
	}
	if counts[1] != 2 || counts[2] != 1 {
		t.Errorf("counts = %v, want map[1:2 2:1]", counts)
	}
}

func TestWordRepoSeedUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	if _, err := repo.Seed(ctx, []SeedWord{
		{Headword: "azkar", Synonyms: []string{"bizkor"}, Level: 1},
	}); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if _, err := repo.Seed(ctx, []SeedWord{
		{Headword: "azkar", Synonyms: []string{"bizkor", "arin"}, Level: 1},
	}); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	entries, err := repo.ActiveByLevel(ctx, 1)
	if err != nil {
		t.Fatalf("active by level: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected upsert, got %d rows", len(entries))
	}
	if len(entries[0].Synonyms) != 2 {
		t.Errorf("synonyms not updated: %v", entries[0].Synonyms)
	}
}

func TestWordRepoDeactivate(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordRepo()
	ctx := context.Background()

	if _, err := repo.Seed(ctx, []SeedWord{
		{Headword: "azkar", Synonyms: []string{"bizkor"}, Level: 1},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := repo.Deactivate(ctx, "azkar", 1); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	entries, err := repo.ActiveByLevel(ctx, 1)
	if err != nil {
		t.Fatalf("active by level: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("deactivated entry still served: %v", entries)
	}

	if err := repo.Deactivate(ctx, "ezezagun", 1); err == nil {
		t.Error("deactivating a missing entry should error")
	}
}

func TestEventRepoAnswerHistory(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	answers := []AnswerEventData{
		{RunID: "r1", Player: "Ane", EntryID: "5", Level: 1, Headword: "azkar", CorrectAnswer: "bizkor", ChosenAnswer: "nagusi", Correct: false, TimeMs: 2100},
		{RunID: "r1", Player: "Ane", EntryID: "5", Level: 1, Headword: "azkar", CorrectAnswer: "bizkor", ChosenAnswer: "bizkor", Correct: true, TimeMs: 1500},
		{RunID: "r1", Player: "Jon", EntryID: "6", Level: 1, Headword: "handi", CorrectAnswer: "nagusi", ChosenAnswer: "nagusi", Correct: true, TimeMs: 900},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	hist, err := repo.AnswerHistory(ctx, "Ane")
	if err != nil {
		t.Fatalf("answer history: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("Ane has %d records, want 2", len(hist))
	}
	if hist[0].Correct || !hist[1].Correct {
		t.Error("history not in append order")
	}
	if hist[0].EntryID != "5" || hist[0].Level != 1 {
		t.Errorf("record fields wrong: %+v", hist[0])
	}
}

func TestEventRepoRunSummaries(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	runs := []RunEventData{
		{RunID: "r1", Mode: "multi", Level: 1, QuestionsServed: 20, CorrectAnswers: 13, DurationSecs: 240,
			Standings: []PlayerStanding{{Name: "Ane", Score: 7, ElapsedSeconds: 95}, {Name: "Jon", Score: 6, ElapsedSeconds: 120}}},
		{RunID: "r2", Mode: "solo", Level: 2, QuestionsServed: 10, CorrectAnswers: 9, DurationSecs: 80,
			Standings: []PlayerStanding{{Name: "Ane", Score: 9, ElapsedSeconds: 90}}},
	}
	for _, r := range runs {
		if err := repo.AppendRunEvent(ctx, r); err != nil {
			t.Fatalf("append run: %v", err)
		}
	}

	got, err := repo.QueryRunSummaries(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d runs, want 2", len(got))
	}
	if got[0].RunID != "r2" {
		t.Errorf("newest run first, got %s", got[0].RunID)
	}
	if len(got[1].Standings) != 2 || got[1].Standings[0].Name != "Ane" {
		t.Errorf("standings not round-tripped: %+v", got[1].Standings)
	}
}

func TestEventRepoAggregates(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	answers := []AnswerEventData{
		{RunID: "r", Player: "Ane", EntryID: "1", Level: 1, Headword: "azkar", CorrectAnswer: "bizkor", ChosenAnswer: "x", Correct: false},
		{RunID: "r", Player: "Ane", EntryID: "1", Level: 1, Headword: "azkar", CorrectAnswer: "bizkor", ChosenAnswer: "x", Correct: false},
		{RunID: "r", Player: "Ane", EntryID: "2", Level: 1, Headword: "handi", CorrectAnswer: "nagusi", ChosenAnswer: "nagusi", Correct: true},
		{RunID: "r", Player: "Ane", EntryID: "3", Level: 2, Headword: "ospetsu", CorrectAnswer: "entzutetsu", ChosenAnswer: "y", Correct: false},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	accs, err := repo.LevelAccuracies(ctx)
	if err != nil {
		t.Fatalf("level accuracies: %v", err)
	}
	if len(accs) != 2 {
		t.Fatalf("got %d levels, want 2", len(accs))
	}
	if accs[0].Level != 1 || accs[0].Attempts != 3 || accs[0].Correct != 1 {
		t.Errorf("level 1 aggregate wrong: %+v", accs[0])
	}

	missed, err := repo.MostMissed(ctx, 5)
	if err != nil {
		t.Fatalf("most missed: %v", err)
	}
	if len(missed) != 2 {
		t.Fatalf("got %d missed words, want 2", len(missed))
	}
	if missed[0].Headword != "azkar" || missed[0].Wrong != 2 {
		t.Errorf("most missed should lead with azkar: %+v", missed[0])
	}
}
