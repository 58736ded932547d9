package store

import (
	"context"
	"time"

	"github.com/gallegodamar/sinonimoak/internal/quiz"
	"github.com/gallegodamar/sinonimoak/internal/words"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// SeedWord is one dictionary entry as it appears in an import file.
type SeedWord struct {
	Headword string   `json:"headword"`
	Synonyms []string `json:"synonyms"`
	Level    int      `json:"level"`
}

// WordRepo manages the dictionary table.
type WordRepo interface {
	// ActiveByLevel returns the active entries at a difficulty level.
	ActiveByLevel(ctx context.Context, level int) ([]words.WordEntry, error)

	// Seed upserts dictionary entries, keyed by (headword, level).
	// Returns the number of entries written.
	Seed(ctx context.Context, entries []SeedWord) (int, error)

	// CountByLevel returns the number of active entries per level.
	CountByLevel(ctx context.Context) (map[int]int, error)

	// Deactivate soft-deletes an entry so it stops being quizzed.
	Deactivate(ctx context.Context, headword string, level int) error
}

// AnswerEventData captures one answered question for persistence.
type AnswerEventData struct {
	RunID         string
	Player        string
	EntryID       string
	Level         int
	Headword      string
	CorrectAnswer string
	ChosenAnswer  string
	Correct       bool
	TimeMs        int
}

// PlayerStanding is one player's final result within a run summary.
type PlayerStanding struct {
	Name           string
	Score          int
	ElapsedSeconds float64
}

// RunEventData captures a finished game for persistence.
type RunEventData struct {
	RunID           string
	Mode            string // "solo" or "multi"
	Level           int
	Standings       []PlayerStanding
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// RunSummaryRecord is a stored run as returned by queries.
type RunSummaryRecord struct {
	RunID           string
	Timestamp       time.Time
	Mode            string
	Level           int
	Standings       []PlayerStanding
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// LevelAccuracy aggregates answer outcomes for one difficulty level.
type LevelAccuracy struct {
	Level    int
	Attempts int
	Correct  int
}

// MissedWord is a headword ranked by how often it was answered wrong.
type MissedWord struct {
	Headword string
	Level    int
	Wrong    int
	Attempts int
}

// EventRepo provides append and query access to the answer log and run
// summaries. Appends are fire-and-forget from the game's perspective:
// callers log failures but never fail a turn over them.
type EventRepo interface {
	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendRunEvent records a finished game.
	AppendRunEvent(ctx context.Context, data RunEventData) error

	// AnswerHistory returns the raw answer log for a player, oldest
	// first. The quiz package aggregates it into failure stats itself.
	AnswerHistory(ctx context.Context, player string) ([]quiz.AnswerRecord, error)

	// QueryRunSummaries returns stored runs, newest first.
	QueryRunSummaries(ctx context.Context, opts QueryOpts) ([]RunSummaryRecord, error)

	// LevelAccuracies aggregates answer outcomes per level.
	LevelAccuracies(ctx context.Context) ([]LevelAccuracy, error)

	// MostMissed returns the headwords answered wrong most often.
	MostMissed(ctx context.Context, limit int) ([]MissedWord, error)
}
