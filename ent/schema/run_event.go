package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent records a finished game: one row per run with the final
// standings serialized inline.
type RunEvent struct {
	ent.Schema
}

func (RunEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// PlayerStanding is the serialized form of a player's final result.
type PlayerStanding struct {
	Name           string  `json:"name"`
	Score          int     `json:"score"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("UUID grouping all events of one game"),
		field.String("mode").
			NotEmpty().
			Comment("solo or multi"),
		field.Int("level").
			Comment("Difficulty level played"),
		field.JSON("standings", []PlayerStanding{}).
			Optional().
			Comment("Final ranking, best first"),
		field.Int("questions_served").
			Default(0).
			Comment("Total questions in the run"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct across all players"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock run duration in seconds"),
	}
}

func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("mode"),
		index.Fields("level"),
	}
}
