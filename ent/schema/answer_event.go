package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a run.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Links to RunEvent"),
		field.String("player").
			NotEmpty().
			Comment("Name of the player who answered"),
		field.String("entry_id").
			NotEmpty().
			Comment("Dictionary entry the question was built from"),
		field.Int("level").
			Comment("Difficulty level of the run"),
		field.String("headword").
			NotEmpty().
			Comment("The prompt shown"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The synonym that was correct"),
		field.String("chosen_answer").
			NotEmpty().
			Comment("What the player picked"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("player"),
		index.Fields("entry_id"),
		index.Fields("correct"),
	}
}
