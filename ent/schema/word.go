package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Word is a dictionary entry: a headword with its synonyms at a
// difficulty level. The quiz only ever sees active entries.
type Word struct {
	ent.Schema
}

func (Word) Fields() []ent.Field {
	return []ent.Field{
		field.String("headword").
			NotEmpty().
			Comment("The word shown as the question prompt"),
		field.JSON("synonyms", []string{}).
			Comment("Accepted answers, in dictionary order"),
		field.Int("level").
			Positive().
			Comment("Difficulty tier partitioning the dictionary"),
		field.Bool("active").
			Default(true).
			Comment("Soft-delete flag; inactive entries are never quizzed"),
	}
}

func (Word) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level", "active"),
		index.Fields("headword", "level").Unique(),
	}
}
