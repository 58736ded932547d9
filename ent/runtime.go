// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/gallegodamar/sinonimoak/ent/answerevent"
	"github.com/gallegodamar/sinonimoak/ent/runevent"
	"github.com/gallegodamar/sinonimoak/ent/schema"
	"github.com/gallegodamar/sinonimoak/ent/word"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescRunID is the schema descriptor for run_id field.
	answereventDescRunID := answereventFields[0].Descriptor()
	// answerevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	answerevent.RunIDValidator = answereventDescRunID.Validators[0].(func(string) error)
	// answereventDescPlayer is the schema descriptor for player field.
	answereventDescPlayer := answereventFields[1].Descriptor()
	// answerevent.PlayerValidator is a validator for the "player" field. It is called by the builders before save.
	answerevent.PlayerValidator = answereventDescPlayer.Validators[0].(func(string) error)
	// answereventDescEntryID is the schema descriptor for entry_id field.
	answereventDescEntryID := answereventFields[2].Descriptor()
	// answerevent.EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	answerevent.EntryIDValidator = answereventDescEntryID.Validators[0].(func(string) error)
	// answereventDescHeadword is the schema descriptor for headword field.
	answereventDescHeadword := answereventFields[4].Descriptor()
	// answerevent.HeadwordValidator is a validator for the "headword" field. It is called by the builders before save.
	answerevent.HeadwordValidator = answereventDescHeadword.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[5].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	// answereventDescChosenAnswer is the schema descriptor for chosen_answer field.
	answereventDescChosenAnswer := answereventFields[6].Descriptor()
	// answerevent.ChosenAnswerValidator is a validator for the "chosen_answer" field. It is called by the builders before save.
	answerevent.ChosenAnswerValidator = answereventDescChosenAnswer.Validators[0].(func(string) error)
	runeventMixin := schema.RunEvent{}.Mixin()
	runeventMixinFields0 := runeventMixin[0].Fields()
	_ = runeventMixinFields0
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescTimestamp is the schema descriptor for timestamp field.
	runeventDescTimestamp := runeventMixinFields0[1].Descriptor()
	// runevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	runevent.DefaultTimestamp = runeventDescTimestamp.Default.(func() time.Time)
	// runeventDescRunID is the schema descriptor for run_id field.
	runeventDescRunID := runeventFields[0].Descriptor()
	// runevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	runevent.RunIDValidator = runeventDescRunID.Validators[0].(func(string) error)
	// runeventDescMode is the schema descriptor for mode field.
	runeventDescMode := runeventFields[1].Descriptor()
	// runevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	runevent.ModeValidator = runeventDescMode.Validators[0].(func(string) error)
	// runeventDescQuestionsServed is the schema descriptor for questions_served field.
	runeventDescQuestionsServed := runeventFields[4].Descriptor()
	// runevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	runevent.DefaultQuestionsServed = runeventDescQuestionsServed.Default.(int)
	// runeventDescCorrectAnswers is the schema descriptor for correct_answers field.
	runeventDescCorrectAnswers := runeventFields[5].Descriptor()
	// runevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	runevent.DefaultCorrectAnswers = runeventDescCorrectAnswers.Default.(int)
	// runeventDescDurationSecs is the schema descriptor for duration_secs field.
	runeventDescDurationSecs := runeventFields[6].Descriptor()
	// runevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	runevent.DefaultDurationSecs = runeventDescDurationSecs.Default.(int)
	wordFields := schema.Word{}.Fields()
	_ = wordFields
	// wordDescHeadword is the schema descriptor for headword field.
	wordDescHeadword := wordFields[0].Descriptor()
	// word.HeadwordValidator is a validator for the "headword" field. It is called by the builders before save.
	word.HeadwordValidator = wordDescHeadword.Validators[0].(func(string) error)
	// wordDescLevel is the schema descriptor for level field.
	wordDescLevel := wordFields[2].Descriptor()
	// word.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	word.LevelValidator = wordDescLevel.Validators[0].(func(int) error)
	// wordDescActive is the schema descriptor for active field.
	wordDescActive := wordFields[3].Descriptor()
	// word.DefaultActive holds the default value on creation for the active field.
	word.DefaultActive = wordDescActive.Default.(bool)
}
