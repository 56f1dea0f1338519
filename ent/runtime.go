// Code generated by ent, DO NOT EDIT.

package ent

import (
	"investingo/ent/answerevent"
	"investingo/ent/chatevent"
	"investingo/ent/lessonevent"
	"investingo/ent/schema"
	"investingo/ent/snapshot"
	"investingo/ent/tradeevent"
	"time"
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
	// answereventDescAttemptID is the schema descriptor for attempt_id field.
	answereventDescAttemptID := answereventFields[0].Descriptor()
	// answerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	answerevent.AttemptIDValidator = answereventDescAttemptID.Validators[0].(func(string) error)
	// answereventDescLessonID is the schema descriptor for lesson_id field.
	answereventDescLessonID := answereventFields[1].Descriptor()
	// answerevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	answerevent.LessonIDValidator = answereventDescLessonID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescSelected is the schema descriptor for selected field.
	answereventDescSelected := answereventFields[3].Descriptor()
	// answerevent.SelectedValidator is a validator for the "selected" field. It is called by the builders before save.
	answerevent.SelectedValidator = answereventDescSelected.Validators[0].(func(string) error)
	chateventMixin := schema.ChatEvent{}.Mixin()
	chateventMixinFields0 := chateventMixin[0].Fields()
	_ = chateventMixinFields0
	chateventFields := schema.ChatEvent{}.Fields()
	_ = chateventFields
	// chateventDescTimestamp is the schema descriptor for timestamp field.
	chateventDescTimestamp := chateventMixinFields0[1].Descriptor()
	// chatevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	chatevent.DefaultTimestamp = chateventDescTimestamp.Default.(func() time.Time)
	// chateventDescInputTokens is the schema descriptor for input_tokens field.
	chateventDescInputTokens := chateventFields[2].Descriptor()
	// chatevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	chatevent.DefaultInputTokens = chateventDescInputTokens.Default.(int)
	// chateventDescOutputTokens is the schema descriptor for output_tokens field.
	chateventDescOutputTokens := chateventFields[3].Descriptor()
	// chatevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	chatevent.DefaultOutputTokens = chateventDescOutputTokens.Default.(int)
	// chateventDescLatencyMs is the schema descriptor for latency_ms field.
	chateventDescLatencyMs := chateventFields[4].Descriptor()
	// chatevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	chatevent.DefaultLatencyMs = chateventDescLatencyMs.Default.(int64)
	// chateventDescErrorMessage is the schema descriptor for error_message field.
	chateventDescErrorMessage := chateventFields[6].Descriptor()
	// chatevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	chatevent.DefaultErrorMessage = chateventDescErrorMessage.Default.(string)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescAttemptID is the schema descriptor for attempt_id field.
	lessoneventDescAttemptID := lessoneventFields[0].Descriptor()
	// lessonevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	lessonevent.AttemptIDValidator = lessoneventDescAttemptID.Validators[0].(func(string) error)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[1].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescModuleID is the schema descriptor for module_id field.
	lessoneventDescModuleID := lessoneventFields[2].Descriptor()
	// lessonevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	lessonevent.ModuleIDValidator = lessoneventDescModuleID.Validators[0].(func(string) error)
	// lessoneventDescXpAwarded is the schema descriptor for xp_awarded field.
	lessoneventDescXpAwarded := lessoneventFields[5].Descriptor()
	// lessonevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	lessonevent.DefaultXpAwarded = lessoneventDescXpAwarded.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	// snapshotDescVersion is the schema descriptor for version field.
	snapshotDescVersion := snapshotFields[2].Descriptor()
	// snapshot.DefaultVersion holds the default value on creation for the version field.
	snapshot.DefaultVersion = snapshotDescVersion.Default.(int)
	tradeeventMixin := schema.TradeEvent{}.Mixin()
	tradeeventMixinFields0 := tradeeventMixin[0].Fields()
	_ = tradeeventMixinFields0
	tradeeventFields := schema.TradeEvent{}.Fields()
	_ = tradeeventFields
	// tradeeventDescTimestamp is the schema descriptor for timestamp field.
	tradeeventDescTimestamp := tradeeventMixinFields0[1].Descriptor()
	// tradeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	tradeevent.DefaultTimestamp = tradeeventDescTimestamp.Default.(func() time.Time)
	// tradeeventDescSymbol is the schema descriptor for symbol field.
	tradeeventDescSymbol := tradeeventFields[0].Descriptor()
	// tradeevent.SymbolValidator is a validator for the "symbol" field. It is called by the builders before save.
	tradeevent.SymbolValidator = tradeeventDescSymbol.Validators[0].(func(string) error)
}
