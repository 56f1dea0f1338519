package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single checked answer within a lesson attempt.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Groups answers belonging to one lesson attempt"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson this question belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("Question that was checked"),
		field.String("selected").
			NotEmpty().
			Comment("Option the learner locked in"),
		field.Bool("correct").
			Comment("Whether the answer matched"),
		field.Int("hearts_left").
			Comment("Hearts remaining after the check"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("lesson_id"),
		index.Fields("correct"),
	}
}
