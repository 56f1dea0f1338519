package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records the verdict of one finished lesson attempt.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Links to the AnswerEvents of this attempt"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson that was attempted"),
		field.String("module_id").
			NotEmpty().
			Comment("Module the lesson belongs to"),
		field.Float("score").
			Comment("Fraction of questions answered correctly, 0.0 to 1.0"),
		field.Bool("passed").
			Comment("Whether the score met the module's required score"),
		field.Int("xp_awarded").
			Default(0).
			Comment("XP granted, zero for failed attempts"),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("module_id"),
		index.Fields("passed"),
	}
}
