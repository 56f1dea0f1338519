package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TradeEvent records one trade order against the practice portfolio,
// accepted or rejected.
type TradeEvent struct {
	ent.Schema
}

func (TradeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TradeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("symbol").
			NotEmpty().
			Comment("Asset ticker symbol"),
		field.Int("quantity").
			Comment("Positive for buys, negative for sells"),
		field.Float("price").
			Comment("Quoted price per share at order time"),
		field.Bool("accepted").
			Comment("Whether the order settled"),
	}
}

func (TradeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("symbol"),
		index.Fields("accepted"),
	}
}
