package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot is a restore point: the profile and module unlock state as of
// a given event sequence, so startup never replays the event log.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Immutable().
			Comment("Last event sequence covered by this snapshot"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.Int("version").
			Default(1).
			Comment("Envelope schema version of the data payload"),
		field.Bytes("data").
			Comment("JSON-encoded profile and module statuses"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
	}
}
