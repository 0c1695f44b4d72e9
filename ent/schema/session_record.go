package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord is the document-store backend for session state: one row
// per session key holding the serialized state. Last write wins; there is
// no optimistic concurrency control.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_key").
			NotEmpty().
			Unique(),
		field.Text("state").
			Comment("SessionState serialized as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_key").Unique(),
	}
}
