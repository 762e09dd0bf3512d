package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Meeting holds the schema definition for the Meeting entity.
//
// Status machine: PENDING → CONFIRMED | REJECTED, CONFIRMED → CANCELLED |
// COMPLETED. REJECTED, CANCELLED and COMPLETED are terminal. Transitions are
// enforced in the service layer, not in the schema.
type Meeting struct {
	ent.Schema
}

// Fields of the Meeting.
func (Meeting) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty(),
		field.String("description").
			Optional().
			Nillable(),
		field.Time("start_time").
			Comment("Absolute instant; compared as UTC epoch seconds"),
		field.Time("end_time"),
		field.Int("room_id"),
		field.Enum("status").
			Values("pending", "confirmed", "rejected", "cancelled", "completed").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Meeting.
func (Meeting) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("room", Room.Type).
			Ref("meetings").
			Field("room_id").
			Unique().
			Required(),
		edge.To("participants", Participant.Type),
	}
}

// Indexes of the Meeting.
func (Meeting) Indexes() []ent.Index {
	return []ent.Index{
		// The confirmed-snapshot query filters on status; room timelines
		// filter on (room_id, status).
		index.Fields("status"),
		index.Fields("room_id", "status"),
	}
}
