package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Room holds the schema definition for the Room entity.
// A room is the exclusive resource meetings compete for.
type Room struct {
	ent.Schema
}

// Fields of the Room.
func (Room) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			NotEmpty(),
		field.Int("capacity").
			Positive().
			Comment("Maximum number of participants"),
		field.String("location").
			Optional().
			Nillable(),
		field.String("description").
			Optional().
			Nillable(),
		field.Bool("available").
			Default(true).
			Comment("Unavailable rooms are refused at scheduling time"),
	}
}

// Edges of the Room.
func (Room) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("meetings", Meeting.Type),
	}
}
