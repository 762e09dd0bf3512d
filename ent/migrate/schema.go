// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MeetingsColumns holds the columns for the "meetings" table.
	MeetingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "confirmed", "rejected", "cancelled", "completed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "room_id", Type: field.TypeInt},
	}
	// MeetingsTable holds the schema information for the "meetings" table.
	MeetingsTable = &schema.Table{
		Name:       "meetings",
		Columns:    MeetingsColumns,
		PrimaryKey: []*schema.Column{MeetingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "meetings_rooms_meetings",
				Columns:    []*schema.Column{MeetingsColumns[8]},
				RefColumns: []*schema.Column{RoomsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "meeting_status",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[5]},
			},
			{
				Name:    "meeting_room_id_status",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[8], MeetingsColumns[5]},
			},
		},
	}
	// ParticipantsColumns holds the columns for the "participants" table.
	ParticipantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "department", Type: field.TypeString, Nullable: true},
	}
	// ParticipantsTable holds the schema information for the "participants" table.
	ParticipantsTable = &schema.Table{
		Name:       "participants",
		Columns:    ParticipantsColumns,
		PrimaryKey: []*schema.Column{ParticipantsColumns[0]},
	}
	// RoomsColumns holds the columns for the "rooms" table.
	RoomsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "capacity", Type: field.TypeInt},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "available", Type: field.TypeBool, Default: true},
	}
	// RoomsTable holds the schema information for the "rooms" table.
	RoomsTable = &schema.Table{
		Name:       "rooms",
		Columns:    RoomsColumns,
		PrimaryKey: []*schema.Column{RoomsColumns[0]},
	}
	// MeetingParticipantsColumns holds the columns for the "meeting_participants" table.
	MeetingParticipantsColumns = []*schema.Column{
		{Name: "meeting_id", Type: field.TypeInt},
		{Name: "participant_id", Type: field.TypeInt},
	}
	// MeetingParticipantsTable holds the schema information for the "meeting_participants" table.
	MeetingParticipantsTable = &schema.Table{
		Name:       "meeting_participants",
		Columns:    MeetingParticipantsColumns,
		PrimaryKey: []*schema.Column{MeetingParticipantsColumns[0], MeetingParticipantsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "meeting_participants_meeting_id",
				Columns:    []*schema.Column{MeetingParticipantsColumns[0]},
				RefColumns: []*schema.Column{MeetingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "meeting_participants_participant_id",
				Columns:    []*schema.Column{MeetingParticipantsColumns[1]},
				RefColumns: []*schema.Column{ParticipantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MeetingsTable,
		ParticipantsTable,
		RoomsTable,
		MeetingParticipantsTable,
	}
)

func init() {
	MeetingsTable.ForeignKeys[0].RefTable = RoomsTable
	MeetingParticipantsTable.ForeignKeys[0].RefTable = MeetingsTable
	MeetingParticipantsTable.ForeignKeys[1].RefTable = ParticipantsTable
}
