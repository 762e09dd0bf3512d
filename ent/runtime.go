// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeready-toolchain/meetsched/ent/meeting"
	"github.com/codeready-toolchain/meetsched/ent/participant"
	"github.com/codeready-toolchain/meetsched/ent/room"
	"github.com/codeready-toolchain/meetsched/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	meetingFields := schema.Meeting{}.Fields()
	_ = meetingFields
	// meetingDescTitle is the schema descriptor for title field.
	meetingDescTitle := meetingFields[0].Descriptor()
	// meeting.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	meeting.TitleValidator = meetingDescTitle.Validators[0].(func(string) error)
	// meetingDescCreatedAt is the schema descriptor for created_at field.
	meetingDescCreatedAt := meetingFields[6].Descriptor()
	// meeting.DefaultCreatedAt holds the default value on creation for the created_at field.
	meeting.DefaultCreatedAt = meetingDescCreatedAt.Default.(func() time.Time)
	// meetingDescUpdatedAt is the schema descriptor for updated_at field.
	meetingDescUpdatedAt := meetingFields[7].Descriptor()
	// meeting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	meeting.DefaultUpdatedAt = meetingDescUpdatedAt.Default.(func() time.Time)
	// meeting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	meeting.UpdateDefaultUpdatedAt = meetingDescUpdatedAt.UpdateDefault.(func() time.Time)
	participantFields := schema.Participant{}.Fields()
	_ = participantFields
	// participantDescName is the schema descriptor for name field.
	participantDescName := participantFields[0].Descriptor()
	// participant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	participant.NameValidator = participantDescName.Validators[0].(func(string) error)
	// participantDescEmail is the schema descriptor for email field.
	participantDescEmail := participantFields[1].Descriptor()
	// participant.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	participant.EmailValidator = participantDescEmail.Validators[0].(func(string) error)
	roomFields := schema.Room{}.Fields()
	_ = roomFields
	// roomDescName is the schema descriptor for name field.
	roomDescName := roomFields[0].Descriptor()
	// room.NameValidator is a validator for the "name" field. It is called by the builders before save.
	room.NameValidator = roomDescName.Validators[0].(func(string) error)
	// roomDescCapacity is the schema descriptor for capacity field.
	roomDescCapacity := roomFields[1].Descriptor()
	// room.CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	room.CapacityValidator = roomDescCapacity.Validators[0].(func(int) error)
	// roomDescAvailable is the schema descriptor for available field.
	roomDescAvailable := roomFields[4].Descriptor()
	// room.DefaultAvailable holds the default value on creation for the available field.
	room.DefaultAvailable = roomDescAvailable.Default.(bool)
}
