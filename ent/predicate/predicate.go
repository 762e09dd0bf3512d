// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Meeting is the predicate function for meeting builders.
type Meeting func(*sql.Selector)

// Participant is the predicate function for participant builders.
type Participant func(*sql.Selector)

// Room is the predicate function for room builders.
type Room func(*sql.Selector)
