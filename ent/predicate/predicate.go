// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// DeadLetter is the predicate function for deadletter builders.
type DeadLetter func(*sql.Selector)

// ETLJob is the predicate function for etljob builders.
type ETLJob func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// ToolInvocation is the predicate function for toolinvocation builders.
type ToolInvocation func(*sql.Selector)
