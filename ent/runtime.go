// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cloudsift/cloudsift/ent/checkpoint"
	"github.com/cloudsift/cloudsift/ent/deadletter"
	"github.com/cloudsift/cloudsift/ent/etljob"
	"github.com/cloudsift/cloudsift/ent/message"
	"github.com/cloudsift/cloudsift/ent/schema"
	"github.com/cloudsift/cloudsift/ent/session"
	"github.com/cloudsift/cloudsift/ent/toolinvocation"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescTerminal is the schema descriptor for terminal field.
	checkpointDescTerminal := checkpointFields[5].Descriptor()
	// checkpoint.DefaultTerminal holds the default value on creation for the terminal field.
	checkpoint.DefaultTerminal = checkpointDescTerminal.Default.(bool)
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[8].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	deadletterFields := schema.DeadLetter{}.Fields()
	_ = deadletterFields
	// deadletterDescCreatedAt is the schema descriptor for created_at field.
	deadletterDescCreatedAt := deadletterFields[5].Descriptor()
	// deadletter.DefaultCreatedAt holds the default value on creation for the created_at field.
	deadletter.DefaultCreatedAt = deadletterDescCreatedAt.Default.(func() time.Time)
	etljobFields := schema.ETLJob{}.Fields()
	_ = etljobFields
	// etljobDescAttempt is the schema descriptor for attempt field.
	etljobDescAttempt := etljobFields[5].Descriptor()
	// etljob.DefaultAttempt holds the default value on creation for the attempt field.
	etljob.DefaultAttempt = etljobDescAttempt.Default.(int)
	// etljobDescRowsIn is the schema descriptor for rows_in field.
	etljobDescRowsIn := etljobFields[6].Descriptor()
	// etljob.DefaultRowsIn holds the default value on creation for the rows_in field.
	etljob.DefaultRowsIn = etljobDescRowsIn.Default.(int)
	// etljobDescRowsOut is the schema descriptor for rows_out field.
	etljobDescRowsOut := etljobFields[7].Descriptor()
	// etljob.DefaultRowsOut holds the default value on creation for the rows_out field.
	etljob.DefaultRowsOut = etljobDescRowsOut.Default.(int)
	// etljobDescDeadLetters is the schema descriptor for dead_letters field.
	etljobDescDeadLetters := etljobFields[8].Descriptor()
	// etljob.DefaultDeadLetters holds the default value on creation for the dead_letters field.
	etljob.DefaultDeadLetters = etljobDescDeadLetters.Default.(int)
	// etljobDescStartedAt is the schema descriptor for started_at field.
	etljobDescStartedAt := etljobFields[11].Descriptor()
	// etljob.DefaultStartedAt holds the default value on creation for the started_at field.
	etljob.DefaultStartedAt = etljobDescStartedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[5].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[4].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[5].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescTotalMessages is the schema descriptor for total_messages field.
	sessionDescTotalMessages := sessionFields[6].Descriptor()
	// session.DefaultTotalMessages holds the default value on creation for the total_messages field.
	session.DefaultTotalMessages = sessionDescTotalMessages.Default.(int)
	// sessionDescTotalCost is the schema descriptor for total_cost field.
	sessionDescTotalCost := sessionFields[7].Descriptor()
	// session.DefaultTotalCost holds the default value on creation for the total_cost field.
	session.DefaultTotalCost = sessionDescTotalCost.Default.(float64)
	toolinvocationFields := schema.ToolInvocation{}.Fields()
	_ = toolinvocationFields
	// toolinvocationDescStartedAt is the schema descriptor for started_at field.
	toolinvocationDescStartedAt := toolinvocationFields[7].Descriptor()
	// toolinvocation.DefaultStartedAt holds the default value on creation for the started_at field.
	toolinvocation.DefaultStartedAt = toolinvocationDescStartedAt.Default.(func() time.Time)
}
