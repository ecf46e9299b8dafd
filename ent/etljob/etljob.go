// Code generated by ent, DO NOT EDIT.

package etljob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the etljob type in the database.
	Label = "etl_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldSourceTable holds the string denoting the source_table field in the database.
	FieldSourceTable = "source_table"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldWindowEnd holds the string denoting the window_end field in the database.
	FieldWindowEnd = "window_end"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldRowsIn holds the string denoting the rows_in field in the database.
	FieldRowsIn = "rows_in"
	// FieldRowsOut holds the string denoting the rows_out field in the database.
	FieldRowsOut = "rows_out"
	// FieldDeadLetters holds the string denoting the dead_letters field in the database.
	FieldDeadLetters = "dead_letters"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldClaimedBy holds the string denoting the claimed_by field in the database.
	FieldClaimedBy = "claimed_by"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// Table holds the table name of the etljob in the database.
	Table = "etl_jobs"
)

// Columns holds all SQL columns for etljob fields.
var Columns = []string{
	FieldID,
	FieldSourceTable,
	FieldWindowStart,
	FieldWindowEnd,
	FieldState,
	FieldAttempt,
	FieldRowsIn,
	FieldRowsOut,
	FieldDeadLetters,
	FieldErrorMessage,
	FieldClaimedBy,
	FieldStartedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttempt holds the default value on creation for the "attempt" field.
	DefaultAttempt int
	// DefaultRowsIn holds the default value on creation for the "rows_in" field.
	DefaultRowsIn int
	// DefaultRowsOut holds the default value on creation for the "rows_out" field.
	DefaultRowsOut int
	// DefaultDeadLetters holds the default value on creation for the "dead_letters" field.
	DefaultDeadLetters int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateRunning is the default value of the State enum.
const DefaultState = StateRunning

// State values.
const (
	StateRunning State = "running"
	StateDone    State = "done"
	StateFailed  State = "failed"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateRunning, StateDone, StateFailed:
		return nil
	default:
		return fmt.Errorf("etljob: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the ETLJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceTable orders the results by the source_table field.
func BySourceTable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceTable, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByWindowEnd orders the results by the window_end field.
func ByWindowEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEnd, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByRowsIn orders the results by the rows_in field.
func ByRowsIn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsIn, opts...).ToFunc()
}

// ByRowsOut orders the results by the rows_out field.
func ByRowsOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowsOut, opts...).ToFunc()
}

// ByDeadLetters orders the results by the dead_letters field.
func ByDeadLetters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadLetters, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByClaimedBy orders the results by the claimed_by field.
func ByClaimedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedBy, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}
