// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cloudsift/cloudsift/ent/etljob"
)

// ETLJob is the model entity for the ETLJob schema.
type ETLJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SourceTable holds the value of the "source_table" field.
	SourceTable string `json:"source_table,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart time.Time `json:"window_start,omitempty"`
	// WindowEnd holds the value of the "window_end" field.
	WindowEnd time.Time `json:"window_end,omitempty"`
	// State holds the value of the "state" field.
	State etljob.State `json:"state,omitempty"`
	// Attempt holds the value of the "attempt" field.
	Attempt int `json:"attempt,omitempty"`
	// RowsIn holds the value of the "rows_in" field.
	RowsIn int `json:"rows_in,omitempty"`
	// RowsOut holds the value of the "rows_out" field.
	RowsOut int `json:"rows_out,omitempty"`
	// DeadLetters holds the value of the "dead_letters" field.
	DeadLetters int `json:"dead_letters,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Worker identity holding the running claim
	ClaimedBy string `json:"claimed_by,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ETLJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case etljob.FieldAttempt, etljob.FieldRowsIn, etljob.FieldRowsOut, etljob.FieldDeadLetters:
			values[i] = new(sql.NullInt64)
		case etljob.FieldID, etljob.FieldSourceTable, etljob.FieldState, etljob.FieldErrorMessage, etljob.FieldClaimedBy:
			values[i] = new(sql.NullString)
		case etljob.FieldWindowStart, etljob.FieldWindowEnd, etljob.FieldStartedAt, etljob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ETLJob fields.
func (_m *ETLJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case etljob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case etljob.FieldSourceTable:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_table", values[i])
			} else if value.Valid {
				_m.SourceTable = value.String
			}
		case etljob.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = value.Time
			}
		case etljob.FieldWindowEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_end", values[i])
			} else if value.Valid {
				_m.WindowEnd = value.Time
			}
		case etljob.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = etljob.State(value.String)
			}
		case etljob.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case etljob.FieldRowsIn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_in", values[i])
			} else if value.Valid {
				_m.RowsIn = int(value.Int64)
			}
		case etljob.FieldRowsOut:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rows_out", values[i])
			} else if value.Valid {
				_m.RowsOut = int(value.Int64)
			}
		case etljob.FieldDeadLetters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dead_letters", values[i])
			} else if value.Valid {
				_m.DeadLetters = int(value.Int64)
			}
		case etljob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case etljob.FieldClaimedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_by", values[i])
			} else if value.Valid {
				_m.ClaimedBy = value.String
			}
		case etljob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case etljob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ETLJob.
// This includes values selected through modifiers, order, etc.
func (_m *ETLJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ETLJob.
// Note that you need to call ETLJob.Unwrap() before calling this method if this ETLJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ETLJob) Update() *ETLJobUpdateOne {
	return NewETLJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ETLJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ETLJob) Unwrap() *ETLJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ETLJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ETLJob) String() string {
	var builder strings.Builder
	builder.WriteString("ETLJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_table=")
	builder.WriteString(_m.SourceTable)
	builder.WriteString(", ")
	builder.WriteString("window_start=")
	builder.WriteString(_m.WindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("window_end=")
	builder.WriteString(_m.WindowEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	builder.WriteString("rows_in=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowsIn))
	builder.WriteString(", ")
	builder.WriteString("rows_out=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowsOut))
	builder.WriteString(", ")
	builder.WriteString("dead_letters=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeadLetters))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("claimed_by=")
	builder.WriteString(_m.ClaimedBy)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ETLJobs is a parsable slice of ETLJob.
type ETLJobs []*ETLJob
