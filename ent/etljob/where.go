// Code generated by ent, DO NOT EDIT.

package etljob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cloudsift/cloudsift/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldContainsFold(FieldID, id))
}

// SourceTable applies equality check predicate on the "source_table" field. It's identical to SourceTableEQ.
func SourceTable(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldSourceTable, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldWindowStart, v))
}

// WindowEnd applies equality check predicate on the "window_end" field. It's identical to WindowEndEQ.
func WindowEnd(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldWindowEnd, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldAttempt, v))
}

// RowsIn applies equality check predicate on the "rows_in" field. It's identical to RowsInEQ.
func RowsIn(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldRowsIn, v))
}

// RowsOut applies equality check predicate on the "rows_out" field. It's identical to RowsOutEQ.
func RowsOut(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldRowsOut, v))
}

// DeadLetters applies equality check predicate on the "dead_letters" field. It's identical to DeadLettersEQ.
func DeadLetters(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldDeadLetters, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldClaimedBy, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldFinishedAt, v))
}

// SourceTableEQ applies the EQ predicate on the "source_table" field.
func SourceTableEQ(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldSourceTable, v))
}

// SourceTableNEQ applies the NEQ predicate on the "source_table" field.
func SourceTableNEQ(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNEQ(FieldSourceTable, v))
}

// SourceTableIn applies the In predicate on the "source_table" field.
func SourceTableIn(vs ...string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIn(FieldSourceTable, vs...))
}

// SourceTableNotIn applies the NotIn predicate on the "source_table" field.
func SourceTableNotIn(vs ...string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotIn(FieldSourceTable, vs...))
}

// SourceTableGT applies the GT predicate on the "source_table" field.
func SourceTableGT(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGT(FieldSourceTable, v))
}

// SourceTableGTE applies the GTE predicate on the "source_table" field.
func SourceTableGTE(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGTE(FieldSourceTable, v))
}

// SourceTableLT applies the LT predicate on the "source_table" field.
func SourceTableLT(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLT(FieldSourceTable, v))
}

// SourceTableLTE applies the LTE predicate on the "source_table" field.
func SourceTableLTE(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLTE(FieldSourceTable, v))
}

// SourceTableContains applies the Contains predicate on the "source_table" field.
func SourceTableContains(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldContains(FieldSourceTable, v))
}

// SourceTableHasPrefix applies the HasPrefix predicate on the "source_table" field.
func SourceTableHasPrefix(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldHasPrefix(FieldSourceTable, v))
}

// SourceTableHasSuffix applies the HasSuffix predicate on the "source_table" field.
func SourceTableHasSuffix(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldHasSuffix(FieldSourceTable, v))
}

// SourceTableEqualFold applies the EqualFold predicate on the "source_table" field.
func SourceTableEqualFold(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEqualFold(FieldSourceTable, v))
}

// SourceTableContainsFold applies the ContainsFold predicate on the "source_table" field.
func SourceTableContainsFold(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldContainsFold(FieldSourceTable, v))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLTE(FieldWindowStart, v))
}

// WindowEndEQ applies the EQ predicate on the "window_end" field.
func WindowEndEQ(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldWindowEnd, v))
}

// WindowEndNEQ applies the NEQ predicate on the "window_end" field.
func WindowEndNEQ(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNEQ(FieldWindowEnd, v))
}

// WindowEndIn applies the In predicate on the "window_end" field.
func WindowEndIn(vs ...time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIn(FieldWindowEnd, vs...))
}

// WindowEndNotIn applies the NotIn predicate on the "window_end" field.
func WindowEndNotIn(vs ...time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotIn(FieldWindowEnd, vs...))
}

// WindowEndGT applies the GT predicate on the "window_end" field.
func WindowEndGT(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGT(FieldWindowEnd, v))
}

// WindowEndGTE applies the GTE predicate on the "window_end" field.
func WindowEndGTE(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGTE(FieldWindowEnd, v))
}

// WindowEndLT applies the LT predicate on the "window_end" field.
func WindowEndLT(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLT(FieldWindowEnd, v))
}

// WindowEndLTE applies the LTE predicate on the "window_end" field.
func WindowEndLTE(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLTE(FieldWindowEnd, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotIn(FieldState, vs...))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLTE(FieldAttempt, v))
}

// RowsInEQ applies the EQ predicate on the "rows_in" field.
func RowsInEQ(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldRowsIn, v))
}

// RowsInNEQ applies the NEQ predicate on the "rows_in" field.
func RowsInNEQ(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNEQ(FieldRowsIn, v))
}

// RowsInIn applies the In predicate on the "rows_in" field.
func RowsInIn(vs ...int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIn(FieldRowsIn, vs...))
}

// RowsInNotIn applies the NotIn predicate on the "rows_in" field.
func RowsInNotIn(vs ...int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotIn(FieldRowsIn, vs...))
}

// RowsInGT applies the GT predicate on the "rows_in" field.
func RowsInGT(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGT(FieldRowsIn, v))
}

// RowsInGTE applies the GTE predicate on the "rows_in" field.
func RowsInGTE(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGTE(FieldRowsIn, v))
}

// RowsInLT applies the LT predicate on the "rows_in" field.
func RowsInLT(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLT(FieldRowsIn, v))
}

// RowsInLTE applies the LTE predicate on the "rows_in" field.
func RowsInLTE(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLTE(FieldRowsIn, v))
}

// RowsOutEQ applies the EQ predicate on the "rows_out" field.
func RowsOutEQ(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldRowsOut, v))
}

// RowsOutNEQ applies the NEQ predicate on the "rows_out" field.
func RowsOutNEQ(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNEQ(FieldRowsOut, v))
}

// RowsOutIn applies the In predicate on the "rows_out" field.
func RowsOutIn(vs ...int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIn(FieldRowsOut, vs...))
}

// RowsOutNotIn applies the NotIn predicate on the "rows_out" field.
func RowsOutNotIn(vs ...int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotIn(FieldRowsOut, vs...))
}

// RowsOutGT applies the GT predicate on the "rows_out" field.
func RowsOutGT(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGT(FieldRowsOut, v))
}

// RowsOutGTE applies the GTE predicate on the "rows_out" field.
func RowsOutGTE(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGTE(FieldRowsOut, v))
}

// RowsOutLT applies the LT predicate on the "rows_out" field.
func RowsOutLT(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLT(FieldRowsOut, v))
}

// RowsOutLTE applies the LTE predicate on the "rows_out" field.
func RowsOutLTE(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLTE(FieldRowsOut, v))
}

// DeadLettersEQ applies the EQ predicate on the "dead_letters" field.
func DeadLettersEQ(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldDeadLetters, v))
}

// DeadLettersNEQ applies the NEQ predicate on the "dead_letters" field.
func DeadLettersNEQ(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNEQ(FieldDeadLetters, v))
}

// DeadLettersIn applies the In predicate on the "dead_letters" field.
func DeadLettersIn(vs ...int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIn(FieldDeadLetters, vs...))
}

// DeadLettersNotIn applies the NotIn predicate on the "dead_letters" field.
func DeadLettersNotIn(vs ...int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotIn(FieldDeadLetters, vs...))
}

// DeadLettersGT applies the GT predicate on the "dead_letters" field.
func DeadLettersGT(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGT(FieldDeadLetters, v))
}

// DeadLettersGTE applies the GTE predicate on the "dead_letters" field.
func DeadLettersGTE(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGTE(FieldDeadLetters, v))
}

// DeadLettersLT applies the LT predicate on the "dead_letters" field.
func DeadLettersLT(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLT(FieldDeadLetters, v))
}

// DeadLettersLTE applies the LTE predicate on the "dead_letters" field.
func DeadLettersLTE(v int) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLTE(FieldDeadLetters, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldContainsFold(FieldClaimedBy, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ETLJob {
	return predicate.ETLJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ETLJob {
	return predicate.ETLJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ETLJob {
	return predicate.ETLJob(sql.FieldNotNull(FieldFinishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ETLJob) predicate.ETLJob {
	return predicate.ETLJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ETLJob) predicate.ETLJob {
	return predicate.ETLJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ETLJob) predicate.ETLJob {
	return predicate.ETLJob(sql.NotPredicates(p))
}
