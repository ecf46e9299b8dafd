// Code generated by ent, DO NOT EDIT.

package toolinvocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cloudsift/cloudsift/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldSessionID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldRunID, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldToolName, v))
}

// Input applies equality check predicate on the "input" field. It's identical to InputEQ.
func Input(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldInput, v))
}

// Output applies equality check predicate on the "output" field. It's identical to OutputEQ.
func Output(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldOutput, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldCompletedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldDurationMs, v))
}

// Tokens applies equality check predicate on the "tokens" field. It's identical to TokensEQ.
func Tokens(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldTokens, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldCostUsd, v))
}

// EstimatedBytes applies equality check predicate on the "estimated_bytes" field. It's identical to EstimatedBytesEQ.
func EstimatedBytes(v int64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldEstimatedBytes, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldSessionID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotNull(FieldRunID))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldRunID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldToolName, v))
}

// InputEQ applies the EQ predicate on the "input" field.
func InputEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldInput, v))
}

// InputNEQ applies the NEQ predicate on the "input" field.
func InputNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldInput, v))
}

// InputIn applies the In predicate on the "input" field.
func InputIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldInput, vs...))
}

// InputNotIn applies the NotIn predicate on the "input" field.
func InputNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldInput, vs...))
}

// InputGT applies the GT predicate on the "input" field.
func InputGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldInput, v))
}

// InputGTE applies the GTE predicate on the "input" field.
func InputGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldInput, v))
}

// InputLT applies the LT predicate on the "input" field.
func InputLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldInput, v))
}

// InputLTE applies the LTE predicate on the "input" field.
func InputLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldInput, v))
}

// InputContains applies the Contains predicate on the "input" field.
func InputContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldInput, v))
}

// InputHasPrefix applies the HasPrefix predicate on the "input" field.
func InputHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldInput, v))
}

// InputHasSuffix applies the HasSuffix predicate on the "input" field.
func InputHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldInput, v))
}

// InputEqualFold applies the EqualFold predicate on the "input" field.
func InputEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldInput, v))
}

// InputContainsFold applies the ContainsFold predicate on the "input" field.
func InputContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldInput, v))
}

// OutputEQ applies the EQ predicate on the "output" field.
func OutputEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldOutput, v))
}

// OutputNEQ applies the NEQ predicate on the "output" field.
func OutputNEQ(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldOutput, v))
}

// OutputIn applies the In predicate on the "output" field.
func OutputIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldOutput, vs...))
}

// OutputNotIn applies the NotIn predicate on the "output" field.
func OutputNotIn(vs ...string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldOutput, vs...))
}

// OutputGT applies the GT predicate on the "output" field.
func OutputGT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldOutput, v))
}

// OutputGTE applies the GTE predicate on the "output" field.
func OutputGTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldOutput, v))
}

// OutputLT applies the LT predicate on the "output" field.
func OutputLT(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldOutput, v))
}

// OutputLTE applies the LTE predicate on the "output" field.
func OutputLTE(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldOutput, v))
}

// OutputContains applies the Contains predicate on the "output" field.
func OutputContains(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContains(FieldOutput, v))
}

// OutputHasPrefix applies the HasPrefix predicate on the "output" field.
func OutputHasPrefix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasPrefix(FieldOutput, v))
}

// OutputHasSuffix applies the HasSuffix predicate on the "output" field.
func OutputHasSuffix(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldHasSuffix(FieldOutput, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotNull(FieldOutput))
}

// OutputEqualFold applies the EqualFold predicate on the "output" field.
func OutputEqualFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEqualFold(FieldOutput, v))
}

// OutputContainsFold applies the ContainsFold predicate on the "output" field.
func OutputContainsFold(v string) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldContainsFold(FieldOutput, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotNull(FieldCompletedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotNull(FieldDurationMs))
}

// TokensEQ applies the EQ predicate on the "tokens" field.
func TokensEQ(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldTokens, v))
}

// TokensNEQ applies the NEQ predicate on the "tokens" field.
func TokensNEQ(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldTokens, v))
}

// TokensIn applies the In predicate on the "tokens" field.
func TokensIn(vs ...int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldTokens, vs...))
}

// TokensNotIn applies the NotIn predicate on the "tokens" field.
func TokensNotIn(vs ...int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldTokens, vs...))
}

// TokensGT applies the GT predicate on the "tokens" field.
func TokensGT(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldTokens, v))
}

// TokensGTE applies the GTE predicate on the "tokens" field.
func TokensGTE(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldTokens, v))
}

// TokensLT applies the LT predicate on the "tokens" field.
func TokensLT(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldTokens, v))
}

// TokensLTE applies the LTE predicate on the "tokens" field.
func TokensLTE(v int) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldTokens, v))
}

// TokensIsNil applies the IsNil predicate on the "tokens" field.
func TokensIsNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIsNull(FieldTokens))
}

// TokensNotNil applies the NotNil predicate on the "tokens" field.
func TokensNotNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotNull(FieldTokens))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldCostUsd, v))
}

// CostUsdIsNil applies the IsNil predicate on the "cost_usd" field.
func CostUsdIsNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIsNull(FieldCostUsd))
}

// CostUsdNotNil applies the NotNil predicate on the "cost_usd" field.
func CostUsdNotNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotNull(FieldCostUsd))
}

// EstimatedBytesEQ applies the EQ predicate on the "estimated_bytes" field.
func EstimatedBytesEQ(v int64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldEQ(FieldEstimatedBytes, v))
}

// EstimatedBytesNEQ applies the NEQ predicate on the "estimated_bytes" field.
func EstimatedBytesNEQ(v int64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNEQ(FieldEstimatedBytes, v))
}

// EstimatedBytesIn applies the In predicate on the "estimated_bytes" field.
func EstimatedBytesIn(vs ...int64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIn(FieldEstimatedBytes, vs...))
}

// EstimatedBytesNotIn applies the NotIn predicate on the "estimated_bytes" field.
func EstimatedBytesNotIn(vs ...int64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotIn(FieldEstimatedBytes, vs...))
}

// EstimatedBytesGT applies the GT predicate on the "estimated_bytes" field.
func EstimatedBytesGT(v int64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGT(FieldEstimatedBytes, v))
}

// EstimatedBytesGTE applies the GTE predicate on the "estimated_bytes" field.
func EstimatedBytesGTE(v int64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldGTE(FieldEstimatedBytes, v))
}

// EstimatedBytesLT applies the LT predicate on the "estimated_bytes" field.
func EstimatedBytesLT(v int64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLT(FieldEstimatedBytes, v))
}

// EstimatedBytesLTE applies the LTE predicate on the "estimated_bytes" field.
func EstimatedBytesLTE(v int64) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldLTE(FieldEstimatedBytes, v))
}

// EstimatedBytesIsNil applies the IsNil predicate on the "estimated_bytes" field.
func EstimatedBytesIsNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldIsNull(FieldEstimatedBytes))
}

// EstimatedBytesNotNil applies the NotNil predicate on the "estimated_bytes" field.
func EstimatedBytesNotNil() predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.FieldNotNull(FieldEstimatedBytes))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.ToolInvocation {
	return predicate.ToolInvocation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.ToolInvocation {
	return predicate.ToolInvocation(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolInvocation) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolInvocation) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolInvocation) predicate.ToolInvocation {
	return predicate.ToolInvocation(sql.NotPredicates(p))
}
