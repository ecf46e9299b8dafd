// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cloudsift/cloudsift/ent/predicate"
	"github.com/cloudsift/cloudsift/ent/toolinvocation"
)

// ToolInvocationUpdate is the builder for updating ToolInvocation entities.
type ToolInvocationUpdate struct {
	config
	hooks    []Hook
	mutation *ToolInvocationMutation
}

// Where appends a list predicates to the ToolInvocationUpdate builder.
func (_u *ToolInvocationUpdate) Where(ps ...predicate.ToolInvocation) *ToolInvocationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOutput sets the "output" field.
func (_u *ToolInvocationUpdate) SetOutput(v string) *ToolInvocationUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableOutput(v *string) *ToolInvocationUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ToolInvocationUpdate) ClearOutput() *ToolInvocationUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolInvocationUpdate) SetStatus(v toolinvocation.Status) *ToolInvocationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableStatus(v *toolinvocation.Status) *ToolInvocationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ToolInvocationUpdate) SetCompletedAt(v time.Time) *ToolInvocationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableCompletedAt(v *time.Time) *ToolInvocationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ToolInvocationUpdate) ClearCompletedAt() *ToolInvocationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ToolInvocationUpdate) SetDurationMs(v int) *ToolInvocationUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableDurationMs(v *int) *ToolInvocationUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ToolInvocationUpdate) AddDurationMs(v int) *ToolInvocationUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ToolInvocationUpdate) ClearDurationMs() *ToolInvocationUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *ToolInvocationUpdate) SetTokens(v int) *ToolInvocationUpdate {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableTokens(v *int) *ToolInvocationUpdate {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *ToolInvocationUpdate) AddTokens(v int) *ToolInvocationUpdate {
	_u.mutation.AddTokens(v)
	return _u
}

// ClearTokens clears the value of the "tokens" field.
func (_u *ToolInvocationUpdate) ClearTokens() *ToolInvocationUpdate {
	_u.mutation.ClearTokens()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *ToolInvocationUpdate) SetCostUsd(v float64) *ToolInvocationUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableCostUsd(v *float64) *ToolInvocationUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *ToolInvocationUpdate) AddCostUsd(v float64) *ToolInvocationUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (_u *ToolInvocationUpdate) ClearCostUsd() *ToolInvocationUpdate {
	_u.mutation.ClearCostUsd()
	return _u
}

// SetEstimatedBytes sets the "estimated_bytes" field.
func (_u *ToolInvocationUpdate) SetEstimatedBytes(v int64) *ToolInvocationUpdate {
	_u.mutation.ResetEstimatedBytes()
	_u.mutation.SetEstimatedBytes(v)
	return _u
}

// SetNillableEstimatedBytes sets the "estimated_bytes" field if the given value is not nil.
func (_u *ToolInvocationUpdate) SetNillableEstimatedBytes(v *int64) *ToolInvocationUpdate {
	if v != nil {
		_u.SetEstimatedBytes(*v)
	}
	return _u
}

// AddEstimatedBytes adds value to the "estimated_bytes" field.
func (_u *ToolInvocationUpdate) AddEstimatedBytes(v int64) *ToolInvocationUpdate {
	_u.mutation.AddEstimatedBytes(v)
	return _u
}

// ClearEstimatedBytes clears the value of the "estimated_bytes" field.
func (_u *ToolInvocationUpdate) ClearEstimatedBytes() *ToolInvocationUpdate {
	_u.mutation.ClearEstimatedBytes()
	return _u
}

// Mutation returns the ToolInvocationMutation object of the builder.
func (_u *ToolInvocationUpdate) Mutation() *ToolInvocationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolInvocationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolInvocationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolInvocationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolInvocationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolInvocationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolinvocation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolInvocation.session"`)
	}
	return nil
}

func (_u *ToolInvocationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolinvocation.Table, toolinvocation.Columns, sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(toolinvocation.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(toolinvocation.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(toolinvocation.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolinvocation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(toolinvocation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(toolinvocation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(toolinvocation.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(toolinvocation.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(toolinvocation.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(toolinvocation.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(toolinvocation.FieldTokens, field.TypeInt, value)
	}
	if _u.mutation.TokensCleared() {
		_spec.ClearField(toolinvocation.FieldTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(toolinvocation.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(toolinvocation.FieldCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CostUsdCleared() {
		_spec.ClearField(toolinvocation.FieldCostUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EstimatedBytes(); ok {
		_spec.SetField(toolinvocation.FieldEstimatedBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedBytes(); ok {
		_spec.AddField(toolinvocation.FieldEstimatedBytes, field.TypeInt64, value)
	}
	if _u.mutation.EstimatedBytesCleared() {
		_spec.ClearField(toolinvocation.FieldEstimatedBytes, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolinvocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolInvocationUpdateOne is the builder for updating a single ToolInvocation entity.
type ToolInvocationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolInvocationMutation
}

// SetOutput sets the "output" field.
func (_u *ToolInvocationUpdateOne) SetOutput(v string) *ToolInvocationUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableOutput(v *string) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ToolInvocationUpdateOne) ClearOutput() *ToolInvocationUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolInvocationUpdateOne) SetStatus(v toolinvocation.Status) *ToolInvocationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableStatus(v *toolinvocation.Status) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ToolInvocationUpdateOne) SetCompletedAt(v time.Time) *ToolInvocationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableCompletedAt(v *time.Time) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ToolInvocationUpdateOne) ClearCompletedAt() *ToolInvocationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ToolInvocationUpdateOne) SetDurationMs(v int) *ToolInvocationUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableDurationMs(v *int) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ToolInvocationUpdateOne) AddDurationMs(v int) *ToolInvocationUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ToolInvocationUpdateOne) ClearDurationMs() *ToolInvocationUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *ToolInvocationUpdateOne) SetTokens(v int) *ToolInvocationUpdateOne {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableTokens(v *int) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *ToolInvocationUpdateOne) AddTokens(v int) *ToolInvocationUpdateOne {
	_u.mutation.AddTokens(v)
	return _u
}

// ClearTokens clears the value of the "tokens" field.
func (_u *ToolInvocationUpdateOne) ClearTokens() *ToolInvocationUpdateOne {
	_u.mutation.ClearTokens()
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *ToolInvocationUpdateOne) SetCostUsd(v float64) *ToolInvocationUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableCostUsd(v *float64) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *ToolInvocationUpdateOne) AddCostUsd(v float64) *ToolInvocationUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (_u *ToolInvocationUpdateOne) ClearCostUsd() *ToolInvocationUpdateOne {
	_u.mutation.ClearCostUsd()
	return _u
}

// SetEstimatedBytes sets the "estimated_bytes" field.
func (_u *ToolInvocationUpdateOne) SetEstimatedBytes(v int64) *ToolInvocationUpdateOne {
	_u.mutation.ResetEstimatedBytes()
	_u.mutation.SetEstimatedBytes(v)
	return _u
}

// SetNillableEstimatedBytes sets the "estimated_bytes" field if the given value is not nil.
func (_u *ToolInvocationUpdateOne) SetNillableEstimatedBytes(v *int64) *ToolInvocationUpdateOne {
	if v != nil {
		_u.SetEstimatedBytes(*v)
	}
	return _u
}

// AddEstimatedBytes adds value to the "estimated_bytes" field.
func (_u *ToolInvocationUpdateOne) AddEstimatedBytes(v int64) *ToolInvocationUpdateOne {
	_u.mutation.AddEstimatedBytes(v)
	return _u
}

// ClearEstimatedBytes clears the value of the "estimated_bytes" field.
func (_u *ToolInvocationUpdateOne) ClearEstimatedBytes() *ToolInvocationUpdateOne {
	_u.mutation.ClearEstimatedBytes()
	return _u
}

// Mutation returns the ToolInvocationMutation object of the builder.
func (_u *ToolInvocationUpdateOne) Mutation() *ToolInvocationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolInvocationUpdate builder.
func (_u *ToolInvocationUpdateOne) Where(ps ...predicate.ToolInvocation) *ToolInvocationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolInvocationUpdateOne) Select(field string, fields ...string) *ToolInvocationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolInvocation entity.
func (_u *ToolInvocationUpdateOne) Save(ctx context.Context) (*ToolInvocation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolInvocationUpdateOne) SaveX(ctx context.Context) *ToolInvocation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolInvocationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolInvocationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolInvocationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolinvocation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolInvocation.session"`)
	}
	return nil
}

func (_u *ToolInvocationUpdateOne) sqlSave(ctx context.Context) (_node *ToolInvocation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolinvocation.Table, toolinvocation.Columns, sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolInvocation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolinvocation.FieldID)
		for _, f := range fields {
			if !toolinvocation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolinvocation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(toolinvocation.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(toolinvocation.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(toolinvocation.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolinvocation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(toolinvocation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(toolinvocation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(toolinvocation.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(toolinvocation.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(toolinvocation.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(toolinvocation.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(toolinvocation.FieldTokens, field.TypeInt, value)
	}
	if _u.mutation.TokensCleared() {
		_spec.ClearField(toolinvocation.FieldTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(toolinvocation.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(toolinvocation.FieldCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.CostUsdCleared() {
		_spec.ClearField(toolinvocation.FieldCostUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.EstimatedBytes(); ok {
		_spec.SetField(toolinvocation.FieldEstimatedBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedBytes(); ok {
		_spec.AddField(toolinvocation.FieldEstimatedBytes, field.TypeInt64, value)
	}
	if _u.mutation.EstimatedBytesCleared() {
		_spec.ClearField(toolinvocation.FieldEstimatedBytes, field.TypeInt64)
	}
	_node = &ToolInvocation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolinvocation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
