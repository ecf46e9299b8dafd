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
	"github.com/cloudsift/cloudsift/ent/etljob"
	"github.com/cloudsift/cloudsift/ent/predicate"
)

// ETLJobUpdate is the builder for updating ETLJob entities.
type ETLJobUpdate struct {
	config
	hooks    []Hook
	mutation *ETLJobMutation
}

// Where appends a list predicates to the ETLJobUpdate builder.
func (_u *ETLJobUpdate) Where(ps ...predicate.ETLJob) *ETLJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *ETLJobUpdate) SetState(v etljob.State) *ETLJobUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ETLJobUpdate) SetNillableState(v *etljob.State) *ETLJobUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *ETLJobUpdate) SetAttempt(v int) *ETLJobUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *ETLJobUpdate) SetNillableAttempt(v *int) *ETLJobUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *ETLJobUpdate) AddAttempt(v int) *ETLJobUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetRowsIn sets the "rows_in" field.
func (_u *ETLJobUpdate) SetRowsIn(v int) *ETLJobUpdate {
	_u.mutation.ResetRowsIn()
	_u.mutation.SetRowsIn(v)
	return _u
}

// SetNillableRowsIn sets the "rows_in" field if the given value is not nil.
func (_u *ETLJobUpdate) SetNillableRowsIn(v *int) *ETLJobUpdate {
	if v != nil {
		_u.SetRowsIn(*v)
	}
	return _u
}

// AddRowsIn adds value to the "rows_in" field.
func (_u *ETLJobUpdate) AddRowsIn(v int) *ETLJobUpdate {
	_u.mutation.AddRowsIn(v)
	return _u
}

// SetRowsOut sets the "rows_out" field.
func (_u *ETLJobUpdate) SetRowsOut(v int) *ETLJobUpdate {
	_u.mutation.ResetRowsOut()
	_u.mutation.SetRowsOut(v)
	return _u
}

// SetNillableRowsOut sets the "rows_out" field if the given value is not nil.
func (_u *ETLJobUpdate) SetNillableRowsOut(v *int) *ETLJobUpdate {
	if v != nil {
		_u.SetRowsOut(*v)
	}
	return _u
}

// AddRowsOut adds value to the "rows_out" field.
func (_u *ETLJobUpdate) AddRowsOut(v int) *ETLJobUpdate {
	_u.mutation.AddRowsOut(v)
	return _u
}

// SetDeadLetters sets the "dead_letters" field.
func (_u *ETLJobUpdate) SetDeadLetters(v int) *ETLJobUpdate {
	_u.mutation.ResetDeadLetters()
	_u.mutation.SetDeadLetters(v)
	return _u
}

// SetNillableDeadLetters sets the "dead_letters" field if the given value is not nil.
func (_u *ETLJobUpdate) SetNillableDeadLetters(v *int) *ETLJobUpdate {
	if v != nil {
		_u.SetDeadLetters(*v)
	}
	return _u
}

// AddDeadLetters adds value to the "dead_letters" field.
func (_u *ETLJobUpdate) AddDeadLetters(v int) *ETLJobUpdate {
	_u.mutation.AddDeadLetters(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ETLJobUpdate) SetErrorMessage(v string) *ETLJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ETLJobUpdate) SetNillableErrorMessage(v *string) *ETLJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ETLJobUpdate) ClearErrorMessage() *ETLJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *ETLJobUpdate) SetClaimedBy(v string) *ETLJobUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *ETLJobUpdate) SetNillableClaimedBy(v *string) *ETLJobUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *ETLJobUpdate) ClearClaimedBy() *ETLJobUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ETLJobUpdate) SetStartedAt(v time.Time) *ETLJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ETLJobUpdate) SetNillableStartedAt(v *time.Time) *ETLJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ETLJobUpdate) SetFinishedAt(v time.Time) *ETLJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ETLJobUpdate) SetNillableFinishedAt(v *time.Time) *ETLJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ETLJobUpdate) ClearFinishedAt() *ETLJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the ETLJobMutation object of the builder.
func (_u *ETLJobUpdate) Mutation() *ETLJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ETLJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ETLJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ETLJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ETLJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ETLJobUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := etljob.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ETLJob.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ETLJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(etljob.Table, etljob.Columns, sqlgraph.NewFieldSpec(etljob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(etljob.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(etljob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(etljob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsIn(); ok {
		_spec.SetField(etljob.FieldRowsIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsIn(); ok {
		_spec.AddField(etljob.FieldRowsIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsOut(); ok {
		_spec.SetField(etljob.FieldRowsOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsOut(); ok {
		_spec.AddField(etljob.FieldRowsOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeadLetters(); ok {
		_spec.SetField(etljob.FieldDeadLetters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeadLetters(); ok {
		_spec.AddField(etljob.FieldDeadLetters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(etljob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(etljob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(etljob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(etljob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(etljob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(etljob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(etljob.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{etljob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ETLJobUpdateOne is the builder for updating a single ETLJob entity.
type ETLJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ETLJobMutation
}

// SetState sets the "state" field.
func (_u *ETLJobUpdateOne) SetState(v etljob.State) *ETLJobUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ETLJobUpdateOne) SetNillableState(v *etljob.State) *ETLJobUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *ETLJobUpdateOne) SetAttempt(v int) *ETLJobUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *ETLJobUpdateOne) SetNillableAttempt(v *int) *ETLJobUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *ETLJobUpdateOne) AddAttempt(v int) *ETLJobUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetRowsIn sets the "rows_in" field.
func (_u *ETLJobUpdateOne) SetRowsIn(v int) *ETLJobUpdateOne {
	_u.mutation.ResetRowsIn()
	_u.mutation.SetRowsIn(v)
	return _u
}

// SetNillableRowsIn sets the "rows_in" field if the given value is not nil.
func (_u *ETLJobUpdateOne) SetNillableRowsIn(v *int) *ETLJobUpdateOne {
	if v != nil {
		_u.SetRowsIn(*v)
	}
	return _u
}

// AddRowsIn adds value to the "rows_in" field.
func (_u *ETLJobUpdateOne) AddRowsIn(v int) *ETLJobUpdateOne {
	_u.mutation.AddRowsIn(v)
	return _u
}

// SetRowsOut sets the "rows_out" field.
func (_u *ETLJobUpdateOne) SetRowsOut(v int) *ETLJobUpdateOne {
	_u.mutation.ResetRowsOut()
	_u.mutation.SetRowsOut(v)
	return _u
}

// SetNillableRowsOut sets the "rows_out" field if the given value is not nil.
func (_u *ETLJobUpdateOne) SetNillableRowsOut(v *int) *ETLJobUpdateOne {
	if v != nil {
		_u.SetRowsOut(*v)
	}
	return _u
}

// AddRowsOut adds value to the "rows_out" field.
func (_u *ETLJobUpdateOne) AddRowsOut(v int) *ETLJobUpdateOne {
	_u.mutation.AddRowsOut(v)
	return _u
}

// SetDeadLetters sets the "dead_letters" field.
func (_u *ETLJobUpdateOne) SetDeadLetters(v int) *ETLJobUpdateOne {
	_u.mutation.ResetDeadLetters()
	_u.mutation.SetDeadLetters(v)
	return _u
}

// SetNillableDeadLetters sets the "dead_letters" field if the given value is not nil.
func (_u *ETLJobUpdateOne) SetNillableDeadLetters(v *int) *ETLJobUpdateOne {
	if v != nil {
		_u.SetDeadLetters(*v)
	}
	return _u
}

// AddDeadLetters adds value to the "dead_letters" field.
func (_u *ETLJobUpdateOne) AddDeadLetters(v int) *ETLJobUpdateOne {
	_u.mutation.AddDeadLetters(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ETLJobUpdateOne) SetErrorMessage(v string) *ETLJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ETLJobUpdateOne) SetNillableErrorMessage(v *string) *ETLJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ETLJobUpdateOne) ClearErrorMessage() *ETLJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *ETLJobUpdateOne) SetClaimedBy(v string) *ETLJobUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *ETLJobUpdateOne) SetNillableClaimedBy(v *string) *ETLJobUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *ETLJobUpdateOne) ClearClaimedBy() *ETLJobUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ETLJobUpdateOne) SetStartedAt(v time.Time) *ETLJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ETLJobUpdateOne) SetNillableStartedAt(v *time.Time) *ETLJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ETLJobUpdateOne) SetFinishedAt(v time.Time) *ETLJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ETLJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ETLJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ETLJobUpdateOne) ClearFinishedAt() *ETLJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the ETLJobMutation object of the builder.
func (_u *ETLJobUpdateOne) Mutation() *ETLJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ETLJobUpdate builder.
func (_u *ETLJobUpdateOne) Where(ps ...predicate.ETLJob) *ETLJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ETLJobUpdateOne) Select(field string, fields ...string) *ETLJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ETLJob entity.
func (_u *ETLJobUpdateOne) Save(ctx context.Context) (*ETLJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ETLJobUpdateOne) SaveX(ctx context.Context) *ETLJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ETLJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ETLJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ETLJobUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := etljob.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ETLJob.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ETLJobUpdateOne) sqlSave(ctx context.Context) (_node *ETLJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(etljob.Table, etljob.Columns, sqlgraph.NewFieldSpec(etljob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ETLJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, etljob.FieldID)
		for _, f := range fields {
			if !etljob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != etljob.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(etljob.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(etljob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(etljob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsIn(); ok {
		_spec.SetField(etljob.FieldRowsIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsIn(); ok {
		_spec.AddField(etljob.FieldRowsIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsOut(); ok {
		_spec.SetField(etljob.FieldRowsOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsOut(); ok {
		_spec.AddField(etljob.FieldRowsOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeadLetters(); ok {
		_spec.SetField(etljob.FieldDeadLetters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeadLetters(); ok {
		_spec.AddField(etljob.FieldDeadLetters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(etljob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(etljob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(etljob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(etljob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(etljob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(etljob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(etljob.FieldFinishedAt, field.TypeTime)
	}
	_node = &ETLJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{etljob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
