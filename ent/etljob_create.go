// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cloudsift/cloudsift/ent/etljob"
)

// ETLJobCreate is the builder for creating a ETLJob entity.
type ETLJobCreate struct {
	config
	mutation *ETLJobMutation
	hooks    []Hook
}

// SetSourceTable sets the "source_table" field.
func (_c *ETLJobCreate) SetSourceTable(v string) *ETLJobCreate {
	_c.mutation.SetSourceTable(v)
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *ETLJobCreate) SetWindowStart(v time.Time) *ETLJobCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetWindowEnd sets the "window_end" field.
func (_c *ETLJobCreate) SetWindowEnd(v time.Time) *ETLJobCreate {
	_c.mutation.SetWindowEnd(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ETLJobCreate) SetState(v etljob.State) *ETLJobCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ETLJobCreate) SetNillableState(v *etljob.State) *ETLJobCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *ETLJobCreate) SetAttempt(v int) *ETLJobCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *ETLJobCreate) SetNillableAttempt(v *int) *ETLJobCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetRowsIn sets the "rows_in" field.
func (_c *ETLJobCreate) SetRowsIn(v int) *ETLJobCreate {
	_c.mutation.SetRowsIn(v)
	return _c
}

// SetNillableRowsIn sets the "rows_in" field if the given value is not nil.
func (_c *ETLJobCreate) SetNillableRowsIn(v *int) *ETLJobCreate {
	if v != nil {
		_c.SetRowsIn(*v)
	}
	return _c
}

// SetRowsOut sets the "rows_out" field.
func (_c *ETLJobCreate) SetRowsOut(v int) *ETLJobCreate {
	_c.mutation.SetRowsOut(v)
	return _c
}

// SetNillableRowsOut sets the "rows_out" field if the given value is not nil.
func (_c *ETLJobCreate) SetNillableRowsOut(v *int) *ETLJobCreate {
	if v != nil {
		_c.SetRowsOut(*v)
	}
	return _c
}

// SetDeadLetters sets the "dead_letters" field.
func (_c *ETLJobCreate) SetDeadLetters(v int) *ETLJobCreate {
	_c.mutation.SetDeadLetters(v)
	return _c
}

// SetNillableDeadLetters sets the "dead_letters" field if the given value is not nil.
func (_c *ETLJobCreate) SetNillableDeadLetters(v *int) *ETLJobCreate {
	if v != nil {
		_c.SetDeadLetters(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ETLJobCreate) SetErrorMessage(v string) *ETLJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ETLJobCreate) SetNillableErrorMessage(v *string) *ETLJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *ETLJobCreate) SetClaimedBy(v string) *ETLJobCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *ETLJobCreate) SetNillableClaimedBy(v *string) *ETLJobCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ETLJobCreate) SetStartedAt(v time.Time) *ETLJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ETLJobCreate) SetNillableStartedAt(v *time.Time) *ETLJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ETLJobCreate) SetFinishedAt(v time.Time) *ETLJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ETLJobCreate) SetNillableFinishedAt(v *time.Time) *ETLJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ETLJobCreate) SetID(v string) *ETLJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ETLJobMutation object of the builder.
func (_c *ETLJobCreate) Mutation() *ETLJobMutation {
	return _c.mutation
}

// Save creates the ETLJob in the database.
func (_c *ETLJobCreate) Save(ctx context.Context) (*ETLJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ETLJobCreate) SaveX(ctx context.Context) *ETLJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ETLJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ETLJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ETLJobCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := etljob.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := etljob.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.RowsIn(); !ok {
		v := etljob.DefaultRowsIn
		_c.mutation.SetRowsIn(v)
	}
	if _, ok := _c.mutation.RowsOut(); !ok {
		v := etljob.DefaultRowsOut
		_c.mutation.SetRowsOut(v)
	}
	if _, ok := _c.mutation.DeadLetters(); !ok {
		v := etljob.DefaultDeadLetters
		_c.mutation.SetDeadLetters(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := etljob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ETLJobCreate) check() error {
	if _, ok := _c.mutation.SourceTable(); !ok {
		return &ValidationError{Name: "source_table", err: errors.New(`ent: missing required field "ETLJob.source_table"`)}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "ETLJob.window_start"`)}
	}
	if _, ok := _c.mutation.WindowEnd(); !ok {
		return &ValidationError{Name: "window_end", err: errors.New(`ent: missing required field "ETLJob.window_end"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ETLJob.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := etljob.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ETLJob.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "ETLJob.attempt"`)}
	}
	if _, ok := _c.mutation.RowsIn(); !ok {
		return &ValidationError{Name: "rows_in", err: errors.New(`ent: missing required field "ETLJob.rows_in"`)}
	}
	if _, ok := _c.mutation.RowsOut(); !ok {
		return &ValidationError{Name: "rows_out", err: errors.New(`ent: missing required field "ETLJob.rows_out"`)}
	}
	if _, ok := _c.mutation.DeadLetters(); !ok {
		return &ValidationError{Name: "dead_letters", err: errors.New(`ent: missing required field "ETLJob.dead_letters"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ETLJob.started_at"`)}
	}
	return nil
}

func (_c *ETLJobCreate) sqlSave(ctx context.Context) (*ETLJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ETLJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ETLJobCreate) createSpec() (*ETLJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ETLJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(etljob.Table, sqlgraph.NewFieldSpec(etljob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceTable(); ok {
		_spec.SetField(etljob.FieldSourceTable, field.TypeString, value)
		_node.SourceTable = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(etljob.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.WindowEnd(); ok {
		_spec.SetField(etljob.FieldWindowEnd, field.TypeTime, value)
		_node.WindowEnd = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(etljob.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(etljob.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.RowsIn(); ok {
		_spec.SetField(etljob.FieldRowsIn, field.TypeInt, value)
		_node.RowsIn = value
	}
	if value, ok := _c.mutation.RowsOut(); ok {
		_spec.SetField(etljob.FieldRowsOut, field.TypeInt, value)
		_node.RowsOut = value
	}
	if value, ok := _c.mutation.DeadLetters(); ok {
		_spec.SetField(etljob.FieldDeadLetters, field.TypeInt, value)
		_node.DeadLetters = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(etljob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(etljob.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(etljob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(etljob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// ETLJobCreateBulk is the builder for creating many ETLJob entities in bulk.
type ETLJobCreateBulk struct {
	config
	err      error
	builders []*ETLJobCreate
}

// Save creates the ETLJob entities in the database.
func (_c *ETLJobCreateBulk) Save(ctx context.Context) ([]*ETLJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ETLJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ETLJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ETLJobCreateBulk) SaveX(ctx context.Context) []*ETLJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ETLJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ETLJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
