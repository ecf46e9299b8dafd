// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cloudsift/cloudsift/ent/session"
	"github.com/cloudsift/cloudsift/ent/toolinvocation"
)

// ToolInvocationCreate is the builder for creating a ToolInvocation entity.
type ToolInvocationCreate struct {
	config
	mutation *ToolInvocationMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ToolInvocationCreate) SetSessionID(v string) *ToolInvocationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ToolInvocationCreate) SetRunID(v string) *ToolInvocationCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableRunID(v *string) *ToolInvocationCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ToolInvocationCreate) SetToolName(v string) *ToolInvocationCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *ToolInvocationCreate) SetInput(v string) *ToolInvocationCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *ToolInvocationCreate) SetOutput(v string) *ToolInvocationCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableOutput(v *string) *ToolInvocationCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ToolInvocationCreate) SetStatus(v toolinvocation.Status) *ToolInvocationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableStatus(v *toolinvocation.Status) *ToolInvocationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ToolInvocationCreate) SetStartedAt(v time.Time) *ToolInvocationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableStartedAt(v *time.Time) *ToolInvocationCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ToolInvocationCreate) SetCompletedAt(v time.Time) *ToolInvocationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableCompletedAt(v *time.Time) *ToolInvocationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ToolInvocationCreate) SetDurationMs(v int) *ToolInvocationCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableDurationMs(v *int) *ToolInvocationCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetTokens sets the "tokens" field.
func (_c *ToolInvocationCreate) SetTokens(v int) *ToolInvocationCreate {
	_c.mutation.SetTokens(v)
	return _c
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableTokens(v *int) *ToolInvocationCreate {
	if v != nil {
		_c.SetTokens(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *ToolInvocationCreate) SetCostUsd(v float64) *ToolInvocationCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableCostUsd(v *float64) *ToolInvocationCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetEstimatedBytes sets the "estimated_bytes" field.
func (_c *ToolInvocationCreate) SetEstimatedBytes(v int64) *ToolInvocationCreate {
	_c.mutation.SetEstimatedBytes(v)
	return _c
}

// SetNillableEstimatedBytes sets the "estimated_bytes" field if the given value is not nil.
func (_c *ToolInvocationCreate) SetNillableEstimatedBytes(v *int64) *ToolInvocationCreate {
	if v != nil {
		_c.SetEstimatedBytes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolInvocationCreate) SetID(v string) *ToolInvocationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ToolInvocationCreate) SetSession(v *Session) *ToolInvocationCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ToolInvocationMutation object of the builder.
func (_c *ToolInvocationCreate) Mutation() *ToolInvocationMutation {
	return _c.mutation
}

// Save creates the ToolInvocation in the database.
func (_c *ToolInvocationCreate) Save(ctx context.Context) (*ToolInvocation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolInvocationCreate) SaveX(ctx context.Context) *ToolInvocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolInvocationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolInvocationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolInvocationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := toolinvocation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := toolinvocation.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolInvocationCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ToolInvocation.session_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ToolInvocation.tool_name"`)}
	}
	if _, ok := _c.mutation.Input(); !ok {
		return &ValidationError{Name: "input", err: errors.New(`ent: missing required field "ToolInvocation.input"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ToolInvocation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := toolinvocation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolInvocation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ToolInvocation.started_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ToolInvocation.session"`)}
	}
	return nil
}

func (_c *ToolInvocationCreate) sqlSave(ctx context.Context) (*ToolInvocation, error) {
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
			return nil, fmt.Errorf("unexpected ToolInvocation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolInvocationCreate) createSpec() (*ToolInvocation, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolInvocation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolinvocation.Table, sqlgraph.NewFieldSpec(toolinvocation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(toolinvocation.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(toolinvocation.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(toolinvocation.FieldInput, field.TypeString, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(toolinvocation.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(toolinvocation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(toolinvocation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(toolinvocation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(toolinvocation.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.Tokens(); ok {
		_spec.SetField(toolinvocation.FieldTokens, field.TypeInt, value)
		_node.Tokens = &value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(toolinvocation.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = &value
	}
	if value, ok := _c.mutation.EstimatedBytes(); ok {
		_spec.SetField(toolinvocation.FieldEstimatedBytes, field.TypeInt64, value)
		_node.EstimatedBytes = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   toolinvocation.SessionTable,
			Columns: []string{toolinvocation.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ToolInvocationCreateBulk is the builder for creating many ToolInvocation entities in bulk.
type ToolInvocationCreateBulk struct {
	config
	err      error
	builders []*ToolInvocationCreate
}

// Save creates the ToolInvocation entities in the database.
func (_c *ToolInvocationCreateBulk) Save(ctx context.Context) ([]*ToolInvocation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolInvocation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolInvocationMutation)
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
func (_c *ToolInvocationCreateBulk) SaveX(ctx context.Context) []*ToolInvocation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolInvocationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolInvocationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
