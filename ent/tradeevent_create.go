// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"investingo/ent/tradeevent"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// TradeEventCreate is the builder for creating a TradeEvent entity.
type TradeEventCreate struct {
	config
	mutation *TradeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TradeEventCreate) SetSequence(v int64) *TradeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TradeEventCreate) SetTimestamp(v time.Time) *TradeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TradeEventCreate) SetNillableTimestamp(v *time.Time) *TradeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSymbol sets the "symbol" field.
func (_c *TradeEventCreate) SetSymbol(v string) *TradeEventCreate {
	_c.mutation.SetSymbol(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *TradeEventCreate) SetQuantity(v int) *TradeEventCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *TradeEventCreate) SetPrice(v float64) *TradeEventCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetAccepted sets the "accepted" field.
func (_c *TradeEventCreate) SetAccepted(v bool) *TradeEventCreate {
	_c.mutation.SetAccepted(v)
	return _c
}

// Mutation returns the TradeEventMutation object of the builder.
func (_c *TradeEventCreate) Mutation() *TradeEventMutation {
	return _c.mutation
}

// Save creates the TradeEvent in the database.
func (_c *TradeEventCreate) Save(ctx context.Context) (*TradeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TradeEventCreate) SaveX(ctx context.Context) *TradeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TradeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TradeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TradeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := tradeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TradeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TradeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TradeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Symbol(); !ok {
		return &ValidationError{Name: "symbol", err: errors.New(`ent: missing required field "TradeEvent.symbol"`)}
	}
	if v, ok := _c.mutation.Symbol(); ok {
		if err := tradeevent.SymbolValidator(v); err != nil {
			return &ValidationError{Name: "symbol", err: fmt.Errorf(`ent: validator failed for field "TradeEvent.symbol": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "TradeEvent.quantity"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "TradeEvent.price"`)}
	}
	if _, ok := _c.mutation.Accepted(); !ok {
		return &ValidationError{Name: "accepted", err: errors.New(`ent: missing required field "TradeEvent.accepted"`)}
	}
	return nil
}

func (_c *TradeEventCreate) sqlSave(ctx context.Context) (*TradeEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TradeEventCreate) createSpec() (*TradeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TradeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tradeevent.Table, sqlgraph.NewFieldSpec(tradeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(tradeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(tradeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Symbol(); ok {
		_spec.SetField(tradeevent.FieldSymbol, field.TypeString, value)
		_node.Symbol = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(tradeevent.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(tradeevent.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Accepted(); ok {
		_spec.SetField(tradeevent.FieldAccepted, field.TypeBool, value)
		_node.Accepted = value
	}
	return _node, _spec
}

// TradeEventCreateBulk is the builder for creating many TradeEvent entities in bulk.
type TradeEventCreateBulk struct {
	config
	err      error
	builders []*TradeEventCreate
}

// Save creates the TradeEvent entities in the database.
func (_c *TradeEventCreateBulk) Save(ctx context.Context) ([]*TradeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TradeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TradeEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *TradeEventCreateBulk) SaveX(ctx context.Context) []*TradeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TradeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TradeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
