// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"investingo/ent/predicate"
	"investingo/ent/tradeevent"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// TradeEventUpdate is the builder for updating TradeEvent entities.
type TradeEventUpdate struct {
	config
	hooks    []Hook
	mutation *TradeEventMutation
}

// Where appends a list predicates to the TradeEventUpdate builder.
func (_u *TradeEventUpdate) Where(ps ...predicate.TradeEvent) *TradeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSymbol sets the "symbol" field.
func (_u *TradeEventUpdate) SetSymbol(v string) *TradeEventUpdate {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *TradeEventUpdate) SetNillableSymbol(v *string) *TradeEventUpdate {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *TradeEventUpdate) SetQuantity(v int) *TradeEventUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *TradeEventUpdate) SetNillableQuantity(v *int) *TradeEventUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *TradeEventUpdate) AddQuantity(v int) *TradeEventUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *TradeEventUpdate) SetPrice(v float64) *TradeEventUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *TradeEventUpdate) SetNillablePrice(v *float64) *TradeEventUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *TradeEventUpdate) AddPrice(v float64) *TradeEventUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetAccepted sets the "accepted" field.
func (_u *TradeEventUpdate) SetAccepted(v bool) *TradeEventUpdate {
	_u.mutation.SetAccepted(v)
	return _u
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (_u *TradeEventUpdate) SetNillableAccepted(v *bool) *TradeEventUpdate {
	if v != nil {
		_u.SetAccepted(*v)
	}
	return _u
}

// Mutation returns the TradeEventMutation object of the builder.
func (_u *TradeEventUpdate) Mutation() *TradeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TradeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TradeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TradeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TradeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TradeEventUpdate) check() error {
	if v, ok := _u.mutation.Symbol(); ok {
		if err := tradeevent.SymbolValidator(v); err != nil {
			return &ValidationError{Name: "symbol", err: fmt.Errorf(`ent: validator failed for field "TradeEvent.symbol": %w`, err)}
		}
	}
	return nil
}

func (_u *TradeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tradeevent.Table, tradeevent.Columns, sqlgraph.NewFieldSpec(tradeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(tradeevent.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(tradeevent.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(tradeevent.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(tradeevent.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(tradeevent.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accepted(); ok {
		_spec.SetField(tradeevent.FieldAccepted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tradeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TradeEventUpdateOne is the builder for updating a single TradeEvent entity.
type TradeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TradeEventMutation
}

// SetSymbol sets the "symbol" field.
func (_u *TradeEventUpdateOne) SetSymbol(v string) *TradeEventUpdateOne {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *TradeEventUpdateOne) SetNillableSymbol(v *string) *TradeEventUpdateOne {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *TradeEventUpdateOne) SetQuantity(v int) *TradeEventUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *TradeEventUpdateOne) SetNillableQuantity(v *int) *TradeEventUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *TradeEventUpdateOne) AddQuantity(v int) *TradeEventUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *TradeEventUpdateOne) SetPrice(v float64) *TradeEventUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *TradeEventUpdateOne) SetNillablePrice(v *float64) *TradeEventUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *TradeEventUpdateOne) AddPrice(v float64) *TradeEventUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetAccepted sets the "accepted" field.
func (_u *TradeEventUpdateOne) SetAccepted(v bool) *TradeEventUpdateOne {
	_u.mutation.SetAccepted(v)
	return _u
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (_u *TradeEventUpdateOne) SetNillableAccepted(v *bool) *TradeEventUpdateOne {
	if v != nil {
		_u.SetAccepted(*v)
	}
	return _u
}

// Mutation returns the TradeEventMutation object of the builder.
func (_u *TradeEventUpdateOne) Mutation() *TradeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TradeEventUpdate builder.
func (_u *TradeEventUpdateOne) Where(ps ...predicate.TradeEvent) *TradeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TradeEventUpdateOne) Select(field string, fields ...string) *TradeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TradeEvent entity.
func (_u *TradeEventUpdateOne) Save(ctx context.Context) (*TradeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TradeEventUpdateOne) SaveX(ctx context.Context) *TradeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TradeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TradeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TradeEventUpdateOne) check() error {
	if v, ok := _u.mutation.Symbol(); ok {
		if err := tradeevent.SymbolValidator(v); err != nil {
			return &ValidationError{Name: "symbol", err: fmt.Errorf(`ent: validator failed for field "TradeEvent.symbol": %w`, err)}
		}
	}
	return nil
}

func (_u *TradeEventUpdateOne) sqlSave(ctx context.Context) (_node *TradeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tradeevent.Table, tradeevent.Columns, sqlgraph.NewFieldSpec(tradeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TradeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tradeevent.FieldID)
		for _, f := range fields {
			if !tradeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tradeevent.FieldID {
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
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(tradeevent.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(tradeevent.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(tradeevent.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(tradeevent.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(tradeevent.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accepted(); ok {
		_spec.SetField(tradeevent.FieldAccepted, field.TypeBool, value)
	}
	_node = &TradeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tradeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
