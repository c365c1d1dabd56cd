// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kosmi-edu/kosmi/ent/parentchildlink"
)

// ParentChildLinkCreate is the builder for creating a ParentChildLink entity.
type ParentChildLinkCreate struct {
	config
	mutation *ParentChildLinkMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ParentChildLinkCreate) SetCreatedAt(v time.Time) *ParentChildLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ParentChildLinkCreate) SetNillableCreatedAt(v *time.Time) *ParentChildLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ParentChildLinkCreate) SetUpdatedAt(v time.Time) *ParentChildLinkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ParentChildLinkCreate) SetNillableUpdatedAt(v *time.Time) *ParentChildLinkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *ParentChildLinkCreate) SetParentID(v uuid.UUID) *ParentChildLinkCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetChildID sets the "child_id" field.
func (_c *ParentChildLinkCreate) SetChildID(v uuid.UUID) *ParentChildLinkCreate {
	_c.mutation.SetChildID(v)
	return _c
}

// Mutation returns the ParentChildLinkMutation object of the builder.
func (_c *ParentChildLinkCreate) Mutation() *ParentChildLinkMutation {
	return _c.mutation
}

// Save creates the ParentChildLink in the database.
func (_c *ParentChildLinkCreate) Save(ctx context.Context) (*ParentChildLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParentChildLinkCreate) SaveX(ctx context.Context) *ParentChildLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParentChildLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParentChildLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParentChildLinkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := parentchildlink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := parentchildlink.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParentChildLinkCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ParentChildLink.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ParentChildLink.updated_at"`)}
	}
	if _, ok := _c.mutation.ParentID(); !ok {
		return &ValidationError{Name: "parent_id", err: errors.New(`ent: missing required field "ParentChildLink.parent_id"`)}
	}
	if _, ok := _c.mutation.ChildID(); !ok {
		return &ValidationError{Name: "child_id", err: errors.New(`ent: missing required field "ParentChildLink.child_id"`)}
	}
	return nil
}

func (_c *ParentChildLinkCreate) sqlSave(ctx context.Context) (*ParentChildLink, error) {
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

func (_c *ParentChildLinkCreate) createSpec() (*ParentChildLink, *sqlgraph.CreateSpec) {
	var (
		_node = &ParentChildLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parentchildlink.Table, sqlgraph.NewFieldSpec(parentchildlink.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(parentchildlink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(parentchildlink.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(parentchildlink.FieldParentID, field.TypeUUID, value)
		_node.ParentID = value
	}
	if value, ok := _c.mutation.ChildID(); ok {
		_spec.SetField(parentchildlink.FieldChildID, field.TypeUUID, value)
		_node.ChildID = value
	}
	return _node, _spec
}

// ParentChildLinkCreateBulk is the builder for creating many ParentChildLink entities in bulk.
type ParentChildLinkCreateBulk struct {
	config
	err      error
	builders []*ParentChildLinkCreate
}

// Save creates the ParentChildLink entities in the database.
func (_c *ParentChildLinkCreateBulk) Save(ctx context.Context) ([]*ParentChildLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParentChildLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParentChildLinkMutation)
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
func (_c *ParentChildLinkCreateBulk) SaveX(ctx context.Context) []*ParentChildLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParentChildLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParentChildLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
