// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kosmi-edu/kosmi/ent/world"
)

// WorldCreate is the builder for creating a World entity.
type WorldCreate struct {
	config
	mutation *WorldMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorldCreate) SetCreatedAt(v time.Time) *WorldCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorldCreate) SetNillableCreatedAt(v *time.Time) *WorldCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorldCreate) SetUpdatedAt(v time.Time) *WorldCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorldCreate) SetNillableUpdatedAt(v *time.Time) *WorldCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSlug sets the "slug" field.
func (_c *WorldCreate) SetSlug(v string) *WorldCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *WorldCreate) SetTitle(v string) *WorldCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *WorldCreate) SetDescription(v string) *WorldCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *WorldCreate) SetNillableDescription(v *string) *WorldCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCoverImage sets the "cover_image" field.
func (_c *WorldCreate) SetCoverImage(v string) *WorldCreate {
	_c.mutation.SetCoverImage(v)
	return _c
}

// SetNillableCoverImage sets the "cover_image" field if the given value is not nil.
func (_c *WorldCreate) SetNillableCoverImage(v *string) *WorldCreate {
	if v != nil {
		_c.SetCoverImage(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *WorldCreate) SetPublished(v bool) *WorldCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *WorldCreate) SetNillablePublished(v *bool) *WorldCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *WorldCreate) SetPosition(v int) *WorldCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *WorldCreate) SetNillablePosition(v *int) *WorldCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorldCreate) SetID(v string) *WorldCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WorldMutation object of the builder.
func (_c *WorldCreate) Mutation() *WorldMutation {
	return _c.mutation
}

// Save creates the World in the database.
func (_c *WorldCreate) Save(ctx context.Context) (*World, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorldCreate) SaveX(ctx context.Context) *World {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorldCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := world.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := world.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := world.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.CoverImage(); !ok {
		v := world.DefaultCoverImage
		_c.mutation.SetCoverImage(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := world.DefaultPublished
		_c.mutation.SetPublished(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := world.DefaultPosition
		_c.mutation.SetPosition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorldCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "World.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "World.updated_at"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "World.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := world.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "World.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "World.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := world.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "World.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "World.description"`)}
	}
	if _, ok := _c.mutation.CoverImage(); !ok {
		return &ValidationError{Name: "cover_image", err: errors.New(`ent: missing required field "World.cover_image"`)}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`ent: missing required field "World.published"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "World.position"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := world.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "World.id": %w`, err)}
		}
	}
	return nil
}

func (_c *WorldCreate) sqlSave(ctx context.Context) (*World, error) {
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
			return nil, fmt.Errorf("unexpected World.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorldCreate) createSpec() (*World, *sqlgraph.CreateSpec) {
	var (
		_node = &World{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(world.Table, sqlgraph.NewFieldSpec(world.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(world.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(world.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(world.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(world.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(world.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CoverImage(); ok {
		_spec.SetField(world.FieldCoverImage, field.TypeString, value)
		_node.CoverImage = value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(world.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(world.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	return _node, _spec
}

// WorldCreateBulk is the builder for creating many World entities in bulk.
type WorldCreateBulk struct {
	config
	err      error
	builders []*WorldCreate
}

// Save creates the World entities in the database.
func (_c *WorldCreateBulk) Save(ctx context.Context) ([]*World, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*World, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorldMutation)
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
func (_c *WorldCreateBulk) SaveX(ctx context.Context) []*World {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
