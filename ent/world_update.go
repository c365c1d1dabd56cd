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
	"github.com/kosmi-edu/kosmi/ent/predicate"
	"github.com/kosmi-edu/kosmi/ent/world"
)

// WorldUpdate is the builder for updating World entities.
type WorldUpdate struct {
	config
	hooks    []Hook
	mutation *WorldMutation
}

// Where appends a list predicates to the WorldUpdate builder.
func (_u *WorldUpdate) Where(ps ...predicate.World) *WorldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorldUpdate) SetUpdatedAt(v time.Time) *WorldUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *WorldUpdate) SetSlug(v string) *WorldUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *WorldUpdate) SetNillableSlug(v *string) *WorldUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *WorldUpdate) SetTitle(v string) *WorldUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorldUpdate) SetNillableTitle(v *string) *WorldUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WorldUpdate) SetDescription(v string) *WorldUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WorldUpdate) SetNillableDescription(v *string) *WorldUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCoverImage sets the "cover_image" field.
func (_u *WorldUpdate) SetCoverImage(v string) *WorldUpdate {
	_u.mutation.SetCoverImage(v)
	return _u
}

// SetNillableCoverImage sets the "cover_image" field if the given value is not nil.
func (_u *WorldUpdate) SetNillableCoverImage(v *string) *WorldUpdate {
	if v != nil {
		_u.SetCoverImage(*v)
	}
	return _u
}

// SetPublished sets the "published" field.
func (_u *WorldUpdate) SetPublished(v bool) *WorldUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *WorldUpdate) SetNillablePublished(v *bool) *WorldUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *WorldUpdate) SetPosition(v int) *WorldUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *WorldUpdate) SetNillablePosition(v *int) *WorldUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *WorldUpdate) AddPosition(v int) *WorldUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the WorldMutation object of the builder.
func (_u *WorldUpdate) Mutation() *WorldMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorldUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorldUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := world.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorldUpdate) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := world.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "World.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := world.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "World.title": %w`, err)}
		}
	}
	return nil
}

func (_u *WorldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(world.Table, world.Columns, sqlgraph.NewFieldSpec(world.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(world.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(world.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(world.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(world.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoverImage(); ok {
		_spec.SetField(world.FieldCoverImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(world.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(world.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(world.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{world.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorldUpdateOne is the builder for updating a single World entity.
type WorldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorldMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorldUpdateOne) SetUpdatedAt(v time.Time) *WorldUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *WorldUpdateOne) SetSlug(v string) *WorldUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *WorldUpdateOne) SetNillableSlug(v *string) *WorldUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *WorldUpdateOne) SetTitle(v string) *WorldUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *WorldUpdateOne) SetNillableTitle(v *string) *WorldUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WorldUpdateOne) SetDescription(v string) *WorldUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WorldUpdateOne) SetNillableDescription(v *string) *WorldUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCoverImage sets the "cover_image" field.
func (_u *WorldUpdateOne) SetCoverImage(v string) *WorldUpdateOne {
	_u.mutation.SetCoverImage(v)
	return _u
}

// SetNillableCoverImage sets the "cover_image" field if the given value is not nil.
func (_u *WorldUpdateOne) SetNillableCoverImage(v *string) *WorldUpdateOne {
	if v != nil {
		_u.SetCoverImage(*v)
	}
	return _u
}

// SetPublished sets the "published" field.
func (_u *WorldUpdateOne) SetPublished(v bool) *WorldUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *WorldUpdateOne) SetNillablePublished(v *bool) *WorldUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *WorldUpdateOne) SetPosition(v int) *WorldUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *WorldUpdateOne) SetNillablePosition(v *int) *WorldUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *WorldUpdateOne) AddPosition(v int) *WorldUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the WorldMutation object of the builder.
func (_u *WorldUpdateOne) Mutation() *WorldMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorldUpdate builder.
func (_u *WorldUpdateOne) Where(ps ...predicate.World) *WorldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorldUpdateOne) Select(field string, fields ...string) *WorldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated World entity.
func (_u *WorldUpdateOne) Save(ctx context.Context) (*World, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorldUpdateOne) SaveX(ctx context.Context) *World {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorldUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := world.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorldUpdateOne) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := world.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "World.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := world.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "World.title": %w`, err)}
		}
	}
	return nil
}

func (_u *WorldUpdateOne) sqlSave(ctx context.Context) (_node *World, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(world.Table, world.Columns, sqlgraph.NewFieldSpec(world.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "World.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, world.FieldID)
		for _, f := range fields {
			if !world.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != world.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(world.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(world.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(world.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(world.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoverImage(); ok {
		_spec.SetField(world.FieldCoverImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(world.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(world.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(world.FieldPosition, field.TypeInt, value)
	}
	_node = &World{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{world.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
