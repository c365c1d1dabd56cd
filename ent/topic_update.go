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
	"github.com/kosmi-edu/kosmi/ent/topic"
)

// TopicUpdate is the builder for updating Topic entities.
type TopicUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdate) Where(ps ...predicate.Topic) *TopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicUpdate) SetUpdatedAt(v time.Time) *TopicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *TopicUpdate) SetSlug(v string) *TopicUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableSlug(v *string) *TopicUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetWorldID sets the "world_id" field.
func (_u *TopicUpdate) SetWorldID(v string) *TopicUpdate {
	_u.mutation.SetWorldID(v)
	return _u
}

// SetNillableWorldID sets the "world_id" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableWorldID(v *string) *TopicUpdate {
	if v != nil {
		_u.SetWorldID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TopicUpdate) SetTitle(v string) *TopicUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableTitle(v *string) *TopicUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TopicUpdate) SetDescription(v string) *TopicUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableDescription(v *string) *TopicUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPublished sets the "published" field.
func (_u *TopicUpdate) SetPublished(v bool) *TopicUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *TopicUpdate) SetNillablePublished(v *bool) *TopicUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *TopicUpdate) SetPosition(v int) *TopicUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *TopicUpdate) SetNillablePosition(v *int) *TopicUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *TopicUpdate) AddPosition(v int) *TopicUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdate) Mutation() *TopicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicUpdate) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := topic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Topic.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WorldID(); ok {
		if err := topic.WorldIDValidator(v); err != nil {
			return &ValidationError{Name: "world_id", err: fmt.Errorf(`ent: validator failed for field "Topic.world_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := topic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Topic.title": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(topic.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorldID(); ok {
		_spec.SetField(topic.FieldWorldID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(topic.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(topic.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(topic.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(topic.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(topic.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicUpdateOne is the builder for updating a single Topic entity.
type TopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicUpdateOne) SetUpdatedAt(v time.Time) *TopicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *TopicUpdateOne) SetSlug(v string) *TopicUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableSlug(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetWorldID sets the "world_id" field.
func (_u *TopicUpdateOne) SetWorldID(v string) *TopicUpdateOne {
	_u.mutation.SetWorldID(v)
	return _u
}

// SetNillableWorldID sets the "world_id" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableWorldID(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetWorldID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TopicUpdateOne) SetTitle(v string) *TopicUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableTitle(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TopicUpdateOne) SetDescription(v string) *TopicUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableDescription(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPublished sets the "published" field.
func (_u *TopicUpdateOne) SetPublished(v bool) *TopicUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillablePublished(v *bool) *TopicUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *TopicUpdateOne) SetPosition(v int) *TopicUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillablePosition(v *int) *TopicUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *TopicUpdateOne) AddPosition(v int) *TopicUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdateOne) Mutation() *TopicMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdateOne) Where(ps ...predicate.Topic) *TopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicUpdateOne) Select(field string, fields ...string) *TopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Topic entity.
func (_u *TopicUpdateOne) Save(ctx context.Context) (*Topic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdateOne) SaveX(ctx context.Context) *Topic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicUpdateOne) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := topic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Topic.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WorldID(); ok {
		if err := topic.WorldIDValidator(v); err != nil {
			return &ValidationError{Name: "world_id", err: fmt.Errorf(`ent: validator failed for field "Topic.world_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := topic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Topic.title": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicUpdateOne) sqlSave(ctx context.Context) (_node *Topic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Topic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topic.FieldID)
		for _, f := range fields {
			if !topic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topic.FieldID {
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
		_spec.SetField(topic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(topic.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorldID(); ok {
		_spec.SetField(topic.FieldWorldID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(topic.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(topic.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(topic.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(topic.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(topic.FieldPosition, field.TypeInt, value)
	}
	_node = &Topic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
