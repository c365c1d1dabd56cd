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
	"github.com/kosmi-edu/kosmi/ent/lessonprogress"
	"github.com/kosmi-edu/kosmi/ent/predicate"
)

// LessonProgressUpdate is the builder for updating LessonProgress entities.
type LessonProgressUpdate struct {
	config
	hooks    []Hook
	mutation *LessonProgressMutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (_u *LessonProgressUpdate) Where(ps ...predicate.LessonProgress) *LessonProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonProgressUpdate) SetUpdatedAt(v time.Time) *LessonProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LessonProgressUpdate) SetCompleted(v bool) *LessonProgressUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableCompleted(v *bool) *LessonProgressUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetDepthAccessed sets the "depth_accessed" field.
func (_u *LessonProgressUpdate) SetDepthAccessed(v bool) *LessonProgressUpdate {
	_u.mutation.SetDepthAccessed(v)
	return _u
}

// SetNillableDepthAccessed sets the "depth_accessed" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableDepthAccessed(v *bool) *LessonProgressUpdate {
	if v != nil {
		_u.SetDepthAccessed(*v)
	}
	return _u
}

// SetReflectionAnswer sets the "reflection_answer" field.
func (_u *LessonProgressUpdate) SetReflectionAnswer(v string) *LessonProgressUpdate {
	_u.mutation.SetReflectionAnswer(v)
	return _u
}

// SetNillableReflectionAnswer sets the "reflection_answer" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableReflectionAnswer(v *string) *LessonProgressUpdate {
	if v != nil {
		_u.SetReflectionAnswer(*v)
	}
	return _u
}

// ClearReflectionAnswer clears the value of the "reflection_answer" field.
func (_u *LessonProgressUpdate) ClearReflectionAnswer() *LessonProgressUpdate {
	_u.mutation.ClearReflectionAnswer()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LessonProgressUpdate) SetCompletedAt(v time.Time) *LessonProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableCompletedAt(v *time.Time) *LessonProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LessonProgressUpdate) ClearCompletedAt() *LessonProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_u *LessonProgressUpdate) Mutation() *LessonProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LessonProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(lessonprogress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DepthAccessed(); ok {
		_spec.SetField(lessonprogress.FieldDepthAccessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReflectionAnswer(); ok {
		_spec.SetField(lessonprogress.FieldReflectionAnswer, field.TypeString, value)
	}
	if _u.mutation.ReflectionAnswerCleared() {
		_spec.ClearField(lessonprogress.FieldReflectionAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lessonprogress.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonProgressUpdateOne is the builder for updating a single LessonProgress entity.
type LessonProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonProgressMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonProgressUpdateOne) SetUpdatedAt(v time.Time) *LessonProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LessonProgressUpdateOne) SetCompleted(v bool) *LessonProgressUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableCompleted(v *bool) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetDepthAccessed sets the "depth_accessed" field.
func (_u *LessonProgressUpdateOne) SetDepthAccessed(v bool) *LessonProgressUpdateOne {
	_u.mutation.SetDepthAccessed(v)
	return _u
}

// SetNillableDepthAccessed sets the "depth_accessed" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableDepthAccessed(v *bool) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetDepthAccessed(*v)
	}
	return _u
}

// SetReflectionAnswer sets the "reflection_answer" field.
func (_u *LessonProgressUpdateOne) SetReflectionAnswer(v string) *LessonProgressUpdateOne {
	_u.mutation.SetReflectionAnswer(v)
	return _u
}

// SetNillableReflectionAnswer sets the "reflection_answer" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableReflectionAnswer(v *string) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetReflectionAnswer(*v)
	}
	return _u
}

// ClearReflectionAnswer clears the value of the "reflection_answer" field.
func (_u *LessonProgressUpdateOne) ClearReflectionAnswer() *LessonProgressUpdateOne {
	_u.mutation.ClearReflectionAnswer()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LessonProgressUpdateOne) SetCompletedAt(v time.Time) *LessonProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LessonProgressUpdateOne) ClearCompletedAt() *LessonProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_u *LessonProgressUpdateOne) Mutation() *LessonProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (_u *LessonProgressUpdateOne) Where(ps ...predicate.LessonProgress) *LessonProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonProgressUpdateOne) Select(field string, fields ...string) *LessonProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonProgress entity.
func (_u *LessonProgressUpdateOne) Save(ctx context.Context) (*LessonProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProgressUpdateOne) SaveX(ctx context.Context) *LessonProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LessonProgressUpdateOne) sqlSave(ctx context.Context) (_node *LessonProgress, err error) {
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonprogress.FieldID)
		for _, f := range fields {
			if !lessonprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonprogress.FieldID {
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
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(lessonprogress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DepthAccessed(); ok {
		_spec.SetField(lessonprogress.FieldDepthAccessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReflectionAnswer(); ok {
		_spec.SetField(lessonprogress.FieldReflectionAnswer, field.TypeString, value)
	}
	if _u.mutation.ReflectionAnswerCleared() {
		_spec.ClearField(lessonprogress.FieldReflectionAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lessonprogress.FieldCompletedAt, field.TypeTime)
	}
	_node = &LessonProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
