// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kosmi-edu/kosmi/ent/lesson"
	"github.com/kosmi-edu/kosmi/ent/predicate"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonUpdate) SetUpdatedAt(v time.Time) *LessonUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LessonUpdate) SetCourseID(v string) *LessonUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableCourseID(v *string) *LessonUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdate) SetTitle(v string) *LessonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTitle(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LessonUpdate) SetPosition(v int) *LessonUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LessonUpdate) SetNillablePosition(v *int) *LessonUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LessonUpdate) AddPosition(v int) *LessonUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCharacters sets the "characters" field.
func (_u *LessonUpdate) SetCharacters(v []string) *LessonUpdate {
	_u.mutation.SetCharacters(v)
	return _u
}

// AppendCharacters appends value to the "characters" field.
func (_u *LessonUpdate) AppendCharacters(v []string) *LessonUpdate {
	_u.mutation.AppendCharacters(v)
	return _u
}

// ClearCharacters clears the value of the "characters" field.
func (_u *LessonUpdate) ClearCharacters() *LessonUpdate {
	_u.mutation.ClearCharacters()
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdate) Mutation() *LessonMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lesson.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdate) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := lesson.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Lesson.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lesson.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Characters(); ok {
		_spec.SetField(lesson.FieldCharacters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCharacters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldCharacters, value)
		})
	}
	if _u.mutation.CharactersCleared() {
		_spec.ClearField(lesson.FieldCharacters, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonUpdateOne) SetUpdatedAt(v time.Time) *LessonUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LessonUpdateOne) SetCourseID(v string) *LessonUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableCourseID(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdateOne) SetTitle(v string) *LessonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTitle(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LessonUpdateOne) SetPosition(v int) *LessonUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillablePosition(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LessonUpdateOne) AddPosition(v int) *LessonUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCharacters sets the "characters" field.
func (_u *LessonUpdateOne) SetCharacters(v []string) *LessonUpdateOne {
	_u.mutation.SetCharacters(v)
	return _u
}

// AppendCharacters appends value to the "characters" field.
func (_u *LessonUpdateOne) AppendCharacters(v []string) *LessonUpdateOne {
	_u.mutation.AppendCharacters(v)
	return _u
}

// ClearCharacters clears the value of the "characters" field.
func (_u *LessonUpdateOne) ClearCharacters() *LessonUpdateOne {
	_u.mutation.ClearCharacters()
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdateOne) Mutation() *LessonMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lesson entity.
func (_u *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lesson.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdateOne) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := lesson.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Lesson.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
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
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lesson.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Characters(); ok {
		_spec.SetField(lesson.FieldCharacters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCharacters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldCharacters, value)
		})
	}
	if _u.mutation.CharactersCleared() {
		_spec.ClearField(lesson.FieldCharacters, field.TypeJSON)
	}
	_node = &Lesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
