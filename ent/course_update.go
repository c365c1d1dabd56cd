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
	"github.com/kosmi-edu/kosmi/ent/course"
	"github.com/kosmi-edu/kosmi/ent/predicate"
)

// CourseUpdate is the builder for updating Course entities.
type CourseUpdate struct {
	config
	hooks    []Hook
	mutation *CourseMutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdate) Where(ps ...predicate.Course) *CourseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseUpdate) SetUpdatedAt(v time.Time) *CourseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CourseUpdate) SetSlug(v string) *CourseUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableSlug(v *string) *CourseUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *CourseUpdate) SetTopicID(v string) *CourseUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableTopicID(v *string) *CourseUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseUpdate) SetTitle(v string) *CourseUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableTitle(v *string) *CourseUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdate) SetDescription(v string) *CourseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDescription(v *string) *CourseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetGradeMin sets the "grade_min" field.
func (_u *CourseUpdate) SetGradeMin(v int) *CourseUpdate {
	_u.mutation.ResetGradeMin()
	_u.mutation.SetGradeMin(v)
	return _u
}

// SetNillableGradeMin sets the "grade_min" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableGradeMin(v *int) *CourseUpdate {
	if v != nil {
		_u.SetGradeMin(*v)
	}
	return _u
}

// AddGradeMin adds value to the "grade_min" field.
func (_u *CourseUpdate) AddGradeMin(v int) *CourseUpdate {
	_u.mutation.AddGradeMin(v)
	return _u
}

// SetGradeMax sets the "grade_max" field.
func (_u *CourseUpdate) SetGradeMax(v int) *CourseUpdate {
	_u.mutation.ResetGradeMax()
	_u.mutation.SetGradeMax(v)
	return _u
}

// SetNillableGradeMax sets the "grade_max" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableGradeMax(v *int) *CourseUpdate {
	if v != nil {
		_u.SetGradeMax(*v)
	}
	return _u
}

// AddGradeMax adds value to the "grade_max" field.
func (_u *CourseUpdate) AddGradeMax(v int) *CourseUpdate {
	_u.mutation.AddGradeMax(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *CourseUpdate) SetPublished(v bool) *CourseUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *CourseUpdate) SetNillablePublished(v *bool) *CourseUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CourseUpdate) SetPosition(v int) *CourseUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CourseUpdate) SetNillablePosition(v *int) *CourseUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CourseUpdate) AddPosition(v int) *CourseUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdate) Mutation() *CourseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := course.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdate) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := course.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Course.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := course.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "Course.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := course.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Course.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GradeMin(); ok {
		if err := course.GradeMinValidator(v); err != nil {
			return &ValidationError{Name: "grade_min", err: fmt.Errorf(`ent: validator failed for field "Course.grade_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GradeMax(); ok {
		if err := course.GradeMaxValidator(v); err != nil {
			return &ValidationError{Name: "grade_max", err: fmt.Errorf(`ent: validator failed for field "Course.grade_max": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(course.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(course.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeMin(); ok {
		_spec.SetField(course.FieldGradeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeMin(); ok {
		_spec.AddField(course.FieldGradeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GradeMax(); ok {
		_spec.SetField(course.FieldGradeMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeMax(); ok {
		_spec.AddField(course.FieldGradeMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(course.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(course.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(course.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseUpdateOne is the builder for updating a single Course entity.
type CourseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseUpdateOne) SetUpdatedAt(v time.Time) *CourseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CourseUpdateOne) SetSlug(v string) *CourseUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableSlug(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *CourseUpdateOne) SetTopicID(v string) *CourseUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableTopicID(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseUpdateOne) SetTitle(v string) *CourseUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableTitle(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdateOne) SetDescription(v string) *CourseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDescription(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetGradeMin sets the "grade_min" field.
func (_u *CourseUpdateOne) SetGradeMin(v int) *CourseUpdateOne {
	_u.mutation.ResetGradeMin()
	_u.mutation.SetGradeMin(v)
	return _u
}

// SetNillableGradeMin sets the "grade_min" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableGradeMin(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetGradeMin(*v)
	}
	return _u
}

// AddGradeMin adds value to the "grade_min" field.
func (_u *CourseUpdateOne) AddGradeMin(v int) *CourseUpdateOne {
	_u.mutation.AddGradeMin(v)
	return _u
}

// SetGradeMax sets the "grade_max" field.
func (_u *CourseUpdateOne) SetGradeMax(v int) *CourseUpdateOne {
	_u.mutation.ResetGradeMax()
	_u.mutation.SetGradeMax(v)
	return _u
}

// SetNillableGradeMax sets the "grade_max" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableGradeMax(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetGradeMax(*v)
	}
	return _u
}

// AddGradeMax adds value to the "grade_max" field.
func (_u *CourseUpdateOne) AddGradeMax(v int) *CourseUpdateOne {
	_u.mutation.AddGradeMax(v)
	return _u
}

// SetPublished sets the "published" field.
func (_u *CourseUpdateOne) SetPublished(v bool) *CourseUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillablePublished(v *bool) *CourseUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CourseUpdateOne) SetPosition(v int) *CourseUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillablePosition(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CourseUpdateOne) AddPosition(v int) *CourseUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdateOne) Mutation() *CourseMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdateOne) Where(ps ...predicate.Course) *CourseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseUpdateOne) Select(field string, fields ...string) *CourseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Course entity.
func (_u *CourseUpdateOne) Save(ctx context.Context) (*Course, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdateOne) SaveX(ctx context.Context) *Course {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := course.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseUpdateOne) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := course.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Course.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := course.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "Course.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := course.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Course.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GradeMin(); ok {
		if err := course.GradeMinValidator(v); err != nil {
			return &ValidationError{Name: "grade_min", err: fmt.Errorf(`ent: validator failed for field "Course.grade_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GradeMax(); ok {
		if err := course.GradeMaxValidator(v); err != nil {
			return &ValidationError{Name: "grade_max", err: fmt.Errorf(`ent: validator failed for field "Course.grade_max": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseUpdateOne) sqlSave(ctx context.Context) (_node *Course, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Course.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, course.FieldID)
		for _, f := range fields {
			if !course.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != course.FieldID {
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
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(course.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(course.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.GradeMin(); ok {
		_spec.SetField(course.FieldGradeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeMin(); ok {
		_spec.AddField(course.FieldGradeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GradeMax(); ok {
		_spec.SetField(course.FieldGradeMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGradeMax(); ok {
		_spec.AddField(course.FieldGradeMax, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(course.FieldPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(course.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(course.FieldPosition, field.TypeInt, value)
	}
	_node = &Course{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
