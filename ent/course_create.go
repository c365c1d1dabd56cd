// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kosmi-edu/kosmi/ent/course"
)

// CourseCreate is the builder for creating a Course entity.
type CourseCreate struct {
	config
	mutation *CourseMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CourseCreate) SetCreatedAt(v time.Time) *CourseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CourseCreate) SetNillableCreatedAt(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CourseCreate) SetUpdatedAt(v time.Time) *CourseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CourseCreate) SetNillableUpdatedAt(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSlug sets the "slug" field.
func (_c *CourseCreate) SetSlug(v string) *CourseCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *CourseCreate) SetTopicID(v string) *CourseCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CourseCreate) SetTitle(v string) *CourseCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CourseCreate) SetDescription(v string) *CourseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CourseCreate) SetNillableDescription(v *string) *CourseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetGradeMin sets the "grade_min" field.
func (_c *CourseCreate) SetGradeMin(v int) *CourseCreate {
	_c.mutation.SetGradeMin(v)
	return _c
}

// SetNillableGradeMin sets the "grade_min" field if the given value is not nil.
func (_c *CourseCreate) SetNillableGradeMin(v *int) *CourseCreate {
	if v != nil {
		_c.SetGradeMin(*v)
	}
	return _c
}

// SetGradeMax sets the "grade_max" field.
func (_c *CourseCreate) SetGradeMax(v int) *CourseCreate {
	_c.mutation.SetGradeMax(v)
	return _c
}

// SetNillableGradeMax sets the "grade_max" field if the given value is not nil.
func (_c *CourseCreate) SetNillableGradeMax(v *int) *CourseCreate {
	if v != nil {
		_c.SetGradeMax(*v)
	}
	return _c
}

// SetPublished sets the "published" field.
func (_c *CourseCreate) SetPublished(v bool) *CourseCreate {
	_c.mutation.SetPublished(v)
	return _c
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_c *CourseCreate) SetNillablePublished(v *bool) *CourseCreate {
	if v != nil {
		_c.SetPublished(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *CourseCreate) SetPosition(v int) *CourseCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *CourseCreate) SetNillablePosition(v *int) *CourseCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CourseCreate) SetID(v string) *CourseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CourseMutation object of the builder.
func (_c *CourseCreate) Mutation() *CourseMutation {
	return _c.mutation
}

// Save creates the Course in the database.
func (_c *CourseCreate) Save(ctx context.Context) (*Course, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseCreate) SaveX(ctx context.Context) *Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := course.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := course.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := course.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.GradeMin(); !ok {
		v := course.DefaultGradeMin
		_c.mutation.SetGradeMin(v)
	}
	if _, ok := _c.mutation.GradeMax(); !ok {
		v := course.DefaultGradeMax
		_c.mutation.SetGradeMax(v)
	}
	if _, ok := _c.mutation.Published(); !ok {
		v := course.DefaultPublished
		_c.mutation.SetPublished(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := course.DefaultPosition
		_c.mutation.SetPosition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Course.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Course.updated_at"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Course.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := course.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Course.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "Course.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := course.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "Course.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Course.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := course.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Course.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Course.description"`)}
	}
	if _, ok := _c.mutation.GradeMin(); !ok {
		return &ValidationError{Name: "grade_min", err: errors.New(`ent: missing required field "Course.grade_min"`)}
	}
	if v, ok := _c.mutation.GradeMin(); ok {
		if err := course.GradeMinValidator(v); err != nil {
			return &ValidationError{Name: "grade_min", err: fmt.Errorf(`ent: validator failed for field "Course.grade_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GradeMax(); !ok {
		return &ValidationError{Name: "grade_max", err: errors.New(`ent: missing required field "Course.grade_max"`)}
	}
	if v, ok := _c.mutation.GradeMax(); ok {
		if err := course.GradeMaxValidator(v); err != nil {
			return &ValidationError{Name: "grade_max", err: fmt.Errorf(`ent: validator failed for field "Course.grade_max": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Published(); !ok {
		return &ValidationError{Name: "published", err: errors.New(`ent: missing required field "Course.published"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Course.position"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := course.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Course.id": %w`, err)}
		}
	}
	return nil
}

func (_c *CourseCreate) sqlSave(ctx context.Context) (*Course, error) {
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
			return nil, fmt.Errorf("unexpected Course.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CourseCreate) createSpec() (*Course, *sqlgraph.CreateSpec) {
	var (
		_node = &Course{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(course.Table, sqlgraph.NewFieldSpec(course.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(course.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(course.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(course.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.GradeMin(); ok {
		_spec.SetField(course.FieldGradeMin, field.TypeInt, value)
		_node.GradeMin = value
	}
	if value, ok := _c.mutation.GradeMax(); ok {
		_spec.SetField(course.FieldGradeMax, field.TypeInt, value)
		_node.GradeMax = value
	}
	if value, ok := _c.mutation.Published(); ok {
		_spec.SetField(course.FieldPublished, field.TypeBool, value)
		_node.Published = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(course.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	return _node, _spec
}

// CourseCreateBulk is the builder for creating many Course entities in bulk.
type CourseCreateBulk struct {
	config
	err      error
	builders []*CourseCreate
}

// Save creates the Course entities in the database.
func (_c *CourseCreateBulk) Save(ctx context.Context) ([]*Course, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Course, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseMutation)
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
func (_c *CourseCreateBulk) SaveX(ctx context.Context) []*Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
