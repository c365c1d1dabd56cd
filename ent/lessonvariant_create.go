// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kosmi-edu/kosmi/ent/lessonvariant"
)

// LessonVariantCreate is the builder for creating a LessonVariant entity.
type LessonVariantCreate struct {
	config
	mutation *LessonVariantMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *LessonVariantCreate) SetCreatedAt(v time.Time) *LessonVariantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LessonVariantCreate) SetNillableCreatedAt(v *time.Time) *LessonVariantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LessonVariantCreate) SetUpdatedAt(v time.Time) *LessonVariantCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LessonVariantCreate) SetNillableUpdatedAt(v *time.Time) *LessonVariantCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *LessonVariantCreate) SetLessonID(v string) *LessonVariantCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetTargetGrade sets the "target_grade" field.
func (_c *LessonVariantCreate) SetTargetGrade(v int) *LessonVariantCreate {
	_c.mutation.SetTargetGrade(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *LessonVariantCreate) SetPosition(v int) *LessonVariantCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *LessonVariantCreate) SetNillablePosition(v *int) *LessonVariantCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetIntroText sets the "intro_text" field.
func (_c *LessonVariantCreate) SetIntroText(v string) *LessonVariantCreate {
	_c.mutation.SetIntroText(v)
	return _c
}

// SetNillableIntroText sets the "intro_text" field if the given value is not nil.
func (_c *LessonVariantCreate) SetNillableIntroText(v *string) *LessonVariantCreate {
	if v != nil {
		_c.SetIntroText(*v)
	}
	return _c
}

// SetCoreContent sets the "core_content" field.
func (_c *LessonVariantCreate) SetCoreContent(v string) *LessonVariantCreate {
	_c.mutation.SetCoreContent(v)
	return _c
}

// SetNillableCoreContent sets the "core_content" field if the given value is not nil.
func (_c *LessonVariantCreate) SetNillableCoreContent(v *string) *LessonVariantCreate {
	if v != nil {
		_c.SetCoreContent(*v)
	}
	return _c
}

// SetCoreImage sets the "core_image" field.
func (_c *LessonVariantCreate) SetCoreImage(v string) *LessonVariantCreate {
	_c.mutation.SetCoreImage(v)
	return _c
}

// SetNillableCoreImage sets the "core_image" field if the given value is not nil.
func (_c *LessonVariantCreate) SetNillableCoreImage(v *string) *LessonVariantCreate {
	if v != nil {
		_c.SetCoreImage(*v)
	}
	return _c
}

// SetCoreImageCredit sets the "core_image_credit" field.
func (_c *LessonVariantCreate) SetCoreImageCredit(v string) *LessonVariantCreate {
	_c.mutation.SetCoreImageCredit(v)
	return _c
}

// SetNillableCoreImageCredit sets the "core_image_credit" field if the given value is not nil.
func (_c *LessonVariantCreate) SetNillableCoreImageCredit(v *string) *LessonVariantCreate {
	if v != nil {
		_c.SetCoreImageCredit(*v)
	}
	return _c
}

// SetDepthContent sets the "depth_content" field.
func (_c *LessonVariantCreate) SetDepthContent(v string) *LessonVariantCreate {
	_c.mutation.SetDepthContent(v)
	return _c
}

// SetNillableDepthContent sets the "depth_content" field if the given value is not nil.
func (_c *LessonVariantCreate) SetNillableDepthContent(v *string) *LessonVariantCreate {
	if v != nil {
		_c.SetDepthContent(*v)
	}
	return _c
}

// SetDepthImage sets the "depth_image" field.
func (_c *LessonVariantCreate) SetDepthImage(v string) *LessonVariantCreate {
	_c.mutation.SetDepthImage(v)
	return _c
}

// SetNillableDepthImage sets the "depth_image" field if the given value is not nil.
func (_c *LessonVariantCreate) SetNillableDepthImage(v *string) *LessonVariantCreate {
	if v != nil {
		_c.SetDepthImage(*v)
	}
	return _c
}

// SetDepthImageCredit sets the "depth_image_credit" field.
func (_c *LessonVariantCreate) SetDepthImageCredit(v string) *LessonVariantCreate {
	_c.mutation.SetDepthImageCredit(v)
	return _c
}

// SetNillableDepthImageCredit sets the "depth_image_credit" field if the given value is not nil.
func (_c *LessonVariantCreate) SetNillableDepthImageCredit(v *string) *LessonVariantCreate {
	if v != nil {
		_c.SetDepthImageCredit(*v)
	}
	return _c
}

// SetReflectionQuestion sets the "reflection_question" field.
func (_c *LessonVariantCreate) SetReflectionQuestion(v string) *LessonVariantCreate {
	_c.mutation.SetReflectionQuestion(v)
	return _c
}

// SetNillableReflectionQuestion sets the "reflection_question" field if the given value is not nil.
func (_c *LessonVariantCreate) SetNillableReflectionQuestion(v *string) *LessonVariantCreate {
	if v != nil {
		_c.SetReflectionQuestion(*v)
	}
	return _c
}

// SetPointsBase sets the "points_base" field.
func (_c *LessonVariantCreate) SetPointsBase(v int) *LessonVariantCreate {
	_c.mutation.SetPointsBase(v)
	return _c
}

// SetNillablePointsBase sets the "points_base" field if the given value is not nil.
func (_c *LessonVariantCreate) SetNillablePointsBase(v *int) *LessonVariantCreate {
	if v != nil {
		_c.SetPointsBase(*v)
	}
	return _c
}

// SetPointsDepthBonus sets the "points_depth_bonus" field.
func (_c *LessonVariantCreate) SetPointsDepthBonus(v int) *LessonVariantCreate {
	_c.mutation.SetPointsDepthBonus(v)
	return _c
}

// SetNillablePointsDepthBonus sets the "points_depth_bonus" field if the given value is not nil.
func (_c *LessonVariantCreate) SetNillablePointsDepthBonus(v *int) *LessonVariantCreate {
	if v != nil {
		_c.SetPointsDepthBonus(*v)
	}
	return _c
}

// Mutation returns the LessonVariantMutation object of the builder.
func (_c *LessonVariantCreate) Mutation() *LessonVariantMutation {
	return _c.mutation
}

// Save creates the LessonVariant in the database.
func (_c *LessonVariantCreate) Save(ctx context.Context) (*LessonVariant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonVariantCreate) SaveX(ctx context.Context) *LessonVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonVariantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonVariantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonVariantCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lessonvariant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lessonvariant.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := lessonvariant.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.IntroText(); !ok {
		v := lessonvariant.DefaultIntroText
		_c.mutation.SetIntroText(v)
	}
	if _, ok := _c.mutation.CoreContent(); !ok {
		v := lessonvariant.DefaultCoreContent
		_c.mutation.SetCoreContent(v)
	}
	if _, ok := _c.mutation.CoreImage(); !ok {
		v := lessonvariant.DefaultCoreImage
		_c.mutation.SetCoreImage(v)
	}
	if _, ok := _c.mutation.CoreImageCredit(); !ok {
		v := lessonvariant.DefaultCoreImageCredit
		_c.mutation.SetCoreImageCredit(v)
	}
	if _, ok := _c.mutation.DepthContent(); !ok {
		v := lessonvariant.DefaultDepthContent
		_c.mutation.SetDepthContent(v)
	}
	if _, ok := _c.mutation.DepthImage(); !ok {
		v := lessonvariant.DefaultDepthImage
		_c.mutation.SetDepthImage(v)
	}
	if _, ok := _c.mutation.DepthImageCredit(); !ok {
		v := lessonvariant.DefaultDepthImageCredit
		_c.mutation.SetDepthImageCredit(v)
	}
	if _, ok := _c.mutation.ReflectionQuestion(); !ok {
		v := lessonvariant.DefaultReflectionQuestion
		_c.mutation.SetReflectionQuestion(v)
	}
	if _, ok := _c.mutation.PointsBase(); !ok {
		v := lessonvariant.DefaultPointsBase
		_c.mutation.SetPointsBase(v)
	}
	if _, ok := _c.mutation.PointsDepthBonus(); !ok {
		v := lessonvariant.DefaultPointsDepthBonus
		_c.mutation.SetPointsDepthBonus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonVariantCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LessonVariant.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LessonVariant.updated_at"`)}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonVariant.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := lessonvariant.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonVariant.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetGrade(); !ok {
		return &ValidationError{Name: "target_grade", err: errors.New(`ent: missing required field "LessonVariant.target_grade"`)}
	}
	if v, ok := _c.mutation.TargetGrade(); ok {
		if err := lessonvariant.TargetGradeValidator(v); err != nil {
			return &ValidationError{Name: "target_grade", err: fmt.Errorf(`ent: validator failed for field "LessonVariant.target_grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "LessonVariant.position"`)}
	}
	if _, ok := _c.mutation.IntroText(); !ok {
		return &ValidationError{Name: "intro_text", err: errors.New(`ent: missing required field "LessonVariant.intro_text"`)}
	}
	if _, ok := _c.mutation.CoreContent(); !ok {
		return &ValidationError{Name: "core_content", err: errors.New(`ent: missing required field "LessonVariant.core_content"`)}
	}
	if _, ok := _c.mutation.CoreImage(); !ok {
		return &ValidationError{Name: "core_image", err: errors.New(`ent: missing required field "LessonVariant.core_image"`)}
	}
	if _, ok := _c.mutation.CoreImageCredit(); !ok {
		return &ValidationError{Name: "core_image_credit", err: errors.New(`ent: missing required field "LessonVariant.core_image_credit"`)}
	}
	if _, ok := _c.mutation.DepthContent(); !ok {
		return &ValidationError{Name: "depth_content", err: errors.New(`ent: missing required field "LessonVariant.depth_content"`)}
	}
	if _, ok := _c.mutation.DepthImage(); !ok {
		return &ValidationError{Name: "depth_image", err: errors.New(`ent: missing required field "LessonVariant.depth_image"`)}
	}
	if _, ok := _c.mutation.DepthImageCredit(); !ok {
		return &ValidationError{Name: "depth_image_credit", err: errors.New(`ent: missing required field "LessonVariant.depth_image_credit"`)}
	}
	if _, ok := _c.mutation.ReflectionQuestion(); !ok {
		return &ValidationError{Name: "reflection_question", err: errors.New(`ent: missing required field "LessonVariant.reflection_question"`)}
	}
	if _, ok := _c.mutation.PointsBase(); !ok {
		return &ValidationError{Name: "points_base", err: errors.New(`ent: missing required field "LessonVariant.points_base"`)}
	}
	if v, ok := _c.mutation.PointsBase(); ok {
		if err := lessonvariant.PointsBaseValidator(v); err != nil {
			return &ValidationError{Name: "points_base", err: fmt.Errorf(`ent: validator failed for field "LessonVariant.points_base": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PointsDepthBonus(); !ok {
		return &ValidationError{Name: "points_depth_bonus", err: errors.New(`ent: missing required field "LessonVariant.points_depth_bonus"`)}
	}
	if v, ok := _c.mutation.PointsDepthBonus(); ok {
		if err := lessonvariant.PointsDepthBonusValidator(v); err != nil {
			return &ValidationError{Name: "points_depth_bonus", err: fmt.Errorf(`ent: validator failed for field "LessonVariant.points_depth_bonus": %w`, err)}
		}
	}
	return nil
}

func (_c *LessonVariantCreate) sqlSave(ctx context.Context) (*LessonVariant, error) {
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

func (_c *LessonVariantCreate) createSpec() (*LessonVariant, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonVariant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonvariant.Table, sqlgraph.NewFieldSpec(lessonvariant.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lessonvariant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonvariant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(lessonvariant.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.TargetGrade(); ok {
		_spec.SetField(lessonvariant.FieldTargetGrade, field.TypeInt, value)
		_node.TargetGrade = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(lessonvariant.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.IntroText(); ok {
		_spec.SetField(lessonvariant.FieldIntroText, field.TypeString, value)
		_node.IntroText = value
	}
	if value, ok := _c.mutation.CoreContent(); ok {
		_spec.SetField(lessonvariant.FieldCoreContent, field.TypeString, value)
		_node.CoreContent = value
	}
	if value, ok := _c.mutation.CoreImage(); ok {
		_spec.SetField(lessonvariant.FieldCoreImage, field.TypeString, value)
		_node.CoreImage = value
	}
	if value, ok := _c.mutation.CoreImageCredit(); ok {
		_spec.SetField(lessonvariant.FieldCoreImageCredit, field.TypeString, value)
		_node.CoreImageCredit = value
	}
	if value, ok := _c.mutation.DepthContent(); ok {
		_spec.SetField(lessonvariant.FieldDepthContent, field.TypeString, value)
		_node.DepthContent = value
	}
	if value, ok := _c.mutation.DepthImage(); ok {
		_spec.SetField(lessonvariant.FieldDepthImage, field.TypeString, value)
		_node.DepthImage = value
	}
	if value, ok := _c.mutation.DepthImageCredit(); ok {
		_spec.SetField(lessonvariant.FieldDepthImageCredit, field.TypeString, value)
		_node.DepthImageCredit = value
	}
	if value, ok := _c.mutation.ReflectionQuestion(); ok {
		_spec.SetField(lessonvariant.FieldReflectionQuestion, field.TypeString, value)
		_node.ReflectionQuestion = value
	}
	if value, ok := _c.mutation.PointsBase(); ok {
		_spec.SetField(lessonvariant.FieldPointsBase, field.TypeInt, value)
		_node.PointsBase = value
	}
	if value, ok := _c.mutation.PointsDepthBonus(); ok {
		_spec.SetField(lessonvariant.FieldPointsDepthBonus, field.TypeInt, value)
		_node.PointsDepthBonus = value
	}
	return _node, _spec
}

// LessonVariantCreateBulk is the builder for creating many LessonVariant entities in bulk.
type LessonVariantCreateBulk struct {
	config
	err      error
	builders []*LessonVariantCreate
}

// Save creates the LessonVariant entities in the database.
func (_c *LessonVariantCreateBulk) Save(ctx context.Context) ([]*LessonVariant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonVariant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonVariantMutation)
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
func (_c *LessonVariantCreateBulk) SaveX(ctx context.Context) []*LessonVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonVariantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonVariantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
