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
	"github.com/kosmi-edu/kosmi/ent/lessonvariant"
	"github.com/kosmi-edu/kosmi/ent/predicate"
)

// LessonVariantUpdate is the builder for updating LessonVariant entities.
type LessonVariantUpdate struct {
	config
	hooks    []Hook
	mutation *LessonVariantMutation
}

// Where appends a list predicates to the LessonVariantUpdate builder.
func (_u *LessonVariantUpdate) Where(ps ...predicate.LessonVariant) *LessonVariantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonVariantUpdate) SetUpdatedAt(v time.Time) *LessonVariantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonVariantUpdate) SetLessonID(v string) *LessonVariantUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonVariantUpdate) SetNillableLessonID(v *string) *LessonVariantUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetTargetGrade sets the "target_grade" field.
func (_u *LessonVariantUpdate) SetTargetGrade(v int) *LessonVariantUpdate {
	_u.mutation.ResetTargetGrade()
	_u.mutation.SetTargetGrade(v)
	return _u
}

// SetNillableTargetGrade sets the "target_grade" field if the given value is not nil.
func (_u *LessonVariantUpdate) SetNillableTargetGrade(v *int) *LessonVariantUpdate {
	if v != nil {
		_u.SetTargetGrade(*v)
	}
	return _u
}

// AddTargetGrade adds value to the "target_grade" field.
func (_u *LessonVariantUpdate) AddTargetGrade(v int) *LessonVariantUpdate {
	_u.mutation.AddTargetGrade(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *LessonVariantUpdate) SetPosition(v int) *LessonVariantUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LessonVariantUpdate) SetNillablePosition(v *int) *LessonVariantUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LessonVariantUpdate) AddPosition(v int) *LessonVariantUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetIntroText sets the "intro_text" field.
func (_u *LessonVariantUpdate) SetIntroText(v string) *LessonVariantUpdate {
	_u.mutation.SetIntroText(v)
	return _u
}

// SetNillableIntroText sets the "intro_text" field if the given value is not nil.
func (_u *LessonVariantUpdate) SetNillableIntroText(v *string) *LessonVariantUpdate {
	if v != nil {
		_u.SetIntroText(*v)
	}
	return _u
}

// SetCoreContent sets the "core_content" field.
func (_u *LessonVariantUpdate) SetCoreContent(v string) *LessonVariantUpdate {
	_u.mutation.SetCoreContent(v)
	return _u
}

// SetNillableCoreContent sets the "core_content" field if the given value is not nil.
func (_u *LessonVariantUpdate) SetNillableCoreContent(v *string) *LessonVariantUpdate {
	if v != nil {
		_u.SetCoreContent(*v)
	}
	return _u
}

// SetCoreImage sets the "core_image" field.
func (_u *LessonVariantUpdate) SetCoreImage(v string) *LessonVariantUpdate {
	_u.mutation.SetCoreImage(v)
	return _u
}

// SetNillableCoreImage sets the "core_image" field if the given value is not nil.
func (_u *LessonVariantUpdate) SetNillableCoreImage(v *string) *LessonVariantUpdate {
	if v != nil {
		_u.SetCoreImage(*v)
	}
	return _u
}

// SetCoreImageCredit sets the "core_image_credit" field.
func (_u *LessonVariantUpdate) SetCoreImageCredit(v string) *LessonVariantUpdate {
	_u.mutation.SetCoreImageCredit(v)
	return _u
}

// SetNillableCoreImageCredit sets the "core_image_credit" field if the given value is not nil.
func (_u *LessonVariantUpdate) SetNillableCoreImageCredit(v *string) *LessonVariantUpdate {
	if v != nil {
		_u.SetCoreImageCredit(*v)
	}
	return _u
}

// SetDepthContent sets the "depth_content" field.
func (_u *LessonVariantUpdate) SetDepthContent(v string) *LessonVariantUpdate {
	_u.mutation.SetDepthContent(v)
	return _u
}

// SetNillableDepthContent sets the "depth_content" field if the given value is not nil.
func (_u *LessonVariantUpdate) SetNillableDepthContent(v *string) *LessonVariantUpdate {
	if v != nil {
		_u.SetDepthContent(*v)
	}
	return _u
}

// SetDepthImage sets the "depth_image" field.
func (_u *LessonVariantUpdate) SetDepthImage(v string) *LessonVariantUpdate {
	_u.mutation.SetDepthImage(v)
	return _u
}

// SetNillableDepthImage sets the "depth_image" field if the given value is not nil.
func (_u *LessonVariantUpdate) SetNillableDepthImage(v *string) *LessonVariantUpdate {
	if v != nil {
		_u.SetDepthImage(*v)
	}
	return _u
}

// SetDepthImageCredit sets the "depth_image_credit" field.
func (_u *LessonVariantUpdate) SetDepthImageCredit(v string) *LessonVariantUpdate {
	_u.mutation.SetDepthImageCredit(v)
	return _u
}

// SetNillableDepthImageCredit sets the "depth_image_credit" field if the given value is not nil.
func (_u *LessonVariantUpdate) SetNillableDepthImageCredit(v *string) *LessonVariantUpdate {
	if v != nil {
		_u.SetDepthImageCredit(*v)
	}
	return _u
}

// SetReflectionQuestion sets the "reflection_question" field.
func (_u *LessonVariantUpdate) SetReflectionQuestion(v string) *LessonVariantUpdate {
	_u.mutation.SetReflectionQuestion(v)
	return _u
}

// SetNillableReflectionQuestion sets the "reflection_question" field if the given value is not nil.
func (_u *LessonVariantUpdate) SetNillableReflectionQuestion(v *string) *LessonVariantUpdate {
	if v != nil {
		_u.SetReflectionQuestion(*v)
	}
	return _u
}

// SetPointsBase sets the "points_base" field.
func (_u *LessonVariantUpdate) SetPointsBase(v int) *LessonVariantUpdate {
	_u.mutation.ResetPointsBase()
	_u.mutation.SetPointsBase(v)
	return _u
}

// SetNillablePointsBase sets the "points_base" field if the given value is not nil.
func (_u *LessonVariantUpdate) SetNillablePointsBase(v *int) *LessonVariantUpdate {
	if v != nil {
		_u.SetPointsBase(*v)
	}
	return _u
}

// AddPointsBase adds value to the "points_base" field.
func (_u *LessonVariantUpdate) AddPointsBase(v int) *LessonVariantUpdate {
	_u.mutation.AddPointsBase(v)
	return _u
}

// SetPointsDepthBonus sets the "points_depth_bonus" field.
func (_u *LessonVariantUpdate) SetPointsDepthBonus(v int) *LessonVariantUpdate {
	_u.mutation.ResetPointsDepthBonus()
	_u.mutation.SetPointsDepthBonus(v)
	return _u
}

// SetNillablePointsDepthBonus sets the "points_depth_bonus" field if the given value is not nil.
func (_u *LessonVariantUpdate) SetNillablePointsDepthBonus(v *int) *LessonVariantUpdate {
	if v != nil {
		_u.SetPointsDepthBonus(*v)
	}
	return _u
}

// AddPointsDepthBonus adds value to the "points_depth_bonus" field.
func (_u *LessonVariantUpdate) AddPointsDepthBonus(v int) *LessonVariantUpdate {
	_u.mutation.AddPointsDepthBonus(v)
	return _u
}

// Mutation returns the LessonVariantMutation object of the builder.
func (_u *LessonVariantUpdate) Mutation() *LessonVariantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonVariantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonVariantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonVariantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonVariantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonVariantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonvariant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonVariantUpdate) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessonvariant.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonVariant.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetGrade(); ok {
		if err := lessonvariant.TargetGradeValidator(v); err != nil {
			return &ValidationError{Name: "target_grade", err: fmt.Errorf(`ent: validator failed for field "LessonVariant.target_grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PointsBase(); ok {
		if err := lessonvariant.PointsBaseValidator(v); err != nil {
			return &ValidationError{Name: "points_base", err: fmt.Errorf(`ent: validator failed for field "LessonVariant.points_base": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PointsDepthBonus(); ok {
		if err := lessonvariant.PointsDepthBonusValidator(v); err != nil {
			return &ValidationError{Name: "points_depth_bonus", err: fmt.Errorf(`ent: validator failed for field "LessonVariant.points_depth_bonus": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonVariantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonvariant.Table, lessonvariant.Columns, sqlgraph.NewFieldSpec(lessonvariant.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonvariant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessonvariant.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetGrade(); ok {
		_spec.SetField(lessonvariant.FieldTargetGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetGrade(); ok {
		_spec.AddField(lessonvariant.FieldTargetGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(lessonvariant.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(lessonvariant.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntroText(); ok {
		_spec.SetField(lessonvariant.FieldIntroText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoreContent(); ok {
		_spec.SetField(lessonvariant.FieldCoreContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoreImage(); ok {
		_spec.SetField(lessonvariant.FieldCoreImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoreImageCredit(); ok {
		_spec.SetField(lessonvariant.FieldCoreImageCredit, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepthContent(); ok {
		_spec.SetField(lessonvariant.FieldDepthContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepthImage(); ok {
		_spec.SetField(lessonvariant.FieldDepthImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepthImageCredit(); ok {
		_spec.SetField(lessonvariant.FieldDepthImageCredit, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReflectionQuestion(); ok {
		_spec.SetField(lessonvariant.FieldReflectionQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointsBase(); ok {
		_spec.SetField(lessonvariant.FieldPointsBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsBase(); ok {
		_spec.AddField(lessonvariant.FieldPointsBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsDepthBonus(); ok {
		_spec.SetField(lessonvariant.FieldPointsDepthBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsDepthBonus(); ok {
		_spec.AddField(lessonvariant.FieldPointsDepthBonus, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonVariantUpdateOne is the builder for updating a single LessonVariant entity.
type LessonVariantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonVariantMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonVariantUpdateOne) SetUpdatedAt(v time.Time) *LessonVariantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonVariantUpdateOne) SetLessonID(v string) *LessonVariantUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonVariantUpdateOne) SetNillableLessonID(v *string) *LessonVariantUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetTargetGrade sets the "target_grade" field.
func (_u *LessonVariantUpdateOne) SetTargetGrade(v int) *LessonVariantUpdateOne {
	_u.mutation.ResetTargetGrade()
	_u.mutation.SetTargetGrade(v)
	return _u
}

// SetNillableTargetGrade sets the "target_grade" field if the given value is not nil.
func (_u *LessonVariantUpdateOne) SetNillableTargetGrade(v *int) *LessonVariantUpdateOne {
	if v != nil {
		_u.SetTargetGrade(*v)
	}
	return _u
}

// AddTargetGrade adds value to the "target_grade" field.
func (_u *LessonVariantUpdateOne) AddTargetGrade(v int) *LessonVariantUpdateOne {
	_u.mutation.AddTargetGrade(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *LessonVariantUpdateOne) SetPosition(v int) *LessonVariantUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LessonVariantUpdateOne) SetNillablePosition(v *int) *LessonVariantUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LessonVariantUpdateOne) AddPosition(v int) *LessonVariantUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetIntroText sets the "intro_text" field.
func (_u *LessonVariantUpdateOne) SetIntroText(v string) *LessonVariantUpdateOne {
	_u.mutation.SetIntroText(v)
	return _u
}

// SetNillableIntroText sets the "intro_text" field if the given value is not nil.
func (_u *LessonVariantUpdateOne) SetNillableIntroText(v *string) *LessonVariantUpdateOne {
	if v != nil {
		_u.SetIntroText(*v)
	}
	return _u
}

// SetCoreContent sets the "core_content" field.
func (_u *LessonVariantUpdateOne) SetCoreContent(v string) *LessonVariantUpdateOne {
	_u.mutation.SetCoreContent(v)
	return _u
}

// SetNillableCoreContent sets the "core_content" field if the given value is not nil.
func (_u *LessonVariantUpdateOne) SetNillableCoreContent(v *string) *LessonVariantUpdateOne {
	if v != nil {
		_u.SetCoreContent(*v)
	}
	return _u
}

// SetCoreImage sets the "core_image" field.
func (_u *LessonVariantUpdateOne) SetCoreImage(v string) *LessonVariantUpdateOne {
	_u.mutation.SetCoreImage(v)
	return _u
}

// SetNillableCoreImage sets the "core_image" field if the given value is not nil.
func (_u *LessonVariantUpdateOne) SetNillableCoreImage(v *string) *LessonVariantUpdateOne {
	if v != nil {
		_u.SetCoreImage(*v)
	}
	return _u
}

// SetCoreImageCredit sets the "core_image_credit" field.
func (_u *LessonVariantUpdateOne) SetCoreImageCredit(v string) *LessonVariantUpdateOne {
	_u.mutation.SetCoreImageCredit(v)
	return _u
}

// SetNillableCoreImageCredit sets the "core_image_credit" field if the given value is not nil.
func (_u *LessonVariantUpdateOne) SetNillableCoreImageCredit(v *string) *LessonVariantUpdateOne {
	if v != nil {
		_u.SetCoreImageCredit(*v)
	}
	return _u
}

// SetDepthContent sets the "depth_content" field.
func (_u *LessonVariantUpdateOne) SetDepthContent(v string) *LessonVariantUpdateOne {
	_u.mutation.SetDepthContent(v)
	return _u
}

// SetNillableDepthContent sets the "depth_content" field if the given value is not nil.
func (_u *LessonVariantUpdateOne) SetNillableDepthContent(v *string) *LessonVariantUpdateOne {
	if v != nil {
		_u.SetDepthContent(*v)
	}
	return _u
}

// SetDepthImage sets the "depth_image" field.
func (_u *LessonVariantUpdateOne) SetDepthImage(v string) *LessonVariantUpdateOne {
	_u.mutation.SetDepthImage(v)
	return _u
}

// SetNillableDepthImage sets the "depth_image" field if the given value is not nil.
func (_u *LessonVariantUpdateOne) SetNillableDepthImage(v *string) *LessonVariantUpdateOne {
	if v != nil {
		_u.SetDepthImage(*v)
	}
	return _u
}

// SetDepthImageCredit sets the "depth_image_credit" field.
func (_u *LessonVariantUpdateOne) SetDepthImageCredit(v string) *LessonVariantUpdateOne {
	_u.mutation.SetDepthImageCredit(v)
	return _u
}

// SetNillableDepthImageCredit sets the "depth_image_credit" field if the given value is not nil.
func (_u *LessonVariantUpdateOne) SetNillableDepthImageCredit(v *string) *LessonVariantUpdateOne {
	if v != nil {
		_u.SetDepthImageCredit(*v)
	}
	return _u
}

// SetReflectionQuestion sets the "reflection_question" field.
func (_u *LessonVariantUpdateOne) SetReflectionQuestion(v string) *LessonVariantUpdateOne {
	_u.mutation.SetReflectionQuestion(v)
	return _u
}

// SetNillableReflectionQuestion sets the "reflection_question" field if the given value is not nil.
func (_u *LessonVariantUpdateOne) SetNillableReflectionQuestion(v *string) *LessonVariantUpdateOne {
	if v != nil {
		_u.SetReflectionQuestion(*v)
	}
	return _u
}

// SetPointsBase sets the "points_base" field.
func (_u *LessonVariantUpdateOne) SetPointsBase(v int) *LessonVariantUpdateOne {
	_u.mutation.ResetPointsBase()
	_u.mutation.SetPointsBase(v)
	return _u
}

// SetNillablePointsBase sets the "points_base" field if the given value is not nil.
func (_u *LessonVariantUpdateOne) SetNillablePointsBase(v *int) *LessonVariantUpdateOne {
	if v != nil {
		_u.SetPointsBase(*v)
	}
	return _u
}

// AddPointsBase adds value to the "points_base" field.
func (_u *LessonVariantUpdateOne) AddPointsBase(v int) *LessonVariantUpdateOne {
	_u.mutation.AddPointsBase(v)
	return _u
}

// SetPointsDepthBonus sets the "points_depth_bonus" field.
func (_u *LessonVariantUpdateOne) SetPointsDepthBonus(v int) *LessonVariantUpdateOne {
	_u.mutation.ResetPointsDepthBonus()
	_u.mutation.SetPointsDepthBonus(v)
	return _u
}

// SetNillablePointsDepthBonus sets the "points_depth_bonus" field if the given value is not nil.
func (_u *LessonVariantUpdateOne) SetNillablePointsDepthBonus(v *int) *LessonVariantUpdateOne {
	if v != nil {
		_u.SetPointsDepthBonus(*v)
	}
	return _u
}

// AddPointsDepthBonus adds value to the "points_depth_bonus" field.
func (_u *LessonVariantUpdateOne) AddPointsDepthBonus(v int) *LessonVariantUpdateOne {
	_u.mutation.AddPointsDepthBonus(v)
	return _u
}

// Mutation returns the LessonVariantMutation object of the builder.
func (_u *LessonVariantUpdateOne) Mutation() *LessonVariantMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonVariantUpdate builder.
func (_u *LessonVariantUpdateOne) Where(ps ...predicate.LessonVariant) *LessonVariantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonVariantUpdateOne) Select(field string, fields ...string) *LessonVariantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonVariant entity.
func (_u *LessonVariantUpdateOne) Save(ctx context.Context) (*LessonVariant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonVariantUpdateOne) SaveX(ctx context.Context) *LessonVariant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonVariantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonVariantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonVariantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonvariant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonVariantUpdateOne) check() error {
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessonvariant.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonVariant.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetGrade(); ok {
		if err := lessonvariant.TargetGradeValidator(v); err != nil {
			return &ValidationError{Name: "target_grade", err: fmt.Errorf(`ent: validator failed for field "LessonVariant.target_grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PointsBase(); ok {
		if err := lessonvariant.PointsBaseValidator(v); err != nil {
			return &ValidationError{Name: "points_base", err: fmt.Errorf(`ent: validator failed for field "LessonVariant.points_base": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PointsDepthBonus(); ok {
		if err := lessonvariant.PointsDepthBonusValidator(v); err != nil {
			return &ValidationError{Name: "points_depth_bonus", err: fmt.Errorf(`ent: validator failed for field "LessonVariant.points_depth_bonus": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonVariantUpdateOne) sqlSave(ctx context.Context) (_node *LessonVariant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonvariant.Table, lessonvariant.Columns, sqlgraph.NewFieldSpec(lessonvariant.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonVariant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonvariant.FieldID)
		for _, f := range fields {
			if !lessonvariant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonvariant.FieldID {
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
		_spec.SetField(lessonvariant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessonvariant.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetGrade(); ok {
		_spec.SetField(lessonvariant.FieldTargetGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetGrade(); ok {
		_spec.AddField(lessonvariant.FieldTargetGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(lessonvariant.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(lessonvariant.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntroText(); ok {
		_spec.SetField(lessonvariant.FieldIntroText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoreContent(); ok {
		_spec.SetField(lessonvariant.FieldCoreContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoreImage(); ok {
		_spec.SetField(lessonvariant.FieldCoreImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.CoreImageCredit(); ok {
		_spec.SetField(lessonvariant.FieldCoreImageCredit, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepthContent(); ok {
		_spec.SetField(lessonvariant.FieldDepthContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepthImage(); ok {
		_spec.SetField(lessonvariant.FieldDepthImage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DepthImageCredit(); ok {
		_spec.SetField(lessonvariant.FieldDepthImageCredit, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReflectionQuestion(); ok {
		_spec.SetField(lessonvariant.FieldReflectionQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointsBase(); ok {
		_spec.SetField(lessonvariant.FieldPointsBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsBase(); ok {
		_spec.AddField(lessonvariant.FieldPointsBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsDepthBonus(); ok {
		_spec.SetField(lessonvariant.FieldPointsDepthBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsDepthBonus(); ok {
		_spec.AddField(lessonvariant.FieldPointsDepthBonus, field.TypeInt, value)
	}
	_node = &LessonVariant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
