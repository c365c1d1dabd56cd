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
	"github.com/google/uuid"
	"github.com/kosmi-edu/kosmi/ent/predicate"
	"github.com/kosmi-edu/kosmi/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *ProfileUpdate) SetRole(v string) *ProfileUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableRole(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdate) SetName(v string) *ProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ProfileUpdate) SetDisplayName(v string) *ProfileUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDisplayName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ProfileUpdate) SetGrade(v int) *ProfileUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableGrade(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *ProfileUpdate) AddGrade(v int) *ProfileUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *ProfileUpdate) ClearGrade() *ProfileUpdate {
	_u.mutation.ClearGrade()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *ProfileUpdate) SetParentID(v uuid.UUID) *ProfileUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableParentID(v *uuid.UUID) *ProfileUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *ProfileUpdate) ClearParentID() *ProfileUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetPointsTotal sets the "points_total" field.
func (_u *ProfileUpdate) SetPointsTotal(v int) *ProfileUpdate {
	_u.mutation.ResetPointsTotal()
	_u.mutation.SetPointsTotal(v)
	return _u
}

// SetNillablePointsTotal sets the "points_total" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePointsTotal(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetPointsTotal(*v)
	}
	return _u
}

// AddPointsTotal adds value to the "points_total" field.
func (_u *ProfileUpdate) AddPointsTotal(v int) *ProfileUpdate {
	_u.mutation.AddPointsTotal(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := profile.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Profile.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := profile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Profile.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := profile.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Profile.grade": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(profile.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(profile.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(profile.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(profile.FieldGrade, field.TypeInt, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(profile.FieldGrade, field.TypeInt)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(profile.FieldParentID, field.TypeUUID, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(profile.FieldParentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PointsTotal(); ok {
		_spec.SetField(profile.FieldPointsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsTotal(); ok {
		_spec.AddField(profile.FieldPointsTotal, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *ProfileUpdateOne) SetRole(v string) *ProfileUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableRole(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdateOne) SetName(v string) *ProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ProfileUpdateOne) SetDisplayName(v string) *ProfileUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDisplayName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ProfileUpdateOne) SetGrade(v int) *ProfileUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableGrade(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *ProfileUpdateOne) AddGrade(v int) *ProfileUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *ProfileUpdateOne) ClearGrade() *ProfileUpdateOne {
	_u.mutation.ClearGrade()
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *ProfileUpdateOne) SetParentID(v uuid.UUID) *ProfileUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableParentID(v *uuid.UUID) *ProfileUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *ProfileUpdateOne) ClearParentID() *ProfileUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetPointsTotal sets the "points_total" field.
func (_u *ProfileUpdateOne) SetPointsTotal(v int) *ProfileUpdateOne {
	_u.mutation.ResetPointsTotal()
	_u.mutation.SetPointsTotal(v)
	return _u
}

// SetNillablePointsTotal sets the "points_total" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePointsTotal(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetPointsTotal(*v)
	}
	return _u
}

// AddPointsTotal adds value to the "points_total" field.
func (_u *ProfileUpdateOne) AddPointsTotal(v int) *ProfileUpdateOne {
	_u.mutation.AddPointsTotal(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := profile.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Profile.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := profile.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Profile.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := profile.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Profile.grade": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(profile.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(profile.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(profile.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(profile.FieldGrade, field.TypeInt, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(profile.FieldGrade, field.TypeInt)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(profile.FieldParentID, field.TypeUUID, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(profile.FieldParentID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PointsTotal(); ok {
		_spec.SetField(profile.FieldPointsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsTotal(); ok {
		_spec.AddField(profile.FieldPointsTotal, field.TypeInt, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
