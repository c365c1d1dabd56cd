// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kosmi-edu/kosmi/ent/parentchildlink"
	"github.com/kosmi-edu/kosmi/ent/predicate"
)

// ParentChildLinkDelete is the builder for deleting a ParentChildLink entity.
type ParentChildLinkDelete struct {
	config
	hooks    []Hook
	mutation *ParentChildLinkMutation
}

// Where appends a list predicates to the ParentChildLinkDelete builder.
func (_d *ParentChildLinkDelete) Where(ps ...predicate.ParentChildLink) *ParentChildLinkDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ParentChildLinkDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ParentChildLinkDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ParentChildLinkDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(parentchildlink.Table, sqlgraph.NewFieldSpec(parentchildlink.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ParentChildLinkDeleteOne is the builder for deleting a single ParentChildLink entity.
type ParentChildLinkDeleteOne struct {
	_d *ParentChildLinkDelete
}

// Where appends a list predicates to the ParentChildLinkDelete builder.
func (_d *ParentChildLinkDeleteOne) Where(ps ...predicate.ParentChildLink) *ParentChildLinkDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ParentChildLinkDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{parentchildlink.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ParentChildLinkDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
