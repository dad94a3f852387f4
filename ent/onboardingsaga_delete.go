// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tenantforge.io/tenantforge/ent/onboardingsaga"
	"tenantforge.io/tenantforge/ent/predicate"
)

// OnboardingSagaDelete is the builder for deleting a OnboardingSaga entity.
type OnboardingSagaDelete struct {
	config
	hooks    []Hook
	mutation *OnboardingSagaMutation
}

// Where appends a list predicates to the OnboardingSagaDelete builder.
func (_d *OnboardingSagaDelete) Where(ps ...predicate.OnboardingSaga) *OnboardingSagaDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OnboardingSagaDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OnboardingSagaDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OnboardingSagaDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(onboardingsaga.Table, sqlgraph.NewFieldSpec(onboardingsaga.FieldID, field.TypeString))
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

// OnboardingSagaDeleteOne is the builder for deleting a single OnboardingSaga entity.
type OnboardingSagaDeleteOne struct {
	_d *OnboardingSagaDelete
}

// Where appends a list predicates to the OnboardingSagaDelete builder.
func (_d *OnboardingSagaDeleteOne) Where(ps ...predicate.OnboardingSaga) *OnboardingSagaDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OnboardingSagaDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{onboardingsaga.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OnboardingSagaDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
