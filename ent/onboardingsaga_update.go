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
	"tenantforge.io/tenantforge/ent/onboardingsaga"
	"tenantforge.io/tenantforge/ent/predicate"
)

// OnboardingSagaUpdate is the builder for updating OnboardingSaga entities.
type OnboardingSagaUpdate struct {
	config
	hooks    []Hook
	mutation *OnboardingSagaMutation
}

// Where appends a list predicates to the OnboardingSagaUpdate builder.
func (_u *OnboardingSagaUpdate) Where(ps ...predicate.OnboardingSaga) *OnboardingSagaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OnboardingSagaUpdate) SetUpdatedAt(v time.Time) *OnboardingSagaUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetState sets the "state" field.
func (_u *OnboardingSagaUpdate) SetState(v onboardingsaga.State) *OnboardingSagaUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *OnboardingSagaUpdate) SetNillableState(v *onboardingsaga.State) *OnboardingSagaUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetFailedAtState sets the "failed_at_state" field.
func (_u *OnboardingSagaUpdate) SetFailedAtState(v string) *OnboardingSagaUpdate {
	_u.mutation.SetFailedAtState(v)
	return _u
}

// SetNillableFailedAtState sets the "failed_at_state" field if the given value is not nil.
func (_u *OnboardingSagaUpdate) SetNillableFailedAtState(v *string) *OnboardingSagaUpdate {
	if v != nil {
		_u.SetFailedAtState(*v)
	}
	return _u
}

// ClearFailedAtState clears the value of the "failed_at_state" field.
func (_u *OnboardingSagaUpdate) ClearFailedAtState() *OnboardingSagaUpdate {
	_u.mutation.ClearFailedAtState()
	return _u
}

// SetExternalUserID sets the "external_user_id" field.
func (_u *OnboardingSagaUpdate) SetExternalUserID(v string) *OnboardingSagaUpdate {
	_u.mutation.SetExternalUserID(v)
	return _u
}

// SetNillableExternalUserID sets the "external_user_id" field if the given value is not nil.
func (_u *OnboardingSagaUpdate) SetNillableExternalUserID(v *string) *OnboardingSagaUpdate {
	if v != nil {
		_u.SetExternalUserID(*v)
	}
	return _u
}

// ClearExternalUserID clears the value of the "external_user_id" field.
func (_u *OnboardingSagaUpdate) ClearExternalUserID() *OnboardingSagaUpdate {
	_u.mutation.ClearExternalUserID()
	return _u
}

// SetExternalOrgID sets the "external_org_id" field.
func (_u *OnboardingSagaUpdate) SetExternalOrgID(v string) *OnboardingSagaUpdate {
	_u.mutation.SetExternalOrgID(v)
	return _u
}

// SetNillableExternalOrgID sets the "external_org_id" field if the given value is not nil.
func (_u *OnboardingSagaUpdate) SetNillableExternalOrgID(v *string) *OnboardingSagaUpdate {
	if v != nil {
		_u.SetExternalOrgID(*v)
	}
	return _u
}

// ClearExternalOrgID clears the value of the "external_org_id" field.
func (_u *OnboardingSagaUpdate) ClearExternalOrgID() *OnboardingSagaUpdate {
	_u.mutation.ClearExternalOrgID()
	return _u
}

// SetError sets the "error" field.
func (_u *OnboardingSagaUpdate) SetError(v string) *OnboardingSagaUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *OnboardingSagaUpdate) SetNillableError(v *string) *OnboardingSagaUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *OnboardingSagaUpdate) ClearError() *OnboardingSagaUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetReconcileAttempts sets the "reconcile_attempts" field.
func (_u *OnboardingSagaUpdate) SetReconcileAttempts(v int) *OnboardingSagaUpdate {
	_u.mutation.ResetReconcileAttempts()
	_u.mutation.SetReconcileAttempts(v)
	return _u
}

// SetNillableReconcileAttempts sets the "reconcile_attempts" field if the given value is not nil.
func (_u *OnboardingSagaUpdate) SetNillableReconcileAttempts(v *int) *OnboardingSagaUpdate {
	if v != nil {
		_u.SetReconcileAttempts(*v)
	}
	return _u
}

// AddReconcileAttempts adds value to the "reconcile_attempts" field.
func (_u *OnboardingSagaUpdate) AddReconcileAttempts(v int) *OnboardingSagaUpdate {
	_u.mutation.AddReconcileAttempts(v)
	return _u
}

// Mutation returns the OnboardingSagaMutation object of the builder.
func (_u *OnboardingSagaUpdate) Mutation() *OnboardingSagaMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OnboardingSagaUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnboardingSagaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OnboardingSagaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnboardingSagaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OnboardingSagaUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := onboardingsaga.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OnboardingSagaUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := onboardingsaga.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "OnboardingSaga.state": %w`, err)}
		}
	}
	return nil
}

func (_u *OnboardingSagaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(onboardingsaga.Table, onboardingsaga.Columns, sqlgraph.NewFieldSpec(onboardingsaga.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(onboardingsaga.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(onboardingsaga.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailedAtState(); ok {
		_spec.SetField(onboardingsaga.FieldFailedAtState, field.TypeString, value)
	}
	if _u.mutation.FailedAtStateCleared() {
		_spec.ClearField(onboardingsaga.FieldFailedAtState, field.TypeString)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(onboardingsaga.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalUserID(); ok {
		_spec.SetField(onboardingsaga.FieldExternalUserID, field.TypeString, value)
	}
	if _u.mutation.ExternalUserIDCleared() {
		_spec.ClearField(onboardingsaga.FieldExternalUserID, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalOrgID(); ok {
		_spec.SetField(onboardingsaga.FieldExternalOrgID, field.TypeString, value)
	}
	if _u.mutation.ExternalOrgIDCleared() {
		_spec.ClearField(onboardingsaga.FieldExternalOrgID, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(onboardingsaga.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(onboardingsaga.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ReconcileAttempts(); ok {
		_spec.SetField(onboardingsaga.FieldReconcileAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReconcileAttempts(); ok {
		_spec.AddField(onboardingsaga.FieldReconcileAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onboardingsaga.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OnboardingSagaUpdateOne is the builder for updating a single OnboardingSaga entity.
type OnboardingSagaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OnboardingSagaMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OnboardingSagaUpdateOne) SetUpdatedAt(v time.Time) *OnboardingSagaUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetState sets the "state" field.
func (_u *OnboardingSagaUpdateOne) SetState(v onboardingsaga.State) *OnboardingSagaUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *OnboardingSagaUpdateOne) SetNillableState(v *onboardingsaga.State) *OnboardingSagaUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetFailedAtState sets the "failed_at_state" field.
func (_u *OnboardingSagaUpdateOne) SetFailedAtState(v string) *OnboardingSagaUpdateOne {
	_u.mutation.SetFailedAtState(v)
	return _u
}

// SetNillableFailedAtState sets the "failed_at_state" field if the given value is not nil.
func (_u *OnboardingSagaUpdateOne) SetNillableFailedAtState(v *string) *OnboardingSagaUpdateOne {
	if v != nil {
		_u.SetFailedAtState(*v)
	}
	return _u
}

// ClearFailedAtState clears the value of the "failed_at_state" field.
func (_u *OnboardingSagaUpdateOne) ClearFailedAtState() *OnboardingSagaUpdateOne {
	_u.mutation.ClearFailedAtState()
	return _u
}

// SetExternalUserID sets the "external_user_id" field.
func (_u *OnboardingSagaUpdateOne) SetExternalUserID(v string) *OnboardingSagaUpdateOne {
	_u.mutation.SetExternalUserID(v)
	return _u
}

// SetNillableExternalUserID sets the "external_user_id" field if the given value is not nil.
func (_u *OnboardingSagaUpdateOne) SetNillableExternalUserID(v *string) *OnboardingSagaUpdateOne {
	if v != nil {
		_u.SetExternalUserID(*v)
	}
	return _u
}

// ClearExternalUserID clears the value of the "external_user_id" field.
func (_u *OnboardingSagaUpdateOne) ClearExternalUserID() *OnboardingSagaUpdateOne {
	_u.mutation.ClearExternalUserID()
	return _u
}

// SetExternalOrgID sets the "external_org_id" field.
func (_u *OnboardingSagaUpdateOne) SetExternalOrgID(v string) *OnboardingSagaUpdateOne {
	_u.mutation.SetExternalOrgID(v)
	return _u
}

// SetNillableExternalOrgID sets the "external_org_id" field if the given value is not nil.
func (_u *OnboardingSagaUpdateOne) SetNillableExternalOrgID(v *string) *OnboardingSagaUpdateOne {
	if v != nil {
		_u.SetExternalOrgID(*v)
	}
	return _u
}

// ClearExternalOrgID clears the value of the "external_org_id" field.
func (_u *OnboardingSagaUpdateOne) ClearExternalOrgID() *OnboardingSagaUpdateOne {
	_u.mutation.ClearExternalOrgID()
	return _u
}

// SetError sets the "error" field.
func (_u *OnboardingSagaUpdateOne) SetError(v string) *OnboardingSagaUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *OnboardingSagaUpdateOne) SetNillableError(v *string) *OnboardingSagaUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *OnboardingSagaUpdateOne) ClearError() *OnboardingSagaUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetReconcileAttempts sets the "reconcile_attempts" field.
func (_u *OnboardingSagaUpdateOne) SetReconcileAttempts(v int) *OnboardingSagaUpdateOne {
	_u.mutation.ResetReconcileAttempts()
	_u.mutation.SetReconcileAttempts(v)
	return _u
}

// SetNillableReconcileAttempts sets the "reconcile_attempts" field if the given value is not nil.
func (_u *OnboardingSagaUpdateOne) SetNillableReconcileAttempts(v *int) *OnboardingSagaUpdateOne {
	if v != nil {
		_u.SetReconcileAttempts(*v)
	}
	return _u
}

// AddReconcileAttempts adds value to the "reconcile_attempts" field.
func (_u *OnboardingSagaUpdateOne) AddReconcileAttempts(v int) *OnboardingSagaUpdateOne {
	_u.mutation.AddReconcileAttempts(v)
	return _u
}

// Mutation returns the OnboardingSagaMutation object of the builder.
func (_u *OnboardingSagaUpdateOne) Mutation() *OnboardingSagaMutation {
	return _u.mutation
}

// Where appends a list predicates to the OnboardingSagaUpdate builder.
func (_u *OnboardingSagaUpdateOne) Where(ps ...predicate.OnboardingSaga) *OnboardingSagaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OnboardingSagaUpdateOne) Select(field string, fields ...string) *OnboardingSagaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OnboardingSaga entity.
func (_u *OnboardingSagaUpdateOne) Save(ctx context.Context) (*OnboardingSaga, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnboardingSagaUpdateOne) SaveX(ctx context.Context) *OnboardingSaga {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OnboardingSagaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnboardingSagaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OnboardingSagaUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := onboardingsaga.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OnboardingSagaUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := onboardingsaga.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "OnboardingSaga.state": %w`, err)}
		}
	}
	return nil
}

func (_u *OnboardingSagaUpdateOne) sqlSave(ctx context.Context) (_node *OnboardingSaga, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(onboardingsaga.Table, onboardingsaga.Columns, sqlgraph.NewFieldSpec(onboardingsaga.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OnboardingSaga.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, onboardingsaga.FieldID)
		for _, f := range fields {
			if !onboardingsaga.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != onboardingsaga.FieldID {
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
		_spec.SetField(onboardingsaga.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(onboardingsaga.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailedAtState(); ok {
		_spec.SetField(onboardingsaga.FieldFailedAtState, field.TypeString, value)
	}
	if _u.mutation.FailedAtStateCleared() {
		_spec.ClearField(onboardingsaga.FieldFailedAtState, field.TypeString)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(onboardingsaga.FieldIdempotencyKey, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalUserID(); ok {
		_spec.SetField(onboardingsaga.FieldExternalUserID, field.TypeString, value)
	}
	if _u.mutation.ExternalUserIDCleared() {
		_spec.ClearField(onboardingsaga.FieldExternalUserID, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalOrgID(); ok {
		_spec.SetField(onboardingsaga.FieldExternalOrgID, field.TypeString, value)
	}
	if _u.mutation.ExternalOrgIDCleared() {
		_spec.ClearField(onboardingsaga.FieldExternalOrgID, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(onboardingsaga.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(onboardingsaga.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ReconcileAttempts(); ok {
		_spec.SetField(onboardingsaga.FieldReconcileAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReconcileAttempts(); ok {
		_spec.AddField(onboardingsaga.FieldReconcileAttempts, field.TypeInt, value)
	}
	_node = &OnboardingSaga{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onboardingsaga.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
