// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tenantforge.io/tenantforge/ent/onboardingsaga"
)

// OnboardingSagaCreate is the builder for creating a OnboardingSaga entity.
type OnboardingSagaCreate struct {
	config
	mutation *OnboardingSagaMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *OnboardingSagaCreate) SetCreatedAt(v time.Time) *OnboardingSagaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OnboardingSagaCreate) SetNillableCreatedAt(v *time.Time) *OnboardingSagaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OnboardingSagaCreate) SetUpdatedAt(v time.Time) *OnboardingSagaCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OnboardingSagaCreate) SetNillableUpdatedAt(v *time.Time) *OnboardingSagaCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *OnboardingSagaCreate) SetState(v onboardingsaga.State) *OnboardingSagaCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *OnboardingSagaCreate) SetNillableState(v *onboardingsaga.State) *OnboardingSagaCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetFailedAtState sets the "failed_at_state" field.
func (_c *OnboardingSagaCreate) SetFailedAtState(v string) *OnboardingSagaCreate {
	_c.mutation.SetFailedAtState(v)
	return _c
}

// SetNillableFailedAtState sets the "failed_at_state" field if the given value is not nil.
func (_c *OnboardingSagaCreate) SetNillableFailedAtState(v *string) *OnboardingSagaCreate {
	if v != nil {
		_c.SetFailedAtState(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *OnboardingSagaCreate) SetEmail(v string) *OnboardingSagaCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *OnboardingSagaCreate) SetIdempotencyKey(v string) *OnboardingSagaCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *OnboardingSagaCreate) SetNillableIdempotencyKey(v *string) *OnboardingSagaCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *OnboardingSagaCreate) SetPayload(v []byte) *OnboardingSagaCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetExternalUserID sets the "external_user_id" field.
func (_c *OnboardingSagaCreate) SetExternalUserID(v string) *OnboardingSagaCreate {
	_c.mutation.SetExternalUserID(v)
	return _c
}

// SetNillableExternalUserID sets the "external_user_id" field if the given value is not nil.
func (_c *OnboardingSagaCreate) SetNillableExternalUserID(v *string) *OnboardingSagaCreate {
	if v != nil {
		_c.SetExternalUserID(*v)
	}
	return _c
}

// SetExternalOrgID sets the "external_org_id" field.
func (_c *OnboardingSagaCreate) SetExternalOrgID(v string) *OnboardingSagaCreate {
	_c.mutation.SetExternalOrgID(v)
	return _c
}

// SetNillableExternalOrgID sets the "external_org_id" field if the given value is not nil.
func (_c *OnboardingSagaCreate) SetNillableExternalOrgID(v *string) *OnboardingSagaCreate {
	if v != nil {
		_c.SetExternalOrgID(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *OnboardingSagaCreate) SetError(v string) *OnboardingSagaCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *OnboardingSagaCreate) SetNillableError(v *string) *OnboardingSagaCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetReconcileAttempts sets the "reconcile_attempts" field.
func (_c *OnboardingSagaCreate) SetReconcileAttempts(v int) *OnboardingSagaCreate {
	_c.mutation.SetReconcileAttempts(v)
	return _c
}

// SetNillableReconcileAttempts sets the "reconcile_attempts" field if the given value is not nil.
func (_c *OnboardingSagaCreate) SetNillableReconcileAttempts(v *int) *OnboardingSagaCreate {
	if v != nil {
		_c.SetReconcileAttempts(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OnboardingSagaCreate) SetID(v string) *OnboardingSagaCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OnboardingSagaMutation object of the builder.
func (_c *OnboardingSagaCreate) Mutation() *OnboardingSagaMutation {
	return _c.mutation
}

// Save creates the OnboardingSaga in the database.
func (_c *OnboardingSagaCreate) Save(ctx context.Context) (*OnboardingSaga, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OnboardingSagaCreate) SaveX(ctx context.Context) *OnboardingSaga {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnboardingSagaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnboardingSagaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OnboardingSagaCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := onboardingsaga.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := onboardingsaga.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := onboardingsaga.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.ReconcileAttempts(); !ok {
		v := onboardingsaga.DefaultReconcileAttempts
		_c.mutation.SetReconcileAttempts(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OnboardingSagaCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OnboardingSaga.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "OnboardingSaga.updated_at"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "OnboardingSaga.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := onboardingsaga.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "OnboardingSaga.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "OnboardingSaga.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := onboardingsaga.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "OnboardingSaga.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "OnboardingSaga.payload"`)}
	}
	if _, ok := _c.mutation.ReconcileAttempts(); !ok {
		return &ValidationError{Name: "reconcile_attempts", err: errors.New(`ent: missing required field "OnboardingSaga.reconcile_attempts"`)}
	}
	return nil
}

func (_c *OnboardingSagaCreate) sqlSave(ctx context.Context) (*OnboardingSaga, error) {
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
			return nil, fmt.Errorf("unexpected OnboardingSaga.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OnboardingSagaCreate) createSpec() (*OnboardingSaga, *sqlgraph.CreateSpec) {
	var (
		_node = &OnboardingSaga{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(onboardingsaga.Table, sqlgraph.NewFieldSpec(onboardingsaga.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(onboardingsaga.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(onboardingsaga.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(onboardingsaga.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.FailedAtState(); ok {
		_spec.SetField(onboardingsaga.FieldFailedAtState, field.TypeString, value)
		_node.FailedAtState = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(onboardingsaga.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(onboardingsaga.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(onboardingsaga.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ExternalUserID(); ok {
		_spec.SetField(onboardingsaga.FieldExternalUserID, field.TypeString, value)
		_node.ExternalUserID = value
	}
	if value, ok := _c.mutation.ExternalOrgID(); ok {
		_spec.SetField(onboardingsaga.FieldExternalOrgID, field.TypeString, value)
		_node.ExternalOrgID = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(onboardingsaga.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.ReconcileAttempts(); ok {
		_spec.SetField(onboardingsaga.FieldReconcileAttempts, field.TypeInt, value)
		_node.ReconcileAttempts = value
	}
	return _node, _spec
}

// OnboardingSagaCreateBulk is the builder for creating many OnboardingSaga entities in bulk.
type OnboardingSagaCreateBulk struct {
	config
	err      error
	builders []*OnboardingSagaCreate
}

// Save creates the OnboardingSaga entities in the database.
func (_c *OnboardingSagaCreateBulk) Save(ctx context.Context) ([]*OnboardingSaga, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OnboardingSaga, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OnboardingSagaMutation)
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
func (_c *OnboardingSagaCreateBulk) SaveX(ctx context.Context) []*OnboardingSaga {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnboardingSagaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnboardingSagaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
