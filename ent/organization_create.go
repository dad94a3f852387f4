// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tenantforge.io/tenantforge/ent/organization"
	"tenantforge.io/tenantforge/internal/domain"
)

// OrganizationCreate is the builder for creating a Organization entity.
type OrganizationCreate struct {
	config
	mutation *OrganizationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrganizationCreate) SetCreatedAt(v time.Time) *OrganizationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableCreatedAt(v *time.Time) *OrganizationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OrganizationCreate) SetUpdatedAt(v time.Time) *OrganizationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableUpdatedAt(v *time.Time) *OrganizationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *OrganizationCreate) SetName(v string) *OrganizationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *OrganizationCreate) SetSlug(v string) *OrganizationCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetOrganizationType sets the "organization_type" field.
func (_c *OrganizationCreate) SetOrganizationType(v organization.OrganizationType) *OrganizationCreate {
	_c.mutation.SetOrganizationType(v)
	return _c
}

// SetNillableOrganizationType sets the "organization_type" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableOrganizationType(v *organization.OrganizationType) *OrganizationCreate {
	if v != nil {
		_c.SetOrganizationType(*v)
	}
	return _c
}

// SetIndustry sets the "industry" field.
func (_c *OrganizationCreate) SetIndustry(v string) *OrganizationCreate {
	_c.mutation.SetIndustry(v)
	return _c
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableIndustry(v *string) *OrganizationCreate {
	if v != nil {
		_c.SetIndustry(*v)
	}
	return _c
}

// SetTeamSize sets the "team_size" field.
func (_c *OrganizationCreate) SetTeamSize(v organization.TeamSize) *OrganizationCreate {
	_c.mutation.SetTeamSize(v)
	return _c
}

// SetNillableTeamSize sets the "team_size" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableTeamSize(v *organization.TeamSize) *OrganizationCreate {
	if v != nil {
		_c.SetTeamSize(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *OrganizationCreate) SetCountry(v string) *OrganizationCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableCountry(v *string) *OrganizationCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *OrganizationCreate) SetState(v string) *OrganizationCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *OrganizationCreate) SetNillableState(v *string) *OrganizationCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetSettings sets the "settings" field.
func (_c *OrganizationCreate) SetSettings(v domain.OrgSettings) *OrganizationCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetMembers sets the "members" field.
func (_c *OrganizationCreate) SetMembers(v []domain.OrgMember) *OrganizationCreate {
	_c.mutation.SetMembers(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *OrganizationCreate) SetMetadata(v map[string]interface{}) *OrganizationCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *OrganizationCreate) SetID(v string) *OrganizationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OrganizationMutation object of the builder.
func (_c *OrganizationCreate) Mutation() *OrganizationMutation {
	return _c.mutation
}

// Save creates the Organization in the database.
func (_c *OrganizationCreate) Save(ctx context.Context) (*Organization, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrganizationCreate) SaveX(ctx context.Context) *Organization {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrganizationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrganizationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrganizationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := organization.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := organization.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.OrganizationType(); !ok {
		v := organization.DefaultOrganizationType
		_c.mutation.SetOrganizationType(v)
	}
	if _, ok := _c.mutation.TeamSize(); !ok {
		v := organization.DefaultTeamSize
		_c.mutation.SetTeamSize(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrganizationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Organization.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Organization.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Organization.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := organization.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Organization.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Organization.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := organization.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Organization.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrganizationType(); !ok {
		return &ValidationError{Name: "organization_type", err: errors.New(`ent: missing required field "Organization.organization_type"`)}
	}
	if v, ok := _c.mutation.OrganizationType(); ok {
		if err := organization.OrganizationTypeValidator(v); err != nil {
			return &ValidationError{Name: "organization_type", err: fmt.Errorf(`ent: validator failed for field "Organization.organization_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TeamSize(); !ok {
		return &ValidationError{Name: "team_size", err: errors.New(`ent: missing required field "Organization.team_size"`)}
	}
	if v, ok := _c.mutation.TeamSize(); ok {
		if err := organization.TeamSizeValidator(v); err != nil {
			return &ValidationError{Name: "team_size", err: fmt.Errorf(`ent: validator failed for field "Organization.team_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Settings(); !ok {
		return &ValidationError{Name: "settings", err: errors.New(`ent: missing required field "Organization.settings"`)}
	}
	if _, ok := _c.mutation.Members(); !ok {
		return &ValidationError{Name: "members", err: errors.New(`ent: missing required field "Organization.members"`)}
	}
	return nil
}

func (_c *OrganizationCreate) sqlSave(ctx context.Context) (*Organization, error) {
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
			return nil, fmt.Errorf("unexpected Organization.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrganizationCreate) createSpec() (*Organization, *sqlgraph.CreateSpec) {
	var (
		_node = &Organization{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(organization.Table, sqlgraph.NewFieldSpec(organization.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(organization.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(organization.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(organization.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(organization.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.OrganizationType(); ok {
		_spec.SetField(organization.FieldOrganizationType, field.TypeEnum, value)
		_node.OrganizationType = value
	}
	if value, ok := _c.mutation.Industry(); ok {
		_spec.SetField(organization.FieldIndustry, field.TypeString, value)
		_node.Industry = value
	}
	if value, ok := _c.mutation.TeamSize(); ok {
		_spec.SetField(organization.FieldTeamSize, field.TypeEnum, value)
		_node.TeamSize = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(organization.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(organization.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(organization.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := _c.mutation.Members(); ok {
		_spec.SetField(organization.FieldMembers, field.TypeJSON, value)
		_node.Members = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(organization.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// OrganizationCreateBulk is the builder for creating many Organization entities in bulk.
type OrganizationCreateBulk struct {
	config
	err      error
	builders []*OrganizationCreate
}

// Save creates the Organization entities in the database.
func (_c *OrganizationCreateBulk) Save(ctx context.Context) ([]*Organization, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Organization, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrganizationMutation)
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
func (_c *OrganizationCreateBulk) SaveX(ctx context.Context) []*Organization {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrganizationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrganizationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
