// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"tenantforge.io/tenantforge/ent/organization"
	"tenantforge.io/tenantforge/ent/predicate"
	"tenantforge.io/tenantforge/internal/domain"
)

// OrganizationUpdate is the builder for updating Organization entities.
type OrganizationUpdate struct {
	config
	hooks    []Hook
	mutation *OrganizationMutation
}

// Where appends a list predicates to the OrganizationUpdate builder.
func (_u *OrganizationUpdate) Where(ps ...predicate.Organization) *OrganizationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrganizationUpdate) SetUpdatedAt(v time.Time) *OrganizationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *OrganizationUpdate) SetName(v string) *OrganizationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableName(v *string) *OrganizationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *OrganizationUpdate) SetSlug(v string) *OrganizationUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableSlug(v *string) *OrganizationUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetOrganizationType sets the "organization_type" field.
func (_u *OrganizationUpdate) SetOrganizationType(v organization.OrganizationType) *OrganizationUpdate {
	_u.mutation.SetOrganizationType(v)
	return _u
}

// SetNillableOrganizationType sets the "organization_type" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableOrganizationType(v *organization.OrganizationType) *OrganizationUpdate {
	if v != nil {
		_u.SetOrganizationType(*v)
	}
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *OrganizationUpdate) SetIndustry(v string) *OrganizationUpdate {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableIndustry(v *string) *OrganizationUpdate {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *OrganizationUpdate) ClearIndustry() *OrganizationUpdate {
	_u.mutation.ClearIndustry()
	return _u
}

// SetTeamSize sets the "team_size" field.
func (_u *OrganizationUpdate) SetTeamSize(v organization.TeamSize) *OrganizationUpdate {
	_u.mutation.SetTeamSize(v)
	return _u
}

// SetNillableTeamSize sets the "team_size" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableTeamSize(v *organization.TeamSize) *OrganizationUpdate {
	if v != nil {
		_u.SetTeamSize(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *OrganizationUpdate) SetCountry(v string) *OrganizationUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableCountry(v *string) *OrganizationUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *OrganizationUpdate) ClearCountry() *OrganizationUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetState sets the "state" field.
func (_u *OrganizationUpdate) SetState(v string) *OrganizationUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableState(v *string) *OrganizationUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *OrganizationUpdate) ClearState() *OrganizationUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetSettings sets the "settings" field.
func (_u *OrganizationUpdate) SetSettings(v domain.OrgSettings) *OrganizationUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// SetNillableSettings sets the "settings" field if the given value is not nil.
func (_u *OrganizationUpdate) SetNillableSettings(v *domain.OrgSettings) *OrganizationUpdate {
	if v != nil {
		_u.SetSettings(*v)
	}
	return _u
}

// SetMembers sets the "members" field.
func (_u *OrganizationUpdate) SetMembers(v []domain.OrgMember) *OrganizationUpdate {
	_u.mutation.SetMembers(v)
	return _u
}

// AppendMembers appends value to the "members" field.
func (_u *OrganizationUpdate) AppendMembers(v []domain.OrgMember) *OrganizationUpdate {
	_u.mutation.AppendMembers(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *OrganizationUpdate) SetMetadata(v map[string]interface{}) *OrganizationUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *OrganizationUpdate) ClearMetadata() *OrganizationUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the OrganizationMutation object of the builder.
func (_u *OrganizationUpdate) Mutation() *OrganizationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrganizationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrganizationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrganizationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrganizationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrganizationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := organization.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrganizationUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := organization.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Organization.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := organization.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Organization.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationType(); ok {
		if err := organization.OrganizationTypeValidator(v); err != nil {
			return &ValidationError{Name: "organization_type", err: fmt.Errorf(`ent: validator failed for field "Organization.organization_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TeamSize(); ok {
		if err := organization.TeamSizeValidator(v); err != nil {
			return &ValidationError{Name: "team_size", err: fmt.Errorf(`ent: validator failed for field "Organization.team_size": %w`, err)}
		}
	}
	return nil
}

func (_u *OrganizationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(organization.Table, organization.Columns, sqlgraph.NewFieldSpec(organization.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(organization.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(organization.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(organization.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationType(); ok {
		_spec.SetField(organization.FieldOrganizationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(organization.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(organization.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.TeamSize(); ok {
		_spec.SetField(organization.FieldTeamSize, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(organization.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(organization.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(organization.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(organization.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(organization.FieldSettings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Members(); ok {
		_spec.SetField(organization.FieldMembers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMembers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, organization.FieldMembers, value)
		})
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(organization.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(organization.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{organization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrganizationUpdateOne is the builder for updating a single Organization entity.
type OrganizationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrganizationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrganizationUpdateOne) SetUpdatedAt(v time.Time) *OrganizationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *OrganizationUpdateOne) SetName(v string) *OrganizationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableName(v *string) *OrganizationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *OrganizationUpdateOne) SetSlug(v string) *OrganizationUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableSlug(v *string) *OrganizationUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetOrganizationType sets the "organization_type" field.
func (_u *OrganizationUpdateOne) SetOrganizationType(v organization.OrganizationType) *OrganizationUpdateOne {
	_u.mutation.SetOrganizationType(v)
	return _u
}

// SetNillableOrganizationType sets the "organization_type" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableOrganizationType(v *organization.OrganizationType) *OrganizationUpdateOne {
	if v != nil {
		_u.SetOrganizationType(*v)
	}
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *OrganizationUpdateOne) SetIndustry(v string) *OrganizationUpdateOne {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableIndustry(v *string) *OrganizationUpdateOne {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *OrganizationUpdateOne) ClearIndustry() *OrganizationUpdateOne {
	_u.mutation.ClearIndustry()
	return _u
}

// SetTeamSize sets the "team_size" field.
func (_u *OrganizationUpdateOne) SetTeamSize(v organization.TeamSize) *OrganizationUpdateOne {
	_u.mutation.SetTeamSize(v)
	return _u
}

// SetNillableTeamSize sets the "team_size" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableTeamSize(v *organization.TeamSize) *OrganizationUpdateOne {
	if v != nil {
		_u.SetTeamSize(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *OrganizationUpdateOne) SetCountry(v string) *OrganizationUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableCountry(v *string) *OrganizationUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *OrganizationUpdateOne) ClearCountry() *OrganizationUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetState sets the "state" field.
func (_u *OrganizationUpdateOne) SetState(v string) *OrganizationUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableState(v *string) *OrganizationUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *OrganizationUpdateOne) ClearState() *OrganizationUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetSettings sets the "settings" field.
func (_u *OrganizationUpdateOne) SetSettings(v domain.OrgSettings) *OrganizationUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// SetNillableSettings sets the "settings" field if the given value is not nil.
func (_u *OrganizationUpdateOne) SetNillableSettings(v *domain.OrgSettings) *OrganizationUpdateOne {
	if v != nil {
		_u.SetSettings(*v)
	}
	return _u
}

// SetMembers sets the "members" field.
func (_u *OrganizationUpdateOne) SetMembers(v []domain.OrgMember) *OrganizationUpdateOne {
	_u.mutation.SetMembers(v)
	return _u
}

// AppendMembers appends value to the "members" field.
func (_u *OrganizationUpdateOne) AppendMembers(v []domain.OrgMember) *OrganizationUpdateOne {
	_u.mutation.AppendMembers(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *OrganizationUpdateOne) SetMetadata(v map[string]interface{}) *OrganizationUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *OrganizationUpdateOne) ClearMetadata() *OrganizationUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the OrganizationMutation object of the builder.
func (_u *OrganizationUpdateOne) Mutation() *OrganizationMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrganizationUpdate builder.
func (_u *OrganizationUpdateOne) Where(ps ...predicate.Organization) *OrganizationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrganizationUpdateOne) Select(field string, fields ...string) *OrganizationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Organization entity.
func (_u *OrganizationUpdateOne) Save(ctx context.Context) (*Organization, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrganizationUpdateOne) SaveX(ctx context.Context) *Organization {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrganizationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrganizationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrganizationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := organization.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrganizationUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := organization.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Organization.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := organization.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Organization.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationType(); ok {
		if err := organization.OrganizationTypeValidator(v); err != nil {
			return &ValidationError{Name: "organization_type", err: fmt.Errorf(`ent: validator failed for field "Organization.organization_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TeamSize(); ok {
		if err := organization.TeamSizeValidator(v); err != nil {
			return &ValidationError{Name: "team_size", err: fmt.Errorf(`ent: validator failed for field "Organization.team_size": %w`, err)}
		}
	}
	return nil
}

func (_u *OrganizationUpdateOne) sqlSave(ctx context.Context) (_node *Organization, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(organization.Table, organization.Columns, sqlgraph.NewFieldSpec(organization.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Organization.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, organization.FieldID)
		for _, f := range fields {
			if !organization.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != organization.FieldID {
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
		_spec.SetField(organization.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(organization.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(organization.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationType(); ok {
		_spec.SetField(organization.FieldOrganizationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(organization.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(organization.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.TeamSize(); ok {
		_spec.SetField(organization.FieldTeamSize, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(organization.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(organization.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(organization.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(organization.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(organization.FieldSettings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Members(); ok {
		_spec.SetField(organization.FieldMembers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMembers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, organization.FieldMembers, value)
		})
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(organization.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(organization.FieldMetadata, field.TypeJSON)
	}
	_node = &Organization{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{organization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
