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
	"tenantforge.io/tenantforge/ent/predicate"
	"tenantforge.io/tenantforge/ent/user"
	"tenantforge.io/tenantforge/internal/domain"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UserUpdate) SetDisplayName(v string) *UserUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDisplayName(v *string) *UserUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *UserUpdate) ClearDisplayName() *UserUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdate) SetRole(v string) *UserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRole(v *string) *UserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *UserUpdate) ClearRole() *UserUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetUserType sets the "user_type" field.
func (_u *UserUpdate) SetUserType(v string) *UserUpdate {
	_u.mutation.SetUserType(v)
	return _u
}

// SetNillableUserType sets the "user_type" field if the given value is not nil.
func (_u *UserUpdate) SetNillableUserType(v *string) *UserUpdate {
	if v != nil {
		_u.SetUserType(*v)
	}
	return _u
}

// ClearUserType clears the value of the "user_type" field.
func (_u *UserUpdate) ClearUserType() *UserUpdate {
	_u.mutation.ClearUserType()
	return _u
}

// SetProfile sets the "profile" field.
func (_u *UserUpdate) SetProfile(v domain.UserProfile) *UserUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *UserUpdate) SetNillableProfile(v *domain.UserProfile) *UserUpdate {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// ClearProfile clears the value of the "profile" field.
func (_u *UserUpdate) ClearProfile() *UserUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// SetSecurity sets the "security" field.
func (_u *UserUpdate) SetSecurity(v domain.UserSecurity) *UserUpdate {
	_u.mutation.SetSecurity(v)
	return _u
}

// SetNillableSecurity sets the "security" field if the given value is not nil.
func (_u *UserUpdate) SetNillableSecurity(v *domain.UserSecurity) *UserUpdate {
	if v != nil {
		_u.SetSecurity(*v)
	}
	return _u
}

// ClearSecurity clears the value of the "security" field.
func (_u *UserUpdate) ClearSecurity() *UserUpdate {
	_u.mutation.ClearSecurity()
	return _u
}

// SetPreferences sets the "preferences" field.
func (_u *UserUpdate) SetPreferences(v domain.UserPreferences) *UserUpdate {
	_u.mutation.SetPreferences(v)
	return _u
}

// SetNillablePreferences sets the "preferences" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePreferences(v *domain.UserPreferences) *UserUpdate {
	if v != nil {
		_u.SetPreferences(*v)
	}
	return _u
}

// ClearPreferences clears the value of the "preferences" field.
func (_u *UserUpdate) ClearPreferences() *UserUpdate {
	_u.mutation.ClearPreferences()
	return _u
}

// SetOrganizations sets the "organizations" field.
func (_u *UserUpdate) SetOrganizations(v []domain.OrgMembershipEntry) *UserUpdate {
	_u.mutation.SetOrganizations(v)
	return _u
}

// AppendOrganizations appends value to the "organizations" field.
func (_u *UserUpdate) AppendOrganizations(v []domain.OrgMembershipEntry) *UserUpdate {
	_u.mutation.AppendOrganizations(v)
	return _u
}

// ClearOrganizations clears the value of the "organizations" field.
func (_u *UserUpdate) ClearOrganizations() *UserUpdate {
	_u.mutation.ClearOrganizations()
	return _u
}

// SetOnboardingCompleted sets the "onboarding_completed" field.
func (_u *UserUpdate) SetOnboardingCompleted(v bool) *UserUpdate {
	_u.mutation.SetOnboardingCompleted(v)
	return _u
}

// SetNillableOnboardingCompleted sets the "onboarding_completed" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOnboardingCompleted(v *bool) *UserUpdate {
	if v != nil {
		_u.SetOnboardingCompleted(*v)
	}
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(user.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(user.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(user.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.UserType(); ok {
		_spec.SetField(user.FieldUserType, field.TypeString, value)
	}
	if _u.mutation.UserTypeCleared() {
		_spec.ClearField(user.FieldUserType, field.TypeString)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(user.FieldProfile, field.TypeJSON, value)
	}
	if _u.mutation.ProfileCleared() {
		_spec.ClearField(user.FieldProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.Security(); ok {
		_spec.SetField(user.FieldSecurity, field.TypeJSON, value)
	}
	if _u.mutation.SecurityCleared() {
		_spec.ClearField(user.FieldSecurity, field.TypeJSON)
	}
	if value, ok := _u.mutation.Preferences(); ok {
		_spec.SetField(user.FieldPreferences, field.TypeJSON, value)
	}
	if _u.mutation.PreferencesCleared() {
		_spec.ClearField(user.FieldPreferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.Organizations(); ok {
		_spec.SetField(user.FieldOrganizations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOrganizations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldOrganizations, value)
		})
	}
	if _u.mutation.OrganizationsCleared() {
		_spec.ClearField(user.FieldOrganizations, field.TypeJSON)
	}
	if value, ok := _u.mutation.OnboardingCompleted(); ok {
		_spec.SetField(user.FieldOnboardingCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UserUpdateOne) SetDisplayName(v string) *UserUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDisplayName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *UserUpdateOne) ClearDisplayName() *UserUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdateOne) SetRole(v string) *UserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRole(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *UserUpdateOne) ClearRole() *UserUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetUserType sets the "user_type" field.
func (_u *UserUpdateOne) SetUserType(v string) *UserUpdateOne {
	_u.mutation.SetUserType(v)
	return _u
}

// SetNillableUserType sets the "user_type" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableUserType(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetUserType(*v)
	}
	return _u
}

// ClearUserType clears the value of the "user_type" field.
func (_u *UserUpdateOne) ClearUserType() *UserUpdateOne {
	_u.mutation.ClearUserType()
	return _u
}

// SetProfile sets the "profile" field.
func (_u *UserUpdateOne) SetProfile(v domain.UserProfile) *UserUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetNillableProfile sets the "profile" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableProfile(v *domain.UserProfile) *UserUpdateOne {
	if v != nil {
		_u.SetProfile(*v)
	}
	return _u
}

// ClearProfile clears the value of the "profile" field.
func (_u *UserUpdateOne) ClearProfile() *UserUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// SetSecurity sets the "security" field.
func (_u *UserUpdateOne) SetSecurity(v domain.UserSecurity) *UserUpdateOne {
	_u.mutation.SetSecurity(v)
	return _u
}

// SetNillableSecurity sets the "security" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableSecurity(v *domain.UserSecurity) *UserUpdateOne {
	if v != nil {
		_u.SetSecurity(*v)
	}
	return _u
}

// ClearSecurity clears the value of the "security" field.
func (_u *UserUpdateOne) ClearSecurity() *UserUpdateOne {
	_u.mutation.ClearSecurity()
	return _u
}

// SetPreferences sets the "preferences" field.
func (_u *UserUpdateOne) SetPreferences(v domain.UserPreferences) *UserUpdateOne {
	_u.mutation.SetPreferences(v)
	return _u
}

// SetNillablePreferences sets the "preferences" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePreferences(v *domain.UserPreferences) *UserUpdateOne {
	if v != nil {
		_u.SetPreferences(*v)
	}
	return _u
}

// ClearPreferences clears the value of the "preferences" field.
func (_u *UserUpdateOne) ClearPreferences() *UserUpdateOne {
	_u.mutation.ClearPreferences()
	return _u
}

// SetOrganizations sets the "organizations" field.
func (_u *UserUpdateOne) SetOrganizations(v []domain.OrgMembershipEntry) *UserUpdateOne {
	_u.mutation.SetOrganizations(v)
	return _u
}

// AppendOrganizations appends value to the "organizations" field.
func (_u *UserUpdateOne) AppendOrganizations(v []domain.OrgMembershipEntry) *UserUpdateOne {
	_u.mutation.AppendOrganizations(v)
	return _u
}

// ClearOrganizations clears the value of the "organizations" field.
func (_u *UserUpdateOne) ClearOrganizations() *UserUpdateOne {
	_u.mutation.ClearOrganizations()
	return _u
}

// SetOnboardingCompleted sets the "onboarding_completed" field.
func (_u *UserUpdateOne) SetOnboardingCompleted(v bool) *UserUpdateOne {
	_u.mutation.SetOnboardingCompleted(v)
	return _u
}

// SetNillableOnboardingCompleted sets the "onboarding_completed" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOnboardingCompleted(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetOnboardingCompleted(*v)
	}
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(user.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(user.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(user.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.UserType(); ok {
		_spec.SetField(user.FieldUserType, field.TypeString, value)
	}
	if _u.mutation.UserTypeCleared() {
		_spec.ClearField(user.FieldUserType, field.TypeString)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(user.FieldProfile, field.TypeJSON, value)
	}
	if _u.mutation.ProfileCleared() {
		_spec.ClearField(user.FieldProfile, field.TypeJSON)
	}
	if value, ok := _u.mutation.Security(); ok {
		_spec.SetField(user.FieldSecurity, field.TypeJSON, value)
	}
	if _u.mutation.SecurityCleared() {
		_spec.ClearField(user.FieldSecurity, field.TypeJSON)
	}
	if value, ok := _u.mutation.Preferences(); ok {
		_spec.SetField(user.FieldPreferences, field.TypeJSON, value)
	}
	if _u.mutation.PreferencesCleared() {
		_spec.ClearField(user.FieldPreferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.Organizations(); ok {
		_spec.SetField(user.FieldOrganizations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOrganizations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, user.FieldOrganizations, value)
		})
	}
	if _u.mutation.OrganizationsCleared() {
		_spec.ClearField(user.FieldOrganizations, field.TypeJSON)
	}
	if value, ok := _u.mutation.OnboardingCompleted(); ok {
		_spec.SetField(user.FieldOnboardingCompleted, field.TypeBool, value)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
