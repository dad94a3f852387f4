// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"tenantforge.io/tenantforge/ent/auditlog"
	"tenantforge.io/tenantforge/ent/notification"
	"tenantforge.io/tenantforge/ent/onboardingsaga"
	"tenantforge.io/tenantforge/ent/organization"
	"tenantforge.io/tenantforge/ent/schema"
	"tenantforge.io/tenantforge/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[5].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescCategory is the schema descriptor for category field.
	auditlogDescCategory := auditlogFields[6].Descriptor()
	// auditlog.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	auditlog.CategoryValidator = auditlogDescCategory.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[7].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[8].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescOccurredAt is the schema descriptor for occurred_at field.
	auditlogDescOccurredAt := auditlogFields[13].Descriptor()
	// auditlog.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	auditlog.DefaultOccurredAt = auditlogDescOccurredAt.Default.(func() time.Time)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescUpdatedAt is the schema descriptor for updated_at field.
	notificationDescUpdatedAt := notificationMixinFields0[1].Descriptor()
	// notification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notification.DefaultUpdatedAt = notificationDescUpdatedAt.Default.(func() time.Time)
	// notification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notification.UpdateDefaultUpdatedAt = notificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationDescRecipientID is the schema descriptor for recipient_id field.
	notificationDescRecipientID := notificationFields[1].Descriptor()
	// notification.RecipientIDValidator is a validator for the "recipient_id" field. It is called by the builders before save.
	notification.RecipientIDValidator = notificationDescRecipientID.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[4].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = notificationDescMessage.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[7].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	onboardingsagaMixin := schema.OnboardingSaga{}.Mixin()
	onboardingsagaMixinFields0 := onboardingsagaMixin[0].Fields()
	_ = onboardingsagaMixinFields0
	onboardingsagaFields := schema.OnboardingSaga{}.Fields()
	_ = onboardingsagaFields
	// onboardingsagaDescCreatedAt is the schema descriptor for created_at field.
	onboardingsagaDescCreatedAt := onboardingsagaMixinFields0[0].Descriptor()
	// onboardingsaga.DefaultCreatedAt holds the default value on creation for the created_at field.
	onboardingsaga.DefaultCreatedAt = onboardingsagaDescCreatedAt.Default.(func() time.Time)
	// onboardingsagaDescUpdatedAt is the schema descriptor for updated_at field.
	onboardingsagaDescUpdatedAt := onboardingsagaMixinFields0[1].Descriptor()
	// onboardingsaga.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	onboardingsaga.DefaultUpdatedAt = onboardingsagaDescUpdatedAt.Default.(func() time.Time)
	// onboardingsaga.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	onboardingsaga.UpdateDefaultUpdatedAt = onboardingsagaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// onboardingsagaDescEmail is the schema descriptor for email field.
	onboardingsagaDescEmail := onboardingsagaFields[3].Descriptor()
	// onboardingsaga.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	onboardingsaga.EmailValidator = onboardingsagaDescEmail.Validators[0].(func(string) error)
	// onboardingsagaDescReconcileAttempts is the schema descriptor for reconcile_attempts field.
	onboardingsagaDescReconcileAttempts := onboardingsagaFields[9].Descriptor()
	// onboardingsaga.DefaultReconcileAttempts holds the default value on creation for the reconcile_attempts field.
	onboardingsaga.DefaultReconcileAttempts = onboardingsagaDescReconcileAttempts.Default.(int)
	organizationMixin := schema.Organization{}.Mixin()
	organizationMixinFields0 := organizationMixin[0].Fields()
	_ = organizationMixinFields0
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationMixinFields0[0].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationMixinFields0[1].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[1].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = func() func(string) error {
		validators := organizationDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// organizationDescSlug is the schema descriptor for slug field.
	organizationDescSlug := organizationFields[2].Descriptor()
	// organization.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	organization.SlugValidator = func() func(string) error {
		validators := organizationDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescOnboardingCompleted is the schema descriptor for onboarding_completed field.
	userDescOnboardingCompleted := userFields[9].Descriptor()
	// user.DefaultOnboardingCompleted holds the default value on creation for the onboarding_completed field.
	user.DefaultOnboardingCompleted = userDescOnboardingCompleted.Default.(bool)
}
