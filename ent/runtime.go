// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"vc-drover.io/drover/ent/notification"
	"vc-drover.io/drover/ent/poisonedevent"
	"vc-drover.io/drover/ent/projectionoffset"
	"vc-drover.io/drover/ent/provisioningprogress"
	"vc-drover.io/drover/ent/requestprojection"
	"vc-drover.io/drover/ent/schema"
	"vc-drover.io/drover/ent/timelineentry"
	"vc-drover.io/drover/ent/vmwareconfig"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescTenantID is the schema descriptor for tenant_id field.
	notificationDescTenantID := notificationMixinFields0[0].Descriptor()
	// notification.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	notification.TenantIDValidator = notificationDescTenantID.Validators[0].(func(string) error)
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescRecipientID is the schema descriptor for recipient_id field.
	notificationDescRecipientID := notificationFields[1].Descriptor()
	// notification.RecipientIDValidator is a validator for the "recipient_id" field. It is called by the builders before save.
	notification.RecipientIDValidator = notificationDescRecipientID.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = func() func(string) error {
		validators := notificationDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[4].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[7].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	poisonedeventMixin := schema.PoisonedEvent{}.Mixin()
	poisonedeventMixinFields0 := poisonedeventMixin[0].Fields()
	_ = poisonedeventMixinFields0
	poisonedeventMixinFields1 := poisonedeventMixin[1].Fields()
	_ = poisonedeventMixinFields1
	poisonedeventFields := schema.PoisonedEvent{}.Fields()
	_ = poisonedeventFields
	// poisonedeventDescTenantID is the schema descriptor for tenant_id field.
	poisonedeventDescTenantID := poisonedeventMixinFields0[0].Descriptor()
	// poisonedevent.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	poisonedevent.TenantIDValidator = poisonedeventDescTenantID.Validators[0].(func(string) error)
	// poisonedeventDescCreatedAt is the schema descriptor for created_at field.
	poisonedeventDescCreatedAt := poisonedeventMixinFields1[0].Descriptor()
	// poisonedevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	poisonedevent.DefaultCreatedAt = poisonedeventDescCreatedAt.Default.(func() time.Time)
	// poisonedeventDescSubscriber is the schema descriptor for subscriber field.
	poisonedeventDescSubscriber := poisonedeventFields[1].Descriptor()
	// poisonedevent.SubscriberValidator is a validator for the "subscriber" field. It is called by the builders before save.
	poisonedevent.SubscriberValidator = poisonedeventDescSubscriber.Validators[0].(func(string) error)
	// poisonedeventDescEventID is the schema descriptor for event_id field.
	poisonedeventDescEventID := poisonedeventFields[3].Descriptor()
	// poisonedevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	poisonedevent.EventIDValidator = poisonedeventDescEventID.Validators[0].(func(string) error)
	// poisonedeventDescEventType is the schema descriptor for event_type field.
	poisonedeventDescEventType := poisonedeventFields[4].Descriptor()
	// poisonedevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	poisonedevent.EventTypeValidator = poisonedeventDescEventType.Validators[0].(func(string) error)
	// poisonedeventDescAggregateID is the schema descriptor for aggregate_id field.
	poisonedeventDescAggregateID := poisonedeventFields[5].Descriptor()
	// poisonedevent.AggregateIDValidator is a validator for the "aggregate_id" field. It is called by the builders before save.
	poisonedevent.AggregateIDValidator = poisonedeventDescAggregateID.Validators[0].(func(string) error)
	// poisonedeventDescLastError is the schema descriptor for last_error field.
	poisonedeventDescLastError := poisonedeventFields[7].Descriptor()
	// poisonedevent.LastErrorValidator is a validator for the "last_error" field. It is called by the builders before save.
	poisonedevent.LastErrorValidator = poisonedeventDescLastError.Validators[0].(func(string) error)
	projectionoffsetFields := schema.ProjectionOffset{}.Fields()
	_ = projectionoffsetFields
	// projectionoffsetDescPosition is the schema descriptor for position field.
	projectionoffsetDescPosition := projectionoffsetFields[1].Descriptor()
	// projectionoffset.DefaultPosition holds the default value on creation for the position field.
	projectionoffset.DefaultPosition = projectionoffsetDescPosition.Default.(int64)
	provisioningprogressMixin := schema.ProvisioningProgress{}.Mixin()
	provisioningprogressMixinFields0 := provisioningprogressMixin[0].Fields()
	_ = provisioningprogressMixinFields0
	provisioningprogressFields := schema.ProvisioningProgress{}.Fields()
	_ = provisioningprogressFields
	// provisioningprogressDescTenantID is the schema descriptor for tenant_id field.
	provisioningprogressDescTenantID := provisioningprogressMixinFields0[0].Descriptor()
	// provisioningprogress.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	provisioningprogress.TenantIDValidator = provisioningprogressDescTenantID.Validators[0].(func(string) error)
	requestprojectionMixin := schema.RequestProjection{}.Mixin()
	requestprojectionMixinFields0 := requestprojectionMixin[0].Fields()
	_ = requestprojectionMixinFields0
	requestprojectionFields := schema.RequestProjection{}.Fields()
	_ = requestprojectionFields
	// requestprojectionDescTenantID is the schema descriptor for tenant_id field.
	requestprojectionDescTenantID := requestprojectionMixinFields0[0].Descriptor()
	// requestprojection.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	requestprojection.TenantIDValidator = requestprojectionDescTenantID.Validators[0].(func(string) error)
	// requestprojectionDescProjectID is the schema descriptor for project_id field.
	requestprojectionDescProjectID := requestprojectionFields[1].Descriptor()
	// requestprojection.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	requestprojection.ProjectIDValidator = requestprojectionDescProjectID.Validators[0].(func(string) error)
	// requestprojectionDescProjectName is the schema descriptor for project_name field.
	requestprojectionDescProjectName := requestprojectionFields[2].Descriptor()
	// requestprojection.ProjectNameValidator is a validator for the "project_name" field. It is called by the builders before save.
	requestprojection.ProjectNameValidator = requestprojectionDescProjectName.Validators[0].(func(string) error)
	// requestprojectionDescRequesterID is the schema descriptor for requester_id field.
	requestprojectionDescRequesterID := requestprojectionFields[3].Descriptor()
	// requestprojection.RequesterIDValidator is a validator for the "requester_id" field. It is called by the builders before save.
	requestprojection.RequesterIDValidator = requestprojectionDescRequesterID.Validators[0].(func(string) error)
	// requestprojectionDescRequesterName is the schema descriptor for requester_name field.
	requestprojectionDescRequesterName := requestprojectionFields[4].Descriptor()
	// requestprojection.RequesterNameValidator is a validator for the "requester_name" field. It is called by the builders before save.
	requestprojection.RequesterNameValidator = requestprojectionDescRequesterName.Validators[0].(func(string) error)
	// requestprojectionDescRequesterEmail is the schema descriptor for requester_email field.
	requestprojectionDescRequesterEmail := requestprojectionFields[5].Descriptor()
	// requestprojection.RequesterEmailValidator is a validator for the "requester_email" field. It is called by the builders before save.
	requestprojection.RequesterEmailValidator = requestprojectionDescRequesterEmail.Validators[0].(func(string) error)
	// requestprojectionDescVMName is the schema descriptor for vm_name field.
	requestprojectionDescVMName := requestprojectionFields[6].Descriptor()
	// requestprojection.VMNameValidator is a validator for the "vm_name" field. It is called by the builders before save.
	requestprojection.VMNameValidator = requestprojectionDescVMName.Validators[0].(func(string) error)
	// requestprojectionDescJustification is the schema descriptor for justification field.
	requestprojectionDescJustification := requestprojectionFields[11].Descriptor()
	// requestprojection.JustificationValidator is a validator for the "justification" field. It is called by the builders before save.
	requestprojection.JustificationValidator = requestprojectionDescJustification.Validators[0].(func(string) error)
	// requestprojectionDescRejectionReason is the schema descriptor for rejection_reason field.
	requestprojectionDescRejectionReason := requestprojectionFields[15].Descriptor()
	// requestprojection.RejectionReasonValidator is a validator for the "rejection_reason" field. It is called by the builders before save.
	requestprojection.RejectionReasonValidator = requestprojectionDescRejectionReason.Validators[0].(func(string) error)
	// requestprojectionDescVersion is the schema descriptor for version field.
	requestprojectionDescVersion := requestprojectionFields[22].Descriptor()
	// requestprojection.DefaultVersion holds the default value on creation for the version field.
	requestprojection.DefaultVersion = requestprojectionDescVersion.Default.(int64)
	timelineentryMixin := schema.TimelineEntry{}.Mixin()
	timelineentryMixinFields0 := timelineentryMixin[0].Fields()
	_ = timelineentryMixinFields0
	timelineentryMixinFields1 := timelineentryMixin[1].Fields()
	_ = timelineentryMixinFields1
	timelineentryFields := schema.TimelineEntry{}.Fields()
	_ = timelineentryFields
	// timelineentryDescTenantID is the schema descriptor for tenant_id field.
	timelineentryDescTenantID := timelineentryMixinFields0[0].Descriptor()
	// timelineentry.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	timelineentry.TenantIDValidator = timelineentryDescTenantID.Validators[0].(func(string) error)
	// timelineentryDescCreatedAt is the schema descriptor for created_at field.
	timelineentryDescCreatedAt := timelineentryMixinFields1[0].Descriptor()
	// timelineentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	timelineentry.DefaultCreatedAt = timelineentryDescCreatedAt.Default.(func() time.Time)
	// timelineentryDescRequestID is the schema descriptor for request_id field.
	timelineentryDescRequestID := timelineentryFields[0].Descriptor()
	// timelineentry.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	timelineentry.RequestIDValidator = timelineentryDescRequestID.Validators[0].(func(string) error)
	// timelineentryDescEventType is the schema descriptor for event_type field.
	timelineentryDescEventType := timelineentryFields[1].Descriptor()
	// timelineentry.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	timelineentry.EventTypeValidator = timelineentryDescEventType.Validators[0].(func(string) error)
	// timelineentryDescDetails is the schema descriptor for details field.
	timelineentryDescDetails := timelineentryFields[3].Descriptor()
	// timelineentry.DetailsValidator is a validator for the "details" field. It is called by the builders before save.
	timelineentry.DetailsValidator = timelineentryDescDetails.Validators[0].(func(string) error)
	vmwareconfigMixin := schema.VmwareConfig{}.Mixin()
	vmwareconfigMixinFields0 := vmwareconfigMixin[0].Fields()
	_ = vmwareconfigMixinFields0
	vmwareconfigFields := schema.VmwareConfig{}.Fields()
	_ = vmwareconfigFields
	// vmwareconfigDescCreatedAt is the schema descriptor for created_at field.
	vmwareconfigDescCreatedAt := vmwareconfigMixinFields0[0].Descriptor()
	// vmwareconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	vmwareconfig.DefaultCreatedAt = vmwareconfigDescCreatedAt.Default.(func() time.Time)
	// vmwareconfigDescUpdatedAt is the schema descriptor for updated_at field.
	vmwareconfigDescUpdatedAt := vmwareconfigMixinFields0[1].Descriptor()
	// vmwareconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vmwareconfig.DefaultUpdatedAt = vmwareconfigDescUpdatedAt.Default.(func() time.Time)
	// vmwareconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vmwareconfig.UpdateDefaultUpdatedAt = vmwareconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vmwareconfigDescVcenterURL is the schema descriptor for vcenter_url field.
	vmwareconfigDescVcenterURL := vmwareconfigFields[1].Descriptor()
	// vmwareconfig.VcenterURLValidator is a validator for the "vcenter_url" field. It is called by the builders before save.
	vmwareconfig.VcenterURLValidator = vmwareconfigDescVcenterURL.Validators[0].(func(string) error)
	// vmwareconfigDescUsername is the schema descriptor for username field.
	vmwareconfigDescUsername := vmwareconfigFields[2].Descriptor()
	// vmwareconfig.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	vmwareconfig.UsernameValidator = vmwareconfigDescUsername.Validators[0].(func(string) error)
	// vmwareconfigDescPasswordEnc is the schema descriptor for password_enc field.
	vmwareconfigDescPasswordEnc := vmwareconfigFields[3].Descriptor()
	// vmwareconfig.PasswordEncValidator is a validator for the "password_enc" field. It is called by the builders before save.
	vmwareconfig.PasswordEncValidator = vmwareconfigDescPasswordEnc.Validators[0].(func(string) error)
	// vmwareconfigDescDatacenter is the schema descriptor for datacenter field.
	vmwareconfigDescDatacenter := vmwareconfigFields[4].Descriptor()
	// vmwareconfig.DatacenterValidator is a validator for the "datacenter" field. It is called by the builders before save.
	vmwareconfig.DatacenterValidator = vmwareconfigDescDatacenter.Validators[0].(func(string) error)
	// vmwareconfigDescCluster is the schema descriptor for cluster field.
	vmwareconfigDescCluster := vmwareconfigFields[5].Descriptor()
	// vmwareconfig.ClusterValidator is a validator for the "cluster" field. It is called by the builders before save.
	vmwareconfig.ClusterValidator = vmwareconfigDescCluster.Validators[0].(func(string) error)
	// vmwareconfigDescDatastore is the schema descriptor for datastore field.
	vmwareconfigDescDatastore := vmwareconfigFields[6].Descriptor()
	// vmwareconfig.DatastoreValidator is a validator for the "datastore" field. It is called by the builders before save.
	vmwareconfig.DatastoreValidator = vmwareconfigDescDatastore.Validators[0].(func(string) error)
	// vmwareconfigDescNetwork is the schema descriptor for network field.
	vmwareconfigDescNetwork := vmwareconfigFields[7].Descriptor()
	// vmwareconfig.NetworkValidator is a validator for the "network" field. It is called by the builders before save.
	vmwareconfig.NetworkValidator = vmwareconfigDescNetwork.Validators[0].(func(string) error)
	// vmwareconfigDescTemplate is the schema descriptor for template field.
	vmwareconfigDescTemplate := vmwareconfigFields[8].Descriptor()
	// vmwareconfig.TemplateValidator is a validator for the "template" field. It is called by the builders before save.
	vmwareconfig.TemplateValidator = vmwareconfigDescTemplate.Validators[0].(func(string) error)
	// vmwareconfigDescVersion is the schema descriptor for version field.
	vmwareconfigDescVersion := vmwareconfigFields[10].Descriptor()
	// vmwareconfig.DefaultVersion holds the default value on creation for the version field.
	vmwareconfig.DefaultVersion = vmwareconfigDescVersion.Default.(int64)
}
