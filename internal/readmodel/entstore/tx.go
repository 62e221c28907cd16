package entstore

import (
	"context"
	"time"

	"vc-drover.io/drover/ent"
	entnotification "vc-drover.io/drover/ent/notification"
	"vc-drover.io/drover/ent/projectionoffset"
	"vc-drover.io/drover/ent/provisioningprogress"
	"vc-drover.io/drover/ent/requestprojection"
	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/readmodel"
)

// tx adapts an ent.Tx to the readmodel.Tx port.
type tx struct {
	tx *ent.Tx
}

var _ readmodel.Tx = (*tx)(nil)

// SetCursor implements readmodel.Tx.
func (t *tx) SetCursor(ctx context.Context, subscriber string, seq int64) error {
	n, err := t.tx.ProjectionOffset.Update().
		Where(projectionoffset.Subscriber(subscriber)).
		SetPosition(seq).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return apperrors.Persistence(err, "advance projection cursor")
	}
	if n > 0 {
		return nil
	}
	_, err = t.tx.ProjectionOffset.Create().
		SetSubscriber(subscriber).
		SetPosition(seq).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return apperrors.Persistence(err, "create projection cursor")
	}
	return nil
}

// UpsertRequest implements readmodel.Tx. Events at or below the stored
// version are already applied; re-delivery is a no-op.
func (t *tx) UpsertRequest(ctx context.Context, row readmodel.RequestRow) error {
	existing, err := t.tx.RequestProjection.Query().
		Where(requestprojection.ID(row.ID.String())).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		create := t.tx.RequestProjection.Create().
			SetID(row.ID.String()).
			SetTenantID(row.TenantID.String()).
			SetProjectID(row.ProjectID.String()).
			SetProjectName(row.ProjectName).
			SetRequesterID(row.RequesterID.String()).
			SetRequesterName(row.RequesterName).
			SetRequesterEmail(row.RequesterEmail).
			SetVMName(row.VMName).
			SetSize(requestprojection.Size(row.Size)).
			SetCPUCores(row.CPUCores).
			SetMemoryGB(row.MemoryGB).
			SetDiskGB(row.DiskGB).
			SetJustification(row.Justification).
			SetStatus(requestprojection.Status(row.Status)).
			SetDeciderName(row.DeciderName).
			SetRejectionReason(row.RejectionReason).
			SetVMID(row.VMID.String()).
			SetVmwareVMID(row.VmwareVMID).
			SetIPAddress(row.IPAddress).
			SetHostname(row.Hostname).
			SetCreatedAt(row.CreatedAt).
			SetUpdatedAt(row.UpdatedAt).
			SetVersion(row.Version)
		if !row.DecidedAt.IsZero() {
			create = create.SetDecidedAt(row.DecidedAt)
		}
		if _, err := create.Save(ctx); err != nil {
			return apperrors.Persistence(err, "create request projection")
		}
		return nil
	case err != nil:
		return apperrors.Persistence(err, "load request projection")
	}

	if existing.Version >= row.Version {
		return nil
	}
	update := existing.Update().
		SetProjectName(row.ProjectName).
		SetRequesterName(row.RequesterName).
		SetRequesterEmail(row.RequesterEmail).
		SetVMName(row.VMName).
		SetStatus(requestprojection.Status(row.Status)).
		SetDeciderName(row.DeciderName).
		SetRejectionReason(row.RejectionReason).
		SetVMID(row.VMID.String()).
		SetVmwareVMID(row.VmwareVMID).
		SetIPAddress(row.IPAddress).
		SetHostname(row.Hostname).
		SetUpdatedAt(row.UpdatedAt).
		SetVersion(row.Version)
	if !row.DecidedAt.IsZero() {
		update = update.SetDecidedAt(row.DecidedAt)
	}
	if _, err := update.Save(ctx); err != nil {
		return apperrors.Persistence(err, "update request projection")
	}
	return nil
}

// AppendTimeline implements readmodel.Tx. A unique-index hit means the same
// event was already applied.
func (t *tx) AppendTimeline(ctx context.Context, row readmodel.TimelineRow) error {
	_, err := t.tx.TimelineEntry.Create().
		SetTenantID(row.TenantID.String()).
		SetRequestID(row.RequestID.String()).
		SetEventType(row.EventType).
		SetActorName(row.ActorName).
		SetDetails(row.Details).
		SetOccurredAt(row.OccurredAt).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil
	}
	if err != nil {
		return apperrors.Persistence(err, "append timeline entry")
	}
	return nil
}

// UpsertProgress implements readmodel.Tx.
func (t *tx) UpsertProgress(ctx context.Context, row readmodel.ProgressRow) error {
	n, err := t.tx.ProvisioningProgress.Update().
		Where(provisioningprogress.RequestID(row.RequestID.String())).
		SetStage(provisioningprogress.Stage(row.Stage)).
		SetStageTimestamps(encodeStageTimestamps(row.StageTimestamps)).
		SetEstimatedRemainingSeconds(row.EstimatedRemainingSeconds).
		SetUpdatedAt(row.UpdatedAt).
		Save(ctx)
	if err != nil {
		return apperrors.Persistence(err, "update provisioning progress")
	}
	if n > 0 {
		return nil
	}
	_, err = t.tx.ProvisioningProgress.Create().
		SetTenantID(row.TenantID.String()).
		SetRequestID(row.RequestID.String()).
		SetStage(provisioningprogress.Stage(row.Stage)).
		SetStageTimestamps(encodeStageTimestamps(row.StageTimestamps)).
		SetEstimatedRemainingSeconds(row.EstimatedRemainingSeconds).
		SetUpdatedAt(row.UpdatedAt).
		Save(ctx)
	if err != nil {
		return apperrors.Persistence(err, "create provisioning progress")
	}
	return nil
}

// DeleteProgress implements readmodel.Tx.
func (t *tx) DeleteProgress(ctx context.Context, requestID domain.RequestID) error {
	_, err := t.tx.ProvisioningProgress.Delete().
		Where(provisioningprogress.RequestID(requestID.String())).
		Exec(ctx)
	if err != nil {
		return apperrors.Persistence(err, "delete provisioning progress")
	}
	return nil
}

// InsertDeadLetter implements readmodel.Tx.
func (t *tx) InsertDeadLetter(ctx context.Context, row readmodel.DeadLetterRow) error {
	id := row.ID
	if id == "" {
		id = newRowID()
	}
	_, err := t.tx.PoisonedEvent.Create().
		SetID(id).
		SetTenantID(row.TenantID.String()).
		SetSubscriber(row.Subscriber).
		SetGlobalSequence(row.GlobalSequence).
		SetEventID(row.EventID).
		SetEventType(row.EventType).
		SetAggregateID(row.AggregateID).
		SetAttempts(row.Attempts).
		SetLastError(row.LastError).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil // already dead-lettered
	}
	if err != nil {
		return apperrors.Persistence(err, "insert poisoned event")
	}
	return nil
}

// InsertNotification implements readmodel.Tx.
func (t *tx) InsertNotification(ctx context.Context, row readmodel.NotificationRow) error {
	id := row.ID
	if id == "" {
		id = newRowID()
	}
	_, err := t.tx.Notification.Create().
		SetID(id).
		SetTenantID(row.TenantID.String()).
		SetRecipientID(row.RecipientID.String()).
		SetType(entnotification.Type(row.Type)).
		SetTitle(row.Title).
		SetMessage(row.Message).
		SetResourceType(row.ResourceType).
		SetResourceID(row.ResourceID).
		SetRead(row.Read).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return nil // same event already dispatched
	}
	if err != nil {
		return apperrors.Persistence(err, "insert notification")
	}
	return nil
}
