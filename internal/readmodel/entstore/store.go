// Package entstore is the Postgres-backed read-model store. Projection rows
// live in Ent-managed tables; every write path a subscriber uses runs inside
// one Ent transaction so the cursor and the rows it covers commit together.
package entstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"vc-drover.io/drover/ent"
	entnotification "vc-drover.io/drover/ent/notification"
	"vc-drover.io/drover/ent/poisonedevent"
	"vc-drover.io/drover/ent/predicate"
	"vc-drover.io/drover/ent/projectionoffset"
	"vc-drover.io/drover/ent/provisioningprogress"
	"vc-drover.io/drover/ent/requestprojection"
	"vc-drover.io/drover/ent/timelineentry"
	"vc-drover.io/drover/ent/vmwareconfig"
	"vc-drover.io/drover/internal/domain"
	apperrors "vc-drover.io/drover/internal/pkg/errors"
	"vc-drover.io/drover/internal/readmodel"
	"vc-drover.io/drover/internal/tenant"
)

// Store implements readmodel.Store on an Ent client.
type Store struct {
	client *ent.Client
}

// New creates a store over the shared Ent client.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

var _ readmodel.Store = (*Store)(nil)

// Cursor implements readmodel.Store.
func (s *Store) Cursor(ctx context.Context, subscriber string) (int64, error) {
	offset, err := s.client.ProjectionOffset.Query().
		Where(projectionoffset.Subscriber(subscriber)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.Persistence(err, "load projection cursor")
	}
	return offset.Position, nil
}

// InTx implements readmodel.Store.
func (s *Store) InTx(ctx context.Context, fn func(tx readmodel.Tx) error) error {
	entTx, err := s.client.Tx(ctx)
	if err != nil {
		return apperrors.Persistence(err, "begin read-model tx")
	}
	if err := fn(&tx{tx: entTx}); err != nil {
		if rbErr := entTx.Rollback(); rbErr != nil {
			return apperrors.Persistence(err, fmt.Sprintf("rollback failed: %v", rbErr))
		}
		return err
	}
	if err := entTx.Commit(); err != nil {
		return apperrors.Persistence(err, "commit read-model tx")
	}
	return nil
}

// GetRequest implements readmodel.Store.
func (s *Store) GetRequest(ctx context.Context, id domain.RequestID) (*readmodel.RequestRow, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	row, err := s.client.RequestProjection.Query().
		Where(
			requestprojection.ID(id.String()),
			requestprojection.TenantID(tenantID.String()),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Persistence(err, "load request projection")
	}
	out := toRequestRow(row)
	return &out, nil
}

// ListByRequester implements readmodel.Store.
func (s *Store) ListByRequester(ctx context.Context, requesterID domain.UserID, page, size int) (*readmodel.RequestPage, error) {
	return s.listRequests(ctx, page, size,
		requestprojection.RequesterID(requesterID.String()),
	)
}

// ListPending implements readmodel.Store.
func (s *Store) ListPending(ctx context.Context, projectID *domain.ProjectID, page, size int) (*readmodel.RequestPage, error) {
	preds := []predicate.RequestProjection{
		requestprojection.StatusEQ(requestprojection.Status(domain.RequestPending)),
	}
	if projectID != nil {
		preds = append(preds, requestprojection.ProjectID(projectID.String()))
	}
	return s.listRequests(ctx, page, size, preds...)
}

func (s *Store) listRequests(ctx context.Context, page, size int, preds ...predicate.RequestProjection) (*readmodel.RequestPage, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	page, size = readmodel.ClampPageSize(page, size)

	query := s.client.RequestProjection.Query().
		Where(requestprojection.TenantID(tenantID.String())).
		Where(preds...)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, apperrors.Persistence(err, "count request projections")
	}
	rows, err := query.
		Order(ent.Desc(requestprojection.FieldCreatedAt), ent.Desc(requestprojection.FieldID)).
		Offset(page * size).
		Limit(size).
		All(ctx)
	if err != nil {
		return nil, apperrors.Persistence(err, "list request projections")
	}
	return &readmodel.RequestPage{
		Items:      toRequestRows(rows),
		TotalCount: total,
		Page:       page,
		Size:       size,
	}, nil
}

// ListTimeline implements readmodel.Store.
func (s *Store) ListTimeline(ctx context.Context, requestID domain.RequestID) ([]readmodel.TimelineRow, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.client.TimelineEntry.Query().
		Where(
			timelineentry.RequestID(requestID.String()),
			timelineentry.TenantID(tenantID.String()),
		).
		Order(ent.Asc(timelineentry.FieldOccurredAt)).
		All(ctx)
	if err != nil {
		return nil, apperrors.Persistence(err, "list timeline")
	}
	out := make([]readmodel.TimelineRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, readmodel.TimelineRow{
			RequestID:  domain.RequestID(row.RequestID),
			TenantID:   domain.TenantID(row.TenantID),
			EventType:  row.EventType,
			ActorName:  row.ActorName,
			Details:    row.Details,
			OccurredAt: row.OccurredAt,
		})
	}
	return out, nil
}

// GetProgress implements readmodel.Store.
func (s *Store) GetProgress(ctx context.Context, requestID domain.RequestID) (*readmodel.ProgressRow, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	row, err := s.client.ProvisioningProgress.Query().
		Where(
			provisioningprogress.RequestID(requestID.String()),
			provisioningprogress.TenantID(tenantID.String()),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Persistence(err, "load provisioning progress")
	}
	out := readmodel.ProgressRow{
		RequestID:                 domain.RequestID(row.RequestID),
		TenantID:                  domain.TenantID(row.TenantID),
		Stage:                     domain.Stage(row.Stage),
		StageTimestamps:           decodeStageTimestamps(row.StageTimestamps),
		EstimatedRemainingSeconds: row.EstimatedRemainingSeconds,
		UpdatedAt:                 row.UpdatedAt,
	}
	return &out, nil
}

// DistinctProjects implements readmodel.Store.
func (s *Store) DistinctProjects(ctx context.Context) ([]readmodel.ProjectSummary, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	var buckets []struct {
		ProjectID   string `json:"project_id"`
		ProjectName string `json:"project_name"`
		Count       int    `json:"count"`
	}
	err = s.client.RequestProjection.Query().
		Where(requestprojection.TenantID(tenantID.String())).
		GroupBy(requestprojection.FieldProjectID, requestprojection.FieldProjectName).
		Aggregate(ent.Count()).
		Scan(ctx, &buckets)
	if err != nil {
		return nil, apperrors.Persistence(err, "group projects")
	}
	out := make([]readmodel.ProjectSummary, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, readmodel.ProjectSummary{
			ProjectID:    domain.ProjectID(b.ProjectID),
			ProjectName:  b.ProjectName,
			RequestCount: b.Count,
		})
	}
	return out, nil
}

// GetVMwareConfig implements readmodel.Store.
func (s *Store) GetVMwareConfig(ctx context.Context) (*readmodel.VMwareConfig, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	row, err := s.client.VmwareConfig.Query().
		Where(vmwareconfig.TenantID(tenantID.String())).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Persistence(err, "load vmware config")
	}
	out := toVMwareConfig(row)
	return &out, nil
}

// SaveVMwareConfig implements readmodel.Store.
func (s *Store) SaveVMwareConfig(ctx context.Context, cfg readmodel.VMwareConfig) (*readmodel.VMwareConfig, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.client.VmwareConfig.Query().
		Where(vmwareconfig.TenantID(tenantID.String())).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		if cfg.Version != 0 {
			return nil, apperrors.ConcurrencyConflict(cfg.Version, 0)
		}
		created, err := s.client.VmwareConfig.Create().
			SetTenantID(tenantID.String()).
			SetVcenterURL(cfg.VCenterURL).
			SetUsername(cfg.Username).
			SetPasswordEnc(cfg.PasswordEnc).
			SetDatacenter(cfg.Datacenter).
			SetCluster(cfg.Cluster).
			SetDatastore(cfg.Datastore).
			SetNetwork(cfg.Network).
			SetTemplate(cfg.Template).
			SetVersion(1).
			Save(ctx)
		if err != nil {
			return nil, apperrors.Persistence(err, "create vmware config")
		}
		out := toVMwareConfig(created)
		return &out, nil
	case err != nil:
		return nil, apperrors.Persistence(err, "load vmware config")
	}

	if existing.Version != cfg.Version {
		return nil, apperrors.ConcurrencyConflict(cfg.Version, existing.Version)
	}
	// Re-verification is required after any change.
	updated, err := existing.Update().
		SetVcenterURL(cfg.VCenterURL).
		SetUsername(cfg.Username).
		SetPasswordEnc(cfg.PasswordEnc).
		SetDatacenter(cfg.Datacenter).
		SetCluster(cfg.Cluster).
		SetDatastore(cfg.Datastore).
		SetNetwork(cfg.Network).
		SetTemplate(cfg.Template).
		SetVersion(existing.Version + 1).
		ClearVerifiedAt().
		Save(ctx)
	if err != nil {
		return nil, apperrors.Persistence(err, "update vmware config")
	}
	out := toVMwareConfig(updated)
	return &out, nil
}

// MarkVMwareConfigVerified implements readmodel.Store.
func (s *Store) MarkVMwareConfigVerified(ctx context.Context, verifiedAt time.Time) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	n, err := s.client.VmwareConfig.Update().
		Where(vmwareconfig.TenantID(tenantID.String())).
		SetVerifiedAt(verifiedAt).
		Save(ctx)
	if err != nil {
		return apperrors.Persistence(err, "mark vmware config verified")
	}
	if n == 0 {
		return apperrors.NotFound(apperrors.CodeVMwareConfigMissing, "vmware configuration not found")
	}
	return nil
}

// ListDeadLetters implements readmodel.Store.
func (s *Store) ListDeadLetters(ctx context.Context, limit int) ([]readmodel.DeadLetterRow, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.PoisonedEvent.Query().
		Where(poisonedevent.TenantID(tenantID.String())).
		Order(ent.Desc(poisonedevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, apperrors.Persistence(err, "list poisoned events")
	}
	out := make([]readmodel.DeadLetterRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, readmodel.DeadLetterRow{
			ID:             row.ID,
			Subscriber:     row.Subscriber,
			GlobalSequence: row.GlobalSequence,
			EventID:        row.EventID,
			EventType:      row.EventType,
			AggregateID:    row.AggregateID,
			TenantID:       domain.TenantID(row.TenantID),
			Attempts:       row.Attempts,
			LastError:      row.LastError,
			CreatedAt:      row.CreatedAt,
		})
	}
	return out, nil
}

// ListNotifications implements readmodel.Store.
func (s *Store) ListNotifications(ctx context.Context, recipient domain.UserID, limit int) ([]readmodel.NotificationRow, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.Notification.Query().
		Where(
			entnotification.TenantID(tenantID.String()),
			entnotification.RecipientID(recipient.String()),
		).
		Order(ent.Desc(entnotification.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, apperrors.Persistence(err, "list notifications")
	}
	return lo.Map(rows, func(row *ent.Notification, _ int) readmodel.NotificationRow {
		return readmodel.NotificationRow{
			ID:           row.ID,
			TenantID:     domain.TenantID(row.TenantID),
			RecipientID:  domain.UserID(row.RecipientID),
			Type:         string(row.Type),
			Title:        row.Title,
			Message:      row.Message,
			ResourceType: row.ResourceType,
			ResourceID:   row.ResourceID,
			Read:         row.Read,
			ReadAt:       row.ReadAt,
			CreatedAt:    row.CreatedAt,
		}
	}), nil
}

// CountUnreadNotifications implements readmodel.Store.
func (s *Store) CountUnreadNotifications(ctx context.Context, recipient domain.UserID) (int, error) {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return 0, err
	}
	count, err := s.client.Notification.Query().
		Where(
			entnotification.TenantID(tenantID.String()),
			entnotification.RecipientID(recipient.String()),
			entnotification.Read(false),
		).
		Count(ctx)
	if err != nil {
		return 0, apperrors.Persistence(err, "count unread notifications")
	}
	return count, nil
}

// MarkNotificationRead implements readmodel.Store.
func (s *Store) MarkNotificationRead(ctx context.Context, recipient domain.UserID, id string) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	n, err := s.client.Notification.Update().
		Where(
			entnotification.ID(id),
			entnotification.TenantID(tenantID.String()),
			entnotification.RecipientID(recipient.String()),
			entnotification.Read(false),
		).
		SetRead(true).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return apperrors.Persistence(err, "mark notification read")
	}
	if n == 0 {
		// Either absent, foreign, or already read; only the first two are
		// errors, so check existence before reporting.
		exists, err := s.client.Notification.Query().
			Where(
				entnotification.ID(id),
				entnotification.TenantID(tenantID.String()),
				entnotification.RecipientID(recipient.String()),
			).
			Exist(ctx)
		if err != nil {
			return apperrors.Persistence(err, "check notification")
		}
		if !exists {
			return apperrors.NotFound("NOTIFICATION_NOT_FOUND", "notification not found")
		}
	}
	return nil
}

// MarkAllNotificationsRead implements readmodel.Store.
func (s *Store) MarkAllNotificationsRead(ctx context.Context, recipient domain.UserID) error {
	tenantID, err := tenant.FromContext(ctx)
	if err != nil {
		return err
	}
	_, err = s.client.Notification.Update().
		Where(
			entnotification.TenantID(tenantID.String()),
			entnotification.RecipientID(recipient.String()),
			entnotification.Read(false),
		).
		SetRead(true).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return apperrors.Persistence(err, "mark all notifications read")
	}
	return nil
}

// SystemListStalledProvisioning implements readmodel.Store.
func (s *Store) SystemListStalledProvisioning(ctx context.Context, before time.Time) ([]readmodel.RequestRow, error) {
	rows, err := s.client.RequestProjection.Query().
		Where(
			requestprojection.StatusEQ(requestprojection.Status(domain.RequestProvisioning)),
			requestprojection.UpdatedAtLT(before),
		).
		All(ctx)
	if err != nil {
		return nil, apperrors.Persistence(err, "list stalled provisioning")
	}
	return toRequestRows(rows), nil
}

// SystemListReadyRequests implements readmodel.Store.
func (s *Store) SystemListReadyRequests(ctx context.Context) ([]readmodel.RequestRow, error) {
	rows, err := s.client.RequestProjection.Query().
		Where(
			requestprojection.StatusEQ(requestprojection.Status(domain.RequestReady)),
			requestprojection.VMIDNEQ(""),
		).
		All(ctx)
	if err != nil {
		return nil, apperrors.Persistence(err, "list ready requests")
	}
	return toRequestRows(rows), nil
}

func toRequestRows(rows []*ent.RequestProjection) []readmodel.RequestRow {
	return lo.Map(rows, func(row *ent.RequestProjection, _ int) readmodel.RequestRow {
		return toRequestRow(row)
	})
}

func toRequestRow(row *ent.RequestProjection) readmodel.RequestRow {
	out := readmodel.RequestRow{
		ID:              domain.RequestID(row.ID),
		TenantID:        domain.TenantID(row.TenantID),
		ProjectID:       domain.ProjectID(row.ProjectID),
		ProjectName:     row.ProjectName,
		RequesterID:     domain.UserID(row.RequesterID),
		RequesterName:   row.RequesterName,
		RequesterEmail:  row.RequesterEmail,
		VMName:          row.VMName,
		Size:            domain.VMSize(row.Size),
		CPUCores:        row.CPUCores,
		MemoryGB:        row.MemoryGB,
		DiskGB:          row.DiskGB,
		Justification:   row.Justification,
		Status:          domain.RequestStatus(row.Status),
		DeciderName:     row.DeciderName,
		RejectionReason: row.RejectionReason,
		VMID:            domain.VMID(row.VMID),
		VmwareVMID:      row.VmwareVMID,
		IPAddress:       row.IPAddress,
		Hostname:        row.Hostname,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		Version:         row.Version,
	}
	if row.DecidedAt != nil {
		out.DecidedAt = *row.DecidedAt
	}
	return out
}

func toVMwareConfig(row *ent.VmwareConfig) readmodel.VMwareConfig {
	return readmodel.VMwareConfig{
		TenantID:    domain.TenantID(row.TenantID),
		VCenterURL:  row.VcenterURL,
		Username:    row.Username,
		PasswordEnc: row.PasswordEnc,
		Datacenter:  row.Datacenter,
		Cluster:     row.Cluster,
		Datastore:   row.Datastore,
		Network:     row.Network,
		Template:    row.Template,
		VerifiedAt:  row.VerifiedAt,
		UpdatedAt:   row.UpdatedAt,
		Version:     row.Version,
	}
}

func encodeStageTimestamps(ts map[domain.Stage]time.Time) map[string]string {
	out := make(map[string]string, len(ts))
	for stage, at := range ts {
		out[string(stage)] = at.UTC().Format(time.RFC3339Nano)
	}
	return out
}

func decodeStageTimestamps(raw map[string]string) map[domain.Stage]time.Time {
	out := make(map[domain.Stage]time.Time, len(raw))
	for stage, s := range raw {
		at, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			continue
		}
		out[domain.Stage(stage)] = at
	}
	return out
}

func newRowID() string { return uuid.NewString() }
