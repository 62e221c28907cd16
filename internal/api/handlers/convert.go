package handlers

import (
	"time"

	"github.com/samber/lo"

	"vc-drover.io/drover/internal/command"
	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/hypervisor"
	"vc-drover.io/drover/internal/query"
	"vc-drover.io/drover/internal/readmodel"
)

// ---- Response DTOs ----

// RequestResponse is the API shape of one VM request.
type RequestResponse struct {
	ID              string     `json:"id"`
	ProjectID       string     `json:"project_id"`
	ProjectName     string     `json:"project_name"`
	RequesterID     string     `json:"requester_id"`
	RequesterName   string     `json:"requester_name"`
	VMName          string     `json:"vm_name"`
	EffectiveName   string     `json:"effective_name"`
	Size            string     `json:"size"`
	CPUCores        int        `json:"cpu_cores"`
	MemoryGB        int        `json:"memory_gb"`
	DiskGB          int        `json:"disk_gb"`
	Justification   string     `json:"justification"`
	Status          string     `json:"status"`
	DeciderName     string     `json:"decider_name,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	IPAddress       string     `json:"ip_address,omitempty"`
	Hostname        string     `json:"hostname,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// RequestListResponse is a page of requests.
type RequestListResponse struct {
	Items      []RequestResponse `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// TimelineResponse is one audit entry.
type TimelineResponse struct {
	EventType  string    `json:"event_type"`
	ActorName  string    `json:"actor_name,omitempty"`
	Details    string    `json:"details,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ProgressResponse is the live provisioning progress.
type ProgressResponse struct {
	Stage                     string               `json:"stage"`
	StageTimestamps           map[string]time.Time `json:"stage_timestamps"`
	EstimatedRemainingSeconds int                  `json:"estimated_remaining_seconds"`
	UpdatedAt                 time.Time            `json:"updated_at"`
}

// RequestDetailResponse is a request with its timeline and, while
// provisioning, its progress.
type RequestDetailResponse struct {
	Request  RequestResponse    `json:"request"`
	Timeline []TimelineResponse `json:"timeline"`
	Progress *ProgressResponse  `json:"progress,omitempty"`
}

// ProjectResponse is one project summary.
type ProjectResponse struct {
	ProjectID    string `json:"project_id"`
	ProjectName  string `json:"project_name"`
	RequestCount int    `json:"request_count"`
}

// NotificationResponse is one inbox entry.
type NotificationResponse struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	ResourceType string     `json:"resource_type,omitempty"`
	ResourceID   string     `json:"resource_id,omitempty"`
	Read         bool       `json:"read"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// DeadLetterResponse is one poisoned projection event.
type DeadLetterResponse struct {
	ID             string    `json:"id"`
	Subscriber     string    `json:"subscriber"`
	GlobalSequence int64     `json:"global_sequence"`
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	AggregateID    string    `json:"aggregate_id"`
	Attempts       int       `json:"attempts"`
	LastError      string    `json:"last_error"`
	CreatedAt      time.Time `json:"created_at"`
}

// VMwareConfigResponse is the admin view of the tenant's vCenter settings.
// The credential never appears; has_password signals whether one is stored.
type VMwareConfigResponse struct {
	VCenterURL  string     `json:"vcenter_url"`
	Username    string     `json:"username"`
	HasPassword bool       `json:"has_password"`
	Datacenter  string     `json:"datacenter"`
	Cluster     string     `json:"cluster"`
	Datastore   string     `json:"datastore"`
	Network     string     `json:"network"`
	Template    string     `json:"template"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Version     int64      `json:"version"`
}

// ConnectionTestResponse is the result of an admin connection test.
type ConnectionTestResponse struct {
	Version    string `json:"vcenter_version"`
	Datacenter string `json:"datacenter"`
	Cluster    string `json:"cluster"`
	LatencyMS  int64  `json:"latency_ms"`
}

// ---- Converters ----

func requestToAPI(row readmodel.RequestRow) RequestResponse {
	out := RequestResponse{
		ID:              row.ID.String(),
		ProjectID:       row.ProjectID.String(),
		ProjectName:     row.ProjectName,
		RequesterID:     row.RequesterID.String(),
		RequesterName:   row.RequesterName,
		VMName:          row.VMName,
		EffectiveName:   domain.EffectiveVMName(row.ProjectName, row.VMName),
		Size:            string(row.Size),
		CPUCores:        row.CPUCores,
		MemoryGB:        row.MemoryGB,
		DiskGB:          row.DiskGB,
		Justification:   row.Justification,
		Status:          string(row.Status),
		DeciderName:     row.DeciderName,
		RejectionReason: row.RejectionReason,
		IPAddress:       row.IPAddress,
		Hostname:        row.Hostname,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if !row.DecidedAt.IsZero() {
		decided := row.DecidedAt
		out.DecidedAt = &decided
	}
	return out
}

func pageToAPI(page *readmodel.RequestPage) RequestListResponse {
	totalPages := 0
	if page.Size > 0 {
		totalPages = (page.TotalCount + page.Size - 1) / page.Size
	}
	return RequestListResponse{
		Items: lo.Map(page.Items, func(row readmodel.RequestRow, _ int) RequestResponse {
			return requestToAPI(row)
		}),
		Pagination: Pagination{
			Page:       page.Page,
			Size:       page.Size,
			Total:      page.TotalCount,
			TotalPages: totalPages,
		},
	}
}

func timelineToAPI(rows []readmodel.TimelineRow) []TimelineResponse {
	return lo.Map(rows, func(row readmodel.TimelineRow, _ int) TimelineResponse {
		return TimelineResponse{
			EventType:  row.EventType,
			ActorName:  row.ActorName,
			Details:    row.Details,
			OccurredAt: row.OccurredAt,
		}
	})
}

func progressToAPI(row *readmodel.ProgressRow) *ProgressResponse {
	if row == nil {
		return nil
	}
	stamps := make(map[string]time.Time, len(row.StageTimestamps))
	for stage, at := range row.StageTimestamps {
		stamps[string(stage)] = at
	}
	return &ProgressResponse{
		Stage:                     string(row.Stage),
		StageTimestamps:           stamps,
		EstimatedRemainingSeconds: row.EstimatedRemainingSeconds,
		UpdatedAt:                 row.UpdatedAt,
	}
}

func detailToAPI(detail *query.RequestDetail) RequestDetailResponse {
	return RequestDetailResponse{
		Request:  requestToAPI(detail.Request),
		Timeline: timelineToAPI(detail.Timeline),
		Progress: progressToAPI(detail.Progress),
	}
}

func notificationToAPI(row readmodel.NotificationRow) NotificationResponse {
	return NotificationResponse{
		ID:           row.ID,
		Type:         row.Type,
		Title:        row.Title,
		Message:      row.Message,
		ResourceType: row.ResourceType,
		ResourceID:   row.ResourceID,
		Read:         row.Read,
		ReadAt:       row.ReadAt,
		CreatedAt:    row.CreatedAt,
	}
}

func deadLetterToAPI(row readmodel.DeadLetterRow) DeadLetterResponse {
	return DeadLetterResponse{
		ID:             row.ID,
		Subscriber:     row.Subscriber,
		GlobalSequence: row.GlobalSequence,
		EventID:        row.EventID,
		EventType:      row.EventType,
		AggregateID:    row.AggregateID,
		Attempts:       row.Attempts,
		LastError:      row.LastError,
		CreatedAt:      row.CreatedAt,
	}
}

func configViewToAPI(view *command.VMwareConfigView) VMwareConfigResponse {
	return VMwareConfigResponse{
		VCenterURL:  view.VCenterURL,
		Username:    view.Username,
		HasPassword: view.HasPassword,
		Datacenter:  view.Datacenter,
		Cluster:     view.Cluster,
		Datastore:   view.Datastore,
		Network:     view.Network,
		Template:    view.Template,
		VerifiedAt:  view.VerifiedAt,
		UpdatedAt:   view.UpdatedAt,
		Version:     view.Version,
	}
}

func connectionToAPI(result *hypervisor.ConnectionResult) ConnectionTestResponse {
	return ConnectionTestResponse{
		Version:    result.Version,
		Datacenter: result.Datacenter,
		Cluster:    result.Cluster,
		LatencyMS:  result.LatencyMS,
	}
}
