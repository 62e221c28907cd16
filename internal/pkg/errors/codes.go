package errors

// Request lifecycle error codes.
const (
	CodeRequestNotFound  = "REQUEST_NOT_FOUND"
	CodeVMNotFound       = "VM_NOT_FOUND"
	CodeInvalidState     = "INVALID_STATE"
	CodeVersionConflict  = "VERSION_CONFLICT"
	CodeDuplicateRequest = "DUPLICATE_REQUEST"
	CodeSelfApproval     = "SELF_APPROVAL_FORBIDDEN"
	CodeNotRequester     = "NOT_REQUESTER"
	CodeAdminRequired    = "ADMIN_ROLE_REQUIRED"
)

// Tenant / identity error codes.
const (
	CodeTenantMissing  = "TENANT_CONTEXT_MISSING"
	CodeTenantMismatch = "TENANT_MISMATCH"
	CodeAuthFailed     = "AUTH_FAILED"
)

// Validation error codes.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNameInvalid      = "NAME_INVALID"
	CodeSizeInvalid      = "SIZE_INVALID"
)

// Policy error codes.
const (
	CodeQuotaExceeded = "QUOTA_EXCEEDED"
)

// Internal error codes.
const (
	CodeInternal = "INTERNAL_ERROR"
)

// Storage / codec error codes.
const (
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
	CodeUnknownEventType   = "UNKNOWN_EVENT_TYPE"
	CodeSnapshotCorrupt    = "SNAPSHOT_CORRUPT"
)

// Hypervisor error codes, aligned with the hypervisor port failure kinds.
const (
	CodeHypervisorTimeout       = "HYPERVISOR_TIMEOUT"
	CodeHypervisorAPI           = "HYPERVISOR_API_ERROR"
	CodeHypervisorNotFound      = "HYPERVISOR_NOT_FOUND"
	CodeHypervisorAuth          = "HYPERVISOR_AUTH_FAILED"
	CodeVMwareConfigMissing     = "VMWARE_CONFIG_MISSING"
	CodeVMwareConfigUnverified  = "VMWARE_CONFIG_UNVERIFIED"
	CodeVMwareConnectionFailure = "VMWARE_CONNECTION_FAILURE"
)
