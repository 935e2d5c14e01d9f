package locks

import "time"

// LockLevel is the kind of restriction a lock applies.
type LockLevel string

const (
	LockLevelCanNotDelete LockLevel = "CanNotDelete"
	LockLevelNotSpecified LockLevel = "NotSpecified"
	LockLevelReadOnly     LockLevel = "ReadOnly"
)

// PossibleLockLevelValues returns the possible values for the LockLevel const type.
func PossibleLockLevelValues() []LockLevel {
	return []LockLevel{LockLevelCanNotDelete, LockLevelNotSpecified, LockLevelReadOnly}
}

// CreatedByType is the kind of identity that created or modified a resource.
type CreatedByType string

const (
	CreatedByTypeApplication     CreatedByType = "Application"
	CreatedByTypeKey             CreatedByType = "Key"
	CreatedByTypeManagedIdentity CreatedByType = "ManagedIdentity"
	CreatedByTypeUser            CreatedByType = "User"
)

// PossibleCreatedByTypeValues returns the possible values for the CreatedByType const type.
func PossibleCreatedByTypeValues() []CreatedByType {
	return []CreatedByType{
		CreatedByTypeApplication,
		CreatedByTypeKey,
		CreatedByTypeManagedIdentity,
		CreatedByTypeUser,
	}
}

// ManagementLockObject is a management lock.
type ManagementLockObject struct {
	// Properties of the lock. Level is required when creating or updating.
	Properties ManagementLockProperties `json:"properties" yaml:"properties"`

	ID         *string     `json:"id,omitempty" yaml:"id,omitempty"`
	Type       *string     `json:"type,omitempty" yaml:"type,omitempty"`
	Name       *string     `json:"name,omitempty" yaml:"name,omitempty"`
	SystemData *SystemData `json:"systemData,omitempty" yaml:"system_data,omitempty"`
}

// ManagementLockProperties are the settable fields of a lock.
type ManagementLockProperties struct {
	Level  LockLevel             `json:"level" yaml:"level" validate:"required,oneof=CanNotDelete NotSpecified ReadOnly"`
	Notes  *string               `json:"notes,omitempty" yaml:"notes,omitempty" validate:"omitempty,max=512"`
	Owners []ManagementLockOwner `json:"owners,omitempty" yaml:"owners,omitempty"`
}

// ManagementLockOwner identifies an application that owns a lock.
type ManagementLockOwner struct {
	ApplicationID *string `json:"applicationId,omitempty" yaml:"application_id,omitempty"`
}

// ManagementLockListResult is one page of locks.
type ManagementLockListResult struct {
	Value    []ManagementLockObject `json:"value,omitempty"`
	NextLink *string                `json:"nextLink,omitempty"`
}

// GetNextLink returns the continuation link, "" on the last page.
func (r ManagementLockListResult) GetNextLink() string {
	if r.NextLink == nil {
		return ""
	}
	return *r.NextLink
}

// SystemData is the ARM creation and modification metadata of a resource.
type SystemData struct {
	CreatedBy          *string        `json:"createdBy,omitempty" yaml:"created_by,omitempty"`
	CreatedByType      *CreatedByType `json:"createdByType,omitempty" yaml:"created_by_type,omitempty"`
	CreatedAt          *time.Time     `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	LastModifiedBy     *string        `json:"lastModifiedBy,omitempty" yaml:"last_modified_by,omitempty"`
	LastModifiedByType *CreatedByType `json:"lastModifiedByType,omitempty" yaml:"last_modified_by_type,omitempty"`
	LastModifiedAt     *time.Time     `json:"lastModifiedAt,omitempty" yaml:"last_modified_at,omitempty"`
}

// Operation is a Microsoft.Authorization REST operation.
type Operation struct {
	Name    *string           `json:"name,omitempty" yaml:"name,omitempty"`
	Display *OperationDisplay `json:"display,omitempty" yaml:"display,omitempty"`
}

// OperationDisplay describes an Operation for humans.
type OperationDisplay struct {
	Provider  *string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Resource  *string `json:"resource,omitempty" yaml:"resource,omitempty"`
	Operation *string `json:"operation,omitempty" yaml:"operation,omitempty"`
}

// OperationListResult is one page of operations.
type OperationListResult struct {
	Value    []Operation `json:"value,omitempty"`
	NextLink *string     `json:"nextLink,omitempty"`
}

// GetNextLink returns the continuation link, "" on the last page.
func (r OperationListResult) GetNextLink() string {
	if r.NextLink == nil {
		return ""
	}
	return *r.NextLink
}

// ErrorResponse is the ARM error envelope.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail is the body of an ARM error.
type ErrorDetail struct {
	Code    *string       `json:"code,omitempty"`
	Message *string       `json:"message,omitempty"`
	Target  *string       `json:"target,omitempty"`
	Details []ErrorDetail `json:"details,omitempty"`
}
