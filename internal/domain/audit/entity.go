// internal/domain/audit/entity.go
package audit

import (
	"time"

	"github.com/your-org/logistics-backend/internal/domain/user"
)

// Common audit actions. The store accepts arbitrary action strings; these
// cover the dashboard's own mutations.
const (
	ActionLogin  = "login"
	ActionLogout = "logout"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionRead   = "read"
	ActionExport = "export"
)

// Entry is an append-only audit record
type Entry struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	User       *user.User `json:"user,omitempty"`
	Action     string     `json:"action"`
	Resource   string     `json:"resource"`
	ResourceID string     `json:"resource_id,omitempty"`
	Details    string     `json:"details,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// Filter narrows a query. Zero-value fields are ignored; provided fields
// are combined with AND semantics.
type Filter struct {
	UserID    string
	Resource  string
	Action    string
	StartDate time.Time
	EndDate   time.Time
}
