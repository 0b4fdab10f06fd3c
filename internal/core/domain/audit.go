package domain

import "time"

// Audit event actions recorded by the session service and route guard.
const (
	AuditLogin       = "login"
	AuditLogout      = "logout"
	AuditSessionLoad = "session_load"
	AuditGuardDenied = "guard_denied"
)

// AuditEvent is one entry in the console's authorization trail.
type AuditEvent struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Role       string    `json:"role,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Path       string    `json:"path,omitempty"`
	Decision   string    `json:"decision,omitempty"`
	Outcome    string    `json:"outcome,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
