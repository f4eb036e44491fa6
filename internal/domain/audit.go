package domain

import "time"

// AuditLog records one handled API request. Audit records are write-only from
// the analysis pipeline's point of view: nothing computed ever reads them back.
type AuditLog struct {
	ID        string    `json:"id"         db:"id"`
	RequestID string    `json:"request_id" db:"request_id"`
	Action    string    `json:"action"     db:"action"`
	Target    string    `json:"target"     db:"target"`
	Details   string    `json:"details"    db:"details"` // JSON blob
	IP        string    `json:"ip"         db:"ip"`
	UserAgent string    `json:"user_agent" db:"user_agent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AuditActionRequest labels the request-trail records written by the audit
// middleware.
const AuditActionRequest = "http_request"
