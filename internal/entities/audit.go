package entities

import "time"

type AuditAction string

const (
	AuditActionAddBook   AuditAction = "add_book"
	AuditActionAddAuthor AuditAction = "add_author"
	AuditActionSeed      AuditAction = "seed"
	AuditActionExport    AuditAction = "export"
)

type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailed  AuditStatus = "failed"
)

// AuditEvent records one catalog mutation attempt and its outcome.
type AuditEvent struct {
	Action      AuditAction `json:"action"`
	Description string      `json:"description"` // Human-readable summary
	EntityKey   string      `json:"entity_key"`  // ISBN for books, author ID for authors
	Status      AuditStatus `json:"status"`
	ErrorMsg    string      `json:"error_msg,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
