package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionSignup       AuditAction = "SIGNUP"
	AuditActionSignin       AuditAction = "SIGNIN"
	AuditActionEditUser     AuditAction = "EDIT_USER"
	AuditActionCreateWallet AuditAction = "CREATE_WALLET"
	AuditActionEditWallet   AuditAction = "EDIT_WALLET"
	AuditActionDeleteWallet AuditAction = "DELETE_WALLET"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	UserID       *int64      `json:"user_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
