package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionRegister       AuditAction = "REGISTER"
	AuditActionLogin          AuditAction = "LOGIN"
	AuditActionGoogleLogin    AuditAction = "GOOGLE_LOGIN"
	AuditActionEarnGold       AuditAction = "EARN_GOLD"
	AuditActionExchange       AuditAction = "EXCHANGE"
	AuditActionUnlockTest     AuditAction = "UNLOCK_TEST"
	AuditActionRedeemPlay     AuditAction = "REDEEM_GOOGLE_PLAY"
	AuditActionRazorpayOrder  AuditAction = "RAZORPAY_ORDER"
	AuditActionRedeemRazorpay AuditAction = "REDEEM_RAZORPAY"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	UserID       *uuid.UUID  `json:"user_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
