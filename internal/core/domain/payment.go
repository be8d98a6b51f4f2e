package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentProvider identifies the origin of an external money-in event.
type PaymentProvider string

const (
	ProviderGooglePlay PaymentProvider = "google_play"
	ProviderRazorpay   PaymentProvider = "razorpay"
	ProviderAdNetwork  PaymentProvider = "ad_network"
)

// Valid reports whether p is a known provider.
func (p PaymentProvider) Valid() bool {
	switch p {
	case ProviderGooglePlay, ProviderRazorpay, ProviderAdNetwork:
		return true
	}
	return false
}

// ProcessedPayment marks an external transaction id as redeemed. Once stored
// the id is rejected for all future grants.
type ProcessedPayment struct {
	TransactionID string          `json:"transactionId"`
	UserID        uuid.UUID       `json:"userId"`
	Provider      PaymentProvider `json:"provider"`
	Reward        int64           `json:"reward"`
	ReceiptEnc    string          `json:"-"` // AES-256-GCM encrypted provider receipt
	CreatedAt     time.Time       `json:"createdAt"`
}

// RazorpayOrder is an order created with Razorpay on behalf of a user.
type RazorpayOrder struct {
	ID          string    `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	AmountPaise int64     `json:"amount"`
	Currency    string    `json:"currency"`
	Receipt     string    `json:"receipt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PlayPurchase is the subset of a Google Play product purchase the ledger needs.
type PlayPurchase struct {
	OrderID       string
	ProductID     string
	PurchaseState int64 // 0 purchased, 1 canceled, 2 pending
	// Acknowledged is false until the server acknowledges the purchase. Google
	// refunds purchases left unacknowledged for three days.
	Acknowledged bool
}

// Play purchase states as reported by the Android Publisher API.
const (
	PlayPurchaseStatePurchased int64 = 0
	PlayPurchaseStateCanceled  int64 = 1
	PlayPurchaseStatePending   int64 = 2
)

// IsPurchased reports whether the purchase completed.
func (p *PlayPurchase) IsPurchased() bool {
	return p.PurchaseState == PlayPurchaseStatePurchased
}
