package dto

import (
	"time"

	"quizvault/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ---- Auth ----

// RegisterRequest is the request body for password registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100" sanitize:"html"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,max=128" sanitize:"-"`
}

// LoginRequest is the request body for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required" sanitize:"-"`
}

// GoogleLoginRequest carries a Google ID token. Older clients send it as "token".
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" sanitize:"-"`
	Token   string `json:"token" sanitize:"-"`
}

// Credential returns whichever token field was set.
func (r GoogleLoginRequest) Credential() string {
	if r.IDToken != "" {
		return r.IDToken
	}
	return r.Token
}

// UserSummary is the user block returned by every sign-in.
type UserSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	PhotoURL *string `json:"photoUrl,omitempty"`
	Gold     int64   `json:"gold"`
	Crystals int64   `json:"crystals"`
}

// AuthResponse is the response body for register, login and Google login.
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"` // Unix timestamp
	User      UserSummary `json:"user"`
}

// MeResponse is the authenticated user without secrets.
type MeResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	GoogleID      *string   `json:"googleId,omitempty"`
	PhotoURL      *string   `json:"photoUrl,omitempty"`
	Gold          int64     `json:"gold"`
	Crystals      int64     `json:"crystals"`
	UnlockedTests []string  `json:"unlockedTests"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ---- Wallet ----

type EarnGoldRequest struct {
	Amount int64 `json:"amount"`
}

type ExchangeRequest struct {
	GoldAmount int64 `json:"goldAmount"`
}

type UnlockTestRequest struct {
	TestID string `json:"testId" binding:"required,max=128,test_id"`
}

// WalletResponse is GET /wallet: balances, unlocked ids and recent entries newest first.
type WalletResponse struct {
	Gold          int64                `json:"gold"`
	Crystals      int64                `json:"crystals"`
	UnlockedTests []string             `json:"unlockedTests"`
	Transactions  []domain.LedgerEntry `json:"transactions"`
}

type BalanceResponse struct {
	Success  bool  `json:"success"`
	Gold     int64 `json:"gold"`
	Crystals int64 `json:"crystals"`
}

type ExchangeResponse struct {
	BalanceResponse
	CrystalsAdded int64 `json:"crystalsAdded"`
	GoldDeducted  int64 `json:"goldDeducted"`
}

type UnlockResponse struct {
	Success         bool     `json:"success"`
	AlreadyUnlocked bool     `json:"alreadyUnlocked"`
	Crystals        int64    `json:"crystals"`
	UnlockedTests   []string `json:"unlockedTests"`
}

type UnlockStatusResponse struct {
	Unlocked bool  `json:"unlocked"`
	Crystals int64 `json:"crystals"`
	Gold     int64 `json:"gold"`
}

type TransactionsResponse struct {
	Transactions []domain.LedgerEntry `json:"transactions"`
}

// ---- Purchases ----

// GooglePlayVerifyRequest is a client-submitted Play purchase. goldReward is
// parsed leniently with ParseReward.
type GooglePlayVerifyRequest struct {
	ProductID     string `json:"productId" binding:"required,max=150,product_id"`
	PurchaseToken string `json:"purchaseToken" binding:"required,max=4096" sanitize:"-"`
	OrderID       string `json:"orderId" binding:"max=150"`
	GoldReward    Reward `json:"goldReward"`
}

type RazorpayCreateOrderRequest struct {
	AmountInRupees decimal.Decimal `json:"amountInRupees"`
}

type RazorpayOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// RazorpayVerifyRequest is the checkout handler payload Razorpay hands the client.
type RazorpayVerifyRequest struct {
	OrderID    string `json:"razorpay_order_id" binding:"max=64"`
	PaymentID  string `json:"razorpay_payment_id" binding:"max=64"`
	Signature  string `json:"razorpay_signature" binding:"max=256" sanitize:"-"`
	GoldReward Reward `json:"goldReward"`
}
