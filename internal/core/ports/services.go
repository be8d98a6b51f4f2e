package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"quizvault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService signs and verifies provider payment callbacks.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// HashService handles password hashing.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
}

// GoogleIdentityVerifier validates Google ID tokens issued to our client id.
type GoogleIdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

// GoogleIdentity is the verified payload of a Google ID token.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// PlayPurchaseVerifier checks a product purchase token with Google Play and
// acknowledges it once the reward is granted.
type PlayPurchaseVerifier interface {
	VerifyProductPurchase(ctx context.Context, productID, purchaseToken string) (*domain.PlayPurchase, error)
	Acknowledge(ctx context.Context, productID, purchaseToken string) error
}

// RazorpayGateway creates orders with Razorpay.
type RazorpayGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*domain.RazorpayOrder, error)
	KeyID() string
	KeySecret() string
}

// ProcessedPaymentCache is the Redis fast path of the replay guard.
// The database stays authoritative.
type ProcessedPaymentCache interface {
	IsProcessed(ctx context.Context, transactionID string) (bool, error)
	MarkProcessed(ctx context.Context, transactionID string, ttl time.Duration) error
}

// OrderCache remembers which user created a Razorpay order.
type OrderCache interface {
	Save(ctx context.Context, order *domain.RazorpayOrder, ttl time.Duration) error
	Get(ctx context.Context, orderID string) (*domain.RazorpayOrder, error) // nil, nil when unknown
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// LedgerSink receives ledger entries. A sink either records them or drops them.
type LedgerSink interface {
	Record(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error
	// List returns the latest limit entries in insertion order; limit <= 0 means all.
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error)
}

// LedgerMetrics observes ledger operation outcomes.
type LedgerMetrics interface {
	ObserveOperation(operation, outcome string)
}

// --- Service Ports (Business Logic) ---

// WalletService is the wallet ledger engine.
type WalletService interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
	GetOverview(ctx context.Context, userID uuid.UUID) (*WalletOverview, error)
	EarnGold(ctx context.Context, userID uuid.UUID, amount int64) (*Balances, error)
	ExchangeGoldForCrystals(ctx context.Context, userID uuid.UUID, goldAmount int64) (*ExchangeResult, error)
	UnlockTest(ctx context.Context, userID uuid.UUID, testID string) (*UnlockResult, error)
	CheckTestUnlocked(ctx context.Context, userID uuid.UUID, testID string) (*UnlockStatus, error)
	GetTransactionHistory(ctx context.Context, userID uuid.UUID) ([]domain.LedgerEntry, error)
	RedeemExternalPayment(ctx context.Context, req RedemptionRequest) (*Balances, error)
}

// Balances is the pair of currency balances after an operation.
type Balances struct {
	Gold     int64
	Crystals int64
}

// BalanceView is the read-only projection of a wallet.
type BalanceView struct {
	Gold            int64
	Crystals        int64
	UnlockedTestIDs []string
}

// WalletOverview is a BalanceView plus the most recent ledger entries, newest first.
type WalletOverview struct {
	BalanceView
	RecentTransactions []domain.LedgerEntry
}

// ExchangeResult reports balances and the amounts actually converted.
type ExchangeResult struct {
	Balances
	CrystalsAdded int64
	GoldDeducted  int64
}

// UnlockResult reports the unlock outcome. AlreadyUnlocked means nothing was charged.
type UnlockResult struct {
	Crystals        int64
	UnlockedTestIDs []string
	AlreadyUnlocked bool
}

// UnlockStatus reports test membership alongside current balances.
type UnlockStatus struct {
	Unlocked bool
	Crystals int64
	Gold     int64
}

// RedemptionRequest is an already-verified external payment.
type RedemptionRequest struct {
	UserID        uuid.UUID
	Provider      domain.PaymentProvider
	TransactionID string
	Reward        int64
	Receipt       string // provider proof kept encrypted at rest, optional
}

// PurchaseService verifies provider payloads and hands them to the ledger.
type PurchaseService interface {
	VerifyGooglePlayPurchase(ctx context.Context, req GooglePlayPurchaseRequest) (*Balances, error)
	CreateRazorpayOrder(ctx context.Context, userID uuid.UUID, amountInRupees decimal.Decimal) (*RazorpayOrderResponse, error)
	VerifyRazorpayPayment(ctx context.Context, req RazorpayPaymentRequest) (*Balances, error)
}

// GooglePlayPurchaseRequest holds a client-submitted Play purchase.
type GooglePlayPurchaseRequest struct {
	UserID        uuid.UUID
	ProductID     string
	PurchaseToken string
	OrderID       string
	GoldReward    int64
}

// RazorpayOrderResponse is what the client needs to open Razorpay checkout.
type RazorpayOrderResponse struct {
	OrderID     string
	AmountPaise int64
	Currency    string
	KeyID       string
}

// RazorpayPaymentRequest holds a client-submitted Razorpay checkout result.
type RazorpayPaymentRequest struct {
	UserID     uuid.UUID
	OrderID    string
	PaymentID  string
	Signature  string
	GoldReward int64
}

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GoogleLogin(ctx context.Context, idToken string) (*AuthResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
}

// RegisterRequest holds input for password registration.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is returned by every successful sign-in.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
	Gold      int64
	Crystals  int64
}

// UserProfile is a user record without secrets, with wallet state.
type UserProfile struct {
	User            *domain.User
	Gold            int64
	Crystals        int64
	UnlockedTestIDs []string
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
