package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"quizvault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, tx pgx.Tx, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	LinkGoogleAccount(ctx context.Context, id uuid.UUID, googleID string, photoURL *string) error
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error)
	UpdateBalances(ctx context.Context, tx pgx.Tx, userID uuid.UUID, gold, crystals int64) error
	Totals(ctx context.Context) (*WalletTotals, error)
}

// WalletTotals aggregates balances across all wallets.
type WalletTotals struct {
	Wallets  int64
	Gold     int64
	Crystals int64
}

// UnlockRepository persists the per-user set of unlocked tests.
type UnlockRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TestUnlock, error)
	Exists(ctx context.Context, userID uuid.UUID, testID string) (bool, error)
	ExistsTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, testID string) (bool, error)
	// Create returns domain.ErrTestAlreadyUnlocked on a duplicate (user, test) pair.
	Create(ctx context.Context, tx pgx.Tx, userID uuid.UUID, unlock domain.TestUnlock) error
}

// LedgerRepository persists append-only ledger entries.
type LedgerRepository interface {
	Append(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error
	// ListByUser returns the latest limit entries in insertion order.
	// limit <= 0 returns every entry.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error)
}

// PaymentRepository persists the replay guard of redeemed external payments.
type PaymentRepository interface {
	ExistsTx(ctx context.Context, tx pgx.Tx, transactionID string) (bool, error)
	// Create returns domain.ErrPaymentAlreadyProcessed when the id was already redeemed.
	Create(ctx context.Context, tx pgx.Tx, payment *domain.ProcessedPayment) error
}

// AuditRepository persists audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
