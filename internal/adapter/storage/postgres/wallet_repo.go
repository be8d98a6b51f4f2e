package postgres

import (
	"context"
	"errors"
	"fmt"

	"quizvault/internal/core/domain"
	"quizvault/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet within tx.
func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `INSERT INTO wallets (user_id, gold, crystals, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, w.UserID, w.Gold, w.Crystals, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByUserID fetches a wallet without locking.
func (r *WalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT user_id, gold, crystals, created_at, updated_at FROM wallets WHERE user_id = $1`
	return scanWallet(r.pool.QueryRow(ctx, query, userID))
}

// GetByUserIDForUpdate fetches a wallet with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT user_id, gold, crystals, created_at, updated_at FROM wallets WHERE user_id = $1 FOR UPDATE`
	return scanWallet(tx.QueryRow(ctx, query, userID))
}

// UpdateBalances overwrites both balances of a locked wallet.
func (r *WalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, userID uuid.UUID, gold, crystals int64) error {
	query := `UPDATE wallets SET gold = $1, crystals = $2, updated_at = NOW() WHERE user_id = $3`

	tag, err := tx.Exec(ctx, query, gold, crystals, userID)
	if err != nil {
		return fmt.Errorf("update wallet balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", userID)
	}
	return nil
}

// Totals sums balances across all wallets.
func (r *WalletRepo) Totals(ctx context.Context) (*ports.WalletTotals, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(gold), 0), COALESCE(SUM(crystals), 0) FROM wallets`

	t := &ports.WalletTotals{}
	if err := r.pool.QueryRow(ctx, query).Scan(&t.Wallets, &t.Gold, &t.Crystals); err != nil {
		return nil, fmt.Errorf("sum wallets: %w", err)
	}
	return t, nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(&w.UserID, &w.Gold, &w.Crystals, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return w, nil
}
