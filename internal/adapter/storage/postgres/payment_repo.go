package postgres

import (
	"context"
	"fmt"

	"quizvault/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PaymentRepo implements ports.PaymentRepository over processed_payments.
// transaction_id is the primary key, so a replay that slips past ExistsTx
// still fails on insert.
type PaymentRepo struct {
	pool Pool
}

func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

func (r *PaymentRepo) ExistsTx(ctx context.Context, tx pgx.Tx, transactionID string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM processed_payments WHERE transaction_id = $1)`,
		transactionID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check processed payment: %w", err)
	}
	return exists, nil
}

func (r *PaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.ProcessedPayment) error {
	query := `INSERT INTO processed_payments (transaction_id, user_id, provider, reward, receipt_enc, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query,
		p.TransactionID, p.UserID, string(p.Provider), p.Reward, p.ReceiptEnc, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPaymentAlreadyProcessed
		}
		return fmt.Errorf("insert processed payment: %w", err)
	}
	return nil
}
