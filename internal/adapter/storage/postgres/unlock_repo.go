package postgres

import (
	"context"
	"fmt"

	"quizvault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UnlockRepo implements ports.UnlockRepository over unlocked_tests.
type UnlockRepo struct {
	pool Pool
}

func NewUnlockRepo(pool Pool) *UnlockRepo {
	return &UnlockRepo{pool: pool}
}

// ListByUser returns unlocks in the order they were made.
func (r *UnlockRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TestUnlock, error) {
	query := `SELECT test_id, unlocked_at FROM unlocked_tests WHERE user_id = $1 ORDER BY unlocked_at, test_id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}
	defer rows.Close()

	unlocks := []domain.TestUnlock{}
	for rows.Next() {
		var u domain.TestUnlock
		if err := rows.Scan(&u.TestID, &u.UnlockedAt); err != nil {
			return nil, fmt.Errorf("scan unlock: %w", err)
		}
		unlocks = append(unlocks, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unlocks: %w", err)
	}
	return unlocks, nil
}

func (r *UnlockRepo) Exists(ctx context.Context, userID uuid.UUID, testID string) (bool, error) {
	return unlockExists(ctx, r.pool, userID, testID)
}

func (r *UnlockRepo) ExistsTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, testID string) (bool, error) {
	return unlockExists(ctx, tx, userID, testID)
}

// Create records an unlock within tx.
func (r *UnlockRepo) Create(ctx context.Context, tx pgx.Tx, userID uuid.UUID, u domain.TestUnlock) error {
	query := `INSERT INTO unlocked_tests (user_id, test_id, unlocked_at) VALUES ($1, $2, $3)`

	if _, err := tx.Exec(ctx, query, userID, u.TestID, u.UnlockedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTestAlreadyUnlocked
		}
		return fmt.Errorf("insert unlock: %w", err)
	}
	return nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func unlockExists(ctx context.Context, q rowQuerier, userID uuid.UUID, testID string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM unlocked_tests WHERE user_id = $1 AND test_id = $2)`,
		userID, testID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check unlock: %w", err)
	}
	return exists, nil
}
