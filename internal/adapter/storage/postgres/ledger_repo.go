package postgres

import (
	"context"
	"fmt"

	"quizvault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository. Entries are append-only;
// seq records insertion order.
type LedgerRepo struct {
	pool Pool
}

func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

func (r *LedgerRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (id, user_id, type, gold_change, crystals_change, description, test_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.UserID, string(e.Type), e.GoldChange, e.CrystalsChange, e.Description, e.TestID, e.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// ListByUser returns the latest limit entries in insertion order; limit <= 0 returns all.
func (r *LedgerRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	const cols = `seq, id, user_id, type, gold_change, crystals_change, description, test_id, created_at`

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.pool.Query(ctx,
			`SELECT `+cols+` FROM (
				SELECT `+cols+` FROM ledger_entries WHERE user_id = $1 ORDER BY seq DESC LIMIT $2
			) recent ORDER BY seq ASC`,
			userID, limit,
		)
	} else {
		rows, err = r.pool.Query(ctx,
			`SELECT `+cols+` FROM ledger_entries WHERE user_id = $1 ORDER BY seq ASC`,
			userID,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var (
			seq       int64
			e         domain.LedgerEntry
			entryType string
		)
		if err := rows.Scan(&seq, &e.ID, &e.UserID, &entryType, &e.GoldChange, &e.CrystalsChange,
			&e.Description, &e.TestID, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.Type = domain.LedgerEntryType(entryType)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, nil
}
