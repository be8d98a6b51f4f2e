package service

import (
	"context"

	"quizvault/config"
	"quizvault/internal/core/domain"
	"quizvault/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RecordingLedgerSink appends entries to the ledger table in the caller's transaction.
type RecordingLedgerSink struct {
	repo ports.LedgerRepository
}

// NewRecordingLedgerSink creates a sink backed by repo.
func NewRecordingLedgerSink(repo ports.LedgerRepository) *RecordingLedgerSink {
	return &RecordingLedgerSink{repo: repo}
}

func (s *RecordingLedgerSink) Record(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error {
	return s.repo.Append(ctx, tx, entry)
}

func (s *RecordingLedgerSink) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

// NoopLedgerSink drops every entry. History reads return an empty list.
type NoopLedgerSink struct{}

func (NoopLedgerSink) Record(context.Context, pgx.Tx, *domain.LedgerEntry) error { return nil }

func (NoopLedgerSink) List(context.Context, uuid.UUID, int) ([]domain.LedgerEntry, error) {
	return []domain.LedgerEntry{}, nil
}

// NewLedgerSink picks the sink and the history read limit for a history mode.
func NewLedgerSink(mode string, recentLimit int, repo ports.LedgerRepository) (ports.LedgerSink, int) {
	switch mode {
	case config.HistoryOff:
		return NoopLedgerSink{}, 0
	case config.HistoryRecent:
		return NewRecordingLedgerSink(repo), recentLimit
	default:
		return NewRecordingLedgerSink(repo), 0
	}
}
