// Package memory is an in-process storage backend for development and tests.
// It honours the same locking contract as the Postgres backend: a wallet read
// with ForUpdate stays locked until the transaction ends, and uniqueness of
// emails, unlocks and processed payment ids is enforced at commit.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"quizvault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var errTxDone = errors.New("transaction already finished")

// Store holds all committed state.
type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]domain.User
	emails   map[string]uuid.UUID
	wallets  map[uuid.UUID]domain.Wallet
	unlocks  map[uuid.UUID][]domain.TestUnlock
	ledger   map[uuid.UUID][]domain.LedgerEntry
	payments map[string]domain.ProcessedPayment
	audit    []domain.AuditLog

	locksMu sync.Mutex
	locks   map[uuid.UUID]chan struct{}
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:    make(map[uuid.UUID]domain.User),
		emails:   make(map[string]uuid.UUID),
		wallets:  make(map[uuid.UUID]domain.Wallet),
		unlocks:  make(map[uuid.UUID][]domain.TestUnlock),
		ledger:   make(map[uuid.UUID][]domain.LedgerEntry),
		payments: make(map[string]domain.ProcessedPayment),
		locks:    make(map[uuid.UUID]chan struct{}),
	}
}

// Begin starts a transaction. It implements ports.DBTransactor.
func (s *Store) Begin(_ context.Context) (pgx.Tx, error) {
	return &Tx{store: s, held: make(map[uuid.UUID]chan struct{})}, nil
}

// Ping implements ports.HealthChecker.
func (s *Store) Ping(_ context.Context) error { return nil }

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "memory" }

func (s *Store) userLock(userID uuid.UUID) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	ch, ok := s.locks[userID]
	if !ok {
		ch = make(chan struct{}, 1)
		s.locks[userID] = ch
	}
	return ch
}

// Tx stages writes until Commit. Only Commit and Rollback are supported from
// the pgx.Tx surface; repositories in this package type-assert to *Tx.
type Tx struct {
	pgx.Tx

	store *Store
	held  map[uuid.UUID]chan struct{}
	done  bool

	users    []domain.User
	wallets  map[uuid.UUID]domain.Wallet
	unlocks  []stagedUnlock
	ledger   []domain.LedgerEntry
	payments []domain.ProcessedPayment
}

type stagedUnlock struct {
	userID uuid.UUID
	unlock domain.TestUnlock
}

// lock acquires the user's row lock for the life of the transaction.
func (tx *Tx) lock(ctx context.Context, userID uuid.UUID) error {
	if tx.done {
		return errTxDone
	}
	if _, ok := tx.held[userID]; ok {
		return nil
	}
	ch := tx.store.userLock(userID)
	select {
	case ch <- struct{}{}:
		tx.held[userID] = ch
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (tx *Tx) release() {
	for id, ch := range tx.held {
		<-ch
		delete(tx.held, id)
	}
	tx.done = true
}

// Commit validates uniqueness against committed state and applies every
// staged write, or none of them.
func (tx *Tx) Commit(_ context.Context) error {
	if tx.done {
		return errTxDone
	}
	defer tx.release()

	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range tx.users {
		if _, taken := s.emails[u.Email]; taken {
			return domain.ErrEmailTaken
		}
	}
	for _, p := range tx.payments {
		if _, seen := s.payments[p.TransactionID]; seen {
			return fmt.Errorf("payment %s: %w", p.TransactionID, domain.ErrPaymentAlreadyProcessed)
		}
	}
	for _, su := range tx.unlocks {
		if hasUnlock(s.unlocks[su.userID], su.unlock.TestID) {
			return domain.ErrTestAlreadyUnlocked
		}
	}

	for _, u := range tx.users {
		s.users[u.ID] = u
		s.emails[u.Email] = u.ID
	}
	for id, w := range tx.wallets {
		s.wallets[id] = w
	}
	for _, su := range tx.unlocks {
		s.unlocks[su.userID] = append(s.unlocks[su.userID], su.unlock)
	}
	for _, e := range tx.ledger {
		s.ledger[e.UserID] = append(s.ledger[e.UserID], e)
	}
	for _, p := range tx.payments {
		s.payments[p.TransactionID] = p
	}
	return nil
}

// Rollback discards staged writes. It is a no-op after Commit.
func (tx *Tx) Rollback(_ context.Context) error {
	if tx.done {
		return nil
	}
	tx.release()
	return nil
}

func asTx(tx pgx.Tx) (*Tx, error) {
	mtx, ok := tx.(*Tx)
	if !ok || mtx == nil {
		return nil, fmt.Errorf("memory store: unsupported transaction type %T", tx)
	}
	if mtx.done {
		return nil, errTxDone
	}
	return mtx, nil
}

func hasUnlock(unlocks []domain.TestUnlock, testID string) bool {
	for _, u := range unlocks {
		if u.TestID == testID {
			return true
		}
	}
	return false
}
