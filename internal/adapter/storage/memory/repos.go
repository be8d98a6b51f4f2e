package memory

import (
	"context"
	"fmt"
	"time"

	"quizvault/internal/core/domain"
	"quizvault/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// --- Users ---

type UserRepo struct{ s *Store }

func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(_ context.Context, tx pgx.Tx, user *domain.User) error {
	mtx, err := asTx(tx)
	if err != nil {
		return err
	}
	r.s.mu.RLock()
	_, taken := r.s.emails[user.Email]
	r.s.mu.RUnlock()
	if taken {
		return domain.ErrEmailTaken
	}
	mtx.users = append(mtx.users, *user)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.emails[email]
	if !ok {
		return nil, nil
	}
	u := r.s.users[id]
	return &u, nil
}

func (r *UserRepo) LinkGoogleAccount(_ context.Context, id uuid.UUID, googleID string, photoURL *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	u.GoogleID = &googleID
	if photoURL != nil {
		u.PhotoURL = photoURL
	}
	u.UpdatedAt = time.Now().UTC()
	r.s.users[id] = u
	return nil
}

// --- Wallets ---

type WalletRepo struct{ s *Store }

func NewWalletRepository(s *Store) *WalletRepo { return &WalletRepo{s: s} }

func (r *WalletRepo) Create(_ context.Context, tx pgx.Tx, wallet *domain.Wallet) error {
	mtx, err := asTx(tx)
	if err != nil {
		return err
	}
	if mtx.wallets == nil {
		mtx.wallets = make(map[uuid.UUID]domain.Wallet)
	}
	mtx.wallets[wallet.UserID] = *wallet
	return nil
}

func (r *WalletRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.wallets[userID]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

// GetByUserIDForUpdate locks the wallet until tx ends.
func (r *WalletRepo) GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error) {
	mtx, err := asTx(tx)
	if err != nil {
		return nil, err
	}
	if err := mtx.lock(ctx, userID); err != nil {
		return nil, fmt.Errorf("lock wallet: %w", err)
	}
	if w, ok := mtx.wallets[userID]; ok {
		return &w, nil
	}
	return r.GetByUserID(ctx, userID)
}

func (r *WalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, userID uuid.UUID, gold, crystals int64) error {
	mtx, err := asTx(tx)
	if err != nil {
		return err
	}
	if _, ok := mtx.held[userID]; !ok {
		return fmt.Errorf("wallet %s updated without lock", userID)
	}
	if gold < 0 || crystals < 0 {
		return fmt.Errorf("negative balance for wallet %s", userID)
	}
	w, ok := mtx.wallets[userID]
	if !ok {
		cur, err := r.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if cur == nil {
			return fmt.Errorf("wallet %s not found", userID)
		}
		w = *cur
	}
	w.Gold = gold
	w.Crystals = crystals
	w.UpdatedAt = time.Now().UTC()
	if mtx.wallets == nil {
		mtx.wallets = make(map[uuid.UUID]domain.Wallet)
	}
	mtx.wallets[userID] = w
	return nil
}

func (r *WalletRepo) Totals(_ context.Context) (*ports.WalletTotals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t := &ports.WalletTotals{}
	for _, w := range r.s.wallets {
		t.Wallets++
		t.Gold += w.Gold
		t.Crystals += w.Crystals
	}
	return t, nil
}

// --- Unlocks ---

type UnlockRepo struct{ s *Store }

func NewUnlockRepository(s *Store) *UnlockRepo { return &UnlockRepo{s: s} }

func (r *UnlockRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.TestUnlock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.TestUnlock, len(r.s.unlocks[userID]))
	copy(out, r.s.unlocks[userID])
	return out, nil
}

func (r *UnlockRepo) Exists(_ context.Context, userID uuid.UUID, testID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return hasUnlock(r.s.unlocks[userID], testID), nil
}

func (r *UnlockRepo) ExistsTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, testID string) (bool, error) {
	mtx, err := asTx(tx)
	if err != nil {
		return false, err
	}
	for _, su := range mtx.unlocks {
		if su.userID == userID && su.unlock.TestID == testID {
			return true, nil
		}
	}
	return r.Exists(ctx, userID, testID)
}

func (r *UnlockRepo) Create(ctx context.Context, tx pgx.Tx, userID uuid.UUID, unlock domain.TestUnlock) error {
	exists, err := r.ExistsTx(ctx, tx, userID, unlock.TestID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrTestAlreadyUnlocked
	}
	mtx, _ := asTx(tx)
	mtx.unlocks = append(mtx.unlocks, stagedUnlock{userID: userID, unlock: unlock})
	return nil
}

// --- Ledger ---

type LedgerRepo struct{ s *Store }

func NewLedgerRepository(s *Store) *LedgerRepo { return &LedgerRepo{s: s} }

func (r *LedgerRepo) Append(_ context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error {
	mtx, err := asTx(tx)
	if err != nil {
		return err
	}
	mtx.ledger = append(mtx.ledger, *entry)
	return nil
}

func (r *LedgerRepo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := r.s.ledger[userID]
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	out := make([]domain.LedgerEntry, len(all))
	copy(out, all)
	return out, nil
}

// --- Processed payments ---

type PaymentRepo struct{ s *Store }

func NewPaymentRepository(s *Store) *PaymentRepo { return &PaymentRepo{s: s} }

func (r *PaymentRepo) ExistsTx(_ context.Context, tx pgx.Tx, transactionID string) (bool, error) {
	mtx, err := asTx(tx)
	if err != nil {
		return false, err
	}
	for _, p := range mtx.payments {
		if p.TransactionID == transactionID {
			return true, nil
		}
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.payments[transactionID]
	return ok, nil
}

func (r *PaymentRepo) Create(ctx context.Context, tx pgx.Tx, payment *domain.ProcessedPayment) error {
	exists, err := r.ExistsTx(ctx, tx, payment.TransactionID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrPaymentAlreadyProcessed
	}
	mtx, _ := asTx(tx)
	mtx.payments = append(mtx.payments, *payment)
	return nil
}

// Get returns a committed processed payment; used by tests and tooling.
func (r *PaymentRepo) Get(_ context.Context, transactionID string) (*domain.ProcessedPayment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.payments[transactionID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// --- Audit ---

type AuditRepo struct{ s *Store }

func NewAuditRepository(s *Store) *AuditRepo { return &AuditRepo{s: s} }

func (r *AuditRepo) Create(_ context.Context, log *domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.audit = append(r.s.audit, *log)
	return nil
}

// List returns a copy of every audit row in insertion order.
func (r *AuditRepo) List() []domain.AuditLog {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.AuditLog, len(r.s.audit))
	copy(out, r.s.audit)
	return out
}
