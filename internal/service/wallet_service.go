package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"quizvault/internal/core/domain"
	"quizvault/internal/core/ports"
	"quizvault/pkg/apperror"
	"quizvault/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// EconomyRules are the tunable constants of the ledger.
type EconomyRules struct {
	ExchangeRate int64 // gold per crystal
	UnlockCost   int64 // crystals per test
	// HistoryLimit caps GetTransactionHistory; 0 returns the full history.
	HistoryLimit int
	// RecentLimit caps the entries shown with the wallet overview.
	RecentLimit int
	// ProcessedPaymentTTL is how long the Redis fast path remembers a redeemed id.
	ProcessedPaymentTTL time.Duration
}

// DefaultEconomyRules returns the rates the mobile client ships with.
func DefaultEconomyRules() EconomyRules {
	return EconomyRules{
		ExchangeRate:        100,
		UnlockCost:          5,
		RecentLimit:         10,
		ProcessedPaymentTTL: 30 * 24 * time.Hour,
	}
}

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo   ports.WalletRepository
	unlockRepo   ports.UnlockRepository
	paymentRepo  ports.PaymentRepository
	sink         ports.LedgerSink
	paymentCache ports.ProcessedPaymentCache // nil = no fast path
	encSvc       ports.EncryptionService     // nil = receipts not stored
	transactor   ports.DBTransactor
	metrics      ports.LedgerMetrics // nil = not observed
	rules        EconomyRules
	log          zerolog.Logger
	now          func() time.Time
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	unlockRepo ports.UnlockRepository,
	paymentRepo ports.PaymentRepository,
	sink ports.LedgerSink,
	paymentCache ports.ProcessedPaymentCache,
	encSvc ports.EncryptionService,
	transactor ports.DBTransactor,
	metrics ports.LedgerMetrics,
	rules EconomyRules,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo:   walletRepo,
		unlockRepo:   unlockRepo,
		paymentRepo:  paymentRepo,
		sink:         sink,
		paymentCache: paymentCache,
		encSvc:       encSvc,
		transactor:   transactor,
		metrics:      metrics,
		rules:        rules,
		log:          logger.For(log, logger.Wallet),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// GetBalance returns gold, crystals and unlocked test ids.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, userID uuid.UUID) (*ports.BalanceView, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("User")
	}

	unlocks, err := s.unlockRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("list unlocks: %w", err))
	}

	return &ports.BalanceView{
		Gold:            wallet.Gold,
		Crystals:        wallet.Crystals,
		UnlockedTestIDs: domain.UnlockedTestIDs(unlocks),
	}, nil
}

// GetOverview returns the balance view plus the most recent ledger entries.
func (s *WalletServiceImpl) GetOverview(ctx context.Context, userID uuid.UUID) (*ports.WalletOverview, error) {
	view, err := s.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.sink.List(ctx, userID, s.rules.RecentLimit)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("list recent ledger entries: %w", err))
	}
	domain.SortNewestFirst(recent)

	return &ports.WalletOverview{
		BalanceView:        *view,
		RecentTransactions: recent,
	}, nil
}

// EarnGold credits gold reported by the client for a completed practice quiz.
func (s *WalletServiceImpl) EarnGold(ctx context.Context, userID uuid.UUID, amount int64) (*ports.Balances, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	var result ports.Balances
	err := s.withLockedWallet(ctx, userID, func(tx pgx.Tx, w *domain.Wallet) error {
		newGold, err := addGold(w.Gold, amount)
		if err != nil {
			return err
		}
		if err := s.walletRepo.UpdateBalances(ctx, tx, userID, newGold, w.Crystals); err != nil {
			return storeError("update balances", err)
		}
		if err := s.sink.Record(ctx, tx, domain.NewEarnGoldEntry(userID, amount, s.now())); err != nil {
			return storeError("record ledger entry", err)
		}
		result = ports.Balances{Gold: newGold, Crystals: w.Crystals}
		return nil
	})
	s.observe("earn_gold", err)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Int64("amount", amount).
		Int64("gold", result.Gold).
		Msg("gold earned")

	return &result, nil
}

// ExchangeGoldForCrystals converts gold at the configured rate. Only whole
// crystals are bought; the remainder stays in the wallet.
func (s *WalletServiceImpl) ExchangeGoldForCrystals(ctx context.Context, userID uuid.UUID, goldAmount int64) (*ports.ExchangeResult, error) {
	rate := s.rules.ExchangeRate
	if goldAmount < rate {
		return nil, apperror.Validation(fmt.Sprintf("Minimum %d gold required", rate))
	}
	quote := domain.QuoteExchange(goldAmount, rate)

	var result ports.ExchangeResult
	err := s.withLockedWallet(ctx, userID, func(tx pgx.Tx, w *domain.Wallet) error {
		if w.Gold < quote.GoldToDeduct {
			return apperror.ErrInsufficientFunds("gold", quote.GoldToDeduct, w.Gold)
		}

		newGold := w.Gold - quote.GoldToDeduct
		newCrystals := w.Crystals + quote.CrystalsToAdd
		if err := s.walletRepo.UpdateBalances(ctx, tx, userID, newGold, newCrystals); err != nil {
			return storeError("update balances", err)
		}
		if err := s.sink.Record(ctx, tx, domain.NewExchangeEntry(userID, quote, s.now())); err != nil {
			return storeError("record ledger entry", err)
		}

		result = ports.ExchangeResult{
			Balances:      ports.Balances{Gold: newGold, Crystals: newCrystals},
			CrystalsAdded: quote.CrystalsToAdd,
			GoldDeducted:  quote.GoldToDeduct,
		}
		return nil
	})
	s.observe("exchange", err)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Int64("gold_deducted", quote.GoldToDeduct).
		Int64("crystals_added", quote.CrystalsToAdd).
		Msg("gold exchanged")

	return &result, nil
}

// UnlockTest spends crystals on a test. Unlocking an already unlocked test
// succeeds without charging.
func (s *WalletServiceImpl) UnlockTest(ctx context.Context, userID uuid.UUID, testID string) (*ports.UnlockResult, error) {
	testID = strings.TrimSpace(testID)
	if testID == "" {
		return nil, apperror.Validation("Test ID is required")
	}
	cost := s.rules.UnlockCost

	var result ports.UnlockResult
	err := s.withLockedWallet(ctx, userID, func(tx pgx.Tx, w *domain.Wallet) error {
		// Every unlock write holds this wallet's lock, so the committed set
		// cannot change underneath us.
		unlocks, err := s.unlockRepo.ListByUser(ctx, userID)
		if err != nil {
			return storeError("list unlocks", err)
		}

		already, err := s.unlockRepo.ExistsTx(ctx, tx, userID, testID)
		if err != nil {
			return storeError("check unlock", err)
		}
		if already {
			result = ports.UnlockResult{
				Crystals:        w.Crystals,
				UnlockedTestIDs: domain.UnlockedTestIDs(unlocks),
				AlreadyUnlocked: true,
			}
			return nil
		}

		if w.Crystals < cost {
			return apperror.ErrInsufficientFunds("crystals", cost, w.Crystals)
		}

		now := s.now()
		newCrystals := w.Crystals - cost
		if err := s.walletRepo.UpdateBalances(ctx, tx, userID, w.Gold, newCrystals); err != nil {
			return storeError("update balances", err)
		}
		unlock := domain.TestUnlock{TestID: testID, UnlockedAt: now}
		if err := s.unlockRepo.Create(ctx, tx, userID, unlock); err != nil {
			return storeError("insert unlock", err)
		}
		if err := s.sink.Record(ctx, tx, domain.NewUnlockEntry(userID, testID, cost, now)); err != nil {
			return storeError("record ledger entry", err)
		}

		result = ports.UnlockResult{
			Crystals:        newCrystals,
			UnlockedTestIDs: append(domain.UnlockedTestIDs(unlocks), testID),
		}
		return nil
	})
	s.observe("unlock_test", err)
	if err != nil {
		return nil, err
	}

	if !result.AlreadyUnlocked {
		s.log.Info().
			Str("user_id", userID.String()).
			Str("test_id", testID).
			Int64("crystals", result.Crystals).
			Msg("test unlocked")
	}

	return &result, nil
}

// CheckTestUnlocked reports whether testID is unlocked, with current balances.
func (s *WalletServiceImpl) CheckTestUnlocked(ctx context.Context, userID uuid.UUID, testID string) (*ports.UnlockStatus, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("User")
	}

	unlocked := false
	if testID = strings.TrimSpace(testID); testID != "" {
		unlocked, err = s.unlockRepo.Exists(ctx, userID, testID)
		if err != nil {
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("check unlock: %w", err))
		}
	}

	return &ports.UnlockStatus{
		Unlocked: unlocked,
		Crystals: wallet.Crystals,
		Gold:     wallet.Gold,
	}, nil
}

// GetTransactionHistory returns ledger entries newest first.
func (s *WalletServiceImpl) GetTransactionHistory(ctx context.Context, userID uuid.UUID) ([]domain.LedgerEntry, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("User")
	}

	entries, err := s.sink.List(ctx, userID, s.rules.HistoryLimit)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("list ledger entries: %w", err))
	}
	domain.SortNewestFirst(entries)
	return entries, nil
}

// RedeemExternalPayment grants gold for a payment an adapter has already
// verified. Each transaction id is redeemed at most once: the processed-id
// insert and the balance update commit in the same transaction.
func (s *WalletServiceImpl) RedeemExternalPayment(ctx context.Context, req ports.RedemptionRequest) (*ports.Balances, error) {
	txID := strings.TrimSpace(req.TransactionID)
	if txID == "" {
		return nil, apperror.Validation("Transaction ID is required")
	}
	if !req.Provider.Valid() {
		return nil, apperror.Validation("Unknown payment provider")
	}
	reward := req.Reward
	if reward < 0 {
		reward = 0
	}

	// Layer 1: Redis replay check
	if s.paymentCache != nil {
		seen, err := s.paymentCache.IsProcessed(ctx, txID)
		if err != nil {
			s.log.Warn().Err(err).Str("transaction_id", txID).Msg("redis replay check failed, falling through to DB")
		} else if seen {
			s.observe("redeem_payment", apperror.ErrDuplicateRedemption())
			return nil, apperror.ErrDuplicateRedemption()
		}
	}

	var receiptEnc string
	if s.encSvc != nil && req.Receipt != "" {
		enc, err := s.encSvc.Encrypt(req.Receipt)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt receipt: %w", err))
		}
		receiptEnc = enc
	}

	// Layer 2: authoritative check under the wallet lock
	var (
		result   ports.Balances
		credited int64
	)
	err := s.withLockedWallet(ctx, req.UserID, func(tx pgx.Tx, w *domain.Wallet) error {
		processed, err := s.paymentRepo.ExistsTx(ctx, tx, txID)
		if err != nil {
			return storeError("check processed payment", err)
		}
		if processed {
			return apperror.ErrDuplicateRedemption()
		}

		// The id is consumed even when the balance is already at the ceiling.
		credited = min(reward, math.MaxInt64-w.Gold)
		newGold := w.Gold + credited

		now := s.now()
		payment := &domain.ProcessedPayment{
			TransactionID: txID,
			UserID:        req.UserID,
			Provider:      req.Provider,
			Reward:        credited,
			ReceiptEnc:    receiptEnc,
			CreatedAt:     now,
		}
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return storeError("insert processed payment", err)
		}
		if err := s.walletRepo.UpdateBalances(ctx, tx, req.UserID, newGold, w.Crystals); err != nil {
			return storeError("update balances", err)
		}
		if err := s.sink.Record(ctx, tx, domain.NewPaymentRewardEntry(req.UserID, req.Provider, credited, now)); err != nil {
			return storeError("record ledger entry", err)
		}

		result = ports.Balances{Gold: newGold, Crystals: w.Crystals}
		return nil
	})
	s.observe("redeem_payment", err)

	if err != nil {
		if apperror.HasCode(err, apperror.CodeDuplicateRedemption) {
			s.log.Warn().
				Str("user_id", req.UserID.String()).
				Str("provider", string(req.Provider)).
				Str("transaction_id", txID).
				Msg("replayed payment rejected")
			s.markProcessed(ctx, txID)
		}
		return nil, err
	}

	s.markProcessed(ctx, txID)

	s.log.Info().
		Str("user_id", req.UserID.String()).
		Str("provider", string(req.Provider)).
		Str("transaction_id", txID).
		Int64("reward", credited).
		Msg("external payment redeemed")

	return &result, nil
}

// withLockedWallet runs fn in a transaction that holds the user's wallet
// lock and commits if fn succeeds.
func (s *WalletServiceImpl) withLockedWallet(ctx context.Context, userID uuid.UUID, fn func(tx pgx.Tx, w *domain.Wallet) error) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrStoreUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, dbTx, userID)
	if err != nil {
		return apperror.ErrStoreUnavailable(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return apperror.ErrNotFound("User")
	}

	if err := fn(dbTx, wallet); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return storeError("commit tx", err)
	}
	return nil
}

func (s *WalletServiceImpl) markProcessed(ctx context.Context, txID string) {
	if s.paymentCache == nil {
		return
	}
	if err := s.paymentCache.MarkProcessed(ctx, txID, s.rules.ProcessedPaymentTTL); err != nil {
		s.log.Warn().Err(err).Str("transaction_id", txID).Msg("failed to cache processed payment in redis")
	}
}

func (s *WalletServiceImpl) observe(operation string, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			outcome = appErr.Code
		} else {
			outcome = "error"
		}
	}
	s.metrics.ObserveOperation(operation, outcome)
}

// storeError maps repository failures onto the ledger taxonomy. A uniqueness
// conflict on the processed-payment id is a replay, anything else is a store fault.
func storeError(op string, err error) error {
	if errors.Is(err, domain.ErrPaymentAlreadyProcessed) {
		return apperror.ErrDuplicateRedemption()
	}
	return apperror.ErrStoreUnavailable(fmt.Errorf("%s: %w", op, err))
}

func addGold(balance, amount int64) (int64, error) {
	if amount > math.MaxInt64-balance {
		return 0, apperror.Validation("Amount too large")
	}
	return balance + amount, nil
}
