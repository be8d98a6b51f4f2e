package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// LedgerEntryType represents the kind of balance-affecting event.
type LedgerEntryType string

const (
	LedgerEntryEarnGold      LedgerEntryType = "earn_gold"
	LedgerEntryExchange      LedgerEntryType = "exchange"
	LedgerEntryUnlockTest    LedgerEntryType = "unlock_test"
	LedgerEntryPaymentReward LedgerEntryType = "payment_reward"
)

// LedgerEntry is an immutable record of one balance change.
type LedgerEntry struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"-"`
	Type           LedgerEntryType `json:"type"`
	GoldChange     int64           `json:"goldChange"`
	CrystalsChange int64           `json:"crystalsChange"`
	Description    string          `json:"description"`
	TestID         *string         `json:"testId,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// NewEarnGoldEntry records gold earned from a practice quiz.
func NewEarnGoldEntry(userID uuid.UUID, amount int64, now time.Time) *LedgerEntry {
	return &LedgerEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        LedgerEntryEarnGold,
		GoldChange:  amount,
		Description: fmt.Sprintf("Earned %d gold from practice quiz", amount),
		Timestamp:   now,
	}
}

// NewExchangeEntry records a gold-to-crystal conversion.
func NewExchangeEntry(userID uuid.UUID, q ExchangeQuote, now time.Time) *LedgerEntry {
	return &LedgerEntry{
		ID:             uuid.New(),
		UserID:         userID,
		Type:           LedgerEntryExchange,
		GoldChange:     -q.GoldToDeduct,
		CrystalsChange: q.CrystalsToAdd,
		Description:    fmt.Sprintf("Exchanged %d gold for %d crystals", q.GoldToDeduct, q.CrystalsToAdd),
		Timestamp:      now,
	}
}

// NewUnlockEntry records crystals spent on a test.
func NewUnlockEntry(userID uuid.UUID, testID string, cost int64, now time.Time) *LedgerEntry {
	id := testID
	return &LedgerEntry{
		ID:             uuid.New(),
		UserID:         userID,
		Type:           LedgerEntryUnlockTest,
		CrystalsChange: -cost,
		Description:    fmt.Sprintf("Unlocked test: %s", testID),
		TestID:         &id,
		Timestamp:      now,
	}
}

// NewPaymentRewardEntry records gold granted for a verified external payment.
func NewPaymentRewardEntry(userID uuid.UUID, provider PaymentProvider, reward int64, now time.Time) *LedgerEntry {
	return &LedgerEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        LedgerEntryPaymentReward,
		GoldChange:  reward,
		Description: fmt.Sprintf("Redeemed %d gold via %s", reward, provider),
		Timestamp:   now,
	}
}

// SortNewestFirst orders entries by timestamp descending. Entries with equal
// timestamps keep their relative (insertion) order.
func SortNewestFirst(entries []LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}
