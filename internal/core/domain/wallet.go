package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds a user's balances. Unlocks, ledger entries and processed
// payments live in their own stores keyed by UserID.
type Wallet struct {
	UserID    uuid.UUID `json:"userId"`
	Gold      int64     `json:"gold"`
	Crystals  int64     `json:"crystals"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewWallet returns the zero-balance wallet created at registration.
func NewWallet(userID uuid.UUID, now time.Time) *Wallet {
	return &Wallet{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TestUnlock records a one-time crystal purchase of a test.
type TestUnlock struct {
	TestID     string    `json:"testId"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

// UnlockedTestIDs projects unlocks to their ids, preserving order.
func UnlockedTestIDs(unlocks []TestUnlock) []string {
	ids := make([]string, 0, len(unlocks))
	for _, u := range unlocks {
		ids = append(ids, u.TestID)
	}
	return ids
}

// ExchangeQuote is the floor-aligned result of converting gold into crystals.
type ExchangeQuote struct {
	CrystalsToAdd int64
	GoldToDeduct  int64
}

// QuoteExchange converts goldAmount at rate gold per crystal. Any remainder
// below one crystal's worth is not deducted.
func QuoteExchange(goldAmount, rate int64) ExchangeQuote {
	if rate <= 0 || goldAmount < rate {
		return ExchangeQuote{}
	}
	crystals := goldAmount / rate
	return ExchangeQuote{
		CrystalsToAdd: crystals,
		GoldToDeduct:  crystals * rate,
	}
}
