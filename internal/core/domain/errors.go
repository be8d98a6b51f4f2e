package domain

import "errors"

// Store-level conflicts surfaced by repositories on uniqueness violations.
var (
	ErrPaymentAlreadyProcessed = errors.New("payment already processed")
	ErrTestAlreadyUnlocked     = errors.New("test already unlocked")
	ErrEmailTaken              = errors.New("email already registered")
)
