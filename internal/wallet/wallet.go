package wallet

import "context"

// Wallet holds one player's balance. Debit never takes the balance below zero.
type Wallet interface {
	Balance(ctx context.Context) (int64, error)
	// Debit removes amount and returns the new balance, or domain.ErrInsufficientFunds
	// without mutation when the balance is too low.
	Debit(ctx context.Context, amount int64) (int64, error)
	Credit(ctx context.Context, amount int64) (int64, error)
	Reset(ctx context.Context, amount int64) error
}

// ComboStore holds one player's win-streak counter
type ComboStore interface {
	Combo(ctx context.Context) (int, error)
	SetCombo(ctx context.Context, n int) error
}

// Account bundles a player's balance and combo
type Account interface {
	Wallet
	ComboStore
}

// Store hands out per-player accounts, creating them on first use
type Store interface {
	Account(playerID string) Account
	Close() error
}
