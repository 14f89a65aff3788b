package wallet

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/LuckySpin_Go/internal/domain"
)

// MemoryStore keeps accounts in process memory
type MemoryStore struct {
	mu              sync.Mutex
	accounts        map[string]*MemoryAccount
	startingBalance int64
	initialCombo    int
}

// NewMemoryStore creates a store whose new accounts start with the given balance and combo
func NewMemoryStore(startingBalance int64, initialCombo int) *MemoryStore {
	return &MemoryStore{
		accounts:        make(map[string]*MemoryAccount),
		startingBalance: startingBalance,
		initialCombo:    initialCombo,
	}
}

// Account returns the player's account, creating it on first use
func (s *MemoryStore) Account(playerID string) Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[playerID]
	if !ok {
		acc = NewMemoryAccount(s.startingBalance, s.initialCombo)
		s.accounts[playerID] = acc
	}
	return acc
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}

// MemoryAccount is a single in-memory balance and combo
type MemoryAccount struct {
	mu      sync.Mutex
	balance int64
	combo   int
}

// NewMemoryAccount creates a standalone account
func NewMemoryAccount(balance int64, combo int) *MemoryAccount {
	return &MemoryAccount{balance: balance, combo: combo}
}

func (a *MemoryAccount) Balance(_ context.Context) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance, nil
}

func (a *MemoryAccount) Debit(_ context.Context, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance < amount {
		return a.balance, fmt.Errorf("%w: balance %d, need %d", domain.ErrInsufficientFunds, a.balance, amount)
	}
	a.balance -= amount
	return a.balance, nil
}

func (a *MemoryAccount) Credit(_ context.Context, amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += amount
	return a.balance, nil
}

func (a *MemoryAccount) Reset(_ context.Context, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = amount
	return nil
}

func (a *MemoryAccount) Combo(_ context.Context) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.combo, nil
}

func (a *MemoryAccount) SetCombo(_ context.Context, n int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.combo = n
	return nil
}
