package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Wallet errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "amount must be positive"

	// Spin errors
	ErrMsgSpinInProgress = "a spin is already in progress"
	ErrMsgInvalidBet     = "invalid bet"

	// Auto-spin errors
	ErrMsgAutoSpinActive     = "auto-spin is already running"
	ErrMsgAutoSpinNotRunning = "auto-spin is not running"

	// Configuration errors
	ErrMsgUnknownMode    = "unknown game mode"
	ErrMsgUnknownVariant = "unknown symbol variant"
	ErrMsgInvalidTable   = "invalid paytable"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	// ErrSpinInProgress is returned when a spin is requested while another is in flight
	ErrSpinInProgress = errors.New(ErrMsgSpinInProgress)
	ErrInvalidBet     = errors.New(ErrMsgInvalidBet)

	ErrAutoSpinActive     = errors.New(ErrMsgAutoSpinActive)
	ErrAutoSpinNotRunning = errors.New(ErrMsgAutoSpinNotRunning)

	ErrUnknownMode    = errors.New(ErrMsgUnknownMode)
	ErrUnknownVariant = errors.New(ErrMsgUnknownVariant)
	ErrInvalidTable   = errors.New(ErrMsgInvalidTable)

	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrDatabaseError  = errors.New(ErrMsgDatabaseError)
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
)
