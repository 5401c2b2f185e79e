package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Board errors
	ErrMsgInvalidCellIndex = "invalid cell index"
	ErrMsgCellLocked       = "cell is locked"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Upgrade errors
	ErrMsgUnknownUpgrade   = "unknown upgrade"
	ErrMsgInvalidCategory  = "invalid upgrade category"
	ErrMsgUpgradeMaxed     = "upgrade is maxed"
	ErrMsgCategoryMismatch = "upgrade does not belong to category"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Board errors
	ErrInvalidCellIndex = errors.New(ErrMsgInvalidCellIndex)
	ErrCellLocked       = errors.New(ErrMsgCellLocked)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Upgrade errors
	ErrUnknownUpgrade   = errors.New(ErrMsgUnknownUpgrade)
	ErrInvalidCategory  = errors.New(ErrMsgInvalidCategory)
	ErrUpgradeMaxed     = errors.New(ErrMsgUpgradeMaxed)
	ErrCategoryMismatch = errors.New(ErrMsgCategoryMismatch)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
