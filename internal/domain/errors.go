package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Error classes
	ErrMsgNotFound          = "not found"
	ErrMsgConflict          = "conflict"
	ErrMsgLimitExceeded     = "limit exceeded"
	ErrMsgInsufficientStock = "insufficient stock"
	ErrMsgInvalidState      = "invalid state"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"

	// Auth errors
	ErrMsgInvalidCredentials = "invalid credentials"
)

// Error classes. Every concrete domain error wraps exactly one of these so
// callers can branch on the class with errors.Is.
var (
	ErrNotFound          = errors.New(ErrMsgNotFound)
	ErrConflict          = errors.New(ErrMsgConflict)
	ErrLimitExceeded     = errors.New(ErrMsgLimitExceeded)
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
	ErrInvalidState      = errors.New(ErrMsgInvalidState)
)

// ErrTxClosed is returned by a rollback after the transaction already
// committed or rolled back. Storage adapters translate their driver error to it.
var ErrTxClosed = errors.New(ErrMsgTxClosed)

// Concrete domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Lookups
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrCharacterNotFound = fmt.Errorf("character %w", ErrNotFound)
	ErrItemNotFound      = fmt.Errorf("item %w", ErrNotFound)
	ErrInventoryNotFound = fmt.Errorf("inventory entry %w", ErrNotFound)
	ErrSessionNotFound   = fmt.Errorf("afk session %w", ErrNotFound)
	ErrListingNotFound   = fmt.Errorf("market listing %w", ErrNotFound)
	ErrRealmNotFound     = fmt.Errorf("realm %w", ErrNotFound)

	// Conflicts
	ErrAlreadyAfk    = fmt.Errorf("%w: character is already afk", ErrConflict)
	ErrUsernameTaken = fmt.Errorf("%w: username or email already registered", ErrConflict)

	// Limits
	ErrDurationExceedsTier = fmt.Errorf("%w: duration exceeds membership limit", ErrLimitExceeded)

	// Stock
	ErrInsufficientQuantity = fmt.Errorf("%w: not enough items", ErrInsufficientStock)

	// Invalid state / input
	ErrInvalidInput          = fmt.Errorf("%w: %s", ErrInvalidState, ErrMsgInvalidInput)
	ErrNonPositiveQuantity   = fmt.Errorf("%w: quantity must be positive", ErrInvalidState)
	ErrCannotCreateEmpty     = fmt.Errorf("%w: cannot create inventory entry with quantity <= 0", ErrInvalidState)
	ErrInvalidPrice          = fmt.Errorf("%w: price must be positive with at most 2 decimal places", ErrInvalidState)
	ErrTotalTooLarge         = fmt.Errorf("%w: listing total exceeds the largest storable amount", ErrInvalidState)
	ErrInvalidDuration       = fmt.Errorf("%w: duration must be between 1 and 12 hours", ErrInvalidState)
	ErrLevelTooLow           = fmt.Errorf("%w: character level too low to equip item", ErrInvalidState)
	ErrInvalidCredentials    = fmt.Errorf("%w: %s", ErrInvalidState, ErrMsgInvalidCredentials)
	ErrInvalidRealm          = fmt.Errorf("%w: unknown realm", ErrInvalidState)
	ErrInvalidMembershipType = fmt.Errorf("%w: unknown membership type", ErrInvalidState)
)
