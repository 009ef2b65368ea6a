// Package storage keeps an optional local snapshot of the session user.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/monee/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrInvalidUser        = errors.New("invalid user")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidChallenge   = errors.New("invalid challenge")
	ErrInvalidRedemption  = errors.New("invalid redemption")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateUser checks everything a snapshot is about to persist.
func validateUser(user model.User) error {
	if strings.TrimSpace(user.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidUser)
	}

	// Imported dates and descriptions are stored verbatim, so only the
	// amount, type and id are checked here.
	txIDs := make(map[int]bool, len(user.Transactions))
	for i, tx := range user.Transactions {
		if tx.Amount.IsNegative() {
			return fmt.Errorf("%w at index %d: negative amount", ErrInvalidTransaction, i)
		}
		if !tx.Type.Valid() {
			return fmt.Errorf("%w at index %d: unknown type %q", ErrInvalidTransaction, i, tx.Type)
		}
		if txIDs[tx.ID] {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidTransaction, tx.ID)
		}
		txIDs[tx.ID] = true
	}

	challengeIDs := make(map[int]bool, len(user.Challenges))
	for i, c := range user.Challenges {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w at index %d: %w", ErrInvalidChallenge, i, err)
		}
		if challengeIDs[c.ID] {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidChallenge, c.ID)
		}
		challengeIDs[c.ID] = true
	}

	for i, r := range user.Redemptions {
		if r.ID == "" || r.RewardID == "" {
			return fmt.Errorf("%w at index %d: missing id", ErrInvalidRedemption, i)
		}
		if r.Points < 0 {
			return fmt.Errorf("%w at index %d: negative points", ErrInvalidRedemption, i)
		}
	}

	return nil
}
