package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/monee/internal/common"
	"github.com/Veraticus/monee/internal/model"
)

// SaveUser replaces the stored snapshot with user in a single transaction.
func (s *SQLiteStorage) SaveUser(ctx context.Context, user model.User) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUser(user); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"redemptions", "challenges", "transactions", "profile"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := saveProfileTx(ctx, tx, user); err != nil {
		return err
	}
	if err := saveTransactionsTx(ctx, tx, user.Transactions); err != nil {
		return err
	}
	if err := saveChallengesTx(ctx, tx, user.Challenges); err != nil {
		return err
	}
	if err := saveRedemptionsTx(ctx, tx, user.Redemptions); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	slog.Debug("Saved session snapshot",
		"transactions", len(user.Transactions),
		"challenges", len(user.Challenges),
		"redemptions", len(user.Redemptions))
	return nil
}

// LoadUser reads the stored snapshot. It returns common.ErrNotFound when
// nothing has been saved yet.
func (s *SQLiteStorage) LoadUser(ctx context.Context) (model.User, error) {
	if err := validateContext(ctx); err != nil {
		return model.User{}, err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	user, err := loadProfileTx(ctx, tx)
	if err != nil {
		return model.User{}, err
	}
	if user.Transactions, err = loadTransactionsTx(ctx, tx); err != nil {
		return model.User{}, err
	}
	if user.Challenges, err = loadChallengesTx(ctx, tx); err != nil {
		return model.User{}, err
	}
	if user.Redemptions, err = loadRedemptionsTx(ctx, tx); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func saveProfileTx(ctx context.Context, tx *sql.Tx, user model.User) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO profile (id, name, age, income, credit_score, savings_goal, current_savings, total_points, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		user.Name, user.Age, user.Income, user.CreditScore,
		user.SavingsGoal, user.CurrentSavings, user.TotalPoints)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func loadProfileTx(ctx context.Context, tx *sql.Tx) (model.User, error) {
	var user model.User
	err := tx.QueryRowContext(ctx, `
		SELECT name, age, income, credit_score, savings_goal, current_savings, total_points
		FROM profile WHERE id = 1`).
		Scan(&user.Name, &user.Age, &user.Income, &user.CreditScore,
			&user.SavingsGoal, &user.CurrentSavings, &user.TotalPoints)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, common.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to load profile: %w", err)
	}
	return user, nil
}
