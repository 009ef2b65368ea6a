package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Veraticus/monee/internal/model"
)

func saveChallengesTx(ctx context.Context, tx *sql.Tx, challenges []model.Challenge) error {
	for _, c := range challenges {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO challenges (id, title, description, points, progress, amount_needed, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Title, c.Description, c.Points, c.Progress, c.AmountNeeded, string(c.Status))
		if err != nil {
			return fmt.Errorf("failed to save challenge %d: %w", c.ID, err)
		}
	}
	return nil
}

func loadChallengesTx(ctx context.Context, tx *sql.Tx) ([]model.Challenge, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, title, description, points, progress, amount_needed, status
		FROM challenges ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query challenges: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var challenges []model.Challenge
	for rows.Next() {
		var c model.Challenge
		var status string
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Points, &c.Progress, &c.AmountNeeded, &status); err != nil {
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}
		c.Status = model.ChallengeStatus(status)
		challenges = append(challenges, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate challenges: %w", err)
	}
	return challenges, nil
}

func saveRedemptionsTx(ctx context.Context, tx *sql.Tx, redemptions []model.Redemption) error {
	for _, r := range redemptions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO redemptions (id, reward_id, points, redeemed_at)
			VALUES (?, ?, ?, ?)`,
			r.ID, r.RewardID, r.Points, r.RedeemedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to save redemption %s: %w", r.ID, err)
		}
	}
	return nil
}

func loadRedemptionsTx(ctx context.Context, tx *sql.Tx) ([]model.Redemption, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, reward_id, points, redeemed_at
		FROM redemptions ORDER BY redeemed_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query redemptions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var redemptions []model.Redemption
	for rows.Next() {
		var r model.Redemption
		var redeemedAt string
		if err := rows.Scan(&r.ID, &r.RewardID, &r.Points, &redeemedAt); err != nil {
			return nil, fmt.Errorf("failed to scan redemption: %w", err)
		}
		if r.RedeemedAt, err = time.Parse(time.RFC3339Nano, redeemedAt); err != nil {
			return nil, fmt.Errorf("redemption %s has invalid timestamp: %w", r.ID, err)
		}
		redemptions = append(redemptions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate redemptions: %w", err)
	}
	return redemptions, nil
}
