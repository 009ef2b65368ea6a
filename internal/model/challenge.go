package model

import "fmt"

// ChallengeStatus tracks the lifecycle of a savings challenge.
type ChallengeStatus string

const (
	// ChallengeActive is a challenge still in progress.
	ChallengeActive ChallengeStatus = "active"
	// ChallengeCompleted is a challenge that reached 100% progress.
	ChallengeCompleted ChallengeStatus = "completed"
	// ChallengeFailed is a challenge the user gave up on.
	ChallengeFailed ChallengeStatus = "failed"
)

// Challenge is a savings goal with a points reward.
type Challenge struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Status       ChallengeStatus `json:"status"`
	AmountNeeded int64           `json:"amountNeeded"` // Whole currency units
	ID           int             `json:"id"`
	Points       int             `json:"points"`
	Progress     int             `json:"progress"` // Percent, 0..100
}

// Validate ensures the challenge has usable data.
func (c Challenge) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title is required")
	}
	if c.Points < 0 {
		return fmt.Errorf("points must not be negative")
	}
	if c.AmountNeeded < 0 {
		return fmt.Errorf("amount needed must not be negative")
	}
	if c.Progress < 0 || c.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100, got %d", c.Progress)
	}
	switch c.Status {
	case ChallengeActive, ChallengeCompleted, ChallengeFailed:
	default:
		return fmt.Errorf("unknown challenge status %q", c.Status)
	}
	return nil
}

// NextChallengeID returns max(existing ids, 0) + 1.
func NextChallengeID(challenges []Challenge) int {
	maxID := 0
	for _, c := range challenges {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID + 1
}
