// Package session holds the in-memory dashboard state. State is a value:
// every reducer returns a new State and never writes to the one it was given.
package session

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/Veraticus/monee/internal/common"
	"github.com/Veraticus/monee/internal/ledger"
	"github.com/Veraticus/monee/internal/model"
	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

// Chat roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the chat transcript.
type Message struct {
	Role Role
	Text string
}

// State is the whole session: the user aggregate and the chat transcript.
type State struct {
	user model.User
	chat []Message
}

// New starts a session for user. The user is copied.
func New(user model.User) State {
	return State{user: user.Clone()}
}

// User returns a copy of the session user.
func (s State) User() model.User {
	return s.user.Clone()
}

// Chat returns a copy of the chat transcript.
func (s State) Chat() []Message {
	return append([]Message(nil), s.chat...)
}

func (s State) clone() State {
	return State{user: s.user.Clone(), chat: s.Chat()}
}

// ImportLedger merges quoted-CSV text into the user's transactions.
func ImportLedger(s State, text string) (State, ledger.Result) {
	return withLedger(s, ledger.Import(text, s.user.Transactions))
}

// ImportLedgerReader reads a quoted-CSV export from r and merges it like
// ImportLedger. On error s is returned unchanged.
func ImportLedgerReader(ctx context.Context, s State, r io.Reader) (State, ledger.Result, error) {
	result, err := ledger.ImportReader(ctx, r, s.user.Transactions)
	if err != nil {
		return s, ledger.Result{}, err
	}
	next, result := withLedger(s, result)
	return next, result, nil
}

// AppendRecords merges already parsed records, such as those read from an
// OFX statement, into the user's transactions.
func AppendRecords(s State, records []ledger.Record) (State, ledger.Result) {
	return withLedger(s, ledger.Merge(s.user.Transactions, records))
}

// withLedger installs result's ledger in a copy of s. The returned result
// holds its own copy so callers cannot write through it into the state.
func withLedger(s State, result ledger.Result) (State, ledger.Result) {
	next := s.clone()
	next.user.Transactions = result.Transactions
	result.Transactions = slices.Clone(result.Transactions)
	return next, result
}

// AddTransaction appends a manually entered transaction. The draft's ID is
// ignored and replaced with the next free id.
func AddTransaction(s State, draft model.Transaction) (State, model.Transaction, error) {
	if draft.Category == "" {
		draft.Category = model.ImportCategory
	}
	if err := draft.Validate(); err != nil {
		return s, model.Transaction{}, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}

	next := s.clone()
	draft.ID = model.NextTransactionID(next.user.Transactions)
	next.user.Transactions = append(next.user.Transactions, draft)
	return next, draft, nil
}

// ChallengeDraft is the user-supplied part of a new challenge.
type ChallengeDraft struct {
	Title        string
	Description  string
	AmountNeeded int64
	Points       int
}

// CreateChallenge adds an active challenge with zero progress. Its id is one
// more than the largest id in use, so ids are never reused after removals.
func CreateChallenge(s State, draft ChallengeDraft) (State, model.Challenge, error) {
	c := model.Challenge{
		ID:           model.NextChallengeID(s.user.Challenges),
		Title:        draft.Title,
		Description:  draft.Description,
		Points:       draft.Points,
		AmountNeeded: draft.AmountNeeded,
		Status:       model.ChallengeActive,
	}
	if err := c.Validate(); err != nil {
		return s, model.Challenge{}, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}

	next := s.clone()
	next.user.Challenges = append(next.user.Challenges, c)
	return next, c, nil
}

// RemoveChallenge deletes the challenge with id.
func RemoveChallenge(s State, id int) (State, error) {
	idx := s.user.FindChallenge(id)
	if idx < 0 {
		return s, fmt.Errorf("challenge %d: %w", id, common.ErrChallengeNotFound)
	}

	next := s.clone()
	next.user.Challenges = append(next.user.Challenges[:idx], next.user.Challenges[idx+1:]...)
	return next, nil
}

// SetChallengeProgress updates a challenge's progress. An active challenge
// that reaches 100 is completed and its points are credited.
func SetChallengeProgress(s State, id, progress int) (State, error) {
	if progress < 0 || progress > 100 {
		return s, fmt.Errorf("%w: progress must be between 0 and 100, got %d", common.ErrInvalidInput, progress)
	}
	idx := s.user.FindChallenge(id)
	if idx < 0 {
		return s, fmt.Errorf("challenge %d: %w", id, common.ErrChallengeNotFound)
	}
	if s.user.Challenges[idx].Status != model.ChallengeActive {
		return s, fmt.Errorf("%w: challenge %d is %s", common.ErrInvalidInput, id, s.user.Challenges[idx].Status)
	}

	next := s.clone()
	c := &next.user.Challenges[idx]
	c.Progress = progress
	if progress == 100 {
		c.Status = model.ChallengeCompleted
		next.user.TotalPoints += c.Points
	}
	return next, nil
}

// FailChallenge marks an active challenge as failed.
func FailChallenge(s State, id int) (State, error) {
	idx := s.user.FindChallenge(id)
	if idx < 0 {
		return s, fmt.Errorf("challenge %d: %w", id, common.ErrChallengeNotFound)
	}
	if s.user.Challenges[idx].Status != model.ChallengeActive {
		return s, fmt.Errorf("%w: challenge %d is %s", common.ErrInvalidInput, id, s.user.Challenges[idx].Status)
	}

	next := s.clone()
	next.user.Challenges[idx].Status = model.ChallengeFailed
	return next, nil
}

// RedeemReward spends points on a catalog reward.
func RedeemReward(s State, rewardID string, now time.Time) (State, model.Redemption, error) {
	reward, ok := model.FindReward(rewardID)
	if !ok {
		return s, model.Redemption{}, fmt.Errorf("reward %q: %w", rewardID, common.ErrRewardNotFound)
	}
	if s.user.TotalPoints < reward.Cost {
		return s, model.Redemption{}, fmt.Errorf("%s costs %d points, balance is %d: %w",
			reward.Title, reward.Cost, s.user.TotalPoints, common.ErrInsufficientPoints)
	}

	redemption := model.Redemption{
		ID:         uuid.NewString(),
		RewardID:   reward.ID,
		Points:     reward.Cost,
		RedeemedAt: now,
	}

	next := s.clone()
	next.user.TotalPoints -= reward.Cost
	next.user.Redemptions = append(next.user.Redemptions, redemption)
	return next, redemption, nil
}

// AppendChat adds a message to the transcript.
func AppendChat(s State, msg Message) State {
	next := s.clone()
	next.chat = append(next.chat, msg)
	return next
}
