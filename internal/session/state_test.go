package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/monee/internal/common"
	"github.com/Veraticus/monee/internal/ledger"
	"github.com/Veraticus/monee/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() State {
	return New(model.SeedUser())
}

func TestNew_CopiesUser(t *testing.T) {
	user := model.SeedUser()
	s := New(user)

	user.Transactions[0].Description = "mutated"
	assert.Equal(t, "Grocery Shopping", s.User().Transactions[0].Description)

	got := s.User()
	got.Challenges[0].Title = "mutated"
	assert.Equal(t, "30-Day No Dining Out Challenge", s.User().Challenges[0].Title)
}

func TestImportLedger(t *testing.T) {
	s := seeded()
	text := "\"2024-02-01\",\"-42.50\",\"x\",\"y\",\"Coffee Shop\"\n\"2024-02-02\",\"100\",\"x\",\"y\",\"Refund\""

	next, result := ImportLedger(s, text)

	assert.Equal(t, 2, result.Added)
	txns := next.User().Transactions
	require.Len(t, txns, 4)
	assert.Equal(t, 3, txns[2].ID)
	assert.Equal(t, model.TransactionExpense, txns[2].Type)
	assert.Equal(t, 4, txns[3].ID)
	assert.Len(t, s.User().Transactions, 2, "original state must be untouched")
}

func TestImportLedger_BlankIsNoOp(t *testing.T) {
	s := seeded()
	next, result := ImportLedger(s, "\n   \n")

	assert.Zero(t, result.Added)
	assert.Equal(t, s.User().Transactions, next.User().Transactions)
}

func TestAppendRecords(t *testing.T) {
	records := []ledger.Record{
		{Date: "2024-02-03", Amount: decimal.RequireFromString("-12.34"), Description: "ATM", Category: "Cash & ATM"},
	}
	next, result := AppendRecords(seeded(), records)

	assert.Equal(t, 1, result.Added)
	tx := next.User().Transactions[2]
	assert.Equal(t, 3, tx.ID)
	assert.Equal(t, "Cash & ATM", tx.Category)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("12.34")))
}

func TestImportLedger_ResultDoesNotAliasState(t *testing.T) {
	next, result := ImportLedger(seeded(), `"2024-02-01","-42.50","x","y","Coffee Shop"`)
	result.Transactions[2].Description = "changed"
	assert.Equal(t, "Coffee Shop", next.User().Transactions[2].Description)

	next, result = AppendRecords(seeded(), []ledger.Record{
		{Date: "2024-02-03", Amount: decimal.RequireFromString("-5"), Description: "ATM"},
	})
	result.Transactions[0].Description = "changed"
	assert.Equal(t, "Grocery Shopping", next.User().Transactions[0].Description)
}

func TestImportLedgerReader(t *testing.T) {
	s := seeded()
	next, result, err := ImportLedgerReader(context.Background(), s,
		strings.NewReader(`"2024-02-01","-42.50","x","y","Coffee Shop"`+"\n"+`"2024-02-01","abc","x","y","Bad"`))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, next.User().Transactions, 3)
	assert.Equal(t, "Coffee Shop", next.User().Transactions[2].Description)
}

func TestImportLedgerReader_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := seeded()
	next, _, err := ImportLedgerReader(ctx, s, strings.NewReader(`"2024-02-01","-1","x","y","Coffee"`))
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, next.User().Transactions, 2)
}

func TestAddTransaction(t *testing.T) {
	draft := model.Transaction{
		ID:          42,
		Date:        "2024-02-10",
		Description: "Bus pass",
		Amount:      decimal.NewFromInt(30),
		Type:        model.TransactionExpense,
	}

	next, tx, err := AddTransaction(seeded(), draft)
	require.NoError(t, err)
	assert.Equal(t, 3, tx.ID)
	assert.Equal(t, model.ImportCategory, tx.Category)
	assert.Len(t, next.User().Transactions, 3)
}

func TestAddTransaction_Invalid(t *testing.T) {
	valid := model.Transaction{
		Date:        "2024-02-10",
		Description: "Bus pass",
		Amount:      decimal.NewFromInt(30),
		Type:        model.TransactionExpense,
	}

	tests := []struct {
		name   string
		mutate func(*model.Transaction)
	}{
		{name: "negative amount", mutate: func(tx *model.Transaction) { tx.Amount = decimal.NewFromInt(-1) }},
		{name: "unknown type", mutate: func(tx *model.Transaction) { tx.Type = "transfer" }},
		{name: "bad date", mutate: func(tx *model.Transaction) { tx.Date = "10/02/2024" }},
		{name: "empty description", mutate: func(tx *model.Transaction) { tx.Description = "  " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)
			s := seeded()
			next, _, err := AddTransaction(s, draft)
			require.ErrorIs(t, err, common.ErrInvalidInput)
			assert.Len(t, next.User().Transactions, 2)
		})
	}
}

func TestCreateChallenge(t *testing.T) {
	next, c, err := CreateChallenge(seeded(), ChallengeDraft{
		Title:        "No Coffee Week",
		Description:  "Brew at home",
		Points:       200,
		AmountNeeded: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, c.ID)
	assert.Equal(t, model.ChallengeActive, c.Status)
	assert.Zero(t, c.Progress)
	assert.Len(t, next.User().Challenges, 3)
}

func TestCreateChallenge_Invalid(t *testing.T) {
	_, _, err := CreateChallenge(seeded(), ChallengeDraft{Points: 10})
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, _, err = CreateChallenge(seeded(), ChallengeDraft{Title: "x", Points: -1})
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, _, err = CreateChallenge(seeded(), ChallengeDraft{Title: "x", AmountNeeded: -1})
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestCreateChallenge_IDsNeverCollideAfterRemoval(t *testing.T) {
	s, err := RemoveChallenge(seeded(), 1)
	require.NoError(t, err)

	s, c, err := CreateChallenge(s, ChallengeDraft{Title: "Pack Lunch"})
	require.NoError(t, err)
	assert.Equal(t, 3, c.ID)

	seen := map[int]bool{}
	for _, existing := range s.User().Challenges {
		assert.False(t, seen[existing.ID], "duplicate id %d", existing.ID)
		seen[existing.ID] = true
	}
}

func TestRemoveChallenge(t *testing.T) {
	s := seeded()
	next, err := RemoveChallenge(s, 2)
	require.NoError(t, err)

	require.Len(t, next.User().Challenges, 1)
	assert.Equal(t, 1, next.User().Challenges[0].ID)
	assert.Len(t, s.User().Challenges, 2)

	_, err = RemoveChallenge(s, 99)
	require.ErrorIs(t, err, common.ErrChallengeNotFound)
}

func TestSetChallengeProgress(t *testing.T) {
	s, err := SetChallengeProgress(seeded(), 1, 80)
	require.NoError(t, err)
	assert.Equal(t, 80, s.User().Challenges[0].Progress)
	assert.Equal(t, 1250, s.User().TotalPoints)

	_, err = SetChallengeProgress(s, 1, 101)
	require.ErrorIs(t, err, common.ErrInvalidInput)
	_, err = SetChallengeProgress(s, 7, 10)
	require.ErrorIs(t, err, common.ErrChallengeNotFound)
}

func TestSetChallengeProgress_CompletionCreditsPointsOnce(t *testing.T) {
	s, err := SetChallengeProgress(seeded(), 2, 100)
	require.NoError(t, err)

	c := s.User().Challenges[1]
	assert.Equal(t, model.ChallengeCompleted, c.Status)
	assert.Equal(t, 1250+750, s.User().TotalPoints)

	again, err := SetChallengeProgress(s, 2, 100)
	require.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Equal(t, 2000, again.User().TotalPoints)
}

func TestFailChallenge(t *testing.T) {
	s, err := FailChallenge(seeded(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.ChallengeFailed, s.User().Challenges[0].Status)

	_, err = FailChallenge(s, 1)
	require.ErrorIs(t, err, common.ErrInvalidInput)
	_, err = SetChallengeProgress(s, 1, 100)
	require.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Equal(t, 1250, s.User().TotalPoints)
}

func TestRedeemReward(t *testing.T) {
	now := time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)
	s, r, err := RedeemReward(seeded(), "movie", now)
	require.NoError(t, err)

	assert.Equal(t, 1250-800, s.User().TotalPoints)
	assert.Equal(t, "movie", r.RewardID)
	assert.Equal(t, 800, r.Points)
	assert.Equal(t, now, r.RedeemedAt)
	_, err = uuid.Parse(r.ID)
	require.NoError(t, err)
	assert.Len(t, s.User().Redemptions, 1)
}

func TestRedeemReward_InsufficientPoints(t *testing.T) {
	s := seeded()
	next, _, err := RedeemReward(s, "giftcard", time.Now())

	require.ErrorIs(t, err, common.ErrInsufficientPoints)
	assert.Equal(t, 1250, next.User().TotalPoints)
	assert.Empty(t, next.User().Redemptions)
}

func TestRedeemReward_UnknownReward(t *testing.T) {
	_, _, err := RedeemReward(seeded(), "yacht", time.Now())
	require.ErrorIs(t, err, common.ErrRewardNotFound)
}

func TestAppendChat(t *testing.T) {
	s := seeded()
	next := AppendChat(s, Message{Role: RoleUser, Text: "hello"})
	next = AppendChat(next, Message{Role: RoleAssistant, Text: "hi"})

	assert.Empty(t, s.Chat())
	require.Len(t, next.Chat(), 2)
	assert.Equal(t, RoleAssistant, next.Chat()[1].Role)
}
