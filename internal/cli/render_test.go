package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/monee/internal/model"
	"github.com/Veraticus/monee/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "0", want: "$0.00"},
		{amount: "85.5", want: "$85.50"},
		{amount: "1234.567", want: "$1,234.57"},
		{amount: "55000", want: "$55,000.00"},
		{amount: "-42.5", want: "-$42.50"},
		{amount: "1000000", want: "$1,000,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", formatInt(0))
	assert.Equal(t, "999", formatInt(999))
	assert.Equal(t, "1,250", formatInt(1250))
	assert.Equal(t, "-12,345", formatInt(-12345))
}

func TestProgressBar_Clamps(t *testing.T) {
	assert.Equal(t, barWidth, strings.Count(ProgressBar(150), "█"))
	assert.Equal(t, 0, strings.Count(ProgressBar(-3), "█"))
	assert.Equal(t, barWidth/2, strings.Count(ProgressBar(50), "█"))
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(model.SeedUser(), time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

	assert.Contains(t, out, "Cale Kettner")
	assert.Contains(t, out, "35%")
	assert.Contains(t, out, "Good Standing")
	assert.Contains(t, out, "$85.50")
	assert.Contains(t, out, "$2,750.00")
	assert.Contains(t, out, "1,250 pts")
	assert.Contains(t, out, "Food")
}

func TestRenderTransactions(t *testing.T) {
	out := RenderTransactions(model.SeedUser().Transactions)

	assert.Contains(t, out, "Grocery Shopping")
	assert.Contains(t, out, "-$85.50")
	assert.Contains(t, out, "+$2,750.00")
	assert.Less(t, strings.Index(out, "Salary Deposit"), strings.Index(out, "Grocery Shopping"))

	assert.Contains(t, RenderTransactions(nil), "No transactions")
}

func TestRenderChallenges(t *testing.T) {
	challenges := model.SeedUser().Challenges
	challenges[1].Status = model.ChallengeCompleted

	out := RenderChallenges(challenges)
	assert.Contains(t, out, "30-Day No Dining Out Challenge")
	assert.Contains(t, out, "$135 / $300")
	assert.Contains(t, out, "$700 / $1,000")
	assert.Contains(t, out, "completed")

	assert.Contains(t, RenderChallenges(nil), "No challenges")
}

func TestRenderRewards(t *testing.T) {
	out := RenderRewards(model.Catalog(), 1000)

	assert.Contains(t, out, "1,000 pts")
	assert.Contains(t, out, "Coffee Voucher")
	assert.Contains(t, out, "available")
	assert.Contains(t, out, "need 1,500 more")
}

func TestRenderChat(t *testing.T) {
	out := RenderChat([]session.Message{
		{Role: session.RoleUser, Text: "hello"},
		{Role: session.RoleAssistant, Text: "hi there"},
	})

	assert.Contains(t, out, "You: ")
	assert.Contains(t, out, "Moneebot: ")
	assert.Less(t, strings.Index(out, "hello"), strings.Index(out, "hi there"))
}

func TestTrackReader(t *testing.T) {
	var out bytes.Buffer
	content := strings.Repeat("\"2024-02-01\",\"-1\",\"\",\"\",\"x\"\n", 50)
	bar := NewImportProgress(&out, int64(len(content)), "Importing")

	data, err := io.ReadAll(TrackReader(strings.NewReader(content), bar))
	require.NoError(t, err)

	assert.Equal(t, content, string(data))
	assert.Equal(t, int64(len(content)), bar.State().CurrentNum)
}
