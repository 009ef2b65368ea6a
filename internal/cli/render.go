package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/monee/internal/model"
	"github.com/Veraticus/monee/internal/session"
	"github.com/Veraticus/monee/internal/summary"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

const barWidth = 20

// FormatMoney renders an amount as dollars with thousands separators.
func FormatMoney(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + "$" + fixed
	}
	return sign + "$" + formatInt(int(n)) + "." + cents
}

func formatInt(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + formatInt(-n)
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}

// ProgressBar draws a fixed width text bar for a percentage.
func ProgressBar(percent int) string {
	filled := min(max(percent, 0), 100) * barWidth / 100
	return SuccessStyle.Render(strings.Repeat("█", filled)) +
		SubtleStyle.Render(strings.Repeat("░", barWidth-filled))
}

// RenderSummary renders the dashboard cards for ref's month.
func RenderSummary(user model.User, ref time.Time) string {
	pct := summary.SavingsPercentage(user)
	lines := []string{
		fmt.Sprintf("%s Savings      %s %d%%  (%s of %s)", MoneyIcon, ProgressBar(pct), pct,
			FormatMoney(user.CurrentSavings), FormatMoney(user.SavingsGoal)),
		fmt.Sprintf("%s Credit score %d  %s", ChartIcon, user.CreditScore,
			InfoStyle.Render(summary.CreditRating(user.CreditScore))),
		fmt.Sprintf("💸 Spending     %s in %s", FormatMoney(summary.MonthlySpending(user, ref)), ref.Format("January 2006")),
		fmt.Sprintf("💵 Income       %s in %s", FormatMoney(summary.MonthlyIncome(user, ref)), ref.Format("January 2006")),
		fmt.Sprintf("%s Points       %s", TrophyIcon, FormatPoints(user.TotalPoints)),
	}

	breakdown := summary.SpendingByCategory(user, ref)
	if len(breakdown) > 0 {
		lines = append(lines, "", SubtleStyle.Render("Spending by category"))
		for _, c := range breakdown {
			lines = append(lines, fmt.Sprintf("  %-18s %s", c.Category, FormatMoney(c.Amount)))
		}
	}

	title := fmt.Sprintf("Welcome back, %s!", user.Name)
	return RenderBox(title, lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(SubtleColor)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle.BorderBottom(false).PaddingLeft(1).PaddingRight(1)
			}
			return TableCellStyle.PaddingLeft(1)
		})
}

// RenderTransactions renders the ledger as a table, newest id first.
func RenderTransactions(txns []model.Transaction) string {
	if len(txns) == 0 {
		return FormatInfo("No transactions yet. Import a file with: monee import <file>")
	}

	t := newTable("ID", "Date", "Description", "Category", "Amount")
	for i := len(txns) - 1; i >= 0; i-- {
		tx := txns[i]
		amount := FormatMoney(tx.Amount)
		if tx.IsExpense() {
			amount = ErrorStyle.Render("-" + amount)
		} else {
			amount = SuccessStyle.Render("+" + amount)
		}
		t.Row(strconv.Itoa(tx.ID), tx.Date, tx.Description, tx.Category, amount)
	}
	return t.Render()
}

// RenderChallenges renders challenges with their progress.
func RenderChallenges(challenges []model.Challenge) string {
	if len(challenges) == 0 {
		return FormatInfo("No challenges. Create one with: monee challenges create")
	}

	t := newTable("ID", "Challenge", "Progress", "Saved", "Reward", "Status")
	for _, c := range challenges {
		saved := fmt.Sprintf("$%s / $%s",
			formatInt(int(summary.ChallengeCurrentAmount(c))), formatInt(int(c.AmountNeeded)))
		t.Row(
			strconv.Itoa(c.ID),
			c.Title,
			fmt.Sprintf("%s %3d%%", ProgressBar(c.Progress), c.Progress),
			saved,
			FormatPoints(c.Points),
			statusLabel(c.Status),
		)
	}
	return t.Render()
}

func statusLabel(status model.ChallengeStatus) string {
	switch status {
	case model.ChallengeCompleted:
		return SuccessStyle.Render(SuccessIcon + " completed")
	case model.ChallengeFailed:
		return ErrorStyle.Render(ErrorIcon + " failed")
	default:
		return InfoStyle.Render("active")
	}
}

// RenderRewards renders the catalog and marks rewards the balance covers.
func RenderRewards(rewards []model.Reward, balance int) string {
	t := newTable("ID", "Reward", "Cost", "")
	for _, r := range rewards {
		affordable := SubtleStyle.Render(fmt.Sprintf("need %s more", formatInt(r.Cost-balance)))
		if balance >= r.Cost {
			affordable = SuccessStyle.Render(GiftIcon + " available")
		}
		t.Row(r.ID, r.Title, FormatPoints(r.Cost), affordable)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Balance: %s", FormatPoints(balance)),
		t.Render(),
	)
}

// RenderChat renders a chat transcript.
func RenderChat(messages []session.Message) string {
	var b strings.Builder
	for _, m := range messages {
		switch m.Role {
		case session.RoleAssistant:
			b.WriteString(PromptStyle.Render(RobotIcon + " Moneebot: "))
		default:
			b.WriteString(SubtleStyle.Render("You: "))
		}
		b.WriteString(m.Text)
		b.WriteString("\n")
	}
	return b.String()
}
