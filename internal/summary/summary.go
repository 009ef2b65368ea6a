// Package summary derives the dashboard figures from a user's state. Every
// function is pure and safe to call concurrently on shared, read-only data.
package summary

import (
	"sort"
	"time"

	"github.com/Veraticus/monee/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SavingsPercentage returns round(currentSavings / savingsGoal * 100).
// A goal of zero or less yields 0.
func SavingsPercentage(user model.User) int {
	if !user.SavingsGoal.IsPositive() {
		return 0
	}
	pct := user.CurrentSavings.Mul(hundred).Div(user.SavingsGoal).Round(0)
	return int(pct.IntPart())
}

// MonthlySpending sums expenses dated in ref's calendar month and year,
// rounded to two places. Entries with unparseable dates are ignored.
func MonthlySpending(user model.User, ref time.Time) decimal.Decimal {
	return monthlyTotal(user.Transactions, model.TransactionExpense, ref)
}

// MonthlyIncome sums income dated in ref's calendar month and year.
func MonthlyIncome(user model.User, ref time.Time) decimal.Decimal {
	return monthlyTotal(user.Transactions, model.TransactionIncome, ref)
}

func monthlyTotal(txns []model.Transaction, kind model.TransactionType, ref time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txns {
		if tx.Type == kind && inMonth(tx, ref) {
			total = total.Add(tx.Amount)
		}
	}
	return total.Round(2)
}

func inMonth(tx model.Transaction, ref time.Time) bool {
	d, err := tx.ParsedDate()
	if err != nil {
		return false
	}
	return d.Year() == ref.Year() && d.Month() == ref.Month()
}

// CategoryAmount is an expense total for one category.
type CategoryAmount struct {
	Amount   decimal.Decimal
	Category string
}

// SpendingByCategory groups the month's expenses by category, largest first
// and then alphabetically.
func SpendingByCategory(user model.User, ref time.Time) []CategoryAmount {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range user.Transactions {
		if !tx.IsExpense() || !inMonth(tx, ref) {
			continue
		}
		current, ok := totals[tx.Category]
		if !ok {
			current = decimal.Zero
		}
		totals[tx.Category] = current.Add(tx.Amount)
	}

	out := make([]CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		out = append(out, CategoryAmount{Category: category, Amount: amount.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ChallengeCurrentAmount returns round(progress / 100 * amountNeeded) with
// progress clamped to 0..100.
func ChallengeCurrentAmount(c model.Challenge) int64 {
	progress := min(max(c.Progress, 0), 100)
	amount := decimal.NewFromInt(int64(progress)).
		Mul(decimal.NewFromInt(c.AmountNeeded)).
		Div(hundred).
		Round(0)
	return amount.IntPart()
}

// CreditRating labels a credit score for the dashboard card.
func CreditRating(score int) string {
	switch {
	case score >= 750:
		return "Excellent"
	case score >= 670:
		return "Good Standing"
	case score >= 580:
		return "Fair"
	default:
		return "Poor"
	}
}
