package chat

import (
	"context"
	"strings"
)

// Canned replies.
const (
	GreetingReply = "Do you need help with your finances? I can assist with budgeting, saving, or investing!"
	YesReply      = "Great! Are you more focused on saving, budgeting, or investing? Tell me more so I can assist you better."
	BudgetReply   = "Budgeting is key! Start by tracking your income and expenses. Try to allocate 50% of your income to necessities, 30% to discretionary expenses, and 20% to savings."
	SavingsReply  = "Having an emergency fund is important! Aim to save at least 3-6 months' worth of expenses. A high-yield savings account can help you grow your savings."
	InvestReply   = "Investing in index funds is a great way to start. It provides diversification and low fees. Have you considered starting a retirement account like an IRA?"
	FallbackReply = "I can help with budgeting, saving, or investing. Which one would you like to talk about?"
)

var greetings = []string{"hello", "hey", "hlo"}

// CannedResponder answers from a fixed set of keyword rules.
type CannedResponder struct{}

// Respond never fails.
func (CannedResponder) Respond(_ context.Context, message string) (string, error) {
	return CannedReply(message), nil
}

// CannedReply picks the reply for message. Greetings win over topics.
func CannedReply(message string) string {
	lower := strings.ToLower(strings.TrimSpace(message))

	for _, g := range greetings {
		if strings.Contains(lower, g) {
			return GreetingReply
		}
	}

	switch {
	case lower == "yes":
		return YesReply
	case strings.Contains(lower, "budget"):
		return BudgetReply
	case strings.Contains(lower, "save"):
		return SavingsReply
	case strings.Contains(lower, "invest"):
		return InvestReply
	default:
		return FallbackReply
	}
}
