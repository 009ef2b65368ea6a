package model

import "github.com/shopspring/decimal"

// SeedUser returns the fixed sample user every session starts from.
func SeedUser() User {
	return User{
		Name:           "Cale Kettner",
		Age:            24,
		Income:         decimal.NewFromInt(55000),
		CreditScore:    680,
		SavingsGoal:    decimal.NewFromInt(10000),
		CurrentSavings: decimal.NewFromInt(3500),
		TotalPoints:    1250,
		Challenges: []Challenge{
			{
				ID:           1,
				Title:        "30-Day No Dining Out Challenge",
				Description:  "Save money by cooking at home",
				Points:       500,
				Progress:     45,
				AmountNeeded: 300,
				Status:       ChallengeActive,
			},
			{
				ID:           2,
				Title:        "Emergency Fund Boost",
				Description:  "Increase emergency fund by $1000",
				Points:       750,
				Progress:     70,
				AmountNeeded: 1000,
				Status:       ChallengeActive,
			},
		},
		Transactions: []Transaction{
			{
				ID:          1,
				Date:        "2024-01-15",
				Description: "Grocery Shopping",
				Amount:      decimal.RequireFromString("85.50"),
				Type:        TransactionExpense,
				Category:    "Food",
			},
			{
				ID:          2,
				Date:        "2024-01-20",
				Description: "Salary Deposit",
				Amount:      decimal.NewFromInt(2750),
				Type:        TransactionIncome,
				Category:    "Salary",
			},
		},
	}
}
