package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTypeForSignedAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   TransactionType
	}{
		{name: "negative is expense", amount: "-42.50", want: TransactionExpense},
		{name: "positive is income", amount: "2750", want: TransactionIncome},
		{name: "zero is income", amount: "0", want: TransactionIncome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TypeForSignedAmount(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("TypeForSignedAmount(%s) = %s, want %s", tt.amount, got, tt.want)
			}
		})
	}
}

func TestNextTransactionID(t *testing.T) {
	if got := NextTransactionID(nil); got != 1 {
		t.Errorf("empty ledger: got %d, want 1", got)
	}

	txns := []Transaction{{ID: 3}, {ID: 7}, {ID: 5}}
	if got := NextTransactionID(txns); got != 8 {
		t.Errorf("got %d, want 8", got)
	}
}

func TestTransaction_ParsedDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "canonical layout", date: "2024-02-01"},
		{name: "rfc3339", date: "2024-02-01T10:00:00Z"},
		{name: "garbage", date: "yesterday", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Transaction{Date: tt.date}.ParsedDate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsedDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && (d.Year() != 2024 || d.Month() != 2) {
				t.Errorf("unexpected date %v", d)
			}
		})
	}
}

func TestChallenge_Validate(t *testing.T) {
	valid := Challenge{Title: "Save", Status: ChallengeActive, Progress: 10, AmountNeeded: 100}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Challenge)
	}{
		{name: "missing title", mutate: func(c *Challenge) { c.Title = "" }},
		{name: "negative points", mutate: func(c *Challenge) { c.Points = -1 }},
		{name: "negative amount", mutate: func(c *Challenge) { c.AmountNeeded = -5 }},
		{name: "progress over 100", mutate: func(c *Challenge) { c.Progress = 101 }},
		{name: "unknown status", mutate: func(c *Challenge) { c.Status = "paused" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestUser_CloneIsIndependent(t *testing.T) {
	u := SeedUser()
	c := u.Clone()

	c.Transactions[0].Description = "changed"
	c.Challenges = append(c.Challenges, Challenge{ID: 99})

	if u.Transactions[0].Description != "Grocery Shopping" {
		t.Error("clone shares transaction storage with original")
	}
	if len(u.Challenges) != 2 {
		t.Error("clone shares challenge storage with original")
	}
}

func TestFindReward(t *testing.T) {
	r, ok := FindReward("movie")
	if !ok || r.Cost != 800 {
		t.Fatalf("FindReward(movie) = %+v, %v", r, ok)
	}
	if _, ok := FindReward("yacht"); ok {
		t.Error("unexpected reward found")
	}
}
