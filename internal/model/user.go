package model

import "github.com/shopspring/decimal"

// User is the aggregate root for a session. It exclusively owns its
// challenges, transactions and redemptions.
type User struct {
	Income         decimal.Decimal `json:"income"`
	SavingsGoal    decimal.Decimal `json:"savingsGoal"`
	CurrentSavings decimal.Decimal `json:"currentSavings"`
	Name           string          `json:"name"`
	Challenges     []Challenge     `json:"challenges"`
	Transactions   []Transaction   `json:"transactions"`
	Redemptions    []Redemption    `json:"redemptions"`
	Age            int             `json:"age"`
	CreditScore    int             `json:"creditScore"`
	TotalPoints    int             `json:"totalPoints"`
}

// Clone returns a deep copy so callers never share slice backing arrays.
func (u User) Clone() User {
	out := u
	out.Challenges = append([]Challenge(nil), u.Challenges...)
	out.Transactions = append([]Transaction(nil), u.Transactions...)
	out.Redemptions = append([]Redemption(nil), u.Redemptions...)
	return out
}

// FindChallenge returns the index of the challenge with id, or -1.
func (u User) FindChallenge(id int) int {
	for i, c := range u.Challenges {
		if c.ID == id {
			return i
		}
	}
	return -1
}
