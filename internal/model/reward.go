package model

import "time"

// Reward is an entry in the points-redemption catalog.
type Reward struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
}

// Redemption records points spent on a reward during the session.
type Redemption struct {
	RedeemedAt time.Time `json:"redeemedAt"`
	ID         string    `json:"id"`
	RewardID   string    `json:"rewardId"`
	Points     int       `json:"points"`
}

var catalog = []Reward{
	{ID: "coffee", Title: "Coffee Voucher", Description: "A free coffee at a partner cafe", Cost: 300},
	{ID: "movie", Title: "Movie Ticket", Description: "One standard cinema ticket", Cost: 800},
	{ID: "course", Title: "Budgeting Masterclass", Description: "Online course on building a budget", Cost: 1200},
	{ID: "giftcard", Title: "$25 Gift Card", Description: "Gift card for a partner retailer", Cost: 2500},
}

// Catalog returns a copy of the static rewards catalog.
func Catalog() []Reward {
	return append([]Reward(nil), catalog...)
}

// FindReward looks up a catalog entry by id.
func FindReward(id string) (Reward, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}
