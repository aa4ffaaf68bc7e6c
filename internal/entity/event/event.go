package event

import "time"

// Expense is the payload published to the expense event stream after
// every successful ledger write.
type Expense struct {
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewExpense(userID string, amount float64, category string) Expense {
	return Expense{
		UserID:    userID,
		Amount:    amount,
		Category:  category,
		CreatedAt: time.Now(),
	}
}
