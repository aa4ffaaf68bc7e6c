package expense

import "time"

// Record is a single persisted expense. Records are immutable once created.
type Record struct {
	ID          int64
	UserID      string
	Amount      float64
	Category    string
	Description string
	CreatedAt   time.Time
}

// Categories is the closed set of labels an expense may be filed under.
var Categories = []string{
	"🍔 Food",
	"🚕 Transport",
	"🛍 Shopping",
	"🎮 Entertainment",
	"💊 Health",
	"📄 Bills",
	"📚 Education",
	"✈️ Travel",
	"📦 Other",
}

func ValidCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}
