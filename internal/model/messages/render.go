package messages

import (
	"fmt"

	"max.ks1230/expense-bot/internal/entity/message"
	"max.ks1230/expense-bot/internal/entity/period"
	"max.ks1230/expense-bot/internal/model/summary"
)

var periodTitles = map[string]string{
	period.Today: "today",
	period.Week:  "this week",
	period.Month: "this month",
}

// summaryCards renders one card per page. Amounts are full precision up
// to this point; the card carries them as-is and formatting to two
// decimals is the transport's concern.
func summaryCards(token string, pages []summary.Page) []message.Outbound {
	title := periodTitles[token]
	res := make([]message.Outbound, 0, len(pages))
	for _, p := range pages {
		card := message.Card{
			Title: fmt.Sprintf("Expenses %s (page %d/%d)", title, p.Index, p.Total),
			Total: p.PeriodTotal,
			Items: make([]message.Item, 0, len(p.Expenses)),
		}
		for _, e := range p.Expenses {
			card.Items = append(card.Items, message.Item{
				Category:    e.Category,
				Amount:      e.Amount,
				Description: e.Description,
				Date:        e.CreatedAt,
			})
		}
		res = append(res, card)
	}
	return res
}
