package msgr

import (
	"fmt"

	"max.ks1230/expense-bot/internal/entity/message"
)

const dateLayout = "02.01.2006 15:04"

const noDescriptionPlaceholder = "(no description)"

type wireMessage struct {
	Type       string          `json:"type"`
	Text       string          `json:"text,omitempty"`
	QuickReply *wireQuickReply `json:"quickReply,omitempty"`
	Card       *wireCard       `json:"card,omitempty"`
}

type wireQuickReply struct {
	Items []wireQuickReplyItem `json:"items"`
}

type wireQuickReplyItem struct {
	Type   string     `json:"type"`
	Action wireAction `json:"action"`
}

type wireAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

type wireCard struct {
	Title string     `json:"title"`
	Total string     `json:"total"`
	Items []wireItem `json:"items"`
}

type wireItem struct {
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Monetary amounts are rendered to two decimals here and nowhere earlier.
func toWire(msgs []message.Outbound) []wireMessage {
	res := make([]wireMessage, 0, len(msgs))
	for _, m := range msgs {
		switch m := m.(type) {
		case message.Text:
			res = append(res, wireMessage{Type: "text", Text: m.Body})
		case message.Prompt:
			res = append(res, wireMessage{
				Type:       "text",
				Text:       m.Body,
				QuickReply: quickReply(m.Options),
			})
		case message.Card:
			res = append(res, wireMessage{Type: "card", Card: card(m)})
		}
	}
	return res
}

func quickReply(options []string) *wireQuickReply {
	items := make([]wireQuickReplyItem, 0, len(options))
	for _, opt := range options {
		items = append(items, wireQuickReplyItem{
			Type: "action",
			Action: wireAction{
				Type:  "message",
				Label: opt,
				Text:  opt,
			},
		})
	}
	return &wireQuickReply{Items: items}
}

func card(c message.Card) *wireCard {
	items := make([]wireItem, 0, len(c.Items))
	for _, it := range c.Items {
		description := it.Description
		if description == "" {
			description = noDescriptionPlaceholder
		}
		items = append(items, wireItem{
			Category:    it.Category,
			Amount:      formatAmount(it.Amount),
			Description: description,
			Date:        it.Date.Format(dateLayout),
		})
	}
	return &wireCard{
		Title: c.Title,
		Total: formatAmount(c.Total),
		Items: items,
	}
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
