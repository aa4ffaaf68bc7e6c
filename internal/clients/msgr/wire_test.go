package msgr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"max.ks1230/expense-bot/internal/entity/message"
)

func Test_OnCard_ShouldRoundAmountsAndFillPlaceholder(t *testing.T) {
	when := time.Date(2022, time.November, 9, 13, 5, 0, 0, time.UTC)
	wire := toWire([]message.Outbound{message.Card{
		Title: "Expenses today (page 1/1)",
		Total: 1250.5,
		Items: []message.Item{
			{Category: "🍔 Food", Amount: 1250.5, Description: "", Date: when},
		},
	}})

	assert.Len(t, wire, 1)
	assert.Equal(t, "card", wire[0].Type)
	assert.Equal(t, "1250.50", wire[0].Card.Total)
	assert.Equal(t, "1250.50", wire[0].Card.Items[0].Amount)
	assert.Equal(t, "(no description)", wire[0].Card.Items[0].Description)
	assert.Equal(t, "09.11.2022 13:05", wire[0].Card.Items[0].Date)
}

func Test_OnPrompt_ShouldCarryOneActionPerOption(t *testing.T) {
	wire := toWire([]message.Outbound{message.Prompt{
		Body:    "Pick a category",
		Options: []string{"🍔 Food", "🚕 Transport"},
	}})

	assert.Len(t, wire, 1)
	assert.Equal(t, "text", wire[0].Type)
	assert.Len(t, wire[0].QuickReply.Items, 2)
	assert.Equal(t, "🍔 Food", wire[0].QuickReply.Items[0].Action.Label)
	assert.Equal(t, "🍔 Food", wire[0].QuickReply.Items[0].Action.Text)
}
