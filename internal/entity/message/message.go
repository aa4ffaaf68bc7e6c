// Package message holds the outbound message shapes the bot can deliver.
// The platform wire format is the transport client's concern.
package message

import "time"

type Outbound interface {
	outbound()
}

// Text is a plain text message.
type Text struct {
	Body string
}

// Prompt is a text message with a single-select set of quick-reply options.
type Prompt struct {
	Body    string
	Options []string
}

// Card is one page of a period summary.
type Card struct {
	Title string
	Total float64
	Items []Item
}

type Item struct {
	Category    string
	Amount      float64
	Description string
	Date        time.Time
}

func (Text) outbound()   {}
func (Prompt) outbound() {}
func (Card) outbound()   {}
