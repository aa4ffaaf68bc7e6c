package messages

import (
	"context"
	"strings"

	"max.ks1230/expense-bot/internal/entity/message"
	"max.ks1230/expense-bot/internal/entity/period"
	"max.ks1230/expense-bot/internal/model/entry"
	"max.ks1230/expense-bot/internal/model/state"
	"max.ks1230/expense-bot/internal/model/summary"
)

const (
	menuCommand = "menu"
	helpCommand = "help"
	addCommand  = "add"
)

const (
	dontUnderstandMessage    = "I don't understand you :("
	noExpensesMessage        = "You have no expenses for this period yet"
	cannotGetExpensesMessage = "Can't get your expenses atm. Try later"

	helpMessage = "I track your expenses 🤖\n\n" +
		"add - record a new expense\n" +
		"today, week, month - spending summary for the period\n" +
		"menu - show this message"
)

type summarizer interface {
	Summarize(ctx context.Context, userID, token string) ([]summary.Page, error)
}

// Router classifies one inbound text and produces the outbound messages
// for it. Explicit commands (menu, add, period names) win over an
// in-progress entry flow at every step: they are the escape hatch out of
// a stuck conversation, at the price of dropping the partial entry.
type Router struct {
	states    *state.Service
	flow      *entry.Flow
	summaries summarizer
}

func NewRouter(states *state.Service, flow *entry.Flow, summaries summarizer) *Router {
	return &Router{
		states:    states,
		flow:      flow,
		summaries: summaries,
	}
}

func (r *Router) Route(ctx context.Context, userID, text string) ([]message.Outbound, error) {
	cmd := strings.ToLower(strings.TrimSpace(text))

	switch {
	case cmd == menuCommand || cmd == helpCommand:
		r.resetUser(userID)
		return []message.Outbound{message.Text{Body: helpMessage}}, nil

	case cmd == addCommand:
		var msgs []message.Outbound
		r.states.WithUser(userID, func(st state.State) state.State {
			st, msgs = r.flow.Start(st)
			return st
		})
		return msgs, nil

	case period.IsToken(cmd):
		r.resetUser(userID)
		return r.summarize(ctx, userID, cmd)
	}

	var (
		msgs   []message.Outbound
		err    error
		inFlow bool
	)
	r.states.WithUser(userID, func(st state.State) state.State {
		if st.Step == state.Idle {
			return st
		}
		inFlow = true
		st, msgs, err = r.flow.Advance(ctx, userID, st, text)
		return st
	})
	if !inFlow {
		return []message.Outbound{message.Text{Body: dontUnderstandMessage + "\n\n" + helpMessage}}, nil
	}
	return msgs, err
}

func (r *Router) summarize(ctx context.Context, userID, token string) ([]message.Outbound, error) {
	pages, err := r.summaries.Summarize(ctx, userID, token)
	if err != nil {
		return []message.Outbound{message.Text{Body: cannotGetExpensesMessage}}, err
	}
	if len(pages) == 0 {
		return []message.Outbound{message.Text{Body: noExpensesMessage}}, nil
	}
	return summaryCards(token, pages), nil
}

func (r *Router) resetUser(userID string) {
	r.states.WithUser(userID, func(state.State) state.State {
		return state.State{}
	})
}
