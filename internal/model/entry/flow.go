package entry

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-bot/internal/entity/event"
	"max.ks1230/expense-bot/internal/entity/expense"
	"max.ks1230/expense-bot/internal/entity/message"
	"max.ks1230/expense-bot/internal/entity/period"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/state"
)

const (
	promptAmountMessage      = "How much did you spend? Enter the amount"
	incorrectAmountMessage   = "Your expense amount is incorrect. Enter a positive number"
	promptCategoryMessage    = "Pick a category for this expense"
	unknownCategoryMessage   = "I don't know that category. Pick one of the listed ones"
	promptDescriptionMessage = "Add a description, or type \"skip\""
	savedExpenseMessage      = "Gotcha! Your expense is saved 💸"
	cannotSaveExpenseMessage = "Can't save your expense atm. Try later"
)

const skipKeyword = "skip"

type expenseLedger interface {
	CreateExpense(ctx context.Context, userID string, amount float64, category, description string) error
}

type eventPublisher interface {
	PublishExpense(ev event.Expense) error
}

type summaryCache interface {
	InvalidateSummaries(userID string, periods []string) error
}

// Flow drives the add-expense conversation one inbound message at a time.
// stream and cache may be nil when the deployment runs without them.
type Flow struct {
	ledger expenseLedger
	stream eventPublisher
	cache  summaryCache
}

func NewFlow(ledger expenseLedger, stream eventPublisher, cache summaryCache) *Flow {
	return &Flow{ledger: ledger, stream: stream, cache: cache}
}

// Start begins a new entry, abandoning whatever was in progress.
func (f *Flow) Start(_ state.State) (state.State, []message.Outbound) {
	return state.State{Step: state.AwaitingAmount},
		[]message.Outbound{message.Text{Body: promptAmountMessage}}
}

// Advance feeds one message into the conversation. The returned error is
// non-nil only for ledger failures; validation problems are answered with
// a re-prompt and no error.
func (f *Flow) Advance(ctx context.Context, userID string, st state.State, text string) (state.State, []message.Outbound, error) {
	switch st.Step {
	case state.AwaitingAmount:
		return f.acceptAmount(st, text)
	case state.AwaitingCategory:
		return f.acceptCategory(st, text)
	case state.AwaitingDescription:
		return f.acceptDescription(ctx, userID, st, text)
	}
	return st, nil, nil
}

func (f *Flow) acceptAmount(st state.State, text string) (state.State, []message.Outbound, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	amount, err := strconv.ParseFloat(raw, 64)
	// ParseFloat happily returns NaN and the infinities; a stored amount
	// must be a finite positive number.
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return st, []message.Outbound{message.Text{Body: incorrectAmountMessage}}, nil
	}

	st.Step = state.AwaitingCategory
	st.PendingAmount = amount
	return st, []message.Outbound{categoryChooser()}, nil
}

func (f *Flow) acceptCategory(st state.State, text string) (state.State, []message.Outbound, error) {
	label := strings.TrimSpace(text)
	if !expense.ValidCategory(label) {
		return st, []message.Outbound{categoryChooser()}, nil
	}

	st.Step = state.AwaitingDescription
	st.PendingCategory = label
	return st, []message.Outbound{message.Text{Body: promptDescriptionMessage}}, nil
}

func (f *Flow) acceptDescription(ctx context.Context, userID string, st state.State, text string) (state.State, []message.Outbound, error) {
	description := strings.TrimSpace(text)
	if strings.EqualFold(description, skipKeyword) {
		description = ""
	}

	// The entry is done either way: a failed create is not retried and
	// the pending amount and category are discarded.
	amount, category := st.PendingAmount, st.PendingCategory
	st = state.State{}

	err := f.ledger.CreateExpense(ctx, userID, amount, category, description)
	if err != nil {
		return st, []message.Outbound{message.Text{Body: cannotSaveExpenseMessage}},
			errors.Wrap(err, "entry flow")
	}

	observeExpenseCreated(category)
	f.afterCreate(userID, amount, category)
	return st, []message.Outbound{message.Text{Body: savedExpenseMessage}}, nil
}

// afterCreate fans the new expense out to the event stream and drops the
// user's cached summaries. Neither failure reaches the user.
func (f *Flow) afterCreate(userID string, amount float64, category string) {
	if f.stream != nil {
		err := f.stream.PublishExpense(event.NewExpense(userID, amount, category))
		if err != nil {
			logger.Error("failed to publish expense event", zap.Error(err), zap.String("user", userID))
		}
	}
	if f.cache != nil {
		err := f.cache.InvalidateSummaries(userID, period.Tokens())
		if err != nil {
			logger.Warn("failed to invalidate summary cache", zap.Error(err), zap.String("user", userID))
		}
	}
}

func categoryChooser() message.Outbound {
	return message.Prompt{
		Body:    promptCategoryMessage,
		Options: expense.Categories,
	}
}
