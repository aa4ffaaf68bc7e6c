package entry

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"max.ks1230/expense-bot/internal/entity/event"
	"max.ks1230/expense-bot/internal/entity/expense"
	"max.ks1230/expense-bot/internal/entity/message"
	"max.ks1230/expense-bot/internal/model/state"
)

type createdExpense struct {
	userID      string
	amount      float64
	category    string
	description string
}

type fakeLedger struct {
	err     error
	created []createdExpense
}

func (f *fakeLedger) CreateExpense(_ context.Context, userID string, amount float64, category, description string) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, createdExpense{userID, amount, category, description})
	return nil
}

type fakePublisher struct {
	events []event.Expense
}

func (f *fakePublisher) PublishExpense(ev event.Expense) error {
	f.events = append(f.events, ev)
	return nil
}

type fakeCache struct {
	invalidated map[string][]string
}

func (f *fakeCache) InvalidateSummaries(userID string, periods []string) error {
	if f.invalidated == nil {
		f.invalidated = make(map[string][]string)
	}
	f.invalidated[userID] = periods
	return nil
}

func Test_OnStart_ShouldPromptForAmount(t *testing.T) {
	flow := NewFlow(&fakeLedger{}, nil, nil)

	st, msgs := flow.Start(state.State{Step: state.AwaitingDescription, PendingAmount: 10})

	assert.Equal(t, state.AwaitingAmount, st.Step)
	assert.Zero(t, st.PendingAmount)
	assert.Equal(t, []message.Outbound{message.Text{Body: promptAmountMessage}}, msgs)
}

func Test_OnValidAmount_ShouldMoveToCategoryStep(t *testing.T) {
	flow := NewFlow(&fakeLedger{}, nil, nil)

	st, msgs, err := flow.Advance(context.Background(), "user-1",
		state.State{Step: state.AwaitingAmount}, "1,250.50")

	assert.NoError(t, err)
	assert.Equal(t, state.AwaitingCategory, st.Step)
	assert.Equal(t, 1250.50, st.PendingAmount)
	assert.Equal(t, []message.Outbound{message.Prompt{
		Body:    promptCategoryMessage,
		Options: expense.Categories,
	}}, msgs)
}

func Test_OnBadAmount_ShouldStayOnAmountStep(t *testing.T) {
	flow := NewFlow(&fakeLedger{}, nil, nil)

	for _, input := range []string{"lots", "-5", "0", "12.3.4", "", "NaN", "nan", "+Inf", "-Inf", "Infinity"} {
		st, msgs, err := flow.Advance(context.Background(), "user-1",
			state.State{Step: state.AwaitingAmount}, input)

		assert.NoError(t, err)
		assert.Equal(t, state.AwaitingAmount, st.Step)
		assert.Zero(t, st.PendingAmount)
		assert.Equal(t, []message.Outbound{message.Text{Body: incorrectAmountMessage}}, msgs)
	}
}

func Test_OnKnownCategory_ShouldMoveToDescriptionStep(t *testing.T) {
	flow := NewFlow(&fakeLedger{}, nil, nil)

	st, msgs, err := flow.Advance(context.Background(), "user-1",
		state.State{Step: state.AwaitingCategory, PendingAmount: 100}, "🍔 Food")

	assert.NoError(t, err)
	assert.Equal(t, state.AwaitingDescription, st.Step)
	assert.Equal(t, "🍔 Food", st.PendingCategory)
	assert.Equal(t, 100.0, st.PendingAmount)
	assert.Equal(t, []message.Outbound{message.Text{Body: promptDescriptionMessage}}, msgs)
}

func Test_OnUnknownCategory_ShouldReShowChooser(t *testing.T) {
	flow := NewFlow(&fakeLedger{}, nil, nil)

	st, msgs, err := flow.Advance(context.Background(), "user-1",
		state.State{Step: state.AwaitingCategory, PendingAmount: 100}, "food")

	assert.NoError(t, err)
	assert.Equal(t, state.AwaitingCategory, st.Step)
	assert.Empty(t, st.PendingCategory)
	assert.Equal(t, []message.Outbound{message.Prompt{
		Body:    promptCategoryMessage,
		Options: expense.Categories,
	}}, msgs)
}

func Test_OnSkippedDescription_ShouldSaveWithEmptyDescription(t *testing.T) {
	ledger := &fakeLedger{}
	flow := NewFlow(ledger, nil, nil)

	st, msgs, err := flow.Advance(context.Background(), "user-1",
		state.State{Step: state.AwaitingDescription, PendingAmount: 1250.50, PendingCategory: "🍔 Food"},
		"SKIP")

	assert.NoError(t, err)
	assert.Equal(t, state.State{}, st)
	assert.Equal(t, []message.Outbound{message.Text{Body: savedExpenseMessage}}, msgs)
	assert.Equal(t, []createdExpense{{"user-1", 1250.50, "🍔 Food", ""}}, ledger.created)
}

func Test_OnFreeTextDescription_ShouldTrimAndSave(t *testing.T) {
	ledger := &fakeLedger{}
	flow := NewFlow(ledger, nil, nil)

	_, _, err := flow.Advance(context.Background(), "user-1",
		state.State{Step: state.AwaitingDescription, PendingAmount: 40, PendingCategory: "🚕 Transport"},
		"  taxi home  ")

	assert.NoError(t, err)
	assert.Equal(t, "taxi home", ledger.created[0].description)
}

func Test_OnLedgerFailure_ShouldResetAndDiscardEntry(t *testing.T) {
	ledger := &fakeLedger{err: errors.New("storage is down")}
	flow := NewFlow(ledger, nil, nil)

	st, msgs, err := flow.Advance(context.Background(), "user-1",
		state.State{Step: state.AwaitingDescription, PendingAmount: 40, PendingCategory: "🚕 Transport"},
		"taxi")

	assert.Error(t, err)
	assert.Equal(t, state.State{}, st)
	assert.Equal(t, []message.Outbound{message.Text{Body: cannotSaveExpenseMessage}}, msgs)
	assert.Empty(t, ledger.created)
}

func Test_OnSavedExpense_ShouldPublishEventAndInvalidateCache(t *testing.T) {
	ledger := &fakeLedger{}
	publisher := &fakePublisher{}
	cache := &fakeCache{}
	flow := NewFlow(ledger, publisher, cache)

	_, _, err := flow.Advance(context.Background(), "user-1",
		state.State{Step: state.AwaitingDescription, PendingAmount: 99, PendingCategory: "📄 Bills"},
		"skip")

	assert.NoError(t, err)
	assert.Len(t, publisher.events, 1)
	assert.Equal(t, "user-1", publisher.events[0].UserID)
	assert.Equal(t, 99.0, publisher.events[0].Amount)
	assert.Equal(t, "📄 Bills", publisher.events[0].Category)
	assert.Equal(t, []string{"today", "week", "month"}, cache.invalidated["user-1"])
}
