package summary

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"max.ks1230/expense-bot/internal/entity/expense"
	"max.ks1230/expense-bot/internal/entity/period"
)

const pageSize = 5

type expensesLedger interface {
	QueryExpenses(ctx context.Context, userID string, from, to time.Time) ([]expense.Record, error)
}

// Page is one display-ready chunk of a period's expenses. PeriodTotal is
// the sum over the whole period, identical on every page of one query.
type Page struct {
	Expenses    []expense.Record `json:"expenses"`
	Index       int              `json:"index"`
	Total       int              `json:"total"`
	PeriodTotal float64          `json:"periodTotal"`
}

type Aggregator struct {
	storage expensesLedger
	loc     *time.Location

	now func() time.Time
}

func NewAggregator(storage expensesLedger, loc *time.Location) *Aggregator {
	return &Aggregator{
		storage: storage,
		loc:     loc,
		now:     time.Now,
	}
}

// Summarize resolves the period token against the current time, fetches the
// user's expenses for it (most recent first) and chunks them into pages of
// five. An empty period yields zero pages.
func (a *Aggregator) Summarize(ctx context.Context, userID, token string) ([]Page, error) {
	p, err := period.Resolve(token, a.now().In(a.loc))
	if err != nil {
		return nil, errors.Wrap(err, "summarize")
	}

	exps, err := a.storage.QueryExpenses(ctx, userID, p.Start, p.End)
	if err != nil {
		return nil, errors.Wrap(err, "summarize")
	}
	if len(exps) == 0 {
		return nil, nil
	}

	total := 0.0
	for _, e := range exps {
		total += e.Amount
	}

	pageCount := (len(exps) + pageSize - 1) / pageSize
	pages := make([]Page, 0, pageCount)
	for i := 0; i < len(exps); i += pageSize {
		end := i + pageSize
		if end > len(exps) {
			end = len(exps)
		}
		pages = append(pages, Page{
			Expenses:    exps[i:end],
			Index:       i/pageSize + 1,
			Total:       pageCount,
			PeriodTotal: total,
		})
	}
	return pages, nil
}
