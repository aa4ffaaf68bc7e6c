package summary

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"max.ks1230/expense-bot/internal/entity/period"
)

type fakeSummarizer struct {
	pages []Page
	calls int
}

func (f *fakeSummarizer) Summarize(context.Context, string, string) ([]Page, error) {
	f.calls++
	return f.pages, nil
}

type fakePageCache struct {
	stored map[string][]byte
}

func (f *fakePageCache) GetSummary(userID, period string) ([]byte, error) {
	payload, ok := f.stored[userID+":"+period]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return payload, nil
}

func (f *fakePageCache) CacheSummary(userID, period string, payload []byte) error {
	if f.stored == nil {
		f.stored = make(map[string][]byte)
	}
	f.stored[userID+":"+period] = payload
	return nil
}

func Test_OnCacheHit_ShouldNotCallAggregator(t *testing.T) {
	pages := []Page{{Index: 1, Total: 1, PeriodTotal: 42}}
	payload, err := json.Marshal(pages)
	assert.NoError(t, err)

	inner := &fakeSummarizer{}
	cached := NewCached(inner, &fakePageCache{
		stored: map[string][]byte{"user-1:week": payload},
	})

	got, err := cached.Summarize(context.Background(), "user-1", period.Week)

	assert.NoError(t, err)
	assert.Equal(t, pages, got)
	assert.Zero(t, inner.calls)
}

func Test_OnCacheMiss_ShouldComputeAndStore(t *testing.T) {
	inner := &fakeSummarizer{pages: []Page{{Index: 1, Total: 1, PeriodTotal: 15}}}
	cache := &fakePageCache{}
	cached := NewCached(inner, cache)

	got, err := cached.Summarize(context.Background(), "user-1", period.Today)

	assert.NoError(t, err)
	assert.Equal(t, inner.pages, got)
	assert.Equal(t, 1, inner.calls)
	assert.Contains(t, cache.stored, "user-1:today")
}
