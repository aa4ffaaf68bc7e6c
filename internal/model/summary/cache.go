package summary

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"max.ks1230/expense-bot/internal/logger"
)

type summarizer interface {
	Summarize(ctx context.Context, userID, token string) ([]Page, error)
}

type pageCache interface {
	GetSummary(userID, period string) ([]byte, error)
	CacheSummary(userID, period string, payload []byte) error
}

// Cached wraps an aggregator with a per user+period page cache. Cache
// problems only degrade to a recomputation, never to a user-visible error.
// Invalidation happens on expense creation, in the entry flow.
type Cached struct {
	inner summarizer
	cache pageCache
}

func NewCached(inner summarizer, cache pageCache) *Cached {
	return &Cached{inner: inner, cache: cache}
}

func (c *Cached) Summarize(ctx context.Context, userID, token string) ([]Page, error) {
	payload, err := c.cache.GetSummary(userID, token)
	if err == nil {
		var pages []Page
		if err = json.Unmarshal(payload, &pages); err == nil {
			return pages, nil
		}
		logger.Warn("broken summary cache entry", zap.Error(err), zap.String("user", userID))
	}

	pages, err := c.inner.Summarize(ctx, userID, token)
	if err != nil {
		return nil, err
	}

	payload, err = json.Marshal(pages)
	if err == nil {
		err = c.cache.CacheSummary(userID, token, payload)
	}
	if err != nil {
		logger.Warn("failed to cache summary", zap.Error(err), zap.String("user", userID))
	}
	return pages, nil
}
