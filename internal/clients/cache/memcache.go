package cache

import (
	"go.uber.org/zap"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"

	"max.ks1230/expense-bot/internal/logger"
)

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func formatKey(userID, period string) string {
	return userID + ":" + period
}

func (mc *MemcacheClient) CacheSummary(userID, period string, payload []byte) error {
	return mc.client.Set(&memcache.Item{
		Key:   formatKey(userID, period),
		Value: payload,
	})
}

// GetSummary returns memcache.ErrCacheMiss for absent entries; callers
// treat every error as a miss.
func (mc *MemcacheClient) GetSummary(userID, period string) ([]byte, error) {
	item, err := mc.client.Get(formatKey(userID, period))
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

func (mc *MemcacheClient) InvalidateSummaries(userID string, periods []string) error {
	logger.Info("invalidate summary cache", zap.String("user", userID))

	for _, p := range periods {
		err := mc.client.Delete(formatKey(userID, p))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
