package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	jaeger "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"

	"max.ks1230/expense-bot/internal/clients/cache"
	"max.ks1230/expense-bot/internal/clients/kafka"
	"max.ks1230/expense-bot/internal/clients/msgr"
	"max.ks1230/expense-bot/internal/config"
	"max.ks1230/expense-bot/internal/entity/expense"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/entry"
	"max.ks1230/expense-bot/internal/model/messages"
	"max.ks1230/expense-bot/internal/model/state"
	"max.ks1230/expense-bot/internal/model/storage"
	"max.ks1230/expense-bot/internal/model/summary"
)

const shutdownTimeout = 5 * time.Second

type ledgerStorage interface {
	CreateExpense(ctx context.Context, userID string, amount float64, category, description string) error
	QueryExpenses(ctx context.Context, userID string, from, to time.Time) ([]expense.Record, error)
}

type pageSummarizer interface {
	Summarize(ctx context.Context, userID, token string) ([]summary.Page, error)
}

func main() {
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer := initTracing()
	defer func() {
		_ = closer.Close()
	}()

	loc := appLocation(conf.App().Timezone())

	var (
		flow      *entry.Flow
		summaries pageSummarizer
	)
	if conf.App().Storage() == config.StoragePostgres {
		db, err := storage.NewPostgresStorage(conf.Postgres())
		if err != nil {
			logger.Fatal("failed to init postgres:", zap.Error(err))
		}

		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Fatal("failed to init memcached:", zap.Error(err))
		}

		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()

		flow = entry.NewFlow(db, producer, mc)
		summaries = summary.NewCached(summary.NewAggregator(db, loc), mc)
	} else {
		var mem ledgerStorage = storage.NewInMemStorage()
		flow = entry.NewFlow(mem, nil, nil)
		summaries = summary.NewAggregator(mem, loc)
	}

	states := state.NewService(state.NewInMemStorage())
	router := messages.NewRouter(states, flow, summaries)

	client := msgr.New(conf.Messenger())
	service := messages.NewService(client, router)

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	mux := http.NewServeMux()
	mux.Handle("/webhook", client.WebhookHandler(service))
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", conf.Server().Port()),
		Handler: mux,
	}

	go serveMetrics(conf.Server().MetricsPort())
	go func() {
		logger.Info("listening for webhooks", zap.Int("port", conf.Server().Port()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("webhook server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("Bot stopped")
}

func initTracing() io.Closer {
	cfg := jaegercfg.Configuration{
		ServiceName: "expense-bot",
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
	}
	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	opentracing.SetGlobalTracer(tracer)
	return closer
}

func appLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("unknown timezone, falling back to local", zap.String("timezone", name))
		return time.Local
	}
	return loc
}

func serveMetrics(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
	if err != nil {
		logger.Error("metrics server failed", zap.Error(err))
	}
}
