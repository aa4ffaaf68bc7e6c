package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"max.ks1230/expense-bot/internal/clients/kafka"
	"max.ks1230/expense-bot/internal/config"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/analytics"
)

func main() {
	logger.Info("Reporter init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	collector := analytics.NewCollector()

	consumer, err := kafka.NewConsumer(conf.Kafka(), collector)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		err := http.ListenAndServe(fmt.Sprintf(":%d", conf.Server().MetricsPort()), mux)
		if err != nil {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Fatal("failed to start consuming", zap.Error(err))
	}
}
