// Command ladderbook-gateway runs the matching core as a long-lived
// service: it consumes command lines from Kafka, applies them to an
// in-memory book on a single goroutine, publishes trade prints back to
// Kafka, and periodically snapshots book state to Redis. Grounded on the
// teacher's matching-service/cmd/main.go wiring and shutdown sequence.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"

	"github.com/quaystack/ladderbook/internal/app/engine"
	typesv1 "github.com/quaystack/ladderbook/internal/domain/types/v1"
	matchpublisher "github.com/quaystack/ladderbook/internal/usecase/match-publisher"
	orderreader "github.com/quaystack/ladderbook/internal/usecase/order-reader"
	"github.com/quaystack/ladderbook/internal/usecase/snapshot"
	"github.com/quaystack/ladderbook/pkg/config"
	"github.com/quaystack/ladderbook/pkg/errors"
	"github.com/quaystack/ladderbook/pkg/logger"
	"github.com/quaystack/ladderbook/pkg/redis"
)

// Config is the gateway's environment configuration.
type Config struct {
	Pair  string       `env:"PAIR,required"`
	Kafka KafkaConfig  `envPrefix:"KAFKA_"`
	Redis redis.Config `envPrefix:"REDIS_"`
}

func symbolOf(pair string) typesv1.Symbol {
	return typesv1.Symbol(pair)
}

// KafkaConfig configures the input and output topics.
type KafkaConfig struct {
	Brokers    []string `env:"BROKERS,required"`
	GroupID    string   `env:"GROUP_ID,required"`
	InputTopic string   `env:"INPUT_TOPIC,required"`
	TradeTopic string   `env:"TRADE_TOPIC,required"`
}

func main() {
	log, err := logger.NewLogger()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	cfg := config.MustLoad(&Config{})

	redisClient := redis.NewClient(log, &cfg.Redis)
	if err := redisClient.Connect(context.Background()); err != nil {
		log.Error(errors.NewTracer("gateway: redis connect failed").Wrap(err))
		os.Exit(1)
	}

	reader := orderreader.NewKafkaReader(cfg.Kafka.Brokers, cfg.Kafka.InputTopic, cfg.Kafka.GroupID, log)
	publisher := matchpublisher.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.TradeTopic)
	store := snapshot.NewRedisStore(redisClient, log, cfg.Redis.PrefixKey)

	eng := engine.New(reader, publisher, store, log, symbolOf(cfg.Pair))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eng.Start(ctx)
	log.Info("ladderbook-gateway started", logger.NewField("pair", cfg.Pair))

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var shutdownErr error
	if err := eng.Stop(shutdownCtx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, err)
	}
	if err := redisClient.Disconnect(shutdownCtx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, err)
	}
	if shutdownErr != nil {
		log.Error(errors.NewTracer("gateway: shutdown had errors").Wrap(shutdownErr))
	}
}
