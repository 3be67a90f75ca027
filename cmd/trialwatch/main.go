package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voicelane/trialwatch/handler"
	"github.com/voicelane/trialwatch/pkg/config"
	"github.com/voicelane/trialwatch/pkg/email"
	"github.com/voicelane/trialwatch/pkg/httpserver"
	"github.com/voicelane/trialwatch/pkg/logger"
	"github.com/voicelane/trialwatch/pkg/notifier"
	"github.com/voicelane/trialwatch/pkg/pg"
	"github.com/voicelane/trialwatch/pkg/redis"
	"github.com/voicelane/trialwatch/pkg/subscription"
)

type appConfig struct {
	// EmailDevDir, when set, routes all outbound email to disk instead of
	// Postmark. For local development only.
	EmailDevDir string `env:"EMAIL_DEV_DIR"`

	// NotifyInterval enables the built-in scheduler: when > 0 the batch runs
	// on this interval in-process, for deployments without an external cron.
	NotifyInterval time.Duration `env:"NOTIFY_INTERVAL"`

	// NotifyDedup enables the Redis-backed warning dedup log.
	NotifyDedup bool `env:"NOTIFY_DEDUP" envDefault:"false"`

	NotifyConcurrency int           `env:"NOTIFY_CONCURRENCY" envDefault:"1"`
	NotifySendTimeout time.Duration `env:"NOTIFY_SEND_TIMEOUT" envDefault:"5s"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.NewFromConfig(logCfg, logger.WithService("trialwatch"))

	var (
		appCfg     appConfig
		pgCfg      pg.Config
		emailCfg   email.Config
		dispCfg    email.DispatcherConfig
		handlerCfg handler.Config
		serverCfg  httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&pgCfg)
	config.MustLoad(&emailCfg)
	config.MustLoad(&dispCfg)
	config.MustLoad(&handlerCfg)
	config.MustLoad(&serverCfg)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		log.ErrorContext(ctx, "failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		log.ErrorContext(ctx, "failed to apply migrations", logger.Error(err))
		os.Exit(1)
	}

	store := subscription.NewPGStore(pool)

	var sender email.EmailSender
	if appCfg.EmailDevDir != "" {
		log.InfoContext(ctx, "using dev email sender", "dir", appCfg.EmailDevDir)
		sender = email.NewDevSender(appCfg.EmailDevDir)
	} else {
		sender = email.MustNewPostmarkClient(emailCfg)
	}
	dispatcher := email.MustNewDispatcher(sender, dispCfg)

	healthchecks := []func(context.Context) error{pg.Healthcheck(pool)}

	opts := []notifier.Option{
		notifier.WithLogger(log),
		notifier.WithConcurrency(appCfg.NotifyConcurrency),
		notifier.WithSendTimeout(appCfg.NotifySendTimeout),
	}
	if appCfg.NotifyDedup {
		var redisCfg redis.Config
		config.MustLoad(&redisCfg)
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			log.ErrorContext(ctx, "failed to connect to redis", logger.Error(err))
			os.Exit(1)
		}
		defer client.Close()
		opts = append(opts, notifier.WithBucketLog(notifier.NewRedisBucketLog(client)))
		healthchecks = append(healthchecks, redis.Healthcheck(client))
	}

	n := notifier.New(store, dispatcher, opts...)

	if appCfg.NotifyInterval > 0 {
		go runOnInterval(ctx, n, appCfg.NotifyInterval, log)
	}

	router := handler.Router(handlerCfg, n, log, healthchecks...)

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		log.ErrorContext(ctx, "http server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

// runOnInterval is the built-in scheduler mode. The external trigger endpoint
// stays available either way; the bucket log covers the overlap if both fire.
func runOnInterval(ctx context.Context, n *notifier.Notifier, interval time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := n.Run(ctx, time.Now().UTC()); err != nil {
				log.ErrorContext(ctx, "scheduled trial lifecycle run failed", logger.Error(err))
			}
		}
	}
}
