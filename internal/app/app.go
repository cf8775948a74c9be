package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"quoteintake/internal/config"
	"quoteintake/internal/entity"
	"quoteintake/internal/notify"
	"quoteintake/internal/repository"
	"quoteintake/internal/service"
	httpt "quoteintake/internal/transport/http"
	"quoteintake/pkg/cache"
	"quoteintake/pkg/logger"
	"quoteintake/pkg/mailer"
	"quoteintake/pkg/metric"
	"quoteintake/pkg/storage/postgres"
	"quoteintake/pkg/storage/postgres/transaction"

	"golang.org/x/sync/errgroup"
)

const _warmCacheLimit = 100

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(ctx, eg, &cfg.Metrics, log)

	if cfg.Postgres.AutoMigrate {
		if err := postgres.ApplyMigrations(ctx, cfg.Postgres.DSN()); err != nil {
			return fmt.Errorf("app.Run: %w", err)
		}
		log.Infow("database migrations applied")
	}

	db, dbErr := initDatabase(ctx, &cfg.Postgres, log)
	if dbErr != nil {
		return dbErr
	}
	defer closeDB(db)

	txManager, txErr := initTransactionManager(db, &cfg.Postgres, log, metrics)
	if txErr != nil {
		return txErr
	}

	quoteCache, cacheErr := initCache(&cfg.Cache, log, metrics)
	if cacheErr != nil {
		return cacheErr
	}
	defer stopCache(quoteCache)

	smtpMailer, mailErr := NewMailer(&cfg.Mail, log)
	if mailErr != nil {
		return mailErr
	}

	dispatcher, notifyErr := initDispatcher(cfg, smtpMailer, log, metrics)
	if notifyErr != nil {
		return notifyErr
	}

	quoteService := service.NewQuoteService(
		repository.NewQuoteRepository(db),
		txManager,
		dispatcher,
		smtpMailer,
		log.With("component", "quote service"),
		metrics.Submission(),
		quoteCache,
		cfg.Cache.TTL,
	)

	if err := quoteService.WarmCache(ctx, _warmCacheLimit); err != nil {
		log.Errorw("failed to warm cache from database", "error", err)
	}

	initHTTPServer(ctx, eg, cfg, quoteService, log, metrics)

	return waitForShutdown(eg)
}

// NewMailer builds the SMTP mailer from the mail section; the smtp-check
// command uses it without starting the rest of the application.
func NewMailer(cfg *config.Mail, log logger.Logger) (*mailer.SMTPMailer, error) {
	m, err := mailer.NewSMTPMailer(
		cfg.Host,
		cfg.From,
		log.With("component", "mailer"),
		mailer.Port(cfg.Port),
		mailer.Credentials(cfg.Username, cfg.Password),
		mailer.TLSPolicy(cfg.TLSPolicy),
		mailer.Timeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("app.NewMailer: %w", err)
	}
	return m, nil
}

func initMetrics(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()
	if !cfg.Enabled {
		return metrics
	}

	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.WriteTimeout)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	})

	return metrics
}

func initDatabase(
	ctx context.Context,
	cfg *config.Postgres,
	log logger.Logger,
) (*postgres.Postgres, error) {
	db, err := postgres.NewPostgres(
		ctx,
		cfg,
		log.With("component", "database"),
		postgres.MaxPoolSize(cfg.PoolMax),
		postgres.MaxConnAttempts(cfg.ConnAttempts),
		postgres.BaseRetryDelay(cfg.BaseRetryDelay),
		postgres.MaxRetryDelay(cfg.MaxRetryDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initDatabase: %w", err)
	}
	return db, nil
}

func closeDB(db *postgres.Postgres) {
	if db != nil {
		db.Close()
	}
}

func initTransactionManager(
	db *postgres.Postgres,
	cfg *config.Postgres,
	log logger.Logger,
	metrics metric.Factory,
) (transaction.Manager, error) {
	txManager, err := transaction.NewManager(
		db.Pool,
		log.With("component", "transaction manager"),
		metrics.Transaction(),
		transaction.MaxAttempts(cfg.TxAttempts),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initTransactionManager: %w", err)
	}
	return txManager, nil
}

func initCache(
	cfg *config.Cache,
	log logger.Logger,
	metrics metric.Factory,
) (cache.Cache[int64, *entity.QuoteRequest], error) {
	quoteCache, err := cache.NewLRUCache[int64, *entity.QuoteRequest](
		"quote",
		cfg.Capacity,
		log.With("component", "cache"),
		metrics.Cache(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initCache: %w", err)
	}
	quoteCache.StartCleanup(cfg.CleanupInterval)
	return quoteCache, nil
}

func stopCache(quoteCache cache.Cache[int64, *entity.QuoteRequest]) {
	if quoteCache != nil {
		quoteCache.StopCleanup()
	}
}

func initDispatcher(
	cfg *config.Config,
	m mailer.Mailer,
	log logger.Logger,
	metrics metric.Factory,
) (*notify.Dispatcher, error) {
	renderer, err := notify.NewRenderer(cfg.Notify.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("app.initDispatcher: %w", err)
	}

	dispatcher, err := notify.NewDispatcher(
		m,
		renderer,
		cfg.Mail.OperatorAddress(),
		log.With("component", "notifier"),
		metrics.Notification(),
		notify.Brand(cfg.Notify.Brand),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initDispatcher: %w", err)
	}
	return dispatcher, nil
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Config,
	quoteService *service.QuoteService,
	log logger.Logger,
	metrics metric.Factory,
) {
	opts := []httpt.Option{
		httpt.AllowedOrigins(cfg.CORS.AllowedOrigins),
		httpt.MaxBodyBytes(cfg.HTTP.MaxBodyBytes),
	}
	if cfg.Admin.Username != "" {
		opts = append(opts, httpt.AdminAccount(cfg.Admin.Username, cfg.Admin.Password))
	}
	if cfg.RateLimit.Enabled {
		opts = append(opts, httpt.RateLimit(cfg.RateLimit.Limit, cfg.RateLimit.Period))
	}

	handler := httpt.NewQuoteHandler(
		quoteService,
		log.With("component", "http handler"),
		metrics.HTTP(),
		opts...,
	)

	httpServer := httpt.NewHTTPServer(
		handler.Engine(),
		&cfg.HTTP,
		log.With("component", "http server"),
	)

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}
