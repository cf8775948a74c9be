package postgres

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"quoteintake/internal/config"
	"quoteintake/pkg/logger"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	_defaultMaxPoolSize    = 10
	_defaultConnAttempts   = 5
	_defaultConnTimeout    = 5 * time.Second
	_defaultBaseRetryDelay = 100 * time.Millisecond
	_defaultMaxRetryDelay  = 5 * time.Second

	_backoffMultiplier = 2
)

// Postgres bundles the pool with a squirrel builder using $n placeholders.
// Executer is what non-transactional reads go through; it is the pool in
// production and a test double in unit tests.
type Postgres struct {
	Builder  squirrel.StatementBuilderType
	Pool     *pgxpool.Pool
	Executer QueryExecuter

	connAttempts   int
	connTimeout    time.Duration
	baseRetryDelay time.Duration
	maxRetryDelay  time.Duration
	maxPoolSize    int32
}

// NewPostgres dials the database, retrying with jittered exponential backoff
// until a ping succeeds, the attempts run out or ctx is done.
func NewPostgres(
	ctx context.Context,
	cfg *config.Postgres,
	log logger.Logger,
	opts ...Option,
) (*Postgres, error) {
	const op = "storage.postgres.NewPostgres"

	pg := &Postgres{
		connAttempts:   _defaultConnAttempts,
		connTimeout:    _defaultConnTimeout,
		baseRetryDelay: _defaultBaseRetryDelay,
		maxRetryDelay:  _defaultMaxRetryDelay,
		maxPoolSize:    _defaultMaxPoolSize,
	}

	for _, opt := range opts {
		opt(pg)
	}
	if err := pg.validate(); err != nil {
		return nil, fmt.Errorf("%s: validation: %w", op, err)
	}

	pg.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%s: parse pool config: %w", op, err)
	}
	poolConfig.MaxConns = pg.maxPoolSize

	backoff := pg.baseRetryDelay
	for attempt := 1; ; attempt++ {
		pool, dialErr := pg.dial(ctx, poolConfig)
		if dialErr == nil {
			pg.Pool = pool
			pg.Executer = pool
			log.Infow("connected to PostgreSQL",
				"host", cfg.Host,
				"database", cfg.Name,
				"attempt", attempt,
			)
			return pg, nil
		}

		if attempt >= pg.connAttempts {
			return nil, fmt.Errorf("%s: giving up after %d attempts: %w", op, attempt, dialErr)
		}

		wait := min(time.Duration(rand.Int64N(int64(backoff*_backoffMultiplier))), pg.maxRetryDelay)
		log.Warnw("PostgreSQL connection attempt failed",
			"operation", op,
			"attempt", attempt,
			"retry_after", wait.String(),
			"error", dialErr,
		)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(wait):
		}

		backoff = min(backoff*_backoffMultiplier, pg.maxRetryDelay)
	}
}

func (p *Postgres) dial(ctx context.Context, poolConfig *pgxpool.Config) (*pgxpool.Pool, error) {
	dialCtx, cancel := context.WithTimeout(ctx, p.connTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(dialCtx, poolConfig)
	if err != nil {
		return nil, err
	}
	if err = pool.Ping(dialCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// NewFromExecuter wraps an already-open executer (a pool or a test double)
// without dialing.
func NewFromExecuter(exec QueryExecuter) *Postgres {
	return &Postgres{
		Builder:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		Executer: exec,
	}
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}
