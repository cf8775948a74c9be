package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"quoteintake/internal/entity"
	"quoteintake/internal/intake"
	"quoteintake/internal/notify"
	"quoteintake/pkg/cache"
	"quoteintake/pkg/logger"
	"quoteintake/pkg/metric"
	"quoteintake/pkg/storage/postgres"
	"quoteintake/pkg/storage/postgres/transaction"

	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock_service

const (
	_defaultContextTimeout = 500 * time.Millisecond
	_slowOperation         = 200 * time.Millisecond

	_tagDBText = "dbtext"
)

type (
	QuoteRepository interface {
		Create(ctx context.Context, queryExecuter postgres.QueryExecuter, q *entity.QuoteRequest) error
		GetByID(ctx context.Context, id int64) (*entity.QuoteRequest, error)
		GetRecent(ctx context.Context, limit uint64) ([]*entity.QuoteRequest, error)
	}

	Notifier interface {
		Dispatch(ctx context.Context, q *entity.QuoteRequest) notify.Result
	}

	MailProbe interface {
		Ping(ctx context.Context) error
	}

	QuoteService struct {
		repo      QuoteRepository
		txManager transaction.Manager
		notifier  Notifier
		probe     MailProbe
		logger    logger.Logger
		metrics   metric.Submission
		cache     cache.Cache[int64, *entity.QuoteRequest]
		cacheTTL  time.Duration
		validate  *validator.Validate
		now       func() time.Time
	}
)

func NewQuoteService(
	repo QuoteRepository,
	txManager transaction.Manager,
	notifier Notifier,
	probe MailProbe,
	logger logger.Logger,
	metrics metric.Submission,
	cache cache.Cache[int64, *entity.QuoteRequest],
	cacheTTL time.Duration,
) *QuoteService {
	cache.SetOnEvicted(func(key int64, _ *entity.QuoteRequest) {
		logger.Debugw("cache eviction", "quote_id", key)
	})

	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or a nil func.
	_ = validate.RegisterValidation(_tagDBText, validDBText)

	return &QuoteService{
		repo:      repo,
		txManager: txManager,
		notifier:  notifier,
		probe:     probe,
		logger:    logger,
		metrics:   metrics,
		cache:     cache,
		cacheTTL:  cacheTTL,
		validate:  validate,
		now:       time.Now,
	}
}

// Submit validates, normalizes and stores one quote request, then notifies
// the customer and the operator. Notification failures never fail the call;
// they are reported through the returned notify.Result.
func (s *QuoteService) Submit(
	ctx context.Context,
	form intake.Form,
	clientIP string,
) (*entity.QuoteRequest, notify.Result, error) {
	const op = "service.Submit"
	log := s.logger.Ctx(ctx)

	if err := intake.CheckRequired(form); err != nil {
		s.metrics.Rejected("missing_fields")
		log.LogAttrs(ctx, logger.WarnLevel, "required fields missing",
			logger.String("op", op),
			logger.Err(err),
		)
		return nil, notify.Result{}, fmt.Errorf("%s: %w", op, err)
	}

	fields, err := intake.Normalize(form)
	if err != nil {
		s.metrics.Rejected("invalid_field")
		log.LogAttrs(ctx, logger.WarnLevel, "form normalization failed",
			logger.String("op", op),
			logger.Err(err),
		)
		return nil, notify.Result{}, fmt.Errorf("%s: %w", op, err)
	}

	q := intake.Build(fields, intake.Meta{CreatedAt: s.now(), ClientIP: clientIP})

	if err = s.validateQuote(q); err != nil {
		s.metrics.Rejected("constraint")
		log.LogAttrs(ctx, logger.WarnLevel, "quote violates field constraints",
			logger.String("op", op),
			logger.Err(err),
		)
		return nil, notify.Result{}, fmt.Errorf("%s: %w", op, err)
	}

	startTime := time.Now()
	err = s.txManager.ExecuteInTransaction(ctx, "CreateQuote", func(tx postgres.QueryExecuter) error {
		return s.repo.Create(ctx, tx, q)
	})
	if err != nil {
		s.metrics.Rejected("store")
		log.LogAttrs(ctx, logger.ErrorLevel, "quote persistence failed",
			logger.String("op", op),
			logger.Err(err),
		)
		return nil, notify.Result{}, fmt.Errorf("%s: persist quote: %w", op, err)
	}

	s.cache.Put(q.ID, q, s.cacheTTL)
	s.metrics.Accepted(q.Product)

	log.LogAttrs(ctx, logger.InfoLevel, "quote stored",
		logger.String("op", op),
		logger.Int64("quote_id", q.ID),
		logger.String("product", q.Product),
		logger.String("email", logger.MaskEmail(q.Email)),
		logger.String("duration", time.Since(startTime).String()),
	)

	res := s.notifier.Dispatch(ctx, q)
	if !res.OK() {
		log.LogAttrs(ctx, logger.WarnLevel, "quote stored but notifications partially failed",
			logger.String("op", op),
			logger.Int64("quote_id", q.ID),
			logger.Bool("customer_notified", res.Customer),
			logger.Bool("operator_notified", res.Operator),
		)
	}

	return q, res, nil
}

func (s *QuoteService) GetQuote(ctx context.Context, id int64) (*entity.QuoteRequest, error) {
	const op = "service.GetQuote"
	log := s.logger.Ctx(ctx)

	startTime := time.Now()
	defer func() {
		if duration := time.Since(startTime); duration > _slowOperation {
			log.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
				logger.String("op", op),
				logger.Int64("quote_id", id),
				logger.String("duration", duration.String()),
			)
		}
	}()

	if cached, found := s.cache.Get(id); found {
		log.LogAttrs(ctx, logger.DebugLevel, "quote served from cache",
			logger.String("op", op),
			logger.Int64("quote_id", id),
		)
		return cached, nil
	}

	dbCtx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	q, err := s.repo.GetByID(dbCtx, id)
	if err != nil {
		if !errors.Is(err, entity.ErrDataNotFound) {
			log.LogAttrs(ctx, logger.ErrorLevel, "failed to get quote from database",
				logger.String("op", op),
				logger.Int64("quote_id", id),
				logger.Err(err),
			)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Put(id, q, s.cacheTTL)

	return q, nil
}

// WarmCache loads up to limit of the newest quotes into the cache.
func (s *QuoteService) WarmCache(ctx context.Context, limit uint64) error {
	const op = "service.WarmCache"
	log := s.logger.Ctx(ctx)

	quotes, err := s.repo.GetRecent(ctx, limit)
	if err != nil {
		return fmt.Errorf("%s: get recent quotes: %w", op, err)
	}

	for _, q := range quotes {
		s.cache.Put(q.ID, q, s.cacheTTL)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "cache warm-up finished",
		logger.String("op", op),
		logger.Int("restored_to_cache", len(quotes)),
	)

	return nil
}

// CheckMail performs a connect-and-authenticate handshake with the mail
// server. Authentication failures satisfy errors.Is(err, entity.ErrMailAuth).
func (s *QuoteService) CheckMail(ctx context.Context) error {
	const op = "service.CheckMail"

	if err := s.probe.Ping(ctx); err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "mail server check failed",
			logger.String("op", op),
			logger.Bool("auth_failure", errors.Is(err, entity.ErrMailAuth)),
			logger.Err(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.logger.LogAttrs(ctx, logger.InfoLevel, "mail server check succeeded",
		logger.String("op", op),
	)
	return nil
}

func (s *QuoteService) validateQuote(q *entity.QuoteRequest) error {
	err := s.validate.Struct(q)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", entity.ErrFieldConstraint, err)
	}

	errs := make([]error, 0, len(validationErrs))
	for _, ve := range validationErrs {
		errs = append(errs, &entity.FieldError{
			Field: ve.Field(),
			Err:   fmt.Errorf("%w: %s", entity.ErrFieldConstraint, ve.Tag()),
		})
	}
	return errors.Join(errs...)
}

// validDBText rejects strings a postgres text column cannot hold.
func validDBText(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}
