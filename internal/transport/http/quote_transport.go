package httpt

import (
	"context"

	"quoteintake/internal/entity"
	"quoteintake/internal/intake"
	"quoteintake/internal/notify"
	"quoteintake/pkg/logger"
	"quoteintake/pkg/metric"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

//go:generate mockgen -source=quote_transport.go -destination=mock/quote_transport.go -package=mock_httpt

const _defaultMaxBodyBytes = 16 << 20

type QuoteService interface {
	Submit(ctx context.Context, form intake.Form, clientIP string) (*entity.QuoteRequest, notify.Result, error)
	GetQuote(ctx context.Context, id int64) (*entity.QuoteRequest, error)
	CheckMail(ctx context.Context) error
}

type QuoteHandler struct {
	svc     QuoteService
	log     logger.Logger
	metrics metric.HTTP
	router  *gin.Engine

	admin          gin.Accounts
	allowedOrigins []string
	limiter        *limiter.Limiter
	maxBodyBytes   int64
}

func NewQuoteHandler(
	svc QuoteService,
	log logger.Logger,
	metrics metric.HTTP,
	opts ...Option,
) *QuoteHandler {
	h := &QuoteHandler{
		svc:          svc,
		log:          log,
		metrics:      metrics,
		maxBodyBytes: _defaultMaxBodyBytes,
	}

	for _, opt := range opts {
		opt(h)
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())
	router.Use(cors.New(h.corsConfig()))

	h.router = router

	h.setupRoutes()

	return h
}

func (h *QuoteHandler) Engine() *gin.Engine {
	return h.router
}

func (h *QuoteHandler) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if len(h.allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = h.allowedOrigins
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}
	return cfg
}

func newMemoryLimiter(rate limiter.Rate) *limiter.Limiter {
	return limiter.New(memory.NewStore(), rate)
}
