package httpt

import (
	"net/http"
	"strconv"
	"time"

	"quoteintake/pkg/logger"

	"github.com/gin-gonic/gin"
)

const _slowRequest = 200 * time.Millisecond

func (h *QuoteHandler) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = h.log.GenerateRequestID()
		}
		ctx := h.log.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

func (h *QuoteHandler) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		h.log.LogAttrs(c.Request.Context(), logger.InfoLevel, "HTTP request",
			logger.String("method", method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", statusCode),
			logger.String("duration", latency.String()),
			logger.String("client_ip", c.ClientIP()),
			logger.String("user_agent", c.Request.UserAgent()),
		)

		h.metrics.Request(method, path, statusCode, latency)

		if latency > _slowRequest {
			h.metrics.SlowRequest(method, path, statusCode, latency)
		}
	}
}

func (h *QuoteHandler) bodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
		c.Next()
	}
}

// rateLimitMiddleware is a no-op when no limiter is configured.
func (h *QuoteHandler) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.limiter == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		lctx, err := h.limiter.Get(ctx, c.ClientIP())
		if err != nil {
			h.log.LogAttrs(ctx, logger.ErrorLevel, "rate limiter unavailable",
				logger.Err(err),
				logger.String("client_ip", c.ClientIP()),
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

		if lctx.Reached {
			h.log.LogAttrs(ctx, logger.WarnLevel, "rate limit reached",
				logger.String("client_ip", c.ClientIP()),
				logger.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, SubmitResponse{
				Success: false,
				Message: _msgTooManyRequests,
			})
			return
		}

		c.Next()
	}
}
