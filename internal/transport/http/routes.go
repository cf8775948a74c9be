package httpt

import (
	"net/http"

	_ "quoteintake/docs" // for swagger

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Quote Intake API
// @version         1.0
// @description     API de recebimento de orçamentos
// @contact.name    API Support
// @contact.email   support@example.com
// @host            localhost:5000
// @BasePath        /
// @schemes         http https
// @securityDefinitions.basic BasicAuth
func (h *QuoteHandler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	h.router.POST("/enviar_orcamento",
		h.rateLimitMiddleware(),
		h.bodyLimitMiddleware(),
		h.submitQuoteHandler,
	)
	h.router.GET("/test_smtp", h.testSMTPHandler)

	if len(h.admin) > 0 {
		admin := h.router.Group("/admin", gin.BasicAuth(h.admin))
		{
			admin.GET("/orcamentos/:id", h.getQuoteHandler)
		}
	}

	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
