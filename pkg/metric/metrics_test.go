package metric_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quoteintake/pkg/metric"

	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, f metric.Factory) string {
	t.Helper()

	rec := httptest.NewRecorder()
	f.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestFactory_ExposesDomainMetrics(t *testing.T) {
	f := metric.NewFactory()

	f.HTTP().Request(http.MethodPost, "/enviar_orcamento", http.StatusBadRequest, 20*time.Millisecond)
	f.Transaction().IncrementRetries("CreateQuote")
	f.Cache().Hit("quote")
	f.Cache().Miss("quote")
	f.Cache().Size("quote", 3)
	f.Notification().Failed("customer", "auth", time.Second)
	f.Notification().PartialFailure()
	f.Submission().Accepted("caneca")
	f.Submission().Rejected("missing_fields")

	out := scrape(t, f)

	for _, want := range []string{
		`quoteintake_http_requests_total{method="POST",path="/enviar_orcamento",status="4xx"} 1`,
		`quoteintake_db_transaction_retries_total{operation="CreateQuote"} 1`,
		`quoteintake_cache_lookups_total{cache="quote",result="hit"} 1`,
		`quoteintake_cache_lookups_total{cache="quote",result="miss"} 1`,
		`quoteintake_cache_entries{cache="quote"} 3`,
		`quoteintake_notifications_failed_total{kind="customer",reason="auth"} 1`,
		`quoteintake_notifications_partial_failures_total 1`,
		`quoteintake_quote_requests_accepted_total{product="caneca"} 1`,
		`quoteintake_quote_requests_rejected_total{reason="missing_fields"} 1`,
	} {
		require.True(t, strings.Contains(out, want), "missing %q", want)
	}
}

func TestNewFactory_Independent(t *testing.T) {
	a, b := metric.NewFactory(), metric.NewFactory()

	a.Submission().Accepted("caderno")

	require.Contains(t, scrape(t, a), `quoteintake_quote_requests_accepted_total{product="caderno"} 1`)
	require.NotContains(t, scrape(t, b), `product="caderno"`)
}
