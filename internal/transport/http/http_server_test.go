package httpt_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"quoteintake/internal/config"
	httpt "quoteintake/internal/transport/http"
	"quoteintake/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestHTTPServer_StopsWhenContextDone(t *testing.T) {
	cfg := &config.HTTP{
		Host:              "127.0.0.1",
		Port:              "0",
		ReadTimeout:       time.Second,
		WriteTimeout:      time.Second,
		IdleTimeout:       time.Second,
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}
	srv := httpt.NewHTTPServer(http.NotFoundHandler(), cfg, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
