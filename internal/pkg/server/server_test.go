package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tiffinhub/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGracefulServer_RunStopsOnCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	gs := NewGracefulServer(e, logger.NewNopLogger(), "127.0.0.1", 0, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- gs.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return e.ListenerAddr() != nil
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + e.ListenerAddr().String() + "/ping")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestGracefulServer_StartFailure(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), "256.0.0.1", 1, time.Second)

	err := gs.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start server")
}

func TestNewGracefulServer_DefaultShutdownTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), "", 9990, 0)

	assert.Equal(t, DefaultShutdownTimeout, gs.shutdownTimeout)
	assert.Equal(t, ":9990", gs.addr)
}
