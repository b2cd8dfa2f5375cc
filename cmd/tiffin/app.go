package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tiffinhub/internal/pkg/config"
	"github.com/piresc/tiffinhub/internal/pkg/database"
	httpclient "github.com/piresc/tiffinhub/internal/pkg/http"
	"github.com/piresc/tiffinhub/internal/pkg/logger"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	nrpkg "github.com/piresc/tiffinhub/internal/pkg/newrelic"
	"github.com/piresc/tiffinhub/internal/pkg/session"
	"github.com/piresc/tiffinhub/services/chat"
	"github.com/piresc/tiffinhub/services/chat/gateway"
	"github.com/piresc/tiffinhub/services/chat/usecase"
)

const (
	sessionStoreRedis = "redis"
	envConfigPath     = "TIFFIN_CONFIG"
)

// loadConfig reads the env file named by TIFFIN_CONFIG, if any, and the environment
func loadConfig() *models.Config {
	return config.InitConfig(os.Getenv(envConfigPath))
}

// app holds everything a command needs. It is built once per invocation.
type app struct {
	cfg   *models.Config
	log   *logger.ZapLogger
	nrApp *newrelic.Application
	redis *database.RedisClient
	store session.Store
}

func newApp(ctx context.Context, cfg *models.Config) (*app, error) {
	nrApp := nrpkg.InitNewRelic(cfg)

	zapLogger, err := logger.InitZapLoggerFromConfig(cfg, nrApp)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.SetGlobalLogger(zapLogger)

	a := &app{cfg: cfg, log: zapLogger, nrApp: nrApp}
	if err := a.openSessionStore(ctx); err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

func (a *app) openSessionStore(ctx context.Context) error {
	if a.cfg.Session.Store != sessionStoreRedis {
		a.store = session.NewMemoryStore()
		return nil
	}

	redisClient, err := database.NewRedisClient(a.cfg.Redis)
	if err != nil {
		return err
	}
	a.redis = redisClient

	store, err := session.NewPersistentStore(ctx, session.NewRedisPersister(redisClient.GetClient(), a.cfg.Session.Key))
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	a.store = store
	return nil
}

// persistent reports whether the session outlives this process
func (a *app) persistent() bool {
	return a.redis != nil
}

func (a *app) chatUC() chat.ChatUC {
	client := httpclient.NewAuthenticatedClient(httpclient.Config{
		BaseURL: a.cfg.API.BaseURL,
		Timeout: a.cfg.API.Timeout,
	}, a.store,
		httpclient.WithLogger(a.log),
		httpclient.WithNewRelic(a.nrApp),
	)
	return usecase.NewChatUC(gateway.NewChatGW(client), a.store)
}

// trace starts a New Relic transaction named after the command
func (a *app) trace(ctx context.Context, name string) (context.Context, func()) {
	return nrpkg.StartTransaction(ctx, a.nrApp, name)
}

func (a *app) close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.nrApp != nil {
		a.nrApp.Shutdown(5 * time.Second)
	}
	_ = a.log.Close()
}
