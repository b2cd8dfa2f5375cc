package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tiffinhub/internal/pkg/logger"
	"github.com/piresc/tiffinhub/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application, or returns nil when
// disabled or misconfigured
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Debug("New Relic is disabled or license key not provided")
		return nil
	}

	logger.Info("New Relic enabled",
		logger.String("app_name", configs.NewRelic.AppName),
		logger.Bool("forward_logs", configs.NewRelic.ForwardLogs))

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.Err(err))
		return nil
	}

	return nrApp
}

// StartTransaction starts a non-web transaction and returns a context carrying
// it. With a nil app the context is returned unchanged and end is a no-op.
func StartTransaction(ctx context.Context, app *newrelic.Application, name string) (context.Context, func()) {
	if app == nil {
		return ctx, func() {}
	}
	txn := app.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), txn.End
}
