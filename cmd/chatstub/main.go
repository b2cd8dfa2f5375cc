package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tiffinhub/internal/pkg/config"
	"github.com/piresc/tiffinhub/internal/pkg/database"
	"github.com/piresc/tiffinhub/internal/pkg/health"
	jwtpkg "github.com/piresc/tiffinhub/internal/pkg/jwt"
	"github.com/piresc/tiffinhub/internal/pkg/logger"
	"github.com/piresc/tiffinhub/internal/pkg/middleware"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	nrpkg "github.com/piresc/tiffinhub/internal/pkg/newrelic"
	"github.com/piresc/tiffinhub/internal/pkg/server"
	"github.com/piresc/tiffinhub/services/messages/handler"
	"github.com/piresc/tiffinhub/services/messages/repository"
	"github.com/piresc/tiffinhub/services/messages/usecase"
	"github.com/spf13/cobra"
)

const appName = "chatstub"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "Development backend for the provider/admin message endpoints",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "env file to load for local runs")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the message endpoints",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context(), config.InitConfig(configPath))
			},
		},
		newTokenCmd(&configPath),
	)
	return root
}

func newTokenCmd(configPath *string) *cobra.Command {
	var user models.User
	var serviceType string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user.ID == "" {
				return errors.New("--user is required")
			}
			user.ServiceType = models.ServiceType(serviceType)

			configs := config.InitConfig(*configPath)
			token, expiresAt, err := jwtpkg.GenerateToken(&user, configs.JWT)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&user.ID, "user", "", "user id")
	cmd.Flags().StringVar(&user.Name, "name", "", "display name")
	cmd.Flags().StringVar(&user.Role, "role", "provider", "role claim")
	cmd.Flags().StringVar(&serviceType, "service-type", string(models.ServiceTypeTiffinProvider), "hostel_owner or tiffin_provider")
	return cmd
}

func serve(ctx context.Context, configs *models.Config) error {
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			logger.Warn("New Relic connection timeout", logger.Err(err))
		}
		defer nrApp.Shutdown(5 * time.Second)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	if configs.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	messageUC := usecase.NewMessageUC(repository.NewMessageRepository(redisClient))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestMiddleware(nrApp, zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewService(appName)
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	health.RegisterEndpoints(e, healthService)

	handler.NewHandler(messageUC, configs).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	return srv.Run(ctx)
}
