package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the env file for local runs and builds the config from the environment
func InitConfig(configPath string) *models.Config {
	local := os.Getenv("APP_ENV")
	if local == "" || local == "local" {
		if configPath != "" {
			if err := godotenv.Load(configPath); err != nil {
				log.Println("error loading config from file", err)
			}
		}
	}
	return loadConfigFromEnv(newEnvReader())
}

func newEnvReader() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "tiffinhub")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", false)

	v.SetDefault("API_BASE_URL", "http://localhost:9990")
	v.SetDefault("API_TIMEOUT_SECONDS", 30)

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("SESSION_STORE", "memory")
	v.SetDefault("SESSION_KEY", "tiffinhub:session")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "tiffinhub")

	v.SetDefault("OTP_LENGTH", 4)
	v.SetDefault("OTP_RESEND_SECONDS", 60)

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_FORWARD_LOGS", false)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfigFromEnv(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// API config
	configs.API.BaseURL = v.GetString("API_BASE_URL")
	configs.API.Timeout = time.Duration(v.GetInt("API_TIMEOUT_SECONDS")) * time.Second

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Session config
	configs.Session.Store = v.GetString("SESSION_STORE")
	configs.Session.Key = v.GetString("SESSION_KEY")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// OTP config
	configs.OTP.Length = v.GetInt("OTP_LENGTH")
	configs.OTP.ResendSeconds = v.GetInt("OTP_RESEND_SECONDS")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}
