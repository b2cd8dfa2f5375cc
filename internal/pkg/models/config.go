package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	API      APIConfig
	Server   ServerConfig
	Session  SessionConfig
	Redis    RedisConfig
	JWT      JWTConfig
	OTP      OTPConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// APIConfig describes the backend the client talks to
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ServerConfig contains HTTP server configuration for the dev backend stub
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout int
}

// SessionConfig selects where the client session lives between runs
type SessionConfig struct {
	Store string // "memory" or "redis"
	Key   string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// OTPConfig contains verification screen settings
type OTPConfig struct {
	Length        int
	ResendSeconds int
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
