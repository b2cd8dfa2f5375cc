package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName is attached to every log line
const ServiceName = "tiffinhub"

// ZapLogger wraps zap with optional file output and New Relic log forwarding
type ZapLogger struct {
	*zap.Logger
	nrApp    *newrelic.Application
	filePath string
	file     *os.File
}

// newRelicCore is a zapcore.Core that forwards logs to New Relic
type newRelicCore struct {
	level  zapcore.Level
	nrApp  *newrelic.Application
	fields []zapcore.Field
}

func (c *newRelicCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *newRelicCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(append([]zapcore.Field{}, c.fields...), fields...)
	return &clone
}

func (c *newRelicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *newRelicCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if c.nrApp == nil {
		return nil
	}

	encoder := zapcore.NewMapObjectEncoder()
	for _, field := range c.fields {
		field.AddTo(encoder)
	}
	for _, field := range fields {
		field.AddTo(encoder)
	}

	attrs := encoder.Fields
	attrs["service"] = ServiceName
	attrs["caller"] = entry.Caller.TrimmedPath()
	if entry.Stack != "" {
		attrs["stacktrace"] = entry.Stack
	}

	c.nrApp.RecordLog(newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: attrs,
	})
	return nil
}

func (c *newRelicCore) Sync() error {
	return nil
}

// ZapConfig holds Zap logger configuration
type ZapConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
}

// NewZapLogger creates a new Zap application logger
func NewZapLogger(config ZapConfig, nrApp *newrelic.Application) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	// CLI output goes to stderr so command results on stdout stay clean
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level),
	}

	zapLogger := &ZapLogger{
		nrApp:    nrApp,
		filePath: config.FilePath,
	}

	if config.FilePath != "" {
		if err := zapLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zapLogger.file), level))
	}

	if nrApp != nil {
		cores = append(cores, &newRelicCore{level: level, nrApp: nrApp})
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	zapLogger.Logger = logger.With(zap.String("service", ServiceName))

	return zapLogger, nil
}

// NewNopLogger returns a logger that discards everything, for tests
func NewNopLogger() *ZapLogger {
	return &ZapLogger{Logger: zap.NewNop()}
}

func (zl *ZapLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	zl.file = file
	return nil
}

// Close syncs the logger and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()

	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// WithNewRelicContext adds trace correlation fields from a New Relic transaction
func (zl *ZapLogger) WithNewRelicContext(txn *newrelic.Transaction) *zap.Logger {
	if txn == nil {
		return zl.Logger
	}
	if md := txn.GetLinkingMetadata(); md.TraceID != "" {
		return zl.Logger.With(
			zap.String("trace.id", md.TraceID),
			zap.String("span.id", md.SpanID),
		)
	}
	return zl.Logger
}

// LogHTTPRequest logs a served request at a level derived from its status
func (zl *ZapLogger) LogHTTPRequest(txn *newrelic.Transaction, method, path, userID, requestID string, statusCode int, latency time.Duration, err error) {
	logger := zl.WithNewRelicContext(txn).With(
		zap.Int("status", statusCode),
		zap.Int64("latency_ms", latency.Milliseconds()),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("user_id", userID),
		zap.String("request_id", requestID),
	)

	switch {
	case statusCode >= 500:
		logger.Error("Server error", zap.Error(err))
	case statusCode >= 400:
		logger.Warn("Client error")
	default:
		logger.Info("Request processed")
	}
}

// InitZapLoggerFromConfig initializes Zap logger directly from config models
func InitZapLoggerFromConfig(configs *models.Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	return NewZapLogger(ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	}, nrApp)
}
