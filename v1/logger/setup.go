package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper around Uber's Zap logger.
// It pairs the stderr JSON logger with the in-memory capture buffer that
// backs the UI log view.
type Logger struct {
	// Zap is the underlying zap.Logger instance.
	// This is exposed to allow direct access to Zap-specific functionality
	// when needed.
	Zap *zap.Logger

	// Capture holds the most recent log entries for display in the UI.
	// Nil when capturing is disabled.
	Capture *Capture
}

// NewLoggerClient initializes and returns a new instance of the logger based
// on configuration.
//
// The logger is configured with:
//   - JSON encoding for structured logging
//   - ISO8601 timestamp format
//   - Capital letter level encoding (e.g., "INFO", "ERROR")
//   - Process ID and service name as default fields
//   - Caller information (file and line) included in log entries
//   - Output directed to stderr
//   - A bounded in-memory capture core feeding the UI log view
//
// If initialization fails, the function will call log.Fatal to terminate the
// application.
func NewLoggerClient(cfg Config) *Logger {
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	if cfg.CaptureSize == 0 {
		cfg.CaptureSize = DefaultCaptureSize
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel

	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(logLevel),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: true,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	var capture *Capture
	var options []zap.Option

	if cfg.CaptureSize > 0 {
		capture = NewCapture(cfg.CaptureSize)
		core := newCaptureCore(capture, logLevel)
		options = append(options, zap.WrapCore(func(stderr zapcore.Core) zapcore.Core {
			return zapcore.NewTee(stderr, core)
		}))
	}

	zapLogger, err := config.Build(options...)

	if err != nil {
		log.Fatal(err)
	}

	return &Logger{
		Zap:     zapLogger,
		Capture: capture,
	}
}

// Debug logs a message at debug level with the given fields.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.Zap.Debug(msg, fields...)
}

// Info logs a message at info level with the given fields.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.Zap.Info(msg, fields...)
}

// Warn logs a message at warning level with the given fields.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.Zap.Warn(msg, fields...)
}

// Error logs a message at error level with the given fields.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.Zap.Error(msg, fields...)
}
