package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// LogConfig selects the encoder and level of the global logger
type LogConfig struct {
	Level       string
	Environment string
	ServiceName string
}

// InitLogger initializes the global logger
func InitLogger(cfg LogConfig) *zap.Logger {
	var logConfig zap.Config

	if cfg.Environment == "production" {
		logConfig = zap.NewProductionConfig()
		logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		logConfig = zap.NewDevelopmentConfig()
		logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	logConfig.Level.SetLevel(level)

	built, err := logConfig.Build()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	if cfg.ServiceName != "" {
		built = built.With(zap.String("service", cfg.ServiceName))
	}
	log = built

	log.Info("Logger initialized", zap.String("level", level.String()))
	return log
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if log == nil {
		var err error
		log, err = zap.NewProduction()
		if err != nil {
			panic("Failed to create fallback logger: " + err.Error())
		}
	}
	return log
}

// SetLogger replaces the global logger, mostly for tests.
func SetLogger(l *zap.Logger) {
	log = l
}

// Middleware returns a gin middleware that logs HTTP requests
func Middleware(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetString(RequestIDKey)
		if requestID == "" {
			requestID = c.Request.Header.Get(RequestIDKey)
		}

		ctxLogger := base.With(zap.String("request_id", requestID))
		c.Set(loggerKey, ctxLogger)
		c.Request = c.Request.WithContext(WithContext(c.Request.Context(), ctxLogger))

		c.Next()

		fields := []zapcore.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}

		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			ctxLogger.Error("HTTP request failed", fields...)
			return
		}
		if c.Writer.Status() >= 500 {
			ctxLogger.Error("HTTP request failed", fields...)
			return
		}
		ctxLogger.Info("HTTP request completed", fields...)
	}
}
