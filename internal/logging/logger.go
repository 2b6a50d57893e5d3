// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

func parseLevel(l string) zapcore.Level {
	switch strings.ToLower(l) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func newConfig(level zapcore.Level) zap.Config {
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(level)
	c.EncoderConfig.TimeKey = "time"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return c
}

// NewLogger creates a production zap logger, unknown levels fall back to error.
// Security events go through a dedicated info-level logger so they are never
// filtered out by the application log level.
func NewLogger(l string) *Logger {
	logger := zap.Must(newConfig(parseLevel(l)).Build())
	security := zap.Must(newConfig(zapcore.InfoLevel).Build()).Named("security")

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      &SecurityLogger{l: security},
	}
}
