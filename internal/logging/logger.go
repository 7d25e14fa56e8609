// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger
}

// Sync flushes any buffered log entries, it is meant to be deferred
// before the process exits.
func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}

func NewLogger(level string) *Logger {
	logLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		logLevel = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(logLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}

	return &Logger{logger.Sugar()}
}

// NewNoopLogger returns a logger that discards everything, used in tests
// where log output is irrelevant.
func NewNoopLogger() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}
