// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

var _ middleware.LogFormatter = (*LogFormatter)(nil)

// LogFormatter adapts LoggerInterface to chi's request logger middleware.
type LogFormatter struct {
	logger LoggerInterface
}

func (f *LogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &logEntry{request: r, logger: f.logger}
}

func NewLogFormatter(logger LoggerInterface) *LogFormatter {
	return &LogFormatter{logger: logger}
}

type logEntry struct {
	request *http.Request
	logger  LoggerInterface
}

func (e *logEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	e.logger.Debugf(
		"%s %s://%s%s - %d %dB in %s",
		e.request.Method,
		scheme(e.request),
		e.request.Host,
		e.request.RequestURI,
		status,
		bytes,
		elapsed,
	)
}

func (e *logEntry) Panic(v interface{}, stack []byte) {
	e.logger.Errorf("panic serving %s %s: %v\n%s", e.request.Method, e.request.RequestURI, v, stack)
}

func scheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
