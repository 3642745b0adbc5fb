// AlgoPath - Problem Quality Metrics and Study Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antonk-nf/algopath2-sub001

package logging

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// AuditEvent describes an administrative action.
type AuditEvent struct {
	Event     string
	IPAddress string
	UserAgent string
	Token     string
	Success   bool
	Error     string
	Details   map[string]string
}

// AuditLogger writes administrative events with sensitive values masked.
type AuditLogger struct {
	logger zerolog.Logger
}

// NewAuditLogger creates an audit logger backed by the global logger.
func NewAuditLogger() *AuditLogger {
	return &AuditLogger{logger: WithComponent("audit")}
}

// NewAuditLoggerWith creates an audit logger on top of an explicit logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewAuditLoggerWith(logger zerolog.Logger) *AuditLogger {
	return &AuditLogger{logger: logger.With().Str("component", "audit").Logger()}
}

// LogEvent writes an audit event. Failures are logged at warn level.
func (l *AuditLogger) LogEvent(event *AuditEvent) {
	var e *zerolog.Event
	if event.Success {
		e = l.logger.Info()
	} else {
		e = l.logger.Warn()
	}

	e = e.Str("event", event.Event).Bool("success", event.Success)
	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.UserAgent != "" {
		e = e.Str("user_agent", truncateString(event.UserAgent, 100))
	}
	if event.Token != "" {
		e = e.Str("token", SanitizeToken(event.Token))
	}
	if event.Error != "" && !event.Success {
		e = e.Str("error", SanitizeError(event.Error))
	}
	for k, v := range event.Details {
		e = e.Str(k, SanitizeValue(k, v))
	}

	e.Msg("")
}

// LogReload records an administrative table reload.
func (l *AuditLogger) LogReload(ip, userAgent string, success bool, errMsg string, rows int) {
	details := map[string]string{}
	if success {
		details["rows"] = strconv.Itoa(rows)
	}
	l.LogEvent(&AuditEvent{
		Event:     "table_reload",
		IPAddress: ip,
		UserAgent: userAgent,
		Success:   success,
		Error:     errMsg,
		Details:   details,
	})
}

// LogUnauthorized records a rejected admin request.
func (l *AuditLogger) LogUnauthorized(ip, userAgent, path, token string) {
	l.LogEvent(&AuditEvent{
		Event:     "admin_unauthorized",
		IPAddress: ip,
		UserAgent: userAgent,
		Token:     token,
		Success:   false,
		Error:     "invalid admin credentials",
		Details:   map[string]string{"path": path},
	})
}

// SanitizeToken masks a token, showing only the first and last 4 characters.
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeError hides error messages that mention credentials and truncates
// long ones.
func SanitizeError(err string) string {
	lowerErr := strings.ToLower(err)
	for _, pattern := range []string{"password", "secret", "token", "bearer", "authorization"} {
		if strings.Contains(lowerErr, pattern) {
			return "authentication error"
		}
	}
	return truncateString(err, 200)
}

// SanitizeValue masks a value whose key names a credential.
func SanitizeValue(key, value string) string {
	switch strings.ToLower(key) {
	case "token", "admin_token", "authorization", "bearer", "secret", "api_key":
		return SanitizeToken(value)
	default:
		return value
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
