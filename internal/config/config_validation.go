// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged [StructuredConfig] satisfies the
// invariants the server relies on at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 || cfg.App.ResetCodeTTL <= 0 {
		return fmt.Errorf("%w: token issuer, token duration and reset code ttl are required", ErrInvalidAppConfigs)
	}

	if !IsSupportedDSN(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: unsupported dsn", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Notifier.Kind {
	case NotifierLog:
	case NotifierSMTP:
		smtp := cfg.Notifier.SMTP
		if smtp.Host == "" || smtp.Port <= 0 || smtp.From == "" {
			return fmt.Errorf("%w: smtp host, port and from are required", ErrInvalidNotifierConfigs)
		}
	case NotifierWebhook:
		if cfg.Notifier.Webhook.URL == "" {
			return fmt.Errorf("%w: webhook url is required", ErrInvalidNotifierConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidNotifierConfigs, cfg.Notifier.Kind)
	}

	if cfg.Workers.NotificationQueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// IsSupportedDSN reports whether dsn selects one of the known backends.
func IsSupportedDSN(dsn string) bool {
	return IsPostgresDSN(dsn) || IsSQLiteDSN(dsn)
}

// IsPostgresDSN reports whether dsn points at PostgreSQL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// IsSQLiteDSN reports whether dsn points at a local SQLite database.
func IsSQLiteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "sqlite://") || strings.HasPrefix(dsn, "file:")
}
