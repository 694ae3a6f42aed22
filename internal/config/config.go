// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// expense-keeper server. It is assembled once at startup by merging
// defaults, environment variables, command-line flags and an optional JSON
// file, and is treated as read-only afterwards: components receive the
// sub-struct they need by value.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the reset-code lifetime and versioning.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and CORS settings of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Notifier selects and configures the channel used to deliver
	// password-reset codes.
	Notifier Notifier `envPrefix:"NOTIFIER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle, password-reset codes and versioning.
type App struct {
	// TokenSignKey is the process-wide secret used to sign and verify access
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on verification.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an access token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ResetCodeTTL is the lifetime of a password-reset one-time code.
	// Env: APP_RESET_CODE_TTL
	ResetCodeTTL time.Duration `env:"RESET_CODE_TTL"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend by scheme: "postgres://" / "postgresql://" for
	// PostgreSQL, "sqlite://" or "file:" for a local SQLite file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// AutoMigrate applies the embedded migrations on startup.
	// Env: STORAGE_DB_AUTO_MIGRATE
	AutoMigrate bool `env:"AUTO_MIGRATE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the origins allowed by the CORS middleware.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Notifier kinds.
const (
	NotifierLog     = "log"
	NotifierSMTP    = "smtp"
	NotifierWebhook = "webhook"
)

// Notifier configures delivery of password-reset codes.
type Notifier struct {
	// Kind is one of "log", "smtp" or "webhook".
	// Env: NOTIFIER_KIND
	Kind string `env:"KIND"`

	SMTP SMTP `envPrefix:"SMTP_"`

	Webhook Webhook `envPrefix:"WEBHOOK_"`
}

// SMTP holds mail server settings.
type SMTP struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM"`
	// StartTLS requires STARTTLS on the connection.
	StartTLS bool `env:"STARTTLS"`
	// SSL uses implicit TLS (usually port 465).
	SSL bool `env:"SSL_TLS"`
}

// Webhook holds settings of the HTTP notification endpoint.
type Webhook struct {
	URL     string        `env:"URL"`
	Timeout time.Duration `env:"TIMEOUT"`
	// Secret, when set, signs each request body with HMAC-SHA256.
	Secret string `env:"SECRET"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// NotificationQueueSize bounds the number of pending notifications.
	// Env: WORKERS_NOTIFICATION_QUEUE_SIZE
	NotificationQueueSize int `env:"NOTIFICATION_QUEUE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// Sources are applied in the following order, a later non-zero value
// overriding an earlier one:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// Defaults returns the configuration values used when no source sets them.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "expense-keeper",
			TokenDuration: 30 * time.Minute,
			ResetCodeTTL:  time.Hour,
			Version:       "dev",
			LogLevel:      "debug",
		},
		Server: Server{
			HTTPAddress:    "localhost:8000",
			RequestTimeout: 30 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Notifier: Notifier{
			Kind: NotifierLog,
			SMTP: SMTP{Port: 587, StartTLS: true},
			Webhook: Webhook{
				Timeout: 10 * time.Second,
			},
		},
		Workers: Workers{NotificationQueueSize: 64},
	}
}
