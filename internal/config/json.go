package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		ResetCodeTTL  Duration `json:"reset_code_ttl"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN         string `json:"dsn"`
			AutoMigrate bool   `json:"auto_migrate"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Notifier struct {
		Kind string `json:"kind"`
		SMTP struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Username string `json:"username"`
			Password string `json:"password"`
			From     string `json:"from"`
			StartTLS bool   `json:"starttls"`
			SSL      bool   `json:"ssl_tls"`
		} `json:"smtp,omitempty"`
		Webhook struct {
			URL     string   `json:"url"`
			Timeout Duration `json:"timeout"`
			Secret  string   `json:"secret"`
		} `json:"webhook,omitempty"`
	} `json:"notifier,omitempty"`

	Workers struct {
		NotificationQueueSize int `json:"notification_queue_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	smtp := jsonCfg.Notifier.SMTP

	return &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			ResetCodeTTL:  time.Duration(jsonCfg.App.ResetCodeTTL),
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:         jsonCfg.Storage.DB.DSN,
				AutoMigrate: jsonCfg.Storage.DB.AutoMigrate,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Notifier: Notifier{
			Kind: jsonCfg.Notifier.Kind,
			SMTP: SMTP{
				Host:     smtp.Host,
				Port:     smtp.Port,
				Username: smtp.Username,
				Password: smtp.Password,
				From:     smtp.From,
				StartTLS: smtp.StartTLS,
				SSL:      smtp.SSL,
			},
			Webhook: Webhook{
				URL:     jsonCfg.Notifier.Webhook.URL,
				Timeout: time.Duration(jsonCfg.Notifier.Webhook.Timeout),
				Secret:  jsonCfg.Notifier.Webhook.Secret,
			},
		},
		Workers: Workers{
			NotificationQueueSize: jsonCfg.Workers.NotificationQueueSize,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
