package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    App{LogLevel: "info"},
		Server: Server{Host: "localhost", Port: "8000"},
		Feed: Feed{
			Delimiter:         ";",
			Encoding:          "utf-8",
			Timeout:           10 * time.Second,
			CacheTTLSeconds:   60,
			RequestsPerSecond: 1,
		},
		FeedRefresh: FeedRefresh{CronSchedule: "*/5 * * * *"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "configuração válida", mutate: func(c *Config) {}},
		{name: "nível de log desconhecido", mutate: func(c *Config) { c.App.LogLevel = "verbose" }, wantErr: true},
		{name: "codificação não suportada", mutate: func(c *Config) { c.Feed.Encoding = "utf-16" }, wantErr: true},
		{name: "delimitador vazio", mutate: func(c *Config) { c.Feed.Delimiter = "" }, wantErr: true},
		{name: "ttl negativo", mutate: func(c *Config) { c.Feed.CacheTTLSeconds = -1 }, wantErr: true},
		{name: "timeout zerado", mutate: func(c *Config) { c.Feed.Timeout = 0 }, wantErr: true},
		{name: "porta ausente", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFeedHelpers(t *testing.T) {
	feed := Feed{Delimiter: ";", CacheTTLSeconds: 90}

	assert.Equal(t, ';', feed.DelimiterRune())
	assert.Equal(t, 90*time.Second, feed.CacheTTL())
	assert.Equal(t, ',', Feed{}.DelimiterRune())
}
