package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "waddlebot-core", cfg.ModuleName)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)

	assert.True(t, cfg.Stream.Enabled)
	assert.Equal(t, "events", cfg.Stream.Prefix)
	assert.Equal(t, "dlq", cfg.Stream.DLQPrefix)
	assert.Equal(t, 3, cfg.Stream.MaxRetries)
	assert.Equal(t, 10, cfg.Stream.BatchSize)
	assert.Equal(t, 5000, cfg.Stream.BlockMS)
	assert.Equal(t, int64(10000), cfg.Stream.MaxLen)
	assert.Equal(t, 5*time.Second, cfg.Stream.BlockDuration())

	assert.Equal(t, 5, cfg.Translation.MinWords)
	assert.InDelta(t, 0.70, cfg.Translation.ConfidenceThreshold, 1e-9)
	assert.Equal(t, AIDecisionNever, cfg.Translation.AIDecisionMode)

	assert.Equal(t, 100, cfg.Workflow.MaxNodes)
	assert.Equal(t, 200, cfg.Workflow.MaxConnections)
	assert.Equal(t, 20, cfg.Workflow.MaxDepth)

	assert.Equal(t, 30*time.Second, cfg.Webhook.DefaultTimeout)
	assert.Equal(t, 3, cfg.Webhook.MaxRetries)
	assert.Equal(t, "sha256", cfg.Webhook.HMACAlgorithm)

	assert.Equal(t, time.Hour, cfg.Cache.L1TTL)
	assert.Equal(t, 24*time.Hour, cfg.Cache.L2TTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MODULE_NAME", "router-eu1")
	t.Setenv("MODULE_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STREAM_ENABLED", "false")
	t.Setenv("STREAM_MAX_RETRIES", "5")
	t.Setenv("TRANSLATION_MIN_WORDS", "2")
	t.Setenv("AI_DECISION_MODE", "uncertain")
	t.Setenv("WEBHOOK_DEFAULT_TIMEOUT_MS", "1500")
	t.Setenv("WEBHOOK_MAX_RETRIES", "5")
	t.Setenv("HMAC_DEFAULT_ALGORITHM", "sha512")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "router-eu1", cfg.ModuleName)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.Stream.Enabled)
	assert.Equal(t, 5, cfg.Stream.MaxRetries)
	assert.Equal(t, 2, cfg.Translation.MinWords)
	assert.Equal(t, AIDecisionUncertain, cfg.Translation.AIDecisionMode)
	assert.Equal(t, 1500*time.Millisecond, cfg.Webhook.DefaultTimeout)
	assert.Equal(t, 5, cfg.Webhook.MaxRetries)
	assert.Equal(t, "sha512", cfg.Webhook.HMACAlgorithm)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		errMsg string
	}{
		{name: "non-numeric port", key: "MODULE_PORT", value: "eighty", errMsg: "invalid integer"},
		{name: "port out of range", key: "MODULE_PORT", value: "70000", errMsg: "out of range"},
		{name: "bad retry count", key: "STREAM_MAX_RETRIES", value: "-1", errMsg: "must be >= 0"},
		{name: "bad batch size", key: "STREAM_BATCH_SIZE", value: "0", errMsg: "must be > 0"},
		{name: "unknown ai mode", key: "AI_DECISION_MODE", value: "sometimes", errMsg: "must be never, uncertain, or always"},
		{name: "confidence above one", key: "TRANSLATION_CONFIDENCE_THRESHOLD", value: "1.5", errMsg: "within [0, 1]"},
		{name: "unknown hmac algorithm", key: "HMAC_DEFAULT_ALGORITHM", value: "md5", errMsg: "must be sha256, sha512, or sha1"},
		{name: "unknown jwt algorithm", key: "JWT_ALGORITHM", value: "RS256", errMsg: "unsupported algorithm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)

			var validErr *ValidationError
			require.ErrorAs(t, err, &validErr)
			assert.Equal(t, tt.key, validErr.Option)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("garbage"))
}
