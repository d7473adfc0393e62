package workflow

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/pkg/config"
)

func newTestExecutor() *WebhookExecutor {
	e := NewWebhookExecutor(config.WebhookConfig{
		DefaultTimeout: 5 * time.Second,
		MaxRetries:     3,
		HMACAlgorithm:  "sha256",
	})
	e.newBackOff = func() backoff.BackOff { return backoff.NewConstantBackOff(0) }
	return e
}

// flakyServer fails the first n requests with status, then succeeds.
func flakyServer(t *testing.T, failures int32, status int) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= failures {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok", "user": {"id": 42}}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestWebhookRetryBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("exhausts budget when server keeps failing", func(t *testing.T) {
		srv, calls := flakyServer(t, 5, http.StatusServiceUnavailable)

		res := newTestExecutor().Execute(ctx, WebhookRequest{URL: srv.URL, MaxRetries: 3})
		assert.False(t, res.Success)
		assert.Equal(t, 4, res.Attempts, "max_retries=3 means exactly 4 attempts")
		assert.EqualValues(t, 4, atomic.LoadInt32(calls))
		assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
		assert.NotEmpty(t, res.Error)
	})

	t.Run("recovers within budget", func(t *testing.T) {
		srv, calls := flakyServer(t, 2, http.StatusServiceUnavailable)

		res := newTestExecutor().Execute(ctx, WebhookRequest{URL: srv.URL, MaxRetries: 3})
		assert.True(t, res.Success)
		assert.Equal(t, 3, res.Attempts)
		assert.EqualValues(t, 3, atomic.LoadInt32(calls))
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("client errors do not retry", func(t *testing.T) {
		srv, calls := flakyServer(t, 5, http.StatusUnprocessableEntity)

		res := newTestExecutor().Execute(ctx, WebhookRequest{URL: srv.URL, MaxRetries: 3})
		assert.False(t, res.Success)
		assert.Equal(t, 1, res.Attempts)
		assert.EqualValues(t, 1, atomic.LoadInt32(calls))
	})

	t.Run("negative budget falls back to executor default", func(t *testing.T) {
		srv, calls := flakyServer(t, 5, http.StatusServiceUnavailable)

		res := newTestExecutor().Execute(ctx, WebhookRequest{URL: srv.URL, MaxRetries: -1})
		assert.False(t, res.Success)
		assert.Equal(t, 4, res.Attempts)
		assert.EqualValues(t, 4, atomic.LoadInt32(calls))
	})

	t.Run("429 retries", func(t *testing.T) {
		srv, _ := flakyServer(t, 1, http.StatusTooManyRequests)

		res := newTestExecutor().Execute(ctx, WebhookRequest{URL: srv.URL, MaxRetries: 2})
		assert.True(t, res.Success)
		assert.Equal(t, 2, res.Attempts)
	})
}

func TestWebhookHMACSignature(t *testing.T) {
	const secret = "wh-secret"
	var gotSig string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSig = r.Header.Get("X-Hook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	res := newTestExecutor().Execute(context.Background(), WebhookRequest{
		URL:        srv.URL,
		Body:       map[string]any{"user": "alice", "count": 3},
		HMACSecret: secret,
		HMACHeader: "X-Hook-Signature",
	})
	require.True(t, res.Success)
	require.NotEmpty(t, gotSig)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(gotBody)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSig,
		"signature must cover the exact bytes on the wire")
}

func TestWebhookExtraction(t *testing.T) {
	srv, _ := flakyServer(t, 0, 0)

	res := newTestExecutor().Execute(context.Background(), WebhookRequest{
		URL: srv.URL,
		Extract: map[string]string{
			"status":  "status",
			"user_id": "user.id",
			"missing": "user.name",
		},
	})
	require.True(t, res.Success)
	assert.Equal(t, "ok", res.Extracted["status"])
	assert.EqualValues(t, 42, res.Extracted["user_id"])
	assert.Nil(t, res.Extracted["missing"], "missing paths extract nil, not an error")
}

func TestWebhookTransportErrorRetries(t *testing.T) {
	// Closed port: every attempt is a transport error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	res := newTestExecutor().Execute(context.Background(), WebhookRequest{URL: url, MaxRetries: 2})
	assert.False(t, res.Success)
	assert.Equal(t, 3, res.Attempts)
	assert.Zero(t, res.StatusCode)
}
