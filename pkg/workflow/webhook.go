package workflow

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/waddleerr"
)

// WebhookRequest is one outbound webhook call after variable substitution.
type WebhookRequest struct {
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    map[string]any    `json:"body,omitempty"`

	// Timeout overrides the executor default when > 0.
	Timeout time.Duration `json:"-"`
	// MaxRetries is the number of retries after the first attempt, so the
	// call makes at most MaxRetries+1 attempts. Negative means the executor
	// default applies.
	MaxRetries int `json:"-"`

	// HMAC signing; no secret means no signature header.
	HMACSecret    string `json:"-"`
	HMACAlgorithm string `json:"-"`
	HMACHeader    string `json:"-"`

	// Extract maps result variable names to response paths.
	Extract map[string]string `json:"-"`
}

// ExecutionResult records the outcome of one webhook node.
type ExecutionResult struct {
	Success    bool           `json:"success"`
	StatusCode int            `json:"status_code"`
	Attempts   int            `json:"attempts"`
	Duration   time.Duration  `json:"duration"`
	Body       any            `json:"body,omitempty"`
	Extracted  map[string]any `json:"extracted,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// retryableStatuses are the HTTP statuses worth another attempt. Everything
// else, including other 4xx, fails the call immediately.
var retryableStatuses = map[int]bool{
	http.StatusRequestTimeout:      true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// WebhookExecutor sends signed webhook requests with bounded retry and
// extracts result variables from JSON responses.
type WebhookExecutor struct {
	client   *http.Client
	defaults config.WebhookConfig

	// newBackOff builds the per-call retry policy; tests swap in a
	// zero-interval policy.
	newBackOff func() backoff.BackOff
}

// NewWebhookExecutor builds an executor around one shared HTTP client.
// Per-request timeouts ride on the context, not the client.
func NewWebhookExecutor(defaults config.WebhookConfig) *WebhookExecutor {
	return &WebhookExecutor{
		client:   &http.Client{},
		defaults: defaults,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}

// Execute runs one webhook call to completion: canonical body encoding,
// HMAC signing, retry with exponential backoff on transport errors and
// retryable statuses, then response parsing and extraction.
func (e *WebhookExecutor) Execute(ctx context.Context, req WebhookRequest) ExecutionResult {
	started := time.Now()
	result := ExecutionResult{}

	payload, err := canonicalBody(req.Body)
	if err != nil {
		result.Error = fmt.Sprintf("encoding body: %v", err)
		result.Duration = time.Since(started)
		return result
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = e.defaults.DefaultTimeout
	}

	retries := req.MaxRetries
	if retries < 0 {
		retries = e.defaults.MaxRetries
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(e.newBackOff(), uint64(retries)), ctx)

	var resp *http.Response
	var respBody []byte
	err = backoff.Retry(func() error {
		result.Attempts++

		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		httpReq, err := e.buildRequest(attemptCtx, req, payload)
		if err != nil {
			return backoff.Permanent(err)
		}

		r, err := e.client.Do(httpReq)
		if err != nil {
			return waddleerr.Wrap(waddleerr.KindRetryableTransport, "webhook request failed", err)
		}
		body, readErr := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		r.Body.Close()
		if readErr != nil {
			return waddleerr.Wrap(waddleerr.KindRetryableTransport, "reading webhook response", readErr)
		}

		resp = r
		respBody = body
		if retryableStatuses[r.StatusCode] {
			return waddleerr.New(waddleerr.KindRetryableTransport,
				fmt.Sprintf("webhook returned status %d", r.StatusCode))
		}
		if r.StatusCode < 200 || r.StatusCode >= 300 {
			return backoff.Permanent(waddleerr.New(waddleerr.KindNonRetryableTransport,
				fmt.Sprintf("webhook returned status %d", r.StatusCode)))
		}
		return nil
	}, policy)

	result.Duration = time.Since(started)
	if resp != nil {
		result.StatusCode = resp.StatusCode
	}
	if err != nil {
		result.Error = err.Error()
		slog.Warn("Webhook call failed",
			"url", req.URL, "attempts", result.Attempts, "status", result.StatusCode, "error", err)
		return result
	}

	result.Success = true
	result.Body = parseResponseBody(resp, respBody)
	result.Extracted = extract(result.Body, req.Extract)
	return result
}

func (e *WebhookExecutor) buildRequest(ctx context.Context, req WebhookRequest, payload []byte) (*http.Request, error) {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodPost
	}

	var body io.Reader
	if len(payload) > 0 && method != http.MethodGet {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("building webhook request: %w", err)
	}

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if req.HMACSecret != "" {
		sig, err := sign(payload, req.HMACSecret, e.hmacAlgorithm(req))
		if err != nil {
			return nil, err
		}
		header := req.HMACHeader
		if header == "" {
			header = "X-Signature"
		}
		httpReq.Header.Set(header, sig)
	}
	return httpReq, nil
}

func (e *WebhookExecutor) hmacAlgorithm(req WebhookRequest) string {
	if req.HMACAlgorithm != "" {
		return req.HMACAlgorithm
	}
	return e.defaults.HMACAlgorithm
}

// canonicalBody encodes the body compactly with sorted keys so the signature
// is stable for a given payload. encoding/json already sorts map keys.
func canonicalBody(body map[string]any) ([]byte, error) {
	if len(body) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// sign computes the hex HMAC of payload under the named hash.
func sign(payload []byte, secret, algorithm string) (string, error) {
	var newHash func() hash.Hash
	switch algorithm {
	case "sha256":
		newHash = sha256.New
	case "sha512":
		newHash = sha512.New
	case "sha1":
		newHash = sha1.New
	default:
		return "", fmt.Errorf("unsupported hmac algorithm %q", algorithm)
	}
	mac := hmac.New(newHash, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// parseResponseBody decodes JSON responses into a navigable value; anything
// else stays a string.
func parseResponseBody(resp *http.Response, body []byte) any {
	if len(body) == 0 {
		return nil
	}
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType == "application/json" || strings.HasSuffix(mediaType, "+json") {
		var parsed any
		if err := json.Unmarshal(body, &parsed); err == nil {
			return parsed
		}
	}
	return string(body)
}

// extract resolves each extraction path against the response body. Missing
// paths extract nil rather than failing the node.
func extract(body any, paths map[string]string) map[string]any {
	if len(paths) == 0 {
		return nil
	}
	out := make(map[string]any, len(paths))
	for name, path := range paths {
		val, ok := LookupPath(body, path)
		if !ok {
			out[name] = nil
			continue
		}
		out[name] = val
	}
	return out
}
