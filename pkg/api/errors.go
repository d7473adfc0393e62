package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/waddlebot/waddlebot-core/pkg/services"
	"github.com/waddlebot/waddlebot-core/pkg/waddleerr"
)

// ErrorBody is the error half of the response envelope.
type ErrorBody struct {
	Message   string         `json:"message"`
	Code      string         `json:"code"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// ErrorEnvelope is the uniform error response shape.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// httpErrorHandler renders every handler error as the error envelope.
func httpErrorHandler(c *echo.Context, err error) {
	if r, _ := echo.UnwrapResponse(c.Response()); r != nil && r.Committed {
		return
	}

	status, message, details := classify(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "method", c.Request().Method, "path", c.Request().URL.Path, "error", err)
	}

	envelope := &ErrorEnvelope{Error: ErrorBody{
		Message:   message,
		Code:      codeFor(status),
		Details:   details,
		Timestamp: time.Now().UTC(),
	}}
	if writeErr := c.JSON(status, envelope); writeErr != nil {
		slog.Error("Failed to write error response", "error", writeErr)
	}
}

func classify(err error) (status int, message string, details map[string]any) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg := httpErr.Message
		if msg == "" {
			msg = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, msg, nil
	}

	var we *waddleerr.Error
	if errors.As(err, &we) {
		return statusForKind(we.Kind), we.Message, map[string]any{"kind": string(we.Kind)}
	}

	return http.StatusInternalServerError, "internal server error", nil
}

// statusForKind maps error kinds to HTTP status codes.
func statusForKind(kind waddleerr.Kind) int {
	switch kind {
	case waddleerr.KindValidation:
		return http.StatusBadRequest
	case waddleerr.KindPolicyDenied:
		return http.StatusForbidden
	case waddleerr.KindNotFound:
		return http.StatusNotFound
	case waddleerr.KindConflict:
		return http.StatusConflict
	case waddleerr.KindRateLimited:
		return http.StatusTooManyRequests
	case waddleerr.KindTimeout, waddleerr.KindDependencyUnavailable, waddleerr.KindRetryableTransport:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func codeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusTooManyRequests:
		return "rate_limited"
	case http.StatusServiceUnavailable:
		return "unavailable"
	}
	return "internal_error"
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) error {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}

	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
