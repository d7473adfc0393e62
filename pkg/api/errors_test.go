package api

import (
	"errors"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/waddlebot/waddlebot-core/pkg/services"
	"github.com/waddlebot/waddlebot-core/pkg/waddleerr"
)

func TestStatusForKind(t *testing.T) {
	cases := map[waddleerr.Kind]int{
		waddleerr.KindValidation:            http.StatusBadRequest,
		waddleerr.KindPolicyDenied:          http.StatusForbidden,
		waddleerr.KindNotFound:              http.StatusNotFound,
		waddleerr.KindConflict:              http.StatusConflict,
		waddleerr.KindRateLimited:           http.StatusTooManyRequests,
		waddleerr.KindTimeout:               http.StatusServiceUnavailable,
		waddleerr.KindDependencyUnavailable: http.StatusServiceUnavailable,
		waddleerr.KindRetryableTransport:    http.StatusServiceUnavailable,
		waddleerr.KindInternal:              http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, statusForKind(kind), string(kind))
	}
}

func TestClassify(t *testing.T) {
	status, message, _ := classify(echo.NewHTTPError(http.StatusBadRequest, "bad input"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "bad input", message)

	status, message, details := classify(waddleerr.New(waddleerr.KindRateLimited, "slow down"))
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "slow down", message)
	assert.Equal(t, "rate_limited", details["kind"])

	status, message, _ = classify(errors.New("wires crossed"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", message, "raw error text must not leak")
}

func TestMapServiceError(t *testing.T) {
	var httpErr *echo.HTTPError

	assert.ErrorAs(t, mapServiceError(services.NewValidationError("alias", "must start with !")), &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	assert.ErrorAs(t, mapServiceError(services.ErrNotFound), &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)

	assert.ErrorAs(t, mapServiceError(services.ErrAlreadyExists), &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)

	assert.ErrorAs(t, mapServiceError(errors.New("boom")), &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
}
