package waddleerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Run("classified error", func(t *testing.T) {
		err := New(KindConflict, "alias already exists")
		assert.Equal(t, KindConflict, KindOf(err))
	})

	t.Run("wrapped classified error", func(t *testing.T) {
		err := fmt.Errorf("saving alias: %w", New(KindConflict, "duplicate"))
		assert.Equal(t, KindConflict, KindOf(err))
		assert.True(t, Is(err, KindConflict))
	})

	t.Run("plain error is internal", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Wrap(KindTimeout, "deadline", nil))
	})

	t.Run("unwraps to cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Wrap(KindRetryableTransport, "calling provider", cause)
		assert.ErrorIs(t, err, cause)
	})
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(New(KindTimeout, "deadline exceeded")))
	assert.True(t, Retryable(New(KindRetryableTransport, "503")))
	assert.True(t, Retryable(New(KindDependencyUnavailable, "redis down")))
	assert.False(t, Retryable(New(KindValidation, "bad input")))
	assert.False(t, Retryable(New(KindNonRetryableTransport, "404")))
	assert.False(t, Retryable(errors.New("unclassified")))
}
