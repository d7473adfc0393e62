package router

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/waddlebot/waddlebot-core/pkg/models"
)

func TestAggregatorCollectsAllResponses(t *testing.T) {
	agg := NewAggregator(time.Second, 5*time.Second)
	agg.Expect("s1", []string{"music", "quotes"})

	go func() {
		assert.True(t, agg.Deliver(models.ModuleResponse{SessionID: "s1", ModuleName: "music", Success: true}))
		assert.True(t, agg.Deliver(models.ModuleResponse{SessionID: "s1", ModuleName: "quotes", Success: true}))
	}()

	result := agg.Wait(context.Background(), "s1")
	assert.Len(t, result.Responses, 2)
	assert.Empty(t, result.TimedOut)
	assert.Zero(t, agg.PendingCount())
}

func TestAggregatorPartialTimeout(t *testing.T) {
	agg := NewAggregator(50*time.Millisecond, time.Second)
	agg.Expect("s1", []string{"fast", "slow"})

	assert.True(t, agg.Deliver(models.ModuleResponse{SessionID: "s1", ModuleName: "fast", Success: true}))

	result := agg.Wait(context.Background(), "s1")
	assert.Len(t, result.Responses, 1)
	assert.Equal(t, "fast", result.Responses[0].ModuleName)
	assert.Equal(t, []string{"slow"}, result.TimedOut)
}

func TestAggregatorUnclaimedDeliveries(t *testing.T) {
	agg := NewAggregator(time.Second, time.Second)
	agg.Expect("s1", []string{"music"})

	// Unknown session.
	assert.False(t, agg.Deliver(models.ModuleResponse{SessionID: "ghost", ModuleName: "music"}))
	// Unsolicited module.
	assert.False(t, agg.Deliver(models.ModuleResponse{SessionID: "s1", ModuleName: "quotes"}))
	// Duplicate from the same module.
	assert.True(t, agg.Deliver(models.ModuleResponse{SessionID: "s1", ModuleName: "music"}))
	assert.False(t, agg.Deliver(models.ModuleResponse{SessionID: "s1", ModuleName: "music"}))

	result := agg.Wait(context.Background(), "s1")
	assert.Len(t, result.Responses, 1)

	// Session is released after Wait; late responses are unclaimed.
	assert.False(t, agg.Deliver(models.ModuleResponse{SessionID: "s1", ModuleName: "music"}))
}

func TestAggregatorGlobalDeadlineCapsWait(t *testing.T) {
	agg := NewAggregator(time.Minute, 50*time.Millisecond)
	agg.Expect("s1", []string{"stuck"})

	started := time.Now()
	result := agg.Wait(context.Background(), "s1")
	assert.Less(t, time.Since(started), 500*time.Millisecond)
	assert.Equal(t, []string{"stuck"}, result.TimedOut)
}

func TestAggregatorContextCancelReleasesWait(t *testing.T) {
	agg := NewAggregator(time.Minute, time.Minute)
	agg.Expect("s1", []string{"stuck"})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	started := time.Now()
	result := agg.Wait(ctx, "s1")
	assert.Less(t, time.Since(started), time.Second)
	assert.Equal(t, []string{"stuck"}, result.TimedOut)
}

func TestAggregatorWaitUnknownSession(t *testing.T) {
	agg := NewAggregator(time.Second, time.Second)
	result := agg.Wait(context.Background(), "never-registered")
	assert.Empty(t, result.Responses)
	assert.Empty(t, result.TimedOut)
}

func TestAggregatorAbort(t *testing.T) {
	agg := NewAggregator(time.Minute, time.Minute)
	agg.Expect("s1", []string{"music"})
	agg.Abort("s1")
	assert.Zero(t, agg.PendingCount())
	assert.False(t, agg.Deliver(models.ModuleResponse{SessionID: "s1", ModuleName: "music"}))
}
