package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/test/util"
)

// fakeSource scripts the activity window and counts reads.
type fakeSource struct {
	activity Activity
	err      error
	calls    int
}

func (f *fakeSource) Activity(context.Context, string, time.Duration) (Activity, error) {
	f.calls++
	return f.activity, f.err
}

func createCommunity(t *testing.T, client *ent.Client) string {
	t.Helper()
	comm, err := client.Community.Create().
		SetID(uuid.New().String()).
		SetName("score-test").
		SetOwnerID("owner-1").
		Save(context.Background())
	require.NoError(t, err)
	return comm.ID
}

func TestGetScoreCaching(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	commID := createCommunity(t, client)

	source := &fakeSource{activity: Activity{DistinctActiveUsers: 30, Messages: 200}}
	svc := NewService(client, source)

	first, err := svc.GetScore(ctx, commID)
	require.NoError(t, err)
	assert.Equal(t, 100, first.Overall)
	assert.Equal(t, "A", first.Grade)
	assert.Equal(t, "small", string(first.SizeCategory))
	assert.Equal(t, 1, source.calls)

	// Fresh row: the source is not consulted again.
	second, err := svc.GetScore(ctx, commID)
	require.NoError(t, err)
	assert.Equal(t, first.Overall, second.Overall)
	assert.Equal(t, 1, source.calls)

	// Row past next_recalculation: recompute with the new activity.
	svc.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	source.activity = Activity{DistinctActiveUsers: 30, Messages: 100, SpamIncidents: 100}

	third, err := svc.GetScore(ctx, commID)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
	assert.Less(t, third.Overall, first.Overall)
	assert.WithinDuration(t, svc.now().Add(24*time.Hour), third.NextRecalculation, time.Minute)
}

func TestGetScoreStaleFallback(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	commID := createCommunity(t, client)

	source := &fakeSource{activity: Activity{DistinctActiveUsers: 600}}
	svc := NewService(client, source)

	cached, err := svc.GetScore(ctx, commID)
	require.NoError(t, err)
	assert.Equal(t, "large", string(cached.SizeCategory))

	// Stale row plus a failing source: serve the stale value.
	svc.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	source.err = errors.New("activity backend down")

	score, err := svc.GetScore(ctx, commID)
	require.NoError(t, err)
	assert.Equal(t, cached.Overall, score.Overall)
}

func TestGetScoreNoCacheNoSource(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	commID := createCommunity(t, client)

	source := &fakeSource{err: errors.New("activity backend down")}
	svc := NewService(client, source)

	_, err := svc.GetScore(context.Background(), commID)
	assert.Error(t, err)
}
