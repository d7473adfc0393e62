package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeCleanCommunity(t *testing.T) {
	now := time.Now()
	score := Compute(Activity{
		DistinctActiveUsers: 120,
		Messages:            5000,
	}, now)

	assert.Equal(t, 100, score.Overall)
	assert.Equal(t, "A", score.Grade)
	assert.Equal(t, SizeMedium, score.Size)
	assert.Equal(t, now, score.CalculatedAt)
}

func TestComputeWeighting(t *testing.T) {
	// Zero out one component at a time and check its weight's contribution.
	cases := []struct {
		name     string
		activity Activity
		expected int
	}{
		{
			name: "security component floor",
			activity: Activity{
				DistinctActiveUsers: 100,
				Messages:            1000,
				FailedAuthAttempts:  500,
			},
			// security hits 0, the other components stay at 100:
			// 0.30*100 + 0.25*100 + 0.20*0 + 0.25*100 = 80
			expected: 80,
		},
		{
			name: "bad actor component floor",
			activity: Activity{
				DistinctActiveUsers: 100,
				Messages:            100,
				SpamIncidents:       100,
			},
			// 0.25*100 + 0.20*100 + 0.25*100 = 70
			expected: 70,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := Compute(tc.activity, time.Now())
			assert.Equal(t, tc.expected, score.Overall)
		})
	}
}

func TestComputeGradeBoundaries(t *testing.T) {
	assert.Equal(t, "A", gradeFor(90))
	assert.Equal(t, "B", gradeFor(89))
	assert.Equal(t, "B", gradeFor(80))
	assert.Equal(t, "C", gradeFor(79))
	assert.Equal(t, "C", gradeFor(70))
	assert.Equal(t, "D", gradeFor(69))
	assert.Equal(t, "D", gradeFor(60))
	assert.Equal(t, "F", gradeFor(59))
	assert.Equal(t, "F", gradeFor(0))
}

func TestComputeSizeBuckets(t *testing.T) {
	assert.Equal(t, SizeSmall, sizeFor(0))
	assert.Equal(t, SizeSmall, sizeFor(49))
	assert.Equal(t, SizeMedium, sizeFor(50))
	assert.Equal(t, SizeMedium, sizeFor(499))
	assert.Equal(t, SizeLarge, sizeFor(500))
}

func TestComputeClampsAtZero(t *testing.T) {
	score := Compute(Activity{
		DistinctActiveUsers: 10,
		Messages:            10,
		SpamIncidents:       1000,
		ModerationActions:   1000,
		FailedAuthAttempts:  1000,
		AIFlaggedMessages:   1000,
	}, time.Now())

	assert.Equal(t, 0, score.Overall)
	assert.Equal(t, "F", score.Grade)
}

func TestComputeWeightsRecorded(t *testing.T) {
	score := Compute(Activity{}, time.Now())
	assert.InDelta(t, 0.30, score.Weights["bad_actor"], 1e-9)
	assert.InDelta(t, 0.25, score.Weights["reputation"], 1e-9)
	assert.InDelta(t, 0.20, score.Weights["security"], 1e-9)
	assert.InDelta(t, 0.25, score.Weights["ai_behavioral"], 1e-9)

	var sum float64
	for _, w := range score.Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
