// Package analytics computes the community bot score: a weighted composite
// of behavioral components derived from a 30-day activity window, cached in
// BotScore rows and recomputed when the cache goes stale.
package analytics

import (
	"context"
	"math"
	"time"
)

// Component weights of the composite. They sum to 1.0; the stored row keeps
// a copy so historical scores stay interpretable if weights change.
const (
	weightBadActor     = 0.30
	weightReputation   = 0.25
	weightSecurity     = 0.20
	weightAIBehavioral = 0.25
)

// activityWindow is the lookback for all components.
const activityWindow = 30 * 24 * time.Hour

// Activity is the raw 30-day signal an ActivitySource reports for one
// community.
type Activity struct {
	DistinctActiveUsers int
	Messages            int
	ModerationActions   int
	SpamIncidents       int
	FailedAuthAttempts  int
	WebhookFailures     int
	AIFlaggedMessages   int
}

// ActivitySource supplies the activity window for a community. Sources are
// free to aggregate from session records, platform APIs, or moderation
// logs; the calculator only sees the counts.
type ActivitySource interface {
	Activity(ctx context.Context, communityID string, window time.Duration) (Activity, error)
}

// SizeCategory buckets communities by distinct active users.
type SizeCategory string

const (
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
)

// Score is one computed composite with its components.
type Score struct {
	Overall      int
	Grade        string
	Size         SizeCategory
	BadActor     float64
	Reputation   float64
	Security     float64
	AIBehavioral float64
	Weights      map[string]float64
	CalculatedAt time.Time
}

// Compute derives the component scores and the weighted composite from one
// activity window. All components are 0-100 with higher meaning healthier.
func Compute(a Activity, now time.Time) Score {
	badActor := penaltyScore(a.SpamIncidents+a.ModerationActions, a.Messages, 50)
	reputation := penaltyScore(a.ModerationActions, a.DistinctActiveUsers, 10)
	security := penaltyScore(a.FailedAuthAttempts+a.WebhookFailures, 0, 100)
	aiBehavioral := penaltyScore(a.AIFlaggedMessages, a.Messages, 25)

	weighted := weightBadActor*badActor +
		weightReputation*reputation +
		weightSecurity*security +
		weightAIBehavioral*aiBehavioral

	overall := int(math.Round(weighted))
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}

	return Score{
		Overall:      overall,
		Grade:        gradeFor(overall),
		Size:         sizeFor(a.DistinctActiveUsers),
		BadActor:     badActor,
		Reputation:   reputation,
		Security:     security,
		AIBehavioral: aiBehavioral,
		Weights: map[string]float64{
			"bad_actor":     weightBadActor,
			"reputation":    weightReputation,
			"security":      weightSecurity,
			"ai_behavioral": weightAIBehavioral,
		},
		CalculatedAt: now,
	}
}

// penaltyScore maps an incident count to 0-100. With a population, incidents
// are weighed per thousand events; without one, each incident costs
// 100/fullPenaltyAt points. A quiet community scores a clean 100.
func penaltyScore(incidents, population, fullPenaltyAt int) float64 {
	if incidents <= 0 {
		return 100
	}
	var rate float64
	if population > 0 {
		rate = float64(incidents) / float64(population) * 1000
	} else {
		rate = float64(incidents)
	}
	penalty := rate / float64(fullPenaltyAt) * 100
	if penalty > 100 {
		penalty = 100
	}
	return 100 - penalty
}

// gradeFor maps the composite to a letter grade.
func gradeFor(overall int) string {
	switch {
	case overall >= 90:
		return "A"
	case overall >= 80:
		return "B"
	case overall >= 70:
		return "C"
	case overall >= 60:
		return "D"
	default:
		return "F"
	}
}

// sizeFor buckets by distinct active users: small under 50, medium under
// 500, large beyond.
func sizeFor(activeUsers int) SizeCategory {
	switch {
	case activeUsers < 50:
		return SizeSmall
	case activeUsers < 500:
		return SizeMedium
	default:
		return SizeLarge
	}
}
