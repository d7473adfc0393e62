package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/waddlebot/waddlebot-core/pkg/services"
)

// CreateCommunityBody is the request body for POST /api/v1/communities.
type CreateCommunityBody struct {
	Name     string         `json:"name"`
	Settings map[string]any `json:"settings,omitempty"`
}

// createCommunityHandler handles POST /api/v1/communities. The caller
// becomes the owner.
func (s *Server) createCommunityHandler(c *echo.Context) error {
	if s.communities == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "community management unavailable")
	}
	if err := requirePermission(c, "manage"); err != nil {
		return err
	}

	var body CreateCommunityBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	comm, err := s.communities.CreateCommunity(c.Request().Context(), services.CreateCommunityRequest{
		Name:     body.Name,
		OwnerID:  currentUser(c).Subject,
		Settings: body.Settings,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, comm)
}

// ScoreResponse is returned by GET /api/v1/communities/:id/score.
type ScoreResponse struct {
	CommunityID     string  `json:"community_id"`
	Overall         int     `json:"overall"`
	Grade           string  `json:"grade"`
	Size            string  `json:"size"`
	BadActorScore   float64 `json:"bad_actor_score"`
	ReputationScore float64 `json:"reputation_score"`
	SecurityScore   float64 `json:"security_score"`
	AIBehavioral    float64 `json:"ai_behavioral_score"`
}

// getScoreHandler handles GET /api/v1/communities/:id/score, reading the
// cached bot score and recomputing when stale.
func (s *Server) getScoreHandler(c *echo.Context) error {
	if s.scores == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "analytics unavailable")
	}

	row, err := s.scores.GetScore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &ScoreResponse{
		CommunityID:     row.CommunityID,
		Overall:         row.Overall,
		Grade:           row.Grade,
		Size:            string(row.SizeCategory),
		BadActorScore:   row.BadActorScore,
		ReputationScore: row.ReputationScore,
		SecurityScore:   row.SecurityScore,
		AIBehavioral:    row.AiBehavioralScore,
	})
}
