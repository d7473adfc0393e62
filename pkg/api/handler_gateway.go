package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/services"
)

// CreateGatewayBody is the request body for POST /api/v1/gateways.
type CreateGatewayBody struct {
	CommunityID string `json:"community_id"`
	Platform    string `json:"platform"`
	ServerID    string `json:"server_id"`
	ChannelID   string `json:"channel_id"`
}

// GatewayResponse is the API shape of a gateway row. The activation code is
// never returned: it only travels through the onboarding chat message.
type GatewayResponse struct {
	ID          string `json:"id"`
	CommunityID string `json:"community_id"`
	Platform    string `json:"platform"`
	ServerID    string `json:"server_id,omitempty"`
	ChannelID   string `json:"channel_id"`
	Activated   bool   `json:"activated"`
}

func gatewayResponse(gw *ent.Gateway) *GatewayResponse {
	return &GatewayResponse{
		ID:          gw.ID,
		CommunityID: gw.CommunityID,
		Platform:    string(gw.Platform),
		ServerID:    gw.ServerID,
		ChannelID:   gw.ChannelID,
		Activated:   gw.Activated,
	}
}

// createGatewayHandler handles POST /api/v1/gateways.
func (s *Server) createGatewayHandler(c *echo.Context) error {
	if s.gateways == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "gateway management unavailable")
	}
	if err := requirePermission(c, "manage"); err != nil {
		return err
	}

	var body CreateGatewayBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	gw, err := s.gateways.CreateGateway(c.Request().Context(), services.CreateGatewayRequest{
		CommunityID: body.CommunityID,
		Platform:    models.Platform(body.Platform),
		ServerID:    body.ServerID,
		ChannelID:   body.ChannelID,
		CreatedBy:   currentUser(c).Subject,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, gatewayResponse(gw))
}

// ActivateGatewayBody is the request body for POST /api/v1/gateways/activate.
type ActivateGatewayBody struct {
	ActivationCode string `json:"activation_code"`
}

// activateGatewayHandler handles POST /api/v1/gateways/activate, redeeming
// an activation code once.
func (s *Server) activateGatewayHandler(c *echo.Context) error {
	if s.gateways == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "gateway management unavailable")
	}

	var body ActivateGatewayBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	gw, err := s.gateways.Activate(c.Request().Context(), body.ActivationCode)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, gatewayResponse(gw))
}

// listGatewaysHandler handles GET /api/v1/gateways?community_id=.
func (s *Server) listGatewaysHandler(c *echo.Context) error {
	if s.gateways == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "gateway management unavailable")
	}
	communityID := c.QueryParam("community_id")
	if communityID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "community_id is required")
	}

	gws, err := s.gateways.ListGateways(c.Request().Context(), communityID)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]*GatewayResponse, 0, len(gws))
	for _, gw := range gws {
		out = append(out, gatewayResponse(gw))
	}
	return c.JSON(http.StatusOK, out)
}

// deleteGatewayHandler handles DELETE /api/v1/gateways/:id.
func (s *Server) deleteGatewayHandler(c *echo.Context) error {
	if s.gateways == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "gateway management unavailable")
	}
	if err := requirePermission(c, "manage"); err != nil {
		return err
	}

	if err := s.gateways.DeleteGateway(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
