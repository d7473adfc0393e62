package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/waddleerr"
)

// EventAcceptedResponse is returned by POST /api/v1/events.
type EventAcceptedResponse struct {
	Accepted  bool   `json:"accepted"`
	SessionID string `json:"session_id"`
}

// postEventHandler handles POST /api/v1/events: validate the envelope,
// allocate a session id, and hand the event to the inbound stream. The
// router picks it up asynchronously; the caller gets 202 with the session
// id to correlate on.
func (s *Server) postEventHandler(c *echo.Context) error {
	var envelope models.EventEnvelope
	if err := c.Bind(&envelope); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if !envelope.Platform.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown platform %q", envelope.Platform))
	}
	if !envelope.MessageType.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown message type %q", envelope.MessageType))
	}
	if envelope.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}
	if envelope.ChannelID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "channel_id is required")
	}

	if envelope.SessionID == "" {
		envelope.SessionID = uuid.New().String()
	}
	envelope.ReceivedAt = time.Now().UTC()

	if _, err := s.stream.Publish(c.Request().Context(), s.topics.Inbound(), envelope); err != nil {
		return waddleerr.Wrap(waddleerr.KindDependencyUnavailable, "event stream unavailable", err)
	}

	return c.JSON(http.StatusAccepted, &EventAcceptedResponse{
		Accepted:  true,
		SessionID: envelope.SessionID,
	})
}

// postResponseHandler handles POST /api/v1/responses: forward an
// out-of-process module's response onto the response stream for the
// aggregator.
func (s *Server) postResponseHandler(c *echo.Context) error {
	var resp models.ModuleResponse
	if err := c.Bind(&resp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if resp.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	if resp.ModuleName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "module_name is required")
	}

	if _, err := s.stream.Publish(c.Request().Context(), s.topics.Responses(), resp); err != nil {
		return waddleerr.Wrap(waddleerr.KindDependencyUnavailable, "event stream unavailable", err)
	}

	return c.JSON(http.StatusAccepted, map[string]any{"accepted": true})
}
