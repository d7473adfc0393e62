// Package api is the HTTP boundary: event ingestion, module response
// forwarding, command listing, management endpoints, and health.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/waddlebot/waddlebot-core/pkg/analytics"
	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/database"
	"github.com/waddlebot/waddlebot-core/pkg/router"
	"github.com/waddlebot/waddlebot-core/pkg/services"
	"github.com/waddlebot/waddlebot-core/pkg/stream"
)

// Server is the HTTP API server.
type Server struct {
	cfg      *config.Config
	echo     *echo.Echo
	http     *http.Server
	db       *database.Client
	stream   *stream.Client
	topics   stream.Topics
	registry *router.Registry
	auth     *Authenticator

	// Management services, optional: endpoints backed by an unset service
	// answer 503.
	gateways    *services.GatewayService
	aliases     *services.AliasService
	communities *services.CommunityService
	workflows   *services.WorkflowService
	scores      *analytics.Service
}

// NewServer creates the API server and registers its routes.
func NewServer(cfg *config.Config, db *database.Client, streamClient *stream.Client, topics stream.Topics, registry *router.Registry, auth *Authenticator) *Server {
	s := &Server{
		cfg:      cfg,
		db:       db,
		stream:   streamClient,
		topics:   topics,
		registry: registry,
		auth:     auth,
	}
	s.echo = s.buildEcho()
	return s
}

// SetGatewayService wires the gateway management endpoints.
func (s *Server) SetGatewayService(svc *services.GatewayService) { s.gateways = svc }

// SetAliasService wires the alias management endpoints.
func (s *Server) SetAliasService(svc *services.AliasService) { s.aliases = svc }

// SetCommunityService wires the community management endpoints.
func (s *Server) SetCommunityService(svc *services.CommunityService) { s.communities = svc }

// SetWorkflowService wires the workflow management endpoints.
func (s *Server) SetWorkflowService(svc *services.WorkflowService) { s.workflows = svc }

// SetScoreService wires the bot score endpoint.
func (s *Server) SetScoreService(svc *analytics.Service) { s.scores = svc }

func (s *Server) buildEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = httpErrorHandler

	// Order matters: recover first so panics become 500s, then request
	// logging, then headers, then auth on the API group.
	e.Use(recoverMiddleware())
	e.Use(requestLogger())
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)

	api := e.Group("/api/v1", s.auth.Middleware())
	api.POST("/events", s.postEventHandler)
	api.POST("/responses", s.postResponseHandler)
	api.GET("/commands", s.listCommandsHandler)

	api.POST("/communities", s.createCommunityHandler)
	api.GET("/communities/:id/score", s.getScoreHandler)

	api.POST("/gateways", s.createGatewayHandler)
	api.POST("/gateways/activate", s.activateGatewayHandler)
	api.GET("/gateways", s.listGatewaysHandler)
	api.DELETE("/gateways/:id", s.deleteGatewayHandler)

	api.GET("/entities/:entity/aliases", s.listAliasesHandler)
	api.POST("/entities/:entity/aliases", s.createAliasHandler)
	api.DELETE("/entities/:entity/aliases/:alias", s.removeAliasHandler)

	api.POST("/workflows", s.createWorkflowHandler)
	api.PUT("/workflows/:id", s.updateWorkflowHandler)
	api.POST("/workflows/:id/active", s.setWorkflowActiveHandler)

	return e
}

// Handler exposes the routed handler, for tests.
func (s *Server) Handler() http.Handler { return s.echo }

// Start serves HTTP on addr and blocks until shutdown or failure.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops the HTTP server, letting in-flight requests finish.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
