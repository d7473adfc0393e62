// WaddleBot core — routes chat-platform events through the session state
// machine, runs the built-in interaction modules, and serves the HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/waddlebot/waddlebot-core/pkg/analytics"
	"github.com/waddlebot/waddlebot-core/pkg/api"
	"github.com/waddlebot/waddlebot-core/pkg/bus"
	"github.com/waddlebot/waddlebot-core/pkg/cache"
	"github.com/waddlebot/waddlebot-core/pkg/cleanup"
	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/database"
	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/modules"
	"github.com/waddlebot/waddlebot-core/pkg/router"
	"github.com/waddlebot/waddlebot-core/pkg/services"
	"github.com/waddlebot/waddlebot-core/pkg/stream"
	"github.com/waddlebot/waddlebot-core/pkg/translation"
	"github.com/waddlebot/waddlebot-core/pkg/workflow"
)

// Aggregation timeout budgets: per-module, then the whole collection.
const (
	moduleResponseTimeout = 30 * time.Second
	sessionGlobalTimeout  = 60 * time.Second

	gracefulShutdownTimeout = 30 * time.Second
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the consumer identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	envFile := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to the environment file")
	flag.Parse()

	// Load .env file before reading any configuration
	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	podID := resolvePodID()

	// 1. Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	slog.Info("Starting WaddleBot core",
		"module", cfg.ModuleName,
		"version", cfg.ModuleVersion,
		"port", cfg.Port,
		"pod_id", podID)

	ctx := context.Background()

	// 2. Initialize database
	dbClient, err := database.NewClient(ctx, cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(2)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Initialize Redis. The client backs both the L2 cache and the event
	// stream; with the stream disabled every publish is a local no-op.
	var rdb *redis.Client
	if cfg.Cache.URL != "" {
		opts, err := redis.ParseURL(cfg.Cache.URL)
		if err != nil {
			slog.Error("Invalid cache URL", "error", err)
			os.Exit(2)
		}
		rdb = redis.NewClient(opts)
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Error closing Redis client", "error", err)
			}
		}()

		if cfg.Stream.Enabled {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = rdb.Ping(pingCtx).Err()
			cancel()
			if err != nil {
				slog.Error("Failed to connect to Redis", "error", err)
				os.Exit(2)
			}
			slog.Info("Connected to Redis")
		}
	}

	streamClient := stream.NewClient(rdb, cfg.Stream)
	topics := stream.NewTopics(cfg.Stream.Prefix)

	// 4. Initialize domain services
	gatewayService := services.NewGatewayService(dbClient.Client, streamClient, topics)
	aliasService := services.NewAliasService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client)
	communityService := services.NewCommunityService(dbClient.Client)
	workflowValidator := workflow.NewValidator(cfg.Workflow)
	workflowService := services.NewWorkflowService(dbClient.Client, workflowValidator)
	scoreService := analytics.NewService(dbClient.Client, analytics.NewSessionActivitySource(dbClient.Client))
	slog.Info("Services initialized")

	retention := cleanup.NewService(cleanup.DefaultConfig(), sessionService, streamClient, topics)
	retention.Start(ctx)
	defer retention.Stop()

	// 5. Assemble the translation pipeline
	var providers []translation.Provider
	var verifier translation.LanguageVerifier
	var classifier translation.TokenClassifier
	if cfg.Translation.CommercialURL != "" {
		providers = append(providers, translation.NewCommercialProvider(
			cfg.Translation.CommercialURL, cfg.Translation.CommercialAPIKey, cfg.Translation.RequestTimeout))
	}
	if cfg.Translation.LightweightURL != "" {
		providers = append(providers, translation.NewLightweightProvider(
			cfg.Translation.LightweightURL, cfg.Translation.RequestTimeout))
	}
	if cfg.Translation.AIBackedURL != "" {
		ai := translation.NewAIBackedProvider(
			cfg.Translation.AIBackedURL, cfg.Translation.AIBackedAPIKey,
			getEnv("TRANSLATION_AI_MODEL", "default"), cfg.Translation.RequestTimeout)
		providers = append(providers, ai)
		verifier = ai
		classifier = ai
	}
	chain := translation.NewChain(providers...)

	preprocessor := translation.NewPreprocessor(
		translation.NewEmoteRegistry(), cfg.Translation.AIDecisionMode, classifier, rdb, cfg.Cache.KeyPrefix)

	translationStore := translation.NewStore(dbClient.Client)
	gcLoop := translation.NewGCLoop(translationStore)
	gcLoop.Start(ctx)
	defer gcLoop.Stop()

	translationCache := cache.NewTriTier(
		cache.NewL1Cache(cfg.Cache.L1MaxSize, cfg.Cache.L1TTL),
		rdb, cfg.Cache.KeyPrefix+":translation", cfg.Cache.L2TTL, translationStore)

	translator := translation.NewService(cfg.Translation,
		preprocessor, translation.NewEnsembleDetector(), verifier, chain, translationCache)
	slog.Info("Translation pipeline initialized", "providers", len(providers))

	// 6. Assemble the router
	registry := router.NewRegistry()
	registry.Register(router.Trigger{Kind: router.TriggerCommand, Pattern: "!help", Module: "help"})
	registry.Register(router.Trigger{Kind: router.TriggerCommand, Pattern: "!so", Module: "shoutout", MinRole: models.RoleMember})
	registry.Register(router.Trigger{Kind: router.TriggerCommand, Pattern: "!song", Module: "music", MinRole: models.RoleMember})

	policy := router.NewPolicy(communityService, communityService, rate.Limit(1), 5)
	aggregator := router.NewAggregator(moduleResponseTimeout, sessionGlobalTimeout)
	engine := workflow.NewEngine(workflow.NewWebhookExecutor(cfg.Webhook))
	processBus := bus.New()
	defer processBus.Close()

	rtr := router.New(router.Deps{
		Stream:       streamClient,
		Topics:       topics,
		Gateways:     router.NewCachedGatewayResolver(gatewayService, cfg.Cache.L1MaxSize, cfg.Cache.L1TTL),
		Aliases:      aliasService,
		Sessions:     sessionService,
		Communities:  communityService,
		Workflows:    workflowService,
		Translator:   translator,
		Policy:       policy,
		Registry:     registry,
		Aggregator:   aggregator,
		Engine:       engine,
		Bus:          processBus,
		ConsumerName: podID,
		MaxRetries:   cfg.Stream.MaxRetries,
	})

	// 7. Start the router and the built-in module workers
	var workers []*modules.Worker
	if cfg.Stream.Enabled {
		if err := rtr.Start(ctx); err != nil {
			slog.Error("Failed to start router", "error", err)
			os.Exit(3)
		}

		handlers := []modules.Handler{
			modules.NewHelp(registry),
			modules.NewShoutout(),
			modules.NewMusic(),
		}
		for _, h := range handlers {
			w := modules.NewWorker(streamClient, topics, podID, cfg.Stream.MaxRetries, h)
			if err := w.Start(ctx); err != nil {
				slog.Error("Failed to start module worker", "module", h.Name(), "error", err)
				os.Exit(3)
			}
			workers = append(workers, w)
		}
	} else {
		slog.Warn("Event stream disabled; router and module workers not started")
	}

	// 8. Create HTTP server
	auth := api.NewAuthenticator(cfg.JWT,
		api.NewAPIKeyRegistry(api.ParseAPIKeys(os.Getenv("API_KEYS"))))
	httpServer := api.NewServer(cfg, dbClient, streamClient, topics, registry, auth)
	httpServer.SetGatewayService(gatewayService)
	httpServer.SetAliasService(aliasService)
	httpServer.SetCommunityService(communityService)
	httpServer.SetWorkflowService(workflowService)
	httpServer.SetScoreService(scoreService)

	// 9. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("WaddleBot core started successfully",
		"pod_id", podID,
		"stream_enabled", cfg.Stream.Enabled)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: drain the router first so collecting sessions
	// settle, then the workers, then the HTTP server.
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, gracefulShutdownTimeout)
	defer shutdownCancel()

	routerDone := make(chan struct{})
	go func() {
		rtr.Stop()
		for _, w := range workers {
			w.Stop()
		}
		close(routerDone)
	}()

	select {
	case <-routerDone:
		slog.Info("Router and module workers stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded; pending events stay in the consumer groups")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
