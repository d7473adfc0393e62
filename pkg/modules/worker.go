// Package modules contains the built-in interaction modules. Each module
// runs as a stream consumer worker on the command stream and posts its
// result on the response stream, exactly like an out-of-process module
// would over the HTTP boundary.
package modules

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/stream"
	"github.com/waddlebot/waddlebot-core/pkg/waddleerr"
)

// Handler implements one module's command processing.
type Handler interface {
	// Name is the module name commands are addressed to.
	Name() string
	// Handle processes one command. The returned response needs only
	// Success, ResponseAction, ResponseData, and ErrorMessage; the worker
	// fills in identity and timing.
	Handle(ctx context.Context, cmd models.ModuleCommand) (models.ModuleResponse, error)
}

// Worker consumes the command stream for one module. Every module joins
// its own consumer group, so each sees the full command stream and
// acknowledges commands addressed elsewhere.
type Worker struct {
	client   *stream.Client
	topics   stream.Topics
	handler  Handler
	consumer *stream.Consumer
}

// NewWorker creates a worker for handler. consumerName must be unique per
// process within the module's group.
func NewWorker(client *stream.Client, topics stream.Topics, consumerName string, maxRetries int, handler Handler) *Worker {
	w := &Worker{
		client:  client,
		topics:  topics,
		handler: handler,
	}
	group := "module:" + handler.Name()
	w.consumer = stream.NewConsumer(client, topics.Commands(), group, consumerName, maxRetries, w.process)
	return w
}

// Start begins consuming commands.
func (w *Worker) Start(ctx context.Context) error {
	if err := w.consumer.Start(ctx); err != nil {
		return fmt.Errorf("starting module %s: %w", w.handler.Name(), err)
	}
	slog.Info("Module worker started", "module", w.handler.Name())
	return nil
}

// Stop stops consuming and waits for the in-flight command.
func (w *Worker) Stop() {
	w.consumer.Stop()
	slog.Info("Module worker stopped", "module", w.handler.Name())
}

func (w *Worker) process(ctx context.Context, ev stream.Event) error {
	var cmd models.ModuleCommand
	if err := ev.Decode(&cmd); err != nil {
		return stream.NonRetryable(waddleerr.Wrap(waddleerr.KindValidation, "malformed module command", err))
	}
	if cmd.ModuleName != w.handler.Name() {
		// Addressed to another module's group.
		return nil
	}

	started := time.Now()
	resp, err := w.handler.Handle(ctx, cmd)
	if err != nil {
		slog.Warn("Module command failed",
			"module", w.handler.Name(), "session_id", cmd.Session.SessionID, "error", err)
		resp = models.ModuleResponse{Success: false, ErrorMessage: err.Error()}
	}

	resp.SessionID = cmd.Session.SessionID
	resp.ModuleName = w.handler.Name()
	resp.ProcessingTimeMS = time.Since(started).Milliseconds()

	if _, err := w.client.Publish(ctx, w.topics.Responses(), resp); err != nil {
		return waddleerr.Wrap(waddleerr.KindDependencyUnavailable, "publishing module response", err)
	}
	return nil
}
