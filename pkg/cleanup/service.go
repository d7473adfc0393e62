// Package cleanup provides data retention services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/stream"
)

// SessionPurger deletes terminal session records older than a cutoff.
// SessionService satisfies it.
type SessionPurger interface {
	PurgeBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// Config sets the retention windows and the sweep cadence.
type Config struct {
	// SessionRetention bounds how long terminal session records are kept.
	SessionRetention time.Duration
	// DLQRetention bounds how long dead-lettered events are kept.
	DLQRetention time.Duration
	Interval     time.Duration
}

// DefaultConfig keeps sessions 30 days and dead letters 7.
func DefaultConfig() Config {
	return Config{
		SessionRetention: 30 * 24 * time.Hour,
		DLQRetention:     7 * 24 * time.Hour,
		Interval:         time.Hour,
	}
}

// Service periodically enforces retention policies:
//   - Deletes terminal session records past the retention window
//   - Trims dead-letter streams past theirs
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	cfg      Config
	sessions SessionPurger
	stream   *stream.Client
	topics   stream.Topics

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg Config, sessions SessionPurger, sc *stream.Client, topics stream.Topics) *Service {
	return &Service{
		cfg:      cfg,
		sessions: sessions,
		stream:   sc,
		topics:   topics,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"session_retention", s.cfg.SessionRetention,
		"dlq_retention", s.cfg.DLQRetention,
		"interval", s.cfg.Interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	s.purgeSessions(ctx)
	s.trimDeadLetters(ctx)
}

func (s *Service) purgeSessions(ctx context.Context) {
	count, err := s.sessions.PurgeBefore(ctx, time.Now().Add(-s.cfg.SessionRetention))
	if err != nil {
		slog.Error("Retention: session purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old session records", "count", count)
	}
}

func (s *Service) trimDeadLetters(ctx context.Context) {
	cutoff := time.Now().Add(-s.cfg.DLQRetention)

	streams := []string{s.topics.Inbound(), s.topics.Commands(), s.topics.Responses()}
	for _, p := range models.Platforms() {
		streams = append(streams, s.topics.Actions(p))
	}

	var total int64
	for _, name := range streams {
		n, err := s.stream.TrimBefore(ctx, s.stream.DLQ(name), cutoff)
		if err != nil {
			slog.Error("Retention: DLQ trim failed", "stream", name, "error", err)
			continue
		}
		total += n
	}
	if total > 0 {
		slog.Info("Retention: trimmed dead-letter streams", "count", total)
	}
}
