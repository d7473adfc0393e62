package translation

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ProviderKind tags a provider variant in the fallback chain.
type ProviderKind string

const (
	ProviderCommercial  ProviderKind = "commercial"
	ProviderLightweight ProviderKind = "lightweight"
	ProviderAIBacked    ProviderKind = "ai_backed"
)

// Provider is the capability set every translation backend implements.
type Provider interface {
	Name() string
	Kind() ProviderKind
	DetectLanguage(ctx context.Context, text string) (Detection, error)
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	HealthCheck(ctx context.Context) error
	AvailableLanguages(ctx context.Context) ([]string, error)
}

// LanguageVerifier gives a second opinion on an ensemble detection in the
// mid-confidence band.
type LanguageVerifier interface {
	VerifyLanguage(ctx context.Context, text, candidate string) (Detection, error)
}

// ChainResult is the outcome of one fold over the provider chain.
type ChainResult struct {
	TranslatedText string
	Provider       string
}

// Chain tries providers in configured order, gating each behind a cached
// health check. Provider errors are recorded and the next provider is
// tried; the fold is deterministic.
type Chain struct {
	providers []Provider

	mu     sync.Mutex
	health map[string]healthState
	ttl    time.Duration
}

type healthState struct {
	healthy   bool
	checkedAt time.Time
}

// NewChain creates a chain over providers in fallback order.
func NewChain(providers ...Provider) *Chain {
	return &Chain{
		providers: providers,
		health:    make(map[string]healthState),
		ttl:       30 * time.Second,
	}
}

// Translate folds over the chain and returns the first successful
// translation. ok is false when every provider failed or was unhealthy.
func (c *Chain) Translate(ctx context.Context, text, sourceLang, targetLang string) (ChainResult, bool) {
	for _, p := range c.providers {
		if !c.healthy(ctx, p) {
			slog.Debug("Skipping unhealthy translation provider", "provider", p.Name())
			continue
		}

		translated, err := p.Translate(ctx, text, sourceLang, targetLang)
		if err != nil {
			slog.Warn("Translation provider failed, trying next",
				"provider", p.Name(), "error", err)
			c.markUnhealthy(p)
			continue
		}
		return ChainResult{TranslatedText: translated, Provider: p.Name()}, true
	}
	return ChainResult{}, false
}

// DetectLanguage asks the providers themselves for a detection, used when
// the ensemble detector has no signal. The first successful answer wins.
func (c *Chain) DetectLanguage(ctx context.Context, text string) (Detection, bool) {
	for _, p := range c.providers {
		if !c.healthy(ctx, p) {
			continue
		}
		det, err := p.DetectLanguage(ctx, text)
		if err != nil {
			slog.Warn("Provider language detection failed, trying next",
				"provider", p.Name(), "error", err)
			continue
		}
		if det.Lang != "" {
			return det, true
		}
	}
	return Detection{}, false
}

// healthy returns the cached health state, refreshing it after the TTL.
func (c *Chain) healthy(ctx context.Context, p Provider) bool {
	c.mu.Lock()
	state, ok := c.health[p.Name()]
	fresh := ok && time.Since(state.checkedAt) < c.ttl
	c.mu.Unlock()

	if fresh {
		return state.healthy
	}

	err := p.HealthCheck(ctx)

	c.mu.Lock()
	c.health[p.Name()] = healthState{healthy: err == nil, checkedAt: time.Now()}
	c.mu.Unlock()

	return err == nil
}

func (c *Chain) markUnhealthy(p Provider) {
	c.mu.Lock()
	c.health[p.Name()] = healthState{healthy: false, checkedAt: time.Now()}
	c.mu.Unlock()
}
