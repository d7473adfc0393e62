package translation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/pkg/cache"
	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/models"
)

// fakeProvider is a scriptable chain member.
type fakeProvider struct {
	name       string
	kind       ProviderKind
	healthy    bool
	translated string
	err        error
	calls      int
}

func (p *fakeProvider) Name() string       { return p.name }
func (p *fakeProvider) Kind() ProviderKind { return p.kind }

func (p *fakeProvider) DetectLanguage(context.Context, string) (Detection, error) {
	return Detection{}, errors.New("not implemented")
}

func (p *fakeProvider) Translate(_ context.Context, text, _, _ string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	if p.translated == "identity" {
		return text, nil
	}
	return p.translated, nil
}

func (p *fakeProvider) HealthCheck(context.Context) error {
	if !p.healthy {
		return errors.New("unhealthy")
	}
	return nil
}

func (p *fakeProvider) AvailableLanguages(context.Context) ([]string, error) {
	return []string{"en", "es"}, nil
}

func newTestService(t *testing.T, providers ...Provider) (*Service, *fakeProvider) {
	t.Helper()

	var primary *fakeProvider
	if len(providers) == 0 {
		primary = &fakeProvider{name: "commercial", kind: ProviderCommercial, healthy: true, translated: "hello world friends"}
		providers = []Provider{primary}
	} else if fp, ok := providers[0].(*fakeProvider); ok {
		primary = fp
	}

	cfg := config.TranslationConfig{MinWords: 5, ConfidenceThreshold: 0.70}
	tiers := cache.NewTriTier(cache.NewL1Cache(100, time.Hour), nil, "t", time.Hour, nil)
	svc := NewService(cfg, newTestPreprocessor(nil), NewEnsembleDetector(), nil, NewChain(providers...), tiers)
	return svc, primary
}

func TestTranslateSkipConditions(t *testing.T) {
	svc, primary := newTestService(t)
	ctx := context.Background()

	t.Run("disabled community", func(t *testing.T) {
		res, err := svc.Translate(ctx, "hola mundo amigos que tal el dia", models.PlatformTwitch, "c7",
			Settings{Enabled: false, TargetLang: "en"})
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("below min words", func(t *testing.T) {
		res, err := svc.Translate(ctx, "hola mundo", models.PlatformTwitch, "c7",
			Settings{Enabled: true, TargetLang: "en"})
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("empty text", func(t *testing.T) {
		res, err := svc.Translate(ctx, "   ", models.PlatformTwitch, "c7",
			Settings{Enabled: true, TargetLang: "en"})
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("same language short circuit", func(t *testing.T) {
		res, err := svc.Translate(ctx, "the quick brown fox jumps over the lazy dog", models.PlatformTwitch, "c7",
			Settings{Enabled: true, TargetLang: "en"})
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	assert.Zero(t, primary.calls, "no skip path may reach a provider")
}

func TestTranslateCachePath(t *testing.T) {
	svc, primary := newTestService(t)
	ctx := context.Background()
	settings := Settings{Enabled: true, TargetLang: "en", MinWords: 2}
	text := "hola mundo amigos que tal el dia de hoy"

	first, err := svc.Translate(ctx, text, models.PlatformTwitch, "c7", settings)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "hello world friends", first.TranslatedText)
	assert.Equal(t, "es", first.DetectedLang)
	assert.Equal(t, "en", first.TargetLang)
	assert.False(t, first.Cached)
	assert.Equal(t, "commercial", first.Provider)
	assert.Equal(t, 1, primary.calls)

	second, err := svc.Translate(ctx, text, models.PlatformTwitch, "c7", settings)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.TranslatedText, second.TranslatedText)
	assert.True(t, second.Cached)
	assert.Equal(t, 1, primary.calls, "cache hit must not call the provider")
}

func TestTranslateFallbackChain(t *testing.T) {
	ctx := context.Background()
	settings := Settings{Enabled: true, TargetLang: "en", MinWords: 2}
	text := "hola mundo amigos que tal el dia de hoy"

	t.Run("unhealthy provider skipped", func(t *testing.T) {
		down := &fakeProvider{name: "commercial", kind: ProviderCommercial, healthy: false}
		up := &fakeProvider{name: "lightweight", kind: ProviderLightweight, healthy: true, translated: "hello"}
		svc, _ := newTestService(t, down, up)

		res, err := svc.Translate(ctx, text, models.PlatformTwitch, "c7", settings)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "lightweight", res.Provider)
		assert.Zero(t, down.calls)
	})

	t.Run("failing provider falls through", func(t *testing.T) {
		failing := &fakeProvider{name: "commercial", kind: ProviderCommercial, healthy: true, err: errors.New("quota")}
		up := &fakeProvider{name: "ai_backed", kind: ProviderAIBacked, healthy: true, translated: "hello"}
		svc, _ := newTestService(t, failing, up)

		res, err := svc.Translate(ctx, text, models.PlatformTwitch, "c7", settings)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "ai_backed", res.Provider)
		assert.Equal(t, 1, failing.calls)
	})

	t.Run("all providers failing passes original through", func(t *testing.T) {
		a := &fakeProvider{name: "commercial", kind: ProviderCommercial, healthy: true, err: errors.New("quota")}
		b := &fakeProvider{name: "lightweight", kind: ProviderLightweight, healthy: false}
		svc, _ := newTestService(t, a, b)

		res, err := svc.Translate(ctx, text, models.PlatformTwitch, "c7", settings)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestTranslatePreservesTokens(t *testing.T) {
	identity := &fakeProvider{name: "commercial", kind: ProviderCommercial, healthy: true, translated: "identity"}
	svc, _ := newTestService(t, identity)

	res, err := svc.Translate(context.Background(),
		"@alice hola mundo amigos que tal !help http://x.y",
		models.PlatformTwitch, "c7", Settings{Enabled: true, TargetLang: "en", MinWords: 2})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.GreaterOrEqual(t, res.TokensPreserved, 3)
	assert.Contains(t, res.TranslatedText, "@alice")
	assert.Contains(t, res.TranslatedText, "!help")
	assert.Contains(t, res.TranslatedText, "http://x.y")
}

// fakeVerifier scripts the AI second opinion.
type fakeVerifier struct {
	det Detection
	err error
}

func (v *fakeVerifier) VerifyLanguage(context.Context, string, string) (Detection, error) {
	return v.det, v.err
}

func TestTieredVerification(t *testing.T) {
	cfg := config.TranslationConfig{MinWords: 5, ConfidenceThreshold: 0.70}
	mid := Detection{Lang: "es", Confidence: 0.80}

	run := func(verifier LanguageVerifier) Detection {
		tiers := cache.NewTriTier(cache.NewL1Cache(10, time.Hour), nil, "t", time.Hour, nil)
		svc := NewService(cfg, newTestPreprocessor(nil), NewEnsembleDetector(), verifier, NewChain(), tiers)
		// Bypass the ensemble: feed the tiers directly.
		return svc.applyVerification(context.Background(), "texto", mid)
	}

	t.Run("agreement promotes to 0.95", func(t *testing.T) {
		det := run(&fakeVerifier{det: Detection{Lang: "es", Confidence: 0.75}})
		assert.Equal(t, "es", det.Lang)
		assert.InDelta(t, 0.95, det.Confidence, 1e-9)
	})

	t.Run("more confident disagreement adopts the verifier", func(t *testing.T) {
		det := run(&fakeVerifier{det: Detection{Lang: "pt", Confidence: 0.92}})
		assert.Equal(t, "pt", det.Lang)
		assert.InDelta(t, 0.92, det.Confidence, 1e-9)
	})

	t.Run("less confident disagreement keeps scaled ensemble", func(t *testing.T) {
		det := run(&fakeVerifier{det: Detection{Lang: "pt", Confidence: 0.40}})
		assert.Equal(t, "es", det.Lang)
		assert.InDelta(t, 0.72, det.Confidence, 1e-9)
	})

	t.Run("verifier failure keeps ensemble answer", func(t *testing.T) {
		det := run(&fakeVerifier{err: errors.New("down")})
		assert.Equal(t, "es", det.Lang)
		assert.InDelta(t, 0.80, det.Confidence, 1e-9)
	})
}
