package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/waddlebot/waddlebot-core/pkg/cache"
	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/models"
)

// Settings are the community-scoped translation switches the router
// resolves before calling the service.
type Settings struct {
	Enabled    bool
	TargetLang string
	// MinWords overrides the process default when > 0.
	MinWords int
}

// Result is one completed translation. A skipped call returns a nil Result
// and a nil error; the original text passes through unchanged.
type Result struct {
	TranslatedText  string  `json:"translated_text"`
	DetectedLang    string  `json:"detected_lang"`
	TargetLang      string  `json:"target_lang"`
	Confidence      float64 `json:"confidence"`
	Provider        string  `json:"provider"`
	Cached          bool    `json:"cached"`
	TokensPreserved int     `json:"tokens_preserved"`
	OriginalText    string  `json:"original_text"`
}

// Service runs the full translation call path: skip checks, preprocessing,
// ensemble detection with tiered AI verification, the tri-tier cache, and
// the provider fallback chain.
type Service struct {
	cfg      config.TranslationConfig
	pre      *Preprocessor
	detector *EnsembleDetector
	verifier LanguageVerifier
	chain    *Chain
	cache    *cache.TriTier
}

// NewService assembles the translation pipeline. verifier may be nil, which
// leaves mid-confidence detections unverified.
func NewService(cfg config.TranslationConfig, pre *Preprocessor, detector *EnsembleDetector, verifier LanguageVerifier, chain *Chain, tiers *cache.TriTier) *Service {
	return &Service{
		cfg:      cfg,
		pre:      pre,
		detector: detector,
		verifier: verifier,
		chain:    chain,
		cache:    tiers,
	}
}

// CacheKey is the SHA-256 hex of "{src}:{tgt}:{text}". Persisted rows key
// on it, so the algorithm cannot change without invalidating them.
func CacheKey(sourceLang, targetLang, text string) string {
	sum := sha256.Sum256([]byte(sourceLang + ":" + targetLang + ":" + text))
	return hex.EncodeToString(sum[:])
}

// Translate runs the pipeline for one message. Skips (disabled, too short,
// same language, below confidence threshold, or all providers failing)
// return (nil, nil).
func (s *Service) Translate(ctx context.Context, text string, platform models.Platform, channelID string, set Settings) (*Result, error) {
	if !set.Enabled {
		return nil, nil
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}
	minWords := s.cfg.MinWords
	if set.MinWords > 0 {
		minWords = set.MinWords
	}
	if len(strings.Fields(trimmed)) < minWords {
		return nil, nil
	}

	targetLang := NormalizeLang(set.TargetLang)
	if targetLang == "" {
		targetLang = "en"
	}

	processed, tokens := s.pre.Preprocess(ctx, text, platform, channelID)

	det := s.detect(ctx, stripPlaceholders(processed, tokens))
	if det.Lang == "" || det.Confidence < s.cfg.ConfidenceThreshold {
		return nil, nil
	}
	if det.Lang == targetLang {
		return nil, nil
	}

	key := CacheKey(det.Lang, targetLang, text)

	var entry cacheEntry
	hit, tier, err := s.cache.Get(ctx, key, &entry)
	if err != nil {
		slog.Warn("Translation cache read failed", "error", err)
	}
	if hit {
		slog.Debug("Translation cache hit", "tier", tier.String(), "lang", det.Lang)
		return &Result{
			TranslatedText:  entry.TranslatedText,
			DetectedLang:    det.Lang,
			TargetLang:      targetLang,
			Confidence:      det.Confidence,
			Provider:        entry.Provider,
			Cached:          true,
			TokensPreserved: len(tokens),
			OriginalText:    text,
		}, nil
	}

	chainRes, ok := s.chain.Translate(ctx, processed, det.Lang, targetLang)
	if !ok {
		slog.Warn("All translation providers failed, passing original through",
			"lang", det.Lang, "target", targetLang)
		return nil, nil
	}

	translated := s.pre.Postprocess(chainRes.TranslatedText, tokens)

	entry = cacheEntry{
		SourceLang:     det.Lang,
		TargetLang:     targetLang,
		TranslatedText: translated,
		Provider:       chainRes.Provider,
		Confidence:     det.Confidence,
	}
	if err := s.cache.Set(ctx, key, entry); err != nil {
		slog.Warn("Translation cache write failed", "error", err)
	}

	return &Result{
		TranslatedText:  translated,
		DetectedLang:    det.Lang,
		TargetLang:      targetLang,
		Confidence:      det.Confidence,
		Provider:        chainRes.Provider,
		Cached:          false,
		TokensPreserved: len(tokens),
		OriginalText:    text,
	}, nil
}

// detect runs the ensemble and applies the tiered-confidence policy:
// accept at >=0.90, ask the verifier between 0.70 and 0.90, leave weaker
// guesses for the threshold check. An ensemble with no signal falls back
// to asking the providers themselves.
func (s *Service) detect(ctx context.Context, text string) Detection {
	det := s.detector.Detect(text)
	if det.Lang == "" {
		if fallback, ok := s.chain.DetectLanguage(ctx, text); ok {
			return fallback
		}
		return det
	}

	return s.applyVerification(ctx, text, det)
}

// applyVerification implements the confidence tiers: agreement promotes to
// 0.95, a more confident disagreement wins, a less confident one scales the
// ensemble answer by 0.9.
func (s *Service) applyVerification(ctx context.Context, text string, det Detection) Detection {
	if det.Confidence >= 0.90 || det.Confidence < 0.70 || s.verifier == nil {
		return det
	}

	verdict, err := s.verifier.VerifyLanguage(ctx, text, det.Lang)
	if err != nil {
		slog.Warn("Language verification failed, keeping ensemble answer", "error", err)
		return det
	}

	switch {
	case verdict.Lang == det.Lang:
		return Detection{Lang: det.Lang, Confidence: 0.95}
	case verdict.Confidence > det.Confidence:
		return verdict
	default:
		return Detection{Lang: det.Lang, Confidence: det.Confidence * 0.9}
	}
}

// stripPlaceholders removes placeholder lexemes before detection so they do
// not skew the character statistics.
func stripPlaceholders(processed string, tokens []PreservedToken) string {
	for _, tok := range tokens {
		processed = strings.Replace(processed, tok.Placeholder, "", 1)
	}
	return strings.Join(strings.Fields(processed), " ")
}

// String implements fmt.Stringer for logging.
func (r *Result) String() string {
	if r == nil {
		return "skipped"
	}
	return fmt.Sprintf("%s→%s via %s (cached=%t)", r.DetectedLang, r.TargetLang, r.Provider, r.Cached)
}
