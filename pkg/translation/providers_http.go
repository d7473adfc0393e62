package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/waddlebot/waddlebot-core/pkg/waddleerr"
)

// httpProvider holds what the concrete REST providers share: a base URL, an
// optional API key, and one timeout-bounded client.
type httpProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func newHTTPProvider(baseURL, apiKey string, timeout time.Duration) httpProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return httpProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// postJSON sends body to path and decodes the JSON response into out.
// Non-2xx statuses are classified for the retry policy of callers.
func (p httpProvider) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return waddleerr.Wrap(waddleerr.KindRetryableTransport, "calling "+path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		kind := waddleerr.KindNonRetryableTransport
		switch resp.StatusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests,
			http.StatusInternalServerError, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			kind = waddleerr.KindRetryableTransport
		}
		return waddleerr.New(kind, fmt.Sprintf("%s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(data))))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

func (p httpProvider) getHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return waddleerr.Wrap(waddleerr.KindDependencyUnavailable, "health check", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return waddleerr.New(waddleerr.KindDependencyUnavailable, fmt.Sprintf("health returned %d", resp.StatusCode))
	}
	return nil
}

// CommercialProvider is the paid translation API client, first in the
// fallback chain when configured.
type CommercialProvider struct {
	httpProvider
}

// NewCommercialProvider creates the commercial API client.
func NewCommercialProvider(baseURL, apiKey string, timeout time.Duration) *CommercialProvider {
	return &CommercialProvider{newHTTPProvider(baseURL, apiKey, timeout)}
}

func (p *CommercialProvider) Name() string       { return "commercial" }
func (p *CommercialProvider) Kind() ProviderKind { return ProviderCommercial }

func (p *CommercialProvider) DetectLanguage(ctx context.Context, text string) (Detection, error) {
	var out struct {
		Language   string  `json:"language"`
		Confidence float64 `json:"confidence"`
	}
	err := p.postJSON(ctx, "/v1/detect", map[string]string{"text": text}, &out)
	if err != nil {
		return Detection{}, err
	}
	return Detection{Lang: NormalizeLang(out.Language), Confidence: out.Confidence}, nil
}

func (p *CommercialProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	var out struct {
		TranslatedText string `json:"translated_text"`
	}
	err := p.postJSON(ctx, "/v1/translate", map[string]string{
		"text":        text,
		"source_lang": sourceLang,
		"target_lang": targetLang,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.TranslatedText, nil
}

func (p *CommercialProvider) HealthCheck(ctx context.Context) error {
	return p.getHealth(ctx)
}

func (p *CommercialProvider) AvailableLanguages(ctx context.Context) ([]string, error) {
	var out struct {
		Languages []string `json:"languages"`
	}
	if err := p.postJSON(ctx, "/v1/languages", map[string]string{}, &out); err != nil {
		return nil, err
	}
	return out.Languages, nil
}

// LightweightProvider is the free self-hosted translator client
// (LibreTranslate-compatible API).
type LightweightProvider struct {
	httpProvider
}

// NewLightweightProvider creates the lightweight translator client.
func NewLightweightProvider(baseURL string, timeout time.Duration) *LightweightProvider {
	return &LightweightProvider{newHTTPProvider(baseURL, "", timeout)}
}

func (p *LightweightProvider) Name() string       { return "lightweight" }
func (p *LightweightProvider) Kind() ProviderKind { return ProviderLightweight }

func (p *LightweightProvider) DetectLanguage(ctx context.Context, text string) (Detection, error) {
	var out []struct {
		Language   string  `json:"language"`
		Confidence float64 `json:"confidence"`
	}
	if err := p.postJSON(ctx, "/detect", map[string]string{"q": text}, &out); err != nil {
		return Detection{}, err
	}
	if len(out) == 0 {
		return Detection{}, nil
	}
	// LibreTranslate reports confidence as a percentage.
	return Detection{Lang: NormalizeLang(out[0].Language), Confidence: out[0].Confidence / 100}, nil
}

func (p *LightweightProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	var out struct {
		TranslatedText string `json:"translatedText"`
	}
	err := p.postJSON(ctx, "/translate", map[string]string{
		"q":      text,
		"source": sourceLang,
		"target": targetLang,
		"format": "text",
	}, &out)
	if err != nil {
		return "", err
	}
	return out.TranslatedText, nil
}

func (p *LightweightProvider) HealthCheck(ctx context.Context) error {
	return p.getHealth(ctx)
}

func (p *LightweightProvider) AvailableLanguages(ctx context.Context) ([]string, error) {
	var out []struct {
		Code string `json:"code"`
	}
	if err := p.postJSON(ctx, "/languages", map[string]string{}, &out); err != nil {
		return nil, err
	}
	langs := make([]string, 0, len(out))
	for _, l := range out {
		langs = append(langs, l.Code)
	}
	return langs, nil
}

// AIBackedProvider translates through a chat-completion endpoint. It also
// serves as the language verifier for mid-confidence detections and the
// token classifier for uncertain-mode preprocessing.
type AIBackedProvider struct {
	httpProvider
	model string
}

// NewAIBackedProvider creates the AI translator client.
func NewAIBackedProvider(baseURL, apiKey, model string, timeout time.Duration) *AIBackedProvider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &AIBackedProvider{
		httpProvider: newHTTPProvider(baseURL, apiKey, timeout),
		model:        model,
	}
}

func (p *AIBackedProvider) Name() string       { return "ai_backed" }
func (p *AIBackedProvider) Kind() ProviderKind { return ProviderAIBacked }

// complete sends one chat completion and returns the first message content.
func (p *AIBackedProvider) complete(ctx context.Context, system, user string) (string, error) {
	body := map[string]any{
		"model": p.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": 0,
	}
	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := p.postJSON(ctx, "/v1/chat/completions", body, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", waddleerr.New(waddleerr.KindInternal, "completion returned no choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func (p *AIBackedProvider) DetectLanguage(ctx context.Context, text string) (Detection, error) {
	content, err := p.complete(ctx,
		`Identify the language of the user's message. Respond with JSON: {"lang": "<iso-639-1>", "confidence": <0..1>}.`,
		text)
	if err != nil {
		return Detection{}, err
	}
	var out struct {
		Lang       string  `json:"lang"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return Detection{}, fmt.Errorf("unparseable detection %q: %w", content, err)
	}
	return Detection{Lang: NormalizeLang(out.Lang), Confidence: out.Confidence}, nil
}

func (p *AIBackedProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	system := fmt.Sprintf(
		"Translate the user's message from %s to %s. Text inside double square brackets like [[0]] is a placeholder: copy it through unchanged. Respond with only the translation.",
		sourceLang, targetLang)
	return p.complete(ctx, system, text)
}

func (p *AIBackedProvider) HealthCheck(ctx context.Context) error {
	return p.getHealth(ctx)
}

func (p *AIBackedProvider) AvailableLanguages(ctx context.Context) ([]string, error) {
	// The model is not constrained to a fixed list; advertise the detector's
	// ensemble coverage.
	langs := make([]string, 0, len(stopwords))
	for lang := range stopwords {
		langs = append(langs, lang)
	}
	return langs, nil
}

// VerifyLanguage implements LanguageVerifier.
func (p *AIBackedProvider) VerifyLanguage(ctx context.Context, text, candidate string) (Detection, error) {
	system := fmt.Sprintf(
		`A detector guessed the language %q for the user's message. Respond with JSON: {"lang": "<iso-639-1>", "confidence": <0..1>} giving your own answer.`,
		candidate)
	content, err := p.complete(ctx, system, text)
	if err != nil {
		return Detection{}, err
	}
	var out struct {
		Lang       string  `json:"lang"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return Detection{}, fmt.Errorf("unparseable verification %q: %w", content, err)
	}
	return Detection{Lang: NormalizeLang(out.Lang), Confidence: out.Confidence}, nil
}

// ClassifyTokens implements TokenClassifier: it asks which tokens are
// identifiers, codes, or names that must not be translated.
func (p *AIBackedProvider) ClassifyTokens(ctx context.Context, tokens []string) (map[string]bool, error) {
	payload, err := json.Marshal(tokens)
	if err != nil {
		return nil, err
	}
	content, err := p.complete(ctx,
		`For each token decide whether it is an identifier, code, emote, or proper name that must be preserved verbatim during translation. Respond with JSON: {"<token>": true|false, ...}.`,
		string(payload))
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool)
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("unparseable token classification %q: %w", content, err)
	}
	return out, nil
}
