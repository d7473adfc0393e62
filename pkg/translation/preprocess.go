// Package translation implements the multi-tier translation pipeline:
// token-masking preprocessing, ensemble language detection with tiered AI
// verification, a provider fallback chain, and a tri-tier result cache.
package translation

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/models"
)

// TokenCategory classifies a preserved span.
type TokenCategory string

const (
	CategoryURL     TokenCategory = "url"
	CategoryEmail   TokenCategory = "email"
	CategoryMention TokenCategory = "mention"
	CategoryCommand TokenCategory = "command"
	CategoryEmote   TokenCategory = "emote"
)

// PreservedToken maps one placeholder back to the original span it stands
// for. Tokens live only for the duration of one translation call.
type PreservedToken struct {
	Placeholder string
	Original    string
	Category    TokenCategory
}

// compiledPattern holds a pre-compiled regex with the category it preserves.
// Patterns are applied in declaration order; an earlier category wins when
// spans overlap.
type compiledPattern struct {
	category TokenCategory
	regex    *regexp.Regexp
}

// Preservation patterns in classification order. URL before email so
// "http://a.b/c@d" is one URL, mention and command anchored on word starts.
var preservePatterns = []compiledPattern{
	{CategoryURL, regexp.MustCompile(`https?://[^\s]+`)},
	{CategoryEmail, regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)},
	{CategoryMention, regexp.MustCompile(`(^|\s)(@\w+)`)},
	{CategoryCommand, regexp.MustCompile(`(^|\s)(![A-Za-z]\w*)`)},
}

// identifierPattern matches words that resemble code identifiers: camelCase,
// snake_case, or letter/digit mixes. In uncertain AI mode these are the only
// candidates sent to the token classifier.
var identifierPattern = regexp.MustCompile(`^(?:[a-z]+[A-Z]\w*|\w+_\w+|[A-Za-z]+\d+\w*)$`)

// TokenClassifier decides whether uncertain tokens should be preserved.
// Implementations batch the whole slice in one call.
type TokenClassifier interface {
	ClassifyTokens(ctx context.Context, tokens []string) (map[string]bool, error)
}

// Preprocessor turns a raw message into a translator-safe string with
// placeholders in place of each non-translatable span, and restores the
// originals after translation.
type Preprocessor struct {
	emotes     *EmoteRegistry
	aiMode     config.AIDecisionMode
	classifier TokenClassifier

	// rdb caches AI token decisions in the shared tier, keyed by
	// normalized token, so one classifier call serves every process.
	rdb       *redis.Client
	keyPrefix string
}

// NewPreprocessor creates a preprocessor. classifier may be nil, which
// degrades aiMode to never; rdb may be nil, which skips decision caching.
func NewPreprocessor(emotes *EmoteRegistry, aiMode config.AIDecisionMode, classifier TokenClassifier, rdb *redis.Client, keyPrefix string) *Preprocessor {
	if classifier == nil {
		aiMode = config.AIDecisionNever
	}
	if emotes == nil {
		emotes = NewEmoteRegistry()
	}
	return &Preprocessor{
		emotes:     emotes,
		aiMode:     aiMode,
		classifier: classifier,
		rdb:        rdb,
		keyPrefix:  keyPrefix,
	}
}

// span is one matched region of the input pending placeholder substitution.
type span struct {
	start    int
	end      int
	category TokenCategory
}

// Preprocess masks every non-translatable span behind an ordinal placeholder
// and returns the processed text with the ordered token list.
func (p *Preprocessor) Preprocess(ctx context.Context, text string, platform models.Platform, channelID string) (string, []PreservedToken) {
	var spans []span

	for _, cp := range preservePatterns {
		for _, m := range cp.regex.FindAllStringSubmatchIndex(text, -1) {
			start, end := m[0], m[1]
			// Patterns with a leading-boundary group preserve only the
			// second group.
			if len(m) >= 6 && m[4] >= 0 {
				start, end = m[4], m[5]
			}
			if overlaps(spans, start, end) {
				continue
			}
			spans = append(spans, span{start: start, end: end, category: cp.category})
		}
	}

	spans = append(spans, p.emoteSpans(text, platform, channelID, spans)...)

	if p.aiMode != config.AIDecisionNever {
		spans = append(spans, p.aiSpans(ctx, text, spans)...)
	}

	if len(spans) == 0 {
		return text, nil
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var (
		sb     strings.Builder
		tokens []PreservedToken
		last   int
	)
	for i, s := range spans {
		placeholder := fmt.Sprintf("[[%d]]", i)
		sb.WriteString(text[last:s.start])
		sb.WriteString(placeholder)
		tokens = append(tokens, PreservedToken{
			Placeholder: placeholder,
			Original:    text[s.start:s.end],
			Category:    s.category,
		})
		last = s.end
	}
	sb.WriteString(text[last:])

	return sb.String(), tokens
}

// Postprocess substitutes placeholders back to their originals in ordinal
// order. With an identity translator the round trip is byte-exact.
func (p *Preprocessor) Postprocess(translated string, tokens []PreservedToken) string {
	for _, tok := range tokens {
		translated = strings.Replace(translated, tok.Placeholder, tok.Original, 1)
	}
	return translated
}

// emoteSpans finds platform emote words not already claimed by an earlier
// pattern.
func (p *Preprocessor) emoteSpans(text string, platform models.Platform, channelID string, claimed []span) []span {
	var spans []span
	for _, w := range wordSpans(text) {
		if overlaps(claimed, w.start, w.end) || overlaps(spans, w.start, w.end) {
			continue
		}
		if p.emotes.IsEmote(platform, channelID, text[w.start:w.end]) {
			spans = append(spans, span{start: w.start, end: w.end, category: CategoryEmote})
		}
	}
	return spans
}

// aiSpans asks the token classifier about identifier-like words that escaped
// pattern classification. Decisions are cached in the shared tier by
// normalized token. Classifier failures preserve nothing: translating an
// identifier is recoverable, dropping a word is not.
func (p *Preprocessor) aiSpans(ctx context.Context, text string, claimed []span) []span {
	type candidate struct {
		start int
		end   int
		word  string
	}

	var candidates []candidate
	for _, w := range wordSpans(text) {
		if overlaps(claimed, w.start, w.end) {
			continue
		}
		word := text[w.start:w.end]
		if p.aiMode == config.AIDecisionUncertain && !identifierPattern.MatchString(word) {
			continue
		}
		candidates = append(candidates, candidate{start: w.start, end: w.end, word: word})
	}
	if len(candidates) == 0 {
		return nil
	}

	decisions := make(map[string]bool)
	var unknown []string
	for _, c := range candidates {
		if d, ok := p.cachedDecision(ctx, c.word); ok {
			decisions[normalizeToken(c.word)] = d
		} else {
			unknown = append(unknown, c.word)
		}
	}

	if len(unknown) > 0 {
		fresh, err := p.classifier.ClassifyTokens(ctx, unknown)
		if err != nil {
			slog.Warn("AI token classification failed, tokens left translatable", "error", err)
		} else {
			for word, preserve := range fresh {
				decisions[normalizeToken(word)] = preserve
				p.storeDecision(ctx, word, preserve)
			}
		}
	}

	var spans []span
	for _, c := range candidates {
		if decisions[normalizeToken(c.word)] {
			spans = append(spans, span{start: c.start, end: c.end, category: CategoryEmote})
		}
	}
	return spans
}

func (p *Preprocessor) decisionKey(word string) string {
	return p.keyPrefix + ":token:" + normalizeToken(word)
}

func (p *Preprocessor) cachedDecision(ctx context.Context, word string) (bool, bool) {
	if p.rdb == nil {
		return false, false
	}
	val, err := p.rdb.Get(ctx, p.decisionKey(word)).Result()
	if err != nil {
		return false, false
	}
	return val == "1", true
}

func (p *Preprocessor) storeDecision(ctx context.Context, word string, preserve bool) {
	if p.rdb == nil {
		return
	}
	val := "0"
	if preserve {
		val = "1"
	}
	if err := p.rdb.Set(ctx, p.decisionKey(word), val, 24*time.Hour).Err(); err != nil {
		slog.Warn("Token decision cache write failed", "error", err)
	}
}

func normalizeToken(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// wordSpans returns the whitespace-delimited word boundaries of text.
func wordSpans(text string) []span {
	var spans []span
	start := -1
	for i, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if start >= 0 {
				spans = append(spans, span{start: start, end: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, span{start: start, end: len(text)})
	}
	return spans
}

func overlaps(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && end > s.start {
			return true
		}
	}
	return false
}
