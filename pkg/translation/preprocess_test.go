package translation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/models"
)

func newTestPreprocessor(emotes *EmoteRegistry) *Preprocessor {
	return NewPreprocessor(emotes, config.AIDecisionNever, nil, nil, "test")
}

func TestPreprocessMasksNonTranslatableSpans(t *testing.T) {
	p := newTestPreprocessor(nil)

	processed, tokens := p.Preprocess(context.Background(),
		"@alice hola mundo !help http://x.y", models.PlatformTwitch, "c7")

	require.Len(t, tokens, 3)
	assert.Equal(t, "[[0]] hola mundo [[1]] [[2]]", processed)
	assert.Equal(t, "@alice", tokens[0].Original)
	assert.Equal(t, CategoryMention, tokens[0].Category)
	assert.Equal(t, "!help", tokens[1].Original)
	assert.Equal(t, CategoryCommand, tokens[1].Category)
	assert.Equal(t, "http://x.y", tokens[2].Original)
	assert.Equal(t, CategoryURL, tokens[2].Category)
}

func TestPreprocessClassificationOrder(t *testing.T) {
	p := newTestPreprocessor(nil)

	t.Run("url wins over embedded email", func(t *testing.T) {
		_, tokens := p.Preprocess(context.Background(),
			"see https://x.y/user@host.com ok", models.PlatformDiscord, "")
		require.Len(t, tokens, 1)
		assert.Equal(t, CategoryURL, tokens[0].Category)
	})

	t.Run("email preserved on its own", func(t *testing.T) {
		_, tokens := p.Preprocess(context.Background(),
			"contact admin@example.com please", models.PlatformDiscord, "")
		require.Len(t, tokens, 1)
		assert.Equal(t, CategoryEmail, tokens[0].Category)
		assert.Equal(t, "admin@example.com", tokens[0].Original)
	})
}

func TestPreprocessEmotes(t *testing.T) {
	emotes := NewEmoteRegistry()
	emotes.AddGlobal(models.PlatformTwitch, "Kappa")
	emotes.AddChannel(models.PlatformTwitch, "c7", "waddleHi")
	p := newTestPreprocessor(emotes)

	t.Run("global and channel emotes preserved", func(t *testing.T) {
		_, tokens := p.Preprocess(context.Background(),
			"Kappa hola waddleHi", models.PlatformTwitch, "c7")
		require.Len(t, tokens, 2)
		assert.Equal(t, CategoryEmote, tokens[0].Category)
		assert.Equal(t, "Kappa", tokens[0].Original)
		assert.Equal(t, "waddleHi", tokens[1].Original)
	})

	t.Run("channel emote invisible from other channel", func(t *testing.T) {
		_, tokens := p.Preprocess(context.Background(),
			"waddleHi hola", models.PlatformTwitch, "other")
		assert.Empty(t, tokens)
	})

	t.Run("emotes are per platform", func(t *testing.T) {
		_, tokens := p.Preprocess(context.Background(),
			"Kappa hola", models.PlatformDiscord, "")
		assert.Empty(t, tokens)
	})
}

func TestPostprocessRoundTrip(t *testing.T) {
	emotes := NewEmoteRegistry()
	emotes.AddGlobal(models.PlatformTwitch, "Kappa")
	p := newTestPreprocessor(emotes)

	inputs := []string{
		"@alice hola mundo !help http://x.y",
		"plain text with no tokens at all",
		"!cmd leading and trailing @user",
		"Kappa mixed with admin@example.com and https://a.b/c?d=e",
		"",
	}
	for _, text := range inputs {
		processed, tokens := p.Preprocess(context.Background(), text, models.PlatformTwitch, "c7")
		// Identity translator: postprocess must restore the input exactly.
		assert.Equal(t, text, p.Postprocess(processed, tokens), "input %q", text)
	}
}

// stubClassifier marks configured tokens for preservation.
type stubClassifier struct {
	preserve map[string]bool
	calls    [][]string
}

func (c *stubClassifier) ClassifyTokens(_ context.Context, tokens []string) (map[string]bool, error) {
	c.calls = append(c.calls, tokens)
	out := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		out[tok] = c.preserve[tok]
	}
	return out, nil
}

func TestPreprocessUncertainModeSendsOnlyIdentifierLikeTokens(t *testing.T) {
	classifier := &stubClassifier{preserve: map[string]bool{"playerOne99": true}}
	p := NewPreprocessor(nil, config.AIDecisionUncertain, classifier, nil, "test")

	processed, tokens := p.Preprocess(context.Background(),
		"gg playerOne99 nice game", models.PlatformKick, "")

	require.Len(t, classifier.calls, 1)
	assert.Equal(t, []string{"playerOne99"}, classifier.calls[0])
	require.Len(t, tokens, 1)
	assert.Equal(t, "playerOne99", tokens[0].Original)
	assert.Equal(t, "gg [[0]] nice game", processed)
}

func TestPreprocessNeverModeSkipsClassifier(t *testing.T) {
	classifier := &stubClassifier{preserve: map[string]bool{"playerOne99": true}}
	p := NewPreprocessor(nil, config.AIDecisionNever, classifier, nil, "test")

	_, tokens := p.Preprocess(context.Background(),
		"gg playerOne99 nice game", models.PlatformKick, "")

	assert.Empty(t, classifier.calls)
	assert.Empty(t, tokens)
}
