package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waddlebot/waddlebot-core/pkg/models"
)

func chatInput(message string) MatchInput {
	return MatchInput{MessageType: models.MessageTypeChat, Message: message}
}

func moduleNames(triggers []Trigger) []string {
	names := make([]string, len(triggers))
	for i, t := range triggers {
		names[i] = t.Module
	}
	return names
}

func TestCommandTriggerMatchesFirstToken(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Trigger{Kind: TriggerCommand, Pattern: "!So", Module: "shoutout"})

	assert.Equal(t, []string{"shoutout"}, moduleNames(reg.Match(chatInput("!so streamer42"))))
	assert.Equal(t, []string{"shoutout"}, moduleNames(reg.Match(chatInput("  !SO  "))))
	assert.Empty(t, reg.Match(chatInput("say !so midway")))
	assert.Empty(t, reg.Match(chatInput("!song")))

	// Commands never match non-chat events.
	assert.Empty(t, reg.Match(MatchInput{MessageType: models.MessageTypeEvent, Message: "!so x"}))
}

func TestKeywordTriggerTrimsPunctuation(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Trigger{Kind: TriggerKeyword, Keywords: []string{"giveaway", "raffle"}, Module: "promo"})

	assert.Equal(t, []string{"promo"}, moduleNames(reg.Match(chatInput("when is the GIVEAWAY?"))))
	assert.Equal(t, []string{"promo"}, moduleNames(reg.Match(chatInput("raffle!"))))
	assert.Empty(t, reg.Match(chatInput("giveaways are fun")))
}

func TestQuestionTriggerGatedBySetting(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Trigger{Kind: TriggerQuestion, Module: "qa"})

	in := chatInput("what game is this?")
	assert.Empty(t, reg.Match(in))

	in.QuestionsEnabled = true
	assert.Equal(t, []string{"qa"}, moduleNames(reg.Match(in)))

	assert.Empty(t, reg.Match(MatchInput{
		MessageType: models.MessageTypeChat, Message: "no question here", QuestionsEnabled: true,
	}))
}

func TestEventTriggerMatchesType(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Trigger{Kind: TriggerEvent, EventType: models.MessageTypeEvent, Module: "greeter"})

	assert.Equal(t, []string{"greeter"},
		moduleNames(reg.Match(MatchInput{MessageType: models.MessageTypeEvent, Message: "member_join"})))
	assert.Empty(t, reg.Match(chatInput("member_join")))
}

func TestWildcardFiresOnlyWhenNothingSpecificMatched(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Trigger{Kind: TriggerCommand, Pattern: "!song", Module: "music"})
	reg.Register(Trigger{Kind: TriggerWildcard, Module: "logger"})

	assert.Equal(t, []string{"music"}, moduleNames(reg.Match(chatInput("!song next"))))
	assert.Equal(t, []string{"logger"}, moduleNames(reg.Match(chatInput("hello chat"))))
}

func TestMatchOrdersByPriorityThenRegistration(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Trigger{Kind: TriggerKeyword, Keywords: []string{"song"}, Module: "first", Priority: 0})
	reg.Register(Trigger{Kind: TriggerKeyword, Keywords: []string{"song"}, Module: "urgent", Priority: 10})
	reg.Register(Trigger{Kind: TriggerKeyword, Keywords: []string{"song"}, Module: "second", Priority: 0})

	got := moduleNames(reg.Match(chatInput("play a song")))
	assert.Equal(t, []string{"urgent", "first", "second"}, got)
}

func TestMatchDedupesPerModule(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Trigger{Kind: TriggerCommand, Pattern: "!quote", Module: "quotes", Priority: 5})
	reg.Register(Trigger{Kind: TriggerKeyword, Keywords: []string{"quote"}, Module: "quotes", Priority: 1})

	got := reg.Match(chatInput("!quote"))
	assert.Len(t, got, 1)
	assert.Equal(t, TriggerCommand, got[0].Kind)
}

func TestCommandsListedSortedByPattern(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Trigger{Kind: TriggerCommand, Pattern: "!song", Module: "music"})
	reg.Register(Trigger{Kind: TriggerCommand, Pattern: "!help", Module: "help"})
	reg.Register(Trigger{Kind: TriggerKeyword, Keywords: []string{"hi"}, Module: "greeter"})

	cmds := reg.Commands()
	assert.Len(t, cmds, 2)
	assert.Equal(t, "!help", cmds[0].Pattern)
	assert.Equal(t, "!song", cmds[1].Pattern)
}
