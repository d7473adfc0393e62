// Package models contains the wire and domain types shared by the router,
// the stream pipeline, and the HTTP boundary.
package models

import "time"

// Platform identifies a chat platform a gateway is attached to.
type Platform string

const (
	PlatformTwitch  Platform = "twitch"
	PlatformDiscord Platform = "discord"
	PlatformSlack   Platform = "slack"
	PlatformKick    Platform = "kick"
	PlatformYouTube Platform = "youtube"
)

// Platforms lists every known platform, for callers that fan out per
// platform (action streams, retention sweeps).
func Platforms() []Platform {
	return []Platform{PlatformTwitch, PlatformDiscord, PlatformSlack, PlatformKick, PlatformYouTube}
}

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	switch p {
	case PlatformTwitch, PlatformDiscord, PlatformSlack, PlatformKick, PlatformYouTube:
		return true
	}
	return false
}

// MessageType classifies an inbound event.
type MessageType string

const (
	MessageTypeChat        MessageType = "chatMessage"
	MessageTypeSlash       MessageType = "slashCommand"
	MessageTypeInteraction MessageType = "interaction"
	MessageTypeEvent       MessageType = "event"
	MessageTypeScheduled   MessageType = "scheduled"
)

// Valid reports whether m is a known message type.
func (m MessageType) Valid() bool {
	switch m {
	case MessageTypeChat, MessageTypeSlash, MessageTypeInteraction, MessageTypeEvent, MessageTypeScheduled:
		return true
	}
	return false
}

// EventEnvelope is the inbound event body accepted on POST /api/v1/events
// and carried on the events:inbound stream.
type EventEnvelope struct {
	SessionID   string         `json:"session_id,omitempty"`
	EntityID    string         `json:"entity_id,omitempty"`
	UserID      string         `json:"user_id"`
	Username    string         `json:"username"`
	DisplayName string         `json:"display_name,omitempty"`
	Message     string         `json:"message"`
	MessageType MessageType    `json:"message_type"`
	Platform    Platform       `json:"platform"`
	ChannelID   string         `json:"channel_id"`
	ServerID    string         `json:"server_id,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	ReceivedAt  time.Time      `json:"received_at,omitempty"`
}
