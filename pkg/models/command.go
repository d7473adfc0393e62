package models

import "time"

// ModuleCommand is published on events:commands, one per module matched by
// the dispatcher. The module acts on Message and posts a ModuleResponse.
type ModuleCommand struct {
	Session    SessionContext `json:"session"`
	ModuleName string         `json:"module_name"`
	Message    string         `json:"message"`
	Args       []string       `json:"args,omitempty"`
	EventType  MessageType    `json:"event_type"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	IssuedAt   time.Time      `json:"issued_at"`
}

// ModuleResponse is posted by a module on events:responses (or through
// POST /api/v1/responses, which forwards to the stream).
type ModuleResponse struct {
	SessionID        string         `json:"session_id"`
	ModuleName       string         `json:"module_name"`
	Success          bool           `json:"success"`
	ResponseAction   string         `json:"response_action,omitempty"`
	ResponseData     map[string]any `json:"response_data,omitempty"`
	ErrorMessage     string         `json:"error_message,omitempty"`
	ProcessingTimeMS int64          `json:"processing_time_ms"`
}

// ActionType classifies an outbound platform action.
type ActionType string

const (
	ActionChatMessage ActionType = "chat_message"
	ActionReply       ActionType = "reply"
	ActionWhisper     ActionType = "whisper"
	ActionMediaEvent  ActionType = "media_event"
)

// Action is published on events:actions:<platform> for the platform push
// module. Every action carries the originating session id.
type Action struct {
	SessionID  string         `json:"session_id"`
	ModuleName string         `json:"module_name"`
	Platform   Platform       `json:"platform"`
	ChannelID  string         `json:"channel_id"`
	ServerID   string         `json:"server_id,omitempty"`
	Type       ActionType     `json:"type"`
	Text       string         `json:"text,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	EmittedAt  time.Time      `json:"emitted_at"`
}
