// Package stream implements the event stream pipeline on Redis Streams:
// publish, consumer groups with acks, retry counting, and dead-letter queues.
package stream

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stream entry field names. Every entry carries exactly these three fields.
const (
	fieldData       = "data"
	fieldTimestamp  = "timestamp"
	fieldRetryCount = "retry_count"
)

// DLQ entry field names, alongside the original payload copy.
const (
	fieldOriginalStream = "original_stream"
	fieldOriginalID     = "original_msg_id"
	fieldFailureReason  = "failure_reason"
	fieldFailedAt       = "failed_at"
)

// Event is one consumed stream entry.
type Event struct {
	ID         string
	Stream     string
	Data       json.RawMessage
	Timestamp  time.Time
	RetryCount int
}

// Decode unmarshals the event payload into v.
func (e Event) Decode(v any) error {
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decoding event %s: %w", e.ID, err)
	}
	return nil
}

// eventFromMessage converts a raw Redis stream message into an Event.
func eventFromMessage(stream string, msg redis.XMessage) (Event, error) {
	data, ok := msg.Values[fieldData].(string)
	if !ok {
		return Event{}, fmt.Errorf("event %s on %s: missing data field", msg.ID, stream)
	}

	ev := Event{
		ID:     msg.ID,
		Stream: stream,
		Data:   json.RawMessage(data),
	}

	if ts, ok := msg.Values[fieldTimestamp].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			ev.Timestamp = t
		}
	}
	if rc, ok := msg.Values[fieldRetryCount].(string); ok {
		if n, err := strconv.Atoi(rc); err == nil {
			ev.RetryCount = n
		}
	}
	return ev, nil
}

// entryValues builds the field map for a stream entry.
func entryValues(data []byte, retryCount int) map[string]any {
	return map[string]any{
		fieldData:       string(data),
		fieldTimestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		fieldRetryCount: strconv.Itoa(retryCount),
	}
}

// PendingEntry describes one unacknowledged event in a consumer group.
type PendingEntry struct {
	ID            string        `json:"id"`
	Consumer      string        `json:"consumer"`
	Idle          time.Duration `json:"idle_ms"`
	DeliveryCount int64         `json:"delivery_count"`
}

// StreamInfo summarizes a stream for operational inspection.
type StreamInfo struct {
	Length  int64  `json:"length"`
	Groups  int64  `json:"groups"`
	FirstID string `json:"first"`
	LastID  string `json:"last"`
}
