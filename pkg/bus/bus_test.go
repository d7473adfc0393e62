package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	ch1, unsub1 := b.Subscribe(TopicConfigChanged, 4)
	ch2, unsub2 := b.Subscribe(TopicConfigChanged, 4)
	defer unsub1()
	defer unsub2()

	b.Publish(TopicConfigChanged, ConfigChangedPayload{CommunityID: "c1"})

	for _, ch := range []<-chan Message{ch1, ch2} {
		select {
		case msg := <-ch:
			assert.Equal(t, TopicConfigChanged, msg.Topic)
			payload, ok := msg.Payload.(ConfigChangedPayload)
			require.True(t, ok)
			assert.Equal(t, "c1", payload.CommunityID)
		case <-time.After(time.Second):
			t.Fatal("message not delivered")
		}
	}
}

func TestPublishSkipsOtherTopics(t *testing.T) {
	b := New()
	defer b.Close()

	ch, unsub := b.Subscribe(TopicSessionCompleted, 1)
	defer unsub()

	b.Publish(TopicConfigChanged, ConfigChangedPayload{})

	select {
	case <-ch:
		t.Fatal("unexpected delivery across topics")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishNeverBlocksOnFullBuffer(t *testing.T) {
	b := New()
	defer b.Close()

	_, unsub := b.Subscribe(TopicConfigChanged, 1)
	defer unsub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			b.Publish(TopicConfigChanged, ConfigChangedPayload{})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a lagging subscriber")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := New()
	defer b.Close()

	ch, unsub := b.Subscribe(TopicConfigChanged, 1)
	unsub()

	_, open := <-ch
	assert.False(t, open)

	// Publishing after unsubscribe must not panic.
	b.Publish(TopicConfigChanged, ConfigChangedPayload{})
}

func TestCloseStopsDelivery(t *testing.T) {
	b := New()
	ch, _ := b.Subscribe(TopicSessionCompleted, 1)

	b.Close()
	_, open := <-ch
	assert.False(t, open)

	b.Publish(TopicSessionCompleted, SessionCompletedPayload{SessionID: "s1"})
	b.Close()
}
