package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_DeliversPerTopic(t *testing.T) {
	hub := NewHub()

	chatCh, cancelChat := hub.Subscribe(ChatTopic("req-1"))
	defer cancelChat()
	matchCh, cancelMatch := hub.Subscribe(MatchTopic("req-1"))
	defer cancelMatch()

	hub.Publish(ChatTopic("req-1"), Event{Kind: EventInsert, Payload: "msg"})

	e := <-chatCh
	assert.Equal(t, EventInsert, e.Kind)
	assert.Equal(t, ChatTopic("req-1"), e.Topic)
	assert.Len(t, matchCh, 0)
}

func TestHub_EachSubscriberGetsOwnCopy(t *testing.T) {
	hub := NewHub()

	a, cancelA := hub.Subscribe(NotificationTopic(7))
	defer cancelA()
	b, cancelB := hub.Subscribe(NotificationTopic(7))
	defer cancelB()

	hub.Publish(NotificationTopic(7), Event{Kind: EventInsert})

	assert.Equal(t, EventInsert, (<-a).Kind)
	assert.Equal(t, EventInsert, (<-b).Kind)
}

func TestHub_CancelIsIdempotent(t *testing.T) {
	hub := NewHub()

	_, cancel := hub.Subscribe(ChatTopic("req-1"))
	assert.Equal(t, 1, hub.SubscriberCount(ChatTopic("req-1")))

	cancel()
	cancel()
	assert.Equal(t, 0, hub.SubscriberCount(ChatTopic("req-1")))

	// publishing to a topic with no subscribers is a no-op
	hub.Publish(ChatTopic("req-1"), Event{Kind: EventUpdate})
}

func TestHub_DropsWhenSubscriberFull(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(ChatTopic("req-1"))
	defer cancel()

	for i := 0; i < subscriberBuffer+10; i++ {
		hub.Publish(ChatTopic("req-1"), Event{Kind: EventInsert, Payload: i})
	}

	// the publisher never blocked; the buffer holds the first events and the
	// overflow was discarded
	assert.Len(t, ch, subscriberBuffer)
	first := <-ch
	assert.Equal(t, 0, first.Payload)
}
