package relay

import (
	"fmt"
	"sync"
)

type EventKind string

const (
	EventInsert EventKind = "INSERT"
	EventUpdate EventKind = "UPDATE"
)

// Event delivers the full changed row to subscribers.
type Event struct {
	Kind    EventKind   `json:"type"`
	Topic   string      `json:"topic"`
	Payload interface{} `json:"payload"`
}

// Topic helpers. Consumers subscribe by entity type and a scoping filter.
func NotificationTopic(userID uint) string {
	return fmt.Sprintf("notifications:user:%d", userID)
}

func ChatTopic(requestID string) string {
	return "chat:request:" + requestID
}

func MatchTopic(requestID string) string {
	return "matches:request:" + requestID
}

// Publisher is what services publish change events through.
type Publisher interface {
	Publish(topic string, e Event)
}

// subscriber channels are buffered; a publish to a full channel is dropped
// rather than blocking the writer. The realtime channel is a latency
// optimization; clients re-fetch on demand.
const subscriberBuffer = 64

type subscriber struct {
	ch   chan Event
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.ch) })
}

// Hub is an in-process topic-keyed subscription registry. Every subscriber on
// a topic receives its own copy of each event; there is no dedup across
// subscriptions.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[*subscriber]struct{}),
	}
}

// Subscribe registers a listener on topic. The returned cancel func is
// idempotent and closes the channel.
func (h *Hub) Subscribe(topic string) (<-chan Event, func()) {
	s := &subscriber{ch: make(chan Event, subscriberBuffer)}

	h.mu.Lock()
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[*subscriber]struct{})
	}
	h.subs[topic][s] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[topic]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(h.subs, topic)
			}
		}
		h.mu.Unlock()
		s.close()
	}

	return s.ch, cancel
}

// Publish fans the event out to every subscriber on the topic without
// blocking; slow subscribers miss events instead of stalling publishers.
func (h *Hub) Publish(topic string, e Event) {
	e.Topic = topic

	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.subs[topic] {
		select {
		case s.ch <- e:
		default:
		}
	}
}

// SubscriberCount reports the current number of listeners on a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[topic])
}
