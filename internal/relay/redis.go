package relay

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const busChannel = "devmatch:relay"

// envelope is the wire form of an event on the redis channel. Origin lets an
// instance skip events it published itself.
type envelope struct {
	Origin string `json:"origin"`
	Topic  string `json:"topic"`
	Event  Event  `json:"event"`
}

// Bus mirrors hub publishes onto a redis pub/sub channel so that every API
// instance fans out the same events to its local websocket subscribers.
type Bus struct {
	hub      *Hub
	rdb      *redis.Client
	instance string
}

func NewBus(hub *Hub, rdb *redis.Client) *Bus {
	return &Bus{
		hub:      hub,
		rdb:      rdb,
		instance: uuid.NewString(),
	}
}

// Publish delivers locally and broadcasts to the other instances. Redis
// failures are logged and ignored: local delivery already happened and
// remote clients fall back to re-fetching.
func (b *Bus) Publish(topic string, e Event) {
	b.hub.Publish(topic, e)

	env := envelope{Origin: b.instance, Topic: topic, Event: e}
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("relay: marshal event for topic %s: %v", topic, err)
		return
	}
	if err := b.rdb.Publish(context.Background(), busChannel, data).Err(); err != nil {
		log.Printf("relay: redis publish failed: %v", err)
	}
}

// Run consumes the redis channel until ctx is cancelled, feeding remote
// events into the local hub.
func (b *Bus) Run(ctx context.Context) {
	pubsub := b.rdb.Subscribe(ctx, busChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				log.Printf("relay: bad envelope on %s: %v", busChannel, err)
				continue
			}
			if env.Origin == b.instance {
				continue
			}
			b.hub.Publish(env.Topic, env.Event)
		}
	}
}
