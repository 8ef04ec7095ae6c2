// broker/broker.go
package broker

import (
	"sync"

	"github.com/Sridevi2108/Auracare/internal/chatstate"
)

// Broker fans chat messages out to per-topic subscribers. Topics are
// session-scoped ("chat_<sessionID>") so a websocket feed only sees its own
// conversation.
type Broker struct {
	subscribers map[string][]chan chatstate.Message
	mu          sync.RWMutex
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[string][]chan chatstate.Message),
	}
}

func (b *Broker) Subscribe(topic string) <-chan chatstate.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan chatstate.Message, 8)
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	return ch
}

func (b *Broker) Unsubscribe(topic string, ch <-chan chatstate.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if chans, ok := b.subscribers[topic]; ok {
		for i, c := range chans {
			if c == ch {
				b.subscribers[topic] = append(chans[:i], chans[i+1:]...)
				close(c)
				break
			}
		}
	}
}

// Publish delivers msg to every subscriber of topic. Slow subscribers drop
// messages instead of blocking the publisher.
func (b *Broker) Publish(topic string, msg chatstate.Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subscribers[topic] {
		select {
		case ch <- msg:
		default:
		}
	}
}
