// Package livequery keeps in-memory collections consistent with database
// state. Repositories publish a change event after every write; watchers
// react by refetching the full collection and delivering a fresh snapshot.
// Refetch-on-notify trades efficiency for correctness: no partial change
// events ever have to be merged into existing state.
package livequery

import (
	"strconv"
	"sync"
)

// Topic scopes a change stream to a table and an optional key, e.g. one
// restaurant's orders. An empty key is the table-wide stream.
type Topic struct {
	Table string
	Key   string
}

// OrdersTopic is the change stream for one restaurant's orders.
func OrdersTopic(restaurantID uint) Topic {
	return Topic{Table: "orders", Key: strconv.FormatUint(uint64(restaurantID), 10)}
}

// MenuTopic is the change stream for one restaurant's menu items.
func MenuTopic(restaurantID uint) Topic {
	return Topic{Table: "menu_items", Key: strconv.FormatUint(uint64(restaurantID), 10)}
}

// RequestsTopic is the table-wide stream of registration requests.
func RequestsTopic() Topic {
	return Topic{Table: "registration_requests"}
}

// RestaurantsTopic is the table-wide stream of restaurants.
func RestaurantsTopic() Topic {
	return Topic{Table: "restaurants"}
}

// Notifier is the in-process change bus. Events carry no payload; they are
// pure refetch triggers.
type Notifier struct {
	mu   sync.RWMutex
	subs map[Topic]map[chan struct{}]struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[Topic]map[chan struct{}]struct{})}
}

// Subscribe registers a channel for a topic. The channel has capacity 1 so a
// burst of events collapses into a single pending signal.
func (n *Notifier) Subscribe(t Topic) chan struct{} {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	if n.subs[t] == nil {
		n.subs[t] = make(map[chan struct{}]struct{})
	}
	n.subs[t][ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

// Unsubscribe releases a channel. Callers must unsubscribe on teardown so
// channels do not leak across screen navigations.
func (n *Notifier) Unsubscribe(t Topic, ch chan struct{}) {
	n.mu.Lock()
	if set, ok := n.subs[t]; ok {
		delete(set, ch)
		if len(set) == 0 {
			delete(n.subs, t)
		}
	}
	n.mu.Unlock()
}

// Notify signals every subscriber of the topic and of its table-wide variant.
// Sends never block: a subscriber that already has a pending signal needs no
// second one.
func (n *Notifier) Notify(t Topic) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	n.signal(t)
	if t.Key != "" {
		n.signal(Topic{Table: t.Table})
	}
}

func (n *Notifier) signal(t Topic) {
	for ch := range n.subs[t] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
