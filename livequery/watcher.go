package livequery

import (
	"context"
	"time"
)

// FetchFunc loads the full collection for a watcher's topic.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Watcher delivers a fresh snapshot of a collection whenever it changes.
//
// The subscription is registered before the initial fetch, so an update
// landing between fetch and subscribe cannot be missed. All fetches run on
// the watcher's own goroutine; because they are serialized, a slow earlier
// fetch can never overwrite a later one.
type Watcher[T any] struct {
	updates chan []T
	cancel  context.CancelFunc
	done    chan struct{}
}

// Watch subscribes to a topic and performs the initial fetch synchronously;
// the first snapshot is already buffered in Updates when Watch returns.
// Bursts of notifications are coalesced: a trailing debounce window collects
// the burst, then one refetch serves it.
func Watch[T any](ctx context.Context, n *Notifier, topic Topic, debounce time.Duration, fetch FetchFunc[T]) (*Watcher[T], error) {
	ch := n.Subscribe(topic)

	initial, err := fetch(ctx)
	if err != nil {
		n.Unsubscribe(topic, ch)
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher[T]{
		updates: make(chan []T, 1),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	w.deliver(initial)

	go w.run(ctx, n, topic, ch, debounce, fetch)
	return w, nil
}

// Updates yields complete snapshots: the initial state first, then exactly
// one per observed change (bursts collapse into one). The channel closes when
// the watcher stops.
func (w *Watcher[T]) Updates() <-chan []T {
	return w.updates
}

// Close tears the watcher down and releases its notifier channel.
func (w *Watcher[T]) Close() {
	w.cancel()
	<-w.done
}

func (w *Watcher[T]) run(ctx context.Context, n *Notifier, topic Topic, ch chan struct{}, debounce time.Duration, fetch FetchFunc[T]) {
	defer close(w.done)
	defer close(w.updates)
	defer n.Unsubscribe(topic, ch)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
		}

		// trailing-edge debounce: let the rest of the burst arrive, then
		// refetch once
		if debounce > 0 {
			timer := time.NewTimer(debounce)
		drain:
			for {
				select {
				case <-ctx.Done():
					timer.Stop()
					return
				case <-ch:
					// still bursting; the timer keeps its trailing edge
				case <-timer.C:
					break drain
				}
			}
		}

		snapshot, err := fetch(ctx)
		if err != nil {
			// keep the last good snapshot; the next notification retries
			continue
		}
		w.deliver(snapshot)
	}
}

// deliver replaces any undelivered snapshot with the newer one, so a slow
// consumer always reads current state.
func (w *Watcher[T]) deliver(snapshot []T) {
	for {
		select {
		case w.updates <- snapshot:
			return
		default:
			select {
			case <-w.updates:
			default:
			}
		}
	}
}
