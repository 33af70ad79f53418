package docstore

import (
	"context"
	"log/slog"
	"sync"
)

// snapshotLoader produces the current ordered contents of a collection.
type snapshotLoader func(ctx context.Context, collection, orderField string) (Snapshot, error)

// subscriber is one live listener. Snapshots are delivered through a
// buffer-of-one channel: pushing a new snapshot displaces an undelivered one,
// so a slow listener always sees the latest state.
type subscriber struct {
	collection string
	orderField string
	ch         chan Snapshot
	done       chan struct{}
	closeOnce  sync.Once
}

func (sub *subscriber) push(snap Snapshot) {
	for {
		select {
		case sub.ch <- snap:
			return
		case <-sub.done:
			return
		default:
		}
		// Channel full: displace the stale snapshot.
		select {
		case <-sub.ch:
		default:
		}
	}
}

func (sub *subscriber) close() {
	sub.closeOnce.Do(func() { close(sub.done) })
}

// hub fans mutation notifications out to collection subscribers. Each
// subscriber runs its own delivery goroutine, so a blocked callback never
// stalls a mutation or another listener.
type hub struct {
	mu   sync.Mutex
	subs map[string]map[*subscriber]struct{}
	load snapshotLoader
}

func newHub(load snapshotLoader) *hub {
	return &hub{
		subs: make(map[string]map[*subscriber]struct{}),
		load: load,
	}
}

// subscribe registers fn on a collection, delivers the current snapshot, and
// returns a cancel func. Cancelling stops the delivery goroutine; it must be
// called on teardown or the listener leaks.
func (h *hub) subscribe(ctx context.Context, collection, orderField string, fn func(Snapshot)) (func(), error) {
	snap, err := h.load(ctx, collection, orderField)
	if err != nil {
		return nil, err
	}

	sub := &subscriber{
		collection: collection,
		orderField: orderField,
		ch:         make(chan Snapshot, 1),
		done:       make(chan struct{}),
	}

	h.mu.Lock()
	if h.subs[collection] == nil {
		h.subs[collection] = make(map[*subscriber]struct{})
	}
	h.subs[collection][sub] = struct{}{}
	h.mu.Unlock()

	go func() {
		for {
			select {
			case snap := <-sub.ch:
				fn(snap)
			case <-sub.done:
				return
			}
		}
	}()

	sub.push(snap)

	cancel := func() {
		h.mu.Lock()
		delete(h.subs[collection], sub)
		h.mu.Unlock()
		sub.close()
	}
	return cancel, nil
}

// notify reloads the collection once per distinct order field and pushes the
// snapshot to every listener. Called after each mutation.
func (h *hub) notify(collection string) {
	h.mu.Lock()
	targets := make([]*subscriber, 0, len(h.subs[collection]))
	for sub := range h.subs[collection] {
		targets = append(targets, sub)
	}
	h.mu.Unlock()

	if len(targets) == 0 {
		return
	}

	snapshots := make(map[string]Snapshot)
	for _, sub := range targets {
		snap, ok := snapshots[sub.orderField]
		if !ok {
			loaded, err := h.load(context.Background(), collection, sub.orderField)
			if err != nil {
				slog.Error("docstore_notify_failed", "collection", collection, "error", err)
				continue
			}
			snap = loaded
			snapshots[sub.orderField] = snap
		}
		sub.push(snap)
	}
}
