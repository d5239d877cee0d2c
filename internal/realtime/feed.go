// Package realtime materializes a restaurant's live order and table state from
// the change feed. One Feed serves one restaurant: it loads a snapshot on
// start, applies row-level deltas as they arrive and resubscribes with a fresh
// snapshot after the broker connection drops.
package realtime

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/raamveerrr/pos/internal/domain"
)

const maxReconnectBackoff = 30 * time.Second

var feedEntities = []domain.ChangeEntity{domain.EntityOrders, domain.EntityTables}

type Feed struct {
	restaurantID string
	source       Source
	loader       SnapshotLoader
	notifier     Notifier

	mu      sync.RWMutex
	orders  []domain.Order
	tables  []domain.Table
	started bool
	closed  bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewFeed builds a feed for one restaurant. notifier may be nil when no
// notifications are wanted.
func NewFeed(restaurantID string, source Source, loader SnapshotLoader, notifier Notifier) *Feed {
	return &Feed{
		restaurantID: restaurantID,
		source:       source,
		loader:       loader,
		notifier:     notifier,
		done:         make(chan struct{}),
	}
}

// Start opens the subscription, loads the initial snapshot and begins applying
// deltas. The subscription opens before the snapshot loads so no change can
// fall between the two.
func (f *Feed) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return domain.ErrSyncClosed
	}
	if f.started {
		f.mu.Unlock()
		return nil
	}
	f.started = true
	f.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)

	stream, err := f.source.Open(ctx, f.restaurantID, feedEntities)
	if err != nil {
		cancel()
		return err
	}
	if err := f.refresh(ctx); err != nil {
		stream.Close()
		cancel()
		return err
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		stream.Close()
		cancel()
		return domain.ErrSyncClosed
	}
	f.cancel = cancel
	f.mu.Unlock()

	go f.run(ctx, stream)
	return nil
}

// Close tears the subscription down. Idempotent; the last applied state stays
// readable.
func (f *Feed) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	cancel := f.cancel
	started := f.started
	f.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if started && cancel != nil {
		<-f.done
	}
	return nil
}

// Orders returns a copy of the current order list, newest first.
func (f *Feed) Orders() []domain.Order {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]domain.Order, len(f.orders))
	copy(out, f.orders)
	return out
}

// Tables returns a copy of the current table list.
func (f *Feed) Tables() []domain.Table {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]domain.Table, len(f.tables))
	copy(out, f.tables)
	return out
}

func (f *Feed) run(ctx context.Context, stream Stream) {
	defer close(f.done)

	backoff := time.Second
	for {
		f.consume(ctx, stream)
		stream.Close()

		if ctx.Err() != nil {
			return
		}

		// The broker dropped the binding. Reopen and refetch so nothing
		// missed while disconnected is lost.
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}

			next, err := f.source.Open(ctx, f.restaurantID, feedEntities)
			if err != nil {
				log.Printf("realtime: resubscribe failed: %v", err)
				backoff = min(backoff*2, maxReconnectBackoff)
				continue
			}
			if err := f.refresh(ctx); err != nil {
				log.Printf("realtime: snapshot refetch failed: %v", err)
				next.Close()
				backoff = min(backoff*2, maxReconnectBackoff)
				continue
			}

			stream = next
			backoff = time.Second
			break
		}
	}
}

func (f *Feed) consume(ctx context.Context, stream Stream) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-stream.Events():
			if !ok {
				return
			}
			f.apply(ev)
		}
	}
}

func (f *Feed) refresh(ctx context.Context) error {
	orders, err := f.loader.OrdersSnapshot(ctx, f.restaurantID)
	if err != nil {
		return err
	}
	tables, err := f.loader.TablesSnapshot(ctx, f.restaurantID)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.orders = orders
	f.tables = tables
	f.mu.Unlock()
	return nil
}

func (f *Feed) apply(ev domain.ChangeEvent) {
	if ev.RestaurantID != f.restaurantID {
		return
	}
	switch ev.Entity {
	case domain.EntityOrders:
		f.applyOrder(ev)
	case domain.EntityTables:
		f.applyTable(ev)
	}
}

func (f *Feed) applyOrder(ev domain.ChangeEvent) {
	switch ev.Op {
	case domain.ChangeInsert:
		if ev.Order == nil {
			return
		}
		f.mu.Lock()
		idx := indexOfOrder(f.orders, ev.Order.ID)
		fresh := idx < 0
		if fresh {
			f.orders = append([]domain.Order{*ev.Order}, f.orders...)
		} else {
			f.orders[idx] = *ev.Order
		}
		f.mu.Unlock()

		if fresh && f.notifier != nil {
			f.notifier.OrderReceived(ev.Order)
		}

	case domain.ChangeUpdate:
		if ev.Order == nil {
			return
		}
		f.mu.Lock()
		idx := indexOfOrder(f.orders, ev.Order.ID)
		if idx < 0 {
			f.mu.Unlock()
			return
		}
		wasReady := f.orders[idx].Status == domain.OrderStatusReady
		f.orders[idx] = *ev.Order
		f.mu.Unlock()

		if !wasReady && ev.Order.Status == domain.OrderStatusReady && f.notifier != nil {
			f.notifier.OrderReady(ev.Order)
		}

	case domain.ChangeDelete:
		f.mu.Lock()
		if idx := indexOfOrder(f.orders, ev.RowID); idx >= 0 {
			f.orders = append(f.orders[:idx], f.orders[idx+1:]...)
		}
		f.mu.Unlock()
	}
}

func (f *Feed) applyTable(ev domain.ChangeEvent) {
	switch ev.Op {
	case domain.ChangeInsert, domain.ChangeUpdate:
		if ev.Table == nil {
			return
		}
		f.mu.Lock()
		if idx := indexOfTable(f.tables, ev.Table.ID); idx >= 0 {
			f.tables[idx] = *ev.Table
		} else {
			f.tables = append(f.tables, *ev.Table)
		}
		f.mu.Unlock()

	case domain.ChangeDelete:
		f.mu.Lock()
		if idx := indexOfTable(f.tables, ev.RowID); idx >= 0 {
			f.tables = append(f.tables[:idx], f.tables[idx+1:]...)
		}
		f.mu.Unlock()
	}
}

func indexOfOrder(orders []domain.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfTable(tables []domain.Table, id string) int {
	for i := range tables {
		if tables[i].ID == id {
			return i
		}
	}
	return -1
}
