// Package offline buffers order submissions while connectivity is down and
// replays them when it returns. The buffer is scoped to one restaurant and
// one user so a shared terminal never replays another account's orders, and
// it persists across restarts through a BlobStore.
package offline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/raamveerrr/pos/internal/domain"
)

const maxSubmitAttempts = 3

// OrderSubmitter is the downstream that actually places orders.
type OrderSubmitter interface {
	Submit(ctx context.Context, req domain.OrderRequest) (*domain.Order, error)
}

// FailureFunc is called with orders that exhausted their retries during a
// flush. The order is already dropped from the queue when it fires.
type FailureFunc func(req domain.OrderRequest, err error)

type queuedOrder struct {
	Request  domain.OrderRequest `json:"request"`
	QueuedAt time.Time           `json:"queued_at"`
}

type Syncer struct {
	restaurantID string
	userID       string
	submitter    OrderSubmitter
	store        BlobStore
	onFailure    FailureFunc
	retryDelay   time.Duration

	mu       sync.Mutex
	online   bool
	flushing bool
	queue    []queuedOrder
}

// NewSyncer starts online and restores any queue a previous run left behind.
// onFailure may be nil.
func NewSyncer(restaurantID, userID string, submitter OrderSubmitter, store BlobStore, onFailure FailureFunc) *Syncer {
	s := &Syncer{
		restaurantID: restaurantID,
		userID:       userID,
		submitter:    submitter,
		store:        store,
		onFailure:    onFailure,
		retryDelay:   time.Second,
		online:       true,
	}
	s.restore()
	return s
}

func (s *Syncer) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

func (s *Syncer) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Queued returns a copy of the buffered requests in submission order.
func (s *Syncer) Queued() []domain.OrderRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.OrderRequest, len(s.queue))
	for i, q := range s.queue {
		out[i] = q.Request
	}
	return out
}

// SetOnline records a connectivity transition. Coming back online drains the
// queue before returning; repeating the current state is a no-op.
func (s *Syncer) SetOnline(ctx context.Context, online bool) error {
	s.mu.Lock()
	if s.online == online {
		s.mu.Unlock()
		return nil
	}
	s.online = online
	s.mu.Unlock()

	if online {
		return s.Flush(ctx)
	}
	return nil
}

// Submit places the order immediately when online. When offline it buffers
// the request instead; the bool reports that the order was queued rather than
// placed.
func (s *Syncer) Submit(ctx context.Context, req domain.OrderRequest) (*domain.Order, bool, error) {
	s.mu.Lock()
	if !s.online {
		s.queue = append(s.queue, queuedOrder{Request: req, QueuedAt: time.Now()})
		s.persistLocked()
		pending := len(s.queue)
		s.mu.Unlock()
		log.Printf("offline: queued order for restaurant %s (%d pending)", s.restaurantID, pending)
		return nil, true, nil
	}
	s.mu.Unlock()

	order, err := s.submitter.Submit(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return order, false, nil
}

// Flush drains queued orders in arrival order. Each order gets up to three
// attempts; one that still fails is dropped and surfaced through the failure
// handler so staff can re-enter it. Going offline mid-flush leaves the
// remainder buffered.
func (s *Syncer) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.flushing {
		s.mu.Unlock()
		return nil
	}
	s.flushing = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.flushing = false
		s.mu.Unlock()
	}()

	for {
		s.mu.Lock()
		if !s.online || len(s.queue) == 0 {
			s.mu.Unlock()
			return nil
		}
		item := s.queue[0]
		s.mu.Unlock()

		err := s.submitWithRetry(ctx, item.Request)
		if err != nil && ctx.Err() != nil {
			// Cancelled, not rejected. The head stays queued.
			return ctx.Err()
		}

		s.mu.Lock()
		if len(s.queue) > 0 {
			s.queue = s.queue[1:]
		}
		s.persistLocked()
		s.mu.Unlock()

		if err != nil {
			log.Printf("offline: dropping order after %d attempts: %v", maxSubmitAttempts, err)
			if s.onFailure != nil {
				s.onFailure(item.Request, err)
			}
		}
	}
}

func (s *Syncer) submitWithRetry(ctx context.Context, req domain.OrderRequest) error {
	var err error
	for attempt := 1; attempt <= maxSubmitAttempts; attempt++ {
		if _, err = s.submitter.Submit(ctx, req); err == nil {
			return nil
		}
		if attempt == maxSubmitAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.retryDelay):
		}
	}
	return err
}

func (s *Syncer) key() string {
	return fmt.Sprintf("pos_offline_queue:%s:%s", s.restaurantID, s.userID)
}

func (s *Syncer) restore() {
	data, err := s.store.Read(s.key())
	if err != nil {
		log.Printf("offline: read queue: %v", err)
		return
	}
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, &s.queue); err != nil {
		log.Printf("offline: discarding corrupt queue: %v", err)
		s.queue = nil
	}
}

func (s *Syncer) persistLocked() {
	if len(s.queue) == 0 {
		if err := s.store.Delete(s.key()); err != nil {
			log.Printf("offline: clear queue: %v", err)
		}
		return
	}
	data, err := json.Marshal(s.queue)
	if err != nil {
		log.Printf("offline: encode queue: %v", err)
		return
	}
	if err := s.store.Write(s.key(), data); err != nil {
		log.Printf("offline: persist queue: %v", err)
	}
}
