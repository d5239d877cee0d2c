package realtime

import (
	"context"

	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/repository"
)

// Stream is one live binding to the change feed. Events closes when the
// binding dies, whether torn down locally or dropped by the broker.
type Stream interface {
	Events() <-chan domain.ChangeEvent
	Close() error
}

// Source opens tenant-scoped streams.
type Source interface {
	Open(ctx context.Context, restaurantID string, entities []domain.ChangeEntity) (Stream, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, restaurantID string, entities []domain.ChangeEntity) (Stream, error)

func (f SourceFunc) Open(ctx context.Context, restaurantID string, entities []domain.ChangeEntity) (Stream, error) {
	return f(ctx, restaurantID, entities)
}

// SnapshotLoader fetches the full current state for a restaurant. The feed
// replaces its local state wholesale with these on every (re)connect.
type SnapshotLoader interface {
	OrdersSnapshot(ctx context.Context, restaurantID string) ([]domain.Order, error)
	TablesSnapshot(ctx context.Context, restaurantID string) ([]domain.Table, error)
}

// RepoLoader snapshots straight from the repositories.
type RepoLoader struct {
	Orders repository.OrderRepository
	Tables repository.TableRepository
}

func (l RepoLoader) OrdersSnapshot(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return l.Orders.ListByRestaurant(ctx, restaurantID, 0)
}

func (l RepoLoader) TablesSnapshot(ctx context.Context, restaurantID string) ([]domain.Table, error) {
	return l.Tables.ListByRestaurant(ctx, restaurantID)
}

// Notifier receives the user-facing signals derived from the order feed.
// OrderReady fires only when an order moves into the ready status, not on
// every update of an already-ready order.
type Notifier interface {
	OrderReceived(order *domain.Order)
	OrderReady(order *domain.Order)
}
