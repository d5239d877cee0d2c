package services

import (
	"context"
	"log"
	"time"

	"github.com/raamveerrr/pos/internal/domain"
	rabbit "github.com/raamveerrr/pos/internal/infra/rabbitmq"
)

// publishChange fans a delta out to the change feed without blocking the
// request path. Publish failures are logged; the database row is already
// committed and snapshots repair any gap.
func publishChange(pub rabbit.PublisherInterface, ev domain.ChangeEvent) {
	go func() {
		if err := pub.Publish(context.Background(), ev.RoutingKey(), ev); err != nil {
			log.Printf("failed to publish %s %s event: %v", ev.Op, ev.Entity, err)
		}
	}()
}

func orderChange(op domain.ChangeOp, o *domain.Order) domain.ChangeEvent {
	return domain.ChangeEvent{
		Op:           op,
		Entity:       domain.EntityOrders,
		RestaurantID: o.RestaurantID,
		RowID:        o.ID,
		Order:        o,
		OccurredAt:   time.Now(),
	}
}

func tableChange(op domain.ChangeOp, t *domain.Table) domain.ChangeEvent {
	return domain.ChangeEvent{
		Op:           op,
		Entity:       domain.EntityTables,
		RestaurantID: t.RestaurantID,
		RowID:        t.ID,
		Table:        t,
		OccurredAt:   time.Now(),
	}
}
