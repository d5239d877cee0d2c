package domain

import "time"

type ChangeOp string

const (
	ChangeInsert ChangeOp = "INSERT"
	ChangeUpdate ChangeOp = "UPDATE"
	ChangeDelete ChangeOp = "DELETE"
)

type ChangeEntity string

const (
	EntityOrders ChangeEntity = "orders"
	EntityTables ChangeEntity = "tables"
)

// ChangeEvent is one row-level delta on the tenant-scoped change feed.
// Exactly one of Order/Table is set for INSERT and UPDATE; DELETE carries
// only RowID.
type ChangeEvent struct {
	Op           ChangeOp     `json:"op"`
	Entity       ChangeEntity `json:"entity"`
	RestaurantID string       `json:"restaurant_id"`
	RowID        string       `json:"row_id"`
	Order        *Order       `json:"order,omitempty"`
	Table        *Table       `json:"table,omitempty"`
	OccurredAt   time.Time    `json:"occurred_at"`
}

// RoutingKey scopes the event to one entity of one restaurant on the
// topic exchange.
func (e ChangeEvent) RoutingKey() string {
	return string(e.Entity) + "." + e.RestaurantID
}
