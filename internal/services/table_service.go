package services

import (
	"context"

	"github.com/raamveerrr/pos/internal/domain"
	rabbit "github.com/raamveerrr/pos/internal/infra/rabbitmq"
	"github.com/raamveerrr/pos/internal/repository"
)

type TableService struct {
	tables    repository.TableRepository
	publisher rabbit.PublisherInterface
}

func NewTableService(tables repository.TableRepository, publisher rabbit.PublisherInterface) *TableService {
	return &TableService{tables: tables, publisher: publisher}
}

// ListTables returns a restaurant's active tables ordered by table number.
func (s *TableService) ListTables(ctx context.Context, restaurantID string) ([]domain.Table, error) {
	return s.tables.ListByRestaurant(ctx, restaurantID)
}

// UpdateStatus moves a table between floor states. Status races between two
// terminals resolve last-write-wins; staff correct mistakes by hand.
func (s *TableService) UpdateStatus(ctx context.Context, callerRestaurantID, tableID string, status domain.TableStatus) (*domain.Table, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidTransition
	}

	table, err := s.tables.FindByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, domain.ErrTableNotFound
	}
	if table.RestaurantID != callerRestaurantID {
		return nil, domain.ErrAccessDenied
	}

	if err := s.tables.UpdateStatus(ctx, tableID, status); err != nil {
		return nil, err
	}

	table.Status = status
	publishChange(s.publisher, tableChange(domain.ChangeUpdate, table))
	return table, nil
}
