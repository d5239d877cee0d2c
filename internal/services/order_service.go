package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raamveerrr/pos/internal/domain"
	rabbit "github.com/raamveerrr/pos/internal/infra/rabbitmq"
	"github.com/raamveerrr/pos/internal/pricing"
	"github.com/raamveerrr/pos/internal/repository"
)

const restaurantCacheTTL = 5 * time.Minute

// PaymentInitiator is the slice of the payment service the submission
// workflow needs.
type PaymentInitiator interface {
	Initiate(ctx context.Context, callerID string, in InitiatePaymentInput) (*PaymentResult, error)
}

// SubmitResult is a placed order together with its initiated payment.
type SubmitResult struct {
	Order   *domain.Order
	Payment *PaymentResult
}

type OrderService struct {
	orders      repository.OrderRepository
	tables      repository.TableRepository
	restaurants repository.RestaurantRepository
	initiator   PaymentInitiator
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
}

func NewOrderService(
	orders repository.OrderRepository,
	tables repository.TableRepository,
	restaurants repository.RestaurantRepository,
	initiator PaymentInitiator,
	publisher rabbit.PublisherInterface,
) *OrderService {
	return &OrderService{
		orders:      orders,
		tables:      tables,
		restaurants: restaurants,
		initiator:   initiator,
		publisher:   publisher,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// Submit runs the whole submission workflow: validate the cart, price it with
// the restaurant's configured rates, write the order and its items in one
// transaction, occupy the table, then initiate payment. A payment initiation
// failure surfaces to the caller while the order stays pending for manual
// reconciliation.
func (s *OrderService) Submit(ctx context.Context, req domain.OrderRequest) (*SubmitResult, error) {
	if len(req.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	for _, line := range req.Lines {
		if line.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	restaurant, err := s.restaurantWithCache(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrRestaurantNotFound
	}

	totals := pricing.ComputeTotals(req.Lines, restaurant.TaxRate, restaurant.ServiceCharge)

	now := time.Now()
	seq, err := s.orders.NextOrderNumber(ctx, req.RestaurantID, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOrderPersistence, err)
	}

	order := &domain.Order{
		ID:             uuid.NewString(),
		RestaurantID:   req.RestaurantID,
		TableID:        req.TableID,
		OrderNumber:    fmt.Sprintf("ORD-%s-%04d", now.Format("20060102"), seq),
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		Status:         domain.OrderStatusPending,
		PaymentStatus:  domain.PaymentStatusPending,
		PaymentMethod:  &req.PaymentMethod,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		ServiceCharge:  totals.ServiceCharge,
		DiscountAmount: decimal.Zero,
		TotalAmount:    totals.Total,
		CreatedBy:      req.UserID,
	}
	order.Items = make([]domain.OrderItem, 0, len(req.Lines))
	for _, line := range req.Lines {
		order.Items = append(order.Items, domain.OrderItem{
			ID:                  uuid.NewString(),
			OrderID:             order.ID,
			MenuItemID:          line.MenuItemID,
			Quantity:            line.Quantity,
			UnitPrice:           line.UnitPrice,
			TotalPrice:          pricing.LineTotal(line.UnitPrice, line.Quantity),
			SpecialInstructions: line.SpecialInstructions,
		})
	}

	if err := s.orders.CreateWithItems(ctx, order); err != nil {
		if errors.Is(err, domain.ErrOrderPersistence) || errors.Is(err, domain.ErrItemsPersistence) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrOrderPersistence, err)
	}

	publishChange(s.publisher, orderChange(domain.ChangeInsert, order))

	if req.TableID != nil {
		s.occupyTable(ctx, *req.TableID)
	}

	payment, err := s.initiator.Initiate(ctx, req.UserID, InitiatePaymentInput{
		OrderID:       order.ID,
		Amount:        totals.Total,
		Currency:      restaurant.Currency,
		Method:        req.PaymentMethod,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		log.Printf("order %s created but payment initiation failed: %v", order.ID, err)
		return nil, err
	}

	result := &SubmitResult{Order: order, Payment: payment}
	if updated, ferr := s.orders.FindByID(ctx, order.ID); ferr == nil && updated != nil {
		result.Order = updated
	}
	return result, nil
}

// OrderSubmitAdapter narrows Submit to an order-only result for callers that
// never look at payment details, such as the offline replay queue.
type OrderSubmitAdapter struct {
	Orders *OrderService
}

func (a OrderSubmitAdapter) Submit(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	result, err := a.Orders.Submit(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Order, nil
}

// occupyTable is best effort: a failure never aborts an already-placed order.
func (s *OrderService) occupyTable(ctx context.Context, tableID string) {
	if err := s.tables.UpdateStatus(ctx, tableID, domain.TableStatusOccupied); err != nil {
		log.Printf("table %s not marked occupied: %v", tableID, err)
		return
	}
	if table, err := s.tables.FindByID(ctx, tableID); err == nil && table != nil {
		publishChange(s.publisher, tableChange(domain.ChangeUpdate, table))
	}
}

func (s *OrderService) GetOrder(ctx context.Context, callerRestaurantID, orderID string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if order.RestaurantID != callerRestaurantID {
		return nil, domain.ErrAccessDenied
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, restaurantID string, limit int) ([]domain.Order, error) {
	return s.orders.ListByRestaurant(ctx, restaurantID, limit)
}

// UpdateStatus advances an order along the allowed transitions. Serving an
// order records who served it and when.
func (s *OrderService) UpdateStatus(ctx context.Context, callerRestaurantID, orderID string, to domain.OrderStatus, updatedBy string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if order.RestaurantID != callerRestaurantID {
		return nil, domain.ErrAccessDenied
	}
	if !to.Valid() || !domain.CanTransition(order.Status, to) {
		return nil, domain.ErrInvalidTransition
	}

	if to == domain.OrderStatusServed {
		err = s.orders.MarkServed(ctx, orderID, updatedBy, time.Now())
	} else {
		err = s.orders.UpdateStatus(ctx, orderID, to)
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrOrderNotFound
	}

	publishChange(s.publisher, orderChange(domain.ChangeUpdate, updated))
	return updated, nil
}

// restaurantWithCache reads the tenant row through redis so every submission
// does not hit MySQL for rates that change rarely. Works without redis too.
func (s *OrderService) restaurantWithCache(ctx context.Context, id string) (*domain.Restaurant, error) {
	cacheKey := "restaurant:" + id

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var r domain.Restaurant
			if err := json.Unmarshal([]byte(cached), &r); err == nil {
				return &r, nil
			}
		}
	}

	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && restaurant != nil {
		if data, err := json.Marshal(restaurant); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, restaurantCacheTTL)
		}
	}

	return restaurant, nil
}
