package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/infra"
	rabbit "github.com/raamveerrr/pos/internal/infra/rabbitmq"
	"github.com/raamveerrr/pos/internal/repository"
)

// InitiatePaymentInput carries one settlement request into the service.
type InitiatePaymentInput struct {
	OrderID       string
	Amount        decimal.Decimal
	Currency      string
	Method        domain.PaymentMethod
	CustomerName  string
	CustomerPhone string
}

// PaymentResult is what the caller gets back. RazorpayOrderID and
// RazorpayKeyID are set only for gateway-routed methods; the key id is the
// publishable half of the credential pair, never the secret.
type PaymentResult struct {
	PaymentID       string
	RazorpayOrderID string
	RazorpayKeyID   string
	Amount          decimal.Decimal
	Currency        string
	Method          domain.PaymentMethod
	Status          domain.PaymentStatus
}

// PaymentService records settlement attempts. It re-checks the caller's
// tenant assignment against the order instead of trusting client-supplied
// restaurant ids.
type PaymentService struct {
	payments  repository.PaymentRepository
	orders    repository.OrderRepository
	users     repository.UserProfileRepository
	gateway   infra.RazorpayClientInterface
	publisher rabbit.PublisherInterface
}

func NewPaymentService(
	payments repository.PaymentRepository,
	orders repository.OrderRepository,
	users repository.UserProfileRepository,
	gateway infra.RazorpayClientInterface,
	publisher rabbit.PublisherInterface,
) *PaymentService {
	return &PaymentService{
		payments:  payments,
		orders:    orders,
		users:     users,
		gateway:   gateway,
		publisher: publisher,
	}
}

// Initiate authorizes the caller, validates the request and dispatches on the
// payment method. Cash settles immediately and marks the order served;
// gateway methods create a processor order and leave the payment pending
// until the confirmation event arrives out of band.
func (s *PaymentService) Initiate(ctx context.Context, callerID string, in InitiatePaymentInput) (*PaymentResult, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthorized
	}
	profile, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUnauthorized
	}

	order, err := s.orders.FindByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if profile.RestaurantID != order.RestaurantID {
		return nil, domain.ErrAccessDenied
	}

	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if !in.Method.Valid() {
		return nil, domain.ErrInvalidMethod
	}
	if in.Currency == "" {
		in.Currency = "INR"
	}

	// The single dispatch point for the closed method set.
	if in.Method.GatewayRouted() {
		return s.initiateGateway(ctx, order, in)
	}
	return s.settleCash(ctx, callerID, order, in)
}

func (s *PaymentService) settleCash(ctx context.Context, callerID string, order *domain.Order, in InitiatePaymentInput) (*PaymentResult, error) {
	now := time.Now()
	payment := &domain.Payment{
		ID:            uuid.NewString(),
		RestaurantID:  order.RestaurantID,
		OrderID:       order.ID,
		Amount:        in.Amount,
		Currency:      in.Currency,
		PaymentMethod: domain.PaymentMethodCash,
		PaymentStatus: domain.PaymentStatusCompleted,
		ProcessedBy:   &callerID,
		ProcessedAt:   &now,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentPersistence, err)
	}

	if err := s.orders.MarkServed(ctx, order.ID, callerID, now); err != nil {
		log.Printf("cash payment %s recorded but order %s not marked served: %v", payment.ID, order.ID, err)
	}
	if err := s.orders.UpdatePaymentStatus(ctx, order.ID, domain.PaymentStatusCompleted); err != nil {
		log.Printf("cash payment %s recorded but order %s payment status not updated: %v", payment.ID, order.ID, err)
	}

	if updated, err := s.orders.FindByID(ctx, order.ID); err == nil && updated != nil {
		publishChange(s.publisher, orderChange(domain.ChangeUpdate, updated))
	}

	return &PaymentResult{
		PaymentID: payment.ID,
		Amount:    in.Amount,
		Currency:  in.Currency,
		Method:    domain.PaymentMethodCash,
		Status:    domain.PaymentStatusCompleted,
	}, nil
}

func (s *PaymentService) initiateGateway(ctx context.Context, order *domain.Order, in InitiatePaymentInput) (*PaymentResult, error) {
	gw, err := s.gateway.CreateOrder(ctx, in.Amount, in.Currency, receiptTag(order.ID))
	if err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		ID:              uuid.NewString(),
		RestaurantID:    order.RestaurantID,
		OrderID:         order.ID,
		Amount:          in.Amount,
		Currency:        in.Currency,
		PaymentMethod:   in.Method,
		PaymentStatus:   domain.PaymentStatusPending,
		RazorpayOrderID: gw.ID,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		// The gateway order cannot be rolled back remotely; it has to be
		// reconciled by hand.
		log.Printf("orphaned gateway order %s for order %s: %v", gw.ID, order.ID, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentPersistence, err)
	}

	return &PaymentResult{
		PaymentID:       payment.ID,
		RazorpayOrderID: gw.ID,
		RazorpayKeyID:   s.gateway.KeyID(),
		Amount:          in.Amount,
		Currency:        in.Currency,
		Method:          in.Method,
		Status:          domain.PaymentStatusPending,
	}, nil
}

// ListByOrder returns an order's settlement attempts, newest first.
func (s *PaymentService) ListByOrder(ctx context.Context, callerRestaurantID, orderID string) ([]domain.Payment, error) {
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
	return s.payments.ListByOrder(ctx, orderID)
}

// receiptTag derives the processor receipt from the order id, staying inside
// the processor's 40 character receipt limit.
func receiptTag(orderID string) string {
	if len(orderID) > 32 {
		orderID = orderID[:32]
	}
	return "rcpt_" + orderID
}
