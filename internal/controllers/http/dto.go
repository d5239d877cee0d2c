package http

import (
	"github.com/shopspring/decimal"

	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/services"
)

type initiatePaymentRequest struct {
	OrderID       string               `json:"order_id" binding:"required"`
	Amount        decimal.Decimal      `json:"amount" binding:"required"`
	Currency      string               `json:"currency"`
	Method        domain.PaymentMethod `json:"method" binding:"required"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
}

type paymentResponse struct {
	Success         bool                 `json:"success"`
	PaymentID       string               `json:"payment_id"`
	RazorpayOrderID string               `json:"razorpay_order_id,omitempty"`
	RazorpayKeyID   string               `json:"razorpay_key_id,omitempty"`
	Amount          decimal.Decimal      `json:"amount"`
	Currency        string               `json:"currency"`
	Method          domain.PaymentMethod `json:"method"`
	Status          domain.PaymentStatus `json:"status"`
}

func toPaymentResponse(r *services.PaymentResult) paymentResponse {
	return paymentResponse{
		Success:         true,
		PaymentID:       r.PaymentID,
		RazorpayOrderID: r.RazorpayOrderID,
		RazorpayKeyID:   r.RazorpayKeyID,
		Amount:          r.Amount,
		Currency:        r.Currency,
		Method:          r.Method,
		Status:          r.Status,
	}
}

type orderLineRequest struct {
	MenuItemID          string          `json:"menu_item_id" binding:"required"`
	Name                string          `json:"name"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	Quantity            int             `json:"quantity"`
	SpecialInstructions string          `json:"special_instructions"`
}

type submitOrderRequest struct {
	TableID       *string              `json:"table_id"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	PaymentMethod domain.PaymentMethod `json:"payment_method" binding:"required"`
	Items         []orderLineRequest   `json:"items"`
}

func (r submitOrderRequest) toOrderRequest(restaurantID, userID string) domain.OrderRequest {
	lines := make([]domain.CartLine, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, domain.CartLine{
			MenuItemID:          item.MenuItemID,
			Name:                item.Name,
			UnitPrice:           item.UnitPrice,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		})
	}
	return domain.OrderRequest{
		RestaurantID:  restaurantID,
		UserID:        userID,
		TableID:       r.TableID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Lines:         lines,
		PaymentMethod: r.PaymentMethod,
	}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type menuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	IsVeg       bool            `json:"is_veg"`
	IsAvailable bool            `json:"is_available"`
}

type adjustStockRequest struct {
	Delta decimal.Decimal `json:"delta" binding:"required"`
}
