package domain

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to preparing", OrderStatusPending, OrderStatusPreparing, true},
		{"pending straight to served", OrderStatusPending, OrderStatusServed, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"preparing to ready", OrderStatusPreparing, OrderStatusReady, true},
		{"preparing cannot go back to pending", OrderStatusPreparing, OrderStatusPending, false},
		{"ready to served", OrderStatusReady, OrderStatusServed, true},
		{"ready cannot return to preparing", OrderStatusReady, OrderStatusPreparing, false},
		{"served is terminal", OrderStatusServed, OrderStatusPending, false},
		{"served cannot be cancelled", OrderStatusServed, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusPreparing, false},
		{"no self transition", OrderStatusPending, OrderStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.allowed {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusPending, OrderStatusPreparing, OrderStatusReady} {
		if status.Terminal() {
			t.Errorf("%s should not be terminal", status)
		}
	}
	for _, status := range []OrderStatus{OrderStatusServed, OrderStatusCancelled} {
		if !status.Terminal() {
			t.Errorf("%s should be terminal", status)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	if OrderStatus("delivered").Valid() {
		t.Error("delivered is not a known status")
	}
	if !OrderStatusReady.Valid() {
		t.Error("ready should be valid")
	}
}
