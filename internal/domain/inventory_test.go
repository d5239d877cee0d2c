package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLowOnStock(t *testing.T) {
	tests := []struct {
		name    string
		current string
		minimum string
		low     bool
	}{
		{"below threshold", "5", "10", true},
		{"comfortably stocked", "15", "5", false},
		{"out of stock", "0", "2", true},
		{"exactly at threshold is not low", "10", "10", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := InventoryItem{
				CurrentStock: decimal.RequireFromString(tt.current),
				MinimumStock: decimal.RequireFromString(tt.minimum),
			}
			if got := item.LowOnStock(); got != tt.low {
				t.Errorf("LowOnStock() with %s/%s = %v, want %v", tt.current, tt.minimum, got, tt.low)
			}
		})
	}
}
