package services

import (
	"math"
	"testing"
)

func TestCommission(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		percent float64
		expect  float64
	}{
		{"ten percent", 500, 10, 50},
		{"zero percent", 500, 0, 0},
		{"zero price", 0, 10, 0},
		{"fractional", 166.67, 10, 16.667},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Commission(tt.price, tt.percent)
			if math.Abs(got-tt.expect) > 0.0001 {
				t.Errorf("Commission(%v, %v) = %v, want %v", tt.price, tt.percent, got, tt.expect)
			}
		})
	}
}

// netProfit must equal finalPrice - costTotal - commission exactly; no
// rounding happens anywhere in the chain.
func TestNetProfit_ExactIdentity(t *testing.T) {
	prices := []float64{0, 99.99, 500, 1234.5678}
	costs := []float64{0, 300, 450.25}
	for _, price := range prices {
		for _, cost := range costs {
			commission := Commission(price, 10)
			got := NetProfit(price, cost, commission)
			if got != price-cost-commission {
				t.Errorf("NetProfit(%v, %v, %v) = %v, broken identity", price, cost, commission, got)
			}
		}
	}
}

func TestMarginPercent(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		cost   float64
		expect float64
	}{
		{"forty percent", 500, 300, 40},
		{"break even", 300, 300, 0},
		{"loss", 200, 300, -50},
		{"zero price guards division", 0, 300, 0},
		{"negative price guards too", -10, 300, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarginPercent(tt.price, tt.cost)
			if math.Abs(got-tt.expect) > 0.0001 {
				t.Errorf("MarginPercent(%v, %v) = %v, want %v", tt.price, tt.cost, got, tt.expect)
			}
		})
	}
}

// The real variants compare the closed price against what the job
// actually cost, for post-project reconciliation.
func TestRealVariants(t *testing.T) {
	commission := Commission(500, 10) // 50
	if got := RealNetProfit(500, 350, commission); got != 100 {
		t.Errorf("RealNetProfit = %v, want 100", got)
	}
	if got := BudgetDifference(300, 350); got != 50 {
		t.Errorf("BudgetDifference = %v, want 50 (over budget)", got)
	}
	if got := BudgetDifference(300, 280); got != -20 {
		t.Errorf("BudgetDifference = %v, want -20 (under budget)", got)
	}
}
