package services

import (
	"math"
	"testing"
)

func snapshotFixture() *Quote {
	print := areaItem(10, 5, UnitFoot, 3, 2) // cost 300
	print.SaleRate = f(5)                    // sale 500
	labor := flatItem("instalacion", 100, 1)
	labor.RealCost = f(120)

	q := NewQuote(ModeGeneral, "Letrero Colmado")
	q.Client = "Colmado La Esquina"
	q.Note = "Entrega en 5 días"
	q.AddItem(print)
	q.AddItem(labor)
	return q
}

func TestBuildSnapshot_DerivedFields(t *testing.T) {
	q := snapshotFixture()
	snap := BuildSnapshot(q)

	if len(snap.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(snap.Rows))
	}
	if snap.Totals.Cost != 400 {
		t.Errorf("cost total = %v, want 400", snap.Totals.Cost)
	}
	// suggested: 100/(1-0.4) + 500 = 666.67
	if math.Abs(snap.SuggestedPrice-666.6667) > tol {
		t.Errorf("suggested = %v, want 666.67", snap.SuggestedPrice)
	}
	if math.Abs(snap.FinalPrice-snap.SuggestedPrice) > tol {
		t.Errorf("auto final price = %v, want suggested %v", snap.FinalPrice, snap.SuggestedPrice)
	}
	if snap.FinalPriceManual {
		t.Error("final price wrongly reported manual")
	}

	wantCommission := snap.FinalPrice * 10 / 100
	if math.Abs(snap.Commission-wantCommission) > tol {
		t.Errorf("commission = %v, want %v", snap.Commission, wantCommission)
	}
	if snap.NetProfit != snap.FinalPrice-snap.Totals.Cost-snap.Commission {
		t.Error("net profit identity broken")
	}

	// Real-cost reconciliation: labor ran 20 over.
	if snap.Totals.RealCost != 420 {
		t.Errorf("real cost = %v, want 420", snap.Totals.RealCost)
	}
	if snap.BudgetDifference != 20 {
		t.Errorf("budget difference = %v, want 20", snap.BudgetDifference)
	}
	if snap.RealNetProfit != snap.FinalPrice-420-snap.Commission {
		t.Error("real net profit identity broken")
	}
}

func TestBuildSnapshot_ManualPrice(t *testing.T) {
	q := snapshotFixture()
	SetFinalPrice(q, "700")
	snap := BuildSnapshot(q)

	if snap.FinalPrice != 700 {
		t.Errorf("final price = %v, want 700", snap.FinalPrice)
	}
	if !snap.FinalPriceManual {
		t.Error("manual flag lost in snapshot")
	}
	wantMargin := (700.0 - 400.0) / 700.0 * 100
	if math.Abs(snap.RealizedMarginPercent-wantMargin) > tol {
		t.Errorf("realized margin = %v, want %v", snap.RealizedMarginPercent, wantMargin)
	}
}

func TestEffectiveFinalPrice(t *testing.T) {
	q := snapshotFixture()
	auto := EffectiveFinalPrice(q)
	if math.Abs(auto-666.6667) > tol {
		t.Errorf("effective auto price = %v, want 666.67", auto)
	}

	SetFinalPrice(q, "")
	if got := EffectiveFinalPrice(q); math.Abs(got-666.6667) > tol {
		t.Errorf("absent final price should fall back to suggested, got %v", got)
	}

	SetFinalPrice(q, "800")
	if got := EffectiveFinalPrice(q); got != 800 {
		t.Errorf("effective manual price = %v, want 800", got)
	}
}
