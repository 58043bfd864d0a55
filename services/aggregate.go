package services

// Totals is the full set of sums the reconciler, the commission math
// and the export snapshot need. It is recomputed from scratch on every
// call; nothing is cached against the item list.
type Totals struct {
	// Cost sums estimated cost over every item regardless of role.
	Cost float64 `json:"cost"`
	// CostSaleItems / CostCostItems partition Cost by role. Items
	// without a role count as sale.
	CostSaleItems float64 `json:"cost_sale_items"`
	CostCostItems float64 `json:"cost_cost_items"`
	// Sale sums sale price over revenue-bearing items.
	Sale float64 `json:"sale"`
	// PrintSale / NonPrintSale / NonPrintCost partition the sums by the
	// print flag; the reconciler's margin formula runs on these.
	PrintSale    float64 `json:"print_sale"`
	NonPrintSale float64 `json:"non_print_sale"`
	NonPrintCost float64 `json:"non_print_cost"`
	// RealCost sums cost with real-cost overrides applied.
	RealCost float64 `json:"real_cost"`
}

// Aggregate sums the item list into Totals under the given mode's
// partition rules:
//   - combined quotes exclude cost-role items from the non-print cost
//     that feeds the margin markup;
//   - print quotes exclude "included" additional items from the sale
//     side (their cost still counts, their price is absorbed into the
//     base price).
//
// The result depends only on the arguments; calling it twice on an
// unchanged list yields identical totals.
func Aggregate(mode Mode, items []LineItem) Totals {
	var t Totals
	for i := range items {
		it := &items[i]
		cost := it.Cost()
		price := it.SalePrice()

		t.Cost += cost
		t.RealCost += it.ActualCost()
		if it.Role == RoleCost {
			t.CostCostItems += cost
		} else {
			t.CostSaleItems += cost
		}

		if it.IsPrint {
			t.PrintSale += price
		} else {
			if mode != ModeCombined || it.Role != RoleCost {
				t.NonPrintCost += cost
			}
			if mode == ModePrint && it.Included {
				continue
			}
			t.NonPrintSale += price
		}
	}
	t.Sale = t.PrintSale + t.NonPrintSale
	return t
}
