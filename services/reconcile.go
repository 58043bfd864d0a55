package services

// maxMarginPercent is the highest usable target margin. The markup
// formula divides by (1 - margin/100), which is undefined at 100%, so
// out-of-range margins are clamped rather than rejected: the form may
// pass through any number and the engine must never produce Inf.
const maxMarginPercent = 99.999

// ClampMargin forces a margin percentage into [0, maxMarginPercent].
func ClampMargin(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > maxMarginPercent {
		return maxMarginPercent
	}
	return pct
}

// SuggestedPrice is the mode-specific auto-computed final price:
//
//	general:  nonPrintCost / (1 - margin/100) + printSale
//	print:    printSale + sale of non-included additional items
//	combined: the general formula restricted to sale-role items
//
// The mode restrictions are already baked into the Totals partitions
// by Aggregate, which leaves a single markup formula here; the print
// mode simply has no margin-driven component.
func SuggestedPrice(mode Mode, t Totals, targetMarginPercent float64) float64 {
	if mode == ModePrint {
		return t.PrintSale + t.NonPrintSale
	}
	return SalePriceFromMargin(t.NonPrintCost, targetMarginPercent) + t.PrintSale
}

// Recompute is the single reconciliation entry point: callers mutate
// the quote (items, margin, commission) and then call Recompute before
// reading any derived value. A final price pinned by the user is left
// alone; otherwise it tracks the suggested price.
func Recompute(q *Quote) {
	q.TargetMarginPercent = ClampMargin(q.TargetMarginPercent)
	if q.FinalPrice.Manual {
		return
	}
	t := Aggregate(q.Mode, q.Items)
	suggested := SuggestedPrice(q.Mode, t, q.TargetMarginPercent)
	q.FinalPrice = Price{Value: &suggested}
}

// SetTargetMargin updates the target margin (clamped) and reconciles.
func SetTargetMargin(q *Quote, pct float64) {
	q.TargetMarginPercent = ClampMargin(pct)
	Recompute(q)
}

// SetFinalPrice applies raw final-price field input. Any input pins the
// field as manual, including clearing it (an emptied field must not
// snap back to the suggested price under the user's cursor). When a
// literal above the cost total is entered, the target margin is
// rederived from it in the same step so the displayed margin matches
// the price; that reverse update deliberately does not re-trigger the
// forward recomputation.
func SetFinalPrice(q *Quote, input string) {
	q.FinalPrice = ParsePrice(input)
	rederiveMargin(q)
}

// ResolveFinalPrice collapses a pending final-price formula into a
// literal and rederives the margin from the result. The price stays
// manual: a formula is user input like any other.
func ResolveFinalPrice(q *Quote) {
	if q.FinalPrice.Formula == "" {
		return
	}
	q.FinalPrice = q.FinalPrice.Resolve()
	rederiveMargin(q)
}

// ClearManualFinalPrice drops the manual pin and restores the
// suggested price on the spot.
func ClearManualFinalPrice(q *Quote) {
	q.FinalPrice.Manual = false
	Recompute(q)
}

// rederiveMargin updates the target margin from a manually entered
// final price, provided the price exceeds the current cost total.
// Combined quotes keep their configured margin: with cost-role items in
// the mix the realized margin legitimately differs from the target.
func rederiveMargin(q *Quote) {
	if q.Mode == ModeCombined {
		return
	}
	if q.FinalPrice.Value == nil {
		return
	}
	price := *q.FinalPrice.Value
	cost := Aggregate(q.Mode, q.Items).Cost
	if price > cost && price > 0 {
		q.TargetMarginPercent = ClampMargin((price - cost) / price * 100)
	}
}
