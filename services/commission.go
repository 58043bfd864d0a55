package services

// Commission is the payout owed on a sale.
func Commission(finalPrice, commissionPercent float64) float64 {
	return finalPrice * commissionPercent / 100
}

// NetProfit is what remains of the final price after cost and
// commission. No rounding happens here or anywhere upstream; display
// formatting is the exporter's concern.
func NetProfit(finalPrice, costTotal, commission float64) float64 {
	return finalPrice - costTotal - commission
}

// MarginPercent is the realized margin of a sale price over a cost
// total, 0 when there is no price to margin against.
func MarginPercent(salePrice, costTotal float64) float64 {
	if salePrice <= 0 {
		return 0
	}
	return (salePrice - costTotal) / salePrice * 100
}

// RealNetProfit is NetProfit computed against actual (post-project)
// cost instead of the estimate.
func RealNetProfit(finalPrice, realCostTotal, commission float64) float64 {
	return finalPrice - realCostTotal - commission
}

// BudgetDifference is actual cost minus estimated cost: positive means
// the job ran over budget.
func BudgetDifference(estimatedCost, realCost float64) float64 {
	return realCost - estimatedCost
}
