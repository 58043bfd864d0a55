package services

// SnapshotRow is one line of an export, already fully priced so the
// exporters never redo business math.
type SnapshotRow struct {
	Description string   `json:"description"`
	Category    Category `json:"category,omitempty"`
	Role        Role     `json:"role,omitempty"`
	Quantity    int      `json:"quantity"`
	AreaSqFt    float64  `json:"area_sqft,omitempty"`
	IsPrint     bool     `json:"is_print"`
	Included    bool     `json:"included,omitempty"`
	Cost        float64  `json:"cost"`
	SalePrice   float64  `json:"sale_price"`
}

// Snapshot is the read-only view handed to the PDF/Excel/JSON
// exporters and to the API: every derived figure of the quote in one
// place, produced by a single aggregation pass.
type Snapshot struct {
	Mode        Mode   `json:"mode"`
	ProjectName string `json:"project_name"`
	ClientName  string `json:"client_name,omitempty"`
	Note        string `json:"note,omitempty"`
	// GeneratedDate is a display date filled in by the caller.
	GeneratedDate string `json:"generated_date,omitempty"`

	Rows   []SnapshotRow `json:"rows"`
	Totals Totals        `json:"totals"`

	SuggestedPrice      float64 `json:"suggested_price"`
	FinalPrice          float64 `json:"final_price"`
	FinalPriceManual    bool    `json:"final_price_manual"`
	TargetMarginPercent float64 `json:"target_margin_percent"`
	// RealizedMarginPercent is the margin the final price actually
	// achieves over the estimated cost total.
	RealizedMarginPercent float64 `json:"realized_margin_percent"`
	CommissionPercent     float64 `json:"commission_percent"`
	Commission            float64 `json:"commission"`
	NetProfit             float64 `json:"net_profit"`

	// Post-project reconciliation, using real-cost overrides.
	RealNetProfit     float64 `json:"real_net_profit"`
	RealMarginPercent float64 `json:"real_margin_percent"`
	BudgetDifference  float64 `json:"budget_difference"`
}

// EffectiveFinalPrice is the price a quote actually closes at: the
// final-price field when it holds a value, otherwise the suggested
// price.
func EffectiveFinalPrice(q *Quote) float64 {
	if q.FinalPrice.Value != nil {
		return *q.FinalPrice.Value
	}
	t := Aggregate(q.Mode, q.Items)
	return SuggestedPrice(q.Mode, t, q.TargetMarginPercent)
}

// BuildSnapshot derives every exported figure from the quote in one
// pass. It assumes the caller reconciled the quote (Recompute) after
// its last mutation.
func BuildSnapshot(q *Quote) Snapshot {
	t := Aggregate(q.Mode, q.Items)
	suggested := SuggestedPrice(q.Mode, t, q.TargetMarginPercent)

	final := suggested
	if q.FinalPrice.Value != nil {
		final = *q.FinalPrice.Value
	}

	commission := Commission(final, q.CommissionPercent)

	rows := make([]SnapshotRow, 0, len(q.Items))
	for i := range q.Items {
		it := &q.Items[i]
		rows = append(rows, SnapshotRow{
			Description: it.Description,
			Category:    it.Category,
			Role:        it.Role,
			Quantity:    it.Quantity,
			AreaSqFt:    it.Area.SquareFeet(),
			IsPrint:     it.IsPrint,
			Included:    it.Included,
			Cost:        it.Cost(),
			SalePrice:   it.SalePrice(),
		})
	}

	return Snapshot{
		Mode:        q.Mode,
		ProjectName: q.Name,
		ClientName:  q.Client,
		Note:        q.Note,

		Rows:   rows,
		Totals: t,

		SuggestedPrice:        suggested,
		FinalPrice:            final,
		FinalPriceManual:      q.FinalPrice.Manual,
		TargetMarginPercent:   q.TargetMarginPercent,
		RealizedMarginPercent: MarginPercent(final, t.Cost),
		CommissionPercent:     q.CommissionPercent,
		Commission:            commission,
		NetProfit:             NetProfit(final, t.Cost, commission),

		RealNetProfit:     RealNetProfit(final, t.RealCost, commission),
		RealMarginPercent: MarginPercent(final, t.RealCost),
		BudgetDifference:  BudgetDifference(t.Cost, t.RealCost),
	}
}
