package services

// Mode identifies which quoting rules apply to a quote.
type Mode string

const (
	// ModeGeneral quotes mixed jobs: print items sell at their own
	// price, everything else is marked up by the target margin.
	ModeGeneral Mode = "general"
	// ModePrint quotes pure print jobs priced per square foot plus
	// flat additional items.
	ModePrint Mode = "print"
	// ModeCombined extends general quotes with explicit sale/cost
	// roles per item.
	ModeCombined Mode = "combined"
)

// Quote is the in-memory working state of one quotation. All derived
// numbers (totals, suggested price, commission, profit) are produced
// by Recompute and BuildSnapshot, never stored on the struct, so they
// cannot drift from the item list.
type Quote struct {
	ID                  string     `json:"id,omitempty"`
	Mode                Mode       `json:"mode"`
	Name                string     `json:"name"`
	Client              string     `json:"client,omitempty"`
	Items               []LineItem `json:"items"`
	TargetMarginPercent float64    `json:"target_margin_percent"`
	CommissionPercent   float64    `json:"commission_percent"`
	FinalPrice          Price      `json:"final_price"`
	Note                string     `json:"note,omitempty"`
}

// NewQuote creates an empty quote with the shop's customary defaults
// of 40% target margin and 10% commission.
func NewQuote(mode Mode, name string) *Quote {
	return &Quote{
		Mode:                mode,
		Name:                name,
		TargetMarginPercent: 40,
		CommissionPercent:   10,
	}
}

// AddItem appends the item, resolving any pending unit-price formula
// first, and reconciles the quote.
func (q *Quote) AddItem(item LineItem) {
	item.UnitPrice = item.UnitPrice.Resolve()
	q.Items = append(q.Items, item)
	Recompute(q)
}

// UpdateItem replaces the stored item with the same id and reconciles
// the quote. It reports whether the id was found.
func (q *Quote) UpdateItem(item LineItem) bool {
	for i := range q.Items {
		if q.Items[i].ID == item.ID {
			item.UnitPrice = item.UnitPrice.Resolve()
			q.Items[i] = item
			Recompute(q)
			return true
		}
	}
	return false
}

// RemoveItem deletes the item with the given id and reconciles the
// quote. It reports whether the id was found.
func (q *Quote) RemoveItem(id string) bool {
	for i := range q.Items {
		if q.Items[i].ID == id {
			q.Items = append(q.Items[:i], q.Items[i+1:]...)
			Recompute(q)
			return true
		}
	}
	return false
}

// Duplicate returns a deep copy of the quote ready to be saved as a
// new record: no id, name suffixed, final price kept as-is.
func (q *Quote) Duplicate() *Quote {
	dup := *q
	dup.ID = ""
	dup.Name = q.Name + " (Copia)"
	dup.Items = make([]LineItem, len(q.Items))
	for i := range q.Items {
		dup.Items[i] = q.Items[i].Clone()
	}
	if q.FinalPrice.Value != nil {
		v := *q.FinalPrice.Value
		dup.FinalPrice.Value = &v
	}
	return &dup
}
