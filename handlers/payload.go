package handlers

import (
	"fmt"

	"cotizador/services"
)

// itemPayload is the wire form of a line item. Price fields arrive as
// the raw text the user typed so the engine keeps deciding what is a
// number, a formula or nothing.
type itemPayload struct {
	ID          string   `json:"id,omitempty"`
	Description string   `json:"description"`
	Quantity    int      `json:"quantity"`
	UnitPrice   string   `json:"unit_price,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	CostPerSqFt *float64 `json:"cost_per_sqft,omitempty"`
	SaleRate    *float64 `json:"sale_rate,omitempty"`
	PriceMode   string   `json:"price_mode,omitempty"`
	IsPrint     bool     `json:"is_print,omitempty"`
	Category    string   `json:"category,omitempty"`
	Role        string   `json:"role,omitempty"`
	Included    bool     `json:"included,omitempty"`
	RealCost    *float64 `json:"real_cost,omitempty"`
}

// quotePayload is the wire form of a whole quote, shared by the save
// and the stateless compute endpoints.
type quotePayload struct {
	ID                  string        `json:"id,omitempty"`
	Mode                string        `json:"mode"`
	Name                string        `json:"name"`
	Client              string        `json:"client,omitempty"`
	Note                string        `json:"note,omitempty"`
	Items               []itemPayload `json:"items"`
	TargetMarginPercent *float64      `json:"target_margin_percent,omitempty"`
	CommissionPercent   *float64      `json:"commission_percent,omitempty"`
	// FinalPrice is the raw final-price field input. Empty means the
	// price was never pinned and should track the suggestion.
	FinalPrice string `json:"final_price,omitempty"`
}

// quoteFromPayload builds a reconciled engine quote from the wire form.
func quoteFromPayload(p quotePayload) (*services.Quote, error) {
	mode := services.Mode(p.Mode)
	switch mode {
	case services.ModeGeneral, services.ModePrint, services.ModeCombined:
	default:
		return nil, fmt.Errorf("unknown quote mode %q", p.Mode)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("quote name is required")
	}

	q := services.NewQuote(mode, p.Name)
	q.ID = p.ID
	q.Client = p.Client
	q.Note = p.Note
	if p.TargetMarginPercent != nil {
		q.TargetMarginPercent = *p.TargetMarginPercent
	}
	if p.CommissionPercent != nil {
		q.CommissionPercent = *p.CommissionPercent
	}

	for _, ip := range p.Items {
		item := services.NewLineItem(ip.Description, ip.Quantity)
		if ip.ID != "" {
			item.ID = ip.ID
		}
		item.UnitPrice = services.ParsePrice(ip.UnitPrice).Resolve()
		if ip.Width != nil || ip.Height != nil || ip.CostPerSqFt != nil || ip.Unit != "" {
			item.Area = &services.AreaSpec{
				Width:       ip.Width,
				Height:      ip.Height,
				Unit:        services.Unit(ip.Unit),
				CostPerSqFt: ip.CostPerSqFt,
			}
		}
		item.SaleRate = ip.SaleRate
		if ip.PriceMode != "" {
			item.PriceMode = services.PriceMode(ip.PriceMode)
		}
		item.IsPrint = ip.IsPrint
		if ip.Category != "" {
			item.Category = services.Category(ip.Category)
		}
		item.Role = services.Role(ip.Role)
		item.Included = ip.Included
		item.RealCost = ip.RealCost
		q.Items = append(q.Items, item)
	}

	services.Recompute(q)
	if p.FinalPrice != "" {
		services.SetFinalPrice(q, p.FinalPrice)
		services.ResolveFinalPrice(q)
	}
	return q, nil
}
