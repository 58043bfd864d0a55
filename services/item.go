package services

import (
	"strings"

	"github.com/google/uuid"
)

// Role tags a combined-mode item as revenue-bearing or cost-only.
// General and print quotes have no roles; an empty role counts as sale.
type Role string

const (
	RoleSale Role = "sale"
	RoleCost Role = "cost"
)

// PriceMode selects how the sale rate of an area-priced item is read.
type PriceMode string

const (
	// PricePerArea treats the sale rate as an amount per square foot.
	PricePerArea PriceMode = "per_area"
	// PriceFlatTotal treats the sale rate as a per-unit total.
	PriceFlatTotal PriceMode = "flat_total"
)

// Category is an item classification tag. It is display metadata only;
// cost and margin math rely on the print flag and role, never on this.
type Category string

const (
	CategoryPrint     Category = "print"
	CategoryMaterials Category = "materials"
	CategoryLabor     Category = "labor"
	CategoryTransport Category = "transport"
	CategoryServices  Category = "services"
	CategoryOther     Category = "other"
)

// AreaSpec is the dimension block of an area-priced item. All four
// fields must be present for the area path to apply; a partially
// filled spec simply means the item is priced flat.
type AreaSpec struct {
	Width       *float64 `json:"width"`
	Height      *float64 `json:"height"`
	Unit        Unit     `json:"unit"`
	CostPerSqFt *float64 `json:"cost_per_sqft"`
}

// Complete reports whether every field of the spec is filled in.
func (a *AreaSpec) Complete() bool {
	return a != nil && a.Width != nil && a.Height != nil && a.CostPerSqFt != nil && a.Unit != ""
}

// SquareFeet returns the spec's area in square feet, or 0 when incomplete.
func (a *AreaSpec) SquareFeet() float64 {
	if !a.Complete() {
		return 0
	}
	return AreaSquareFeet(*a.Width, *a.Height, a.Unit)
}

// LineItem is a single quote line. The same shape serves all three
// quote modes; Role, PriceMode and Included only apply where the mode
// defines them.
type LineItem struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	UnitPrice   Price     `json:"unit_price"`
	Area        *AreaSpec `json:"area,omitempty"`
	// SaleRate is the per-square-foot sale rate of an area-priced item,
	// or its per-unit total when PriceMode is PriceFlatTotal.
	SaleRate  *float64  `json:"sale_rate,omitempty"`
	PriceMode PriceMode `json:"price_mode,omitempty"`
	IsPrint   bool      `json:"is_print"`
	Category  Category  `json:"category,omitempty"`
	Role      Role      `json:"role,omitempty"`
	// Included marks a print-quote additional item as absorbed into the
	// base price: it keeps contributing cost but sells for nothing extra.
	Included bool `json:"included,omitempty"`
	// RealCost is the post-project actual total cost, used only by the
	// real-profit calculations.
	RealCost *float64 `json:"real_cost,omitempty"`
}

// NewLineItem creates an item with a fresh id. Quantity defaults to 1.
func NewLineItem(description string, quantity int) LineItem {
	if quantity < 1 {
		quantity = 1
	}
	return LineItem{
		ID:          uuid.NewString(),
		Description: description,
		Quantity:    quantity,
		Category:    Categorize(description),
	}
}

// Cost is the estimated cost of the line: area × cost rate × qty when
// the area spec is complete, otherwise unit price × qty.
func (it *LineItem) Cost() float64 {
	qty := float64(it.Quantity)
	if it.Area.Complete() {
		return it.Area.SquareFeet() * *it.Area.CostPerSqFt * qty
	}
	return it.UnitPrice.Amount() * qty
}

// ActualCost is Cost with the real-cost override applied when present.
// The override is a total for the whole line, not a per-unit amount.
func (it *LineItem) ActualCost() float64 {
	if it.RealCost != nil {
		return *it.RealCost
	}
	return it.Cost()
}

// SalePrice is the revenue the line contributes. Cost-role items
// contribute nothing. Area-priced items with a sale rate use the rate
// per square foot, or as a per-unit total in flat mode. Everything else
// falls back to unit price × qty.
func (it *LineItem) SalePrice() float64 {
	if it.Role == RoleCost {
		return 0
	}
	qty := float64(it.Quantity)
	if it.Area.Complete() && it.SaleRate != nil {
		if it.PriceMode == PriceFlatTotal {
			return *it.SaleRate * qty
		}
		return *it.SaleRate * it.Area.SquareFeet() * qty
	}
	return it.UnitPrice.Amount() * qty
}

// SetPriceMode switches between per-area and flat-total pricing,
// converting the sale rate with the area at this moment so the two
// readings describe the same line total. Switching with no complete
// area spec only records the mode.
func (it *LineItem) SetPriceMode(mode PriceMode) {
	if mode == it.PriceMode {
		return
	}
	area := it.Area.SquareFeet()
	if it.SaleRate != nil && area > 0 {
		switch mode {
		case PriceFlatTotal:
			total := *it.SaleRate * area
			it.SaleRate = &total
		case PricePerArea:
			rate := *it.SaleRate / area
			it.SaleRate = &rate
		}
	}
	it.PriceMode = mode
}

// Clone returns a copy that shares no pointers with the receiver.
func (it LineItem) Clone() LineItem {
	if it.Area != nil {
		area := *it.Area
		if area.Width != nil {
			w := *area.Width
			area.Width = &w
		}
		if area.Height != nil {
			h := *area.Height
			area.Height = &h
		}
		if area.CostPerSqFt != nil {
			c := *area.CostPerSqFt
			area.CostPerSqFt = &c
		}
		it.Area = &area
	}
	if it.SaleRate != nil {
		r := *it.SaleRate
		it.SaleRate = &r
	}
	if it.RealCost != nil {
		c := *it.RealCost
		it.RealCost = &c
	}
	if it.UnitPrice.Value != nil {
		v := *it.UnitPrice.Value
		it.UnitPrice.Value = &v
	}
	return it
}

// categoryKeywords maps categories to the description keywords that
// suggest them, in priority order. The vocabulary follows the shop's
// Spanish item descriptions.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryPrint, []string{"impresion", "banner", "vinil"}},
	{CategoryMaterials, []string{"material", "acm", "acrilico", "perfil", "mdf"}},
	{CategoryLabor, []string{"instalacion", "corte", "armado", "soldadura"}},
	{CategoryTransport, []string{"transporte", "envio", "flete", "entrega"}},
}

// Categorize guesses an item category from its description. This is a
// best-effort convenience for the form; it carries no financial weight
// and the caller is free to override the result. No match returns "".
func Categorize(description string) Category {
	lower := strings.ToLower(description)
	for _, set := range categoryKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.category
			}
		}
	}
	return ""
}

// SalePriceFromMargin derives a sale price from a cost and a target
// margin percentage: price = cost / (1 - margin/100). The margin is
// clamped to the valid range first.
func SalePriceFromMargin(cost, marginPercent float64) float64 {
	return cost / (1 - ClampMargin(marginPercent)/100)
}
