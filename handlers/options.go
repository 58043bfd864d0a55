package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/services"
)

// HandleOptions returns a handler serving the static form option lists
// (units, categories, modes, margin and commission presets).
func HandleOptions(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"units":       services.UnitOptions,
			"categories":  services.CategoryOptions,
			"modes":       services.ModeOptions,
			"margins":     services.MarginOptions,
			"commissions": services.CommissionOptions,
		})
	}
}
