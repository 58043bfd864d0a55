package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/services"
)

// HandleQuoteCompute returns a handler that derives a snapshot from a
// quote payload without persisting anything. The form calls it after
// every edit to refresh totals, suggested price and profit figures.
func HandleQuoteCompute(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload quotePayload
		if err := e.BindBody(&payload); err != nil {
			log.Printf("quote_compute: bad payload: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid quote payload"})
		}

		q, err := quoteFromPayload(payload)
		if err != nil {
			log.Printf("quote_compute: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"quote":    q,
			"snapshot": services.BuildSnapshot(q),
		})
	}
}
