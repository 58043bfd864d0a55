package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/services"
	"cotizador/store"
)

// HandleQuoteView returns a handler that loads one quote together with
// its derived snapshot.
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing quote ID"})
		}

		quotes := store.NewQuoteStore(app)
		q, err := quotes.LoadByID(quoteID)
		if err != nil {
			log.Printf("quote_view: could not load quote %s: %v", quoteID, err)
			return e.JSON(http.StatusNotFound, map[string]string{"error": "Quote not found"})
		}

		services.Recompute(q)
		return e.JSON(http.StatusOK, map[string]any{
			"quote":    q,
			"snapshot": services.BuildSnapshot(q),
		})
	}
}
