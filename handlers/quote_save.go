package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/services"
	"cotizador/store"
)

// HandleQuoteSave returns a handler that creates or updates a quote
// from a JSON payload and responds with the saved id and the derived
// snapshot.
func HandleQuoteSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload quotePayload
		if err := e.BindBody(&payload); err != nil {
			log.Printf("quote_save: bad payload: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid quote payload"})
		}

		q, err := quoteFromPayload(payload)
		if err != nil {
			log.Printf("quote_save: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		quotes := store.NewQuoteStore(app)
		id, err := quotes.Save(q)
		if err != nil {
			log.Printf("quote_save: failed to save %q: %v", q.Name, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save quote"})
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":       id,
			"snapshot": services.BuildSnapshot(q),
		})
	}
}
