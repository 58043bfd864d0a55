package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/store"
)

// HandleQuoteDelete returns a handler that deletes a saved quote.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing quote ID"})
		}

		quotes := store.NewQuoteStore(app)
		if err := quotes.DeleteByID(quoteID); err != nil {
			log.Printf("quote_delete: could not delete quote %s: %v", quoteID, err)
			return e.JSON(http.StatusNotFound, map[string]string{"error": "Quote not found"})
		}

		return e.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	}
}
