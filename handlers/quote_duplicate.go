package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/store"
)

// HandleQuoteDuplicate returns a handler that saves a copy of an
// existing quote under a " (Copia)" name and responds with the new id.
func HandleQuoteDuplicate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing quote ID"})
		}

		quotes := store.NewQuoteStore(app)
		q, err := quotes.LoadByID(quoteID)
		if err != nil {
			log.Printf("quote_duplicate: could not load quote %s: %v", quoteID, err)
			return e.JSON(http.StatusNotFound, map[string]string{"error": "Quote not found"})
		}

		dup := q.Duplicate()
		id, err := quotes.Save(dup)
		if err != nil {
			log.Printf("quote_duplicate: failed to save copy of %s: %v", quoteID, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to duplicate quote"})
		}

		return e.JSON(http.StatusOK, map[string]any{"id": id, "name": dup.Name})
	}
}
