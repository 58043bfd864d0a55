package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/store"
)

// HandleQuoteList returns a handler that lists saved quotes, newest first.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotes := store.NewQuoteStore(app)

		summaries, err := quotes.ListAll()
		if err != nil {
			log.Printf("quote_list: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list quotes"})
		}

		return e.JSON(http.StatusOK, map[string]any{"quotes": summaries})
	}
}
