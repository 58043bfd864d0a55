package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/collections"
	"cotizador/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Form options ─────────────────────────────────────────
		se.Router.GET("/api/cotizador/options", handlers.HandleOptions(app))

		// ── Stateless recompute ──────────────────────────────────
		se.Router.POST("/api/cotizador/compute", handlers.HandleQuoteCompute(app))

		// ── Quote CRUD ───────────────────────────────────────────
		se.Router.GET("/api/cotizador/quotes", handlers.HandleQuoteList(app))
		se.Router.POST("/api/cotizador/quotes", handlers.HandleQuoteSave(app))
		se.Router.GET("/api/cotizador/quotes/{id}", handlers.HandleQuoteView(app))
		se.Router.DELETE("/api/cotizador/quotes/{id}", handlers.HandleQuoteDelete(app))
		se.Router.POST("/api/cotizador/quotes/{id}/duplicate", handlers.HandleQuoteDuplicate(app))

		// ── Exports ──────────────────────────────────────────────
		se.Router.GET("/api/cotizador/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))
		se.Router.GET("/api/cotizador/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(app))
		se.Router.GET("/api/cotizador/quotes/{id}/export/json", handlers.HandleQuoteExportJSON(app))

		// Redirect home to the quote listing
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/api/cotizador/quotes")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
