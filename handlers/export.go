package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/services"
	"cotizador/store"
)

// loadSnapshot fetches a quote and derives its export snapshot.
func loadSnapshot(app *pocketbase.PocketBase, quoteID string) (services.Snapshot, error) {
	quotes := store.NewQuoteStore(app)
	q, err := quotes.LoadByID(quoteID)
	if err != nil {
		return services.Snapshot{}, fmt.Errorf("quote not found: %w", err)
	}

	services.Recompute(q)
	snapshot := services.BuildSnapshot(q)
	snapshot.GeneratedDate = time.Now().Format("02 Jan 2006")
	return snapshot, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleQuoteExportPDF returns a handler that generates and downloads
// the quote as a PDF.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		snapshot, err := loadSnapshot(app, quoteID)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		pdfBytes, err := services.GeneratePDF(snapshot)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Cotizacion_%s_%d.pdf", sanitizeFilename(snapshot.ProjectName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel returns a handler that generates and downloads
// the quote as an Excel workbook.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		snapshot, err := loadSnapshot(app, quoteID)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		xlsxBytes, err := services.GenerateExcel(snapshot)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Cotizacion_%s_%d.xlsx", sanitizeFilename(snapshot.ProjectName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleQuoteExportJSON returns a handler that downloads the quote
// snapshot as a JSON document.
func HandleQuoteExportJSON(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		snapshot, err := loadSnapshot(app, quoteID)
		if err != nil {
			log.Printf("export_json: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		jsonBytes, err := services.GenerateJSON(snapshot)
		if err != nil {
			log.Printf("export_json: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate JSON file")
		}

		filename := fmt.Sprintf("Cotizacion_%s_%d.json", sanitizeFilename(snapshot.ProjectName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/json")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(jsonBytes)
		return nil
	}
}
