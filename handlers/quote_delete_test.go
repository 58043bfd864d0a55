package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cotizador/services"
	"cotizador/store"
	"cotizador/testhelpers"
)

func TestHandleQuoteDelete_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	q := testhelpers.NewTestQuote(t, services.ModeGeneral, "Borrar Esta")
	id, err := store.NewQuoteStore(app).Save(q)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	handler := HandleQuoteDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/api/quotes/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if _, err := app.FindRecordById("quotes", id); err == nil {
		t.Error("expected quote to be deleted")
	}
}

func TestHandleQuoteDelete_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/api/quotes/nonexistent", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
