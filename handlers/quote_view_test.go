package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cotizador/services"
	"cotizador/store"
	"cotizador/testhelpers"
)

func TestHandleQuoteView_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	q := testhelpers.NewTestQuote(t, services.ModeGeneral, "Ver Cotizacion")
	id, err := store.NewQuoteStore(app).Save(q)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	handler := HandleQuoteView(app)
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Quote    services.Quote    `json:"quote"`
		Snapshot services.Snapshot `json:"snapshot"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Quote.Name != "Ver Cotizacion" {
		t.Errorf("quote name = %q", resp.Quote.Name)
	}
	if len(resp.Quote.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(resp.Quote.Items))
	}
	if resp.Snapshot.ProjectName != "Ver Cotizacion" {
		t.Errorf("snapshot project name = %q", resp.Snapshot.ProjectName)
	}
}

func TestHandleQuoteView_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteView(app)

	req := httptest.NewRequest(http.MethodGet, "/api/quotes/nonexistent", nil)
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

func TestHandleQuoteView_MissingID(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteView(app)

	req := httptest.NewRequest(http.MethodGet, "/api/quotes/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
