package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"cotizador/services"
	"cotizador/testhelpers"
)

const generalQuoteBody = `{
	"mode": "general",
	"name": "Letrero Colmado",
	"client": "Colmado La Esquina",
	"items": [
		{"description": "impresion banner", "quantity": 1, "width": 10, "height": 5, "unit": "foot", "cost_per_sqft": 6, "sale_rate": 10, "is_print": true},
		{"description": "instalacion", "quantity": 1, "unit_price": "100"}
	]
}`

func TestHandleQuoteSave_CreatesAndComputes(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteSave(app)

	req := newJSONRequest(http.MethodPost, "/api/quotes", generalQuoteBody)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID       string            `json:"id"`
		Snapshot services.Snapshot `json:"snapshot"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected a saved record id")
	}
	// 100 non-print cost at 40% margin plus 500 print sale.
	if math.Abs(resp.Snapshot.SuggestedPrice-666.67) > 0.01 {
		t.Errorf("suggested price = %v, want 666.67", resp.Snapshot.SuggestedPrice)
	}
	if resp.Snapshot.FinalPriceManual {
		t.Error("final price should not be manual without input")
	}

	if _, err := app.FindRecordById("quotes", resp.ID); err != nil {
		t.Errorf("saved record not found: %v", err)
	}
}

func TestHandleQuoteSave_ManualFinalPriceRederivesMargin(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteSave(app)

	body := `{
		"mode": "general",
		"name": "Precio Manual",
		"items": [{"description": "material acm", "quantity": 1, "unit_price": "100"}],
		"final_price": "150"
	}`
	req := newJSONRequest(http.MethodPost, "/api/quotes", body)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Snapshot services.Snapshot `json:"snapshot"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Snapshot.FinalPriceManual {
		t.Error("expected manual final price")
	}
	if math.Abs(resp.Snapshot.FinalPrice-150) > 0.01 {
		t.Errorf("final price = %v, want 150", resp.Snapshot.FinalPrice)
	}
	// (150-100)/150 = 33.33%.
	if math.Abs(resp.Snapshot.TargetMarginPercent-33.33) > 0.01 {
		t.Errorf("rederived margin = %v, want 33.33", resp.Snapshot.TargetMarginPercent)
	}
}

func TestHandleQuoteSave_RejectsBadMode(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteSave(app)

	req := newJSONRequest(http.MethodPost, "/api/quotes", `{"mode": "wholesale", "name": "X", "items": []}`)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleQuoteSave_RejectsMissingName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteSave(app)

	req := newJSONRequest(http.MethodPost, "/api/quotes", `{"mode": "general", "items": []}`)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
