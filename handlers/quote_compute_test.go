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

func TestHandleQuoteCompute_Stateless(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteCompute(app)

	req := newJSONRequest(http.MethodPost, "/api/quotes/compute", generalQuoteBody)
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
	if math.Abs(resp.Snapshot.Totals.Cost-400) > 0.01 {
		t.Errorf("cost total = %v, want 400", resp.Snapshot.Totals.Cost)
	}
	if math.Abs(resp.Snapshot.SuggestedPrice-666.67) > 0.01 {
		t.Errorf("suggested price = %v, want 666.67", resp.Snapshot.SuggestedPrice)
	}

	// Nothing persisted.
	records, err := app.FindRecordsByFilter("quotes", "id != ''", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("compute persisted %d records", len(records))
	}
}

func TestHandleQuoteCompute_FormulaUnitPrice(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteCompute(app)

	body := `{
		"mode": "general",
		"name": "Con Formula",
		"items": [{"description": "corte", "quantity": 2, "unit_price": "=10*(2+3)"}]
	}`
	req := newJSONRequest(http.MethodPost, "/api/quotes/compute", body)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Snapshot services.Snapshot `json:"snapshot"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if math.Abs(resp.Snapshot.Totals.Cost-100) > 0.01 {
		t.Errorf("cost total = %v, want 100 (formula 50 x qty 2)", resp.Snapshot.Totals.Cost)
	}
}

func TestHandleQuoteCompute_BadBody(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteCompute(app)

	req := newJSONRequest(http.MethodPost, "/api/quotes/compute", `{not json`)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
