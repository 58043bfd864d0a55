// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"cotizador/collections"
	"cotizador/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create the quotes
// table. The temporary directory is cleaned up automatically when the
// test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// NewTestQuote builds an in-memory quote with two line items: a print
// item costing 300 selling at 500 and a labor cost line of 100. The
// quote is recomputed so the suggested final price is populated.
func NewTestQuote(t *testing.T, mode services.Mode, name string) *services.Quote {
	t.Helper()

	q := services.NewQuote(mode, name)

	printItem := services.NewLineItem("impresion banner", 1)
	printItem.IsPrint = true
	printItem.Area = &services.AreaSpec{
		Width:       floatPtr(10),
		Height:      floatPtr(5),
		Unit:        services.UnitFoot,
		CostPerSqFt: floatPtr(6),
	}
	printItem.SaleRate = floatPtr(10)
	q.Items = append(q.Items, printItem)

	labor := services.NewLineItem("instalacion", 1)
	labor.UnitPrice = services.LiteralPrice(100)
	q.Items = append(q.Items, labor)

	services.Recompute(q)
	return q
}

// AssertJSONContains checks that body contains all specified fragments.
func AssertJSONContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func floatPtr(v float64) *float64 { return &v }

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
