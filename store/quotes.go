// Package store is the persistence adapter between the quoting engine
// and PocketBase. It owns the mapping from the in-memory Quote shape
// to the quotes collection (snake_case columns, items as a JSON blob);
// the engine never sees a record.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"cotizador/services"
)

// ErrNotFound is returned when no quote exists under the requested id.
var ErrNotFound = errors.New("quote not found")

// QuoteStore persists quotes in the quotes collection.
type QuoteStore struct {
	app *pocketbase.PocketBase
}

// NewQuoteStore wraps the PocketBase app.
func NewQuoteStore(app *pocketbase.PocketBase) *QuoteStore {
	return &QuoteStore{app: app}
}

// QuoteSummary is the listing row for the quote history page.
type QuoteSummary struct {
	ID         string        `json:"id"`
	Mode       services.Mode `json:"mode"`
	Name       string        `json:"name"`
	Client     string        `json:"client,omitempty"`
	CostTotal  float64       `json:"cost_total"`
	FinalPrice float64       `json:"final_price"`
	Created    string        `json:"created"`
	Updated    string        `json:"updated"`
}

// Save creates or updates the quote's record and returns the record
// id. On a successful create the quote's own ID field is filled in so
// subsequent saves update in place. The stored cost total is derived
// at save time; it exists only so listings need not unmarshal items.
func (s *QuoteStore) Save(q *services.Quote) (string, error) {
	var record *core.Record
	if q.ID != "" {
		existing, err := s.app.FindRecordById("quotes", q.ID)
		if err != nil {
			return "", fmt.Errorf("find quote %s: %w", q.ID, ErrNotFound)
		}
		record = existing
	} else {
		col, err := s.app.FindCollectionByNameOrId("quotes")
		if err != nil {
			return "", fmt.Errorf("find quotes collection: %w", err)
		}
		record = core.NewRecord(col)
	}

	itemsJSON, err := json.Marshal(q.Items)
	if err != nil {
		return "", fmt.Errorf("marshal items: %w", err)
	}

	record.Set("mode", string(q.Mode))
	record.Set("name", q.Name)
	record.Set("client", q.Client)
	record.Set("note", q.Note)
	record.Set("items", types.JSONRaw(itemsJSON))
	record.Set("target_margin_percent", q.TargetMarginPercent)
	record.Set("commission_percent", q.CommissionPercent)
	record.Set("final_price", services.EffectiveFinalPrice(q))
	record.Set("final_price_manual", q.FinalPrice.Manual)
	record.Set("cost_total", services.Aggregate(q.Mode, q.Items).Cost)

	if err := s.app.Save(record); err != nil {
		return "", fmt.Errorf("save quote: %w", err)
	}

	q.ID = record.Id
	return record.Id, nil
}

// LoadByID hydrates a quote from its record. Returns ErrNotFound for
// unknown ids.
func (s *QuoteStore) LoadByID(id string) (*services.Quote, error) {
	record, err := s.app.FindRecordById("quotes", id)
	if err != nil {
		return nil, fmt.Errorf("find quote %s: %w", id, ErrNotFound)
	}
	return recordToQuote(record)
}

// ListAll returns summaries of every stored quote, newest first.
func (s *QuoteStore) ListAll() ([]QuoteSummary, error) {
	records, err := s.app.FindRecordsByFilter("quotes", "id != ''", "-created", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	summaries := make([]QuoteSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, QuoteSummary{
			ID:         r.Id,
			Mode:       services.Mode(r.GetString("mode")),
			Name:       r.GetString("name"),
			Client:     r.GetString("client"),
			CostTotal:  r.GetFloat("cost_total"),
			FinalPrice: r.GetFloat("final_price"),
			Created:    r.GetString("created"),
			Updated:    r.GetString("updated"),
		})
	}
	return summaries, nil
}

// DeleteByID removes the quote record. Returns ErrNotFound for
// unknown ids.
func (s *QuoteStore) DeleteByID(id string) error {
	record, err := s.app.FindRecordById("quotes", id)
	if err != nil {
		return fmt.Errorf("find quote %s: %w", id, ErrNotFound)
	}
	if err := s.app.Delete(record); err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}

// recordToQuote maps a record back into the engine's Quote shape.
func recordToQuote(record *core.Record) (*services.Quote, error) {
	q := &services.Quote{
		ID:                  record.Id,
		Mode:                services.Mode(record.GetString("mode")),
		Name:                record.GetString("name"),
		Client:              record.GetString("client"),
		Note:                record.GetString("note"),
		TargetMarginPercent: record.GetFloat("target_margin_percent"),
		CommissionPercent:   record.GetFloat("commission_percent"),
	}

	if raw := record.GetString("items"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &q.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
	}

	final := record.GetFloat("final_price")
	q.FinalPrice = services.Price{
		Value:  &final,
		Manual: record.GetBool("final_price_manual"),
	}
	return q, nil
}
