// Package collections programmatically creates the PocketBase schema
// for persisted quotes.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup ensures the quotes collection exists. Line items are stored as
// a JSON column: the engine owns their shape and nothing queries into
// individual items.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.SelectField{
			Name:      "mode",
			Required:  true,
			Values:    []string{"general", "print", "combined"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "client", Required: false})
		c.Fields.Add(&core.TextField{Name: "note", Required: false})
		c.Fields.Add(&core.JSONField{Name: "items", Required: false})
		c.Fields.Add(&core.NumberField{Name: "target_margin_percent", Required: false})
		c.Fields.Add(&core.NumberField{Name: "commission_percent", Required: false})
		c.Fields.Add(&core.NumberField{Name: "final_price", Required: false})
		c.Fields.Add(&core.BoolField{Name: "final_price_manual", Required: false})
		c.Fields.Add(&core.NumberField{Name: "cost_total", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
