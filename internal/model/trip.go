// Package model defines domain types for tripdash itineraries and session state.
package model

import "time"

// Phase is one leg of a trip. Phases are immutable once the trip is loaded.
type Phase struct {
	ID    string  `toml:"id"`
	Name  string  `toml:"name"`
	Miles float64 `toml:"miles"`
	Hours float64 `toml:"hours"`
}

// PackingCategory groups an ordered list of packing items under a name.
type PackingCategory struct {
	Name  string   `toml:"name"`
	Items []string `toml:"items"`
}

// Trip is the static description of a road trip. It is loaded once at
// startup and never mutated; all session state references it by phase ID
// or by (category, item) name.
type Trip struct {
	Name      string            `toml:"name"`
	StartDate time.Time         `toml:"start_date"`
	Phases    []Phase           `toml:"phase"`
	Packing   PackingList       `toml:"packing"`
	Budget    map[string]float64 `toml:"budget"`
}

// PackingList wraps the ordered packing categories.
type PackingList struct {
	Categories []PackingCategory `toml:"category"`
}

// PhaseByID returns the phase with the given id, or nil if no phase has it.
func (t *Trip) PhaseByID(id string) *Phase {
	for i := range t.Phases {
		if t.Phases[i].ID == id {
			return &t.Phases[i]
		}
	}
	return nil
}

// PackingCategoryByName returns the packing category with the given name,
// or nil if absent.
func (t *Trip) PackingCategoryByName(name string) *PackingCategory {
	for i := range t.Packing.Categories {
		if t.Packing.Categories[i].Name == name {
			return &t.Packing.Categories[i]
		}
	}
	return nil
}

// HasPackingItem reports whether the trip's packing list contains the item
// under the given category.
func (t *Trip) HasPackingItem(category, item string) bool {
	c := t.PackingCategoryByName(category)
	if c == nil {
		return false
	}
	for _, it := range c.Items {
		if it == item {
			return true
		}
	}
	return false
}

// TotalPackingItems returns the number of items across all categories.
func (t *Trip) TotalPackingItems() int {
	n := 0
	for _, c := range t.Packing.Categories {
		n += len(c.Items)
	}
	return n
}
