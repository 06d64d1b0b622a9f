// Package itinerary loads and validates static trip definition files.
package itinerary

import (
	"fmt"
	"os"

	"tripdash/internal/model"

	"github.com/BurntSushi/toml"
)

// Load reads a trip definition from a TOML file and validates it.
func Load(path string) (*model.Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trip file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a trip definition from raw TOML.
func Parse(data []byte) (*model.Trip, error) {
	var trip model.Trip
	if err := toml.Unmarshal(data, &trip); err != nil {
		return nil, fmt.Errorf("parsing trip file: %w", err)
	}
	if err := Validate(&trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// Validate checks the structural invariants of a trip definition:
// at least one phase, unique non-empty phase IDs, non-negative miles and
// hours, and non-negative budget allocations.
func Validate(trip *model.Trip) error {
	if len(trip.Phases) == 0 {
		return fmt.Errorf("trip %q has no phases", trip.Name)
	}

	seen := make(map[string]struct{}, len(trip.Phases))
	for _, p := range trip.Phases {
		if p.ID == "" {
			return fmt.Errorf("phase %q has an empty id", p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate phase id %q", p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.Miles < 0 {
			return fmt.Errorf("phase %q has negative miles", p.ID)
		}
		if p.Hours < 0 {
			return fmt.Errorf("phase %q has negative hours", p.ID)
		}
	}

	for cat, amount := range trip.Budget {
		if amount < 0 {
			return fmt.Errorf("budget category %q has negative allocation", cat)
		}
	}

	seenCat := make(map[string]struct{}, len(trip.Packing.Categories))
	for _, c := range trip.Packing.Categories {
		if c.Name == "" {
			return fmt.Errorf("packing category with empty name")
		}
		if _, dup := seenCat[c.Name]; dup {
			return fmt.Errorf("duplicate packing category %q", c.Name)
		}
		seenCat[c.Name] = struct{}{}
	}

	return nil
}

// Save writes a trip definition to disk as TOML.
func Save(trip *model.Trip, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating trip file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(trip)
}
