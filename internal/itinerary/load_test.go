package itinerary

import (
	"strings"
	"testing"
)

const validTrip = `
name = "Test Trip"
start_date = 2027-06-12T08:00:00Z

[[phase]]
id = "a"
name = "Leg A"
miles = 100
hours = 2

[[phase]]
id = "b"
name = "Leg B"
miles = 150
hours = 3

[[packing.category]]
name = "Car"
items = ["Jumper cables", "Tire gauge"]

[budget]
food = 500.0
fuel = 250.5
`

func TestParseValidTrip(t *testing.T) {
	trip, err := Parse([]byte(validTrip))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(trip.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(trip.Phases))
	}
	if trip.Phases[0].ID != "a" || trip.Phases[1].ID != "b" {
		t.Fatalf("phase ids = [%s, %s], want [a, b]", trip.Phases[0].ID, trip.Phases[1].ID)
	}
	if trip.Phases[1].Miles != 150 {
		t.Fatalf("phase b miles = %.1f, want 150", trip.Phases[1].Miles)
	}
	if trip.Budget["fuel"] != 250.5 {
		t.Fatalf("fuel budget = %.2f, want 250.50", trip.Budget["fuel"])
	}
	if !trip.HasPackingItem("Car", "Tire gauge") {
		t.Fatal("expected packing item Car/Tire gauge")
	}
	if trip.HasPackingItem("Car", "Kayak") {
		t.Fatal("unexpected packing item Car/Kayak")
	}
}

func TestParseRejectsDuplicatePhaseID(t *testing.T) {
	src := strings.Replace(validTrip, `id = "b"`, `id = "a"`, 1)
	_, err := Parse([]byte(src))
	if err == nil {
		t.Fatal("Parse accepted duplicate phase id")
	}
	if !strings.Contains(err.Error(), "duplicate phase id") {
		t.Fatalf("error = %q, want duplicate phase id", err)
	}
}

func TestParseRejectsNegativeMiles(t *testing.T) {
	src := strings.Replace(validTrip, "miles = 150", "miles = -150", 1)
	_, err := Parse([]byte(src))
	if err == nil {
		t.Fatal("Parse accepted negative miles")
	}
}

func TestParseRejectsEmptyTrip(t *testing.T) {
	_, err := Parse([]byte(`name = "Empty"`))
	if err == nil {
		t.Fatal("Parse accepted a trip with no phases")
	}
}

func TestSampleIsValid(t *testing.T) {
	trip := Sample()
	if err := Validate(trip); err != nil {
		t.Fatalf("sample trip failed validation: %v", err)
	}
	if trip.TotalPackingItems() == 0 {
		t.Fatal("sample trip has no packing items")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/trip.toml"

	orig := Sample()
	if err := Save(orig, path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Name != orig.Name {
		t.Fatalf("name = %q, want %q", loaded.Name, orig.Name)
	}
	if len(loaded.Phases) != len(orig.Phases) {
		t.Fatalf("phases = %d, want %d", len(loaded.Phases), len(orig.Phases))
	}
	if loaded.Budget["fuel"] != orig.Budget["fuel"] {
		t.Fatalf("fuel budget = %.2f, want %.2f", loaded.Budget["fuel"], orig.Budget["fuel"])
	}
}
