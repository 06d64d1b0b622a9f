package itinerary

import (
	"time"

	"tripdash/internal/model"
)

// Sample returns the built-in demo trip. The setup wizard writes it to disk
// for first-time users, and read-only commands fall back to it when no trip
// file exists yet.
func Sample() *model.Trip {
	return &model.Trip{
		Name:      "Route 66: Chicago to Santa Monica",
		StartDate: time.Date(time.Now().Year()+1, time.June, 12, 8, 0, 0, 0, time.UTC),
		Phases: []model.Phase{
			{ID: "chi-stl", Name: "Chicago → St. Louis", Miles: 297, Hours: 4.5},
			{ID: "stl-okc", Name: "St. Louis → Oklahoma City", Miles: 495, Hours: 7},
			{ID: "okc-ama", Name: "Oklahoma City → Amarillo", Miles: 260, Hours: 3.7},
			{ID: "ama-abq", Name: "Amarillo → Albuquerque", Miles: 289, Hours: 4.2},
			{ID: "abq-flg", Name: "Albuquerque → Flagstaff", Miles: 323, Hours: 4.6},
			{ID: "flg-san", Name: "Flagstaff → Santa Monica", Miles: 476, Hours: 7},
		},
		Packing: model.PackingList{
			Categories: []model.PackingCategory{
				{Name: "Car", Items: []string{"Jumper cables", "Tire gauge", "Spare fuses", "Phone mount"}},
				{Name: "Camping", Items: []string{"Tent", "Sleeping bags", "Headlamp", "Camp stove"}},
				{Name: "Clothes", Items: []string{"Rain jacket", "Hiking boots", "Sunglasses", "Hat"}},
				{Name: "Documents", Items: []string{"License", "Insurance card", "Park passes"}},
			},
		},
		Budget: map[string]float64{
			"fuel":    800,
			"food":    500,
			"lodging": 900,
			"fun":     350,
		},
	}
}
