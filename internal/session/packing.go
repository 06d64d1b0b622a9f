package session

// ToggleItem flips the checked state of a packing item. Items not present in
// the trip's packing list return ErrInvalidReference and change nothing.
func (s *Session) ToggleItem(category, item string) error {
	if !s.trip.HasPackingItem(category, item) {
		return ErrInvalidReference
	}
	key := itemKey{category, item}
	s.checked[key] = !s.checked[key]
	return nil
}

// IsChecked returns the stored state for an item, or false when the item has
// never been toggled.
func (s *Session) IsChecked(category, item string) bool {
	return s.checked[itemKey{category, item}]
}

// CompletionCount returns how many of the category's items are checked.
func (s *Session) CompletionCount(category string) int {
	cat := s.trip.PackingCategoryByName(category)
	if cat == nil {
		return 0
	}
	n := 0
	for _, item := range cat.Items {
		if s.checked[itemKey{category, item}] {
			n++
		}
	}
	return n
}

// PackedTotal returns how many items are checked across all categories.
func (s *Session) PackedTotal() int {
	n := 0
	for _, cat := range s.trip.Packing.Categories {
		n += s.CompletionCount(cat.Name)
	}
	return n
}
