package domain

// MenuItem is one purchasable catalog entry. Immutable after seeding; a
// reseed replaces the whole catalog.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Glyph       string  `json:"glyph"`
	Description string  `json:"description"`
}
