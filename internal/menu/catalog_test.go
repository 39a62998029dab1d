package menu

import "testing"

func TestCatalog_Shape(t *testing.T) {
	items := Catalog()
	if len(items) != 43 {
		t.Fatalf("catalog has %d items, want 43", len(items))
	}

	wantCategories := map[string]int{
		"Hambúrgueres":      6,
		"Pizzas":            6,
		"Pratos Principais": 6,
		"Acompanhamentos":   6,
		"Bebidas":           7,
		"Sobremesas":        7,
		"Entradas":          5,
	}
	got := make(map[string]int)
	names := make(map[string]bool)
	for _, item := range items {
		if item.Name == "" {
			t.Fatalf("catalog item with empty name: %+v", item)
		}
		if names[item.Name] {
			t.Fatalf("duplicate catalog item %q", item.Name)
		}
		names[item.Name] = true
		if item.Price <= 0 {
			t.Fatalf("item %q has non-positive price %.2f", item.Name, item.Price)
		}
		if item.Glyph == "" || item.Description == "" {
			t.Fatalf("item %q missing glyph or description", item.Name)
		}
		got[item.Category]++
	}

	if len(got) != len(wantCategories) {
		t.Fatalf("catalog has %d categories, want %d", len(got), len(wantCategories))
	}
	for cat, n := range wantCategories {
		if got[cat] != n {
			t.Fatalf("category %q has %d items, want %d", cat, got[cat], n)
		}
	}
}
