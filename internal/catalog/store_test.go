package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/arvindks/voicecart/pkg/logger"
)

func testProducts() []Product {
	return []Product{
		{
			ID: "mug-001", Name: "Classic Coffee Mug", Description: "Ceramic mug for your favourite brew.",
			Category: "mug", Price: 499, Currency: "INR",
			Attributes: map[string]string{"color": "white", "material": "ceramic"},
		},
		{
			ID: "tshirt-001", Name: "Black Crew Neck T-Shirt", Description: "Soft cotton tee.",
			Category: "T-Shirts", Price: 899, Currency: "INR",
			Attributes: map[string]string{"color": "black", "sizes": "S, M, L"},
		},
		{
			ID: "hoodie-001", Name: "Black Fleece Hoodie", Description: "Heavyweight fleece hoodie.",
			Category: "hoodie", Price: 1499, Currency: "INR",
			Attributes: map[string]string{"color": "black"},
		},
		{
			ID: "hoodie-002", Name: "Grey Zip-Up Hoodie", Description: "Mid-weight zip-up hoodie.",
			Category: "hoodie", Price: 1599, Currency: "INR",
			Attributes: map[string]string{"color": "grey"},
		},
	}
}

func newTestStore(t *testing.T, products []Product) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	raw, err := json.Marshal(document{Products: products})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return NewStore(path, logger.NewNop())
}

func int64p(n int64) *int64 { return &n }

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestGetByID_ReturnsLoadedProduct(t *testing.T) {
	s := newTestStore(t, testProducts())

	for _, want := range s.Load() {
		got, ok := s.GetByID(want.ID)
		if !ok {
			t.Fatalf("GetByID(%q): not found", want.ID)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("GetByID(%q) = %+v, want %+v", want.ID, got, want)
		}
	}
}

func TestGetByID_NotFound(t *testing.T) {
	s := newTestStore(t, testProducts())
	if _, ok := s.GetByID("mug-999"); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestList_NoFiltersReturnsAll(t *testing.T) {
	s := newTestStore(t, testProducts())
	if got := s.List(Filters{}); len(got) != 4 {
		t.Fatalf("got %d products, want 4", len(got))
	}
}

func TestList_CategoryNormalization(t *testing.T) {
	s := newTestStore(t, testProducts())

	// Spoken variants of the same category must be equivalent.
	for _, cat := range []string{"Tshirt", "T-Shirts", "t shirt", "TSHIRT"} {
		got := s.List(Filters{Category: cat})
		if len(got) != 1 || got[0].ID != "tshirt-001" {
			t.Fatalf("List(category=%q) = %v, want [tshirt-001]", cat, ids(got))
		}
	}
}

func TestList_PriceRange(t *testing.T) {
	s := newTestStore(t, testProducts())

	got := s.List(Filters{MinPrice: int64p(800), MaxPrice: int64p(1500)})
	for _, p := range got {
		if p.Price < 800 || p.Price > 1500 {
			t.Fatalf("product %s price %d outside [800,1500]", p.ID, p.Price)
		}
	}
	if len(got) != 2 {
		t.Fatalf("got %v, want tshirt-001 and hoodie-001", ids(got))
	}
}

func TestList_InvertedPriceRangeIsEmpty(t *testing.T) {
	s := newTestStore(t, testProducts())
	if got := s.List(Filters{MinPrice: int64p(1000), MaxPrice: int64p(500)}); len(got) != 0 {
		t.Fatalf("got %v, want empty", ids(got))
	}
}

func TestList_CategoryAndColor(t *testing.T) {
	s := newTestStore(t, testProducts())

	got := s.List(Filters{Category: "hoodie", Color: "black"})
	if len(got) != 1 || got[0].ID != "hoodie-001" {
		t.Fatalf("got %v, want [hoodie-001]", ids(got))
	}
}

func TestList_ColorIsSubstringMatch(t *testing.T) {
	s := newTestStore(t, []Product{
		{ID: "bottle-001", Name: "Bottle", Category: "accessory", Price: 699,
			Attributes: map[string]string{"color": "matte black"}},
	})
	if got := s.List(Filters{Color: "Black"}); len(got) != 1 {
		t.Fatalf("substring color match failed: %v", ids(got))
	}
}

func TestSearch_MatchesNameDescriptionCategory(t *testing.T) {
	s := newTestStore(t, testProducts())
	all := s.Load()

	got := s.Search("HOODIE")
	if len(got) != 2 {
		t.Fatalf("Search(HOODIE) = %v, want 2 hoodies", ids(got))
	}
	for _, p := range got {
		hay := strings.ToLower(p.Name + " " + p.Description + " " + p.Category)
		if !strings.Contains(hay, "hoodie") {
			t.Fatalf("result %s does not contain query", p.ID)
		}
		found := false
		for _, cand := range all {
			if cand.ID == p.ID {
				found = true
			}
		}
		if !found {
			t.Fatalf("result %s is not part of the catalog", p.ID)
		}
	}

	if got := s.Search("brew"); len(got) != 1 || got[0].ID != "mug-001" {
		t.Fatalf("description search failed: %v", ids(got))
	}
	if got := s.Search("no such thing"); len(got) != 0 {
		t.Fatalf("got %v, want empty", ids(got))
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.json"), logger.NewNop())
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("got %d products from a missing file", len(got))
	}
}

func TestLoad_MalformedFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path, logger.NewNop())
	if got := s.Load(); len(got) != 0 {
		t.Fatalf("got %d products from a malformed file", len(got))
	}
}
