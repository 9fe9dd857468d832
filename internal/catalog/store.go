// Package catalog answers read-only queries over the product document.
// The document is re-read on every call so edits to it are picked up
// without a restart.
package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/arvindks/voicecart/pkg/logger"
)

type Store struct {
	path string
	log  logger.Logger
}

func NewStore(path string, log logger.Logger) *Store {
	return &Store{path: path, log: log}
}

type document struct {
	Products []Product `json:"products"`
}

// Load reads the full catalog. A missing or malformed document is logged
// and treated as an empty catalog; callers must handle zero products.
func (s *Store) Load() []Product {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Error("catalog file not readable", logger.String("path", s.path), logger.Err(err))
		return nil
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Error("catalog json malformed", logger.String("path", s.path), logger.Err(err))
		return nil
	}
	return doc.Products
}

// List returns products matching all set filters, in document order.
func (s *Store) List(f Filters) []Product {
	products := s.Load()
	if f.isZero() {
		return products
	}

	wantCategory := normalizeCategory(f.Category)
	wantColor := strings.ToLower(f.Color)

	var out []Product
	for _, p := range products {
		if f.Category != "" && normalizeCategory(p.Category) != wantCategory {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.Color != "" && !strings.Contains(strings.ToLower(p.Attributes["color"]), wantColor) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Search matches query as a case-insensitive substring of name,
// description or category.
func (s *Store) Search(query string) []Product {
	q := strings.ToLower(query)
	var out []Product
	for _, p := range s.Load() {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) GetByID(id string) (Product, bool) {
	for _, p := range s.Load() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// normalizeCategory folds spoken category variants onto one key:
// case, whitespace, hyphens and a single plural "s" are ignored, so
// "T-Shirts", "tshirt" and "TShirt" compare equal.
func normalizeCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.TrimSuffix(s, "s")
}
