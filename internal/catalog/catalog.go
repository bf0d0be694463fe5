// Package catalog provides the static in-memory product catalog.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/jumpstart/style-assistant/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog is a read-only product list with filtering helpers.
type Catalog struct {
	products []domain.Product
}

// Load reads the catalog from a YAML file, or from the embedded default
// catalog when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultCatalogYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
	}

	var doc struct {
		Products []domain.Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return New(doc.Products)
}

// New creates a catalog from a product list, validating the records.
func New(products []domain.Product) (*Catalog, error) {
	seen := make(map[int]bool, len(products))
	for _, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %q: id must be positive", p.Name)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = true
		if p.Name == "" {
			return nil, fmt.Errorf("product %d: name cannot be empty", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d: price cannot be negative", p.ID)
		}
		if p.Category == "" {
			return nil, fmt.Errorf("product %d: category cannot be empty", p.ID)
		}
	}
	return &Catalog{products: products}, nil
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of the full catalog in stable order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Top returns the first n catalog products.
func (c *Catalog) Top(n int) []domain.Product {
	if n > len(c.products) {
		n = len(c.products)
	}
	out := make([]domain.Product, n)
	copy(out, c.products[:n])
	return out
}

// Picks returns the products at the given catalog positions, skipping
// positions past the end.
func (c *Catalog) Picks(positions ...int) []domain.Product {
	out := make([]domain.Product, 0, len(positions))
	for _, i := range positions {
		if i >= 0 && i < len(c.products) {
			out = append(out, c.products[i])
		}
	}
	return out
}
