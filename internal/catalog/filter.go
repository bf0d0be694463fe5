package catalog

import (
	"strings"

	"github.com/jumpstart/style-assistant/internal/domain"
)

// ByCategory returns products whose category equals the given value or whose
// tag set contains it. An empty category returns the full catalog.
func (c *Catalog) ByCategory(category string) []domain.Product {
	if category == "" {
		return c.Products()
	}
	var out []domain.Product
	for _, p := range c.products {
		if p.Category == category || p.HasTag(category) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByEntities narrows the catalog by the extracted category and color.
// Category keeps products matching by category or tag; color keeps products
// whose name contains the color substring (case-insensitive) or whose tag
// set contains it. Either filter may be empty. The result can be empty;
// callers decide the fallback.
func (c *Catalog) FilterByEntities(category, color string) []domain.Product {
	filtered := c.Products()

	if category != "" {
		var keep []domain.Product
		for _, p := range filtered {
			if p.Category == category || p.HasTag(category) {
				keep = append(keep, p)
			}
		}
		filtered = keep
	}

	if color != "" {
		var keep []domain.Product
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Name), color) || p.HasTag(color) {
				keep = append(keep, p)
			}
		}
		filtered = keep
	}

	return filtered
}

// RelatedTo keeps the pool products that share a category or any tag with at
// least one of the prior products.
func RelatedTo(prior, pool []domain.Product) []domain.Product {
	if len(prior) == 0 {
		return pool
	}
	var out []domain.Product
	for _, candidate := range pool {
		for _, p := range prior {
			if candidate.SharesAny(p) {
				out = append(out, candidate)
				break
			}
		}
	}
	return out
}
