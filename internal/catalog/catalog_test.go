package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jumpstart/style-assistant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5, cat.Len())
	products := cat.Products()
	assert.Equal(t, "Summer Denim Jacket", products[0].Name)
	assert.Equal(t, "jackets", products[0].Category)
	assert.InDelta(t, 79.99, products[0].Price, 0.001)
	assert.True(t, products[0].HasTag("denim"))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `products:
  - id: 1
    name: "Wool Scarf"
    price: 24.99
    category: "accessories"
    tags: ["wool", "winter"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
	assert.Equal(t, "Wool Scarf", cat.Products()[0].Name)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("products: [notamap"), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestNewValidation(t *testing.T) {
	valid := domain.Product{ID: 1, Name: "Thing", Price: 1, Category: "stuff"}

	tests := []struct {
		name     string
		products []domain.Product
		wantErr  string
	}{
		{"non-positive id", []domain.Product{{ID: 0, Name: "x", Category: "c"}}, "id must be positive"},
		{"duplicate id", []domain.Product{valid, valid}, "duplicate product id"},
		{"empty name", []domain.Product{{ID: 1, Category: "c"}}, "name cannot be empty"},
		{"negative price", []domain.Product{{ID: 1, Name: "x", Price: -1, Category: "c"}}, "price cannot be negative"},
		{"empty category", []domain.Product{{ID: 1, Name: "x", Price: 1}}, "category cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.products)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	cat, err := New([]domain.Product{valid})
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
}

func TestProductsReturnsACopy(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	products := cat.Products()
	products[0].Name = "mutated"
	assert.Equal(t, "Summer Denim Jacket", cat.Products()[0].Name)
}

func TestTop(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	assert.Len(t, cat.Top(3), 3)
	assert.Equal(t, 1, cat.Top(3)[0].ID)
	assert.Len(t, cat.Top(10), 5)
	assert.Empty(t, cat.Top(0))
}

func TestPicks(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	picks := cat.Picks(0, 2, 4)
	require.Len(t, picks, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{picks[0].ID, picks[1].ID, picks[2].ID})

	// Out-of-range positions are skipped.
	assert.Len(t, cat.Picks(0, 99), 1)
	assert.Empty(t, cat.Picks(-1))
}
