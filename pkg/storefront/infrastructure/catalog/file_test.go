package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/model"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewFileSource(t *testing.T) {
	t.Run("loads products with defaults applied", func(t *testing.T) {
		path := writeCatalog(t, `{
			"products": [
				{
					"id": "m1",
					"name": "Industrial Mixer XL2000",
					"description": "High-capacity industrial mixer.",
					"price": 2499.99,
					"category": "machine",
					"compatibleParts": ["p1"]
				},
				{
					"id": "p1",
					"name": "Mixer Blade Assembly",
					"price": 149.99,
					"category": "spare-part",
					"availability": "low-stock"
				}
			]
		}`)

		source, err := NewFileSource(path)
		require.NoError(t, err)

		products, err := source.ListProducts()
		require.NoError(t, err)
		require.Len(t, products, 2)

		assert.Equal(t, model.Machine, products[0].Category)
		assert.Equal(t, model.InStock, products[0].Availability)
		assert.Equal(t, "2499.99", products[0].Price.StringFixed(2))
		assert.Equal(t, []string{"p1"}, products[0].CompatibleParts)
		assert.Equal(t, model.LowStock, products[1].Availability)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		path := writeCatalog(t, `{
			"products": [
				{"id": "x", "name": "A", "price": 1, "category": "machine"},
				{"id": "x", "name": "B", "price": 2, "category": "machine"}
			]
		}`)

		_, err := NewFileSource(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate id")
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		path := writeCatalog(t, `{
			"products": [{"id": "x", "name": "A", "price": -1, "category": "machine"}]
		}`)

		_, err := NewFileSource(path)
		assert.Error(t, err)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		path := writeCatalog(t, `{
			"products": [{"id": "x", "name": "A", "price": 1, "category": "gadget"}]
		}`)

		_, err := NewFileSource(path)
		assert.Error(t, err)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := NewFileSource(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
}
