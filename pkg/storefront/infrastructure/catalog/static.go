package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/model"
)

// StaticSource serves a fixed in-memory product list.
type StaticSource struct {
	products []model.Product
}

var _ model.CatalogSource = &StaticSource{}

func NewStaticSource(products []model.Product) *StaticSource {
	return &StaticSource{products: products}
}

func (s *StaticSource) ListProducts() ([]model.Product, error) {
	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	return products, nil
}

// BuiltIn returns the demo catalog used when no catalog file is
// configured: industrial machines plus the spare parts that fit them.
func BuiltIn() *StaticSource {
	return NewStaticSource([]model.Product{
		{
			ID:          "1",
			Name:        "Industrial Mixer XL2000",
			Description: "High-capacity industrial mixer for commercial applications. Features variable speed control and stainless steel construction.",
			Price:       decimal.RequireFromString("2499.99"),
			Image:       "https://images.unsplash.com/photo-1581092918056-0c4c3acd3789?w=500&q=80",
			Category:    model.Machine,
			Specifications: map[string]string{
				"Capacity": "200 L",
				"Power":    "5.5 kW",
				"Material": "Stainless steel",
			},
			CompatibleParts: []string{"3", "5"},
		},
		{
			ID:          "2",
			Name:        "Conveyor Belt System",
			Description: "Modular conveyor belt system for industrial use. Adjustable speed and height.",
			Price:       decimal.RequireFromString("3299.99"),
			Image:       "https://images.unsplash.com/photo-1581092918056-0c4c3acd3789?w=500&q=80",
			Category:    model.Machine,
			Specifications: map[string]string{
				"Belt width": "600 mm",
				"Length":     "6 m",
			},
			CompatibleParts: []string{"4", "5"},
		},
		{
			ID:          "3",
			Name:        "Mixer Blade Assembly",
			Description: "Replacement blade assembly for Industrial Mixer XL2000.",
			Price:       decimal.RequireFromString("149.99"),
			Image:       "https://images.unsplash.com/photo-1581092918056-0c4c3acd3789?w=500&q=80",
			Category:    model.SparePart,
		},
		{
			ID:           "4",
			Name:         "Conveyor Belt Replacement",
			Description:  "Replacement belt for Conveyor Belt System. Heavy-duty rubber construction.",
			Price:        decimal.RequireFromString("299.99"),
			Image:        "https://images.unsplash.com/photo-1581092918056-0c4c3acd3789?w=500&q=80",
			Category:     model.SparePart,
			Availability: model.OutOfStock,
		},
		{
			ID:           "5",
			Name:         "Control Panel Unit",
			Description:  "Replacement control panel for Industrial Mixer XL2000 and Conveyor Belt System.",
			Price:        decimal.RequireFromString("399.99"),
			Image:        "https://images.unsplash.com/photo-1581092918056-0c4c3acd3789?w=500&q=80",
			Category:     model.SparePart,
			Availability: model.LowStock,
		},
		{
			ID:          "6",
			Name:        "Packaging Machine Pro",
			Description: "Automated packaging machine for high-volume production lines.",
			Price:       decimal.RequireFromString("4999.99"),
			Image:       "https://images.unsplash.com/photo-1581092918056-0c4c3acd3789?w=500&q=80",
			Category:    model.Machine,
		},
	})
}
