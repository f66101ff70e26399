package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/model"
)

type productJSON struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Price           decimal.Decimal   `json:"price"`
	Image           string            `json:"image"`
	Category        string            `json:"category"`
	Availability    string            `json:"availability"`
	Specifications  map[string]string `json:"specifications"`
	CompatibleParts []string          `json:"compatibleParts"`
}

type catalogJSON struct {
	Products []productJSON `json:"products"`
}

// FileSource serves a read-only catalog loaded once from a JSON file.
type FileSource struct {
	products []model.Product
}

var _ model.CatalogSource = &FileSource{}

func NewFileSource(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog file")
	}

	var decoded catalogJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, errors.Wrap(err, "parse catalog file")
	}

	seen := make(map[string]struct{}, len(decoded.Products))
	products := make([]model.Product, 0, len(decoded.Products))
	for _, p := range decoded.Products {
		product, err := p.toModel()
		if err != nil {
			return nil, errors.Wrapf(err, "catalog product %q", p.ID)
		}
		if _, dup := seen[product.ID]; dup {
			return nil, fmt.Errorf("catalog product %q: duplicate id", product.ID)
		}
		seen[product.ID] = struct{}{}
		products = append(products, product)
	}

	return &FileSource{products: products}, nil
}

func (s *FileSource) ListProducts() ([]model.Product, error) {
	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	return products, nil
}

func (p productJSON) toModel() (model.Product, error) {
	if p.ID == "" {
		return model.Product{}, fmt.Errorf("missing id")
	}
	if p.Price.IsNegative() {
		return model.Product{}, fmt.Errorf("negative price %s", p.Price)
	}

	category, err := model.ParseCategory(p.Category)
	if err != nil {
		return model.Product{}, err
	}

	availability := model.InStock
	if p.Availability != "" {
		availability, err = model.ParseAvailability(p.Availability)
		if err != nil {
			return model.Product{}, err
		}
	}

	return model.Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Image:           p.Image,
		Category:        category,
		Availability:    availability,
		Specifications:  p.Specifications,
		CompatibleParts: p.CompatibleParts,
	}, nil
}
