package service

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ralphmarondev/varicacao/pkg/storefront/domain/model"
)

type SortKey string

const (
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// CatalogQuery selects and orders a product listing. An empty or "all"
// category passes everything through; an empty search matches everything.
type CatalogQuery struct {
	Category string
	Search   string
	Sort     SortKey
}

type CatalogService interface {
	ListProducts(query CatalogQuery) ([]model.Product, error)
	FindProduct(id string) (*model.Product, error)
	CompatibleParts(machineID string) ([]model.Product, error)
}

func NewCatalogService(source model.CatalogSource) CatalogService {
	return &catalogService{source: source}
}

type catalogService struct {
	source model.CatalogSource
}

func (s *catalogService) ListProducts(query CatalogQuery) ([]model.Product, error) {
	products, err := s.source.ListProducts()
	if err != nil {
		return nil, err
	}
	return FilterAndSort(products, query), nil
}

func (s *catalogService) FindProduct(id string) (*model.Product, error) {
	products, err := s.source.ListProducts()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, model.ErrProductNotFound
}

func (s *catalogService) CompatibleParts(machineID string) ([]model.Product, error) {
	machine, err := s.FindProduct(machineID)
	if err != nil {
		return nil, err
	}

	parts := make([]model.Product, 0, len(machine.CompatibleParts))
	for _, partID := range machine.CompatibleParts {
		part, err := s.FindProduct(partID)
		if err != nil {
			// A dangling part reference is a catalog data bug, not a
			// reason to fail the detail view.
			continue
		}
		parts = append(parts, *part)
	}
	return parts, nil
}

// FilterAndSort is pure: the source slice is never mutated and identical
// inputs always produce the same ordering. Ties keep input order.
func FilterAndSort(products []model.Product, query CatalogQuery) []model.Product {
	search := strings.ToLower(query.Search)

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p, query.Category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, query.Sort)
	return filtered
}

func matchesCategory(p model.Product, category string) bool {
	if category == "" || category == "all" {
		return true
	}
	return p.Category.String() == category
}

func sortProducts(products []model.Product, key SortKey) {
	switch key {
	case SortNameAsc, SortNameDesc:
		coll := collate.New(language.English, collate.Loose)
		sort.SliceStable(products, func(i, j int) bool {
			if key == SortNameAsc {
				return coll.CompareString(products[i].Name, products[j].Name) < 0
			}
			return coll.CompareString(products[j].Name, products[i].Name) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price.LessThan(products[i].Price)
		})
	}
}
