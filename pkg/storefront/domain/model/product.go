package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type Category int

const (
	Machine Category = iota
	SparePart
)

func (c Category) String() string {
	switch c {
	case Machine:
		return "machine"
	case SparePart:
		return "spare-part"
	}
	return "unknown"
}

func ParseCategory(s string) (Category, error) {
	switch s {
	case "machine":
		return Machine, nil
	case "spare-part":
		return SparePart, nil
	}
	return 0, fmt.Errorf("unknown product category %q", s)
}

type Availability int

const (
	InStock Availability = iota
	LowStock
	OutOfStock
)

func (a Availability) String() string {
	switch a {
	case InStock:
		return "in-stock"
	case LowStock:
		return "low-stock"
	case OutOfStock:
		return "out-of-stock"
	}
	return "unknown"
}

func ParseAvailability(s string) (Availability, error) {
	switch s {
	case "in-stock":
		return InStock, nil
	case "low-stock":
		return LowStock, nil
	case "out-of-stock":
		return OutOfStock, nil
	}
	return 0, fmt.Errorf("unknown availability %q", s)
}

// Product is immutable for the lifetime of a session.
// CompatibleParts is only populated on machines and holds the IDs of
// spare parts that fit the machine; parts never reference machines back.
type Product struct {
	ID              string
	Name            string
	Description     string
	Price           decimal.Decimal
	Image           string
	Category        Category
	Availability    Availability
	Specifications  map[string]string
	CompatibleParts []string
}

type CatalogSource interface {
	ListProducts() ([]Product, error)
}
