package products

import (
	"fmt"
	"sort"
	"strings"

	"github.com/musemart/musemart-backend/pkg/domain"
	"github.com/musemart/musemart-backend/pkg/enums"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
)

type catalog interface {
	Products() []domain.Product
	ProductByID(id string) *domain.Product
}

// Service is the read side of the catalog.
type Service interface {
	List(filter ListFilter) []domain.Product
	Get(id string) (*domain.Product, error)
	Categories() []domain.Category
	Popular() []domain.Product
}

// ListFilter narrows and orders a catalog listing. Zero values mean no
// filtering and stored order.
type ListFilter struct {
	Category enums.ProductCategory
	Query    string
	Sort     string
}

// Sort values accepted by List.
const (
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortRatingDesc = "rating_desc"
)

type service struct {
	store   catalog
	navs    []domain.Category
	popular []domain.Product
}

// NewService builds the catalog read service. Navigation entries and
// the popular strip are fixed at construction.
func NewService(store catalog, navs []domain.Category, popular []domain.Product) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("domain store is required")
	}
	return &service{store: store, navs: navs, popular: popular}, nil
}

func (s *service) List(filter ListFilter) []domain.Product {
	out := []domain.Product{}
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	for _, p := range s.store.Products() {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}

	switch filter.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

func (s *service) Get(id string) (*domain.Product, error) {
	product := s.store.ProductByID(id)
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) Categories() []domain.Category {
	out := make([]domain.Category, len(s.navs))
	copy(out, s.navs)
	return out
}

func (s *service) Popular() []domain.Product {
	out := make([]domain.Product, len(s.popular))
	copy(out, s.popular)
	return out
}

func matchesQuery(p domain.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}
