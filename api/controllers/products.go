package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/musemart/musemart-backend/api/responses"
	"github.com/musemart/musemart-backend/api/validators"
	productsvc "github.com/musemart/musemart-backend/internal/products"
	reviewsvc "github.com/musemart/musemart-backend/internal/reviews"
	"github.com/musemart/musemart-backend/pkg/enums"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
	"github.com/musemart/musemart-backend/pkg/logger"
)

// ListProducts serves the catalog, optionally filtered by category,
// free-text query and sort order.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := productsvc.ListFilter{
			Query: validators.SanitizeString(r.URL.Query().Get("q"), 120),
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
			category, err := enums.ParseProductCategory(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown category"))
				return
			}
			filter.Category = category
		}

		switch sort := r.URL.Query().Get("sort"); sort {
		case "", productsvc.SortPriceAsc, productsvc.SortPriceDesc, productsvc.SortRatingDesc:
			filter.Sort = sort
		default:
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "unknown sort order"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, 200)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := svc.List(filter)
		if limit > 0 && len(products) > limit {
			products = products[:limit]
		}
		responses.WriteSuccess(w, products)
	}
}

func GetProduct(svc productsvc.Service, reviews reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "productId")
		product, err := svc.Get(id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"product": product,
			"reviews": reviews.ListForProduct(id),
		})
	}
}

func ListCategories(svc productsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Categories())
	}
}

func PopularProducts(svc productsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Popular())
	}
}
