package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/musemart/musemart-backend/api/responses"
	"github.com/musemart/musemart-backend/api/validators"
	cartsvc "github.com/musemart/musemart-backend/internal/cart"
	"github.com/musemart/musemart-backend/pkg/logger"
)

type cartAddRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0,max=999"`
}

func CartFetch(svc cartsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.View())
	}
}

func CartAdd(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Add(payload.ProductID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, svc.View())
	}
}

// CartSetQuantity sets an absolute quantity. Zero removes the line.
func CartSetQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.SetQuantity(chi.URLParam(r, "productId"), payload.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, svc.View())
	}
}

func CartRemove(svc cartsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Remove(chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, svc.View())
	}
}

func CartClear(svc cartsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Clear()
		responses.WriteSuccess(w, svc.View())
	}
}
