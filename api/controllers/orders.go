package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/musemart/musemart-backend/api/middleware"
	"github.com/musemart/musemart-backend/api/responses"
	"github.com/musemart/musemart-backend/api/validators"
	ordersvc "github.com/musemart/musemart-backend/internal/orders"
	"github.com/musemart/musemart-backend/pkg/enums"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
	"github.com/musemart/musemart-backend/pkg/logger"
)

type checkoutRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Checkout turns the current cart into an order for the signed-in user.
func Checkout(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		method, err := enums.ParsePaymentMethod(payload.PaymentMethod)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown payment method"))
			return
		}

		order, placeErr := svc.PlaceOrder(user.ID, method)
		if placeErr != nil {
			responses.WriteError(r.Context(), logg, w, placeErr)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

func MyOrders(svc ordersvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())
		responses.WriteSuccess(w, svc.ListForUser(user.ID))
	}
}

// OrderDetail serves a single order to its owner, or to staff holding
// the orders read permission.
func OrderDetail(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())
		order, err := svc.Get(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if order.UserID != user.ID && !user.HasPermission(enums.PermissionOrdersRead) {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeForbidden, "order belongs to another user"))
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func CancelOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())
		order, err := svc.Cancel(chi.URLParam(r, "orderId"), user.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// AdminListOrders serves every order in the system.
func AdminListOrders(svc ordersvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.List())
	}
}

func AdminUpdateOrderStatus(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload orderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		status, err := enums.ParseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown order status"))
			return
		}
		order, updateErr := svc.UpdateStatus(chi.URLParam(r, "orderId"), status)
		if updateErr != nil {
			responses.WriteError(r.Context(), logg, w, updateErr)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
