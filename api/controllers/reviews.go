package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/musemart/musemart-backend/api/middleware"
	"github.com/musemart/musemart-backend/api/responses"
	"github.com/musemart/musemart-backend/api/validators"
	reviewsvc "github.com/musemart/musemart-backend/internal/reviews"
	"github.com/musemart/musemart-backend/pkg/enums"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
	"github.com/musemart/musemart-backend/pkg/logger"
)

type reviewCreateRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=2000"`
}

type reviewUpdateRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

func ProductReviews(svc reviewsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.ListForProduct(chi.URLParam(r, "productId")))
	}
}

func MyReviews(svc reviewsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())
		responses.WriteSuccess(w, svc.ListForUser(user.ID))
	}
}

func CreateReview(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())

		var payload reviewCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		review, err := svc.Create(user.ID, reviewsvc.CreateInput{
			ProductID: payload.ProductID,
			Rating:    payload.Rating,
			Comment:   validators.SanitizeString(payload.Comment, 2000),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, review)
	}
}

func UpdateReview(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())

		var payload reviewUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		review, err := svc.Update(chi.URLParam(r, "reviewId"), user.ID, reviewsvc.UpdateInput{
			Rating:  payload.Rating,
			Comment: payload.Comment,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, review)
	}
}

// DeleteReview lets the author remove their review; moderators holding
// the reviews delete permission may remove anyone's.
func DeleteReview(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.CurrentUserFromContext(r.Context())
		id := chi.URLParam(r, "reviewId")

		if !user.HasPermission(enums.PermissionReviewsDelete) {
			owned := false
			for _, review := range svc.ListForUser(user.ID) {
				if review.ID == id {
					owned = true
					break
				}
			}
			if !owned {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeForbidden, "review belongs to another user"))
				return
			}
		}

		if err := svc.Delete(id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminListReviews serves every review for moderation.
func AdminListReviews(svc reviewsvc.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.List())
	}
}
