package reviews

import (
	"fmt"
	"time"

	"github.com/musemart/musemart-backend/pkg/domain"
	"github.com/musemart/musemart-backend/pkg/enums"
	pkgerrors "github.com/musemart/musemart-backend/pkg/errors"
)

type domainStore interface {
	Reviews() []domain.Review
	UserReviews(userID string) []domain.Review
	ProductByID(id string) *domain.Product
	UserByID(id string) *domain.User
	AddReview(r domain.Review)
	UpdateReview(r domain.Review)
	RemoveReview(id string)
}

// Service manages product reviews for buyers and moderators.
type Service interface {
	List() []domain.Review
	ListForProduct(productID string) []domain.Review
	ListForUser(userID string) []domain.Review
	// Create snapshots the product name into the review. A buyer who
	// has a delivered order for the product gets the verified mark.
	Create(userID string, input CreateInput) (*domain.Review, error)
	Update(id string, userID string, input UpdateInput) (*domain.Review, error)
	Delete(id string) error
}

// CreateInput is the review submission payload.
type CreateInput struct {
	ProductID string
	Rating    int
	Comment   string
}

// UpdateInput carries the editable review fields. Nil means unchanged.
type UpdateInput struct {
	Rating  *int
	Comment *string
}

type orderHistory interface {
	UserOrders(userID string) []domain.Order
}

type service struct {
	store  domainStore
	orders orderHistory
	now    func() time.Time
}

// NewService builds a review service over the domain store.
func NewService(store domainStore, orders orderHistory, now func() time.Time) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("domain store is required")
	}
	if orders == nil {
		return nil, fmt.Errorf("order history is required")
	}
	if now == nil {
		now = time.Now
	}
	return &service{store: store, orders: orders, now: now}, nil
}

func (s *service) List() []domain.Review {
	return s.store.Reviews()
}

func (s *service) ListForProduct(productID string) []domain.Review {
	out := []domain.Review{}
	for _, r := range s.store.Reviews() {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

func (s *service) ListForUser(userID string) []domain.Review {
	return s.store.UserReviews(userID)
}

func (s *service) Create(userID string, input CreateInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	if s.store.UserByID(userID) == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	product := s.store.ProductByID(input.ProductID)
	if product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	review := domain.Review{
		ID:          domain.NewID(domain.PrefixReview),
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Rating:      input.Rating,
		Comment:     input.Comment,
		CreatedAt:   s.now(),
		IsVerified:  s.hasDeliveredOrder(userID, product.ID),
	}
	s.store.AddReview(review)
	return &review, nil
}

func (s *service) Update(id string, userID string, input UpdateInput) (*domain.Review, error) {
	for _, r := range s.store.Reviews() {
		if r.ID != id {
			continue
		}
		if r.UserID != userID {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "review belongs to another user")
		}
		if input.Rating != nil {
			if *input.Rating < 1 || *input.Rating > 5 {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
			}
			r.Rating = *input.Rating
		}
		if input.Comment != nil {
			r.Comment = *input.Comment
		}
		s.store.UpdateReview(r)
		return &r, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
}

func (s *service) Delete(id string) error {
	for _, r := range s.store.Reviews() {
		if r.ID == id {
			s.store.RemoveReview(id)
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
}

func (s *service) hasDeliveredOrder(userID, productID string) bool {
	for _, o := range s.orders.UserOrders(userID) {
		if o.Status != enums.OrderStatusDelivered {
			continue
		}
		for _, item := range o.Items {
			if item.ProductID == productID {
				return true
			}
		}
	}
	return false
}
