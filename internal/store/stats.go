package store

import "github.com/musemart/musemart-backend/pkg/domain"

// UserStats aggregates a user's activity across orders and reviews.
// AverageRating is 0 when the user has no reviews.
type UserStats struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalSpent    int     `json:"totalSpent"`
	TotalReviews  int     `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`
}

// EnhancedUser bundles a user with the per-user collections and the
// stats derived from them.
type EnhancedUser struct {
	domain.User
	Orders    []domain.Order   `json:"orders"`
	Reviews   []domain.Review  `json:"reviews"`
	Addresses []domain.Address `json:"addresses"`
	Stats     UserStats        `json:"stats"`
}

// UserOrders returns the user's orders in stored order.
func (s *Store) UserOrders(userID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userOrdersLocked(userID)
}

// UserReviews returns the user's reviews in stored order.
func (s *Store) UserReviews(userID string) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userReviewsLocked(userID)
}

// UserAddresses returns the user's addresses in stored order.
func (s *Store) UserAddresses(userID string) []domain.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userAddressesLocked(userID)
}

// UserStats computes the aggregates for a single user. Unknown ids
// yield the zero stats.
func (s *Store) UserStats(userID string) UserStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return statsFor(s.userOrdersLocked(userID), s.userReviewsLocked(userID))
}

// EnhancedUser joins the user with their collections and stats. Returns
// nil when the id is unknown.
func (s *Store) EnhancedUser(userID string) *EnhancedUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.state.Users {
		if u.ID == userID {
			e := s.enhanceLocked(u)
			return &e
		}
	}
	return nil
}

// EnhancedUsers enhances every user in stored order.
func (s *Store) EnhancedUsers() []EnhancedUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]EnhancedUser, 0, len(s.state.Users))
	for _, u := range s.state.Users {
		out = append(out, s.enhanceLocked(u))
	}
	return out
}

func (s *Store) enhanceLocked(u domain.User) EnhancedUser {
	orders := s.userOrdersLocked(u.ID)
	reviews := s.userReviewsLocked(u.ID)
	return EnhancedUser{
		User:      u.Clone(),
		Orders:    orders,
		Reviews:   reviews,
		Addresses: s.userAddressesLocked(u.ID),
		Stats:     statsFor(orders, reviews),
	}
}

func (s *Store) userOrdersLocked(userID string) []domain.Order {
	out := []domain.Order{}
	for _, o := range s.state.Orders {
		if o.UserID == userID {
			out = append(out, o.Clone())
		}
	}
	return out
}

func (s *Store) userReviewsLocked(userID string) []domain.Review {
	out := []domain.Review{}
	for _, r := range s.state.Reviews {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) userAddressesLocked(userID string) []domain.Address {
	out := []domain.Address{}
	for _, a := range s.state.Addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

func statsFor(orders []domain.Order, reviews []domain.Review) UserStats {
	stats := UserStats{
		TotalOrders:  len(orders),
		TotalReviews: len(reviews),
	}
	for _, o := range orders {
		stats.TotalSpent += o.TotalAmount
	}
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		stats.AverageRating = float64(sum) / float64(len(reviews))
	}
	return stats
}
