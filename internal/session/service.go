package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/musemart/musemart-backend/pkg/domain"
	"github.com/musemart/musemart-backend/pkg/enums"
	"github.com/musemart/musemart-backend/pkg/logger"
	"github.com/musemart/musemart-backend/pkg/sessionstore"
)

// Service is the identity overlay on top of the domain store. It tracks
// at most one authenticated user, keeps that user persisted across
// restarts, and reports authentication outcomes as plain booleans so
// callers never learn whether the email or the password was wrong.
type Service interface {
	// Restore rebuilds the session from the persisted record. A user
	// persisted before the store lost them is re-inserted.
	Restore(ctx context.Context)

	// Login succeeds only on an exact, case-sensitive password match
	// for an existing email.
	Login(ctx context.Context, email, password string) bool

	// Register creates a customer account and signs it in. Fails when
	// the email is already taken.
	Register(ctx context.Context, name, email, password string) bool

	Logout(ctx context.Context)
	CurrentUser() *domain.User
	IsAuthenticated() bool
	Loading() bool
}

type userDirectory interface {
	UserByEmail(email string) *domain.User
	UserByID(id string) *domain.User
	AddUser(u domain.User)
	UpdateUser(u domain.User)
}

type service struct {
	mu      sync.RWMutex
	current *domain.User
	loading bool

	users   userDirectory
	persist sessionstore.Store
	log     *logger.Logger
	now     func() time.Time
}

// ServiceParams bundles the dependencies required to build a session service.
type ServiceParams struct {
	Users   userDirectory
	Persist sessionstore.Store
	Logger  *logger.Logger
	Now     func() time.Time
}

// NewService constructs a session service. The service starts in the
// loading state until Restore runs.
func NewService(params ServiceParams) (Service, error) {
	if params.Users == nil {
		return nil, fmt.Errorf("user directory is required")
	}
	if params.Persist == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		users:   params.Users,
		persist: params.Persist,
		log:     params.Logger,
		now:     now,
		loading: true,
	}, nil
}

func (s *service) Restore(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	persisted, err := s.persist.Load(ctx)
	if err != nil {
		// A record we cannot parse is useless; drop it and start clean.
		s.log.Error(ctx, "discarding unreadable session record", err)
		if clearErr := s.persist.Clear(ctx); clearErr != nil {
			s.log.Error(ctx, "failed to clear session record", clearErr)
		}
		return
	}
	if persisted == nil {
		return
	}

	// Prefer the live record over the persisted snapshot so profile
	// edits made since login are not rolled back.
	live := s.users.UserByID(persisted.ID)
	if live == nil {
		s.users.AddUser(*persisted)
		live = persisted
	}

	s.setCurrent(live)
	s.log.Info(s.log.WithUserID(ctx, live.ID), "session restored")
}

func (s *service) Login(ctx context.Context, email, password string) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	user := s.users.UserByEmail(email)
	if user == nil || user.Password != password {
		return false
	}

	at := s.now()
	user.LastLogin = &at
	s.users.UpdateUser(*user)

	s.setCurrent(user)
	s.save(ctx, *user)
	s.log.Info(s.log.WithUserID(ctx, user.ID), "user logged in")
	return true
}

func (s *service) Register(ctx context.Context, name, email, password string) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	if s.users.UserByEmail(email) != nil {
		return false
	}

	// A fresh registration is also an immediate sign-in, so the new
	// account gets a lastLogin right away.
	at := s.now()
	user := domain.User{
		ID:          domain.NewID(domain.PrefixUser),
		Name:        name,
		Email:       email,
		Password:    password,
		Role:        enums.UserRoleCustomer,
		Status:      enums.UserStatusActive,
		CreatedAt:   at,
		LastLogin:   &at,
		Permissions: append([]enums.Permission(nil), enums.DefaultCustomerPermissions...),
	}
	s.users.AddUser(user)

	s.setCurrent(&user)
	s.save(ctx, user)
	s.log.Info(s.log.WithUserID(ctx, user.ID), "user registered")
	return true
}

func (s *service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.persist.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear session record", err)
	}
}

func (s *service) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	out := s.current.Clone()
	return &out
}

func (s *service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *service) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *service) setCurrent(u *domain.User) {
	clone := u.Clone()
	s.mu.Lock()
	s.current = &clone
	s.mu.Unlock()
}

func (s *service) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// save persists best-effort. The in-memory session is already live, so
// a write failure only costs restore-after-restart, not the login.
func (s *service) save(ctx context.Context, u domain.User) {
	if err := s.persist.Save(ctx, u); err != nil {
		s.log.Error(ctx, "failed to persist session record", err)
	}
}
