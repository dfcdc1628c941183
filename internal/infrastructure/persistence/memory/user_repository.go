package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/user"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

// UserRepository is an in-memory account store. Email lookup is
// case-insensitive.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

var _ outbound.UserRepository = (*UserRepository)(nil)

// Create stores a new account
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.ID()]; exists {
		return fmt.Errorf("user %s already exists", u.ID())
	}
	key := emailKey(u.Email())
	if _, exists := r.byEmail[key]; exists {
		return fmt.Errorf("email %s already registered", u.Email())
	}
	r.byID[u.ID()] = u
	r.byEmail[key] = u.ID()
	return nil
}

// Update replaces a stored account; unknown ids are an error
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.ID()]; !exists {
		return fmt.Errorf("user %s not found", u.ID())
	}
	r.byID[u.ID()] = u
	r.byEmail[emailKey(u.Email())] = u.ID()
	return nil
}

// FindByID returns (nil, nil) when the id is unknown
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byID[id], nil
}

// FindByEmail returns (nil, nil) when the email is unknown
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, nil
	}
	return r.byID[id], nil
}

// Exists reports whether an account id is known
func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}

func emailKey(email string) string {
	return strings.ToLower(email)
}
