// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/chat"
	"github.com/novamoonx/demmi/internal/domain/ingredient"
	"github.com/novamoonx/demmi/internal/domain/meal"
	"github.com/novamoonx/demmi/internal/domain/mealplan"
	"github.com/novamoonx/demmi/internal/domain/user"
)

// MealRepository defines the interface for catalog persistence.
// FindByID returns (nil, nil) when the id is unknown; Delete of an
// unknown id is a no-op. FindAll preserves insertion order.
type MealRepository interface {
	Create(ctx context.Context, m *meal.Meal) error
	Update(ctx context.Context, m *meal.Meal) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*meal.Meal, error)
	FindAll(ctx context.Context) ([]*meal.Meal, error)
	FindByCategory(ctx context.Context, category meal.Category) ([]*meal.Meal, error)
}

// MealPlanRepository defines the interface for plan persistence.
// Same absent-id conventions as MealRepository; all listings preserve
// insertion order, which the calendar relies on for display order.
type MealPlanRepository interface {
	Create(ctx context.Context, p *mealplan.MealPlan) error
	Update(ctx context.Context, p *mealplan.MealPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*mealplan.MealPlan, error)
	FindAll(ctx context.Context) ([]*mealplan.MealPlan, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*mealplan.MealPlan, error)
}

// IngredientRepository defines the interface for pantry persistence
type IngredientRepository interface {
	Create(ctx context.Context, i *ingredient.Ingredient) error
	Update(ctx context.Context, i *ingredient.Ingredient) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*ingredient.Ingredient, error)
	FindAll(ctx context.Context) ([]*ingredient.Ingredient, error)
}

// ConversationRepository defines the interface for chat persistence
type ConversationRepository interface {
	Create(ctx context.Context, c *chat.Conversation) error
	Update(ctx context.Context, c *chat.Conversation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*chat.Conversation, error)
	FindAll(ctx context.Context) ([]*chat.Conversation, error)
}

// UserRepository defines the interface for account persistence
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// CacheRepository defines the interface for caching operations.
// Get returns (nil, nil) on a miss or expired key.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Mailer defines the interface for outbound mail
type Mailer interface {
	SendVerification(ctx context.Context, to, token string) error
}

// IdentityVerifier validates third-party identity tokens (Google
// sign-in) and yields the asserted email address
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (email string, err error)
}

// ReplyPublisher pushes assistant replies to connected clients
type ReplyPublisher interface {
	PublishReply(conversationID uuid.UUID, message chat.Message)
}
