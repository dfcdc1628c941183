package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/chat"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

// ConversationRepository is an in-memory transcript store
type ConversationRepository struct {
	mu    sync.RWMutex
	order []uuid.UUID
	byID  map[uuid.UUID]*chat.Conversation
}

// NewConversationRepository creates an empty in-memory conversation
// repository
func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{
		byID: make(map[uuid.UUID]*chat.Conversation),
	}
}

var _ outbound.ConversationRepository = (*ConversationRepository)(nil)

// Create stores a new conversation
func (r *ConversationRepository) Create(ctx context.Context, c *chat.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID()]; exists {
		return fmt.Errorf("conversation %s already exists", c.ID())
	}
	r.byID[c.ID()] = c
	r.order = append(r.order, c.ID())
	return nil
}

// Update replaces a stored conversation; unknown ids are an error
func (r *ConversationRepository) Update(ctx context.Context, c *chat.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID()]; !exists {
		return fmt.Errorf("conversation %s not found", c.ID())
	}
	r.byID[c.ID()] = c
	return nil
}

// Delete removes a conversation; deleting an unknown id is a no-op
func (r *ConversationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return nil
	}
	delete(r.byID, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// FindByID returns (nil, nil) when the id is unknown
func (r *ConversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*chat.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byID[id], nil
}

// FindAll returns every conversation in insertion order
func (r *ConversationRepository) FindAll(ctx context.Context) ([]*chat.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*chat.Conversation, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result, nil
}
